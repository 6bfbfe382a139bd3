package task

import (
	"context"

	"todochat/internal/model"
)

// UseCase defines the business logic interface for the task domain. All
// operations are scoped to the authenticated user in sc; referencing another
// user's task yields ErrTaskNotFound.
type UseCase interface {
	// List returns the user's tasks, newest first.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Create stores a new task.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (model.Task, error)

	// Update applies a partial update to an existing task.
	Update(ctx context.Context, sc model.Scope, input UpdateInput) (model.Task, error)

	// Delete removes a task. Returns ErrTaskNotFound when the task does not
	// exist or belongs to someone else.
	Delete(ctx context.Context, sc model.Scope, id string) error

	// ToggleCompletion flips the completed flag and returns the new state.
	ToggleCompletion(ctx context.Context, sc model.Scope, id string) (model.Task, error)
}
