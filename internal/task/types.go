package task

import (
	"time"

	"todochat/internal/model"
)

// CreateInput is the input for task creation.
type CreateInput struct {
	Title       string
	Description string
	Priority    model.TaskPriority
	Tags        []string
	DueDate     *time.Time

	RecurrencePattern  model.RecurrencePattern
	RecurrenceInterval int

	ReminderOffset string
}

// UpdateInput is the input for a partial task update. Nil fields are left
// unchanged.
type UpdateInput struct {
	ID          string
	Title       *string
	Description *string
	Priority    *model.TaskPriority
	Tags        []string
	DueDate     *time.Time
	Completed   *bool
}

// ListInput selects which tasks to return. Completed nil means no
// completion filter.
type ListInput struct {
	Completed *bool
	Limit     int
	Offset    int
}

// ListOutput is the result of a list operation.
type ListOutput struct {
	Tasks []model.Task
	Total int
}
