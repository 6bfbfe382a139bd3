package usecase

import (
	"context"
	"errors"
	"strings"

	"todochat/internal/model"
	"todochat/internal/task"
	"todochat/internal/task/repository"
)

// List returns the user's tasks, newest first.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input task.ListInput) (task.ListOutput, error) {
	tasks, total, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		UserID:    sc.UserID,
		Completed: input.Completed,
		Limit:     input.Limit,
		Offset:    input.Offset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.List ListTasks: %v", err)
		return task.ListOutput{}, err
	}

	return task.ListOutput{Tasks: tasks, Total: total}, nil
}

// Create validates and stores a new task.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) (model.Task, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if len(input.Tags) > 5 {
		return model.Task{}, task.ErrTooManyTags
	}

	priority := input.Priority
	if !priority.Valid() {
		priority = model.PriorityMedium
	}

	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:             sc.UserID,
		Title:              title,
		Description:        input.Description,
		Priority:           priority,
		Tags:               input.Tags,
		DueDate:            input.DueDate,
		RecurrencePattern:  input.RecurrencePattern,
		RecurrenceInterval: input.RecurrenceInterval,
		ReminderOffset:     input.ReminderOffset,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.Create CreateTask: %v", err)
		return model.Task{}, err
	}

	return created, nil
}

// Update applies a partial update within the user scope.
func (uc *implUseCase) Update(ctx context.Context, sc model.Scope, input task.UpdateInput) (model.Task, error) {
	if input.Title != nil && strings.TrimSpace(*input.Title) == "" {
		return model.Task{}, task.ErrEmptyTitle
	}
	if len(input.Tags) > 5 {
		return model.Task{}, task.ErrTooManyTags
	}

	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:          input.ID,
		UserID:      sc.UserID,
		Title:       input.Title,
		Description: input.Description,
		Priority:    input.Priority,
		Tags:        input.Tags,
		DueDate:     input.DueDate,
		Completed:   input.Completed,
	})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.Update UpdateTask: %v", err)
		return model.Task{}, err
	}

	return updated, nil
}

// Delete removes a task within the user scope.
func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id string) error {
	err := uc.repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: id, UserID: sc.UserID})
	if errors.Is(err, repository.ErrNotFound) {
		return task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.Delete DeleteTask: %v", err)
		return err
	}
	return nil
}

// ToggleCompletion flips the completed flag and returns the new state.
func (uc *implUseCase) ToggleCompletion(ctx context.Context, sc model.Scope, id string) (model.Task, error) {
	current, err := uc.repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: id, UserID: sc.UserID})
	if errors.Is(err, repository.ErrNotFound) {
		return model.Task{}, task.ErrTaskNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "task.ToggleCompletion GetOneTask: %v", err)
		return model.Task{}, err
	}

	flipped := !current.Completed
	updated, err := uc.repo.UpdateTask(ctx, repository.UpdateTaskOptions{
		ID:        id,
		UserID:    sc.UserID,
		Completed: &flipped,
	})
	if err != nil {
		uc.l.Errorf(ctx, "task.ToggleCompletion UpdateTask: %v", err)
		return model.Task{}, err
	}

	return updated, nil
}
