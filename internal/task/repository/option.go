package repository

import (
	"time"

	"todochat/internal/model"
)

// CreateTaskOptions holds parameters for inserting a new Task.
type CreateTaskOptions struct {
	UserID      string
	Title       string
	Description string
	Priority    model.TaskPriority
	Tags        []string
	DueDate     *time.Time

	RecurrencePattern  model.RecurrencePattern
	RecurrenceInterval int

	ReminderOffset string
}

// GetOneTaskOptions holds filter parameters for fetching a single Task.
// UserID is always required.
type GetOneTaskOptions struct {
	ID     string
	UserID string
}

// ListTasksOptions holds filter and pagination parameters for listing
// Tasks. Results are ordered newest first.
type ListTasksOptions struct {
	UserID    string
	Completed *bool
	Limit     int
	Offset    int
}

// UpdateTaskOptions holds parameters for updating an existing Task. Nil
// fields are left unchanged; Tags nil means unchanged, empty slice clears.
type UpdateTaskOptions struct {
	ID     string
	UserID string

	Title       *string
	Description *string
	Priority    *model.TaskPriority
	Tags        []string
	DueDate     *time.Time
	Completed   *bool
}

// DeleteTaskOptions identifies the task to remove.
type DeleteTaskOptions struct {
	ID     string
	UserID string
}
