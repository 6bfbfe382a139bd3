package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"todochat/internal/model"
	"todochat/internal/task/repository"
)

const taskColumns = `id, user_id, title, description, completed, priority, tags,
	due_date, recurrence_pattern, recurrence_interval, reminder_offset,
	created_at, updated_at`

// CreateTask inserts a new task and returns the stored row.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	now := time.Now().UTC()

	t := model.Task{
		ID:                 uuid.NewString(),
		UserID:             opt.UserID,
		Title:              opt.Title,
		Description:        opt.Description,
		Priority:           opt.Priority,
		Tags:               opt.Tags,
		DueDate:            opt.DueDate,
		RecurrencePattern:  opt.RecurrencePattern,
		RecurrenceInterval: opt.RecurrenceInterval,
		ReminderOffset:     opt.ReminderOffset,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}

	tags, err := json.Marshal(t.Tags)
	if err != nil {
		return model.Task{}, fmt.Errorf("marshal tags: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO tasks (`+taskColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.UserID, t.Title, t.Description, boolToInt(t.Completed),
		string(t.Priority), string(tags), nullableTime(t.DueDate),
		string(t.RecurrencePattern), t.RecurrenceInterval, t.ReminderOffset,
		t.CreatedAt.Format(time.RFC3339Nano), t.UpdatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}

	return t, nil
}

// GetOneTask fetches a single task by ID within the user scope.
func (r *implRepository) GetOneTask(ctx context.Context, opt repository.GetOneTaskOptions) (model.Task, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+taskColumns+` FROM tasks WHERE id = ? AND user_id = ?`,
		opt.ID, opt.UserID,
	)

	t, err := scanTask(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Task{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Task{}, fmt.Errorf("get task: %w", err)
	}
	return t, nil
}

// ListTasks returns the user's tasks newest first, with the total count
// before pagination.
func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, int, error) {
	where := []string{"user_id = ?"}
	args := []any{opt.UserID}

	if opt.Completed != nil {
		where = append(where, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}
	cond := strings.Join(where, " AND ")

	var total int
	if err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM tasks WHERE "+cond, args...,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count tasks: %w", err)
	}

	query := "SELECT " + taskColumns + " FROM tasks WHERE " + cond +
		" ORDER BY created_at DESC, id"
	if opt.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", opt.Limit, opt.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []model.Task
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan task: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate tasks: %w", err)
	}

	return tasks, total, nil
}

// UpdateTask applies the non-nil fields and returns the updated row.
func (r *implRepository) UpdateTask(ctx context.Context, opt repository.UpdateTaskOptions) (model.Task, error) {
	sets := []string{"updated_at = ?"}
	args := []any{time.Now().UTC().Format(time.RFC3339Nano)}

	if opt.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *opt.Title)
	}
	if opt.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, *opt.Description)
	}
	if opt.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*opt.Priority))
	}
	if opt.Tags != nil {
		tags, err := json.Marshal(opt.Tags)
		if err != nil {
			return model.Task{}, fmt.Errorf("marshal tags: %w", err)
		}
		sets = append(sets, "tags = ?")
		args = append(args, string(tags))
	}
	if opt.DueDate != nil {
		sets = append(sets, "due_date = ?")
		args = append(args, opt.DueDate.UTC().Format(time.RFC3339Nano))
	}
	if opt.Completed != nil {
		sets = append(sets, "completed = ?")
		args = append(args, boolToInt(*opt.Completed))
	}

	args = append(args, opt.ID, opt.UserID)
	res, err := r.db.ExecContext(ctx,
		"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ? AND user_id = ?",
		args...,
	)
	if err != nil {
		return model.Task{}, fmt.Errorf("update task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return model.Task{}, repository.ErrNotFound
	}

	return r.GetOneTask(ctx, repository.GetOneTaskOptions{ID: opt.ID, UserID: opt.UserID})
}

// DeleteTask removes a task within the user scope.
func (r *implRepository) DeleteTask(ctx context.Context, opt repository.DeleteTaskOptions) error {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = ? AND user_id = ?", opt.ID, opt.UserID,
	)
	if err != nil {
		return fmt.Errorf("delete task: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTask(row rowScanner) (model.Task, error) {
	var (
		t         model.Task
		completed int
		priority  string
		tags      string
		due       sql.NullString
		pattern   string
		createdAt string
		updatedAt string
	)

	err := row.Scan(
		&t.ID, &t.UserID, &t.Title, &t.Description, &completed, &priority,
		&tags, &due, &pattern, &t.RecurrenceInterval, &t.ReminderOffset,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Task{}, err
	}

	t.Completed = completed != 0
	t.Priority = model.TaskPriority(priority)
	t.RecurrencePattern = model.RecurrencePattern(pattern)

	if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
		return model.Task{}, fmt.Errorf("unmarshal tags: %w", err)
	}
	if due.Valid {
		at, err := time.Parse(time.RFC3339Nano, due.String)
		if err != nil {
			return model.Task{}, fmt.Errorf("parse due date: %w", err)
		}
		t.DueDate = &at
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt); err != nil {
		return model.Task{}, fmt.Errorf("parse created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339Nano, updatedAt); err != nil {
		return model.Task{}, fmt.Errorf("parse updated_at: %w", err)
	}

	return t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func nullableTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC().Format(time.RFC3339Nano)
}
