package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"todochat/internal/model"
	"todochat/internal/task/repository"
	"todochat/internal/task/repository/sqlite"
	pkgSqlite "todochat/pkg/sqlite"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (nopLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (nopLogger) Panic(ctx context.Context, arg ...any)                    {}
func (nopLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

func newRepo(t *testing.T) repository.Repository {
	t.Helper()
	db, err := pkgSqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo, err := sqlite.New(db, nopLogger{})
	if err != nil {
		t.Fatalf("new repository: %v", err)
	}
	return repo
}

func TestCreateAndGet(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	due := time.Date(2026, 9, 1, 23, 59, 59, 0, time.UTC)
	created, err := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:         "u1",
		Title:          "Buy milk",
		Priority:       model.PriorityHigh,
		Tags:           []string{"errand", "grocery"},
		DueDate:        &due,
		ReminderOffset: "1h",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: created.ID, UserID: "u1"})
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Buy milk" || got.Priority != model.PriorityHigh {
		t.Errorf("round trip mismatch: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "errand" || got.Tags[1] != "grocery" {
		t.Errorf("tags round trip mismatch: %v", got.Tags)
	}
	if got.DueDate == nil || !got.DueDate.Equal(due) {
		t.Errorf("due date round trip mismatch: %v", got.DueDate)
	}
	if got.ReminderOffset != "1h" {
		t.Errorf("reminder offset mismatch: %q", got.ReminderOffset)
	}
}

func TestUserScoping(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "Private"})

	_, err := repo.GetOneTask(ctx, repository.GetOneTaskOptions{ID: created.ID, UserID: "u2"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("cross-user get: expected ErrNotFound, got %v", err)
	}

	if err := repo.DeleteTask(ctx, repository.DeleteTaskOptions{ID: created.ID, UserID: "u2"}); !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("cross-user delete: expected ErrNotFound, got %v", err)
	}

	newTitle := "Stolen"
	_, err = repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: created.ID, UserID: "u2", Title: &newTitle})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("cross-user update: expected ErrNotFound, got %v", err)
	}
}

func TestListOrderAndFilter(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "First"})
	time.Sleep(2 * time.Millisecond)
	second, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{UserID: "u1", Title: "Second"})

	completed := true
	if _, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: first.ID, UserID: "u1", Completed: &completed}); err != nil {
		t.Fatalf("update: %v", err)
	}

	t.Run("Newest First", func(t *testing.T) {
		tasks, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 2 || len(tasks) != 2 {
			t.Fatalf("expected 2 tasks, got total=%d len=%d", total, len(tasks))
		}
		if tasks[0].ID != second.ID {
			t.Errorf("expected newest first, got %q", tasks[0].Title)
		}
	})

	t.Run("Completed Filter", func(t *testing.T) {
		done := true
		tasks, _, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "u1", Completed: &done})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(tasks) != 1 || tasks[0].ID != first.ID {
			t.Errorf("completed filter returned %+v", tasks)
		}
	})

	t.Run("Other User Empty", func(t *testing.T) {
		tasks, total, err := repo.ListTasks(ctx, repository.ListTasksOptions{UserID: "u2"})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if total != 0 || len(tasks) != 0 {
			t.Errorf("expected empty list for other user, got %d", total)
		}
	})
}

func TestUpdatePartial(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	created, _ := repo.CreateTask(ctx, repository.CreateTaskOptions{
		UserID:   "u1",
		Title:    "Old title",
		Priority: model.PriorityLow,
		Tags:     []string{"keep"},
	})

	newTitle := "New title"
	got, err := repo.UpdateTask(ctx, repository.UpdateTaskOptions{ID: created.ID, UserID: "u1", Title: &newTitle})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Title != "New title" {
		t.Errorf("title = %q, want %q", got.Title, "New title")
	}
	if got.Priority != model.PriorityLow || len(got.Tags) != 1 {
		t.Errorf("unrelated fields changed: %+v", got)
	}
}
