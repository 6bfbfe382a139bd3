package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"todochat/internal/conversation"
	"todochat/internal/conversation/repository/sqlite"
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

func newRepo(t *testing.T) conversation.Repository {
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

func TestGetOrCreate(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	first, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("get or create: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated conversation ID")
	}

	again, err := repo.GetOrCreate(ctx, "u1")
	if err != nil {
		t.Fatalf("get or create again: %v", err)
	}
	if again.ID != first.ID {
		t.Errorf("expected the same conversation, got %q and %q", first.ID, again.ID)
	}

	other, err := repo.GetOrCreate(ctx, "u2")
	if err != nil {
		t.Fatalf("get or create other user: %v", err)
	}
	if other.ID == first.ID {
		t.Error("conversations must not be shared across users")
	}
}

func TestTurnOrdering(t *testing.T) {
	repo := newRepo(t)
	ctx := context.Background()

	conv, _ := repo.GetOrCreate(ctx, "u1")

	for i := 0; i < 12; i++ {
		role := conversation.RoleUser
		if i%2 == 1 {
			role = conversation.RoleAssistant
		}
		if err := repo.AppendTurn(ctx, conv.ID, role, fmt.Sprintf("turn %d", i)); err != nil {
			t.Fatalf("append turn %d: %v", i, err)
		}
	}

	turns, err := repo.RecentTurns(ctx, conv.ID, 10)
	if err != nil {
		t.Fatalf("recent turns: %v", err)
	}
	if len(turns) != 10 {
		t.Fatalf("expected 10 turns, got %d", len(turns))
	}

	// The two oldest turns fall outside the window; the rest arrive in
	// chronological order.
	if turns[0].Content != "turn 2" {
		t.Errorf("first turn in window = %q, want %q", turns[0].Content, "turn 2")
	}
	if turns[9].Content != "turn 11" {
		t.Errorf("last turn in window = %q, want %q", turns[9].Content, "turn 11")
	}
	if turns[9].Role != conversation.RoleAssistant {
		t.Errorf("last turn role = %q, want assistant", turns[9].Role)
	}
}
