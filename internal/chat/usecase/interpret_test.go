package usecase_test

import (
	"context"
	"strings"
	"testing"

	"todochat/internal/chat"
	"todochat/internal/chat/composer"
	"todochat/internal/chat/parser"
	"todochat/internal/chat/usecase"
	"todochat/internal/conversation"
	convSqlite "todochat/internal/conversation/repository/sqlite"
	"todochat/internal/model"
	"todochat/internal/task"
	taskSqlite "todochat/internal/task/repository/sqlite"
	taskUsecase "todochat/internal/task/usecase"
	"todochat/pkg/datemath"
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

type fixture struct {
	chat     chat.UseCase
	tasks    task.UseCase
	convRepo conversation.Repository
	sc       model.Scope
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := pkgSqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	l := nopLogger{}
	taskRepo, err := taskSqlite.New(db, l)
	if err != nil {
		t.Fatalf("task repository: %v", err)
	}
	convRepo, err := convSqlite.New(db, l)
	if err != nil {
		t.Fatalf("conversation repository: %v", err)
	}
	dates, err := datemath.NewParser("UTC")
	if err != nil {
		t.Fatalf("datemath: %v", err)
	}

	taskUC := taskUsecase.New(l, taskRepo)
	return &fixture{
		chat:     usecase.New(l, taskUC, convRepo, parser.New(dates), composer.New(l, nil)),
		tasks:    taskUC,
		convRepo: convRepo,
		sc:       model.Scope{UserID: "u-1", Username: "tester"},
	}
}

func (f *fixture) seed(t *testing.T, titles ...string) {
	t.Helper()
	for _, title := range titles {
		if _, err := f.tasks.Create(context.Background(), f.sc, task.CreateInput{Title: title}); err != nil {
			t.Fatalf("seed %q: %v", title, err)
		}
	}
}

func TestInterpretAddRoundTrip(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.chat.Interpret(ctx, f.sc, "Add groceries #errand high priority")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if res.Intent != chat.IntentAdd || !res.Mutated {
		t.Errorf("result = %+v, want mutated add", res)
	}
	if !strings.Contains(res.Reply, "groceries") {
		t.Errorf("reply %q does not echo the title", res.Reply)
	}

	out, err := f.tasks.List(ctx, f.sc, task.ListInput{})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out.Tasks) != 1 {
		t.Fatalf("got %d tasks, want 1", len(out.Tasks))
	}
	created := out.Tasks[0]
	if !strings.Contains(created.Title, "groceries") {
		t.Errorf("Title = %q, want it to contain %q", created.Title, "groceries")
	}
	if created.Priority != model.PriorityHigh {
		t.Errorf("Priority = %q, want high", created.Priority)
	}
	if len(created.Tags) != 1 || created.Tags[0] != "errand" {
		t.Errorf("Tags = %v, want [errand]", created.Tags)
	}
}

func TestInterpretAddRejectsEmptyTitle(t *testing.T) {
	f := newFixture(t)

	res, err := f.chat.Interpret(context.Background(), f.sc, "add")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if res.Mutated {
		t.Error("bare add mutated the store")
	}
	if !strings.Contains(res.Reply, "more specific") {
		t.Errorf("reply %q is not a clarifying question", res.Reply)
	}

	out, _ := f.tasks.List(context.Background(), f.sc, task.ListInput{})
	if len(out.Tasks) != 0 {
		t.Errorf("store has %d tasks, want 0", len(out.Tasks))
	}
}

func TestInterpretCompleteByOrdinal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "Call mom", "Buy milk") // newest first: [Buy milk, Call mom]

	res, err := f.chat.Interpret(ctx, f.sc, "complete task 2")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !res.Mutated || res.Task == nil || res.Task.Title != "Call mom" {
		t.Errorf("result = %+v, want Call mom completed", res)
	}
	if !res.Task.Completed {
		t.Error("snapshot not marked completed")
	}
}

func TestInterpretCompleteOutOfRange(t *testing.T) {
	f := newFixture(t)
	f.seed(t, "Call mom", "Buy milk")

	res, err := f.chat.Interpret(context.Background(), f.sc, "complete task 9")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if res.Mutated {
		t.Error("out-of-range ordinal mutated the store")
	}
	if !strings.Contains(res.Reply, "couldn't find") {
		t.Errorf("reply %q, want a couldn't-find message", res.Reply)
	}
}

func TestInterpretDeleteByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "Buy milk", "Call mom")

	res, err := f.chat.Interpret(ctx, f.sc, "delete the task buy milk")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !res.Mutated || res.Intent != chat.IntentDelete {
		t.Errorf("result = %+v, want mutated delete", res)
	}
	if !strings.Contains(res.Reply, "Buy milk") {
		t.Errorf("reply %q does not name the deleted task", res.Reply)
	}

	out, _ := f.tasks.List(ctx, f.sc, task.ListInput{})
	if len(out.Tasks) != 1 || out.Tasks[0].Title != "Call mom" {
		t.Errorf("remaining tasks = %+v, want only Call mom", out.Tasks)
	}
}

func TestInterpretUpdateByName(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "Call mom", "Buy milk")

	res, err := f.chat.Interpret(ctx, f.sc, "rename call mom to call dad")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !res.Mutated || res.Task == nil || res.Task.Title != "call dad" {
		t.Errorf("result = %+v, want renamed task", res)
	}

	out, _ := f.tasks.List(ctx, f.sc, task.ListInput{})
	titles := []string{out.Tasks[0].Title, out.Tasks[1].Title}
	if titles[0] != "Buy milk" && titles[1] != "Buy milk" {
		t.Errorf("Buy milk went missing: %v", titles)
	}
	found := false
	for _, title := range titles {
		if title == "call dad" {
			found = true
		}
	}
	if !found {
		t.Errorf("rename not persisted: %v", titles)
	}
}

func TestInterpretUpdateByOrdinal(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "Call mom", "Buy milk") // newest first: [Buy milk, Call mom]

	res, err := f.chat.Interpret(ctx, f.sc, "rename task 2 to call dad")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !res.Mutated || res.Task == nil || res.Task.Title != "call dad" {
		t.Errorf("result = %+v, want task 2 renamed to call dad", res)
	}

	out, _ := f.tasks.List(ctx, f.sc, task.ListInput{})
	titles := []string{out.Tasks[0].Title, out.Tasks[1].Title}
	if titles[0] != "Buy milk" || titles[1] != "call dad" {
		t.Errorf("titles = %v, want [Buy milk call dad]", titles)
	}
}

func TestInterpretListViews(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "Call mom", "Buy milk")
	if _, err := f.chat.Interpret(ctx, f.sc, "complete task 1"); err != nil {
		t.Fatalf("complete: %v", err)
	}

	res, err := f.chat.Interpret(ctx, f.sc, "show my pending tasks")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if res.Mutated {
		t.Error("list mutated the store")
	}
	if !strings.Contains(res.Reply, "pending tasks (1 total)") || !strings.Contains(res.Reply, "- Call mom") {
		t.Errorf("pending reply = %q", res.Reply)
	}

	res, err = f.chat.Interpret(ctx, f.sc, "show my completed tasks")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !strings.Contains(res.Reply, "completed tasks (1 total)") || !strings.Contains(res.Reply, "- Buy milk") {
		t.Errorf("completed reply = %q", res.Reply)
	}
}

func TestInterpretSearch(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.seed(t, "Prep meeting agenda", "Buy milk")

	res, err := f.chat.Interpret(ctx, f.sc, "find tasks about meeting")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if res.Intent != chat.IntentSearch || res.Mutated {
		t.Errorf("result = %+v, want non-mutating search", res)
	}
	if !strings.Contains(res.Reply, "Found 1 task") || !strings.Contains(res.Reply, "Prep meeting agenda") {
		t.Errorf("search reply = %q", res.Reply)
	}
}

func TestInterpretGeneralDegradesWithoutCredential(t *testing.T) {
	f := newFixture(t)

	res, err := f.chat.Interpret(context.Background(), f.sc, "how was your day")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if res.Intent != chat.IntentOther || res.Mutated {
		t.Errorf("result = %+v, want non-mutating other", res)
	}
	if !strings.Contains(res.Reply, "didn't quite understand") {
		t.Errorf("reply = %q, want the terminal fallback", res.Reply)
	}
}

func TestInterpretHelp(t *testing.T) {
	f := newFixture(t)

	res, err := f.chat.Interpret(context.Background(), f.sc, "/help")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}
	if !strings.Contains(res.Reply, "Add a task") {
		t.Errorf("help reply = %q", res.Reply)
	}
}

func TestInterpretLogsBothTurns(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.chat.Interpret(ctx, f.sc, "Add groceries")
	if err != nil {
		t.Fatalf("Interpret: %v", err)
	}

	conv, err := f.convRepo.GetOrCreate(ctx, f.sc.UserID)
	if err != nil {
		t.Fatalf("GetOrCreate: %v", err)
	}
	turns, err := f.convRepo.RecentTurns(ctx, conv.ID, 10)
	if err != nil {
		t.Fatalf("RecentTurns: %v", err)
	}
	if len(turns) != 2 {
		t.Fatalf("got %d turns, want 2", len(turns))
	}
	if turns[0].Role != conversation.RoleUser || turns[0].Content != "Add groceries" {
		t.Errorf("first turn = %+v", turns[0])
	}
	if turns[1].Role != conversation.RoleAssistant || turns[1].Content != res.Reply {
		t.Errorf("second turn = %+v, want the reply", turns[1])
	}
}

func TestInterpretEmptyMessage(t *testing.T) {
	f := newFixture(t)

	if _, err := f.chat.Interpret(context.Background(), f.sc, "   "); err != chat.ErrEmptyMessage {
		t.Errorf("err = %v, want ErrEmptyMessage", err)
	}
}
