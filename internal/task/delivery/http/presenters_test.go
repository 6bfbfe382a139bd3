package http

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"todochat/internal/model"
	"todochat/pkg/response"
)

func TestNewTaskResp(t *testing.T) {
	due := time.Date(2026, 9, 1, 17, 0, 0, 0, time.UTC)

	t.Run("reminder time derived from due date and offset", func(t *testing.T) {
		resp := newTaskResp(model.Task{
			ID:             "t1",
			Title:          "Prep slides",
			DueDate:        &due,
			ReminderOffset: "1h",
			CreatedAt:      due,
			UpdatedAt:      due,
		})
		if resp.ReminderAt == nil {
			t.Fatal("ReminderAt not set")
		}
		if got := time.Time(*resp.ReminderAt); !got.Equal(due.Add(-time.Hour)) {
			t.Errorf("ReminderAt = %v, want %v", got, due.Add(-time.Hour))
		}
	})

	t.Run("no reminder without a due date", func(t *testing.T) {
		resp := newTaskResp(model.Task{ID: "t1", Title: "Prep slides", ReminderOffset: "1h"})
		if resp.ReminderAt != nil {
			t.Errorf("ReminderAt = %v, want nil", resp.ReminderAt)
		}
	})

	t.Run("timestamps marshal with the envelope format", func(t *testing.T) {
		resp := newTaskResp(model.Task{
			ID:             "t1",
			Title:          "Prep slides",
			DueDate:        &due,
			ReminderOffset: "30m",
			CreatedAt:      due,
			UpdatedAt:      due,
		})
		raw, err := json.Marshal(resp)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		wantCreated := `"created_at":"` + due.Local().Format(response.DateTimeFormat) + `"`
		if !strings.Contains(string(raw), wantCreated) {
			t.Errorf("body %s missing %s", raw, wantCreated)
		}
		wantDue := `"due_date":"` + due.Local().Format(response.DateFormat) + `"`
		if !strings.Contains(string(raw), wantDue) {
			t.Errorf("body %s missing %s", raw, wantDue)
		}
		if !strings.Contains(string(raw), `"reminder_at"`) {
			t.Errorf("body %s missing reminder_at", raw)
		}
	})
}
