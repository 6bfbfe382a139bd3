package http

import (
	"time"

	"todochat/internal/model"
	"todochat/internal/task"
	"todochat/pkg/response"
)

// --- Request DTOs ---

type createReq struct {
	Title       string     `json:"title"       binding:"required,min=1,max=255"`
	Description string     `json:"description" binding:"max=2000"`
	Priority    string     `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Tags        []string   `json:"tags"        binding:"max=5"`
	DueDate     *time.Time `json:"due_date"`

	RecurrencePattern  string `json:"recurrence_pattern"  binding:"omitempty,oneof=daily weekly monthly custom"`
	RecurrenceInterval int    `json:"recurrence_interval" binding:"omitempty,min=1"`

	ReminderOffset string `json:"reminder_offset" binding:"omitempty"`
}

func (r createReq) validate() error {
	if r.ReminderOffset != "" {
		if _, err := model.ParseReminderOffset(r.ReminderOffset); err != nil {
			return err
		}
	}
	return nil
}

func (r createReq) toInput() task.CreateInput {
	return task.CreateInput{
		Title:              r.Title,
		Description:        r.Description,
		Priority:           model.TaskPriority(r.Priority),
		Tags:               r.Tags,
		DueDate:            r.DueDate,
		RecurrencePattern:  model.RecurrencePattern(r.RecurrencePattern),
		RecurrenceInterval: r.RecurrenceInterval,
		ReminderOffset:     r.ReminderOffset,
	}
}

// ---

type listReq struct {
	Completed *bool `form:"completed"`
	Limit     int   `form:"limit"`
	Offset    int   `form:"offset"`
}

func (r listReq) validate() error { return nil }

func (r listReq) toInput() task.ListInput {
	limit := r.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	offset := r.Offset
	if offset < 0 {
		offset = 0
	}
	return task.ListInput{
		Completed: r.Completed,
		Limit:     limit,
		Offset:    offset,
	}
}

// ---

type updateReq struct {
	ID          string     `json:"-"` // populated from URI param
	Title       *string    `json:"title"       binding:"omitempty,min=1,max=255"`
	Description *string    `json:"description" binding:"omitempty,max=2000"`
	Priority    *string    `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Tags        []string   `json:"tags"        binding:"omitempty,max=5"`
	DueDate     *time.Time `json:"due_date"`
	Completed   *bool      `json:"completed"`
}

func (r updateReq) validate() error { return nil }

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		Tags:        r.Tags,
		DueDate:     r.DueDate,
		Completed:   r.Completed,
	}
	if r.Priority != nil {
		p := model.TaskPriority(*r.Priority)
		input.Priority = &p
	}
	return input
}

// --- Response DTOs ---

type taskResp struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	Priority string   `json:"priority"`
	Tags     []string `json:"tags"`

	// DueDate renders date-only; the stored end-of-day timestamp is a
	// parser detail.
	DueDate *response.Date `json:"due_date,omitempty"`

	RecurrencePattern  string `json:"recurrence_pattern,omitempty"`
	RecurrenceInterval int    `json:"recurrence_interval,omitempty"`
	ReminderOffset     string `json:"reminder_offset,omitempty"`

	// ReminderAt is due_date minus the reminder offset, present only when
	// both are set.
	ReminderAt *response.DateTime `json:"reminder_at,omitempty"`

	CreatedAt response.DateTime `json:"created_at"`
	UpdatedAt response.DateTime `json:"updated_at"`
}

func newTaskResp(t model.Task) taskResp {
	resp := taskResp{
		ID:                 t.ID,
		Title:              t.Title,
		Description:        t.Description,
		Completed:          t.Completed,
		Priority:           string(t.Priority),
		Tags:               t.Tags,
		RecurrencePattern:  string(t.RecurrencePattern),
		RecurrenceInterval: t.RecurrenceInterval,
		ReminderOffset:     t.ReminderOffset,
		CreatedAt:          response.DateTime(t.CreatedAt),
		UpdatedAt:          response.DateTime(t.UpdatedAt),
	}
	if t.DueDate != nil {
		d := response.Date(*t.DueDate)
		resp.DueDate = &d
	}
	if at, ok := t.ReminderAt(); ok {
		dt := response.DateTime(at)
		resp.ReminderAt = &dt
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Total int        `json:"total"`
}

func newListResp(out task.ListOutput) listResp {
	items := make([]taskResp, 0, len(out.Tasks))
	for _, t := range out.Tasks {
		items = append(items, newTaskResp(t))
	}
	return listResp{Tasks: items, Total: out.Total}
}
