package chat

import (
	"strconv"
	"time"

	"todochat/internal/model"
)

// Intent is the classified category of a chat utterance. Exactly one intent
// is assigned per command; IntentOther is terminal and routes to the
// general-purpose fallback.
type Intent string

const (
	IntentAdd      Intent = "add"
	IntentList     Intent = "list"
	IntentComplete Intent = "complete"
	IntentDelete   Intent = "delete"
	IntentUpdate   Intent = "update"
	IntentSearch   Intent = "search"
	IntentOther    Intent = "other"
)

// ReminderUnit is the time unit of a reminder offset.
type ReminderUnit string

const (
	ReminderMinute ReminderUnit = "minute"
	ReminderHour   ReminderUnit = "hour"
	ReminderDay    ReminderUnit = "day"
)

// ReminderOffset is how long before the due date a reminder should fire.
type ReminderOffset struct {
	Amount int
	Unit   ReminderUnit
}

// Code returns the compact offset code stored on tasks, e.g. "30m", "1h",
// "2d".
func (r ReminderOffset) Code() string {
	suffix := "m"
	switch r.Unit {
	case ReminderHour:
		suffix = "h"
	case ReminderDay:
		suffix = "d"
	}
	return strconv.Itoa(r.Amount) + suffix
}

// Recurrence is an extracted repetition directive. IntervalDays is set iff
// Pattern is RecurrenceCustom.
type Recurrence struct {
	Pattern      model.RecurrencePattern
	IntervalDays int
}

// SortField names a task attribute tasks can be sorted by.
type SortField string

const (
	SortByDueDate   SortField = "due_date"
	SortByPriority  SortField = "priority"
	SortByCreatedAt SortField = "created_at"
	SortByTitle     SortField = "title"
)

// SortDirective is an extracted sort request.
type SortDirective struct {
	Field     SortField
	Direction string // "asc" or "desc"
}

// Filter holds extracted list-narrowing attributes.
type Filter struct {
	Priority model.TaskPriority // empty when not mentioned
	Tags     []string
}

// Empty reports whether no filter attribute was extracted.
func (f Filter) Empty() bool {
	return f.Priority == "" && len(f.Tags) == 0
}

// ParsedCommand holds every structured field extracted from one utterance.
// A command may carry several directives at once; absent fields keep their
// zero value. Tags holds at most 5 entries in first-appearance order,
// de-duplicated.
type ParsedCommand struct {
	Title    string
	Priority model.TaskPriority
	Tags     []string
	DueDate  *time.Time

	Recurrence Recurrence
	Reminder   *ReminderOffset

	SearchQuery string
	Filter      Filter
	Sort        *SortDirective
}

// TaskSnapshot is the task state echoed back in a CommandResult.
type TaskSnapshot struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// CommandResult is what one interpreted utterance produces. Mutated is true
// only when a task-store write actually happened.
type CommandResult struct {
	Reply   string
	Intent  Intent
	TaskID  string
	Task    *TaskSnapshot
	Mutated bool
}
