package model

import "time"

// TaskPriority is the urgency level of a task.
type TaskPriority string

const (
	PriorityLow    TaskPriority = "low"
	PriorityMedium TaskPriority = "medium"
	PriorityHigh   TaskPriority = "high"
)

// Valid reports whether p is a known priority value.
func (p TaskPriority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

// RecurrencePattern describes how a task repeats.
type RecurrencePattern string

const (
	RecurrenceDaily   RecurrencePattern = "daily"
	RecurrenceWeekly  RecurrencePattern = "weekly"
	RecurrenceMonthly RecurrencePattern = "monthly"
	// RecurrenceCustom repeats every N days; the interval travels alongside
	// in Task.RecurrenceInterval.
	RecurrenceCustom RecurrencePattern = "custom"
)

// Task represents a single todo item owned by one user.
type Task struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Completed   bool

	Priority TaskPriority
	Tags     []string // max 5, first-appearance order

	DueDate *time.Time // nil when no absolute date was derived

	RecurrencePattern  RecurrencePattern // empty when not recurring
	RecurrenceInterval int               // days; set iff RecurrencePattern == RecurrenceCustom

	// ReminderOffset is a compact offset code such as "30m", "1h" or "2d",
	// relative to DueDate. Empty when no reminder was requested.
	ReminderOffset string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReminderAt computes when a reminder should fire for the task. The second
// return value is false when the task has no due date, no reminder offset,
// or an unparseable offset code. Delivering the reminder is not this
// system's job.
func (t Task) ReminderAt() (time.Time, bool) {
	if t.DueDate == nil || t.ReminderOffset == "" {
		return time.Time{}, false
	}
	d, err := ParseReminderOffset(t.ReminderOffset)
	if err != nil {
		return time.Time{}, false
	}
	return t.DueDate.Add(-d), true
}

// ParseReminderOffset converts a compact offset code ("30m", "1h", "2d")
// into a duration.
func ParseReminderOffset(code string) (time.Duration, error) {
	if len(code) < 2 {
		return 0, ErrBadReminderOffset
	}
	unit := code[len(code)-1]
	n := 0
	for _, r := range code[:len(code)-1] {
		if r < '0' || r > '9' {
			return 0, ErrBadReminderOffset
		}
		n = n*10 + int(r-'0')
	}
	switch unit {
	case 'm':
		return time.Duration(n) * time.Minute, nil
	case 'h':
		return time.Duration(n) * time.Hour, nil
	case 'd':
		return time.Duration(n) * 24 * time.Hour, nil
	}
	return 0, ErrBadReminderOffset
}
