// Package domain contains core business entities and interfaces.
package domain

import (
	"strings"
	"unicode/utf8"
)

// DefaultTitleWidth is the display width titles are truncated to.
const DefaultTitleWidth = 35

// ellipsis marks a truncated title.
const ellipsis = "..."

// Task represents a single to-do item.
// ID, Title, Priority and Due are fixed at creation; only Status changes afterwards,
// and only through the task store.
// Fields are ordered to minimize memory padding.
type Task struct {
	Due      *Date    // Optional due date (nil = no due date)
	Title    string   // Title (required, non-blank)
	ID       int      // Unique, monotonically assigned ID
	Priority Priority // Explicit priority level
	Status   Status   // Current lifecycle state
}

// IsPending returns true if the task is still open.
func (t *Task) IsPending() bool {
	return t.Status == StatusPending
}

// HasDue returns true if the task has a due date.
func (t *Task) HasDue() bool {
	return t.Due != nil
}

// SameSubmission reports whether t and other would be the same submission:
// case-insensitively equal titles and equal due dates (both absent counts as equal).
func (t *Task) SameSubmission(title string, due *Date) bool {
	return strings.EqualFold(strings.TrimSpace(t.Title), strings.TrimSpace(title)) && sameDate(t.Due, due)
}

// DaysUntilDue returns the number of days from today until the task's due date.
// The count is negative for overdue tasks. ok is false if the task has no due date.
func DaysUntilDue(t Task, today Date) (days int, ok bool) {
	if t.Due == nil {
		return 0, false
	}
	return today.DaysUntil(*t.Due), true
}

// IsOverdue returns true if the task has a due date strictly before today
// and has not been completed. Archived tasks can still be overdue.
func IsOverdue(t Task, today Date) bool {
	return t.Due != nil && t.Status != StatusCompleted && t.Due.Before(today)
}

// TruncateTitle shortens title to at most width runes, ending in "..." when cut.
// Widths too small to hold the ellipsis return the title cut to width.
func TruncateTitle(title string, width int) string {
	if width <= 0 || utf8.RuneCountInString(title) <= width {
		return title
	}
	runes := []rune(title)
	if width <= len(ellipsis) {
		return string(runes[:width])
	}
	return string(runes[:width-len(ellipsis)]) + ellipsis
}
