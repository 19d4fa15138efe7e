package domain

import (
	"fmt"
	"strings"
)

// Status represents the lifecycle state of a task.
// The numeric values of the real states are the on-disk ordinals.
type Status int

const (
	StatusPending   Status = iota // Created, not yet done
	StatusCompleted               // Done
	StatusArchived                // Kept for history, out of the way

	// StatusAll is a query-only pseudo-state matching every task.
	// It is never the status of a stored task.
	StatusAll
)

// AllStatuses returns the statuses a task can actually have.
func AllStatuses() []Status {
	return []Status{StatusPending, StatusCompleted, StatusArchived}
}

// IsValid returns true if s is a status a task can have.
func (s Status) IsValid() bool {
	return s == StatusPending || s == StatusCompleted || s == StatusArchived
}

// Matches returns true if a task with status s belongs in a listing filtered by filter.
func (s Status) Matches(filter Status) bool {
	return filter == StatusAll || s == filter
}

// String returns the lower-case name of the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusCompleted:
		return "completed"
	case StatusArchived:
		return "archived"
	case StatusAll:
		return "all"
	default:
		return "unknown"
	}
}

// Display returns a human-readable representation of the status.
func (s Status) Display() string {
	switch s {
	case StatusPending:
		return "Pending"
	case StatusCompleted:
		return "Completed"
	case StatusArchived:
		return "Archived"
	case StatusAll:
		return "All"
	default:
		return s.String()
	}
}

// ParseStatus parses a status filter token. "all" yields StatusAll.
func ParseStatus(token string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "pending", "todo", "p":
		return StatusPending, nil
	case "completed", "complete", "done", "c":
		return StatusCompleted, nil
	case "archived", "archive", "a":
		return StatusArchived, nil
	case "all", "":
		return StatusAll, nil
	default:
		return StatusAll, fmt.Errorf("%w: %q", ErrInvalidStatus, token)
	}
}
