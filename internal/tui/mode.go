// Package tui provides the terminal user interface for taskmaster.
package tui

import "github.com/runoshun/taskmaster/internal/domain"

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal     Mode = iota // Default navigation mode
	ModeInputTitle             // Title input mode (for new task)
	ModeInputDue               // Due date input mode (for new task)
	ModeConfirm                // Confirmation dialog mode
	ModeHelp                   // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeInputTitle:
		return "input_title"
	case ModeInputDue:
		return "input_due"
	case ModeConfirm:
		return "confirm"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeInputTitle, ModeInputDue:
		return true
	case ModeNormal, ModeConfirm, ModeHelp:
		return false
	}
	return false
}

// ConfirmAction represents the type of action requiring confirmation.
type ConfirmAction int

const (
	ConfirmNone   ConfirmAction = iota
	ConfirmDelete               // Delete task
)

// String returns a human-readable description of the action.
func (a ConfirmAction) String() string {
	switch a {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		return "delete"
	}
	return ""
}

// filterCycle is the order in which the status filter advances.
var filterCycle = []domain.Status{
	domain.StatusPending,
	domain.StatusAll,
	domain.StatusCompleted,
	domain.StatusArchived,
}

// nextFilter returns the filter after current in filterCycle.
func nextFilter(current domain.Status) domain.Status {
	for i, s := range filterCycle {
		if s == current {
			return filterCycle[(i+1)%len(filterCycle)]
		}
	}
	return filterCycle[0]
}
