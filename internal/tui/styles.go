package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/taskmaster/internal/domain"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary lipgloss.Color
	Muted   lipgloss.Color
	Error   lipgloss.Color
	Success lipgloss.Color
	Warning lipgloss.Color

	// Title colors
	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color

	// Priority colors
	Low      lipgloss.Color
	Medium   lipgloss.Color
	High     lipgloss.Color
	Critical lipgloss.Color

	// Status colors
	Pending   lipgloss.Color
	Completed lipgloss.Color
	Archived  lipgloss.Color
}{
	Primary: lipgloss.Color("#6C5CE7"), // Purple
	Muted:   lipgloss.Color("#636E72"), // Gray
	Error:   lipgloss.Color("#D63031"), // Red
	Success: lipgloss.Color("#00B894"), // Green
	Warning: lipgloss.Color("#FDCB6E"), // Yellow

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow (selected)

	Low:      lipgloss.Color("#636E72"), // Gray
	Medium:   lipgloss.Color("#74B9FF"), // Light blue
	High:     lipgloss.Color("#FDCB6E"), // Yellow
	Critical: lipgloss.Color("#D63031"), // Red

	Pending:   lipgloss.Color("#74B9FF"), // Light blue
	Completed: lipgloss.Color("#00B894"), // Green
	Archived:  lipgloss.Color("#636E72"), // Gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// App
	App lipgloss.Style

	// Header
	Header     lipgloss.Style
	HeaderInfo lipgloss.Style
	NextTask   lipgloss.Style

	// Task list
	SelectionIndicator lipgloss.Style
	TaskID             lipgloss.Style
	TaskTitle          lipgloss.Style
	TaskTitleSelected  lipgloss.Style
	Due                lipgloss.Style
	DueOverdue         lipgloss.Style

	// Priority badges
	PriorityLow      lipgloss.Style
	PriorityMedium   lipgloss.Style
	PriorityHigh     lipgloss.Style
	PriorityCritical lipgloss.Style

	// Status badges
	StatusPending   lipgloss.Style
	StatusCompleted lipgloss.Style
	StatusArchived  lipgloss.Style

	// Dialog
	Dialog       lipgloss.Style
	DialogTitle  lipgloss.Style
	DialogPrompt lipgloss.Style

	// Messages
	ErrorMsg  lipgloss.Style
	NoticeMsg lipgloss.Style

	// Footer
	Footer lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		HeaderInfo: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		NextTask: lipgloss.NewStyle().
			Foreground(Colors.Warning).
			MarginBottom(1),

		SelectionIndicator: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected),

		TaskID: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		TaskTitle: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTitleSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		Due: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		DueOverdue: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		PriorityLow:      lipgloss.NewStyle().Foreground(Colors.Low),
		PriorityMedium:   lipgloss.NewStyle().Foreground(Colors.Medium),
		PriorityHigh:     lipgloss.NewStyle().Foreground(Colors.High),
		PriorityCritical: lipgloss.NewStyle().Foreground(Colors.Critical).Bold(true),

		StatusPending:   lipgloss.NewStyle().Foreground(Colors.Pending),
		StatusCompleted: lipgloss.NewStyle().Foreground(Colors.Completed),
		StatusArchived:  lipgloss.NewStyle().Foreground(Colors.Archived),

		Dialog: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		DialogTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary),

		DialogPrompt: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),

		NoticeMsg: lipgloss.NewStyle().
			Foreground(Colors.Success),

		Footer: lipgloss.NewStyle().
			MarginTop(1),
	}
}

// PriorityStyle returns the style for a priority badge.
func (s Styles) PriorityStyle(p domain.Priority) lipgloss.Style {
	switch p {
	case domain.PriorityLow:
		return s.PriorityLow
	case domain.PriorityMedium:
		return s.PriorityMedium
	case domain.PriorityHigh:
		return s.PriorityHigh
	case domain.PriorityCritical:
		return s.PriorityCritical
	}
	return s.PriorityMedium
}

// StatusStyle returns the style for a status badge.
func (s Styles) StatusStyle(status domain.Status) lipgloss.Style {
	switch status {
	case domain.StatusPending:
		return s.StatusPending
	case domain.StatusCompleted:
		return s.StatusCompleted
	case domain.StatusArchived, domain.StatusAll:
		return s.StatusArchived
	}
	return s.StatusArchived
}

// PriorityIcon returns a compact bar for the priority ("■■□□").
func PriorityIcon(p domain.Priority) string {
	filled := p.Base()
	if !p.IsValid() {
		filled = domain.DefaultPriority.Base()
	}
	icon := ""
	for i := 1; i <= len(domain.AllPriorities()); i++ {
		if i <= filled {
			icon += "■"
		} else {
			icon += "□"
		}
	}
	return icon
}

// StatusIcon returns the icon for a status.
func StatusIcon(status domain.Status) string {
	switch status {
	case domain.StatusPending:
		return "○"
	case domain.StatusCompleted:
		return "✓"
	case domain.StatusArchived:
		return "▪"
	case domain.StatusAll:
		return " "
	}
	return "?"
}
