package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/runoshun/taskmaster/internal/domain"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	priorityStyles = map[domain.Priority]lipgloss.Style{
		domain.PriorityCritical: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		domain.PriorityHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
		domain.PriorityMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		domain.PriorityLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

const columnGap = "   "

// priorityBar renders a four-step bar followed by the priority name.
func priorityBar(p domain.Priority) string {
	filled := p.Base()
	return strings.Repeat("■", filled) + strings.Repeat("□", 4-filled) + " " + p.String()
}

// relativeDays describes a day offset from today.
func relativeDays(days int) string {
	switch {
	case days == 0:
		return "today"
	case days == 1:
		return "tomorrow"
	case days == -1:
		return "yesterday"
	case days > 0:
		return fmt.Sprintf("in %dd", days)
	default:
		return fmt.Sprintf("%dd ago", -days)
	}
}

// dueText renders the due column for t.
func dueText(t domain.Task, today domain.Date) string {
	days, ok := domain.DaysUntilDue(t, today)
	if !ok {
		return "-"
	}
	return fmt.Sprintf("%s (%s)", t.Due.String(), relativeDays(days))
}

// cell is one table value with the style applied after padding.
type cell struct {
	style *lipgloss.Style
	text  string
}

// printTaskTable prints tasks as an aligned table.
// Widths are computed on plain text so styling never breaks alignment.
func printTaskTable(w io.Writer, tasks []domain.Task, today domain.Date, titleWidth int) {
	header := []string{"ID", "PRIORITY", "DUE", "STATUS", "TITLE"}
	rows := make([][]cell, 0, len(tasks))
	for _, t := range tasks {
		ps := priorityStyles[t.Priority]
		row := []cell{
			{text: fmt.Sprintf("%d", t.ID)},
			{text: priorityBar(t.Priority), style: &ps},
			{text: dueText(t, today)},
			{text: t.Status.String()},
			{text: domain.TruncateTitle(t.Title, titleWidth)},
		}
		if domain.IsOverdue(t, today) {
			row[2].style = &overdueStyle
		}
		if t.Status != domain.StatusPending {
			row[3].style = &mutedStyle
		}
		rows = append(rows, row)
	}

	widths := make([]int, len(header))
	for i, h := range header {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, c := range row {
			widths[i] = max(widths[i], runewidth.StringWidth(c.text))
		}
	}

	var b strings.Builder
	for i, h := range header {
		b.WriteString(headerStyle.Render(pad(h, widths[i], i == len(header)-1)))
		if i < len(header)-1 {
			b.WriteString(columnGap)
		}
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, c := range row {
			text := pad(c.text, widths[i], i == len(row)-1)
			if c.style != nil {
				text = c.style.Render(text)
			}
			b.WriteString(text)
			if i < len(row)-1 {
				b.WriteString(columnGap)
			}
		}
		b.WriteString("\n")
	}
	_, _ = io.WriteString(w, b.String())
}

func pad(s string, width int, last bool) string {
	if last {
		return s
	}
	return runewidth.FillRight(s, width)
}

// printTaskDetails prints one task with its derived due-date facts.
func printTaskDetails(w io.Writer, t domain.Task, today domain.Date) {
	_, _ = fmt.Fprintf(w, "# Task %d: %s\n\n", t.ID, t.Title)
	_, _ = fmt.Fprintf(w, "Status:   %s\n", t.Status.Display())
	_, _ = fmt.Fprintf(w, "Priority: %s\n", priorityStyles[t.Priority].Render(priorityBar(t.Priority)))

	due := dueText(t, today)
	if domain.IsOverdue(t, today) {
		due = overdueStyle.Render(due + " overdue")
	}
	_, _ = fmt.Fprintf(w, "Due:      %s\n", due)
}
