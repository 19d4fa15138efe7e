package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/taskmaster/internal/domain"
)

// taskItem is a list entry for one task.
// Fields are ordered to minimize memory padding.
type taskItem struct {
	task  domain.Task
	today domain.Date
	next  bool // Task is the current most urgent pending task
}

func (t taskItem) FilterValue() string {
	return t.task.Title
}

// escapeNewlines replaces newline characters with spaces for single-line display.
func escapeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", " ")
	s = strings.ReplaceAll(s, "\n", " ")
	s = strings.ReplaceAll(s, "\r", " ")
	return s
}

// dueLabel formats the due date relative to today.
func dueLabel(t domain.Task, today domain.Date) string {
	days, ok := domain.DaysUntilDue(t, today)
	if !ok {
		return ""
	}
	switch {
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	case days < 0:
		return fmt.Sprintf("%dd overdue", -days)
	default:
		return "due " + t.Due.String()
	}
}

type taskDelegate struct {
	styles     Styles
	titleWidth int
}

func newTaskDelegate(styles Styles, titleWidth int) taskDelegate {
	return taskDelegate{styles: styles, titleWidth: titleWidth}
}

func (d taskDelegate) Height() int {
	return 1
}

func (d taskDelegate) Spacing() int {
	return 0
}

func (d taskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

func (d taskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	ti, ok := item.(taskItem)
	if !ok {
		return
	}
	task := ti.task
	selected := index == m.Index()

	indicatorChar := " "
	if selected {
		indicatorChar = ">"
	}
	nextMark := " "
	if ti.next {
		nextMark = "★"
	}

	idStr := fmt.Sprintf("%3d", task.ID)
	due := dueLabel(task, ti.today)

	// indicator, mark, id, priority, status and spacing
	prefixWidth := 17
	maxTitleLen := m.Width() - prefixWidth - runewidth.StringWidth(due) - 4
	if d.titleWidth > 0 && maxTitleLen > d.titleWidth {
		maxTitleLen = d.titleWidth
	}
	if maxTitleLen < 10 {
		maxTitleLen = 10
	}
	title := escapeNewlines(task.Title)
	if runewidth.StringWidth(title) > maxTitleLen {
		title = runewidth.Truncate(title, maxTitleLen, "...")
	}

	titleStyle := d.styles.TaskTitle
	if selected {
		titleStyle = d.styles.TaskTitleSelected
	}
	dueStyle := d.styles.Due
	if domain.IsOverdue(task, ti.today) {
		dueStyle = d.styles.DueOverdue
	}

	line := "  " + d.styles.SelectionIndicator.Render(indicatorChar) +
		d.styles.NextTask.UnsetMarginBottom().Render(nextMark) + " " +
		d.styles.TaskID.Render(idStr) + "  " +
		d.styles.PriorityStyle(task.Priority).Render(PriorityIcon(task.Priority)) + " " +
		d.styles.StatusStyle(task.Status).Render(StatusIcon(task.Status)) + "  " +
		titleStyle.Render(title)
	if due != "" {
		line += "  " + dueStyle.Render(due)
	}
	_, _ = fmt.Fprint(w, line)
}
