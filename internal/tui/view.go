package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/taskmaster/internal/domain"
)

// View renders the model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content string
	switch m.mode {
	case ModeHelp:
		content = m.viewHelp()
	case ModeNormal, ModeInputTitle, ModeInputDue, ModeConfirm:
		content = m.viewMain()
	}

	return m.styles.App.Render(content)
}

// viewMain renders the main task list view.
func (m *Model) viewMain() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewNextTask())
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(m.styles.HeaderInfo.Render(fmt.Sprintf("No %s tasks", strings.ToLower(m.filter.Display()))))
		b.WriteString("\n")
	} else {
		b.WriteString(m.taskList.View())
		b.WriteString("\n")
	}

	switch m.mode {
	case ModeNormal, ModeHelp:
		// No overlay for these modes
	case ModeConfirm:
		b.WriteString("\n")
		b.WriteString(m.viewConfirmDialog())
		b.WriteString("\n")
	case ModeInputTitle, ModeInputDue:
		b.WriteString("\n")
		b.WriteString(m.viewNewTaskDialog())
		b.WriteString("\n")
	}

	if m.err != nil {
		b.WriteString("\n" + m.styles.ErrorMsg.Render("Error: "+m.err.Error()) + "\n")
	} else if m.notice != "" {
		b.WriteString("\n" + m.styles.NoticeMsg.Render(m.notice) + "\n")
	}

	b.WriteString(m.styles.Footer.Render(m.viewFooter()))
	return b.String()
}

// viewHeader renders the title, current filter and task count.
func (m *Model) viewHeader() string {
	title := m.styles.Header.Render("Tasks")
	info := m.styles.HeaderInfo.Render(fmt.Sprintf("%s · %d shown", m.filter.Display(), len(m.tasks)))

	headerWidth := m.width - 6 // padding
	if headerWidth < 40 {
		headerWidth = 40
	}
	spacing := headerWidth - lipgloss.Width(title) - lipgloss.Width(info)
	if spacing < 1 {
		spacing = 1
	}
	return title + strings.Repeat(" ", spacing) + info
}

// viewNextTask renders the most urgent pending task.
func (m *Model) viewNextTask() string {
	if m.next == nil {
		return m.styles.NextTask.Render("Next: nothing pending")
	}
	text := fmt.Sprintf("Next: #%d %s", m.next.ID, escapeNewlines(m.next.Title))
	if due := dueLabel(*m.next, m.today); due != "" {
		text += " (" + due + ")"
	}
	return m.styles.NextTask.Render(text)
}

// viewConfirmDialog renders the confirmation dialog.
func (m *Model) viewConfirmDialog() string {
	var action string
	switch m.confirmAction {
	case ConfirmNone:
		return ""
	case ConfirmDelete:
		action = "Delete"
	}

	title := m.styles.DialogTitle.Foreground(Colors.Error).
		Render(fmt.Sprintf("%s task #%d?", action, m.confirmTaskID))
	prompt := m.styles.DialogPrompt.Render("This action cannot be undone.")
	buttons := "[ y ] Confirm  " + m.styles.DialogPrompt.Render("[ n ] Cancel")

	content := lipgloss.JoinVertical(lipgloss.Left, title, "", prompt, "", buttons)
	return m.styles.Dialog.BorderForeground(Colors.Error).Render(content)
}

// viewNewTaskDialog renders the new task form.
func (m *Model) viewNewTaskDialog() string {
	title := m.styles.DialogTitle.Render("◆ New Task")
	priority := m.styles.DialogPrompt.Render("Priority: ") +
		m.styles.PriorityStyle(m.priority).Render(PriorityIcon(m.priority)+" "+m.priority.String())

	lines := []string{title, ""}
	if m.mode == ModeInputTitle {
		lines = append(lines, m.styles.DialogPrompt.Render("Title"), m.titleInput.View())
	} else {
		lines = append(lines,
			m.styles.DialogPrompt.Render("Title: ")+m.styles.TaskTitle.Render(m.titleInput.Value()),
			"",
			m.styles.DialogPrompt.Render("Due date"),
			m.dueInput.View(),
		)
	}
	lines = append(lines, "", priority, "", m.help.ShortHelpView(m.keys.inputHelp()))

	return m.styles.Dialog.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// viewFooter renders the key hints for the current mode.
func (m *Model) viewFooter() string {
	switch m.mode {
	case ModeNormal:
		return m.help.View(m.keys)
	case ModeInputTitle, ModeInputDue, ModeConfirm, ModeHelp:
		// Hints are shown in the dialogs/views themselves
		return ""
	}
	return ""
}

// viewHelp renders the help view.
func (m *Model) viewHelp() string {
	title := m.styles.Header.Render("KEYBOARD SHORTCUTS")

	var b strings.Builder
	b.WriteString(title + "\n\n")
	m.help.ShowAll = true
	b.WriteString(m.help.View(m.keys))
	m.help.ShowAll = false
	b.WriteString("\n\n")

	b.WriteString(m.styles.HeaderInfo.Render("Priorities: "))
	for i, p := range domain.AllPriorities() {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(m.styles.PriorityStyle(p).Render(PriorityIcon(p) + " " + p.String()))
	}
	b.WriteString("\n\n")
	b.WriteString(m.styles.DialogPrompt.Render("esc/? close"))
	return b.String()
}
