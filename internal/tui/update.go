package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmaster/internal/domain"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayoutSizes()
		return m, nil

	case MsgTasksLoaded:
		m.tasks = msg.Tasks
		m.today = msg.Today
		m.next = msg.Next
		m.updateTaskList()
		return m, nil

	case MsgTaskCreated:
		m.busy = false
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.dueInput.Reset()
		m.priority = domain.DefaultPriority
		m.notice = fmt.Sprintf("Added task #%d", msg.TaskID)
		if msg.NearCapacity {
			m.notice += " (task store is nearing capacity)"
		}
		return m, m.loadTasks()

	case MsgTaskChanged:
		m.busy = false
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		m.notice = fmt.Sprintf("Task #%d %s", msg.TaskID, msg.Action)
		return m, m.loadTasks()

	case MsgError:
		m.busy = false
		m.err = msg.Err
		m.notice = ""
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil
	}

	return m, nil
}

// handleKeyMsg dispatches a key press to the handler of the current mode.
func (m *Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Clear messages on any key press
	m.err = nil
	m.notice = ""

	switch m.mode {
	case ModeNormal:
		return m.handleNormalMode(msg)
	case ModeInputTitle:
		return m.handleInputTitleMode(msg)
	case ModeInputDue:
		return m.handleInputDueMode(msg)
	case ModeConfirm:
		return m.handleConfirmMode(msg)
	case ModeHelp:
		return m.handleHelpMode(msg)
	}

	return m, nil
}

// handleNormalMode handles keys in normal mode.
func (m *Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
		var cmd tea.Cmd
		m.taskList, cmd = m.taskList.Update(msg)
		return m, cmd

	case key.Matches(msg, m.keys.PrevPage):
		m.taskList.Paginator.PrevPage()
		return m, nil

	case key.Matches(msg, m.keys.NextPage):
		m.taskList.Paginator.NextPage()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.mode = ModeHelp
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Filter):
		m.filter = nextFilter(m.filter)
		m.taskList.Select(0)
		return m, m.loadTasks()

	case key.Matches(msg, m.keys.Next):
		m.selectNext()
		return m, nil
	}

	// Remaining actions change tasks and wait for the previous change to finish.
	if m.busy {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.New):
		m.mode = ModeInputTitle
		m.priority = domain.DefaultPriority
		m.titleInput.Reset()
		m.dueInput.Reset()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.Complete):
		task := m.SelectedTask()
		if task == nil || !task.IsPending() {
			return m, nil
		}
		m.busy = true
		return m, m.completeTask(task.ID)

	case key.Matches(msg, m.keys.Archive):
		task := m.SelectedTask()
		if task == nil || task.Status == domain.StatusArchived {
			return m, nil
		}
		m.busy = true
		return m, m.archiveTask(task.ID)

	case key.Matches(msg, m.keys.Delete):
		task := m.SelectedTask()
		if task == nil {
			return m, nil
		}
		m.mode = ModeConfirm
		m.confirmAction = ConfirmDelete
		m.confirmTaskID = task.ID
		return m, nil
	}

	return m, nil
}

// handleInputTitleMode handles keys in title input mode.
func (m *Model) handleInputTitleMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeNormal
		m.titleInput.Reset()
		m.titleInput.Blur()
		return m, nil

	case key.Matches(msg, m.keys.CyclePriority):
		m.cyclePriority()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if strings.TrimSpace(m.titleInput.Value()) == "" {
			return m, nil
		}
		m.mode = ModeInputDue
		m.titleInput.Blur()
		return m, m.dueInput.Focus()
	}

	var cmd tea.Cmd
	m.titleInput, cmd = m.titleInput.Update(msg)
	return m, cmd
}

// handleInputDueMode handles keys in due date input mode.
func (m *Model) handleInputDueMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape):
		m.mode = ModeInputTitle
		m.dueInput.Reset()
		m.dueInput.Blur()
		return m, m.titleInput.Focus()

	case key.Matches(msg, m.keys.CyclePriority):
		m.cyclePriority()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if m.busy {
			return m, nil
		}
		var due *domain.Date
		if v := strings.TrimSpace(m.dueInput.Value()); v != "" {
			d, err := domain.ParseDate(v)
			if err != nil {
				m.err = err
				return m, nil
			}
			due = &d
		}
		m.busy = true
		m.dueInput.Blur()
		return m, m.createTask(m.titleInput.Value(), m.priority, due)
	}

	var cmd tea.Cmd
	m.dueInput, cmd = m.dueInput.Update(msg)
	return m, cmd
}

// handleConfirmMode handles keys in the confirmation dialog.
func (m *Model) handleConfirmMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), msg.String() == "n", msg.String() == "N":
		m.mode = ModeNormal
		m.confirmAction = ConfirmNone
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		switch m.confirmAction {
		case ConfirmNone:
			m.mode = ModeNormal
		case ConfirmDelete:
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, m.deleteTask(m.confirmTaskID)
		}
	}

	return m, nil
}

// handleHelpMode handles keys in help mode.
func (m *Model) handleHelpMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Escape), key.Matches(msg, m.keys.Help), key.Matches(msg, m.keys.Quit):
		m.mode = ModeNormal
		return m, nil
	}

	return m, nil
}

// cyclePriority advances the priority of the task being added, wrapping to Low.
func (m *Model) cyclePriority() {
	all := domain.AllPriorities()
	for i, p := range all {
		if p == m.priority {
			m.priority = all[(i+1)%len(all)]
			return
		}
	}
	m.priority = domain.DefaultPriority
}
