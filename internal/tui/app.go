package tui

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmaster/internal/app"
	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/usecase"
)

// Model is the main bubbletea model for the TUI.
type Model struct {
	// Dependencies (pointers first for alignment)
	container *app.Container
	err       error
	next      *domain.Task

	// State
	tasks  []domain.Task
	notice string

	// Components
	keys     KeyMap
	styles   Styles
	help     help.Model
	taskList list.Model

	// Input state
	titleInput textinput.Model
	dueInput   textinput.Model

	today domain.Date

	// Numeric state (smaller types last)
	mode          Mode
	confirmAction ConfirmAction
	filter        domain.Status
	priority      domain.Priority
	width         int
	height        int
	confirmTaskID int
	busy          bool // A mutating command is in flight
}

// New creates a new TUI Model with the given container.
func New(c *app.Container) *Model {
	ti := textinput.New()
	ti.Placeholder = "Task title"
	ti.CharLimit = 200

	di := textinput.New()
	di.Placeholder = "YYYY-MM-DD (optional)"
	di.CharLimit = 10

	titleWidth := domain.DefaultTitleWidth
	if c.AppConfig != nil {
		titleWidth = c.AppConfig.Display.TitleWidth
	}

	styles := DefaultStyles()
	delegate := newTaskDelegate(styles, titleWidth)
	taskList := list.New([]list.Item{}, delegate, 0, 0)
	taskList.SetShowTitle(false)
	taskList.SetShowStatusBar(false)
	taskList.SetShowHelp(false)
	taskList.SetShowPagination(false)
	taskList.SetFilteringEnabled(false)
	taskList.DisableQuitKeybindings()

	return &Model{
		container:  c,
		mode:       ModeNormal,
		filter:     filterCycle[0],
		priority:   domain.DefaultPriority,
		keys:       DefaultKeyMap(),
		styles:     styles,
		help:       help.New(),
		taskList:   taskList,
		titleInput: ti,
		dueInput:   di,
	}
}

// Init initializes the model and returns the initial command.
func (m *Model) Init() tea.Cmd {
	return m.loadTasks()
}

// loadTasks returns a command that loads the ranked tasks for the current filter.
func (m *Model) loadTasks() tea.Cmd {
	filter := m.filter
	return func() tea.Msg {
		ctx := context.Background()
		out, err := m.container.ListTasksUseCase().Execute(ctx, usecase.ListTasksInput{Status: filter})
		if err != nil {
			return MsgError{Err: err}
		}
		next, err := m.container.NextTaskUseCase().Execute(ctx)
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTasksLoaded{Tasks: out.Tasks, Today: out.Today, Next: next.Task}
	}
}

// createTask returns a command that creates a task.
func (m *Model) createTask(title string, priority domain.Priority, due *domain.Date) tea.Cmd {
	return func() tea.Msg {
		out, err := m.container.NewTaskUseCase().Execute(context.Background(), usecase.NewTaskInput{
			Title:    title,
			Priority: &priority,
			Due:      due,
		})
		if err != nil {
			return MsgError{Err: err}
		}
		return MsgTaskCreated{TaskID: out.TaskID, NearCapacity: out.NearCapacity}
	}
}

// completeTask returns a command that marks a task completed.
func (m *Model) completeTask(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.CompleteTaskUseCase().Execute(context.Background(), usecase.TaskIDInput{TaskID: id})
		if err != nil {
			return MsgError{Err: taskError(id, err)}
		}
		return MsgTaskChanged{TaskID: id, Action: "completed"}
	}
}

// archiveTask returns a command that archives a task.
func (m *Model) archiveTask(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.ArchiveTaskUseCase().Execute(context.Background(), usecase.TaskIDInput{TaskID: id})
		if err != nil {
			return MsgError{Err: taskError(id, err)}
		}
		return MsgTaskChanged{TaskID: id, Action: "archived"}
	}
}

// deleteTask returns a command that deletes a task.
func (m *Model) deleteTask(id int) tea.Cmd {
	return func() tea.Msg {
		_, err := m.container.DeleteTaskUseCase().Execute(context.Background(), usecase.TaskIDInput{TaskID: id})
		if err != nil {
			return MsgError{Err: taskError(id, err)}
		}
		return MsgTaskChanged{TaskID: id, Action: "deleted"}
	}
}

func taskError(id int, err error) error {
	if errors.Is(err, domain.ErrTaskNotFound) {
		return fmt.Errorf("task #%d: %w", id, err)
	}
	return err
}

// SelectedTask returns the currently selected task, or nil if none.
func (m *Model) SelectedTask() *domain.Task {
	item, ok := m.taskList.SelectedItem().(taskItem)
	if !ok {
		return nil
	}
	t := item.task
	return &t
}

// Mode returns the current UI mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Filter returns the status filter of the list.
func (m *Model) Filter() domain.Status {
	return m.filter
}

// updateTaskList rebuilds the list items from m.tasks.
func (m *Model) updateTaskList() {
	items := make([]list.Item, len(m.tasks))
	for i, t := range m.tasks {
		items[i] = taskItem{
			task:  t,
			today: m.today,
			next:  m.next != nil && m.next.ID == t.ID,
		}
	}
	m.taskList.SetItems(items)
	if m.taskList.Index() >= len(items) && len(items) > 0 {
		m.taskList.Select(len(items) - 1)
	}
}

// selectNext moves the cursor to the most urgent pending task if it is listed.
func (m *Model) selectNext() {
	if m.next == nil {
		return
	}
	for i, t := range m.tasks {
		if t.ID == m.next.ID {
			m.taskList.Select(i)
			return
		}
	}
}

// updateLayoutSizes resizes components after the window changes.
func (m *Model) updateLayoutSizes() {
	// App padding, header, next line, prompt and footer
	listHeight := m.height - 12
	if listHeight < 3 {
		listHeight = 3
	}
	listWidth := m.width - 4
	if listWidth < 20 {
		listWidth = 20
	}
	m.taskList.SetSize(listWidth, listHeight)
	m.titleInput.Width = listWidth - 10
	m.help.Width = m.width
}
