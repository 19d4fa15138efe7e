package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModel_Init_LoadsRankedTasks(t *testing.T) {
	m, c, _ := newTestModel(t)
	seed(t, c, "Low chore", domain.PriorityLow, nil)
	critical := seed(t, c, "Fix outage", domain.PriorityCritical, nil)

	drain(t, m, m.Init())

	require.Len(t, m.tasks, 2)
	assert.Equal(t, critical, m.tasks[0].ID)
	require.NotNil(t, m.next)
	assert.Equal(t, critical, m.next.ID)
	assert.Equal(t, testToday, m.today)

	selected := m.SelectedTask()
	require.NotNil(t, selected)
	assert.Equal(t, critical, selected.ID)
}

func TestModel_Navigation(t *testing.T) {
	m, c, _ := newTestModel(t)
	seed(t, c, "First", domain.PriorityHigh, nil)
	second := seed(t, c, "Second", domain.PriorityLow, nil)
	drain(t, m, m.Init())

	press(m, "down")
	require.NotNil(t, m.SelectedTask())
	assert.Equal(t, second, m.SelectedTask().ID)

	press(m, "g")
	assert.NotEqual(t, second, m.SelectedTask().ID)
}

func TestModel_AddTaskFlow(t *testing.T) {
	m, c, file := newTestModel(t)

	press(m, "n")
	assert.Equal(t, ModeInputTitle, m.Mode())

	typeText(m, "Buy milk")
	press(m, "tab")
	assert.Equal(t, domain.PriorityHigh, m.priority)

	press(m, "enter")
	assert.Equal(t, ModeInputDue, m.Mode())

	typeText(m, "2025-06-12")
	cmd := press(m, "enter")
	require.NotNil(t, cmd)
	assert.True(t, m.busy)

	drain(t, m, cmd)

	assert.Equal(t, ModeNormal, m.Mode())
	assert.False(t, m.busy)
	assert.Equal(t, "Added task #1", m.notice)
	assert.Equal(t, 1, file.SaveCalls)

	task, ok := c.Tasks.Get(1)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	require.NotNil(t, task.Due)
	assert.Equal(t, "2025-06-12", task.Due.String())
	require.Len(t, m.tasks, 1)
}

func TestModel_AddTask_TitleModeSwallowsCommandKeys(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "n")
	press(m, "q")
	assert.Equal(t, ModeInputTitle, m.Mode())
	assert.Equal(t, "q", m.titleInput.Value())
}

func TestModel_AddTask_EmptyTitleIsIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "n")
	typeText(m, "   ")
	press(m, "enter")
	assert.Equal(t, ModeInputTitle, m.Mode())
}

func TestModel_AddTask_InvalidDue(t *testing.T) {
	m, _, file := newTestModel(t)

	press(m, "n")
	typeText(m, "Task")
	press(m, "enter")
	typeText(m, "next week")
	cmd := press(m, "enter")

	assert.Nil(t, cmd)
	assert.Error(t, m.err)
	assert.Equal(t, ModeInputDue, m.Mode())
	assert.False(t, m.busy)
	assert.Zero(t, file.SaveCalls)
}

func TestModel_AddTask_Escape(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "n")
	typeText(m, "Task")
	press(m, "enter")
	press(m, "esc")
	assert.Equal(t, ModeInputTitle, m.Mode())
	assert.Equal(t, "Task", m.titleInput.Value())

	press(m, "esc")
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Empty(t, m.titleInput.Value())
}

func TestModel_AddTask_DuplicateShowsError(t *testing.T) {
	m, c, _ := newTestModel(t)
	seed(t, c, "Buy milk", domain.PriorityMedium, nil)

	press(m, "n")
	typeText(m, "buy milk")
	press(m, "enter")
	drain(t, m, press(m, "enter"))

	assert.ErrorIs(t, m.err, domain.ErrDuplicateTask)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.False(t, m.busy)
	assert.Equal(t, 1, c.Tasks.Len())
}

func TestModel_CyclePriority_Wraps(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.priority = domain.PriorityCritical
	m.cyclePriority()
	assert.Equal(t, domain.PriorityLow, m.priority)
}

func TestModel_CompleteTask(t *testing.T) {
	m, c, file := newTestModel(t)
	id := seed(t, c, "Pay rent", domain.PriorityHigh, nil)
	seed(t, c, "Water plants", domain.PriorityLow, nil)
	drain(t, m, m.Init())

	drain(t, m, press(m, "c"))

	task, ok := c.Tasks.Get(id)
	require.True(t, ok)
	assert.Equal(t, domain.StatusCompleted, task.Status)
	assert.Equal(t, 1, file.SaveCalls)
	assert.Equal(t, "Task #1 completed", m.notice)
	require.Len(t, m.tasks, 1)
	assert.Equal(t, "Water plants", m.tasks[0].Title)
}

func TestModel_ArchiveTask(t *testing.T) {
	m, c, _ := newTestModel(t)
	id := seed(t, c, "Old idea", domain.PriorityLow, nil)
	drain(t, m, m.Init())

	drain(t, m, press(m, "a"))

	task, ok := c.Tasks.Get(id)
	require.True(t, ok)
	assert.Equal(t, domain.StatusArchived, task.Status)
	assert.Empty(t, m.tasks)
	assert.Nil(t, m.next)
}

func TestModel_DeleteTask_RequiresConfirmation(t *testing.T) {
	m, c, _ := newTestModel(t)
	id := seed(t, c, "Mistake", domain.PriorityLow, nil)
	drain(t, m, m.Init())

	press(m, "d")
	assert.Equal(t, ModeConfirm, m.Mode())
	assert.Equal(t, ConfirmDelete, m.confirmAction)
	assert.Equal(t, id, m.confirmTaskID)

	press(m, "n")
	assert.Equal(t, ModeNormal, m.Mode())
	_, ok := c.Tasks.Get(id)
	assert.True(t, ok)

	press(m, "d")
	drain(t, m, press(m, "y"))

	_, ok = c.Tasks.Get(id)
	assert.False(t, ok)
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, ConfirmNone, m.confirmAction)
	assert.Empty(t, m.tasks)
}

func TestModel_BusyBlocksChanges(t *testing.T) {
	m, c, _ := newTestModel(t)
	seed(t, c, "Task", domain.PriorityLow, nil)
	drain(t, m, m.Init())
	m.busy = true

	assert.Nil(t, press(m, "c"))
	assert.Nil(t, press(m, "a"))
	assert.Nil(t, press(m, "n"))
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestModel_ActionsWithoutSelection(t *testing.T) {
	m, _, _ := newTestModel(t)
	drain(t, m, m.Init())

	assert.Nil(t, press(m, "c"))
	assert.Nil(t, press(m, "a"))
	assert.Nil(t, press(m, "d"))
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestModel_SaveErrorIsShown(t *testing.T) {
	m, c, file := newTestModel(t)
	seed(t, c, "Task", domain.PriorityLow, nil)
	drain(t, m, m.Init())
	file.SaveErr = errors.New("disk full")

	drain(t, m, press(m, "c"))

	require.Error(t, m.err)
	assert.Contains(t, m.err.Error(), "disk full")
	assert.False(t, m.busy)
}

func TestModel_FilterCycle(t *testing.T) {
	m, c, _ := newTestModel(t)
	seed(t, c, "Open", domain.PriorityLow, nil)
	done := seed(t, c, "Done", domain.PriorityLow, nil)
	require.True(t, c.Tasks.Complete(done))
	drain(t, m, m.Init())
	require.Len(t, m.tasks, 1)

	drain(t, m, press(m, "f"))
	assert.Equal(t, domain.StatusAll, m.Filter())
	assert.Len(t, m.tasks, 2)

	drain(t, m, press(m, "f"))
	assert.Equal(t, domain.StatusCompleted, m.Filter())
	require.Len(t, m.tasks, 1)
	assert.Equal(t, done, m.tasks[0].ID)

	drain(t, m, press(m, "f"))
	assert.Equal(t, domain.StatusArchived, m.Filter())
	assert.Empty(t, m.tasks)

	drain(t, m, press(m, "f"))
	assert.Equal(t, domain.StatusPending, m.Filter())
}

func TestModel_HelpMode(t *testing.T) {
	m, _, _ := newTestModel(t)

	press(m, "?")
	assert.Equal(t, ModeHelp, m.Mode())
	press(m, "esc")
	assert.Equal(t, ModeNormal, m.Mode())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newTestModel(t)

	cmd := press(m, "q")
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}

func TestModel_MsgError(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.mode = ModeConfirm
	m.confirmAction = ConfirmDelete
	m.busy = true

	m.Update(MsgError{Err: errors.New("boom")})

	assert.EqualError(t, m.err, "boom")
	assert.Equal(t, ModeNormal, m.Mode())
	assert.Equal(t, ConfirmNone, m.confirmAction)
	assert.False(t, m.busy)
}

func TestModel_KeyPressClearsMessages(t *testing.T) {
	m, _, _ := newTestModel(t)
	m.err = errors.New("old")
	m.notice = "old"

	press(m, "r")

	assert.NoError(t, m.err)
	assert.Empty(t, m.notice)
}

func TestModel_NearCapacityNotice(t *testing.T) {
	m, _, _ := newTestModel(t)
	drain(t, m, func() tea.Msg { return MsgTaskCreated{TaskID: 91, NearCapacity: true} })
	assert.Contains(t, m.notice, "nearing capacity")
}
