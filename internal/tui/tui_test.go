package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/taskmaster/internal/app"
	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/taskstore"
	"github.com/runoshun/taskmaster/internal/testutil"
	"github.com/stretchr/testify/require"
)

var testToday = domain.NewDate(2025, time.June, 10)

// newContainerOnly returns a container backed by an in-memory task file.
func newContainerOnly(t *testing.T) *app.Container {
	c, _ := newContainer(t)
	return c
}

func newContainer(t *testing.T) (*app.Container, *testutil.MockTaskFile) {
	t.Helper()
	clock := testutil.NewMockClock(2025, time.June, 10)
	cfg := domain.NewDefaultConfig()
	file := testutil.NewMockTaskFile()
	store := taskstore.New(cfg.Limits, clock, nil)
	return app.NewWithDeps(app.Config{}, store, file, clock, cfg, nil), file
}

// newTestModel returns a sized Model backed by an in-memory task file.
func newTestModel(t *testing.T) (*Model, *app.Container, *testutil.MockTaskFile) {
	t.Helper()
	c, file := newContainer(t)
	m := New(c)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return m, c, file
}

// seed creates a task directly in the store.
func seed(t *testing.T, c *app.Container, title string, p domain.Priority, due *domain.Date) int {
	t.Helper()
	id, err := c.Tasks.Create(title, p, due)
	require.NoError(t, err)
	return id
}

// drain runs cmd and feeds the resulting messages back into m until no command is left.
// Only use it with commands that produce data messages.
func drain(t *testing.T, m *Model, cmd tea.Cmd) {
	t.Helper()
	for i := 0; cmd != nil; i++ {
		require.Less(t, i, 10, "too many chained commands")
		_, cmd = m.Update(cmd())
	}
}

// press sends a single key press to m.
func press(m *Model, k string) tea.Cmd {
	_, cmd := m.Update(keyMsg(k))
	return cmd
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

// typeText sends text to the focused input as a single rune burst.
func typeText(m *Model, text string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}
