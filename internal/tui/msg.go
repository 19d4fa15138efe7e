package tui

import "github.com/runoshun/taskmaster/internal/domain"

// Msg is the sealed interface for all TUI messages.
// All message types must implement the sealed() method.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgTasksLoaded is sent when the ranked task list is loaded.
// Fields are ordered to minimize memory padding.
type MsgTasksLoaded struct {
	Next  *domain.Task // Most urgent pending task (nil = none)
	Tasks []domain.Task
	Today domain.Date
}

func (MsgTasksLoaded) sealed() {}

// MsgTaskCreated is sent when a new task is created.
type MsgTaskCreated struct {
	TaskID       int
	NearCapacity bool
}

func (MsgTaskCreated) sealed() {}

// MsgTaskChanged is sent when a task is completed, archived or deleted.
type MsgTaskChanged struct {
	Action string // "completed", "archived" or "deleted"
	TaskID int
}

func (MsgTaskChanged) sealed() {}

// MsgError is sent when an operation fails.
type MsgError struct {
	Err error
}

func (MsgError) sealed() {}
