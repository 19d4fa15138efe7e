package usecase

import (
	"context"

	"github.com/runoshun/taskmaster/internal/domain"
)

// NextTaskOutput contains the most urgent pending task.
// Fields are ordered to minimize memory padding.
type NextTaskOutput struct {
	Task  *domain.Task // Nil when nothing is pending
	Today domain.Date  // Reference date for due-date display
}

// NextTask is the use case for retrieving the most urgent pending task.
type NextTask struct {
	tasks domain.TaskStore
	clock domain.Clock
}

// NewNextTask creates a new NextTask use case.
func NewNextTask(tasks domain.TaskStore, clock domain.Clock) *NextTask {
	return &NextTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute returns the highest-ranked pending task without changing its status.
func (uc *NextTask) Execute(_ context.Context) (*NextTaskOutput, error) {
	out := &NextTaskOutput{Today: domain.Today(uc.clock)}
	if task, ok := uc.tasks.RetrieveNextPending(); ok {
		out.Task = &task
	}
	return out, nil
}
