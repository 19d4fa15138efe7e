package usecase

import (
	"context"

	"github.com/runoshun/taskmaster/internal/domain"
)

// ShowTaskOutput contains the task details and derived due-date facts.
// Fields are ordered to minimize memory padding.
type ShowTaskOutput struct {
	Task      domain.Task
	Today     domain.Date
	DaysUntil int  // Days until due (valid when HasDue)
	HasDue    bool // Task has a due date
	Overdue   bool // Due date passed and the task is not completed
}

// ShowTask is the use case for displaying task details.
type ShowTask struct {
	tasks domain.TaskStore
	clock domain.Clock
}

// NewShowTask creates a new ShowTask use case.
func NewShowTask(tasks domain.TaskStore, clock domain.Clock) *ShowTask {
	return &ShowTask{
		tasks: tasks,
		clock: clock,
	}
}

// Execute retrieves the task details.
func (uc *ShowTask) Execute(_ context.Context, in TaskIDInput) (*ShowTaskOutput, error) {
	task, ok := uc.tasks.Get(in.TaskID)
	if !ok {
		return nil, domain.ErrTaskNotFound
	}

	today := domain.Today(uc.clock)
	days, hasDue := domain.DaysUntilDue(task, today)
	return &ShowTaskOutput{
		Task:      task,
		Today:     today,
		DaysUntil: days,
		HasDue:    hasDue,
		Overdue:   domain.IsOverdue(task, today),
	}, nil
}
