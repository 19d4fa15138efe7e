package usecase

import (
	"context"

	"github.com/runoshun/taskmaster/internal/domain"
)

// ListTasksInput contains the parameters for listing tasks.
type ListTasksInput struct {
	Status domain.Status // Status filter (StatusAll = every task)
}

// ListTasksOutput contains the result of listing tasks.
// Fields are ordered to minimize memory padding.
type ListTasksOutput struct {
	Tasks []domain.Task // Tasks in descending urgency order
	Today domain.Date   // Reference date for due-date display
}

// ListTasks is the use case for listing tasks.
type ListTasks struct {
	tasks domain.TaskStore
	clock domain.Clock
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(tasks domain.TaskStore, clock domain.Clock) *ListTasks {
	return &ListTasks{
		tasks: tasks,
		clock: clock,
	}
}

// Execute returns the tasks matching the filter, most urgent first.
func (uc *ListTasks) Execute(_ context.Context, in ListTasksInput) (*ListTasksOutput, error) {
	return &ListTasksOutput{
		Tasks: uc.tasks.ListTasks(in.Status),
		Today: domain.Today(uc.clock),
	}, nil
}
