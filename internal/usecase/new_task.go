package usecase

import (
	"context"
	"log/slog"

	"github.com/runoshun/taskmaster/internal/domain"
)

// NewTaskInput contains the parameters for creating a new task.
// Fields are ordered to minimize memory padding.
type NewTaskInput struct {
	Due      *domain.Date     // Due date (optional)
	Priority *domain.Priority // Priority (optional, nil = medium)
	Title    string           // Task title (required)
}

// NewTaskOutput contains the result of creating a new task.
type NewTaskOutput struct {
	TaskID       int  // The ID of the created task
	TaskCount    int  // Stored tasks after the insert
	NearCapacity bool // The store is above its warning threshold
}

// NewTask is the use case for creating a new task.
type NewTask struct {
	tasks  domain.TaskStore
	file   domain.TaskFile
	logger *slog.Logger
}

// NewNewTask creates a new NewTask use case.
func NewNewTask(tasks domain.TaskStore, file domain.TaskFile, logger *slog.Logger) *NewTask {
	return &NewTask{
		tasks:  tasks,
		file:   file,
		logger: logger,
	}
}

// Execute creates a new task with the given input.
func (uc *NewTask) Execute(_ context.Context, in NewTaskInput) (*NewTaskOutput, error) {
	priority := domain.DefaultPriority
	if in.Priority != nil {
		priority = *in.Priority
	}

	id, err := uc.tasks.Create(in.Title, priority, in.Due)
	if err != nil {
		return nil, err
	}

	if err := saveTasks(uc.tasks, uc.file); err != nil {
		return nil, err
	}

	if uc.logger != nil {
		uc.logger.Info("task created", "id", id)
	}

	return &NewTaskOutput{
		TaskID:       id,
		TaskCount:    uc.tasks.Len(),
		NearCapacity: uc.tasks.NearCapacity(),
	}, nil
}
