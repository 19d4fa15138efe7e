package usecase

import (
	"context"

	"github.com/runoshun/taskmaster/internal/domain"
)

// DeleteTask is the use case for deleting a task.
type DeleteTask struct {
	tasks domain.TaskStore
	file  domain.TaskFile
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(tasks domain.TaskStore, file domain.TaskFile) *DeleteTask {
	return &DeleteTask{
		tasks: tasks,
		file:  file,
	}
}

// Execute removes the task and saves. The output holds the removed task.
func (uc *DeleteTask) Execute(_ context.Context, in TaskIDInput) (*TaskOutput, error) {
	task, ok := uc.tasks.Get(in.TaskID)
	if !ok || !uc.tasks.Remove(in.TaskID) {
		return nil, domain.ErrTaskNotFound
	}

	if err := saveTasks(uc.tasks, uc.file); err != nil {
		return nil, err
	}

	return &TaskOutput{Task: task}, nil
}
