package usecase

import (
	"context"

	"github.com/runoshun/taskmaster/internal/domain"
)

// TaskIDInput identifies a single task.
type TaskIDInput struct {
	TaskID int // Task ID (required)
}

// TaskOutput contains the task a use case acted on.
type TaskOutput struct {
	Task domain.Task // State after the operation
}

// CompleteTask is the use case for marking a task completed.
type CompleteTask struct {
	tasks domain.TaskStore
	file  domain.TaskFile
}

// NewCompleteTask creates a new CompleteTask use case.
func NewCompleteTask(tasks domain.TaskStore, file domain.TaskFile) *CompleteTask {
	return &CompleteTask{tasks: tasks, file: file}
}

// Execute marks the task completed and saves.
func (uc *CompleteTask) Execute(_ context.Context, in TaskIDInput) (*TaskOutput, error) {
	return changeStatus(uc.tasks, uc.file, in.TaskID, uc.tasks.Complete)
}

// ArchiveTask is the use case for archiving a task.
type ArchiveTask struct {
	tasks domain.TaskStore
	file  domain.TaskFile
}

// NewArchiveTask creates a new ArchiveTask use case.
func NewArchiveTask(tasks domain.TaskStore, file domain.TaskFile) *ArchiveTask {
	return &ArchiveTask{tasks: tasks, file: file}
}

// Execute archives the task and saves.
func (uc *ArchiveTask) Execute(_ context.Context, in TaskIDInput) (*TaskOutput, error) {
	return changeStatus(uc.tasks, uc.file, in.TaskID, uc.tasks.Archive)
}

func changeStatus(tasks domain.TaskStore, file domain.TaskFile, id int, apply func(int) bool) (*TaskOutput, error) {
	if !apply(id) {
		return nil, domain.ErrTaskNotFound
	}
	if err := saveTasks(tasks, file); err != nil {
		return nil, err
	}
	task, _ := tasks.Get(id)
	return &TaskOutput{Task: task}, nil
}
