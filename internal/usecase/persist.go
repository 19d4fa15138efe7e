// Package usecase contains application use cases.
package usecase

import (
	"fmt"

	"github.com/runoshun/taskmaster/internal/domain"
)

// saveTasks writes the whole task set once after a mutation.
// The in-memory state is kept when the save fails.
func saveTasks(store domain.TaskStore, file domain.TaskFile) error {
	if err := file.Save(store.Snapshot()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
