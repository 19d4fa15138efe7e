package domain

import (
	"errors"
	"fmt"
)

// Domain errors.
var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrEmptyTitle        = errors.New("title cannot be empty")
	ErrDuplicateTask     = errors.New("a pending task with the same title and due date already exists")
	ErrCapacityExceeded  = errors.New("task store is full")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidConfig     = errors.New("invalid configuration")
	ErrConfigExists      = errors.New("config file already exists")
	ErrUnknownFileFormat = errors.New("unknown task file format")
)

// ValidationError reports rejected input. The store state is unchanged when it is returned.
type ValidationError struct {
	Err error // One of ErrEmptyTitle, ErrDuplicateTask, ErrCapacityExceeded
}

func (e *ValidationError) Error() string {
	return e.Err.Error()
}

// Unwrap returns the underlying sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidationError reports whether err is or wraps a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// PersistenceError reports a failure to read or write the task file.
// The in-memory state is kept when a save fails.
type PersistenceError struct {
	Err  error
	Op   string // "load" or "save"
	Path string
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying I/O error.
func (e *PersistenceError) Unwrap() error {
	return e.Err
}
