// Package filestore persists the task set to a single file on disk.
package filestore

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"

	"github.com/natefinch/atomic"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/infra/codec"
)

const filePerm = 0o600

// Store implements domain.TaskFile on top of a codec.
// Fields are ordered to minimize memory padding.
type Store struct {
	codec    codec.Codec
	logger   *slog.Logger
	path     string
	lockPath string
}

// Ensure Store implements domain.TaskFile.
var _ domain.TaskFile = (*Store)(nil)

// New creates a Store for the file at path.
func New(path string, c codec.Codec, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Store{
		codec:    c,
		logger:   logger,
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every acceptable record from the file.
// A missing file is an empty task set and creates nothing on disk.
func (s *Store) Load() ([]domain.Task, error) {
	if _, err := os.Stat(s.path); isMissing(err) {
		return nil, nil
	}

	var tasks []domain.Task
	err := s.withLock(syscall.LOCK_SH, func() error {
		f, err := os.Open(s.path)
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		if err != nil {
			return err
		}
		defer func() { _ = f.Close() }()

		res := s.codec.Decode(f)
		if res.Skipped > 0 {
			s.logger.Debug("skipped unreadable records",
				"path", s.path, "skipped", res.Skipped, "format", s.codec.Name())
		}
		tasks = res.Tasks
		return nil
	})
	if err != nil {
		return nil, &domain.PersistenceError{Op: "load", Path: s.path, Err: err}
	}
	return tasks, nil
}

// Save replaces the file contents with tasks.
func (s *Store) Save(tasks []domain.Task) error {
	var buf bytes.Buffer
	if err := s.codec.Encode(&buf, tasks); err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	err := s.withLock(syscall.LOCK_EX, func() error {
		if err := atomic.WriteFile(s.path, &buf); err != nil {
			return fmt.Errorf("write file: %w", err)
		}
		// atomic.WriteFile leaves new files with the temp file mode.
		if err := os.Chmod(s.path, filePerm); err != nil {
			return fmt.Errorf("set permissions: %w", err)
		}
		return nil
	})
	if err != nil {
		return &domain.PersistenceError{Op: "save", Path: s.path, Err: err}
	}

	s.logger.Debug("saved tasks", "path", s.path, "count", len(tasks))
	return nil
}

// isMissing reports whether err means the file does not exist, including a
// parent path component that is not a directory.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}

func (s *Store) withLock(lockType int, fn func() error) error {
	lock, err := s.acquireLock(lockType)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)
	return fn()
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return nil, fmt.Errorf("create directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, filePerm)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}
