package domain

import "time"

// TaskStore is the authoritative in-memory task set with its urgency ranking.
type TaskStore interface {
	// Create validates and adds a pending task, returning its ID.
	Create(title string, priority Priority, due *Date) (int, error)

	// Complete marks a task completed. Returns false if the ID is unknown.
	Complete(id int) bool

	// Archive marks a task archived. Returns false if the ID is unknown.
	Archive(id int) bool

	// Remove deletes a task. Returns false if the ID is unknown.
	Remove(id int) bool

	// Get returns a copy of the task with the given ID.
	Get(id int) (Task, bool)

	// RetrieveNextPending returns the highest-ranked pending task.
	RetrieveNextPending() (Task, bool)

	// ListTasks returns tasks matching filter in descending urgency order.
	ListTasks(filter Status) []Task

	// Len returns the number of stored tasks of every status.
	Len() int

	// Snapshot returns every task for persistence.
	Snapshot() []Task

	// NearCapacity reports whether the task count is above the warning threshold.
	NearCapacity() bool
}

// TaskFile loads and saves the whole task set.
type TaskFile interface {
	// Load reads all acceptable task records. A missing file yields no tasks.
	Load() ([]Task, error)

	// Save replaces the file with the given tasks.
	Save(tasks []Task) error

	// Path returns the file location.
	Path() string
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults, global, local).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// GlobalConfigInfo returns information about the global config file.
	GlobalConfigInfo() ConfigInfo

	// LocalConfigInfo returns information about the working-directory config file.
	LocalConfigInfo() ConfigInfo

	// InitGlobalConfig writes the default config template to the global path.
	InitGlobalConfig(cfg *Config) (string, error)
}

// ConfigInfo describes a configuration file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}
