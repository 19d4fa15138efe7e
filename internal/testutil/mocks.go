// Package testutil provides shared test doubles.
package testutil

import (
	"time"

	"github.com/runoshun/taskmaster/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// NewMockClock returns a clock fixed at midnight UTC of the given date.
func NewMockClock(year int, month time.Month, day int) *MockClock {
	return &MockClock{NowTime: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// Ensure MockTaskFile implements domain.TaskFile.
var _ domain.TaskFile = (*MockTaskFile)(nil)

// MockTaskFile is an in-memory domain.TaskFile.
// Fields are ordered to minimize memory padding.
type MockTaskFile struct {
	LoadErr   error
	SaveErr   error
	Tasks     []domain.Task
	FilePath  string
	SaveCalls int
}

// NewMockTaskFile returns an empty MockTaskFile.
func NewMockTaskFile() *MockTaskFile {
	return &MockTaskFile{FilePath: "tasks.jsonl"}
}

// Load returns the stored tasks.
func (m *MockTaskFile) Load() ([]domain.Task, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return append([]domain.Task(nil), m.Tasks...), nil
}

// Save records the tasks unless SaveErr is set.
func (m *MockTaskFile) Save(tasks []domain.Task) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Tasks = append([]domain.Task(nil), tasks...)
	return nil
}

// Path returns the configured path.
func (m *MockTaskFile) Path() string {
	return m.FilePath
}

// Ensure MockConfigLoader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*MockConfigLoader)(nil)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// Ensure MockConfigManager implements domain.ConfigManager.
var _ domain.ConfigManager = (*MockConfigManager)(nil)

// MockConfigManager is a test double for domain.ConfigManager.
// Fields are ordered to minimize memory padding.
type MockConfigManager struct {
	InitErr    error
	InitConfig *domain.Config
	Global     domain.ConfigInfo
	Local      domain.ConfigInfo
	InitCalled bool
}

// GlobalConfigInfo returns the configured global info.
func (m *MockConfigManager) GlobalConfigInfo() domain.ConfigInfo {
	return m.Global
}

// LocalConfigInfo returns the configured local info.
func (m *MockConfigManager) LocalConfigInfo() domain.ConfigInfo {
	return m.Local
}

// InitGlobalConfig records the call and returns the global path.
func (m *MockConfigManager) InitGlobalConfig(cfg *domain.Config) (string, error) {
	m.InitCalled = true
	m.InitConfig = cfg
	if m.InitErr != nil {
		return "", m.InitErr
	}
	return m.Global.Path, nil
}
