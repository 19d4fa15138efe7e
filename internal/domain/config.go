package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Config file locations.
const (
	AppDirName          = "taskmaster"       // Directory under XDG config/data homes
	ConfigFileName      = "config.toml"      // Global config file name
	LocalConfigFileName = ".taskmaster.toml" // Config file name in the working directory
	DefaultTaskFileName = "tasks.jsonl"      // Default task file name
	LogFileName         = "taskmaster.log"   // Log file next to the task file while the TUI runs
	TaskFileEnv         = "TASKMASTER_FILE"  // Environment override for the task file
)

// Default values.
const (
	DefaultCapacity      = 100
	DefaultWarnThreshold = 90
	DefaultLogLevel      = "warn"
)

// Config represents the application configuration.
type Config struct {
	Store    StoreConfig   `toml:"store"`
	Log      LogConfig     `toml:"log"`
	Warnings []string      `toml:"-"` // Unknown keys found while loading
	Limits   LimitsConfig  `toml:"limits"`
	Display  DisplayConfig `toml:"display"`
}

// StoreConfig holds [store] settings.
type StoreConfig struct {
	Path   string `toml:"path"`   // Task file path (empty = default data dir)
	Format string `toml:"format"` // "jsonl" or "yaml" (empty = infer from extension)
}

// LimitsConfig holds [limits] settings for the task store and scorer.
type LimitsConfig struct {
	Capacity         int `toml:"capacity"`           // Maximum number of stored tasks
	WarnThreshold    int `toml:"warn_threshold"`     // Soft warning above this count
	RecentWindowDays int `toml:"recent_window_days"` // Aging window of the urgency score
}

// DisplayConfig holds [display] settings.
type DisplayConfig struct {
	TitleWidth int `toml:"title_width"` // Titles longer than this are truncated
}

// LogConfig holds [log] settings.
type LogConfig struct {
	Level string `toml:"level"` // debug, info, warn, error
}

// NewDefaultConfig returns a Config with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Limits: DefaultLimits(),
		Display: DisplayConfig{
			TitleWidth: DefaultTitleWidth,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// DefaultLimits returns the reference store limits.
func DefaultLimits() LimitsConfig {
	return LimitsConfig{
		Capacity:         DefaultCapacity,
		WarnThreshold:    DefaultWarnThreshold,
		RecentWindowDays: DefaultRecentWindowDays,
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	if c.Display.TitleWidth < 0 {
		return fmt.Errorf("%w: display.title_width must not be negative", ErrInvalidConfig)
	}
	switch strings.ToLower(c.Store.Format) {
	case "", "jsonl", "json", "yaml", "yml":
	default:
		return fmt.Errorf("%w: store.format %q", ErrInvalidConfig, c.Store.Format)
	}
	return nil
}

// Validate checks that the limits are consistent.
func (l LimitsConfig) Validate() error {
	if l.Capacity <= 0 {
		return fmt.Errorf("%w: limits.capacity must be positive", ErrInvalidConfig)
	}
	if l.WarnThreshold < 0 || l.WarnThreshold > l.Capacity {
		return fmt.Errorf("%w: limits.warn_threshold must be between 0 and capacity", ErrInvalidConfig)
	}
	if l.RecentWindowDays <= 0 {
		return fmt.Errorf("%w: limits.recent_window_days must be positive", ErrInvalidConfig)
	}
	return nil
}

// GlobalConfigDir returns the global config directory under configHome.
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppDirName)
}

// DefaultTaskFilePath returns the default task file path under dataHome.
func DefaultTaskFilePath(dataHome string) string {
	return filepath.Join(dataHome, AppDirName, DefaultTaskFileName)
}

// RenderConfigTemplate renders a commented config file from cfg.
func RenderConfigTemplate(cfg *Config) string {
	var b strings.Builder
	b.WriteString("# taskmaster configuration\n\n")
	b.WriteString("[store]\n")
	b.WriteString("# Task file location (default: $XDG_DATA_HOME/taskmaster/tasks.jsonl)\n")
	fmt.Fprintf(&b, "# path = %q\n", cfg.Store.Path)
	b.WriteString("# File format: \"jsonl\" or \"yaml\" (default: inferred from the extension)\n")
	fmt.Fprintf(&b, "# format = %q\n\n", cfg.Store.Format)
	b.WriteString("[limits]\n")
	fmt.Fprintf(&b, "capacity = %d\n", cfg.Limits.Capacity)
	fmt.Fprintf(&b, "warn_threshold = %d\n", cfg.Limits.WarnThreshold)
	fmt.Fprintf(&b, "recent_window_days = %d\n\n", cfg.Limits.RecentWindowDays)
	b.WriteString("[display]\n")
	fmt.Fprintf(&b, "title_width = %d\n\n", cfg.Display.TitleWidth)
	b.WriteString("[log]\n")
	b.WriteString("# debug, info, warn, error\n")
	fmt.Fprintf(&b, "level = %q\n", cfg.Log.Level)
	return b.String()
}
