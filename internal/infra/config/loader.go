// Package config loads and manages taskmaster configuration files.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskmaster/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	workDir       string // Directory searched for .taskmaster.toml
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskmaster)
}

// NewLoader creates a new Loader.
func NewLoader(workDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: defaultGlobalConfigDir(),
	}
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(workDir, globalConfDir string) *Loader {
	return &Loader{
		workDir:       workDir,
		globalConfDir: globalConfDir,
	}
}

// defaultGlobalConfigDir returns the default global config directory.
func defaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// Load returns the merged configuration.
// Local config takes precedence over global config.
func (l *Loader) Load() (*domain.Config, error) {
	cfg := domain.NewDefaultConfig()

	// Merge: default <- global <- local (later takes precedence)
	for _, path := range []string{l.globalPath(), l.localPath()} {
		if path == "" {
			continue
		}
		layer, err := loadFile(path)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", path, err)
		}
		layer.apply(cfg)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (l *Loader) globalPath() string {
	if l.globalConfDir == "" {
		return ""
	}
	return filepath.Join(l.globalConfDir, domain.ConfigFileName)
}

func (l *Loader) localPath() string {
	if l.workDir == "" {
		return ""
	}
	return filepath.Join(l.workDir, domain.LocalConfigFileName)
}

// layer holds the values set by one config file. Nil means unset.
type layer struct {
	storePath        *string
	storeFormat      *string
	logLevel         *string
	capacity         *int
	warnThreshold    *int
	recentWindowDays *int
	titleWidth       *int
	warnings         []string
}

// loadFile loads a configuration layer from a file.
func loadFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
	}

	return convertRaw(raw), nil
}

// convertRaw converts the raw map to a layer and collects warnings.
func convertRaw(raw map[string]any) *layer {
	res := &layer{}
	var warnings []string

	section := func(name string, value any, keys map[string]func(any) bool) {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("[%s] must be a table", name))
			return
		}
		for k, v := range m {
			set, known := keys[k]
			switch {
			case !known:
				warnings = append(warnings, fmt.Sprintf("unknown key in [%s]: %s", name, k))
			case !set(v):
				warnings = append(warnings, fmt.Sprintf("invalid value for [%s].%s: %v", name, k, v))
			}
		}
	}

	for name, value := range raw {
		switch name {
		case "store":
			section(name, value, map[string]func(any) bool{
				"path":   setString(&res.storePath),
				"format": setString(&res.storeFormat),
			})
		case "limits":
			section(name, value, map[string]func(any) bool{
				"capacity":           setInt(&res.capacity),
				"warn_threshold":     setInt(&res.warnThreshold),
				"recent_window_days": setInt(&res.recentWindowDays),
			})
		case "display":
			section(name, value, map[string]func(any) bool{
				"title_width": setInt(&res.titleWidth),
			})
		case "log":
			section(name, value, map[string]func(any) bool{
				"level": setString(&res.logLevel),
			})
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", name))
		}
	}

	sort.Strings(warnings)
	res.warnings = warnings
	return res
}

func setString(dst **string) func(any) bool {
	return func(v any) bool {
		s, ok := v.(string)
		if ok {
			*dst = &s
		}
		return ok
	}
}

func setInt(dst **int) func(any) bool {
	return func(v any) bool {
		n, ok := v.(int64)
		if ok {
			i := int(n)
			*dst = &i
		}
		return ok
	}
}

// apply overrides cfg with every value set in the layer.
func (l *layer) apply(cfg *domain.Config) {
	if l.storePath != nil {
		cfg.Store.Path = *l.storePath
	}
	if l.storeFormat != nil {
		cfg.Store.Format = *l.storeFormat
	}
	if l.logLevel != nil {
		cfg.Log.Level = *l.logLevel
	}
	if l.capacity != nil {
		cfg.Limits.Capacity = *l.capacity
	}
	if l.warnThreshold != nil {
		cfg.Limits.WarnThreshold = *l.warnThreshold
	}
	if l.recentWindowDays != nil {
		cfg.Limits.RecentWindowDays = *l.recentWindowDays
	}
	if l.titleWidth != nil {
		cfg.Display.TitleWidth = *l.titleWidth
	}
	cfg.Warnings = append(cfg.Warnings, l.warnings...)
}
