package usecase

import (
	"context"

	"github.com/runoshun/taskmaster/internal/domain"
)

// ShowConfigOutput contains the output of the ShowConfig use case.
// Fields are ordered to minimize memory padding.
type ShowConfigOutput struct {
	Effective    *domain.Config    // Merged configuration in use
	GlobalConfig domain.ConfigInfo // Global config file info
	LocalConfig  domain.ConfigInfo // Working-directory config file info
	TaskFile     string            // Resolved task file path
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	config        *domain.Config
	taskFile      domain.TaskFile
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, cfg *domain.Config, taskFile domain.TaskFile) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		config:        cfg,
		taskFile:      taskFile,
	}
}

// Execute retrieves configuration file information.
func (uc *ShowConfig) Execute(_ context.Context) (*ShowConfigOutput, error) {
	return &ShowConfigOutput{
		Effective:    uc.config,
		GlobalConfig: uc.configManager.GlobalConfigInfo(),
		LocalConfig:  uc.configManager.LocalConfigInfo(),
		TaskFile:     uc.taskFile.Path(),
	}, nil
}

// InitConfigOutput contains the output of the InitConfig use case.
type InitConfigOutput struct {
	Path string // Path to the created config file
}

// InitConfig generates the global configuration file.
type InitConfig struct {
	configManager domain.ConfigManager
}

// NewInitConfig creates a new InitConfig use case.
func NewInitConfig(configManager domain.ConfigManager) *InitConfig {
	return &InitConfig{
		configManager: configManager,
	}
}

// Execute writes a commented template with default values.
func (uc *InitConfig) Execute(_ context.Context) (*InitConfigOutput, error) {
	path, err := uc.configManager.InitGlobalConfig(domain.NewDefaultConfig())
	if err != nil {
		return nil, err
	}
	return &InitConfigOutput{Path: path}, nil
}
