// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/infra/codec"
	"github.com/runoshun/taskmaster/internal/infra/config"
	"github.com/runoshun/taskmaster/internal/infra/filestore"
	"github.com/runoshun/taskmaster/internal/infra/logging"
	"github.com/runoshun/taskmaster/internal/taskstore"
	"github.com/runoshun/taskmaster/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir      string // Directory the command runs in
	TaskFilePath string // Resolved task file
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Tasks         domain.TaskStore
	TaskFile      domain.TaskFile
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager

	// Pointer fields
	AppConfig *domain.Config
	Logger    *slog.Logger

	// Configuration
	Config Config

	logOutput *logging.Output // Destination of Logger (nil = fixed)
}

// New creates a Container for the given working directory and loads the task file.
func New(dir string) (*Container, error) {
	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	logOutput := logging.NewOutput(os.Stderr)
	logger := logging.New(logOutput, logging.ParseLevel(appConfig.Log.Level))

	path, err := ResolveTaskFilePath(dir, appConfig, os.Getenv)
	if err != nil {
		return nil, err
	}
	c, err := codec.ForPath(path, appConfig.Store.Format)
	if err != nil {
		return nil, err
	}
	file := filestore.New(path, c, logger)

	clock := domain.RealClock{}
	store := taskstore.New(appConfig.Limits, clock, logger)
	tasks, err := file.Load()
	if err != nil {
		return nil, err
	}
	store.Restore(tasks)

	return &Container{
		Tasks:         store,
		TaskFile:      file,
		Clock:         clock,
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		AppConfig:     appConfig,
		Logger:        logger,
		Config: Config{
			WorkDir:      dir,
			TaskFilePath: path,
		},
		logOutput: logOutput,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, tasks domain.TaskStore, file domain.TaskFile, clock domain.Clock, appConfig *domain.Config, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Container{
		Tasks:     tasks,
		TaskFile:  file,
		Clock:     clock,
		AppConfig: appConfig,
		Logger:    logger,
		Config:    cfg,
	}
}

// LogFilePath returns the log file used while stderr belongs to the TUI.
func (c *Container) LogFilePath() string {
	if c.Config.TaskFilePath == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(c.Config.TaskFilePath), domain.LogFileName)
}

// RedirectLogs sends log output to LogFilePath until the returned function is
// called. Logs are dropped if the file cannot be opened.
func (c *Container) RedirectLogs() (restore func()) {
	if c.logOutput == nil {
		return func() {}
	}

	var (
		dest io.Writer = io.Discard
		file *os.File
	)
	if path := c.LogFilePath(); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err == nil {
			f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
			if err == nil {
				dest, file = f, f
			}
		}
	}

	prev := c.logOutput.Swap(dest)
	return func() {
		c.logOutput.Swap(prev)
		if file != nil {
			_ = file.Close()
		}
	}
}

// ResolveTaskFilePath returns the task file location.
// Precedence: $TASKMASTER_FILE, [store].path, then $XDG_DATA_HOME/taskmaster/tasks.jsonl.
// Relative paths are resolved against dir.
func ResolveTaskFilePath(dir string, cfg *domain.Config, getenv func(string) string) (string, error) {
	for _, p := range []string{getenv(domain.TaskFileEnv), cfg.Store.Path} {
		if p = strings.TrimSpace(p); p != "" {
			return absPath(dir, p)
		}
	}

	dataHome := getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve data directory: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DefaultTaskFilePath(dataHome), nil
}

func absPath(dir, p string) (string, error) {
	if p == "~" || strings.HasPrefix(p, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("expand home directory: %w", err)
		}
		p = filepath.Join(home, strings.TrimPrefix(p, "~"))
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p), nil
	}
	return filepath.Join(dir, p), nil
}

// UseCase factory methods

// NewTaskUseCase returns a new NewTask use case.
func (c *Container) NewTaskUseCase() *usecase.NewTask {
	return usecase.NewNewTask(c.Tasks, c.TaskFile, c.Logger)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks, c.Clock)
}

// NextTaskUseCase returns a new NextTask use case.
func (c *Container) NextTaskUseCase() *usecase.NextTask {
	return usecase.NewNextTask(c.Tasks, c.Clock)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Tasks, c.Clock)
}

// CompleteTaskUseCase returns a new CompleteTask use case.
func (c *Container) CompleteTaskUseCase() *usecase.CompleteTask {
	return usecase.NewCompleteTask(c.Tasks, c.TaskFile)
}

// ArchiveTaskUseCase returns a new ArchiveTask use case.
func (c *Container) ArchiveTaskUseCase() *usecase.ArchiveTask {
	return usecase.NewArchiveTask(c.Tasks, c.TaskFile)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks, c.TaskFile)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.AppConfig, c.TaskFile)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
