// Package cli provides the command-line interface for taskmaster.
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/runoshun/taskmaster/internal/app"
	"github.com/runoshun/taskmaster/internal/tui"
)

// Command group IDs.
const (
	groupTask  = "task"
	groupSetup = "setup"
)

// launchTUIFunc is a function variable for launching the TUI, allowing it to be mocked in tests.
var launchTUIFunc = launchTUI

func launchTUI(c *app.Container) error {
	restore := c.RedirectLogs()
	defer restore()

	p := tea.NewProgram(tui.New(c), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// NewRootCommand creates the root command for taskmaster.
// It receives the container for dependency injection and version for display.
func NewRootCommand(c *app.Container, version string) *cobra.Command {
	root := &cobra.Command{
		Use:   "taskmaster",
		Short: "Rank and track to-do items by urgency",
		Long: `taskmaster keeps a small list of tasks ranked by urgency.

Urgency combines the priority tier with how close the due date is,
so a critical task due today always comes before a low task with no date.
Run without arguments to open the interactive view.`,
		Version: version,
		// SilenceUsage prevents usage from being printed on errors
		SilenceUsage: true,
		// SilenceErrors prevents Cobra from printing errors (we handle it in main)
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if c == nil || c.AppConfig == nil {
				return nil
			}
			for _, w := range c.AppConfig.Warnings {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
			}
			return nil
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}

	root.AddGroup(
		&cobra.Group{ID: groupTask, Title: "Task Management:"},
		&cobra.Group{ID: groupSetup, Title: "Setup Commands:"},
	)

	taskCmds := []*cobra.Command{
		newAddCommand(c),
		newListCommand(c),
		newNextCommand(c),
		newShowCommand(c),
		newDoneCommand(c),
		newArchiveCommand(c),
		newRmCommand(c),
		newTUICommand(c),
	}
	for _, cmd := range taskCmds {
		cmd.GroupID = groupTask
		root.AddCommand(cmd)
	}

	configCmd := newConfigCommand(c)
	configCmd.GroupID = groupSetup
	root.AddCommand(configCmd)

	return root
}

// newTUICommand creates the tui command for launching the interactive TUI.
// This is the same as running taskmaster without arguments.
func newTUICommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Launch interactive TUI",
		Long:  `Launch the interactive terminal user interface for managing tasks.`,
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return launchTUIFunc(c)
		},
	}
}
