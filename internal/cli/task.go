package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/runoshun/taskmaster/internal/app"
	"github.com/runoshun/taskmaster/internal/domain"
	"github.com/runoshun/taskmaster/internal/usecase"
)

func newAddCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Priority string
		Due      string
	}

	cmd := &cobra.Command{
		Use:   "add <title...>",
		Short: "Add a pending task",
		Long: `Add a pending task.

The title is every remaining argument joined by spaces. A pending task
with the same title (ignoring case) and the same due date is rejected.

Priority tokens: low (l, 1), medium (m, 2), high (h, 3), critical (c, 4).
Unknown tokens fall back to medium.

Examples:
  # Add a task with the default medium priority
  taskmaster add Write release notes

  # Add a high priority task due on a date
  taskmaster add "Create instructions for PA1" -p high -d 2025-06-21`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := usecase.NewTaskInput{Title: strings.Join(args, " ")}

			if cmd.Flags().Changed("priority") {
				p, ok := domain.ParsePriority(opts.Priority)
				if !ok {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: unknown priority %q, using %s\n", opts.Priority, p)
				}
				in.Priority = &p
			}

			if opts.Due != "" {
				due, err := domain.ParseDate(opts.Due)
				if err != nil {
					return err
				}
				in.Due = &due
			}

			out, err := c.NewTaskUseCase().Execute(cmd.Context(), in)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added task #%d\n", out.TaskID)
			if out.NearCapacity {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Warning: task store is nearing capacity (%d of %d)\n",
					out.TaskCount, c.AppConfig.Limits.Capacity)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Priority, "priority", "p", domain.DefaultPriority.String(), "Priority (low, medium, high, critical)")
	cmd.Flags().StringVarP(&opts.Due, "due", "d", "", "Due date (YYYY-MM-DD)")

	return cmd
}

func newListCommand(c *app.Container) *cobra.Command {
	var opts struct {
		Status string
		All    bool
	}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List tasks by urgency",
		Long: `List tasks, most urgent first.

By default only pending tasks are shown. Overdue due dates are shown in red.

Examples:
  # List pending tasks
  taskmaster list

  # List every task
  taskmaster list -a

  # List completed tasks
  taskmaster list -s completed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status := domain.StatusAll
			if !opts.All {
				var err error
				status, err = domain.ParseStatus(opts.Status)
				if err != nil {
					return err
				}
			}

			out, err := c.ListTasksUseCase().Execute(cmd.Context(), usecase.ListTasksInput{Status: status})
			if err != nil {
				return err
			}

			if len(out.Tasks) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No tasks")
				return nil
			}
			printTaskTable(cmd.OutOrStdout(), out.Tasks, out.Today, c.AppConfig.Display.TitleWidth)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Status, "status", "s", domain.StatusPending.String(), "Status filter (pending, completed, archived, all)")
	cmd.Flags().BoolVarP(&opts.All, "all", "a", false, "Show tasks of every status")

	return cmd
}

func newNextCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the most urgent pending task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out, err := c.NextTaskUseCase().Execute(cmd.Context())
			if err != nil {
				return err
			}
			if out.Task == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "No pending tasks")
				return nil
			}
			printTaskDetails(cmd.OutOrStdout(), *out.Task, out.Today)
			return nil
		},
	}
}

func newShowCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show task details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			out, err := c.ShowTaskUseCase().Execute(cmd.Context(), usecase.TaskIDInput{TaskID: id})
			if err != nil {
				return taskError(id, err)
			}
			printTaskDetails(cmd.OutOrStdout(), out.Task, out.Today)
			return nil
		},
	}
}

func newDoneCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "done <id>",
		Aliases: []string{"complete"},
		Short:   "Mark a task completed",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.CompleteTaskUseCase().Execute(cmd.Context(), usecase.TaskIDInput{TaskID: id}); err != nil {
				return taskError(id, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Completed task #%d\n", id)
			return nil
		},
	}
}

func newArchiveCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "archive <id>",
		Short: "Archive a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.ArchiveTaskUseCase().Execute(cmd.Context(), usecase.TaskIDInput{TaskID: id}); err != nil {
				return taskError(id, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Archived task #%d\n", id)
			return nil
		},
	}
}

func newRmCommand(c *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"remove"},
		Short:   "Delete a task",
		Long: `Delete a task permanently.

Use archive to hide a task while keeping it in the file.

Examples:
  # Delete task by ID
  taskmaster rm 1

  # Delete task using # prefix
  taskmaster rm "#1"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}
			if _, err := c.DeleteTaskUseCase().Execute(cmd.Context(), usecase.TaskIDInput{TaskID: id}); err != nil {
				return taskError(id, err)
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Deleted task #%d\n", id)
			return nil
		},
	}
}

// parseTaskID parses a task ID string such as "3" or "#3".
func parseTaskID(s string) (int, error) {
	id, err := strconv.Atoi(strings.TrimPrefix(strings.TrimSpace(s), "#"))
	if err != nil {
		return 0, fmt.Errorf("invalid task ID %q", s)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid task ID %q: must be positive", s)
	}
	return id, nil
}

// taskError adds the task ID to not-found errors.
func taskError(id int, err error) error {
	if errors.Is(err, domain.ErrTaskNotFound) {
		return fmt.Errorf("task #%d: %w", id, err)
	}
	return err
}
