package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/task"
)

// ListOptions holds flags for the list command.
type ListOptions struct {
	*RootOptions
	Filter string
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ListOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Show the task list",
		Long: `Show the task list with positions, filter controls and the
number of tasks left.

Example:
  todo list
  todo list --filter active`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter, err := task.ParseFilter(opts.Filter)
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid --filter", err)
			}
			return runAction(cmd, opts.RootOptions, func(*engine.Engine) task.Action {
				return task.SetFilter{Filter: filter}
			})
		},
	}

	cmd.Flags().StringVar(&opts.Filter, "filter", "all", "tasks to show (all|active|completed)")

	return cmd
}
