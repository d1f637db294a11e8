package cli

import (
	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/task"
)

// NewToggleCommand creates the toggle command.
func NewToggleCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <ref>",
		Short: "Mark a task done, or not done again",
		Long: `Flip the completed flag of one task.

<ref> is a task id or the position shown by list (1 is the newest task).
A reference that matches nothing leaves the list unchanged.

Example:
  todo toggle 2`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, rootOpts, func(e *engine.Engine) task.Action {
				return task.Toggle{ID: e.Resolve(args[0])}
			})
		},
	}
}

// NewRemoveCommand creates the rm command.
func NewRemoveCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <ref>",
		Aliases: []string{"delete"},
		Short:   "Delete a task",
		Long: `Delete one task, completed or not.

<ref> is a task id or the position shown by list. A reference that matches
nothing leaves the list unchanged.

Example:
  todo rm 1`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, rootOpts, func(e *engine.Engine) task.Action {
				return task.Delete{ID: e.Resolve(args[0])}
			})
		},
	}
}

// NewClearCompletedCommand creates the clear-completed command.
func NewClearCompletedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "clear-completed",
		Aliases:       []string{"clear"},
		Short:         "Delete every completed task",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAction(cmd, rootOpts, func(*engine.Engine) task.Action {
				return task.ClearCompleted{}
			})
		},
	}
}
