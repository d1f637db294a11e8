package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/task"
)

// NewAddCommand creates the add command.
func NewAddCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "add <text...>",
		Short: "Add a task to the top of the list",
		Long: `Add a task to the top of the list.

Arguments are joined with single spaces. Blank text adds nothing.

Example:
  todo add Buy milk
  todo add "Walk the dog"`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			return runAction(cmd, rootOpts, func(*engine.Engine) task.Action {
				return task.Add{Text: text}
			})
		},
	}
}
