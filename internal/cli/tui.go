package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/tui"
)

// TUIOptions holds flags for the tui command.
type TUIOptions struct {
	*RootOptions
	LogFile string
}

// NewTUICommand creates the tui command.
func NewTUICommand(rootOpts *RootOptions) *cobra.Command {
	opts := &TUIOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Open the interactive task list",
		Long: `Open the task list in a full-screen terminal UI.

Logs would corrupt the screen, so they are dropped unless --log-file is set.

Example:
  todo tui
  todo tui --log-file /tmp/todo.log -v`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.LogFile, "log-file", "", "append logs to this file")

	return cmd
}

func runTUI(cmd *cobra.Command, opts *TUIOptions) error {
	log := opts.logger()
	log.SetOutput(io.Discard)
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return WrapExitError(ExitCommandError, "failed to open log file", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	ctx := commandContext(cmd)
	s, err := openSession(ctx, opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := tui.Run(ctx, s.engine); err != nil {
		return WrapExitError(ExitFailure, "terminal UI failed", err)
	}
	return nil
}
