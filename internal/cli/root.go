package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Config is the config file path; empty selects the default location.
	Config string

	// Storage overrides. Empty values leave the config file's choice.
	Backend  string
	Database string
	RedisURL string
	Key      string

	// Logger is built by the root command before any subcommand runs.
	Logger *logrus.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the todo CLI.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "todo",
		Short: "todo - a small task list",
		Long: `Keep a task list: add tasks, tick them off, clear the finished ones.

The list is saved after every change to a single slot in a key-value store
(SQLite file by default, Redis or memory on request). Every command prints
the list as it stands afterwards.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
	}

	flags := cmd.PersistentFlags()
	flags.BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	flags.StringVar(&opts.Format, "format", "text", "output format (json|text)")
	flags.StringVar(&opts.Config, "config", "", "config file (default $XDG_CONFIG_HOME/todo/config.yaml)")
	flags.StringVar(&opts.Backend, "backend", "", "storage backend (sqlite|redis|memory)")
	flags.StringVar(&opts.Database, "db", "", "path to SQLite database")
	flags.StringVar(&opts.RedisURL, "redis-url", "", "redis:// URL for the redis backend")
	flags.StringVar(&opts.Key, "key", "", "slot key holding the task list")

	cmd.AddCommand(NewAddCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewToggleCommand(opts))
	cmd.AddCommand(NewRemoveCommand(opts))
	cmd.AddCommand(NewClearCompletedCommand(opts))
	cmd.AddCommand(NewTUICommand(opts))

	return cmd
}

// Main runs the CLI with args and returns the process exit code. Errors are
// reported on stderr, or as a JSON error envelope on stdout with
// --format json.
func Main(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return ExitSuccess
	}

	// Commands return ExitError; anything else is a flag or argument error
	// from cobra.
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		err = &ExitError{Code: ExitCommandError, Message: err.Error()}
	}

	code := GetExitCode(err)
	f := &OutputFormatter{Format: opts.Format, Writer: stderr}
	if opts.Format == "json" {
		f.Writer = stdout
	}
	_ = f.Error(errorCode(code), err.Error(), nil)
	return code
}

// newLogger returns a text logger on w at warn level, or debug when verbose.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	log.SetLevel(logrus.WarnLevel)
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}

// commandContext returns the command's context, or Background when the
// command was executed without one.
func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
