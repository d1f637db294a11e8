package cli

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/roach88/todo/internal/config"
	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/store"
	"github.com/roach88/todo/internal/task"
)

// session is a loaded engine over an open backend.
type session struct {
	engine  *engine.Engine
	backend store.Backend
	log     logrus.FieldLogger
}

// resolveConfig loads the config file and applies flag overrides.
func (o *RootOptions) resolveConfig() (config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "failed to load config", err)
	}

	overrides := []struct {
		flag  string
		field *string
	}{
		{o.Backend, &cfg.Backend},
		{o.Database, &cfg.Database},
		{o.RedisURL, &cfg.RedisURL},
		{o.Key, &cfg.SlotKey},
	}
	for _, ov := range overrides {
		if ov.flag != "" {
			*ov.field = ov.flag
		}
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, WrapExitError(ExitCommandError, "invalid config", err)
	}
	return cfg, nil
}

// openSession resolves the configuration, opens the backend and loads the
// task list into a new engine. The caller must Close the session.
func openSession(ctx context.Context, opts *RootOptions) (*session, error) {
	cfg, err := opts.resolveConfig()
	if err != nil {
		return nil, err
	}

	log := opts.logger()
	if !opts.Verbose {
		log.SetLevel(cfg.Level())
	}

	backend, err := openBackend(ctx, cfg)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to open "+cfg.Backend+" backend", err)
	}
	fields := log.WithFields(logrus.Fields{"backend": cfg.Backend, "key": cfg.SlotKey})
	fields.Debug("backend opened")

	e := engine.New(store.NewSlot(backend, cfg.SlotKey), engine.WithLogger(fields))
	if err := e.Load(ctx); err != nil {
		_ = backend.Close()
		return nil, WrapExitError(ExitCommandError, "failed to load tasks", err)
	}

	return &session{engine: e, backend: backend, log: fields}, nil
}

// openBackend opens the store named by cfg.Backend.
func openBackend(ctx context.Context, cfg config.Config) (store.Backend, error) {
	switch cfg.Backend {
	case config.BackendSQLite:
		if err := cfg.EnsureDir(); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
		st, err := store.Open(cfg.Database)
		if err != nil {
			return nil, err
		}
		return st, nil
	case config.BackendRedis:
		r, err := store.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			return nil, err
		}
		return r, nil
	case config.BackendMemory:
		return store.NewMemory(), nil
	}
	return nil, fmt.Errorf("unknown backend %q", cfg.Backend)
}

// Close releases the backend.
func (s *session) Close() {
	if err := s.backend.Close(); err != nil {
		s.log.WithError(err).Error("error closing backend")
	}
}

// logger returns the root logger, building a default one when the root
// command's pre-run hook was skipped (subcommands executed directly).
func (o *RootOptions) logger() *logrus.Logger {
	if o.Logger == nil {
		o.Logger = newLogger(logrus.StandardLogger().Out, o.Verbose)
	}
	return o.Logger
}

// runAction opens a session, dispatches the action built by build and
// prints the resulting view. Unknown references and empty text are not
// errors; the list is printed unchanged.
func runAction(cmd *cobra.Command, opts *RootOptions, build func(*engine.Engine) task.Action) error {
	ctx := commandContext(cmd)
	s, err := openSession(ctx, opts)
	if err != nil {
		return err
	}
	defer s.Close()

	a := build(s.engine)
	v, out, err := s.engine.Dispatch(ctx, a)
	if err != nil {
		return WrapExitError(ExitFailure, "failed to save tasks", err)
	}
	s.log.WithFields(logrus.Fields{
		"action":   a.Kind(),
		"accepted": out.Accepted,
		"changed":  out.Changed,
	}).Info("command done")

	f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err := f.View(v); err != nil {
		return WrapExitError(ExitFailure, "failed to write output", err)
	}
	return nil
}
