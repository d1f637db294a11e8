package engine

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/sirupsen/logrus"

	"github.com/roach88/todo/internal/store"
	"github.com/roach88/todo/internal/task"
	"github.com/roach88/todo/internal/view"
)

// Persister loads and saves the task list.
type Persister interface {
	Load(ctx context.Context) ([]task.Task, error)
	Save(ctx context.Context, tasks []task.Task) error
}

// Engine holds the session state and routes actions through it.
type Engine struct {
	slot  Persister
	ids   task.IDGenerator
	clock task.Clock
	log   logrus.FieldLogger
	state task.State
}

// Option configures an Engine.
type Option func(*Engine)

// WithIDGenerator overrides the task id source (default UUIDv7).
func WithIDGenerator(g task.IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithClock overrides the creation time source (default SystemClock).
func WithClock(c task.Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithLogger sets the logger (default logrus.StandardLogger()).
func WithLogger(l logrus.FieldLogger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine over slot with an empty list. Call Load to read the
// persisted list.
func New(slot Persister, opts ...Option) *Engine {
	e := &Engine{
		slot:  slot,
		ids:   task.UUIDv7Generator{},
		clock: task.SystemClock{},
		log:   logrus.StandardLogger(),
		state: task.NewState(nil),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Load replaces the list with the persisted one. A slot that was never
// written leaves the list empty. A corrupt slot is logged and also leaves
// the list empty; it is not reported as an error.
func (e *Engine) Load(ctx context.Context) error {
	tasks, err := e.slot.Load(ctx)
	if errors.Is(err, store.ErrCorrupt) {
		e.log.WithError(err).Warn("ignoring unreadable saved tasks")
		e.state.Tasks = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	e.state.Tasks = tasks
	e.log.WithField("tasks", len(tasks)).Debug("tasks loaded")
	return nil
}

// Save writes the current list to the slot.
func (e *Engine) Save(ctx context.Context) error {
	if err := e.slot.Save(ctx, e.state.Tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}

// Dispatch applies a and returns the resulting view.
//
// Accepted mutating actions are saved even when nothing matched. A save
// error is returned after the in-memory state has already changed.
func (e *Engine) Dispatch(ctx context.Context, a task.Action) (view.View, task.Outcome, error) {
	a = e.stamp(a)

	next, out := task.Apply(e.state, a)
	log := e.log.WithField("action", a.Kind())
	if !out.Accepted {
		log.Debug("action rejected")
		return e.View(), out, nil
	}
	e.state = next
	log.WithField("changed", out.Changed).Debug("action applied")

	if a.Mutates() {
		if err := e.Save(ctx); err != nil {
			return e.View(), out, err
		}
	}
	return e.View(), out, nil
}

// stamp fills in the id and creation time of an acceptable Add.
func (e *Engine) stamp(a task.Action) task.Action {
	add, ok := a.(task.Add)
	if !ok || !task.ValidText(add.Text) {
		return a
	}
	if add.ID == "" {
		add.ID = e.ids.Generate()
	}
	if add.CreatedAt.IsZero() {
		add.CreatedAt = e.clock.Now()
	}
	return add
}

// State returns the current state. The returned slice must not be modified.
func (e *Engine) State() task.State {
	return e.state
}

// View renders the current state.
func (e *Engine) View() view.View {
	return view.Render(e.state)
}

// Resolve maps a user reference to a task id. A reference is either an
// exact id or a 1-based position in the full list. References matching
// neither are returned unchanged, so actions on them are no-ops.
func (e *Engine) Resolve(ref string) string {
	if _, ok := e.state.Find(ref); ok {
		return ref
	}
	if n, err := strconv.Atoi(ref); err == nil && n >= 1 && n <= len(e.state.Tasks) {
		return e.state.Tasks[n-1].ID
	}
	return ref
}
