package harness

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/store"
	"github.com/roach88/todo/internal/task"
	"github.com/roach88/todo/internal/testutil"
	"github.com/roach88/todo/internal/view"
)

// Result is the outcome of running a scenario.
type Result struct {
	Name string

	// Trace has one line per step, preceded by the initial load.
	Trace []string

	// Failures lists every expectation that did not hold.
	Failures []string
}

// Passed reports whether every expectation held.
func (r *Result) Passed() bool {
	return len(r.Failures) == 0
}

// TraceText returns the trace as newline-terminated lines.
func (r *Result) TraceText() string {
	var b strings.Builder
	for _, line := range r.Trace {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// Run executes a scenario against a fresh in-memory slot.
// Returns an error if the scenario cannot be executed; unmet expectations
// are reported in Result.Failures.
func Run(s *Scenario) (*Result, error) {
	if err := validateScenario(s); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	ctx := context.Background()
	backend := store.NewMemory()
	if s.InitialSlot != "" {
		if err := backend.Put(ctx, store.DefaultKey, s.InitialSlot); err != nil {
			return nil, err
		}
	}
	slot := store.NewSlot(backend, store.DefaultKey)

	var ids task.IDGenerator = testutil.NewSequentialIDs("t")
	if len(s.IDs) > 0 {
		ids = task.NewFixedGenerator(s.IDs...)
	}
	clock := testutil.NewDeterministicClock()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	newEngine := func() (*engine.Engine, error) {
		e := engine.New(slot,
			engine.WithIDGenerator(ids),
			engine.WithClock(clock),
			engine.WithLogger(logger),
		)
		if err := e.Load(ctx); err != nil {
			return nil, err
		}
		return e, nil
	}

	eng, err := newEngine()
	if err != nil {
		return nil, fmt.Errorf("initial load: %w", err)
	}

	result := &Result{Name: s.Name}
	result.record(0, "load", "loaded", eng.View())

	for i, step := range s.Steps {
		n := i + 1
		var outcome string

		switch {
		case step.Reload:
			if eng, err = newEngine(); err != nil {
				return nil, fmt.Errorf("step %d: reload: %w", n, err)
			}
			outcome = "loaded"
		case step.actionCount() == 1:
			_, out, err := eng.Dispatch(ctx, step.action(eng))
			if err != nil {
				return nil, fmt.Errorf("step %d: %w", n, err)
			}
			outcome = describeOutcome(out)
		default:
			outcome = "ok"
		}

		v := eng.View()
		result.record(n, step.describe(), outcome, v)
		if step.Expect != nil {
			result.Failures = append(result.Failures, step.Expect.check(n, eng.State(), v)...)
		}
	}

	return result, nil
}

func (r *Result) record(n int, what, outcome string, v view.View) {
	visible := make([]string, len(v.Items))
	for i, it := range v.Items {
		visible[i] = it.Text
	}
	r.Trace = append(r.Trace, fmt.Sprintf("%d. %s -> %s | filter=%s | visible=%s | %s",
		n, what, outcome, v.Filter, quoteList(visible), v.Counter))
}

func describeOutcome(out task.Outcome) string {
	switch {
	case !out.Accepted:
		return "rejected"
	case out.Changed:
		return "changed"
	default:
		return "unchanged"
	}
}

func quoteList(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// check compares the state and view after step n with the expectation.
func (e *Expect) check(n int, s task.State, v view.View) []string {
	var failures []string
	fail := func(field string, want, got any) {
		failures = append(failures, fmt.Sprintf("step %d: %s = %v, want %v", n, field, got, want))
	}

	if e.Tasks != nil {
		got := make([]string, len(s.Tasks))
		for i, t := range s.Tasks {
			got[i] = t.Text
		}
		if !slices.Equal(got, e.Tasks) {
			fail("tasks", quoteList(e.Tasks), quoteList(got))
		}
	}

	if e.Visible != nil {
		got := make([]string, len(v.Items))
		for i, it := range v.Items {
			got[i] = it.Text
		}
		if !slices.Equal(got, e.Visible) {
			fail("visible", quoteList(e.Visible), quoteList(got))
		}
	}

	if e.Completed != nil {
		got := []string{}
		for _, t := range s.Tasks {
			if t.Completed {
				got = append(got, t.Text)
			}
		}
		if !slices.Equal(got, e.Completed) {
			fail("completed", quoteList(e.Completed), quoteList(got))
		}
	}

	if e.Counter != "" && e.Counter != v.Counter {
		fail("counter", strconv.Quote(e.Counter), strconv.Quote(v.Counter))
	}

	if e.Filter != "" && task.Filter(e.Filter) != v.Filter {
		fail("filter", e.Filter, v.Filter)
	}

	return failures
}
