package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/task"
)

// Scenario is a scripted session.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// IDs are handed out to new tasks in order. When empty, ids are
	// generated as t1, t2, ...
	IDs []string `yaml:"ids,omitempty"`

	// InitialSlot is written to the slot before the first load.
	InitialSlot string `yaml:"initial_slot,omitempty"`

	Steps []Step `yaml:"steps"`
}

// Step is one user event plus optional expectations on the result.
type Step struct {
	Add            *string `yaml:"add,omitempty"`
	Delete         string  `yaml:"delete,omitempty"`
	Toggle         string  `yaml:"toggle,omitempty"`
	ClearCompleted bool    `yaml:"clear_completed,omitempty"`
	Filter         string  `yaml:"filter,omitempty"`

	// Reload replaces the engine with a fresh one loaded from the slot.
	Reload bool `yaml:"reload,omitempty"`

	Expect *Expect `yaml:"expect,omitempty"`
}

// Expect lists what must hold after a step. Nil slices are not checked.
type Expect struct {
	Tasks     []string `yaml:"tasks,omitempty"`
	Visible   []string `yaml:"visible,omitempty"`
	Completed []string `yaml:"completed,omitempty"`
	Counter   string   `yaml:"counter,omitempty"`
	Filter    string   `yaml:"filter,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos like "toggel:")
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// LoadScenarios loads every *.yaml file in dir, sorted by file name.
func LoadScenarios(dir string) ([]*Scenario, error) {
	paths, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, err
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, p := range paths {
		s, err := LoadScenario(p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(p), err)
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Steps) == 0 {
		return fmt.Errorf("steps list is required and must be non-empty")
	}

	for i, step := range s.Steps {
		if n := step.actionCount(); n > 1 {
			return fmt.Errorf("steps[%d]: %d actions in one step, expected at most one", i, n)
		}
		if step.actionCount() == 0 && step.Expect == nil {
			return fmt.Errorf("steps[%d]: needs an action or an expect clause", i)
		}
	}

	return nil
}

func (s Step) actionCount() int {
	n := 0
	for _, set := range []bool{
		s.Add != nil,
		s.Delete != "",
		s.Toggle != "",
		s.ClearCompleted,
		s.Filter != "",
		s.Reload,
	} {
		if set {
			n++
		}
	}
	return n
}

// action builds the task action for a step. References in delete and toggle
// are resolved against the engine's current list.
func (s Step) action(e *engine.Engine) task.Action {
	switch {
	case s.Add != nil:
		return task.Add{Text: *s.Add}
	case s.Delete != "":
		return task.Delete{ID: e.Resolve(s.Delete)}
	case s.Toggle != "":
		return task.Toggle{ID: e.Resolve(s.Toggle)}
	case s.ClearCompleted:
		return task.ClearCompleted{}
	case s.Filter != "":
		return task.SetFilter{Filter: task.Filter(s.Filter)}
	}
	return nil
}

// describe names the step in the trace.
func (s Step) describe() string {
	switch {
	case s.Add != nil:
		return fmt.Sprintf("add %q", *s.Add)
	case s.Delete != "":
		return "delete " + s.Delete
	case s.Toggle != "":
		return "toggle " + s.Toggle
	case s.ClearCompleted:
		return "clear_completed"
	case s.Filter != "":
		return "filter " + s.Filter
	case s.Reload:
		return "reload"
	}
	return "check"
}
