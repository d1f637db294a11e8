package store

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/roach88/todo/internal/task"
)

//go:embed schema.cue
var schemaCUE string

// ErrCorrupt reports a slot value that could not be decoded.
var ErrCorrupt = errors.New("corrupt task list")

// marshalTasks converts a task list to its JSON slot representation.
// HTML escaping is disabled so task text is stored as typed.
func marshalTasks(tasks []task.Task) (string, error) {
	if tasks == nil {
		tasks = []task.Task{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tasks); err != nil {
		return "", fmt.Errorf("marshal tasks: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalTasks parses a slot value. Blank and null values decode to an
// empty list. Every other failure wraps ErrCorrupt.
func unmarshalTasks(data string) ([]task.Task, error) {
	data = strings.TrimSpace(data)
	if data == "" || data == "null" {
		return nil, nil
	}

	if err := validateTasks(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}

	var tasks []task.Task
	if err := json.Unmarshal([]byte(data), &tasks); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return dedupe(tasks), nil
}

// validateTasks checks data against the #TaskList definition in schema.cue.
// JSON is valid CUE, so the payload compiles directly.
func validateTasks(data string) error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}

	value := ctx.CompileString(data, cue.Filename("slot.json"))
	if err := value.Err(); err != nil {
		return fmt.Errorf("parse: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#TaskList"))
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("validate: %w", err)
	}
	return nil
}

// dedupe drops later tasks whose id was already seen, keeping list order.
func dedupe(tasks []task.Task) []task.Task {
	seen := make(map[string]bool, len(tasks))
	out := tasks[:0]
	for _, t := range tasks {
		if seen[t.ID] {
			continue
		}
		seen[t.ID] = true
		out = append(out, t)
	}
	return out
}
