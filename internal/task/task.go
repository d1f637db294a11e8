package task

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
)

// Task is a single to-do item.
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"createdAt"`
}

// Filter selects which tasks are shown.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterActive    Filter = "active"
	FilterCompleted Filter = "completed"
)

// Filters lists every filter in display order.
var Filters = []Filter{FilterAll, FilterActive, FilterCompleted}

// Valid reports whether f is one of the known filters.
func (f Filter) Valid() bool {
	switch f {
	case FilterAll, FilterActive, FilterCompleted:
		return true
	}
	return false
}

func (f Filter) String() string {
	return string(f)
}

// ParseFilter parses a filter name. The empty string selects FilterAll.
func ParseFilter(s string) (Filter, error) {
	if s == "" {
		return FilterAll, nil
	}
	f := Filter(strings.ToLower(strings.TrimSpace(s)))
	if !f.Valid() {
		return "", fmt.Errorf("invalid filter %q: must be one of %v", s, Filters)
	}
	return f, nil
}

// State is the whole application state: the list and the active filter.
// The zero value is an empty list showing all tasks.
type State struct {
	Tasks  []Task
	Filter Filter
}

// NewState returns a State over tasks with the default filter.
func NewState(tasks []Task) State {
	return State{Tasks: tasks, Filter: FilterAll}
}

// CurrentFilter returns the filter in effect, treating the zero value as
// FilterAll.
func (s State) CurrentFilter() Filter {
	if s.Filter == "" {
		return FilterAll
	}
	return s.Filter
}

// Find returns the task with the given id.
func (s State) Find(id string) (Task, bool) {
	for _, t := range s.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return Task{}, false
}

// ValidText reports whether text is acceptable for a new task.
func ValidText(text string) bool {
	return strings.TrimSpace(text) != ""
}

// NormalizeText returns text in Unicode NFC so equal-looking texts are
// stored identically.
func NormalizeText(text string) string {
	return norm.NFC.String(text)
}
