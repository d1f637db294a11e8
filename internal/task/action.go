package task

import (
	"slices"
	"time"
)

// Kind names an action for logging and traces.
type Kind string

const (
	KindAdd            Kind = "add"
	KindDelete         Kind = "delete"
	KindToggle         Kind = "toggle"
	KindClearCompleted Kind = "clear_completed"
	KindSetFilter      Kind = "set_filter"
)

// Action is a user intent applied to a State. The set of actions is closed.
type Action interface {
	Kind() Kind

	// Mutates reports whether the action changes the persisted list, and
	// therefore requires a save once accepted.
	Mutates() bool

	isAction()
}

// Add creates a task. ID and CreatedAt are stamped by the caller so that
// Apply stays deterministic.
type Add struct {
	ID        string
	Text      string
	CreatedAt time.Time
}

// Delete removes the task with ID.
type Delete struct {
	ID string
}

// Toggle flips the completion flag of the task with ID.
type Toggle struct {
	ID string
}

// ClearCompleted removes every completed task.
type ClearCompleted struct{}

// SetFilter changes which tasks are visible.
type SetFilter struct {
	Filter Filter
}

func (Add) Kind() Kind            { return KindAdd }
func (Delete) Kind() Kind         { return KindDelete }
func (Toggle) Kind() Kind         { return KindToggle }
func (ClearCompleted) Kind() Kind { return KindClearCompleted }
func (SetFilter) Kind() Kind      { return KindSetFilter }

func (Add) Mutates() bool            { return true }
func (Delete) Mutates() bool         { return true }
func (Toggle) Mutates() bool         { return true }
func (ClearCompleted) Mutates() bool { return true }
func (SetFilter) Mutates() bool      { return false }

func (Add) isAction()            {}
func (Delete) isAction()         {}
func (Toggle) isAction()         {}
func (ClearCompleted) isAction() {}
func (SetFilter) isAction()      {}

// Outcome describes what Apply did.
type Outcome struct {
	// Accepted is false when the action was rejected outright: an Add with
	// blank text or a SetFilter with an unknown filter.
	Accepted bool

	// Changed is true when the resulting State differs from the input.
	Changed bool
}

// Apply returns the State that results from applying a to s.
// s is never modified.
func Apply(s State, a Action) (State, Outcome) {
	switch a := a.(type) {
	case Add:
		return applyAdd(s, a)
	case Delete:
		return applyDelete(s, a)
	case Toggle:
		return applyToggle(s, a)
	case ClearCompleted:
		return applyClearCompleted(s)
	case SetFilter:
		return applySetFilter(s, a)
	default:
		return s, Outcome{}
	}
}

func applyAdd(s State, a Add) (State, Outcome) {
	if !ValidText(a.Text) {
		return s, Outcome{}
	}
	t := Task{
		ID:        a.ID,
		Text:      NormalizeText(a.Text),
		Completed: false,
		CreatedAt: a.CreatedAt,
	}
	tasks := make([]Task, 0, len(s.Tasks)+1)
	tasks = append(tasks, t)
	tasks = append(tasks, s.Tasks...)
	s.Tasks = tasks
	return s, Outcome{Accepted: true, Changed: true}
}

func applyDelete(s State, a Delete) (State, Outcome) {
	tasks := slices.DeleteFunc(slices.Clone(s.Tasks), func(t Task) bool {
		return t.ID == a.ID
	})
	changed := len(tasks) != len(s.Tasks)
	s.Tasks = tasks
	return s, Outcome{Accepted: true, Changed: changed}
}

func applyToggle(s State, a Toggle) (State, Outcome) {
	idx := slices.IndexFunc(s.Tasks, func(t Task) bool { return t.ID == a.ID })
	if idx < 0 {
		return s, Outcome{Accepted: true}
	}
	tasks := slices.Clone(s.Tasks)
	tasks[idx].Completed = !tasks[idx].Completed
	s.Tasks = tasks
	return s, Outcome{Accepted: true, Changed: true}
}

func applyClearCompleted(s State) (State, Outcome) {
	tasks := slices.DeleteFunc(slices.Clone(s.Tasks), func(t Task) bool {
		return t.Completed
	})
	changed := len(tasks) != len(s.Tasks)
	s.Tasks = tasks
	return s, Outcome{Accepted: true, Changed: changed}
}

func applySetFilter(s State, a SetFilter) (State, Outcome) {
	if !a.Filter.Valid() {
		return s, Outcome{}
	}
	changed := s.CurrentFilter() != a.Filter
	s.Filter = a.Filter
	return s, Outcome{Accepted: true, Changed: changed}
}
