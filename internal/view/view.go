package view

import (
	"fmt"

	"github.com/roach88/todo/internal/task"
)

// View is a complete description of the screen for one state.
type View struct {
	// Items are the visible tasks, in list order.
	Items []Item `json:"items"`

	// Filters are the filter controls; exactly one is Active.
	Filters []Control `json:"filters"`

	Filter task.Filter `json:"filter"`

	// Remaining counts incomplete tasks in the whole list, whatever the filter.
	Remaining int    `json:"remaining"`
	Counter   string `json:"counter"`

	Total int `json:"total"`
}

// Item is one visible task.
type Item struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`

	// Position is the 1-based index of the task in the unfiltered list.
	Position int `json:"position"`
}

// Control is a filter selector.
type Control struct {
	Filter task.Filter `json:"filter"`
	Label  string      `json:"label"`
	Active bool        `json:"active"`
}

var labels = map[task.Filter]string{
	task.FilterAll:       "All",
	task.FilterActive:    "Active",
	task.FilterCompleted: "Completed",
}

// Render builds the View for s.
func Render(s task.State) View {
	filter := s.CurrentFilter()

	positions := make(map[string]int, len(s.Tasks))
	for i, t := range s.Tasks {
		positions[t.ID] = i + 1
	}

	visible := task.Filtered(s)
	items := make([]Item, 0, len(visible))
	for _, t := range visible {
		items = append(items, Item{
			ID:        t.ID,
			Text:      t.Text,
			Completed: t.Completed,
			Position:  positions[t.ID],
		})
	}

	controls := make([]Control, 0, len(task.Filters))
	for _, f := range task.Filters {
		controls = append(controls, Control{
			Filter: f,
			Label:  labels[f],
			Active: f == filter,
		})
	}

	remaining := task.ActiveCount(s.Tasks)
	return View{
		Items:     items,
		Filters:   controls,
		Filter:    filter,
		Remaining: remaining,
		Counter:   Counter(remaining),
		Total:     len(s.Tasks),
	}
}

// Counter formats the number of incomplete tasks: "1 task left",
// "0 tasks left", "3 tasks left".
func Counter(n int) string {
	if n == 1 {
		return "1 task left"
	}
	return fmt.Sprintf("%d tasks left", n)
}
