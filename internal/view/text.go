package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used for text output.
type Styles struct {
	Done         lipgloss.Style
	Pending      lipgloss.Style
	Position     lipgloss.Style
	ActiveFilter lipgloss.Style
	Filter       lipgloss.Style
	Counter      lipgloss.Style
	Empty        lipgloss.Style
}

// NewStyles returns the default styles bound to renderer r.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Done:         r.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("8")),
		Pending:      r.NewStyle(),
		Position:     r.NewStyle().Foreground(lipgloss.Color("8")),
		ActiveFilter: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Filter:       r.NewStyle().Foreground(lipgloss.Color("8")),
		Counter:      r.NewStyle().Italic(true),
		Empty:        r.NewStyle().Faint(true),
	}
}

// Checkbox returns the marker for a completion flag.
func Checkbox(completed bool) string {
	if completed {
		return "[x]"
	}
	return "[ ]"
}

// ItemLine formats one task without a trailing newline.
func ItemLine(it Item, st Styles) string {
	text := st.Pending.Render(it.Text)
	if it.Completed {
		text = st.Done.Render(it.Text)
	}
	pos := st.Position.Render(fmt.Sprintf("%4d", it.Position))
	return fmt.Sprintf("%s  %s %s", pos, Checkbox(it.Completed), text)
}

// FilterBar formats the filter controls, bracketing the active one.
func FilterBar(v View, st Styles) string {
	parts := make([]string, 0, len(v.Filters))
	for _, c := range v.Filters {
		if c.Active {
			parts = append(parts, st.ActiveFilter.Render("["+string(c.Filter)+"]"))
			continue
		}
		parts = append(parts, st.Filter.Render(string(c.Filter)))
	}
	return strings.Join(parts, " ")
}

// WriteText writes v as plain lines: the visible tasks, a filter bar and the
// counter.
func WriteText(w io.Writer, v View, st Styles) error {
	var b strings.Builder
	if len(v.Items) == 0 {
		b.WriteString(st.Empty.Render("   (no tasks)"))
		b.WriteString("\n")
	}
	for _, it := range v.Items {
		b.WriteString(ItemLine(it, st))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(FilterBar(v, st))
	b.WriteString("\n")
	b.WriteString(st.Counter.Render(v.Counter))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}
