// Package tui is the interactive terminal front end: an input field, the
// rendered list, filter controls and the counter, driven by Bubble Tea.
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roach88/todo/internal/engine"
	"github.com/roach88/todo/internal/task"
	"github.com/roach88/todo/internal/view"
)

type focusPane int

const (
	focusInput focusPane = iota
	focusList
)

const helpText = "enter add • tab switch • space toggle • d delete • 1/2/3 filter • C clear completed • q quit"

// Model is the Bubble Tea model. Every key press that changes the list goes
// through the engine; the screen is rebuilt from the engine's view.
type Model struct {
	ctx    context.Context
	engine *engine.Engine

	input  textinput.Model
	focus  focusPane
	cursor int

	view   view.View
	status string

	styles      view.Styles
	title       lipgloss.Style
	cursorStyle lipgloss.Style
	statusStyle lipgloss.Style
	helpStyle   lipgloss.Style
}

// New creates a Model over an engine whose list has already been loaded.
func New(ctx context.Context, e *engine.Engine, r *lipgloss.Renderer) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 200
	ti.Width = 50
	ti.Focus()

	return &Model{
		ctx:         ctx,
		engine:      e,
		input:       ti,
		focus:       focusInput,
		view:        e.View(),
		styles:      view.NewStyles(r),
		title:       r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		cursorStyle: r.NewStyle().Foreground(lipgloss.Color("13")),
		statusStyle: r.NewStyle().Foreground(lipgloss.Color("9")),
		helpStyle:   r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	if key.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if m.focus == focusInput {
		return m.updateInput(key)
	}
	return m.updateList(key)
}

func (m *Model) updateInput(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyEnter:
		out := m.dispatch(task.Add{Text: m.input.Value()})
		if out.Accepted {
			m.input.Reset()
		}
		return m, nil
	case tea.KeyTab, tea.KeyEsc, tea.KeyDown:
		m.setFocus(focusList)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(key)
	return m, cmd
}

func (m *Model) updateList(key tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key.Type {
	case tea.KeyTab, tea.KeyEsc:
		m.setFocus(focusInput)
		return m, textinput.Blink
	case tea.KeyUp:
		m.moveCursor(-1)
		return m, nil
	case tea.KeyDown:
		m.moveCursor(1)
		return m, nil
	case tea.KeySpace:
		m.toggleSelected()
		return m, nil
	case tea.KeyDelete:
		m.deleteSelected()
		return m, nil
	case tea.KeyRunes:
	default:
		return m, nil
	}

	switch string(key.Runes) {
	case "q":
		return m, tea.Quit
	case "k":
		m.moveCursor(-1)
	case "j":
		m.moveCursor(1)
	case " ", "x":
		m.toggleSelected()
	case "d":
		m.deleteSelected()
	case "1":
		m.dispatch(task.SetFilter{Filter: task.FilterAll})
	case "2":
		m.dispatch(task.SetFilter{Filter: task.FilterActive})
	case "3":
		m.dispatch(task.SetFilter{Filter: task.FilterCompleted})
	case "C":
		m.dispatch(task.ClearCompleted{})
	case "a", "i":
		m.setFocus(focusInput)
		return m, textinput.Blink
	}
	return m, nil
}

// dispatch sends a to the engine and refreshes the screen state.
func (m *Model) dispatch(a task.Action) task.Outcome {
	v, out, err := m.engine.Dispatch(m.ctx, a)
	m.view = v
	m.status = ""
	if err != nil {
		m.status = err.Error()
	}
	m.clampCursor()
	return out
}

func (m *Model) selected() (view.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.view.Items) {
		return view.Item{}, false
	}
	return m.view.Items[m.cursor], true
}

func (m *Model) toggleSelected() {
	if it, ok := m.selected(); ok {
		m.dispatch(task.Toggle{ID: it.ID})
	}
}

func (m *Model) deleteSelected() {
	if it, ok := m.selected(); ok {
		m.dispatch(task.Delete{ID: it.ID})
	}
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= len(m.view.Items) {
		m.cursor = len(m.view.Items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) setFocus(f focusPane) {
	m.focus = f
	if f == focusInput {
		m.input.Focus()
		return
	}
	m.input.Blur()
	m.clampCursor()
}

func (m *Model) View() string {
	var b strings.Builder

	b.WriteString(m.title.Render("todo"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if len(m.view.Items) == 0 {
		b.WriteString(m.styles.Empty.Render("   (no tasks)"))
		b.WriteString("\n")
	}
	for i, it := range m.view.Items {
		marker := "  "
		if m.focus == focusList && i == m.cursor {
			marker = m.cursorStyle.Render("> ")
		}
		b.WriteString(marker)
		b.WriteString(view.ItemLine(it, m.styles))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(view.FilterBar(m.view, m.styles))
	b.WriteString("   ")
	b.WriteString(m.styles.Counter.Render(m.view.Counter))
	b.WriteString("\n")

	if m.status != "" {
		b.WriteString(m.statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}

// Run starts the terminal UI and blocks until the user quits.
func Run(ctx context.Context, e *engine.Engine, opts ...tea.ProgramOption) error {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	p := tea.NewProgram(New(ctx, e, lipgloss.DefaultRenderer()), opts...)
	_, err := p.Run()
	return err
}
