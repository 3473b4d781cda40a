// Package palette is the terminal front end of a command palette session.
package palette

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scificmdr/scificmdr/internal/keyboard"
	"github.com/scificmdr/scificmdr/internal/navigation"
	"github.com/scificmdr/scificmdr/internal/session"
	"github.com/scificmdr/scificmdr/internal/ui"
)

// Stepper applies one input event to a session
type Stepper interface {
	Step(ev navigation.Event) (session.Result, bool)
}

// Config configures the palette model
type Config struct {
	Title      string
	MaxVisible int
	Theme      *ui.Theme
	Keys       *keyboard.Keys
}

// Model is a bubbletea model that acts as a session.Surface. Key presses
// become navigation events for the attached session, which pushes the
// resulting state back through the Surface methods.
type Model struct {
	title  string
	theme  *ui.Theme
	keys   keyboard.KeyMap
	help   help.Model
	input  textinput.Model
	list   *OptionList
	focus  navigation.Focus
	width  int
	closed bool

	stepper Stepper
	result  session.Result
	done    bool
}

// New creates a palette model. Attach a session before running it.
func New(cfg Config) *Model {
	theme := cfg.Theme
	if theme == nil {
		theme = ui.GetTheme("charm")
	}
	keys := cfg.Keys
	if keys == nil {
		keys = keyboard.GetKeys()
	}

	input := textinput.New()
	input.Prompt = "❯ "
	input.Placeholder = "type a command"
	input.PromptStyle = theme.Prompt
	input.Focus()

	return &Model{
		title: cfg.Title,
		theme: theme,
		keys:  keys.Bindings(),
		help:  help.New(),
		input: input,
		list:  NewOptionList(cfg.MaxVisible),
		focus: navigation.FocusQuery,
	}
}

// Attach connects the session that handles this model's events
func (m *Model) Attach(s Stepper) {
	m.stepper = s
}

// Result returns the session outcome. A model that quit without a terminal
// event reports a cancellation.
func (m *Model) Result() session.Result {
	if !m.done {
		return session.Result{Cancelled: true}
	}
	return m.result
}

// Done reports whether the session ended
func (m *Model) Done() bool {
	return m.done
}

// RenderOptions implements session.Surface
func (m *Model) RenderOptions(items []string, selected int, visible bool) {
	m.list.Set(items, selected, visible)
}

// SetFocus implements session.Surface. Only the query field takes text
// while it is focused.
func (m *Model) SetFocus(focus navigation.Focus) {
	m.focus = focus
	if focus == navigation.FocusQuery {
		m.input.PromptStyle = m.theme.Prompt
		m.input.Focus()
		return
	}
	m.input.PromptStyle = m.theme.PromptBlurred
	m.input.Blur()
}

// QueryText implements session.Surface
func (m *Model) QueryText() string {
	return m.input.Value()
}

// SetQueryText implements session.Surface
func (m *Model) SetQueryText(text string) {
	m.input.SetValue(text)
	m.input.CursorEnd()
}

// Close implements session.Surface
func (m *Model) Close() {
	m.closed = true
}

// Focus returns the focused region
func (m *Model) Focus() navigation.Focus {
	return m.focus
}

// List returns the option list
func (m *Model) List() *OptionList {
	return m.list
}

// Init starts the cursor blink
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles bubbletea messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		return m, tea.Quit
	}

	switch {
	case key.Matches(msg, m.keys.Cancel):
		return m.step(navigation.Cancel())
	case key.Matches(msg, m.keys.Submit):
		return m.step(navigation.Submit())
	case key.Matches(msg, m.keys.Complete):
		return m.step(navigation.TabComplete())
	case key.Matches(msg, m.keys.Down):
		return m.step(navigation.Down())
	case key.Matches(msg, m.keys.Up):
		return m.step(navigation.Up())
	}

	if m.focus != navigation.FocusQuery {
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if after := m.input.Value(); after != before {
		_, stepCmd := m.step(navigation.TextChanged(after))
		return m, tea.Batch(cmd, stepCmd)
	}
	return m, cmd
}

func (m *Model) step(ev navigation.Event) (tea.Model, tea.Cmd) {
	if m.stepper == nil {
		return m, nil
	}
	res, done := m.stepper.Step(ev)
	if !done {
		return m, nil
	}
	m.result = res
	m.done = true
	return m, tea.Quit
}

// View renders the palette
func (m *Model) View() string {
	if m.closed {
		return ""
	}

	innerWidth := 0
	if m.width > 0 {
		innerWidth = max(m.width-m.theme.Frame.GetHorizontalFrameSize(), 0)
	}

	sections := []string{}
	if m.title != "" {
		sections = append(sections, m.theme.Title.Render(m.title))
	}
	sections = append(sections, m.input.View())
	if options := m.list.View(m.theme, m.input.Value(), m.focus, innerWidth); options != "" {
		sections = append(sections, options)
	}
	sections = append(sections, m.help.View(m.keys))

	return m.theme.Frame.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}
