// Package navigation implements the palette's focus and selection state
// machine. It knows nothing about rendering: every transition returns an
// Effect the caller applies to the presentation layer.
package navigation

import (
	"slices"

	"github.com/scificmdr/scificmdr/internal/commands"
)

// Focus identifies the region receiving keyboard input
type Focus int

const (
	FocusQuery   Focus = iota // Query line
	FocusOptions              // Options list
)

// String returns the focus region name
func (f Focus) String() string {
	if f == FocusOptions {
		return "options"
	}
	return "query"
}

// NoSelection marks that no option is highlighted
const NoSelection = -1

// Terminal reports whether a transition ended the session
type Terminal int

const (
	TerminalNone Terminal = iota
	TerminalSubmit
	TerminalCancel
)

// Effect describes what the presentation layer must do after a transition
type Effect struct {
	Render   bool   // Options, selection or focus changed
	SetQuery bool   // Replace the query text with Query
	Query    string // Completed query text
	Terminal Terminal
}

// Machine tracks focus and the highlighted option. Focus moves from the
// query into the list and wraps back out past either end of it.
type Machine struct {
	focus    Focus
	selected int
	options  []string
}

// New creates a machine focused on the query with no options
func New() *Machine {
	return &Machine{
		focus:    FocusQuery,
		selected: NoSelection,
		options:  []string{},
	}
}

// Focus returns the focused region
func (m *Machine) Focus() Focus {
	return m.focus
}

// Selected returns the highlighted option index, or NoSelection
func (m *Machine) Selected() int {
	return m.selected
}

// Options returns a copy of the rendered options
func (m *Machine) Options() []string {
	return slices.Clone(m.options)
}

// OptionCount returns the number of rendered options
func (m *Machine) OptionCount() int {
	return len(m.options)
}

// Visible reports whether the options list is shown
func (m *Machine) Visible() bool {
	return len(m.options) > 0
}

// Highlighted returns the highlighted option, if any
func (m *Machine) Highlighted() (string, bool) {
	if m.selected < 0 || m.selected >= len(m.options) {
		return "", false
	}
	return m.options[m.selected], true
}

// SetOptions replaces the options after the query text changed. The first
// option is highlighted; focus stays where it is unless the list is now
// empty, which always hands focus back to the query.
func (m *Machine) SetOptions(items []string) Effect {
	m.options = slices.Clone(items)
	if len(m.options) == 0 {
		m.selected = NoSelection
		m.focus = FocusQuery
	} else {
		m.selected = 0
	}
	return Effect{Render: true}
}

// Handle applies a key event. Text changes are applied with SetOptions
// since they need fresh matches.
func (m *Machine) Handle(ev Event) Effect {
	switch ev.Kind {
	case EventTabComplete:
		return m.complete()
	case EventDown:
		return m.down()
	case EventUp:
		return m.up()
	case EventSubmit:
		return Effect{Terminal: TerminalSubmit}
	case EventCancel:
		return Effect{Terminal: TerminalCancel}
	default:
		return Effect{}
	}
}

func (m *Machine) complete() Effect {
	display, ok := m.Highlighted()
	if !ok {
		return Effect{}
	}
	return Effect{SetQuery: true, Query: commands.CommandNameFromDisplay(display)}
}

func (m *Machine) down() Effect {
	n := len(m.options)
	if n == 0 {
		return Effect{}
	}

	switch {
	case m.focus == FocusQuery:
		m.focus = FocusOptions
		m.selected = 0
	case m.selected < n-1:
		m.selected++
	default:
		m.leaveOptions()
	}
	return Effect{Render: true}
}

func (m *Machine) up() Effect {
	n := len(m.options)
	if n == 0 {
		return Effect{}
	}

	switch {
	case m.focus == FocusQuery:
		m.focus = FocusOptions
		m.selected = n - 1
	case m.selected > 0:
		m.selected--
	default:
		m.leaveOptions()
	}
	return Effect{Render: true}
}

// leaveOptions returns focus to the query and restores the highlight to the
// first option, as it was right after the text changed.
func (m *Machine) leaveOptions() {
	m.focus = FocusQuery
	m.selected = 0
}
