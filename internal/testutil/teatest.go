package testutil

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// TestProgram drives a Bubble Tea model synchronously. Messages go straight
// to Update and the returned commands run inline, so tests need no sleeps.
type TestProgram struct {
	model tea.Model
	quit  bool
	t     *testing.T
}

// NewTestProgram creates a test driver and sends the initial window size
func NewTestProgram(t *testing.T, model tea.Model, width, height int) *TestProgram {
	t.Helper()

	tp := &TestProgram{model: model, t: t}
	tp.Send(tea.WindowSizeMsg{Width: width, Height: height})
	return tp
}

// Send delivers a message to the model and runs the resulting command
func (tp *TestProgram) Send(msg tea.Msg) {
	if tp.quit {
		return
	}
	var cmd tea.Cmd
	tp.model, cmd = tp.model.Update(msg)
	tp.run(cmd)
}

// cmdTimeout bounds how long a command may take before its message is
// dropped. Timers such as cursor blink never finish in time.
const cmdTimeout = 20 * time.Millisecond

// run executes a command and follows quit and batch messages
func (tp *TestProgram) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	out := make(chan tea.Msg, 1)
	go func() { out <- cmd() }()

	var msg tea.Msg
	select {
	case msg = <-out:
	case <-time.After(cmdTimeout):
		return
	}

	switch msg := msg.(type) {
	case tea.QuitMsg:
		tp.quit = true
	case tea.BatchMsg:
		for _, c := range msg {
			tp.run(c)
		}
	}
}

// Type simulates typing a string
func (tp *TestProgram) Type(s string) {
	for _, r := range s {
		tp.Send(tea.KeyMsg{
			Type:  tea.KeyRunes,
			Runes: []rune{r},
		})
	}
}

// SendKey sends a specific key press
func (tp *TestProgram) SendKey(key tea.KeyType) {
	tp.Send(tea.KeyMsg{Type: key})
}

// Model returns the current model
func (tp *TestProgram) Model() tea.Model {
	return tp.model
}

// Quitted reports whether the model asked the program to quit
func (tp *TestProgram) Quitted() bool {
	return tp.quit
}

// Output returns the current view with styling removed
func (tp *TestProgram) Output() string {
	return ansi.Strip(tp.model.View())
}

// AssertContains checks if output contains expected text
func (tp *TestProgram) AssertContains(expected string) {
	tp.t.Helper()

	output := tp.Output()
	if !strings.Contains(output, expected) {
		tp.t.Errorf("Output does not contain %q\nGot:\n%s", expected, output)
	}
}

// AssertNotContains checks if output does NOT contain text
func (tp *TestProgram) AssertNotContains(notExpected string) {
	tp.t.Helper()

	output := tp.Output()
	if strings.Contains(output, notExpected) {
		tp.t.Errorf("Output should not contain %q\nGot:\n%s", notExpected, output)
	}
}
