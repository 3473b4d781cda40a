package keyboard

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func TestBindings_Default(t *testing.T) {
	km := Default().Bindings()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"tab completes", tea.KeyMsg{Type: tea.KeyTab}, km.Complete},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"ctrl+n", tea.KeyMsg{Type: tea.KeyCtrlN}, km.Down},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"ctrl+p", tea.KeyMsg{Type: tea.KeyCtrlP}, km.Up},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, km.Submit},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, km.Cancel},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Cancel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.True(t, key.Matches(tt.msg, tt.binding))
		})
	}
}

func TestBindings_TextIsNotBound(t *testing.T) {
	km := Default().Bindings()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}

	for _, b := range km.ShortHelp() {
		assert.False(t, key.Matches(msg, b))
	}
}

func TestHelp(t *testing.T) {
	km := Default().Bindings()

	assert.Len(t, km.ShortHelp(), 5)
	assert.Len(t, km.FullHelp(), 2)
	assert.Equal(t, "complete", km.Complete.Help().Desc)
	assert.Equal(t, "tab", km.Complete.Help().Key)
}
