package keyboard

import "github.com/charmbracelet/bubbles/key"

// Keys holds the keyboard shortcut configuration of the palette
type Keys struct {
	Complete []string // Copy the highlighted command name into the query
	Down     []string // Move highlight down, wraps back to the query
	Up       []string // Move highlight up, wraps back to the query
	Submit   []string // Accept the query text
	Cancel   []string // Abort without a choice
}

// Default returns the default keyboard configuration
func Default() *Keys {
	return &Keys{
		Complete: []string{"tab"},
		Down:     []string{"down", "ctrl+n"},
		Up:       []string{"up", "ctrl+p"},
		Submit:   []string{"enter"},
		Cancel:   []string{"esc", "ctrl+c"},
	}
}

// KeyMap is the set of bubbles key bindings for the palette. It satisfies
// help.KeyMap so it can render its own footer.
type KeyMap struct {
	Complete key.Binding
	Down     key.Binding
	Up       key.Binding
	Submit   key.Binding
	Cancel   key.Binding
}

// Bindings builds key bindings from the configuration
func (k *Keys) Bindings() KeyMap {
	return KeyMap{
		Complete: key.NewBinding(key.WithKeys(k.Complete...), key.WithHelp(first(k.Complete), "complete")),
		Down:     key.NewBinding(key.WithKeys(k.Down...), key.WithHelp("↓", "down")),
		Up:       key.NewBinding(key.WithKeys(k.Up...), key.WithHelp("↑", "up")),
		Submit:   key.NewBinding(key.WithKeys(k.Submit...), key.WithHelp(first(k.Submit), "accept")),
		Cancel:   key.NewBinding(key.WithKeys(k.Cancel...), key.WithHelp(first(k.Cancel), "cancel")),
	}
}

// ShortHelp returns the bindings shown in the footer
func (m KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{m.Up, m.Down, m.Complete, m.Submit, m.Cancel}
}

// FullHelp returns all bindings grouped in columns
func (m KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.Up, m.Down},
		{m.Complete, m.Submit, m.Cancel},
	}
}

// GetKeys returns the current keyboard configuration
func GetKeys() *Keys {
	return Default()
}

func first(keys []string) string {
	if len(keys) == 0 {
		return ""
	}
	return keys[0]
}
