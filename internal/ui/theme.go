package ui

import (
	"slices"

	"github.com/charmbracelet/lipgloss"
)

// Theme holds the styles of the palette
type Theme struct {
	Name string

	Title          lipgloss.Style
	Frame          lipgloss.Style
	Prompt         lipgloss.Style // Query prompt while the query is focused
	PromptBlurred  lipgloss.Style // Query prompt while an option is focused
	Option         lipgloss.Style
	SelectedOption lipgloss.Style // Highlighted row, query focused
	FocusedOption  lipgloss.Style // Highlighted row, options focused
	Match          lipgloss.Style // Characters that matched the query
	Hint           lipgloss.Style // Scroll hints
}

// palette is the set of colors a theme is derived from
type palette struct {
	primary    lipgloss.AdaptiveColor
	secondary  lipgloss.AdaptiveColor // Match highlight
	accent     lipgloss.AdaptiveColor // Focused prompt
	foreground lipgloss.AdaptiveColor
	muted      lipgloss.AdaptiveColor
	border     lipgloss.AdaptiveColor
	subtle     lipgloss.AdaptiveColor // Focused row background
	background lipgloss.AdaptiveColor // Selected row background
}

func adaptive(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

func same(c string) lipgloss.AdaptiveColor {
	return adaptive(c, c)
}

// themeNames lists themes in display order, the first is the default
var themeNames = []string{"charm", "dracula", "nord", "monokai"}

var palettes = map[string]palette{
	"charm": {
		primary:    adaptive("#5A56E0", "#7571F9"),
		secondary:  adaptive("#02BA84", "#02BF87"),
		accent:     same("#F780E2"),
		foreground: adaptive("235", "252"),
		muted:      same("243"),
		border:     same("240"),
		subtle:     adaptive("254", "237"),
		background: adaptive("255", "235"),
	},
	"dracula": {
		primary:    same("#bd93f9"),
		secondary:  same("#8be9fd"),
		accent:     same("#ff79c6"),
		foreground: adaptive("#282a36", "#f8f8f2"),
		muted:      same("#6272a4"),
		border:     same("61"),
		subtle:     adaptive("#e6e6e6", "#44475a"),
		background: adaptive("#f8f8f2", "#282a36"),
	},
	"nord": {
		primary:    adaptive("#5e81ac", "#88c0d0"),
		secondary:  same("#a3be8c"),
		accent:     same("#b48ead"),
		foreground: adaptive("#2e3440", "#eceff4"),
		muted:      adaptive("#4c566a", "#616e88"),
		border:     adaptive("#d8dee9", "#434c5e"),
		subtle:     adaptive("#e5e9f0", "#3b4252"),
		background: adaptive("#eceff4", "#2e3440"),
	},
	"monokai": {
		primary:    same("#66d9ef"),
		secondary:  same("#a6e22e"),
		accent:     same("#ae81ff"),
		foreground: adaptive("#272822", "#f8f8f2"),
		muted:      same("#75715e"),
		border:     same("#464741"),
		subtle:     adaptive("#e6e6e0", "#49483e"),
		background: adaptive("#f8f8f2", "#272822"),
	},
}

func newTheme(name string, p palette) *Theme {
	return &Theme{
		Name: name,
		Title: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Padding(0, 1),
		Frame: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Prompt:        lipgloss.NewStyle().Foreground(p.accent).Bold(true),
		PromptBlurred: lipgloss.NewStyle().Foreground(p.muted),
		Option: lipgloss.NewStyle().
			Foreground(p.foreground).
			Padding(0, 1),
		SelectedOption: lipgloss.NewStyle().
			Foreground(p.foreground).
			Background(p.background).
			Padding(0, 1),
		FocusedOption: lipgloss.NewStyle().
			Foreground(p.primary).
			Background(p.subtle).
			Padding(0, 1).
			Bold(true),
		Match: lipgloss.NewStyle().Foreground(p.secondary).Underline(true),
		Hint:  lipgloss.NewStyle().Foreground(p.muted),
	}
}

// GetTheme returns a theme by name, defaulting to charm
func GetTheme(name string) *Theme {
	p, ok := palettes[name]
	if !ok {
		name = themeNames[0]
		p = palettes[name]
	}
	return newTheme(name, p)
}

// AvailableThemes returns a list of available theme names
func AvailableThemes() []string {
	return slices.Clone(themeNames)
}

// IsTheme reports whether name is one of the available themes
func IsTheme(name string) bool {
	_, ok := palettes[name]
	return ok
}
