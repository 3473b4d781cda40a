package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	for _, name := range AvailableThemes() {
		t.Run(name, func(t *testing.T) {
			theme := GetTheme(name)
			assert.Equal(t, name, theme.Name)
			assert.True(t, IsTheme(name))
		})
	}
}

func TestGetTheme_UnknownFallsBackToCharm(t *testing.T) {
	assert.Equal(t, "charm", GetTheme("neon").Name)
	assert.False(t, IsTheme("neon"))
	assert.False(t, IsTheme(""))
}

func TestThemeNamesMatchPalettes(t *testing.T) {
	assert.Len(t, palettes, len(themeNames))
	assert.Equal(t, "charm", AvailableThemes()[0])

	names := AvailableThemes()
	names[0] = "changed"
	assert.Equal(t, "charm", AvailableThemes()[0])
}
