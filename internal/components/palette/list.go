package palette

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/sahilm/fuzzy"

	"github.com/scificmdr/scificmdr/internal/navigation"
	"github.com/scificmdr/scificmdr/internal/ui"
)

// OptionList renders the candidate list with a scrolling window that keeps
// the highlighted option in view.
type OptionList struct {
	items        []string
	selected     int
	visible      bool
	scrollOffset int // First visible item index
	maxVisible   int
}

// NewOptionList creates an empty, hidden list
func NewOptionList(maxVisible int) *OptionList {
	if maxVisible < 1 {
		maxVisible = DefaultMaxVisible
	}
	return &OptionList{
		items:      []string{},
		selected:   navigation.NoSelection,
		maxVisible: maxVisible,
	}
}

// Set replaces the list contents and scrolls to the selection
func (l *OptionList) Set(items []string, selected int, visible bool) {
	l.items = slices.Clone(items)
	l.selected = selected
	l.visible = visible && len(items) > 0

	if selected < 0 {
		l.scrollOffset = 0
		return
	}
	// If the selection moved above the window, scroll up
	if selected < l.scrollOffset {
		l.scrollOffset = selected
	}
	// If it moved below, scroll down
	if selected > l.scrollOffset+l.maxVisible-1 {
		l.scrollOffset = selected - l.maxVisible + 1
	}
	l.scrollOffset = min(l.scrollOffset, max(0, len(l.items)-l.maxVisible))
}

// Items returns the list contents
func (l *OptionList) Items() []string {
	return slices.Clone(l.items)
}

// Selected returns the highlighted index
func (l *OptionList) Selected() int {
	return l.selected
}

// Visible reports whether the list is shown
func (l *OptionList) Visible() bool {
	return l.visible
}

// ScrollOffset returns the first visible index
func (l *OptionList) ScrollOffset() int {
	return l.scrollOffset
}

// Height returns the number of lines View produces
func (l *OptionList) Height() int {
	if !l.visible {
		return 0
	}
	h := min(len(l.items), l.maxVisible)
	if l.scrollOffset > 0 {
		h++
	}
	if l.scrollOffset+l.maxVisible < len(l.items) {
		h++
	}
	return h
}

// View renders the visible window. Characters matching query are
// highlighted.
func (l *OptionList) View(theme *ui.Theme, query string, focus navigation.Focus, width int) string {
	if !l.visible {
		return ""
	}

	visibleEnd := min(l.scrollOffset+l.maxVisible, len(l.items))
	highlights := matchedIndexes(query, l.items[l.scrollOffset:visibleEnd])

	sections := []string{}
	if l.scrollOffset > 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("  ↑ %d more", l.scrollOffset)))
	}

	for i := l.scrollOffset; i < visibleEnd; i++ {
		style, marker := theme.Option, plainMarker
		if i == l.selected {
			if focus == navigation.FocusOptions {
				style, marker = theme.FocusedOption, focusedMarker
			} else {
				style, marker = theme.SelectedOption, selectedMarker
			}
		}
		if width > 0 {
			style = style.Width(width)
		}

		text := highlight(l.items[i], highlights[i-l.scrollOffset], theme.Match, style)
		sections = append(sections, style.Render(marker+text))
	}

	if rest := len(l.items) - visibleEnd; rest > 0 {
		sections = append(sections, theme.Hint.Render(fmt.Sprintf("  ↓ %d more", rest)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// matchedIndexes returns, per item, the byte offsets of characters that
// match the query in order. Items without an in-order match get none.
func matchedIndexes(query string, items []string) [][]int {
	out := make([][]int, len(items))
	pattern := strings.Join(strings.Fields(query), "")
	if pattern == "" {
		return out
	}
	for _, m := range fuzzy.Find(pattern, items) {
		out[m.Index] = m.MatchedIndexes
	}
	return out
}

func highlight(text string, indexes []int, match, base lipgloss.Style) string {
	if len(indexes) == 0 {
		return text
	}
	match = match.Inherit(base.UnsetWidth().UnsetPadding())

	var b strings.Builder
	next := 0
	for i, r := range text {
		if next < len(indexes) && indexes[next] == i {
			b.WriteString(match.Render(string(r)))
			next++
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
