package session

import (
	"fmt"
	"io"
	"slices"

	"github.com/scificmdr/scificmdr/internal/navigation"
)

// HeadlessSurface is a Surface without a terminal. It records what it was
// asked to show and, when given a writer, prints a plain-text frame for
// every render.
type HeadlessSurface struct {
	out io.Writer

	query    string
	items    []string
	selected int
	visible  bool
	focus    navigation.Focus

	Renders int
	Closes  int
}

// NewHeadlessSurface creates a headless surface. out may be nil.
func NewHeadlessSurface(out io.Writer) *HeadlessSurface {
	return &HeadlessSurface{out: out, selected: navigation.NoSelection}
}

// RenderOptions replaces the shown options
func (h *HeadlessSurface) RenderOptions(items []string, selected int, visible bool) {
	h.items = slices.Clone(items)
	h.selected = selected
	h.visible = visible
	h.Renders++
}

// SetFocus records the focused region and writes a frame
func (h *HeadlessSurface) SetFocus(focus navigation.Focus) {
	h.focus = focus
	h.writeFrame()
}

// QueryText returns the current query
func (h *HeadlessSurface) QueryText() string {
	return h.query
}

// SetQueryText replaces the query
func (h *HeadlessSurface) SetQueryText(text string) {
	h.query = text
}

// Close counts closes
func (h *HeadlessSurface) Close() {
	h.Closes++
}

// Items returns the shown options
func (h *HeadlessSurface) Items() []string {
	return slices.Clone(h.items)
}

// Selected returns the highlighted index
func (h *HeadlessSurface) Selected() int {
	return h.selected
}

// Visible reports whether the options list is shown
func (h *HeadlessSurface) Visible() bool {
	return h.visible
}

// Focus returns the last focus pushed to the surface
func (h *HeadlessSurface) Focus() navigation.Focus {
	return h.focus
}

func (h *HeadlessSurface) writeFrame() {
	if h.out == nil {
		return
	}
	marker := " "
	if h.focus == navigation.FocusQuery {
		marker = ">"
	}
	fmt.Fprintf(h.out, "%s query: %q\n", marker, h.query)
	if !h.visible {
		return
	}
	for i, item := range h.items {
		prefix := "   "
		if i == h.selected {
			prefix = " * "
			if h.focus == navigation.FocusOptions {
				prefix = ">* "
			}
		}
		fmt.Fprintf(h.out, "%s%s\n", prefix, item)
	}
}
