package session

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/scificmdr/scificmdr/internal/navigation"
)

// ScriptSource reads events from a line-oriented script:
//
//	type <text>     replace the query with text
//	tab             complete from the highlighted option
//	down | up       move through the options
//	submit | enter  accept the query
//	cancel | esc    abort
//
// Blank lines and lines starting with # are skipped, as are unknown verbs.
// Lines are read on a separate goroutine so that Next returns as soon as its
// context is cancelled, even while the reader is blocked.
type ScriptSource struct {
	r         io.Reader
	lines     chan scriptLine
	stop      chan struct{}
	startOnce sync.Once
	closeOnce sync.Once
	line      int
}

type scriptLine struct {
	text string
	err  error
}

// NewScriptSource creates a script source over r
func NewScriptSource(r io.Reader) *ScriptSource {
	return &ScriptSource{
		r:     r,
		lines: make(chan scriptLine),
		stop:  make(chan struct{}),
	}
}

// Next returns the next event or io.EOF once the script is exhausted
func (s *ScriptSource) Next(ctx context.Context) (navigation.Event, error) {
	s.startOnce.Do(func() { go s.scan() })

	for {
		if err := ctx.Err(); err != nil {
			return navigation.Event{}, err
		}

		select {
		case <-ctx.Done():
			return navigation.Event{}, ctx.Err()
		case l, ok := <-s.lines:
			if !ok {
				return navigation.Event{}, io.EOF
			}
			if l.err != nil {
				return navigation.Event{}, fmt.Errorf("read script line %d: %w", s.line+1, l.err)
			}
			s.line++

			if ev, ok := ParseEvent(l.text); ok {
				return ev, nil
			}
		}
	}
}

// Close stops the reading goroutine once its pending read returns. Lines
// not yet consumed are dropped.
func (s *ScriptSource) Close() {
	s.closeOnce.Do(func() { close(s.stop) })
}

func (s *ScriptSource) scan() {
	defer close(s.lines)

	scanner := bufio.NewScanner(s.r)
	for scanner.Scan() {
		if !s.send(scriptLine{text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		s.send(scriptLine{err: err})
	}
}

func (s *ScriptSource) send(l scriptLine) bool {
	select {
	case <-s.stop:
		return false
	default:
	}

	select {
	case s.lines <- l:
		return true
	case <-s.stop:
		return false
	}
}

// ParseEvent converts one script line into an event. It reports false for
// blank lines, comments and unknown verbs.
func ParseEvent(line string) (navigation.Event, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return navigation.Event{}, false
	}

	verb, rest, _ := strings.Cut(trimmed, " ")
	switch strings.ToLower(verb) {
	case "type":
		return navigation.TextChanged(rest), true
	case "tab":
		return navigation.TabComplete(), true
	case "down":
		return navigation.Down(), true
	case "up":
		return navigation.Up(), true
	case "submit", "enter":
		return navigation.Submit(), true
	case "cancel", "esc":
		return navigation.Cancel(), true
	default:
		return navigation.Event{}, false
	}
}

// SliceSource replays a fixed list of events
type SliceSource struct {
	events []navigation.Event
	pos    int
}

// NewSliceSource creates a source that yields events in order, then io.EOF
func NewSliceSource(events ...navigation.Event) *SliceSource {
	return &SliceSource{events: events}
}

// Next returns the next event or io.EOF
func (s *SliceSource) Next(ctx context.Context) (navigation.Event, error) {
	if err := ctx.Err(); err != nil {
		return navigation.Event{}, err
	}
	if s.pos >= len(s.events) {
		return navigation.Event{}, io.EOF
	}
	ev := s.events[s.pos]
	s.pos++
	return ev, nil
}
