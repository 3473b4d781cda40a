// Package session drives the navigation state machine from a stream of
// input events until the user submits or cancels.
package session

import (
	"context"

	"github.com/scificmdr/scificmdr/internal/logging"
	"github.com/scificmdr/scificmdr/internal/matcher"
	"github.com/scificmdr/scificmdr/internal/navigation"
)

// Surface is the presentation layer. It renders what it is told and owns
// the query text; focus is decided by the session.
type Surface interface {
	RenderOptions(items []string, selected int, visible bool)
	SetFocus(focus navigation.Focus)
	QueryText() string
	SetQueryText(text string)
	Close()
}

// EventSource delivers input events one at a time. Next blocks until an
// event is available and returns an error once no more will arrive.
type EventSource interface {
	Next(ctx context.Context) (navigation.Event, error)
}

// Matcher ranks commands for a query
type Matcher interface {
	Match(query string) []matcher.Result
}

// CommandChecker reports whether a name is a registered command
type CommandChecker interface {
	IsCommand(name string) bool
}

// Options configures a session
type Options struct {
	// AllowUnlisted lets Submit return text that is not a registered command
	AllowUnlisted bool
}

// Result is the outcome of a session. An empty Command with Cancelled
// false is a valid choice.
type Result struct {
	Command   string
	Cancelled bool
}

// Session processes one event at a time
type Session struct {
	commands CommandChecker
	matcher  Matcher
	surface  Surface
	opts     Options
	nav      *navigation.Machine
	log      *logging.Logger

	done   bool
	closed bool
	result Result
}

// New creates a session and renders its initial state: query focused and
// the options list hidden.
func New(cmds CommandChecker, m Matcher, surface Surface, opts Options) *Session {
	s := &Session{
		commands: cmds,
		matcher:  m,
		surface:  surface,
		opts:     opts,
		nav:      navigation.New(),
		log:      logging.Get().Component("session"),
	}
	s.render()
	return s
}

// Focus returns the focused region
func (s *Session) Focus() navigation.Focus {
	return s.nav.Focus()
}

// Selected returns the highlighted option index, or navigation.NoSelection
func (s *Session) Selected() int {
	return s.nav.Selected()
}

// Options returns the rendered options
func (s *Session) Options() []string {
	return s.nav.Options()
}

// Done reports whether the session has ended
func (s *Session) Done() bool {
	return s.done
}

// Step applies one event and reports whether the session ended. Events
// after the end are ignored and return the final result.
func (s *Session) Step(ev navigation.Event) (Result, bool) {
	if s.done {
		return s.result, true
	}

	var eff navigation.Effect
	switch ev.Kind {
	case navigation.EventTextChanged:
		if s.surface.QueryText() != ev.Text {
			s.surface.SetQueryText(ev.Text)
		}
		results := s.matcher.Match(ev.Text)
		eff = s.nav.SetOptions(matcher.DisplayTexts(results))
	default:
		eff = s.nav.Handle(ev)
	}

	s.log.Debug("event",
		"kind", ev.Kind.String(),
		"focus", s.nav.Focus().String(),
		"selected", s.nav.Selected(),
		"options", s.nav.OptionCount(),
	)

	if eff.SetQuery {
		s.surface.SetQueryText(eff.Query)
	}
	if eff.Render {
		s.render()
	}

	switch eff.Terminal {
	case navigation.TerminalSubmit:
		text := s.surface.QueryText()
		if !s.opts.AllowUnlisted && !s.commands.IsCommand(text) {
			s.log.Debug("submit ignored, not a command", "query", text)
			return Result{}, false
		}
		s.finish(Result{Command: text})
		return s.result, true
	case navigation.TerminalCancel:
		s.finish(Result{Cancelled: true})
		return s.result, true
	}
	return Result{}, false
}

// Run consumes events until the session ends. A source error, including
// end of input or a cancelled context, cancels the session. The surface is
// closed on every return path.
func (s *Session) Run(ctx context.Context, src EventSource) Result {
	defer s.Close()

	for {
		ev, err := src.Next(ctx)
		if err != nil {
			s.log.Debug("event source stopped", "error", err)
			res, _ := s.Step(navigation.Cancel())
			return res
		}
		if res, done := s.Step(ev); done {
			return res
		}
	}
}

// Close releases the surface. Safe to call more than once.
func (s *Session) Close() {
	if s.closed {
		return
	}
	s.closed = true
	s.surface.Close()
}

func (s *Session) finish(res Result) {
	s.done = true
	s.result = res
	s.log.Debug("session finished", "command", res.Command, "cancelled", res.Cancelled)
	s.Close()
}

func (s *Session) render() {
	s.surface.RenderOptions(s.nav.Options(), s.nav.Selected(), s.nav.Visible())
	s.surface.SetFocus(s.nav.Focus())
}
