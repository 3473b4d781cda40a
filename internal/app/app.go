// Package app wires configuration, the command registry, the matcher and a
// front end into one palette run.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/scificmdr/scificmdr/internal/commands"
	"github.com/scificmdr/scificmdr/internal/components/palette"
	"github.com/scificmdr/scificmdr/internal/config"
	"github.com/scificmdr/scificmdr/internal/logging"
	"github.com/scificmdr/scificmdr/internal/matcher"
	"github.com/scificmdr/scificmdr/internal/session"
	"github.com/scificmdr/scificmdr/internal/ui"
)

// Streams are the standard streams of a run. The terminal front end draws
// on Err so Out carries only the result.
type Streams struct {
	In  io.Reader
	Out io.Writer
	Err io.Writer
}

// Outcome is what a run produced
type Outcome struct {
	session.Result
	// Output is the value returned by the command's handlers when run is on
	Output any
	// Message describes a side effect such as a clipboard copy
	Message string
}

// App is one configured palette
type App struct {
	cfg      config.Config
	streams  Streams
	registry *commands.Registry
	matcher  *matcher.Matcher
}

// New builds the registry from the configured catalog, or the built-in
// demo catalog when none is set.
func New(cfg config.Config, streams Streams) (*App, error) {
	catalog := commands.DefaultCatalog()
	if cfg.Catalog != "" {
		loaded, err := commands.LoadCatalog(cfg.Catalog)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}

	registry := commands.NewRegistry()
	if err := catalog.Apply(registry); err != nil {
		return nil, fmt.Errorf("apply catalog: %w", err)
	}
	logging.Info("catalog loaded", "commands", registry.Len(), "path", cfg.Catalog)

	return &App{
		cfg:      cfg,
		streams:  streams,
		registry: registry,
		matcher:  matcher.New(registry),
	}, nil
}

// Registry returns the command registry so callers can attach handlers
// before running.
func (a *App) Registry() *commands.Registry {
	return a.registry
}

// Run shows the palette until the user submits or cancels, then applies the
// copy and run options to the chosen command.
func (a *App) Run(ctx context.Context) (Outcome, error) {
	var (
		res session.Result
		err error
	)
	switch a.cfg.Frontend {
	case config.FrontendScript:
		res, err = a.runScript(ctx)
	default:
		res, err = a.runTUI(ctx)
	}
	if err != nil {
		return Outcome{}, err
	}

	out := Outcome{Result: res}
	logging.Info("palette closed", "command", res.Command, "cancelled", res.Cancelled)
	if res.Cancelled {
		return out, nil
	}

	if a.cfg.Copy && res.Command != "" {
		msg, err := commands.CopyToClipboard(res.Command)
		if err != nil {
			return out, err
		}
		out.Message = msg
	}

	if name, args, ok := a.splitCommand(res.Command); a.cfg.Run && ok {
		output, err := logging.TimeWithResult("run "+name, func() (any, error) {
			return a.registry.RunCommand(name, args)
		})
		if err != nil {
			return out, err
		}
		out.Output = output
	}
	return out, nil
}

// splitCommand resolves submitted text to a registered command and its
// arguments. The whole text wins over its first word.
func (a *App) splitCommand(text string) (string, []string, bool) {
	if a.registry.IsCommand(text) {
		return text, nil, true
	}
	fields := strings.Fields(text)
	if len(fields) > 1 && a.registry.IsCommand(fields[0]) {
		return fields[0], fields[1:], true
	}
	return "", nil, false
}

func (a *App) sessionOptions() session.Options {
	return session.Options{AllowUnlisted: a.cfg.AllowUnlisted}
}

func (a *App) runTUI(ctx context.Context) (session.Result, error) {
	model := palette.New(palette.Config{
		Title:      a.cfg.Title,
		MaxVisible: a.cfg.MaxVisible,
		Theme:      ui.GetTheme(a.cfg.Theme),
	})
	s := session.New(a.registry, a.matcher, model, a.sessionOptions())
	defer s.Close()
	model.Attach(s)

	p := tea.NewProgram(
		model,
		tea.WithContext(ctx),
		tea.WithInput(a.streams.In),
		tea.WithOutput(a.streams.Err),
	)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return session.Result{}, fmt.Errorf("run palette: %w", err)
	}
	return model.Result(), nil
}

func (a *App) runScript(ctx context.Context) (session.Result, error) {
	in := a.streams.In
	if a.cfg.Script != config.StdinScript {
		f, err := os.Open(a.cfg.Script)
		if err != nil {
			return session.Result{}, fmt.Errorf("open script: %w", err)
		}
		defer f.Close()
		in = f
	}

	var frames io.Writer
	if a.cfg.Trace {
		frames = a.streams.Err
	}
	s := session.New(a.registry, a.matcher, session.NewHeadlessSurface(frames), a.sessionOptions())
	src := session.NewScriptSource(in)
	defer src.Close()
	return s.Run(ctx, src), nil
}
