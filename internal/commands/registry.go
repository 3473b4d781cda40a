package commands

import (
	"fmt"
	"slices"
	"strings"

	"github.com/scificmdr/scificmdr/internal/logging"
)

// Registry holds all registered commands. Names are case-insensitive and
// stored lowercase. The description, display text and handler entries of a
// command are always added and removed together.
type Registry struct {
	descriptions map[string]string
	displays     map[string]string
	handlers     map[string][]Handler
	order        []string // Registration order, drives match tie-breaking
}

// NewRegistry creates an empty command registry
func NewRegistry() *Registry {
	return &Registry{
		descriptions: map[string]string{},
		displays:     map[string]string{},
		handlers:     map[string][]Handler{},
		order:        []string{},
	}
}

// Register adds a command. An empty description means the command has none
// and its display text is the bare name. Names may not contain
// DisplaySeparator, so the name can always be read back from the display text.
func (r *Registry) Register(name, description string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	if strings.Contains(name, DisplaySeparator) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	key := strings.ToLower(name)
	if r.IsCommand(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateCommand, key)
	}

	desc := strings.ToLower(description)
	r.descriptions[key] = desc
	r.handlers[key] = []Handler{}
	r.displays[key] = displayText(key, desc)
	r.order = append(r.order, key)

	logging.Debug("command registered", "name", key, "display", r.displays[key])
	return nil
}

// Deregister removes a command together with its description and handlers
func (r *Registry) Deregister(name string) error {
	key := strings.ToLower(name)
	if !r.IsCommand(key) {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, key)
	}

	delete(r.descriptions, key)
	delete(r.displays, key)
	delete(r.handlers, key)
	if i := slices.Index(r.order, key); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}

	logging.Debug("command deregistered", "name", key)
	return nil
}

// IsCommand reports whether name is registered, ignoring case
func (r *Registry) IsCommand(name string) bool {
	_, ok := r.descriptions[strings.ToLower(name)]
	return ok
}

// DisplayTextOf returns the searchable display text of a command
func (r *Registry) DisplayTextOf(name string) (string, error) {
	text, ok := r.displays[strings.ToLower(name)]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownCommand, strings.ToLower(name))
	}
	return text, nil
}

// RegisterHandler appends a handler to an existing command
func (r *Registry) RegisterHandler(name string, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	key := strings.ToLower(name)
	if !r.IsCommand(key) {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, key)
	}
	r.handlers[key] = append(r.handlers[key], handler)
	return nil
}

// HandlersOf returns a copy of the handlers of a command in registration order
func (r *Registry) HandlersOf(name string) ([]Handler, error) {
	key := strings.ToLower(name)
	handlers, ok := r.handlers[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, key)
	}
	return slices.Clone(handlers), nil
}

// DefineCommand registers a command and its handler in one call.
// Nothing is registered if the handler is nil.
func (r *Registry) DefineCommand(name, description string, handler Handler) error {
	if handler == nil {
		return ErrNilHandler
	}
	if err := r.Register(name, description); err != nil {
		return err
	}
	return r.RegisterHandler(name, handler)
}

// RunCommand invokes every handler of a command in order with args and
// returns the result of the last one. A handler error stops the run.
func (r *Registry) RunCommand(name string, args []string) (any, error) {
	key := strings.ToLower(name)
	if !r.IsCommand(key) {
		return nil, fmt.Errorf("%w: %q", ErrNotACommand, key)
	}

	var result any
	for i, handler := range slices.Clone(r.handlers[key]) {
		out, err := handler(args)
		if err != nil {
			logging.Warn("command handler failed", "name", key, "handler", i, "error", err)
			return nil, fmt.Errorf("run %s: %w", key, err)
		}
		result = out
	}
	return result, nil
}

// Get returns a snapshot of a registered command
func (r *Registry) Get(name string) (Command, bool) {
	key := strings.ToLower(name)
	if !r.IsCommand(key) {
		return Command{}, false
	}
	return Command{
		Name:        key,
		Description: r.descriptions[key],
		DisplayText: r.displays[key],
		Handlers:    slices.Clone(r.handlers[key]),
	}, true
}

// Names returns registered command names in registration order
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

// Entries returns name/display text pairs in registration order
func (r *Registry) Entries() []Entry {
	entries := make([]Entry, len(r.order))
	for i, name := range r.order {
		entries[i] = Entry{Name: name, DisplayText: r.displays[name]}
	}
	return entries
}

// Len returns the number of registered commands
func (r *Registry) Len() int {
	return len(r.order)
}

// CommandNameFromDisplay returns the command name part of a display text:
// everything before the first separator, or the whole text without one.
func CommandNameFromDisplay(display string) string {
	name, _, _ := strings.Cut(display, DisplaySeparator)
	return name
}

func displayText(name, description string) string {
	if description == "" {
		return name
	}
	return name + DisplaySeparator + description
}
