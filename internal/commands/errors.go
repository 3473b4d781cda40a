package commands

import "errors"

var (
	// ErrDuplicateCommand is returned when registering a name that already exists
	ErrDuplicateCommand = errors.New("command already registered")
	// ErrUnknownCommand is returned when looking up a name that is not registered
	ErrUnknownCommand = errors.New("unknown command")
	// ErrNotACommand is returned by RunCommand for names unknown to the registry
	ErrNotACommand = errors.New("not a command")
	// ErrEmptyName is returned when registering a blank command name
	ErrEmptyName = errors.New("command name cannot be empty")
	// ErrInvalidName is returned when a command name contains the display separator
	ErrInvalidName = errors.New("command name cannot contain the display separator")
	// ErrNilHandler is returned when registering a nil handler
	ErrNilHandler = errors.New("handler cannot be nil")
)
