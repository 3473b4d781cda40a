package commands

import "time"

const (
	// DisplaySeparator separates the command name from its description in
	// display text.
	DisplaySeparator = " : "

	// DefaultExecTimeout is the default timeout for exec handlers
	DefaultExecTimeout = 30 * time.Second
)
