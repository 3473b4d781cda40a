package commands

// Handler is invoked when a command is run. Args are the words submitted
// after the command name, nil when the query was the bare name.
type Handler func(args []string) (any, error)

// Command represents a registered command in the palette
type Command struct {
	Name        string    // Lowercase command name (e.g., "apple")
	Description string    // Lowercase description, empty when none
	DisplayText string    // Searchable label: "name : description" or just "name"
	Handlers    []Handler // Handlers in registration order
}

// Entry pairs a command name with its display text, as fed to the matcher.
type Entry struct {
	Name        string
	DisplayText string
}
