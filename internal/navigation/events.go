package navigation

// EventKind identifies one raw key or text input from the user
type EventKind int

const (
	EventNone        EventKind = iota // Uninterpretable input, always a no-op
	EventTextChanged                  // Query text edited
	EventTabComplete                  // Complete the query from the highlighted option
	EventDown                         // Down arrow
	EventUp                           // Up arrow
	EventSubmit                       // Accept the query text
	EventCancel                       // Abandon the session
)

// String returns the event kind name used in logs and scripts
func (k EventKind) String() string {
	switch k {
	case EventTextChanged:
		return "text"
	case EventTabComplete:
		return "tab"
	case EventDown:
		return "down"
	case EventUp:
		return "up"
	case EventSubmit:
		return "submit"
	case EventCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Event is a single input delivered to the session
type Event struct {
	Kind EventKind
	Text string // Query text, only for EventTextChanged
}

// TextChanged builds a text change event
func TextChanged(query string) Event {
	return Event{Kind: EventTextChanged, Text: query}
}

// TabComplete builds a completion event
func TabComplete() Event { return Event{Kind: EventTabComplete} }

// Down builds a down arrow event
func Down() Event { return Event{Kind: EventDown} }

// Up builds an up arrow event
func Up() Event { return Event{Kind: EventUp} }

// Submit builds a submit event
func Submit() Event { return Event{Kind: EventSubmit} }

// Cancel builds a cancel event
func Cancel() Event { return Event{Kind: EventCancel} }
