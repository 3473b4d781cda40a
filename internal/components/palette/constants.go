package palette

// DefaultMaxVisible is the number of options shown before the list scrolls
const DefaultMaxVisible = 5

const (
	focusedMarker  = "▶ "
	selectedMarker = "▷ "
	plainMarker    = "  "
)
