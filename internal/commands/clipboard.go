package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// ErrClipboardUnavailable is returned when no clipboard utility was found
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Swapped in tests
var (
	writeClipboard       = clipboard.WriteAll
	clipboardUnsupported = func() bool { return clipboard.Unsupported }
)

// CopyToClipboard puts a chosen command on the system clipboard and returns
// a message for the user.
func CopyToClipboard(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrEmptyName
	}
	if clipboardUnsupported() {
		return "", ErrClipboardUnavailable
	}
	if err := writeClipboard(name); err != nil {
		return "", fmt.Errorf("copy %q: %w", name, err)
	}
	return fmt.Sprintf("Copied %s to clipboard", name), nil
}
