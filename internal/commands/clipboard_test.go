package commands

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubClipboard(t *testing.T, unsupported bool, fn func(string) error) {
	t.Helper()
	origWrite, origUnsupported := writeClipboard, clipboardUnsupported
	writeClipboard = fn
	clipboardUnsupported = func() bool { return unsupported }
	t.Cleanup(func() {
		writeClipboard = origWrite
		clipboardUnsupported = origUnsupported
	})
}

func TestCopyToClipboard(t *testing.T) {
	var copied string
	stubClipboard(t, false, func(text string) error {
		copied = text
		return nil
	})

	msg, err := CopyToClipboard(" apple ")
	require.NoError(t, err)
	assert.Equal(t, "apple", copied)
	assert.Equal(t, "Copied apple to clipboard", msg)
}

func TestCopyToClipboard_Errors(t *testing.T) {
	boom := errors.New("no display")

	tests := []struct {
		name        string
		text        string
		unsupported bool
		writeErr    error
		wantErr     error
	}{
		{name: "empty", text: "  ", wantErr: ErrEmptyName},
		{name: "unsupported", text: "apple", unsupported: true, wantErr: ErrClipboardUnavailable},
		{name: "write fails", text: "apple", writeErr: boom, wantErr: boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			stubClipboard(t, tt.unsupported, func(string) error {
				called = true
				return tt.writeErr
			})

			_, err := CopyToClipboard(tt.text)
			assert.ErrorIs(t, err, tt.wantErr)
			if tt.writeErr == nil {
				assert.False(t, called, "clipboard should not be written")
			}
		})
	}
}
