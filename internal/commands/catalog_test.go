package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCatalog(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, DefaultCatalog().Apply(r))

	assert.Equal(t, []string{"apple", "cherry", "banana", "pineapple", "brinjal"}, r.Names())
	display, err := r.DisplayTextOf("brinjal")
	require.NoError(t, err)
	assert.Equal(t, "brinjal : is a purple vegetable", display)
}

func TestParseCatalog(t *testing.T) {
	data := []byte(`
commands:
  - name: Apple
    description: is a red fruit
  - name: uptime
    exec: ["uptime", "-p"]
    timeout: 5s
`)
	catalog, err := ParseCatalog(data)
	require.NoError(t, err)
	require.Len(t, catalog.Commands, 2)
	assert.Equal(t, "Apple", catalog.Commands[0].Name)
	assert.Equal(t, []string{"uptime", "-p"}, catalog.Commands[1].Exec)
	assert.Equal(t, "5s", catalog.Commands[1].Timeout)
}

func TestParseCatalog_UnknownField(t *testing.T) {
	_, err := ParseCatalog([]byte("commands:\n  - name: apple\n    colour: red\n"))
	assert.Error(t, err)
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("commands:\n  - name: apple\n"), 0o600))

	catalog, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, catalog.Commands, 1)

	_, err = LoadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read catalog")
}

func TestCatalog_Apply_ExecHandler(t *testing.T) {
	requireProgram(t, "echo")

	catalog := &Catalog{Commands: []CatalogEntry{
		{Name: "say", Description: "echo words", Exec: []string{"echo", "said"}, Timeout: "2s"},
	}}
	r := NewRegistry()
	require.NoError(t, catalog.Apply(r))

	handlers, err := r.HandlersOf("say")
	require.NoError(t, err)
	require.Len(t, handlers, 1)

	out, err := r.RunCommand("say", []string{"hi"})
	require.NoError(t, err)
	assert.Equal(t, "said hi\n", out)
}

func TestCatalog_Apply_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		entries []CatalogEntry
		wantErr error
	}{
		{
			name:    "empty name",
			entries: []CatalogEntry{{Name: "apple"}, {Name: ""}},
			wantErr: ErrEmptyName,
		},
		{
			name:    "separator in name",
			entries: []CatalogEntry{{Name: "apple"}, {Name: "a : b"}},
			wantErr: ErrInvalidName,
		},
		{
			name:    "duplicate within catalog",
			entries: []CatalogEntry{{Name: "apple"}, {Name: "APPLE"}},
			wantErr: ErrDuplicateCommand,
		},
		{
			name:    "duplicate of registered command",
			entries: []CatalogEntry{{Name: "kiwi"}, {Name: "existing"}},
			wantErr: ErrDuplicateCommand,
		},
		{
			name:    "bad timeout",
			entries: []CatalogEntry{{Name: "slow", Exec: []string{"sleep"}, Timeout: "soon"}},
		},
		{
			name:    "timeout without exec",
			entries: []CatalogEntry{{Name: "slow", Timeout: time.Second.String()}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			require.NoError(t, r.Register("existing", ""))

			err := (&Catalog{Commands: tt.entries}).Apply(r)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			// Nothing from a failing catalog is registered
			assert.Equal(t, []string{"existing"}, r.Names())
		})
	}
}
