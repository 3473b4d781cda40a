package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"sigs.k8s.io/yaml"
)

// CatalogEntry describes one command in a catalog file
type CatalogEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Exec        []string `json:"exec,omitempty"`    // Program and fixed arguments
	Timeout     string   `json:"timeout,omitempty"` // Go duration, exec handlers only
}

// Catalog is a list of commands loaded from YAML:
//
//	commands:
//	  - name: apple
//	    description: is a red fruit
//	  - name: uptime
//	    exec: ["uptime"]
type Catalog struct {
	Commands []CatalogEntry `json:"commands"`
}

// DefaultCatalog returns the built-in demo commands
func DefaultCatalog() *Catalog {
	return &Catalog{
		Commands: []CatalogEntry{
			{Name: "apple", Description: "is a red fruit"},
			{Name: "cherry", Description: "a red fruit"},
			{Name: "banana", Description: "is a yellow fruit"},
			{Name: "pineapple", Description: "is a yellow and green fruit"},
			{Name: "brinjal", Description: "is a purple vegetable"},
		},
	}
}

// LoadCatalog reads and parses a catalog file
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog parses catalog YAML. Unknown fields are rejected.
func ParseCatalog(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.UnmarshalStrict(data, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// Apply registers every catalog command in r. The catalog is validated
// first, so a failing catalog registers nothing.
func (c *Catalog) Apply(r *Registry) error {
	handlers := make([]Handler, len(c.Commands))
	seen := make(map[string]bool, len(c.Commands))

	for i, entry := range c.Commands {
		key := strings.ToLower(entry.Name)
		if strings.TrimSpace(key) == "" {
			return fmt.Errorf("catalog entry %d: %w", i, ErrEmptyName)
		}
		if strings.Contains(key, DisplaySeparator) {
			return fmt.Errorf("catalog entry %d: %w: %q", i, ErrInvalidName, key)
		}
		if seen[key] || r.IsCommand(key) {
			return fmt.Errorf("catalog entry %d: %w: %q", i, ErrDuplicateCommand, key)
		}
		seen[key] = true

		if entry.Timeout != "" && len(entry.Exec) == 0 {
			return fmt.Errorf("catalog entry %d (%s): timeout set without exec", i, key)
		}
		if len(entry.Exec) == 0 {
			continue
		}

		var opts ExecOptions
		if entry.Timeout != "" {
			timeout, err := time.ParseDuration(entry.Timeout)
			if err != nil {
				return fmt.Errorf("catalog entry %d (%s): invalid timeout: %w", i, key, err)
			}
			opts.Timeout = timeout
		}
		handlers[i] = NewProcessExecutor(entry.Exec, opts).Handler()
	}

	for i, entry := range c.Commands {
		if err := r.Register(entry.Name, entry.Description); err != nil {
			return err
		}
		if handlers[i] != nil {
			if err := r.RegisterHandler(entry.Name, handlers[i]); err != nil {
				return err
			}
		}
	}
	return nil
}
