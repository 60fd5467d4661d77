// Package source abstracts where the raw dataset stream comes from.
// Implementations register themselves by name; the pipeline resolves
// one at startup and consumes the stream it opens.
package source

import (
	"context"
	"fmt"
	"io"
)

// Source opens a raw dataset stream. The caller owns the returned
// reader and must close it.
type Source interface {
	Open(ctx context.Context, cfg Config) (io.ReadCloser, error)
}

// Config holds source-specific settings.
type Config struct {
	Path     string // file path, for file-backed sources
	Encoding string // "raw" (default) or "latin1"
}

// Constructor is a function that creates a new Source instance.
type Constructor func() Source

var registry = map[string]Constructor{}

// Register adds a source constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the source constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown dataset source: %s", name)
	}
	return ctor, nil
}

// Names returns the names of all registered sources.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
