package source

import (
	"context"
	"io"
	"os"
)

func init() {
	Register("stdin", func() Source { return &Stdin{} })
}

// Stdin reads the dataset from standard input, for piping a corpus
// straight into the binary.
type Stdin struct{}

// Open returns stdin behind a no-op closer; the process owns the
// real descriptor.
func (s *Stdin) Open(context.Context, Config) (io.ReadCloser, error) {
	return io.NopCloser(os.Stdin), nil
}
