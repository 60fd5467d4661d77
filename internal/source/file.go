package source

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

func init() {
	Register("file", func() Source { return &File{} })
}

// File reads the dataset from a local file. The reference corpus is
// distributed as Latin-1; set Encoding to "latin1" to transcode it to
// UTF-8 on the fly. The default "raw" passes bytes through untouched,
// which matches the reference vectorization exactly.
type File struct{}

// Open opens cfg.Path, optionally wrapped in a decoding transform.
func (f *File) Open(_ context.Context, cfg Config) (io.ReadCloser, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("file source: no dataset path configured")
	}

	file, err := os.Open(cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("file source: %w", err)
	}

	switch cfg.Encoding {
	case "", "raw":
		return file, nil
	case "latin1":
		return &transformCloser{
			Reader: transform.NewReader(file, charmap.ISO8859_1.NewDecoder()),
			closer: file,
		}, nil
	default:
		file.Close()
		return nil, fmt.Errorf("file source: unsupported encoding %q", cfg.Encoding)
	}
}

// transformCloser pairs a transforming reader with the underlying
// file's Close.
type transformCloser struct {
	io.Reader
	closer io.Closer
}

func (t *transformCloser) Close() error { return t.closer.Close() }
