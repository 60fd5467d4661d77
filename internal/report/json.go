package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes the summary as a single JSON document, for piping into
// other tooling.
type JSON struct {
	enc *json.Encoder
	c   io.Closer
}

// NewJSON creates a JSON writer on w. When w is also an io.Closer
// (e.g. a report file), Close closes it.
func NewJSON(w io.Writer, pretty bool) *JSON {
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	c, _ := w.(io.Closer)
	return &JSON{enc: enc, c: c}
}

func (j *JSON) Write(s Summary) error {
	if err := j.enc.Encode(s); err != nil {
		return fmt.Errorf("json report: %w", err)
	}
	return nil
}

func (j *JSON) Close() error {
	if j.c != nil {
		return j.c.Close()
	}
	return nil
}
