// Package dataset loads labeled records from a delimited line stream
// and partitions them into train/test splits.
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/crimson-sun/sift/internal/model"
)

// ErrEmptyDataset is returned when the source yields no usable records.
var ErrEmptyDataset = errors.New("dataset: no records loaded")

// fieldCount is the number of logical comma-separated fields per line:
// label, three ignored columns, then the text payload. The payload is
// taken verbatim to the end of the line, so commas inside it survive.
const fieldCount = 5

// maxLineBytes bounds scanner lines well above MaxTextLen so oversized
// payloads are truncated by parseLine, not rejected by the scanner.
const maxLineBytes = 1 << 20

// Load reads records from r until EOF. Malformed lines (missing text
// field or a non-integer label) are dropped and counted, never fatal.
// Returns ErrEmptyDataset when nothing usable was read.
func Load(r io.Reader) (records []model.Record, dropped int, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	for sc.Scan() {
		rec, ok := parseLine(sc.Text())
		if !ok {
			dropped++
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, dropped, fmt.Errorf("dataset: read: %w", err)
	}
	if len(records) == 0 {
		return nil, dropped, ErrEmptyDataset
	}

	if dropped > 0 {
		slog.Debug("dropped malformed records", "count", dropped)
	}
	return records, dropped, nil
}

// parseLine splits a line into at most fieldCount fields and builds a
// record from fields 1 (label) and 5 (text). Text longer than
// MaxTextLen-1 bytes is truncated without error.
func parseLine(line string) (model.Record, bool) {
	fields := strings.SplitN(line, ",", fieldCount)
	if len(fields) < fieldCount {
		return model.Record{}, false
	}

	label, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return model.Record{}, false
	}

	text := fields[fieldCount-1]
	if len(text) > model.MaxTextLen-1 {
		text = text[:model.MaxTextLen-1]
	}

	return model.Record{Label: model.Label(label), Text: text}, true
}
