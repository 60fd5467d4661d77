// Package report renders the final run summary to one or more
// destinations.
package report

import (
	"time"

	"github.com/crimson-sun/sift/internal/engine"
)

// Summary is everything a run reports: per-split forward-pass results
// plus load-time bookkeeping.
type Summary struct {
	Seed    int64         `json:"seed"`
	Loaded  int           `json:"loaded"`
	Dropped int           `json:"dropped"`
	Train   engine.Result `json:"train"`
	Test    engine.Result `json:"test"`
	Elapsed time.Duration `json:"elapsed"`
}

// Writer renders a summary to some destination.
type Writer interface {
	Write(s Summary) error
	Close() error
}
