package report

import (
	"fmt"
	"io"
	"time"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"

	"github.com/crimson-sun/sift/internal/engine"
)

// Text renders a human-readable accuracy table to w.
type Text struct {
	w       io.Writer
	colored bool
}

// NewText creates a Text writer. colored enables the highlighted
// headline; keep it off when w is not a terminal.
func NewText(w io.Writer, colored bool) *Text {
	return &Text{w: w, colored: colored}
}

func (t *Text) Write(s Summary) error {
	headline := fmt.Sprintf("sift: %d records (%d dropped), seed %d, %s total",
		s.Loaded, s.Dropped, s.Seed, s.Elapsed.Round(time.Millisecond))
	if t.colored {
		headline = color.New(color.FgGreen).Render(headline)
	}
	if _, err := fmt.Fprintln(t.w, headline); err != nil {
		return fmt.Errorf("text report: %w", err)
	}

	table := tablewriter.NewWriter(t.w)
	table.SetHeader([]string{"Split", "Samples", "Accuracy", "Vectorize", "Score", "Activate", "Evaluate"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.Append(splitRow("train", s.Train))
	table.Append(splitRow("test", s.Test))
	table.Render()
	return nil
}

func (t *Text) Close() error { return nil }

func splitRow(name string, r engine.Result) []string {
	return []string{
		name,
		fmt.Sprintf("%d", r.Samples),
		fmt.Sprintf("%.2f%%", r.Accuracy*100),
		r.Stages.Vectorize.String(),
		r.Stages.Score.String(),
		r.Stages.Activate.String(),
		r.Stages.Evaluate.String(),
	}
}
