// Package pipeline connects a dataset source, the forward-pass engine,
// and a report writer into one run.
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/crimson-sun/sift/internal/dataset"
	"github.com/crimson-sun/sift/internal/engine"
	"github.com/crimson-sun/sift/internal/report"
	"github.com/crimson-sun/sift/internal/source"
)

// ErrEmptySplit is returned when partitioning leaves either subset
// without samples; downstream stages must never see an empty batch.
var ErrEmptySplit = errors.New("pipeline: split produced an empty subset")

// Pipeline wires source → dataset → engine → report.
type Pipeline struct {
	source source.Source
	engine *engine.Engine
	writer report.Writer
}

// New creates a Pipeline from the given components.
func New(src source.Source, eng *engine.Engine, w report.Writer) *Pipeline {
	return &Pipeline{source: src, engine: eng, writer: w}
}

// Run loads and partitions the dataset, executes the forward pass on
// the training split and then the evaluation split with the same
// frozen parameters, writes the summary, and returns it.
//
// seed labels the summary; rng must already be seeded with it. There
// are no retries: malformed rows were absorbed at parse time and every
// remaining failure is structural.
func (p *Pipeline) Run(ctx context.Context, cfg source.Config, rng *rand.Rand, seed int64) (report.Summary, error) {
	begin := time.Now()

	rc, err := p.source.Open(ctx, cfg)
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: %w", err)
	}
	records, dropped, err := dataset.Load(rc)
	rc.Close()
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: %w", err)
	}

	split, err := dataset.Partition(records, rng)
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: %w", err)
	}
	if len(split.Train) == 0 || len(split.Test) == 0 {
		return report.Summary{}, fmt.Errorf("%w: %d train / %d test",
			ErrEmptySplit, len(split.Train), len(split.Test))
	}
	slog.Info("dataset partitioned",
		"loaded", len(records), "dropped", dropped,
		"train", len(split.Train), "test", len(split.Test))

	if err := ctx.Err(); err != nil {
		return report.Summary{}, err
	}
	trainRes, err := p.engine.Run(split.Train)
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: train pass: %w", err)
	}
	slog.Info("training split evaluated", "accuracy", trainRes.Accuracy)

	if err := ctx.Err(); err != nil {
		return report.Summary{}, err
	}
	testRes, err := p.engine.Run(split.Test)
	if err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: test pass: %w", err)
	}
	slog.Info("evaluation split evaluated", "accuracy", testRes.Accuracy)

	summary := report.Summary{
		Seed:    seed,
		Loaded:  len(records),
		Dropped: dropped,
		Train:   trainRes,
		Test:    testRes,
		Elapsed: time.Since(begin),
	}
	if err := p.writer.Write(summary); err != nil {
		return report.Summary{}, fmt.Errorf("pipeline: %w", err)
	}
	return summary, nil
}

// Close shuts down the report writer.
func (p *Pipeline) Close() error {
	return p.writer.Close()
}
