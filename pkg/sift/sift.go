package sift

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/crimson-sun/sift/internal/dataset"
	"github.com/crimson-sun/sift/internal/engine"
	"github.com/crimson-sun/sift/internal/engine/dense"
	"github.com/crimson-sun/sift/internal/model"
)

// Result reports one forward pass over a split.
type Result struct {
	Samples  int
	Accuracy float64
}

// Summary is the outcome of evaluating a corpus.
type Summary struct {
	Seed    int64
	Loaded  int
	Dropped int
	Train   Result
	Test    Result
}

// Evaluate reads a labeled corpus from r, partitions it 70/30, and
// runs the frozen forward pass over both splits with shared
// parameters. The same seed always produces the same summary.
func Evaluate(r io.Reader, opts ...Option) (Summary, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	records, dropped, err := dataset.Load(r)
	if err != nil {
		return Summary{}, fmt.Errorf("sift: %w", err)
	}

	rng := rand.New(rand.NewSource(o.seed))
	params := dense.NewParams(model.EmbeddingDim, rng)
	eng, err := engine.New(params, o.workers)
	if err != nil {
		return Summary{}, fmt.Errorf("sift: %w", err)
	}

	split, err := dataset.Partition(records, rng)
	if err != nil {
		return Summary{}, fmt.Errorf("sift: %w", err)
	}
	if len(split.Train) == 0 || len(split.Test) == 0 {
		return Summary{}, fmt.Errorf("sift: split produced an empty subset (%d train / %d test)",
			len(split.Train), len(split.Test))
	}

	train, err := eng.Run(split.Train)
	if err != nil {
		return Summary{}, fmt.Errorf("sift: %w", err)
	}
	test, err := eng.Run(split.Test)
	if err != nil {
		return Summary{}, fmt.Errorf("sift: %w", err)
	}

	return Summary{
		Seed:    o.seed,
		Loaded:  len(records),
		Dropped: dropped,
		Train:   Result{Samples: train.Samples, Accuracy: train.Accuracy},
		Test:    Result{Samples: test.Samples, Accuracy: test.Accuracy},
	}, nil
}
