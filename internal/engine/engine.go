// Package engine orchestrates the vectorize → score → activate →
// evaluate forward pass over one record subset.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"github.com/crimson-sun/sift/internal/engine/activation"
	"github.com/crimson-sun/sift/internal/engine/dense"
	"github.com/crimson-sun/sift/internal/engine/evaluator"
	"github.com/crimson-sun/sift/internal/engine/vectorizer"
	"github.com/crimson-sun/sift/internal/model"
)

// StageTimings records the wall-clock duration of each forward-pass
// stage. The numeric stages themselves are duration-free; the engine
// wraps them.
type StageTimings struct {
	Vectorize time.Duration `json:"vectorize"`
	Score     time.Duration `json:"score"`
	Activate  time.Duration `json:"activate"`
	Evaluate  time.Duration `json:"evaluate"`
}

// Result is the outcome of one forward pass.
type Result struct {
	Samples  int          `json:"samples"`
	Accuracy float64      `json:"accuracy"`
	Stages   StageTimings `json:"stages"`
}

// Engine runs the frozen forward pass. Params are write-once at
// construction and read-only afterwards, so one Engine may evaluate
// several subsets, concurrently if desired.
type Engine struct {
	params  dense.Params
	workers int
}

// New creates an Engine around frozen params. The weight length must
// equal the embedding width the vectorizer produces.
func New(params dense.Params, workers int) (*Engine, error) {
	if len(params.Weights) != model.EmbeddingDim {
		return nil, fmt.Errorf("engine: %w: %d weights for width %d",
			dense.ErrDimensionMismatch, len(params.Weights), model.EmbeddingDim)
	}
	return &Engine{params: params, workers: workers}, nil
}

// Params exposes the frozen parameters, shared across splits.
func (e *Engine) Params() dense.Params { return e.params }

// Run executes the four stages in order over records. Stages are
// strictly sequential; within each stage the samples are processed in
// parallel.
func (e *Engine) Run(records []model.Record) (Result, error) {
	if len(records) == 0 {
		return Result{}, evaluator.ErrNoSamples
	}

	labels := lo.Map(records, func(r model.Record, _ int) model.Label { return r.Label })
	res := Result{Samples: len(records)}

	start := time.Now()
	matrix := vectorizer.Embed(records, e.workers)
	res.Stages.Vectorize = time.Since(start)

	start = time.Now()
	scores, err := dense.Forward(matrix, e.params, e.workers)
	if err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}
	res.Stages.Score = time.Since(start)

	start = time.Now()
	activation.Sigmoid(scores, e.workers)
	res.Stages.Activate = time.Since(start)

	start = time.Now()
	res.Accuracy, err = evaluator.Accuracy(scores, labels, e.workers)
	if err != nil {
		return Result{}, fmt.Errorf("engine: %w", err)
	}
	res.Stages.Evaluate = time.Since(start)

	slog.Debug("forward pass complete",
		"samples", res.Samples,
		"accuracy", res.Accuracy,
		"vectorize", res.Stages.Vectorize,
		"score", res.Stages.Score,
		"activate", res.Stages.Activate,
		"evaluate", res.Stages.Evaluate)

	return res, nil
}
