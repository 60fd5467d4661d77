// Package evaluator thresholds activated scores into class predictions
// and reduces them to an accuracy fraction.
package evaluator

import (
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/crimson-sun/sift/internal/model"
	"github.com/crimson-sun/sift/internal/parallel"
)

// ErrNoSamples is returned when there is nothing to evaluate; callers
// must not treat an empty batch as 0% accuracy.
var ErrNoSamples = errors.New("evaluator: no samples to evaluate")

// Accuracy predicts Positive for every activated score strictly above
// model.DecisionThreshold, Negative otherwise, and returns the
// fraction of predictions matching labels. The per-sample comparisons
// run concurrently; the match count is an atomic sum reduction.
func Accuracy(scores []float32, labels []model.Label, workers int) (float64, error) {
	if len(scores) == 0 {
		return 0, ErrNoSamples
	}
	if len(scores) != len(labels) {
		return 0, fmt.Errorf("evaluator: %d scores for %d labels", len(scores), len(labels))
	}

	var correct atomic.Int64
	parallel.ForEach(len(scores), workers, func(i int) {
		predicted := model.Negative
		if scores[i] > model.DecisionThreshold {
			predicted = model.Positive
		}
		if predicted == labels[i] {
			correct.Add(1)
		}
	})

	return float64(correct.Load()) / float64(len(scores)), nil
}
