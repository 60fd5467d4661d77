// Package activation applies the elementwise sigmoid that turns raw
// linear scores into pseudo-probabilities in (0, 1).
package activation

import (
	"math"

	"github.com/crimson-sun/sift/internal/parallel"
)

// Sigmoid overwrites every score in place with 1/(1+exp(-x)), computed
// in the numerically stable split form so extreme inputs saturate to
// the 0/1 limits instead of overflowing exp.
func Sigmoid(scores []float32, workers int) {
	parallel.ForEach(len(scores), workers, func(i int) {
		scores[i] = sigmoid(scores[i])
	})
}

func sigmoid(x float32) float32 {
	// Keep the exp argument non-positive on both branches.
	if x >= 0 {
		return float32(1 / (1 + math.Exp(-float64(x))))
	}
	e := math.Exp(float64(x))
	return float32(e / (1 + e))
}
