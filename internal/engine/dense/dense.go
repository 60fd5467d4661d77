// Package dense implements the single linear scoring unit: a frozen
// weight vector plus bias applied to every embedding row.
package dense

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/crimson-sun/sift/internal/engine/vectorizer"
	"github.com/crimson-sun/sift/internal/parallel"
)

// ErrDimensionMismatch is returned when an embedding row width and the
// weight vector length disagree.
var ErrDimensionMismatch = errors.New("dense: embedding width does not match weight vector")

// Params holds the frozen parameters of the scoring unit. They are
// drawn once at startup and never updated; concurrent readers are safe.
type Params struct {
	Weights []float32
	Bias    float32
}

// NewParams draws dim weights i.i.d. from [0, 1) scaled by sqrt(2/dim)
// (Xavier-style) using the supplied source. Bias starts at zero.
// Exactly dim weights are allocated.
func NewParams(dim int, rng *rand.Rand) Params {
	scale := float32(math.Sqrt(2 / float64(dim)))
	weights := make([]float32, dim)
	for i := range weights {
		weights[i] = rng.Float32() * scale
	}
	return Params{Weights: weights}
}

// Forward computes one score per matrix row:
//
//	out[i] = bias + row_i · weights
//
// The weight length must equal the matrix width; a mismatch is
// rejected before any arithmetic. Rows are scored concurrently with up
// to workers goroutines.
func Forward(m vectorizer.Matrix, p Params, workers int) ([]float32, error) {
	if len(p.Weights) != m.Dim {
		return nil, fmt.Errorf("%w: %d weights for width %d", ErrDimensionMismatch, len(p.Weights), m.Dim)
	}

	out := make([]float32, m.Rows)
	parallel.ForEach(m.Rows, workers, func(i int) {
		row := m.Row(i)
		sum := p.Bias
		for k, w := range p.Weights {
			sum += row[k] * w
		}
		out[i] = sum
	})
	return out, nil
}
