package activation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSigmoidOfZero(t *testing.T) {
	s := []float32{0}
	Sigmoid(s, 1)
	assert.InDelta(t, 0.5, s[0], 1e-7)
}

func TestSigmoidBounds(t *testing.T) {
	s := []float32{-1000, -50, -1, -0.1, 0.1, 1, 50, 1000}
	Sigmoid(s, 1)
	for i, v := range s {
		assert.False(t, math.IsNaN(float64(v)), "index %d is NaN", i)
		assert.GreaterOrEqual(t, v, float32(0), "index %d", i)
		assert.LessOrEqual(t, v, float32(1), "index %d", i)
	}
	// Interior inputs stay strictly inside (0, 1).
	assert.Greater(t, s[2], float32(0))
	assert.Less(t, s[5], float32(1))
}

func TestSigmoidMonotonic(t *testing.T) {
	s := []float32{-3, -1, -0.5, 0, 0.5, 1, 3}
	Sigmoid(s, 1)
	for i := 1; i < len(s); i++ {
		assert.Greater(t, s[i], s[i-1])
	}
}

func TestSigmoidExtremesSaturate(t *testing.T) {
	s := []float32{-1000, 1000}
	Sigmoid(s, 1)
	assert.Equal(t, float32(0), s[0])
	assert.Equal(t, float32(1), s[1])
}

func TestSigmoidParallelMatchesSerial(t *testing.T) {
	a := make([]float32, 500)
	b := make([]float32, 500)
	for i := range a {
		a[i] = float32(i)/100 - 2.5
		b[i] = a[i]
	}
	Sigmoid(a, 1)
	Sigmoid(b, 8)
	assert.Equal(t, a, b)
}
