// Package vectorizer turns records into fixed-width numeric rows using
// a deterministic character-code encoding.
package vectorizer

import (
	"github.com/crimson-sun/sift/internal/model"
	"github.com/crimson-sun/sift/internal/parallel"
)

// Matrix is a dense row-major collection of embeddings: Rows rows of
// Dim float32 values backed by one flat slice.
type Matrix struct {
	Data []float32
	Rows int
	Dim  int
}

// Row returns row i as a subslice of the backing array.
func (m Matrix) Row(i int) []float32 {
	return m.Data[i*m.Dim : (i+1)*m.Dim]
}

// Embed builds an N×EmbeddingDim matrix from records. Byte j of record
// i maps to Data[i*Dim+j] = byte/255; positions past the end of the
// text stay exactly zero, so padding contributes nothing downstream.
//
// Rows are independent, so they are filled concurrently with up to
// workers goroutines.
func Embed(records []model.Record, workers int) Matrix {
	m := Matrix{
		Data: make([]float32, len(records)*model.EmbeddingDim),
		Rows: len(records),
		Dim:  model.EmbeddingDim,
	}

	parallel.ForEach(m.Rows, workers, func(i int) {
		row := m.Row(i)
		text := records[i].Text
		if len(text) > m.Dim {
			text = text[:m.Dim]
		}
		for j := 0; j < len(text); j++ {
			row[j] = float32(text[j]) / 255
		}
	})

	return m
}
