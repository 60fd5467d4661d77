package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/sift/internal/dataset"
	"github.com/crimson-sun/sift/internal/engine"
	"github.com/crimson-sun/sift/internal/engine/dense"
	"github.com/crimson-sun/sift/internal/model"
	"github.com/crimson-sun/sift/internal/report"
	"github.com/crimson-sun/sift/internal/source"
)

// memorySource serves a fixed in-memory corpus.
type memorySource struct{ data string }

func (m *memorySource) Open(context.Context, source.Config) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(m.data)), nil
}

func corpus(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		label := i % 2 * 4
		fmt.Fprintf(&b, "%d,id%d,date,query,sample text number %d\n", label, i, i)
	}
	return b.String()
}

func zeroParamsPipeline(t *testing.T, data string) (*Pipeline, *bytes.Buffer) {
	t.Helper()
	eng, err := engine.New(dense.Params{Weights: make([]float32, model.EmbeddingDim)}, 2)
	require.NoError(t, err)
	var buf bytes.Buffer
	return New(&memorySource{data: data}, eng, report.NewJSON(&buf, false)), &buf
}

func TestRunEndToEnd(t *testing.T) {
	p, buf := zeroParamsPipeline(t, corpus(20))
	defer p.Close()

	summary, err := p.Run(context.Background(), source.Config{}, rand.New(rand.NewSource(1)), 1)
	require.NoError(t, err)

	assert.Equal(t, 20, summary.Loaded)
	assert.Equal(t, 14, summary.Train.Samples)
	assert.Equal(t, 6, summary.Test.Samples)
	// Zero params predict Negative everywhere; accuracy is each
	// split's negative fraction, always within [0, 1].
	assert.GreaterOrEqual(t, summary.Train.Accuracy, 0.0)
	assert.LessOrEqual(t, summary.Train.Accuracy, 1.0)
	assert.NotEmpty(t, buf.Bytes())
}

func TestRunSeededDeterminism(t *testing.T) {
	run := func() report.Summary {
		p, _ := zeroParamsPipeline(t, corpus(30))
		defer p.Close()
		s, err := p.Run(context.Background(), source.Config{}, rand.New(rand.NewSource(99)), 99)
		require.NoError(t, err)
		s.Elapsed = 0
		s.Train.Stages = engine.StageTimings{}
		s.Test.Stages = engine.StageTimings{}
		return s
	}
	assert.Equal(t, run(), run())
}

func TestRunEmptyDataset(t *testing.T) {
	p, _ := zeroParamsPipeline(t, "")
	defer p.Close()

	_, err := p.Run(context.Background(), source.Config{}, rand.New(rand.NewSource(1)), 1)
	assert.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

func TestRunSingleRecordEmptySplit(t *testing.T) {
	// One record splits 0/1: the training subset is empty and the run
	// must fail rather than evaluate it.
	p, _ := zeroParamsPipeline(t, "4,a,b,c,only one\n")
	defer p.Close()

	_, err := p.Run(context.Background(), source.Config{}, rand.New(rand.NewSource(1)), 1)
	assert.ErrorIs(t, err, ErrEmptySplit)
}

func TestRunCancelledContext(t *testing.T) {
	p, _ := zeroParamsPipeline(t, corpus(10))
	defer p.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := p.Run(ctx, source.Config{}, rand.New(rand.NewSource(1)), 1)
	assert.ErrorIs(t, err, context.Canceled)
}
