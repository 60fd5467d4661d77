package model

// Pipeline constants. These are behavioral constants of the frozen
// model, not tunables: the decision threshold in particular is 0.6 by
// contract, not 0.5.
const (
	// MaxTextLen is the bounded per-record text capacity, including the
	// slot reserved for a terminator. Text is truncated to MaxTextLen-1
	// bytes on load.
	MaxTextLen = 1024

	// EmbeddingDim is the width of every embedding row and the length
	// of the weight vector.
	EmbeddingDim = 1024

	// TrainRatio is the fraction of the dataset assigned to the
	// training split (integer truncation).
	TrainRatio = 0.7

	// DecisionThreshold separates predicted classes after activation:
	// activated scores strictly above it predict Positive.
	DecisionThreshold = 0.6
)

// Label is the ground-truth class of a record. The source corpus
// encodes negative as 0 and positive as 4.
type Label int

const (
	Negative Label = 0
	Positive Label = 4
)

// Record is a single labeled text sample.
// Invariant: len(Text) <= MaxTextLen-1, enforced at load time.
type Record struct {
	Label Label
	Text  string
}

// Split is the train/test partition of a dataset. It owns copies of
// the records; the pre-split dataset may be discarded.
type Split struct {
	Train []Record
	Test  []Record
}
