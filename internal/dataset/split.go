package dataset

import (
	"math/rand"

	"github.com/crimson-sun/sift/internal/model"
)

// Partition shuffles records with the supplied source and splits them
// 70/30 into train and test. The shuffle is a uniform permutation; a
// fixed-seed rng reproduces the same split. The returned Split owns
// copies, so the input slice may be discarded or reused.
//
// The rng must not be shared with concurrent users while Partition
// runs: the shuffle mutates the slice in place.
func Partition(records []model.Record, rng *rand.Rand) (model.Split, error) {
	if len(records) == 0 {
		return model.Split{}, ErrEmptyDataset
	}

	rng.Shuffle(len(records), func(i, j int) {
		records[i], records[j] = records[j], records[i]
	})

	trainSize := int(float64(len(records)) * model.TrainRatio)

	train := make([]model.Record, trainSize)
	copy(train, records[:trainSize])
	test := make([]model.Record, len(records)-trainSize)
	copy(test, records[trainSize:])

	return model.Split{Train: train, Test: test}, nil
}
