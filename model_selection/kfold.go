package model_selection

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"
)

// Fold holds the row indices of one cross-validation fold.
type Fold struct {
	TrainIndices []int
	TestIndices  []int
}

// KFold splits rows into k consecutive folds (after optional seeded
// shuffling). Each fold is used once as a test set while the remaining
// folds form the training set.
type KFold struct {
	NSplits    int
	Shuffle    bool
	RandomSeed int
}

// NewKFold creates a k-fold splitter. Fewer than 2 splits defaults to 5.
func NewKFold(nSplits int, shuffle bool, randomSeed int) *KFold {
	if nSplits < 2 {
		nSplits = 5
	}
	return &KFold{
		NSplits:    nSplits,
		Shuffle:    shuffle,
		RandomSeed: randomSeed,
	}
}

// Split generates the train/test index pairs for each fold.
func (kf *KFold) Split(X mat.Matrix) []Fold {
	nSamples, _ := X.Dims()

	indices := make([]int, nSamples)
	for i := range indices {
		indices[i] = i
	}
	if kf.Shuffle {
		r := rand.New(rand.NewPCG(uint64(kf.RandomSeed), uint64(kf.RandomSeed)))
		r.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	folds := make([]Fold, kf.NSplits)
	foldSize := nSamples / kf.NSplits
	remainder := nSamples % kf.NSplits

	current := 0
	for i := 0; i < kf.NSplits; i++ {
		testSize := foldSize
		if i < remainder {
			testSize++
		}

		testIndices := make([]int, testSize)
		copy(testIndices, indices[current:current+testSize])

		inTest := make(map[int]bool, testSize)
		for _, idx := range testIndices {
			inTest[idx] = true
		}
		trainIndices := make([]int, 0, nSamples-testSize)
		for _, idx := range indices {
			if !inTest[idx] {
				trainIndices = append(trainIndices, idx)
			}
		}

		folds[i] = Fold{TrainIndices: trainIndices, TestIndices: testIndices}
		current += testSize
	}

	return folds
}
