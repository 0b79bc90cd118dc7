// Package model_selection provides data partitioning and cross-validation:
// a seeded hold-out split, a k-fold splitter and refit-per-fold scoring.
// Randomness is always an explicit seed parameter, never ambient state.
package model_selection

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// TrainTestSplit partitions (X, y) into a fit set and a held-out validation
// set. Rows are shuffled with the given seed, so the same seed always
// produces the same partition, and X/y row correspondence is preserved.
func TrainTestSplit(X, y mat.Matrix, testSize float64, seed int64) (XTrain, XTest, yTrain, yTest *mat.Dense, err error) {
	if testSize <= 0 || testSize >= 1 {
		return nil, nil, nil, nil, errors.NewValidationError("testSize", "must be in (0, 1)", testSize)
	}

	n, _ := X.Dims()
	ny, cy := y.Dims()
	if n == 0 {
		return nil, nil, nil, nil, errors.NewModelError("TrainTestSplit", "empty data", errors.ErrEmptyData)
	}
	if ny != n {
		return nil, nil, nil, nil, errors.NewDimensionError("TrainTestSplit", n, ny, 0)
	}
	if cy != 1 {
		return nil, nil, nil, nil, errors.NewValueError("TrainTestSplit", "y must be a column vector")
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	r := rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
	r.Shuffle(n, func(i, j int) {
		indices[i], indices[j] = indices[j], indices[i]
	})

	nTest := int(float64(n) * testSize)
	if nTest == 0 || nTest == n {
		return nil, nil, nil, nil, errors.NewValidationError("testSize", "split leaves an empty partition", testSize)
	}

	XTest = takeRows(X, indices[:nTest])
	yTest = takeRows(y, indices[:nTest])
	XTrain = takeRows(X, indices[nTest:])
	yTrain = takeRows(y, indices[nTest:])
	return XTrain, XTest, yTrain, yTest, nil
}

// takeRows copies the given rows of m, in order, into a new matrix.
func takeRows(m mat.Matrix, indices []int) *mat.Dense {
	_, c := m.Dims()
	out := mat.NewDense(len(indices), c, nil)
	for i, idx := range indices {
		for j := 0; j < c; j++ {
			out.Set(i, j, m.At(idx, j))
		}
	}
	return out
}
