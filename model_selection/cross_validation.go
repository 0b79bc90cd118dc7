package model_selection

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/core/parallel"
	"github.com/YuminosukeSato/amesgo/metrics"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// ScoreFunc evaluates predictions against true targets.
type ScoreFunc func(yTrue, yPred *mat.VecDense) (float64, error)

// CVResult holds per-fold scores from a cross-validation run.
type CVResult struct {
	Scores []float64
}

// Mean returns the mean fold score.
func (r *CVResult) Mean() float64 {
	if len(r.Scores) == 0 {
		return 0
	}
	sum := 0.0
	for _, s := range r.Scores {
		sum += s
	}
	return sum / float64(len(r.Scores))
}

// Std returns the sample standard deviation of the fold scores.
func (r *CVResult) Std() float64 {
	if len(r.Scores) <= 1 {
		return 0
	}
	mean := r.Mean()
	sumSq := 0.0
	for _, s := range r.Scores {
		diff := s - mean
		sumSq += diff * diff
	}
	return math.Sqrt(sumSq / float64(len(r.Scores)-1))
}

// CrossValidate fits a fresh estimator per fold and scores its predictions
// on the held-out fold. newEstimator must return an unfitted estimator;
// reusing one instance across folds would leak fit state between them.
//
// Folds are evaluated in parallel; the result is identical to sequential
// evaluation because each fold owns its estimator and submatrices.
func CrossValidate(newEstimator func() model.Regressor, X, y mat.Matrix, kf *KFold, score ScoreFunc) (*CVResult, error) {
	n, _ := X.Dims()
	ny, cy := y.Dims()
	if n == 0 {
		return nil, errors.NewModelError("CrossValidate", "empty data", errors.ErrEmptyData)
	}
	if ny != n {
		return nil, errors.NewDimensionError("CrossValidate", n, ny, 0)
	}
	if cy != 1 {
		return nil, errors.NewValueError("CrossValidate", "y must be a column vector")
	}
	if n < kf.NSplits {
		return nil, errors.NewValidationError("nSplits", "more folds than samples", kf.NSplits)
	}

	folds := kf.Split(X)
	scores := make([]float64, len(folds))
	foldErrs := make([]error, len(folds))

	parallel.Parallelize(len(folds), func(start, end int) {
		for f := start; f < end; f++ {
			scores[f], foldErrs[f] = evaluateFold(newEstimator(), X, y, folds[f], score)
		}
	})

	for _, err := range foldErrs {
		if err != nil {
			return nil, err
		}
	}
	return &CVResult{Scores: scores}, nil
}

// CrossValidateMAE cross-validates with mean absolute error scoring.
func CrossValidateMAE(newEstimator func() model.Regressor, X, y mat.Matrix, kf *KFold) (*CVResult, error) {
	return CrossValidate(newEstimator, X, y, kf, metrics.MAE)
}

func evaluateFold(estimator model.Regressor, X, y mat.Matrix, fold Fold, score ScoreFunc) (float64, error) {
	XTrain := takeRows(X, fold.TrainIndices)
	yTrain := takeRows(y, fold.TrainIndices)
	XTest := takeRows(X, fold.TestIndices)
	yTest := takeRows(y, fold.TestIndices)

	if err := estimator.Fit(XTrain, yTrain); err != nil {
		return 0, errors.Wrap(err, "cross-validation fold fit failed")
	}
	pred, err := estimator.Predict(XTest)
	if err != nil {
		return 0, errors.Wrap(err, "cross-validation fold predict failed")
	}

	yTrueVec := columnToVec(yTest)
	yPredVec := mat.NewVecDense(len(fold.TestIndices), nil)
	for i := range fold.TestIndices {
		yPredVec.SetVec(i, pred.At(i, 0))
	}
	return score(yTrueVec, yPredVec)
}

func columnToVec(m *mat.Dense) *mat.VecDense {
	r, _ := m.Dims()
	vec := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		vec.SetVec(i, m.At(i, 0))
	}
	return vec
}
