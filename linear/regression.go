// Package linear implements ordinary least squares regression.
package linear

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/core/parallel"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// LinearRegression is an ordinary least squares model fitted via a
// singular value decomposition of the design matrix. The fitted
// coefficient vector and intercept are replaced wholesale by each Fit;
// Predict only accepts matrices with the column count established during
// fitting.
type LinearRegression struct {
	model.BaseEstimator
	Weights   *mat.VecDense // coefficient vector
	Intercept float64
	NFeatures int
}

// NewLinearRegression creates an unfitted model.
func NewLinearRegression() *LinearRegression {
	return &LinearRegression{}
}

// Fit computes the minimum-norm least squares solution of Xw = y with an
// intercept column prepended to X. The SVD-based solve tolerates
// rank-deficient designs, which arise whenever one-hot indicator columns
// are carried through an interaction expansion.
func (lr *LinearRegression) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("LinearRegression.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("LinearRegression.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("LinearRegression.Fit", "y must be a column vector")
	}

	lr.NFeatures = c

	// X with a leading column of ones for the intercept.
	XWithIntercept := mat.NewDense(r, c+1, nil)

	const parallelThreshold = 1000
	parallel.ParallelizeWithThreshold(r, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			XWithIntercept.Set(i, 0, 1.0)
			for j := 0; j < c; j++ {
				XWithIntercept.Set(i, j+1, X.At(i, j))
			}
		}
	})

	var svd mat.SVD
	if ok := svd.Factorize(XWithIntercept, mat.SVDThin); !ok {
		return errors.NewModelError("LinearRegression.Fit", "SVD failed to converge", errors.ErrSingularMatrix)
	}

	// Cutoff for treating a singular value as zero, relative to the
	// largest one. Duplicated columns land well below this.
	const rcond = 1e-12
	rank := svd.Rank(rcond)
	if rank == 0 {
		return errors.NewModelError("LinearRegression.Fit", "zero-rank design matrix", errors.ErrSingularMatrix)
	}

	var coefficients mat.Dense
	svd.SolveTo(&coefficients, y, rank)

	lr.Intercept = coefficients.At(0, 0)
	lr.Weights = mat.NewVecDense(c, nil)
	for i := 0; i < c; i++ {
		lr.Weights.SetVec(i, coefficients.At(i+1, 0))
	}

	lr.SetFitted()
	return nil
}

// Predict returns ŷ = Xw + b as an n×1 matrix.
func (lr *LinearRegression) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !lr.IsFitted() {
		return nil, errors.NewNotFittedError("LinearRegression", "Predict")
	}

	r, c := X.Dims()
	if c != lr.NFeatures {
		return nil, errors.NewDimensionError("LinearRegression.Predict", lr.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		pred := lr.Intercept
		for j := 0; j < c; j++ {
			pred += X.At(i, j) * lr.Weights.AtVec(j)
		}
		predictions.Set(i, 0, pred)
	}
	return predictions, nil
}

// GetWeights returns a copy of the fitted coefficients.
func (lr *LinearRegression) GetWeights() []float64 {
	if lr.Weights == nil {
		return nil
	}
	weights := make([]float64, lr.Weights.Len())
	for i := 0; i < lr.Weights.Len(); i++ {
		weights[i] = lr.Weights.AtVec(i)
	}
	return weights
}

// GetIntercept returns the fitted intercept.
func (lr *LinearRegression) GetIntercept() float64 {
	if !lr.IsFitted() {
		return 0
	}
	return lr.Intercept
}

// Score returns the coefficient of determination R² on (X, y).
func (lr *LinearRegression) Score(X, y mat.Matrix) (float64, error) {
	if !lr.IsFitted() {
		return 0, errors.NewNotFittedError("LinearRegression", "Score")
	}

	yPred, err := lr.Predict(X)
	if err != nil {
		return 0, err
	}

	r, _ := y.Dims()
	var yMean float64
	for i := 0; i < r; i++ {
		yMean += y.At(i, 0)
	}
	yMean /= float64(r)

	var tss, rss float64
	for i := 0; i < r; i++ {
		yTrue := y.At(i, 0)
		yPredVal := yPred.At(i, 0)
		tss += (yTrue - yMean) * (yTrue - yMean)
		rss += (yTrue - yPredVal) * (yTrue - yPredVal)
	}

	if tss == 0 {
		return 0, errors.Newf("total sum of squares is zero")
	}
	return 1 - rss/tss, nil
}
