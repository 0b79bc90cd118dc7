package preprocessing

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// PolynomialFeatures expands a feature matrix with degree-2 terms: the
// original features, their squares and all pairwise products. No bias
// column is emitted; the regressor fits its own intercept.
//
// Term ordering is fixed by the fitted input width: the d originals first,
// then products x_j*x_k for j <= k in row-major upper-triangular order, so
// train and test expansions always align.
type PolynomialFeatures struct {
	model.BaseEstimator

	// Degree of the expansion. Only 1 (identity) and 2 are supported.
	Degree int

	nInput int
}

// NewPolynomialFeatures creates an expander of the given degree.
func NewPolynomialFeatures(degree int) *PolynomialFeatures {
	return &PolynomialFeatures{Degree: degree}
}

// Fit records the input width that every later Transform must match.
func (p *PolynomialFeatures) Fit(X mat.Matrix) error {
	if p.Degree != 1 && p.Degree != 2 {
		return errors.NewValidationError("degree", "only degree 1 or 2 is supported", p.Degree)
	}

	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("PolynomialFeatures.Fit", "empty data", errors.ErrEmptyData)
	}

	p.nInput = c
	p.SetFitted()
	return nil
}

// Transform expands X into the fitted term ordering.
func (p *PolynomialFeatures) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("PolynomialFeatures", "Transform")
	}

	r, c := X.Dims()
	if c != p.nInput {
		return nil, errors.NewDimensionError("PolynomialFeatures.Transform", p.nInput, c, 1)
	}

	out := mat.NewDense(r, p.NumOutputFeatures(), nil)
	for i := 0; i < r; i++ {
		idx := 0
		for j := 0; j < c; j++ {
			out.Set(i, idx, X.At(i, j))
			idx++
		}
		if p.Degree == 2 {
			for j := 0; j < c; j++ {
				vj := X.At(i, j)
				for k := j; k < c; k++ {
					out.Set(i, idx, vj*X.At(i, k))
					idx++
				}
			}
		}
	}

	return out, nil
}

// FitTransform fits on X and returns the expanded X.
func (p *PolynomialFeatures) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := p.Fit(X); err != nil {
		return nil, err
	}
	return p.Transform(X)
}

// NumOutputFeatures returns the expanded width for the fitted input width.
func (p *PolynomialFeatures) NumOutputFeatures() int {
	if p.Degree == 1 {
		return p.nInput
	}
	return p.nInput + p.nInput*(p.nInput+1)/2
}

// GetParams returns the expander's hyperparameters.
func (p *PolynomialFeatures) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"degree":       p.Degree,
		"include_bias": false,
	}
}

// String returns a printable description of the expander.
func (p *PolynomialFeatures) String() string {
	if !p.IsFitted() {
		return fmt.Sprintf("PolynomialFeatures(degree=%d)", p.Degree)
	}
	return fmt.Sprintf("PolynomialFeatures(degree=%d, n_input=%d, n_output=%d)",
		p.Degree, p.nInput, p.NumOutputFeatures())
}
