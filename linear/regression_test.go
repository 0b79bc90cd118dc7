package linear

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

func TestLinearRegressionRecoversKnownCoefficients(t *testing.T) {
	// y = 3 + 2*x1 - x2, exactly.
	X := mat.NewDense(5, 2, []float64{
		1, 1,
		2, 0,
		3, 2,
		4, 1,
		0, 3,
	})
	y := mat.NewDense(5, 1, []float64{4, 7, 7, 10, 0})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	if math.Abs(lr.GetIntercept()-3) > 1e-8 {
		t.Errorf("intercept = %v, want 3", lr.GetIntercept())
	}
	w := lr.GetWeights()
	if math.Abs(w[0]-2) > 1e-8 || math.Abs(w[1]+1) > 1e-8 {
		t.Errorf("weights = %v, want [2 -1]", w)
	}
}

func TestLinearRegressionRoundTripPrediction(t *testing.T) {
	// Fitting and predicting on the same noiseless data reproduces the
	// targets within residual error.
	X := mat.NewDense(4, 1, []float64{1, 2, 3, 4})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	pred, err := lr.Predict(X)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if math.Abs(pred.At(i, 0)-y.At(i, 0)) > 1e-8 {
			t.Errorf("pred[%d] = %v, want %v", i, pred.At(i, 0), y.At(i, 0))
		}
	}

	score, err := lr.Score(X, y)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(score-1) > 1e-10 {
		t.Errorf("R² = %v, want 1", score)
	}
}

func TestLinearRegressionPredictShapeMismatch(t *testing.T) {
	lr := NewLinearRegression()
	X := mat.NewDense(3, 2, []float64{1, 2, 3, 4, 5, 6})
	y := mat.NewDense(3, 1, []float64{1, 2, 3})
	if err := lr.Fit(X, y); err != nil {
		t.Fatal(err)
	}

	_, err := lr.Predict(mat.NewDense(3, 3, nil))
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("Predict() error = %v, want DimensionError", err)
	}
	if de.Expected != 2 || de.Got != 3 {
		t.Errorf("DimensionError Expected/Got = %d/%d, want 2/3", de.Expected, de.Got)
	}
}

func TestLinearRegressionNotFitted(t *testing.T) {
	lr := NewLinearRegression()
	_, err := lr.Predict(mat.NewDense(1, 1, nil))
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("Predict() error = %v, want NotFittedError", err)
	}
}

func TestLinearRegressionRankDeficientDesign(t *testing.T) {
	// Duplicate columns make the design matrix rank deficient. The
	// minimum-norm solve must still fit and predict the targets exactly.
	X := mat.NewDense(4, 2, []float64{
		1, 1,
		2, 2,
		3, 3,
		4, 4,
	})
	y := mat.NewDense(4, 1, []float64{2, 4, 6, 8})

	lr := NewLinearRegression()
	if err := lr.Fit(X, y); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	pred, err := lr.Predict(X)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if math.Abs(pred.At(i, 0)-y.At(i, 0)) > 1e-8 {
			t.Errorf("pred[%d] = %v, want %v", i, pred.At(i, 0), y.At(i, 0))
		}
	}

	// Minimum-norm splits the weight evenly between the twin columns.
	w := lr.GetWeights()
	if math.Abs(w[0]-w[1]) > 1e-8 {
		t.Errorf("weights = %v, want equal for duplicated columns", w)
	}
}

func TestLinearRegressionRowMismatch(t *testing.T) {
	lr := NewLinearRegression()
	err := lr.Fit(mat.NewDense(3, 1, nil), mat.NewDense(2, 1, nil))
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Errorf("Fit() error = %v, want DimensionError", err)
	}
}
