package model_selection

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/linear"
)

func linearData(n int) (*mat.Dense, *mat.Dense) {
	// y = 5 + 2*x1 + 3*x2, noiseless.
	X := mat.NewDense(n, 2, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		x1 := float64(i)
		x2 := float64((i*7)%13) / 3.0
		X.Set(i, 0, x1)
		X.Set(i, 1, x2)
		y.Set(i, 0, 5+2*x1+3*x2)
	}
	return X, y
}

func newRegressor() model.Regressor {
	return linear.NewLinearRegression()
}

func TestCrossValidateMAEOnNoiselessLinearData(t *testing.T) {
	X, y := linearData(50)
	kf := NewKFold(5, true, 42)

	result, err := CrossValidateMAE(newRegressor, X, y, kf)
	if err != nil {
		t.Fatalf("CrossValidateMAE() error = %v", err)
	}

	if len(result.Scores) != 5 {
		t.Fatalf("got %d fold scores, want 5", len(result.Scores))
	}
	// OLS on noiseless linear data should nail every fold.
	if result.Mean() > 1e-6 {
		t.Errorf("mean MAE = %v, want ≈0 on noiseless data", result.Mean())
	}
}

func TestCrossValidateDeterministicForSeed(t *testing.T) {
	X, y := linearData(40)

	run := func() []float64 {
		result, err := CrossValidateMAE(newRegressor, X, y, NewKFold(5, true, 42))
		if err != nil {
			t.Fatal(err)
		}
		return result.Scores
	}

	first := run()
	second := run()
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("fold %d score differs across runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestCrossValidateRejectsMoreFoldsThanSamples(t *testing.T) {
	X, y := linearData(3)
	if _, err := CrossValidateMAE(newRegressor, X, y, NewKFold(5, false, 0)); err == nil {
		t.Error("expected error for nSplits > nSamples")
	}
}

func TestCVResultMeanAndStd(t *testing.T) {
	result := &CVResult{Scores: []float64{2, 4, 4, 4, 6}}

	if got := result.Mean(); got != 4 {
		t.Errorf("Mean() = %v, want 4", got)
	}
	// Sample std of {2,4,4,4,6} is sqrt(8/4) = sqrt(2).
	if got := result.Std(); math.Abs(got-math.Sqrt2) > 1e-12 {
		t.Errorf("Std() = %v, want √2", got)
	}

	empty := &CVResult{}
	if empty.Mean() != 0 || empty.Std() != 0 {
		t.Error("empty result should report zero mean and std")
	}
}
