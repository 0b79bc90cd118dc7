package errors

import (
	"strings"
	"testing"
)

func TestTypedErrorsRoundTripThroughAs(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(t *testing.T, err error)
	}{
		{
			name: "FileError",
			err:  NewFileError("Load", "/tmp/missing.csv", New("no such file")),
			check: func(t *testing.T, err error) {
				var fe *FileError
				if !As(err, &fe) {
					t.Fatalf("As() failed to find FileError in %v", err)
				}
				if fe.Path != "/tmp/missing.csv" {
					t.Errorf("Path = %q, want %q", fe.Path, "/tmp/missing.csv")
				}
			},
		},
		{
			name: "ParseError",
			err:  NewParseError("train.csv", 17, "wrong number of fields"),
			check: func(t *testing.T, err error) {
				var pe *ParseError
				if !As(err, &pe) {
					t.Fatalf("As() failed to find ParseError in %v", err)
				}
				if pe.Line != 17 {
					t.Errorf("Line = %d, want 17", pe.Line)
				}
			},
		},
		{
			name: "ImputationError",
			err:  NewImputationError("LotFrontage", "no observed values in training data"),
			check: func(t *testing.T, err error) {
				var ie *ImputationError
				if !As(err, &ie) {
					t.Fatalf("As() failed to find ImputationError in %v", err)
				}
				if ie.Column != "LotFrontage" {
					t.Errorf("Column = %q, want %q", ie.Column, "LotFrontage")
				}
			},
		},
		{
			name: "DimensionError",
			err:  NewDimensionError("LinearRegression.Predict", 10, 8, 1),
			check: func(t *testing.T, err error) {
				var de *DimensionError
				if !As(err, &de) {
					t.Fatalf("As() failed to find DimensionError in %v", err)
				}
				if de.Expected != 10 || de.Got != 8 {
					t.Errorf("Expected/Got = %d/%d, want 10/8", de.Expected, de.Got)
				}
			},
		},
		{
			name: "NotFittedError",
			err:  NewNotFittedError("StandardScaler", "Transform"),
			check: func(t *testing.T, err error) {
				var ne *NotFittedError
				if !As(err, &ne) {
					t.Fatalf("As() failed to find NotFittedError in %v", err)
				}
				if !strings.Contains(ne.Error(), "Call Fit()") {
					t.Errorf("message %q should mention Fit()", ne.Error())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.err)
		})
	}
}

func TestModelErrorUnwrapsSingularMatrix(t *testing.T) {
	err := NewModelError("LinearRegression.Fit", "singular matrix", ErrSingularMatrix)
	if !Is(err, ErrSingularMatrix) {
		t.Errorf("Is(err, ErrSingularMatrix) = false, want true")
	}
}

func TestWarnInvokesConfiguredHandler(t *testing.T) {
	var captured error
	SetWarningHandler(func(w error) { captured = w })
	defer SetWarningHandler(nil)

	w := NewUnseenCategoryWarning("Zoning", "C", 3)
	Warn(w)

	if captured == nil {
		t.Fatal("warning handler was not invoked")
	}
	if !strings.Contains(captured.Error(), "Zoning") {
		t.Errorf("warning %q should name the column", captured.Error())
	}
}
