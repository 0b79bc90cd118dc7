package preprocessing

import (
	"math"
	"reflect"
	"testing"

	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

func newTable(columns []string, rows [][]string) *dataset.Table {
	return &dataset.Table{Path: "test.csv", Columns: columns, Rows: rows}
}

func TestOneHotEncoderSchemaOrder(t *testing.T) {
	train := newTable(
		[]string{"Area", "Zoning", "Street"},
		[][]string{
			{"1000", "B", "Pave"},
			{"1500", "A", "Grvl"},
			{"1200", "A", "Pave"},
		},
	)

	enc := NewOneHotEncoder()
	if err := enc.Fit(train); err != nil {
		t.Fatalf("Fit() error = %v", err)
	}

	// Numeric columns first in table order, then sorted categories per
	// categorical column.
	want := []string{"Area", "Zoning_A", "Zoning_B", "Street_Grvl", "Street_Pave"}
	if got := enc.FeatureNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("FeatureNames() = %v, want %v", got, want)
	}
}

func TestOneHotEncoderTrainTestAlignment(t *testing.T) {
	train := newTable(
		[]string{"Area", "Zoning"},
		[][]string{
			{"1000", "A"},
			{"1500", "B"},
		},
	)
	// Test set: "B" absent (train-only category), "C" unseen.
	test := newTable(
		[]string{"Area", "Zoning"},
		[][]string{
			{"900", "A"},
			{"1100", "C"},
		},
	)

	var warned error
	errors.SetWarningHandler(func(w error) { warned = w })
	defer errors.SetWarningHandler(nil)

	enc := NewOneHotEncoder()
	XTrain, err := enc.FitTransform(train)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}
	XTest, err := enc.Transform(test)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}

	_, trainCols := XTrain.Dims()
	_, testCols := XTest.Dims()
	if trainCols != testCols {
		t.Fatalf("column mismatch: train %d, test %d", trainCols, testCols)
	}

	// Row 0: Zoning=A → [900, 1, 0]
	if XTest.At(0, 1) != 1 || XTest.At(0, 2) != 0 {
		t.Errorf("test row 0 indicators = [%v %v], want [1 0]", XTest.At(0, 1), XTest.At(0, 2))
	}
	// Row 1: Zoning=C unseen → all-zero indicators.
	if XTest.At(1, 1) != 0 || XTest.At(1, 2) != 0 {
		t.Errorf("unseen category should encode to zeros, got [%v %v]", XTest.At(1, 1), XTest.At(1, 2))
	}
	// Train-only category B is an all-zero test column but still present.
	if XTest.At(0, 2) != 0 && XTest.At(1, 2) != 0 {
		t.Error("train-only category column should be all zeros in test")
	}

	var ucw *errors.UnseenCategoryWarning
	if !errors.As(warned, &ucw) {
		t.Fatalf("expected UnseenCategoryWarning, got %v", warned)
	}
	if ucw.Column != "Zoning" || ucw.Value != "C" {
		t.Errorf("warning = %v/%v, want Zoning/C", ucw.Column, ucw.Value)
	}
}

func TestOneHotEncoderMissingCells(t *testing.T) {
	train := newTable(
		[]string{"Area", "Zoning"},
		[][]string{
			{"1000", "A"},
			{"NA", "B"},
			{"1200", "NA"},
		},
	)

	enc := NewOneHotEncoder()
	X, err := enc.FitTransform(train)
	if err != nil {
		t.Fatalf("FitTransform() error = %v", err)
	}

	if !math.IsNaN(X.At(1, 0)) {
		t.Errorf("missing numeric cell = %v, want NaN", X.At(1, 0))
	}
	// Missing categorical cell: all-zero indicator row, no "NA" category.
	want := []string{"Area", "Zoning_A", "Zoning_B"}
	if got := enc.FeatureNames(); !reflect.DeepEqual(got, want) {
		t.Fatalf("FeatureNames() = %v, want %v", got, want)
	}
	if X.At(2, 1) != 0 || X.At(2, 2) != 0 {
		t.Errorf("missing categorical row indicators = [%v %v], want [0 0]", X.At(2, 1), X.At(2, 2))
	}
}

func TestOneHotEncoderIgnoresExtraColumns(t *testing.T) {
	train := newTable([]string{"Area"}, [][]string{{"1000"}})
	test := newTable([]string{"Area", "Extra"}, [][]string{{"900", "x"}})

	enc := NewOneHotEncoder()
	if _, err := enc.FitTransform(train); err != nil {
		t.Fatal(err)
	}
	X, err := enc.Transform(test)
	if err != nil {
		t.Fatalf("Transform() error = %v", err)
	}
	if _, c := X.Dims(); c != 1 {
		t.Errorf("width = %d, want 1 (extra column ignored)", c)
	}
}

func TestOneHotEncoderMissingFittedColumn(t *testing.T) {
	train := newTable([]string{"Area", "Zoning"}, [][]string{{"1000", "A"}})
	test := newTable([]string{"Area"}, [][]string{{"900"}})

	enc := NewOneHotEncoder()
	if err := enc.Fit(train); err != nil {
		t.Fatal(err)
	}
	if _, err := enc.Transform(test); err == nil {
		t.Error("Transform() should fail when a fitted column is absent")
	}
}

func TestOneHotEncoderNotFitted(t *testing.T) {
	enc := NewOneHotEncoder()
	_, err := enc.Transform(newTable([]string{"Area"}, [][]string{{"1"}}))
	var nfe *errors.NotFittedError
	if !errors.As(err, &nfe) {
		t.Errorf("Transform() error = %v, want NotFittedError", err)
	}
}
