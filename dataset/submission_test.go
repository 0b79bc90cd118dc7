package dataset

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

func TestWriteSubmissionRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission.csv")
	ids := []string{"1461", "1462", "1463"}
	preds := mat.NewDense(3, 1, []float64{169000.5, 187724, 183000})

	if err := WriteSubmission(path, ids, preds); err != nil {
		t.Fatalf("WriteSubmission() error = %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		t.Fatal(err)
	}

	if len(records) != 4 {
		t.Fatalf("got %d records, want 4 (header + 3 rows)", len(records))
	}
	if records[0][0] != "Id" || records[0][1] != "SalePrice" {
		t.Errorf("header = %v, want [Id SalePrice]", records[0])
	}
	if records[1][0] != "1461" || records[1][1] != "169000.5" {
		t.Errorf("first row = %v, want [1461 169000.5]", records[1])
	}
	if records[3][0] != "1463" {
		t.Errorf("rows are out of order: %v", records[3])
	}
}

func TestWriteSubmissionRowCountMismatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission.csv")
	preds := mat.NewDense(2, 1, []float64{1, 2})

	err := WriteSubmission(path, []string{"1"}, preds)
	var de *errors.DimensionError
	if !errors.As(err, &de) {
		t.Fatalf("WriteSubmission() error = %v, want DimensionError", err)
	}
}

func TestWriteSubmissionRejectsWideMatrix(t *testing.T) {
	path := filepath.Join(t.TempDir(), "submission.csv")
	preds := mat.NewDense(1, 2, []float64{1, 2})

	err := WriteSubmission(path, []string{"1"}, preds)
	var ve *errors.ValueError
	if !errors.As(err, &ve) {
		t.Fatalf("WriteSubmission() error = %v, want ValueError", err)
	}
}
