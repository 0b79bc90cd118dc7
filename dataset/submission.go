package dataset

import (
	"encoding/csv"
	"os"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// WriteSubmission writes the prediction output: a header row "Id,SalePrice"
// followed by one row per test record, in the same order as the input test
// table.
func WriteSubmission(path string, ids []string, predictions mat.Matrix) error {
	r, c := predictions.Dims()
	if c != 1 {
		return errors.NewValueError("dataset.WriteSubmission", "predictions must be a column vector (n×1 matrix)")
	}
	if r != len(ids) {
		return errors.NewDimensionError("dataset.WriteSubmission", len(ids), r, 0)
	}

	file, err := os.Create(path)
	if err != nil {
		return errors.NewFileError("dataset.WriteSubmission", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{"Id", "SalePrice"}); err != nil {
		return errors.NewFileError("dataset.WriteSubmission", path, err)
	}
	for i, id := range ids {
		value := strconv.FormatFloat(predictions.At(i, 0), 'f', -1, 64)
		if err := writer.Write([]string{id, value}); err != nil {
			return errors.NewFileError("dataset.WriteSubmission", path, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.NewFileError("dataset.WriteSubmission", path, err)
	}
	return nil
}
