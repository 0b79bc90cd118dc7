// Package dataset handles the tabular inputs and outputs of the pipeline:
// loading delimited files into in-memory tables and writing the prediction
// submission.
package dataset

import (
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// Table is an in-memory rectangular table of raw string cells with a header.
// Cells are kept as strings until the encoder decides per column whether
// they are numeric or categorical.
type Table struct {
	// Path is the file the table was loaded from, for error messages.
	Path string

	// Columns holds the header names in file order.
	Columns []string

	// Rows holds the cell values, one slice per record, all the same width
	// as Columns.
	Rows [][]string
}

// IsMissing reports whether a raw cell value represents a missing entry.
// The Ames dataset uses "NA"; empty cells and "NaN" are treated the same.
func IsMissing(v string) bool {
	return v == "" || v == "NA" || v == "NaN"
}

// NumRows returns the number of records.
func (t *Table) NumRows() int {
	return len(t.Rows)
}

// NumCols returns the number of columns.
func (t *Table) NumCols() int {
	return len(t.Columns)
}

// ColumnIndex returns the position of a named column.
func (t *Table) ColumnIndex(name string) (int, bool) {
	for i, c := range t.Columns {
		if c == name {
			return i, true
		}
	}
	return 0, false
}

// Column returns the raw values of a named column in row order.
func (t *Table) Column(name string) ([]string, error) {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return nil, errors.NewValueError("Table.Column", "no column named "+strconv.Quote(name))
	}
	values := make([]string, len(t.Rows))
	for i, row := range t.Rows {
		values[i] = row[idx]
	}
	return values, nil
}

// FloatColumn parses a named column as float64 values. Missing or
// non-numeric cells are a ParseError; use it for columns that must be fully
// populated, such as the target.
func (t *Table) FloatColumn(name string) (*mat.VecDense, error) {
	raw, err := t.Column(name)
	if err != nil {
		return nil, err
	}
	vec := mat.NewVecDense(len(raw), nil)
	for i, v := range raw {
		if IsMissing(v) {
			return nil, errors.NewParseError(t.Path, i+2, "missing value in column "+strconv.Quote(name))
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return nil, errors.NewParseError(t.Path, i+2, "non-numeric value "+strconv.Quote(v)+" in column "+strconv.Quote(name))
		}
		vec.SetVec(i, f)
	}
	return vec, nil
}

// Drop removes a named column from the table in place.
func (t *Table) Drop(name string) error {
	idx, ok := t.ColumnIndex(name)
	if !ok {
		return errors.NewValueError("Table.Drop", "no column named "+strconv.Quote(name))
	}
	t.Columns = append(t.Columns[:idx], t.Columns[idx+1:]...)
	for i, row := range t.Rows {
		t.Rows[i] = append(row[:idx], row[idx+1:]...)
	}
	return nil
}
