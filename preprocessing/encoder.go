// Package preprocessing implements the feature-preparation stages of the
// pipeline: one-hot encoding with an explicit train-derived schema, k-NN
// imputation, polynomial expansion and standardization. Every stage fits on
// training data only and applies the fitted statistics unchanged elsewhere.
package preprocessing

import (
	"fmt"
	"math"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// OneHotEncoder turns a raw table into a numeric feature matrix.
//
// Fit inspects the training table once and freezes an ordered feature
// schema: numeric columns first, in table order, followed by one binary
// indicator column per observed category of each categorical column
// (categories sorted for determinism). Transform enforces that schema on
// every table, so train and test matrices always share identical columns in
// identical order.
//
// Alignment rules: a category present only in the fitted schema produces an
// all-zero column; a category unseen during fitting is dropped from the
// output and reported through the warning handler; a missing categorical
// cell yields an all-zero indicator row. Missing numeric cells become NaN
// for the imputer to fill.
type OneHotEncoder struct {
	model.BaseEstimator

	numericCols []string
	catCols     []string
	categories  map[string][]string

	featureNames []string
	featureIndex map[string]int
}

// NewOneHotEncoder creates an unfitted OneHotEncoder.
func NewOneHotEncoder() *OneHotEncoder {
	return &OneHotEncoder{}
}

// Fit derives the column kinds, category sets and output schema from the
// training table.
func (e *OneHotEncoder) Fit(t *dataset.Table) error {
	if t.NumRows() == 0 || t.NumCols() == 0 {
		return errors.NewModelError("OneHotEncoder.Fit", "empty table", errors.ErrEmptyData)
	}

	e.numericCols = nil
	e.catCols = nil
	e.categories = make(map[string][]string)

	for _, name := range t.Columns {
		values, err := t.Column(name)
		if err != nil {
			return err
		}
		if columnIsNumeric(values) {
			e.numericCols = append(e.numericCols, name)
			continue
		}

		seen := make(map[string]bool)
		for _, v := range values {
			if !dataset.IsMissing(v) {
				seen[v] = true
			}
		}
		cats := make([]string, 0, len(seen))
		for v := range seen {
			cats = append(cats, v)
		}
		sort.Strings(cats)
		e.catCols = append(e.catCols, name)
		e.categories[name] = cats
	}

	e.featureNames = make([]string, 0, len(e.numericCols))
	e.featureNames = append(e.featureNames, e.numericCols...)
	for _, name := range e.catCols {
		for _, cat := range e.categories[name] {
			e.featureNames = append(e.featureNames, fmt.Sprintf("%s_%s", name, cat))
		}
	}
	e.featureIndex = make(map[string]int, len(e.featureNames))
	for i, f := range e.featureNames {
		e.featureIndex[f] = i
	}

	e.SetFitted()
	return nil
}

// Transform encodes a table against the fitted schema. Extra columns in the
// table (for example the target, before it is dropped) are ignored; a fitted
// source column missing from the table is an error.
func (e *OneHotEncoder) Transform(t *dataset.Table) (*mat.Dense, error) {
	if !e.IsFitted() {
		return nil, errors.NewNotFittedError("OneHotEncoder", "Transform")
	}

	rows := t.NumRows()
	out := mat.NewDense(rows, len(e.featureNames), nil)

	for j, name := range e.numericCols {
		values, err := t.Column(name)
		if err != nil {
			return nil, errors.NewValueError("OneHotEncoder.Transform",
				"fitted column "+strconv.Quote(name)+" not present in table")
		}
		for i, v := range values {
			if dataset.IsMissing(v) {
				out.Set(i, j, math.NaN())
				continue
			}
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, errors.NewParseError(t.Path, i+2,
					"non-numeric value "+strconv.Quote(v)+" in numeric column "+strconv.Quote(name))
			}
			out.Set(i, j, f)
		}
	}

	// Count unseen categories per (column, value) so each pair warns once.
	unseen := make(map[[2]string]int)

	for _, name := range e.catCols {
		values, err := t.Column(name)
		if err != nil {
			return nil, errors.NewValueError("OneHotEncoder.Transform",
				"fitted column "+strconv.Quote(name)+" not present in table")
		}
		for i, v := range values {
			if dataset.IsMissing(v) {
				continue // all-zero indicator row
			}
			idx, ok := e.featureIndex[fmt.Sprintf("%s_%s", name, v)]
			if !ok {
				unseen[[2]string{name, v}]++
				continue
			}
			out.Set(i, idx, 1)
		}
	}

	for key, count := range unseen {
		errors.Warn(errors.NewUnseenCategoryWarning(key[0], key[1], count))
	}

	return out, nil
}

// FitTransform fits the schema on t and returns the encoded t.
func (e *OneHotEncoder) FitTransform(t *dataset.Table) (*mat.Dense, error) {
	if err := e.Fit(t); err != nil {
		return nil, err
	}
	return e.Transform(t)
}

// FeatureNames returns the fitted output schema in column order.
func (e *OneHotEncoder) FeatureNames() []string {
	names := make([]string, len(e.featureNames))
	copy(names, e.featureNames)
	return names
}

// NumFeatures returns the width of the encoded matrix.
func (e *OneHotEncoder) NumFeatures() int {
	return len(e.featureNames)
}

// columnIsNumeric reports whether every non-missing cell parses as a float.
// A fully missing column counts as numeric; the imputer rejects it later
// with a clear error.
func columnIsNumeric(values []string) bool {
	for _, v := range values {
		if dataset.IsMissing(v) {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
	}
	return true
}
