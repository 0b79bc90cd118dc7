// Package visualization renders diagnostic plots for a fitted run:
// predicted-vs-actual scatter and residual histogram.
package visualization

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// SavePredictedVsActual writes a scatter of predictions against true values
// with the identity line for reference. A well-behaved model hugs the line.
func SavePredictedVsActual(yTrue, yPred *mat.VecDense, path string) error {
	n := yTrue.Len()
	if n == 0 {
		return errors.NewValueError("visualization.SavePredictedVsActual", "empty vector")
	}
	if yPred.Len() != n {
		return errors.NewDimensionError("visualization.SavePredictedVsActual", n, yPred.Len(), 0)
	}

	pts := make(plotter.XYs, n)
	minV, maxV := yTrue.AtVec(0), yTrue.AtVec(0)
	for i := 0; i < n; i++ {
		pts[i].X = yTrue.AtVec(i)
		pts[i].Y = yPred.AtVec(i)
		for _, v := range []float64{yTrue.AtVec(i), yPred.AtVec(i)} {
			if v < minV {
				minV = v
			}
			if v > maxV {
				maxV = v
			}
		}
	}

	p := plot.New()
	p.Title.Text = "Predicted vs actual"
	p.X.Label.Text = "actual"
	p.Y.Label.Text = "predicted"

	scatter, err := plotter.NewScatter(pts)
	if err != nil {
		return errors.Wrap(err, "failed to build scatter")
	}
	p.Add(scatter)

	identity, err := plotter.NewLine(plotter.XYs{{X: minV, Y: minV}, {X: maxV, Y: maxV}})
	if err != nil {
		return errors.Wrap(err, "failed to build identity line")
	}
	p.Add(identity)

	if err := p.Save(6*vg.Inch, 6*vg.Inch, path); err != nil {
		return errors.NewFileError("visualization.SavePredictedVsActual", path, err)
	}
	return nil
}

// SaveResidualHistogram writes a histogram of prediction residuals
// (actual − predicted).
func SaveResidualHistogram(yTrue, yPred *mat.VecDense, path string) error {
	n := yTrue.Len()
	if n == 0 {
		return errors.NewValueError("visualization.SaveResidualHistogram", "empty vector")
	}
	if yPred.Len() != n {
		return errors.NewDimensionError("visualization.SaveResidualHistogram", n, yPred.Len(), 0)
	}

	residuals := make(plotter.Values, n)
	for i := 0; i < n; i++ {
		residuals[i] = yTrue.AtVec(i) - yPred.AtVec(i)
	}

	p := plot.New()
	p.Title.Text = "Residuals"
	p.X.Label.Text = "actual - predicted"

	bins := 20
	if n < bins {
		bins = n
	}
	hist, err := plotter.NewHist(residuals, bins)
	if err != nil {
		return errors.Wrap(err, "failed to build histogram")
	}
	p.Add(hist)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.NewFileError("visualization.SaveResidualHistogram", path, err)
	}
	return nil
}
