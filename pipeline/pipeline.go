// Package pipeline chains transformers and a final estimator behind a
// single Fit/Predict surface, so the "fit on training data only" rule holds
// for the whole preprocessing tail at once.
package pipeline

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
)

// Step is a named stage of a pipeline.
type Step struct {
	Name      string
	Estimator interface{} // model.Transformer, or model.Fitter for the final step
}

// Pipeline applies its transformer steps in order and delegates the final
// step to an estimator. Intermediate steps must implement
// model.Transformer.
type Pipeline struct {
	model.BaseEstimator

	steps      []Step
	namedSteps map[string]interface{}
}

// New creates a pipeline from the given steps.
func New(steps ...Step) *Pipeline {
	named := make(map[string]interface{}, len(steps))
	for _, step := range steps {
		named[step.Name] = step.Estimator
	}
	return &Pipeline{
		steps:      steps,
		namedSteps: named,
	}
}

// Make creates a pipeline with generated step names, in the manner of
// sklearn's make_pipeline.
func Make(estimators ...interface{}) *Pipeline {
	steps := make([]Step, len(estimators))
	for i, estimator := range estimators {
		steps[i] = Step{Name: fmt.Sprintf("step%d", i+1), Estimator: estimator}
	}
	return New(steps...)
}

// NamedStep returns a step's estimator by name.
func (p *Pipeline) NamedStep(name string) (interface{}, bool) {
	est, ok := p.namedSteps[name]
	return est, ok
}

// Fit fit-transforms each intermediate step in order, then fits the final
// estimator on the fully transformed matrix.
func (p *Pipeline) Fit(X, y mat.Matrix) error {
	if len(p.steps) == 0 {
		return errors.NewValidationError("steps", "pipeline has no steps", 0)
	}

	Xt := X
	for i := 0; i < len(p.steps)-1; i++ {
		step := p.steps[i]
		transformer, ok := step.Estimator.(model.Transformer)
		if !ok {
			return errors.NewValidationError("pipeline step",
				"all intermediate steps must be transformers", step.Name)
		}
		if err := transformer.Fit(Xt); err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to fit step '%s'", step.Name))
		}
		var err error
		Xt, err = transformer.Transform(Xt)
		if err != nil {
			return errors.Wrap(err, fmt.Sprintf("failed to transform at step '%s'", step.Name))
		}
	}

	final := p.steps[len(p.steps)-1]
	fitter, ok := final.Estimator.(model.Fitter)
	if !ok {
		return errors.NewValidationError("pipeline step",
			"final step must be a fittable estimator", final.Name)
	}
	if err := fitter.Fit(Xt, y); err != nil {
		return errors.Wrap(err, fmt.Sprintf("failed to fit final step '%s'", final.Name))
	}

	p.SetFitted()
	return nil
}

// Transform runs X through the intermediate transformer steps with their
// fitted state.
func (p *Pipeline) Transform(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Pipeline", "Transform")
	}

	Xt := X
	for i := 0; i < len(p.steps)-1; i++ {
		step := p.steps[i]
		transformer := step.Estimator.(model.Transformer)
		var err error
		Xt, err = transformer.Transform(Xt)
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("failed to transform at step '%s'", step.Name))
		}
	}
	return Xt, nil
}

// Predict transforms X through the fitted steps and predicts with the final
// estimator.
func (p *Pipeline) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !p.IsFitted() {
		return nil, errors.NewNotFittedError("Pipeline", "Predict")
	}

	Xt, err := p.Transform(X)
	if err != nil {
		return nil, err
	}

	final := p.steps[len(p.steps)-1]
	predictor, ok := final.Estimator.(model.Predictor)
	if !ok {
		return nil, errors.NewValidationError("pipeline step",
			"final step does not support Predict", final.Name)
	}
	return predictor.Predict(Xt)
}

// Score transforms X through the fitted steps and scores the final
// estimator against y.
func (p *Pipeline) Score(X, y mat.Matrix) (float64, error) {
	if !p.IsFitted() {
		return 0, errors.NewNotFittedError("Pipeline", "Score")
	}

	Xt, err := p.Transform(X)
	if err != nil {
		return 0, err
	}

	final := p.steps[len(p.steps)-1]
	scorer, ok := final.Estimator.(model.Scorer)
	if !ok {
		return 0, errors.NewValidationError("pipeline step",
			"final step does not support Score", final.Name)
	}
	return scorer.Score(Xt, y)
}
