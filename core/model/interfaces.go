package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for stateful data transformations. The
// statistics learned in Fit come from training data only; Transform applies
// them unchanged to any later matrix.
type Transformer interface {
	// Fit learns the parameters needed for the transformation.
	Fit(X mat.Matrix) error

	// Transform applies the fitted transformation.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform fits on X and returns the transformed X.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}

// Fitter is the interface for supervised estimators.
type Fitter interface {
	// Fit trains the estimator on features X and targets y.
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for fitted estimators that produce predictions.
type Predictor interface {
	// Predict returns predictions for X as an n×1 matrix.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Scorer is the interface for models that can compute a goodness-of-fit
// score.
type Scorer interface {
	// Score returns the coefficient of determination R² of the prediction.
	Score(X, y mat.Matrix) (float64, error)
}

// Regressor combines the interfaces a regression model must satisfy.
type Regressor interface {
	Fitter
	Predictor
	Scorer
}

// ParameterGetter is the interface for estimators that expose their
// hyperparameters.
type ParameterGetter interface {
	// GetParams returns the estimator's hyperparameters.
	GetParams() map[string]interface{}
}
