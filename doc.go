// Package amesgo implements a sale-price regression pipeline for the Ames
// housing dataset, from raw CSV tables to a submission file.
//
// The pipeline mirrors a standard tabular workflow: one-hot encoding of
// categorical columns with train/test schema alignment, KNN imputation of
// missing values fitted on the training rows only, degree-2 interaction
// features, standardization, an ordinary least squares fit on a seeded
// holdout split, and evaluation by mean absolute error on both the holdout
// and a five-fold cross-validation.
//
// # Quick Start
//
//	table, err := dataset.Load("train.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	encoder := preprocessing.NewOneHotEncoder()
//	X, err := encoder.FitTransform(table)
//	...
//
// The cmd/amesgo binary wires the full run behind flags; see its package
// documentation for the batch entry point.
//
// # Packages
//
//   - dataset: CSV loading, missing-value markers, submission output
//   - preprocessing: OneHotEncoder, KNNImputer, PolynomialFeatures, StandardScaler
//   - linear: ordinary least squares via SVD
//   - metrics: MAE, MSE, RMSE, R²
//   - model_selection: train/test split, KFold, cross-validation
//   - pipeline: chained transformers behind one Fit/Predict surface
//   - visualization: diagnostic plots for a fitted run
//   - core/model: shared estimator interfaces and fitted-state tracking
//   - core/parallel: row-range parallelization helpers
//   - pkg/errors: typed errors and the preprocessing warning hook
//   - pkg/log: structured logging facade over zerolog
package amesgo
