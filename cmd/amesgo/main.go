// Command amesgo trains a sale-price regression model on the Ames housing
// data and writes a submission file.
//
// The run is a single batch: load the train and test tables, one-hot encode
// the categorical columns, impute missing values with a KNN imputer fitted
// on the training rows, expand degree-2 interaction features, standardize,
// fit ordinary least squares on a seeded 80/20 split, report the validation
// and cross-validated MAE, and predict the test set.
package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/amesgo/core/model"
	"github.com/YuminosukeSato/amesgo/dataset"
	"github.com/YuminosukeSato/amesgo/linear"
	"github.com/YuminosukeSato/amesgo/metrics"
	"github.com/YuminosukeSato/amesgo/model_selection"
	"github.com/YuminosukeSato/amesgo/pipeline"
	"github.com/YuminosukeSato/amesgo/pkg/errors"
	"github.com/YuminosukeSato/amesgo/pkg/log"
	"github.com/YuminosukeSato/amesgo/preprocessing"
	"github.com/YuminosukeSato/amesgo/visualization"
)

// Config holds the knobs of a full train-predict-submit run.
type Config struct {
	TrainPath      string
	TestPath       string
	SubmissionPath string

	IDColumn     string
	TargetColumn string

	Neighbors      int
	Degree         int
	ValidationSize float64
	Folds          int
	Seed           int64

	// PlotDir, when set, receives diagnostic PNGs for the validation split.
	PlotDir string
}

// DefaultConfig returns the reference settings: five imputation neighbors,
// degree-2 interaction features, an 80/20 validation split and five-fold
// cross-validation, seeded for reproducibility.
func DefaultConfig() Config {
	return Config{
		TrainPath:      "train.csv",
		TestPath:       "test.csv",
		SubmissionPath: "submission.csv",
		IDColumn:       "Id",
		TargetColumn:   "SalePrice",
		Neighbors:      5,
		Degree:         2,
		ValidationSize: 0.2,
		Folds:          5,
		Seed:           42,
	}
}

// Result carries the metrics of a completed run.
type Result struct {
	ValidationMAE float64
	ValidationR2  float64
	CVMeanMAE     float64
	CVStdMAE      float64
	TestRows      int
}

// run executes the full pipeline described by cfg and returns the run
// metrics. Predictions for the test table are written to
// cfg.SubmissionPath as "Id,SalePrice" rows.
func run(cfg Config, logger log.Logger) (*Result, error) {
	started := time.Now()
	logger.Info("starting run",
		log.SeedKey, cfg.Seed,
		log.FoldsKey, cfg.Folds,
		"neighbors", cfg.Neighbors,
		"degree", cfg.Degree)

	train, err := dataset.Load(cfg.TrainPath)
	if err != nil {
		return nil, err
	}
	test, err := dataset.Load(cfg.TestPath)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded tables",
		log.PathKey, cfg.TrainPath,
		log.SamplesKey, train.NumRows(),
		"test_samples", test.NumRows())

	ids, err := test.Column(cfg.IDColumn)
	if err != nil {
		return nil, err
	}

	yCol, err := train.FloatColumn(cfg.TargetColumn)
	if err != nil {
		return nil, err
	}
	y := mat.NewDense(yCol.Len(), 1, nil)
	for i := 0; i < yCol.Len(); i++ {
		y.Set(i, 0, yCol.AtVec(i))
	}

	if err := train.Drop(cfg.TargetColumn); err != nil {
		return nil, err
	}
	for _, t := range []*dataset.Table{train, test} {
		if _, ok := t.ColumnIndex(cfg.IDColumn); ok {
			if err := t.Drop(cfg.IDColumn); err != nil {
				return nil, err
			}
		}
	}

	encoder := preprocessing.NewOneHotEncoder()
	XTrainEnc, err := encoder.FitTransform(train)
	if err != nil {
		return nil, err
	}
	XTestEnc, err := encoder.Transform(test)
	if err != nil {
		return nil, err
	}
	logger.Info("encoded features", log.FeaturesKey, encoder.NumFeatures())

	imputer := preprocessing.NewKNNImputer(cfg.Neighbors)
	imputer.SetFeatureNames(encoder.FeatureNames())
	XTrain, err := imputer.FitTransform(XTrainEnc)
	if err != nil {
		return nil, err
	}
	XTest, err := imputer.Transform(XTestEnc)
	if err != nil {
		return nil, err
	}

	newTail := func() *pipeline.Pipeline {
		return pipeline.New(
			pipeline.Step{Name: "poly", Estimator: preprocessing.NewPolynomialFeatures(cfg.Degree)},
			pipeline.Step{Name: "scale", Estimator: preprocessing.NewStandardScalerDefault()},
			pipeline.Step{Name: "ols", Estimator: linear.NewLinearRegression()},
		)
	}

	XFit, XVal, yFit, yVal, err := model_selection.TrainTestSplit(XTrain, y, cfg.ValidationSize, cfg.Seed)
	if err != nil {
		return nil, err
	}

	tail := newTail()
	if err := tail.Fit(XFit, yFit); err != nil {
		return nil, err
	}

	predVal, err := tail.Predict(XVal)
	if err != nil {
		return nil, err
	}
	valMAE, err := metrics.MAEMatrix(yVal, predVal)
	if err != nil {
		return nil, err
	}
	valR2, err := tail.Score(XVal, yVal)
	if err != nil {
		return nil, err
	}
	logger.Info("validation metrics", log.MAEKey, valMAE, log.R2Key, valR2)

	kf := model_selection.NewKFold(cfg.Folds, true, int(cfg.Seed))
	cv, err := model_selection.CrossValidateMAE(func() model.Regressor { return newTail() }, XTrain, y, kf)
	if err != nil {
		return nil, err
	}
	logger.Info("cross-validation metrics",
		log.FoldsKey, cfg.Folds,
		log.MAEKey, cv.Mean(),
		"mae_std", cv.Std())

	predTest, err := tail.Predict(XTest)
	if err != nil {
		return nil, err
	}
	if err := dataset.WriteSubmission(cfg.SubmissionPath, ids, predTest); err != nil {
		return nil, err
	}
	testRows, _ := predTest.Dims()
	logger.Info("submission written",
		log.PathKey, cfg.SubmissionPath,
		log.SamplesKey, testRows)

	if cfg.PlotDir != "" {
		if err := savePlots(cfg.PlotDir, yVal, predVal); err != nil {
			return nil, err
		}
		logger.Info("plots written", log.PathKey, cfg.PlotDir)
	}

	logger.Info("run complete", log.DurationMsKey, time.Since(started).Milliseconds())
	return &Result{
		ValidationMAE: valMAE,
		ValidationR2:  valR2,
		CVMeanMAE:     cv.Mean(),
		CVStdMAE:      cv.Std(),
		TestRows:      testRows,
	}, nil
}

func savePlots(dir string, yVal *mat.Dense, predVal mat.Matrix) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewFileError("savePlots", dir, err)
	}
	yTrue := columnVec(yVal)
	yPred := columnVec(predVal)
	if err := visualization.SavePredictedVsActual(yTrue, yPred,
		filepath.Join(dir, "predicted_vs_actual.png")); err != nil {
		return err
	}
	return visualization.SaveResidualHistogram(yTrue, yPred,
		filepath.Join(dir, "residuals.png"))
}

func columnVec(m mat.Matrix) *mat.VecDense {
	r, _ := m.Dims()
	v := mat.NewVecDense(r, nil)
	for i := 0; i < r; i++ {
		v.SetVec(i, m.At(i, 0))
	}
	return v
}

func main() {
	cfg := DefaultConfig()
	level := flag.String("log-level", "info", "log level: debug, info, warn, error")
	flag.StringVar(&cfg.TrainPath, "train", cfg.TrainPath, "path to the training CSV")
	flag.StringVar(&cfg.TestPath, "test", cfg.TestPath, "path to the test CSV")
	flag.StringVar(&cfg.SubmissionPath, "out", cfg.SubmissionPath, "path for the submission CSV")
	flag.StringVar(&cfg.PlotDir, "plots", cfg.PlotDir, "directory for diagnostic plots (optional)")
	flag.IntVar(&cfg.Neighbors, "neighbors", cfg.Neighbors, "neighbor count for KNN imputation")
	flag.IntVar(&cfg.Degree, "degree", cfg.Degree, "polynomial feature degree (1 or 2)")
	flag.IntVar(&cfg.Folds, "folds", cfg.Folds, "number of cross-validation folds")
	flag.Float64Var(&cfg.ValidationSize, "validation-size", cfg.ValidationSize, "fraction of training rows held out for validation")
	flag.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed for the split and fold shuffles")
	flag.Parse()

	provider := log.NewZerologProvider(log.ToLogLevel(*level))
	logger := provider.GetLoggerWithName("amesgo")

	errors.SetWarningHandler(func(w error) {
		logger.Warn("preprocessing warning", "warning", w)
	})

	if _, err := run(cfg, logger); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
}
