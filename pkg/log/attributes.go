package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type.
	// Examples: "LinearRegression", "StandardScaler", "KNNImputer"
	ModelNameKey = "model.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "transform", "fit_transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies the package performing the operation.
	// Examples: "dataset", "preprocessing", "model_selection"
	ComponentKey = "ml.component"

	// SeedKey records the random seed threaded through a splitter.
	SeedKey = "ml.seed"

	// FoldsKey records the number of cross-validation folds.
	FoldsKey = "ml.folds"
)

// Data shape and characteristics.
const (
	// SamplesKey indicates the number of samples (rows) being processed.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of features (columns) being processed.
	FeaturesKey = "data.features"

	// ColumnKey names a single column involved in the operation.
	ColumnKey = "data.column"

	// PathKey records a file path read from or written to.
	PathKey = "data.path"
)

// Metrics and performance.
const (
	// MAEKey records a mean absolute error value.
	MAEKey = "metrics.mae"

	// R2Key records a coefficient of determination.
	R2Key = "metrics.r2"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)
