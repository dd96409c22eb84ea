// Package log defines standard attribute keys for tree induction and prediction.
//
// Using these keys keeps log records consistent across packages so that
// training and inference logs can be filtered and aggregated uniformly.
//
// The keys follow a hierarchical naming convention (e.g., "model.name",
// "data.samples").

package log

// Model and Operation Context
// These attributes identify the model type, instance, and operation being performed.
const (
	// ModelNameKey identifies the type of model.
	// Examples: "ID3Classifier"
	ModelNameKey = "model.name"

	// EstimatorIDKey provides a unique identifier for a specific model instance.
	EstimatorIDKey = "estimator.id"

	// OperationKey specifies the operation being performed.
	// Standard values: "fit", "predict", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which component or package is performing the operation.
	// Examples: "tree", "dataset", "cli"
	ComponentKey = "ml.component"

	// PhaseKey indicates the phase of model lifecycle.
	PhaseKey = "ml.phase"
)

// Data Shape and Characteristics
const (
	// SamplesKey indicates the number of examples in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey indicates the number of candidate features.
	FeaturesKey = "data.features"

	// TargetKey names the target (class label) attribute.
	TargetKey = "data.target"

	// ClassesKey indicates the number of distinct target values.
	ClassesKey = "data.classes"

	// SourceKey identifies where a dataset was loaded from (file path or DSN scheme).
	SourceKey = "data.source"
)

// Tree Shape
// These attributes describe an induced decision tree.
const (
	// DepthKey records the number of decision levels on the longest path.
	DepthKey = "tree.depth"

	// LeavesKey records the number of leaves.
	LeavesKey = "tree.leaves"

	// FeatureKey names a splitting feature.
	FeatureKey = "tree.feature"

	// GainKey records the information gain of a feature.
	GainKey = "tree.gain"

	// EntropyKey records the entropy of a dataset.
	EntropyKey = "tree.entropy"
)

// Performance Metrics
const (
	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"

	// AccuracyKey records classification accuracy in [0.0, 1.0].
	AccuracyKey = "metrics.accuracy"
)

// Prediction and Output Context
const (
	// PredsKey indicates the number of predictions made.
	PredsKey = "preds.count"

	// FallbackKey records the label returned for unseen feature values.
	FallbackKey = "preds.fallback"

	// FallbackCountKey records how many predictions used the fallback label.
	FallbackCountKey = "preds.fallback_count"
)

// Error and Warning Context
const (
	// ErrorCodeKey provides a structured error code for programmatic handling.
	ErrorCodeKey = "error.code"

	// ErrorTypeKey categorizes the type of error encountered.
	ErrorTypeKey = "error.type"

	// StacktraceKey contains stack trace information for debugging.
	// Automatically populated by the error logging functions.
	StacktraceKey = "error.stacktrace"

	// ErrorDetailKey holds the structured fields of an error that implements
	// zerolog.LogObjectMarshaler.
	ErrorDetailKey = "error.detail"

	// SuggestionKey provides helpful suggestions for resolving issues.
	SuggestionKey = "error.suggestion"
)

// Standard attribute value constants for common operations.
const (
	// Standard operations
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationScore   = "score"
	OperationLoad    = "load"

	// Standard phases
	PhaseTraining   = "training"
	PhaseTesting    = "testing"
	PhaseInference  = "inference"
	PhaseEvaluation = "evaluation"

	// Standard error codes
	ErrorNotFitted    = "NOT_FITTED"
	ErrorMissingKey   = "MISSING_KEY"
	ErrorEmptyData    = "EMPTY_DATA"
	ErrorInvalidInput = "INVALID_INPUT"
)
