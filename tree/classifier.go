package tree

import (
	"sync/atomic"
	"time"

	"github.com/YuminosukeSato/id3/core/model"
	"github.com/YuminosukeSato/id3/core/parallel"
	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/metrics"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"github.com/YuminosukeSato/id3/pkg/log"
)

const (
	modelName = "ID3Classifier"

	// batches up to this size are predicted on the calling goroutine
	parallelThreshold = 1000
)

// ID3Classifier is an estimator wrapping BuildTree and Predict.
type ID3Classifier struct {
	state *model.StateManager // State management (composition)

	// Hyperparameters
	target   string   // Attribute holding the class label
	features []string // Candidate features; empty means every non-target attribute
	fallback string   // Label for unseen values
	logger   log.Logger

	// Model parameters
	root      Node
	classes_  []string
	features_ []string
}

var (
	_ model.Classifier      = (*ID3Classifier)(nil)
	_ model.ParameterGetter = (*ID3Classifier)(nil)
	_ model.ParameterSetter = (*ID3Classifier)(nil)
)

// ID3Option is a functional option for ID3Classifier
type ID3Option func(*ID3Classifier)

// NewID3Classifier creates a new ID3Classifier
func NewID3Classifier(opts ...ID3Option) *ID3Classifier {
	c := &ID3Classifier{
		state:    model.NewStateManager(),
		fallback: DefaultFallback,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// WithTarget sets the attribute holding the class label
func WithTarget(target string) ID3Option {
	return func(c *ID3Classifier) {
		c.target = target
	}
}

// WithFeatures sets the candidate features, in tie-break order
func WithFeatures(features ...string) ID3Option {
	return func(c *ID3Classifier) {
		c.features = append([]string(nil), features...)
	}
}

// WithFallbackLabel sets the label predicted for unseen feature values
func WithFallbackLabel(label string) ID3Option {
	return func(c *ID3Classifier) {
		c.fallback = label
	}
}

// WithLogger sets the logger used for fit and predict records
func WithLogger(logger log.Logger) ID3Option {
	return func(c *ID3Classifier) {
		c.logger = logger
	}
}

func (c *ID3Classifier) log() log.Logger {
	if c.logger != nil {
		return c.logger
	}
	return log.GetLoggerWithName("tree").With(log.ModelNameKey, modelName)
}

// Fit induces the tree from d. When no features were configured, every
// attribute of the first example other than the target is used, in sorted
// order.
func (c *ID3Classifier) Fit(d dataset.Dataset) error {
	start := time.Now()
	logger := c.log()

	if c.target == "" {
		return errors.NewValidationError("target", "must not be empty", c.target)
	}
	if len(d) == 0 {
		return errors.Wrap(errors.ErrEmptyData, "ID3Classifier.Fit")
	}

	features := c.features
	if len(features) == 0 {
		features = d.Features(c.target)
	}
	for _, f := range features {
		if f == c.target {
			return errors.NewValidationError("features", "must not contain the target", f)
		}
	}

	root, err := BuildTree(d, features, c.target)
	if err != nil {
		logger.Error("Tree induction failed", err,
			log.OperationKey, log.OperationFit,
			log.SamplesKey, len(d),
		)
		return err
	}
	classes, _, err := d.CountValues(c.target)
	if err != nil {
		return err
	}

	c.root = root
	c.classes_ = classes
	c.features_ = append([]string(nil), features...)
	c.state.SetDimensions(len(features), len(d))
	c.state.SetFitted()

	logger.Info("Tree induced",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.TargetKey, c.target,
		log.SamplesKey, len(d),
		log.FeaturesKey, len(features),
		log.ClassesKey, len(classes),
		log.DepthKey, Depth(root),
		log.LeavesKey, Leaves(root),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict returns the predicted label of every instance. Instances may carry
// the target attribute; it is ignored. Large batches are split across CPU
// cores since the tree is read-only.
func (c *ID3Classifier) Predict(instances dataset.Dataset) ([]string, error) {
	if err := c.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}

	preds := make([]string, len(instances))
	var fallbacks int64
	parallel.ParallelizeWithThreshold(len(instances), parallelThreshold, func(start, end int) {
		var n int64
		for i := start; i < end; i++ {
			label, fellBack := c.root.predict(instances[i], c.fallback)
			preds[i] = label
			if fellBack {
				n++
			}
		}
		atomic.AddInt64(&fallbacks, n)
	})

	if fallbacks > 0 {
		errors.Warn(errors.NewUnseenValueWarning(int(fallbacks), len(instances), c.fallback))
	}
	c.log().Debug("Prediction completed",
		log.OperationKey, log.OperationPredict,
		log.PredsKey, len(preds),
		log.FallbackKey, c.fallback,
		log.FallbackCountKey, fallbacks,
	)
	return preds, nil
}

// PredictOne returns the predicted label of a single instance.
func (c *ID3Classifier) PredictOne(instance dataset.Example) (string, error) {
	if err := c.state.RequireFitted(modelName, "PredictOne"); err != nil {
		return "", err
	}
	label, _ := c.root.predict(instance, c.fallback)
	return label, nil
}

// Score returns the accuracy of the classifier on d, which must carry the
// target attribute.
func (c *ID3Classifier) Score(d dataset.Dataset) (float64, error) {
	if err := c.state.RequireFitted(modelName, "Score"); err != nil {
		return 0, err
	}
	yTrue, err := d.Values(c.target)
	if err != nil {
		return 0, err
	}
	yPred, err := c.Predict(d)
	if err != nil {
		return 0, err
	}
	score, err := metrics.Accuracy(yTrue, yPred)
	if err != nil {
		return 0, err
	}
	c.log().Debug("Score computed",
		log.OperationKey, log.OperationScore,
		log.SamplesKey, len(d),
		log.AccuracyKey, score,
	)
	return score, nil
}

// Root returns the induced tree, or nil before Fit.
func (c *ID3Classifier) Root() Node {
	return c.root
}

// Classes returns the distinct target values seen by Fit in order of first
// appearance.
func (c *ID3Classifier) Classes() []string {
	return append([]string(nil), c.classes_...)
}

// Features returns the candidate features used by Fit.
func (c *ID3Classifier) Features() []string {
	return append([]string(nil), c.features_...)
}

// GetDepth returns the depth of the induced tree, or 0 before Fit.
func (c *ID3Classifier) GetDepth() int {
	if c.root == nil {
		return 0
	}
	return Depth(c.root)
}

// GetNLeaves returns the number of leaves of the induced tree, or 0 before Fit.
func (c *ID3Classifier) GetNLeaves() int {
	if c.root == nil {
		return 0
	}
	return Leaves(c.root)
}

// String renders the induced tree.
func (c *ID3Classifier) String() string {
	if c.root == nil {
		return modelName + "(not fitted)"
	}
	return Format(c.root)
}

// GetParams returns the hyperparameters
func (c *ID3Classifier) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"target":         c.target,
		"features":       append([]string(nil), c.features...),
		"fallback_label": c.fallback,
	}
}

// SetParams sets the hyperparameters. Unknown keys and values of the wrong
// type are rejected and leave the classifier unchanged.
func (c *ID3Classifier) SetParams(params map[string]interface{}) error {
	target, features, fallback := c.target, c.features, c.fallback
	for key, value := range params {
		switch key {
		case "target":
			v, ok := value.(string)
			if !ok {
				return errors.NewValidationError(key, "must be a string", value)
			}
			target = v
		case "features":
			v, ok := value.([]string)
			if !ok {
				return errors.NewValidationError(key, "must be a []string", value)
			}
			features = append([]string(nil), v...)
		case "fallback_label":
			v, ok := value.(string)
			if !ok {
				return errors.NewValidationError(key, "must be a string", value)
			}
			fallback = v
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	c.target, c.features, c.fallback = target, features, fallback
	return nil
}
