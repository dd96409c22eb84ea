package tree

import "github.com/YuminosukeSato/id3/dataset"

// DefaultFallback is the label Predict returns when an instance reaches a
// decision node without a branch for its value, either because the value
// was never observed there during training or because the instance lacks
// the attribute. It is a fixed constant, not a majority vote.
const DefaultFallback = "Yes"

// Predict classifies instance by walking n from the root, following at each
// decision node the branch for the instance's value of the node's feature.
// Unseen or missing values yield DefaultFallback. n must not be nil.
func Predict(n Node, instance dataset.Example) string {
	return PredictWithFallback(n, instance, DefaultFallback)
}

// PredictWithFallback is like Predict but returns fallback for unseen or
// missing values.
func PredictWithFallback(n Node, instance dataset.Example, fallback string) string {
	label, _ := n.predict(instance, fallback)
	return label
}
