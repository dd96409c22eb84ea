// Package tree induces categorical decision trees with the ID3 algorithm and
// classifies examples with them.
//
// BuildTree recursively splits a dataset on the feature with the highest
// information gain until every subset is pure or no features remain.
// Predict walks the resulting tree. Both are pure functions over
// caller-owned data. ID3Classifier wraps them in an estimator with the
// usual Fit, Predict and Score methods.
package tree

import (
	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// BuildTree induces a decision tree predicting target from the examples in d
// using the candidate features, in this order of precedence:
//
//  1. if every example has the same target value, a leaf with that value;
//  2. if no features remain, a leaf with the majority target value, ties
//     going to the label that appears first in d;
//  3. otherwise a decision node on the feature with the highest information
//     gain, ties going to the feature listed first, with one subtree per
//     observed value built from the matching examples and the remaining
//     features.
//
// Neither d nor features is modified. Missing attributes are reported as
// *errors.MissingKeyError and an empty d as errors.ErrEmptyData.
func BuildTree(d dataset.Dataset, features []string, target string) (Node, error) {
	if len(d) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "building tree")
	}
	labels, counts, err := d.CountValues(target)
	if err != nil {
		return nil, err
	}
	if len(labels) == 1 {
		return NewLeaf(labels[0]), nil
	}
	if len(features) == 0 {
		return NewLeaf(majority(labels, counts)), nil
	}

	gains, err := Gains(d, features, target)
	if err != nil {
		return nil, err
	}
	// MaxIdx returns the first index holding the maximum
	best := features[floats.MaxIdx(gains)]

	values, subsets, err := d.Partition(best)
	if err != nil {
		return nil, err
	}
	remaining := without(features, best)
	children := make(map[string]Node, len(values))
	for _, v := range values {
		child, err := BuildTree(subsets[v], remaining, target)
		if err != nil {
			return nil, err
		}
		children[v] = child
	}
	return &Decision{feature: best, values: values, children: children}, nil
}

// majority returns the label with the highest count, preferring the earliest
// label on ties. labels are in order of first appearance.
func majority(labels []string, counts []int) string {
	c := make([]float64, len(counts))
	for i, n := range counts {
		c[i] = float64(n)
	}
	return labels[floats.MaxIdx(c)]
}

// without returns a new slice holding features except every occurrence of f.
func without(features []string, f string) []string {
	out := make([]string, 0, len(features))
	for _, name := range features {
		if name != f {
			out = append(out, name)
		}
	}
	return out
}
