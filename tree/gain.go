package tree

import (
	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/pkg/errors"
)

// InformationGain returns the reduction in target entropy obtained by
// partitioning d on the observed values of feature:
//
//	Entropy(d) - Σ_v |d_v|/|d| · Entropy(d_v)
//
// The result lies between 0 (feature uninformative) and Entropy(d) (feature
// separates the classes), up to floating point error.
func InformationGain(d dataset.Dataset, feature, target string) (float64, error) {
	if len(d) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "information gain")
	}
	h, err := Entropy(d, target)
	if err != nil {
		return 0, err
	}
	values, subsets, err := d.Partition(feature)
	if err != nil {
		return 0, err
	}
	total := float64(len(d))
	var remainder float64
	for _, v := range values {
		subset := subsets[v]
		hv, err := Entropy(subset, target)
		if err != nil {
			return 0, err
		}
		remainder += float64(len(subset)) / total * hv
	}
	return h - remainder, nil
}

// Gains returns the information gain of each feature, in the order given.
func Gains(d dataset.Dataset, features []string, target string) ([]float64, error) {
	gains := make([]float64, len(features))
	for i, f := range features {
		g, err := InformationGain(d, f, target)
		if err != nil {
			return nil, errors.Wrapf(err, "gain of %q", f)
		}
		gains[i] = g
	}
	return gains, nil
}
