package tree

import (
	"math"

	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"gonum.org/v1/gonum/stat"
)

// Entropy returns the Shannon entropy, in bits, of the distribution of target
// values in d: -Σ p_i·log2(p_i) over the observed classes. A dataset whose
// examples all share one label has entropy 0.
//
// It returns an error wrapping errors.ErrEmptyData for an empty dataset and a
// *errors.MissingKeyError if an example lacks target.
func Entropy(d dataset.Dataset, target string) (float64, error) {
	if len(d) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, "entropy")
	}
	_, counts, err := d.CountValues(target)
	if err != nil {
		return 0, err
	}
	return entropyOf(counts, len(d)), nil
}

// entropyOf computes the entropy in bits of class counts summing to total.
// Only observed classes are passed, so log2(0) is never evaluated.
func entropyOf(counts []int, total int) float64 {
	if len(counts) < 2 {
		return 0
	}
	p := make([]float64, len(counts))
	for i, c := range counts {
		p[i] = float64(c) / float64(total)
	}
	// stat.Entropy uses the natural logarithm
	return stat.Entropy(p) / math.Ln2
}
