// Package dataset provides the in-memory representation of labeled
// categorical examples and loaders that build it from CSV and SQL sources.
package dataset

import (
	"sort"

	"github.com/YuminosukeSato/id3/pkg/errors"
)

// Example maps attribute names to categorical values. When used for
// training, one of its keys names the target (class label).
type Example map[string]string

// Dataset is an ordered sequence of examples. All examples are expected to
// share the same attribute keys; this is not validated.
type Dataset []Example

// Value returns the value of key in the example at row i, or a
// MissingKeyError if the example does not carry key.
func (d Dataset) Value(i int, key string) (string, error) {
	v, ok := d[i][key]
	if !ok {
		return "", errors.NewMissingKeyError(key, i)
	}
	return v, nil
}

// Values returns the value of key for every example, in order.
func (d Dataset) Values(key string) ([]string, error) {
	values := make([]string, len(d))
	for i := range d {
		v, err := d.Value(i, key)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

// CountValues returns the distinct values of key in order of first
// appearance together with how many examples carry each of them.
func (d Dataset) CountValues(key string) ([]string, []int, error) {
	var values []string
	var counts []int
	index := make(map[string]int)
	for i := range d {
		v, err := d.Value(i, key)
		if err != nil {
			return nil, nil, err
		}
		j, seen := index[v]
		if !seen {
			j = len(values)
			index[v] = j
			values = append(values, v)
			counts = append(counts, 0)
		}
		counts[j]++
	}
	return values, counts, nil
}

// Partition groups the examples by their value of key. It returns the
// distinct values in order of first appearance and, for each of them, the
// subset of examples carrying it. Subsets preserve the original order and
// share the example maps with d.
func (d Dataset) Partition(key string) ([]string, map[string]Dataset, error) {
	var values []string
	subsets := make(map[string]Dataset)
	for i, e := range d {
		v, err := d.Value(i, key)
		if err != nil {
			return nil, nil, err
		}
		if _, seen := subsets[v]; !seen {
			values = append(values, v)
		}
		subsets[v] = append(subsets[v], e)
	}
	return values, subsets, nil
}

// SubsetWith returns the examples whose value of key equals value.
func (d Dataset) SubsetWith(key, value string) (Dataset, error) {
	var subset Dataset
	for i, e := range d {
		v, err := d.Value(i, key)
		if err != nil {
			return nil, err
		}
		if v == value {
			subset = append(subset, e)
		}
	}
	return subset, nil
}

// Attributes returns the sorted attribute names of the first example, or nil
// for an empty dataset.
func (d Dataset) Attributes() []string {
	if len(d) == 0 {
		return nil
	}
	names := make([]string, 0, len(d[0]))
	for k := range d[0] {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Features returns the sorted attribute names of the first example except
// target.
func (d Dataset) Features(target string) []string {
	var features []string
	for _, name := range d.Attributes() {
		if name != target {
			features = append(features, name)
		}
	}
	return features
}

// Without returns a copy of e without key.
func (e Example) Without(key string) Example {
	out := make(Example, len(e))
	for k, v := range e {
		if k != key {
			out[k] = v
		}
	}
	return out
}
