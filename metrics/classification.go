package metrics

import (
	"sort"

	"github.com/YuminosukeSato/id3/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Accuracy は予測ラベルが正解ラベルと一致する割合を計算する
func Accuracy(yTrue, yPred []string) (float64, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return 0, errors.NewValueError("Accuracy", "empty label slice")
	}

	if len(yPred) != n {
		return 0, errors.NewDimensionError("Accuracy", n, len(yPred), 0)
	}

	correct := 0
	for i := range yTrue {
		if yTrue[i] == yPred[i] {
			correct++
		}
	}

	return float64(correct) / float64(n), nil
}

// ConfusionMatrix は混同行列を計算する。
// 行は正解ラベル、列は予測ラベルで、順序は返されるラベル（昇順）に従う。
func ConfusionMatrix(yTrue, yPred []string) (*mat.Dense, []string, error) {
	// 入力検証
	n := len(yTrue)
	if n == 0 {
		return nil, nil, errors.NewValueError("ConfusionMatrix", "empty label slice")
	}

	if len(yPred) != n {
		return nil, nil, errors.NewDimensionError("ConfusionMatrix", n, len(yPred), 0)
	}

	index := make(map[string]int)
	for _, y := range append(append([]string{}, yTrue...), yPred...) {
		index[y] = 0
	}
	labels := make([]string, 0, len(index))
	for y := range index {
		labels = append(labels, y)
	}
	sort.Strings(labels)
	for i, y := range labels {
		index[y] = i
	}

	cm := mat.NewDense(len(labels), len(labels), nil)
	for i := range yTrue {
		r, c := index[yTrue[i]], index[yPred[i]]
		cm.Set(r, c, cm.At(r, c)+1)
	}

	return cm, labels, nil
}
