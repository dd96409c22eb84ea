package metrics

import (
	"math"
	"testing"

	"github.com/YuminosukeSato/id3/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name    string
		yTrue   []string
		yPred   []string
		want    float64
		wantErr bool
	}{
		{
			name:  "Perfect classifier",
			yTrue: []string{"Yes", "No", "Yes"},
			yPred: []string{"Yes", "No", "Yes"},
			want:  1.0,
		},
		{
			name:  "Always wrong",
			yTrue: []string{"Yes", "No"},
			yPred: []string{"No", "Yes"},
			want:  0.0,
		},
		{
			name:  "Typical case",
			yTrue: []string{"Yes", "No", "Yes", "Yes", "No"},
			yPred: []string{"Yes", "Yes", "Yes", "No", "No"},
			want:  0.6,
		},
		{
			name:    "Dimension mismatch",
			yTrue:   []string{"Yes", "No"},
			yPred:   []string{"Yes"},
			wantErr: true,
		},
		{
			name:    "Empty slices",
			yTrue:   []string{},
			yPred:   []string{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.yTrue, tt.yPred)
			if (err != nil) != tt.wantErr {
				t.Errorf("Accuracy() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAccuracyDimensionErrorType(t *testing.T) {
	_, err := Accuracy([]string{"a", "b"}, []string{"a"})

	var dimErr *errors.DimensionError
	if !errors.As(err, &dimErr) {
		t.Fatalf("expected *DimensionError, got %T", err)
	}
	if dimErr.Expected != 2 || dimErr.Got != 1 {
		t.Errorf("unexpected dimensions: %+v", dimErr)
	}
}

func TestConfusionMatrix(t *testing.T) {
	yTrue := []string{"Yes", "No", "Yes", "Yes", "No"}
	yPred := []string{"Yes", "Yes", "Yes", "No", "No"}

	cm, labels, err := ConfusionMatrix(yTrue, yPred)
	if err != nil {
		t.Fatalf("ConfusionMatrix() error = %v", err)
	}

	if len(labels) != 2 || labels[0] != "No" || labels[1] != "Yes" {
		t.Fatalf("labels = %v, want [No Yes]", labels)
	}

	want := mat.NewDense(2, 2, []float64{
		1, 1, // true No
		1, 2, // true Yes
	})
	if !mat.Equal(cm, want) {
		t.Errorf("ConfusionMatrix() =\n%v\nwant\n%v", mat.Formatted(cm), mat.Formatted(want))
	}
}

func TestConfusionMatrixIncludesPredictedOnlyLabels(t *testing.T) {
	cm, labels, err := ConfusionMatrix([]string{"Yes"}, []string{"Maybe"})
	if err != nil {
		t.Fatalf("ConfusionMatrix() error = %v", err)
	}

	if len(labels) != 2 {
		t.Fatalf("labels = %v, want 2 labels", labels)
	}
	r, c := cm.Dims()
	if r != 2 || c != 2 {
		t.Errorf("shape = (%d, %d), want (2, 2)", r, c)
	}
	// labels are [Maybe Yes]: one true Yes predicted as Maybe
	if cm.At(1, 0) != 1 {
		t.Errorf("cm[Yes][Maybe] = %v, want 1", cm.At(1, 0))
	}
}

func TestConfusionMatrixErrors(t *testing.T) {
	if _, _, err := ConfusionMatrix(nil, nil); err == nil {
		t.Error("expected error for empty input")
	}
	if _, _, err := ConfusionMatrix([]string{"a"}, []string{"a", "b"}); err == nil {
		t.Error("expected error for mismatched lengths")
	}
}
