package errors

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMissingKeyError(t *testing.T) {
	err := NewMissingKeyError("Outlook", 3)

	// 基本的なエラーメッセージの確認
	want := `id3: example 3 has no attribute "Outlook"`
	assert.Equal(t, want, err.Error())

	// スタックトレースの存在確認
	formatted := fmt.Sprintf("%+v", err)
	assert.True(t, strings.Contains(formatted, "errors_test.go"), "Expected stack trace to contain test file name")

	var mkErr *MissingKeyError
	require.True(t, As(err, &mkErr), "Error should be castable to *MissingKeyError")
	assert.Equal(t, "Outlook", mkErr.Key)
	assert.Equal(t, 3, mkErr.Row)
}

func TestNewDimensionError(t *testing.T) {
	err := NewDimensionError("Accuracy", 10, 9, 0)

	want := "id3: Accuracy: dimension mismatch on axis 0 (rows). Expected 10, got 9"
	assert.Equal(t, want, err.Error())

	var dimErr *DimensionError
	assert.True(t, As(err, &dimErr), "Error should be castable to *DimensionError")
}

func TestNewNotFittedError(t *testing.T) {
	err := NewNotFittedError("ID3Classifier", "Predict")

	want := "id3: ID3Classifier: this model is not fitted yet. Call Fit() before using Predict()"
	assert.Equal(t, want, err.Error())

	var notFittedErr *NotFittedError
	assert.True(t, As(err, &notFittedErr), "Error should be castable to *NotFittedError")
}

func TestNewValidationError(t *testing.T) {
	tests := []struct {
		name    string
		param   string
		reason  string
		value   interface{}
		wantMsg string
	}{
		{
			name:    "string param",
			param:   "target",
			reason:  "must not be empty",
			value:   "",
			wantMsg: "id3: validation failed for parameter 'target': must not be empty (got: )",
		},
		{
			name:    "wrong type",
			param:   "features",
			reason:  "must be []string",
			value:   42,
			wantMsg: "id3: validation failed for parameter 'features': must be []string (got: 42)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.param, tt.reason, tt.value)
			assert.Equal(t, tt.wantMsg, err.Error())

			var valErr *ValidationError
			assert.True(t, As(err, &valErr))
		})
	}
}

func TestErrEmptyDataWrapping(t *testing.T) {
	err := Wrap(ErrEmptyData, "Entropy")

	assert.True(t, Is(err, ErrEmptyData))
	assert.Contains(t, err.Error(), "Entropy")
	assert.False(t, Is(New("other"), ErrEmptyData))
}

func TestGetSafeDetails(t *testing.T) {
	err := NewValueError("BuildTree", "bad input")

	details := GetSafeDetails(err)
	require.NotEmpty(t, details)
	assert.Contains(t, details[0], "errors_test.go")
}

func TestWarnRouting(t *testing.T) {
	var mu sync.Mutex
	var got []error

	SetWarningHandler(func(w error) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, w)
	})
	defer SetWarningHandler(func(w error) {})

	w := NewUnseenValueWarning(2, 5, "Yes")
	Warn(w)

	require.Len(t, got, 1)
	assert.Equal(t, `2 of 5 instances reached a feature value unseen during training; predicted fallback label "Yes"`, got[0].Error())

	// zerolog関数が設定されている場合はそちらが優先される
	var zerologGot error
	SetZerologWarnFunc(func(w error) { zerologGot = w })
	defer SetZerologWarnFunc(nil)

	Warn(w)
	assert.Equal(t, w, zerologGot)
	assert.Len(t, got, 1)
}
