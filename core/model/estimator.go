package model

import "github.com/YuminosukeSato/id3/dataset"

// Fitter は学習可能なモデルのインターフェース
type Fitter interface {
	// Fit はモデルを訓練データで学習させる
	Fit(d dataset.Dataset) error
}

// Predictor は予測可能なモデルのインターフェース
type Predictor interface {
	// Predict は各インスタンスのラベルを予測する
	Predict(instances dataset.Dataset) ([]string, error)
}

// Scorer is the interface for models that can compute a score.
type Scorer interface {
	// Score returns the accuracy of the predictions on d.
	Score(d dataset.Dataset) (float64, error)
}

// Classifier combines interfaces for classification models.
type Classifier interface {
	Fitter
	Predictor
	Scorer

	// Classes returns the distinct target values seen during fitting.
	Classes() []string
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}

// ParameterSetter is the interface for models that allow parameter modification.
type ParameterSetter interface {
	// SetParams sets the model's hyperparameters.
	SetParams(params map[string]interface{}) error
}
