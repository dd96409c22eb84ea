// Package id3 induces categorical decision trees with the ID3 algorithm and
// uses them to classify examples.
//
// The library works on labeled tabular data whose attributes all take a
// finite set of string values. At each node it splits on the feature with the
// highest information gain until every branch is pure or no features remain.
//
// # Features
//
// - Deterministic: ties between features and between labels always resolve
// the same way, so the same data yields the same tree
// - scikit-learn-like API: Fit, Predict and Score on ID3Classifier
// - Robust Error Handling: missing attributes and empty data are reported
// as structured errors with stack traces
// - Structured Logging: zerolog records for fitting and prediction
//
// # Installation
//
//	go get github.com/YuminosukeSato/id3
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/YuminosukeSato/id3/dataset"
//	    "github.com/YuminosukeSato/id3/tree"
//	)
//
//	func main() {
//	    d := dataset.Dataset{
//	        {"Outlook": "Sunny", "Temperature": "Hot", "Sell": "No"},
//	        {"Outlook": "Sunny", "Temperature": "Mild", "Sell": "Yes"},
//	        {"Outlook": "Rainy", "Temperature": "Cool", "Sell": "Yes"},
//	        {"Outlook": "Overcast", "Temperature": "Hot", "Sell": "Yes"},
//	        {"Outlook": "Rainy", "Temperature": "Mild", "Sell": "No"},
//	    }
//
//	    root, err := tree.BuildTree(d, []string{"Outlook", "Temperature"}, "Sell")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    fmt.Println(root)
//	    fmt.Println(tree.Predict(root, dataset.Example{"Outlook": "Sunny", "Temperature": "Mild"}))
//	}
//
// # Packages
//
//   - tree: Entropy, InformationGain, BuildTree, Predict and ID3Classifier
//   - dataset: Examples and loaders for CSV and SQL sources
//   - metrics: Accuracy and confusion matrix
//   - core/model: Estimator interfaces and fitted-state management
//   - core/parallel: Parallel processing utilities
//   - pkg/errors: Structured errors and warnings
//   - pkg/log: Structured logging
//
// The id3 command in cmd/id3 trains, evaluates and applies trees from the
// command line.
//
// # License
//
// id3 is released under the MIT License.
package id3
