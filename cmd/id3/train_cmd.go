package main

import (
	"fmt"

	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"github.com/YuminosukeSato/id3/tree"
	"github.com/spf13/cobra"
)

type trainCmdConfig struct {
	*rootCmdConfig
	dataInput string
}

func trainCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &trainCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "train",
		Short: "Induce a tree from a set of examples",
		Long:  `Induce a decision tree from a set of examples, print it, and report its accuracy on the same examples`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			trainingSet, err := config.loadDataset(config.dataInput)
			if err != nil {
				return errors.Wrap(err, "reading training set")
			}
			clf, err := config.fit(trainingSet)
			if err != nil {
				return err
			}
			accuracy, err := clf.Score(trainingSet)
			if err != nil {
				return errors.Wrap(err, "scoring the tree")
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, clf)
			fmt.Fprintf(out, "depth %d, %d leaves, training accuracy %f\n", clf.GetDepth(), clf.GetNLeaves(), accuracy)
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the training examples (defaults to STDIN, interpreted as CSV)")
	return cmd
}

// fit induces a classifier from trainingSet with the configured target,
// features and fallback label.
func (rcc *rootCmdConfig) fit(trainingSet dataset.Dataset) (*tree.ID3Classifier, error) {
	clf := rcc.classifier()
	if err := clf.Fit(trainingSet); err != nil {
		return nil, errors.Wrap(err, "inducing the tree")
	}
	return clf, nil
}

// train loads the examples at input and fits a classifier on them.
func (rcc *rootCmdConfig) train(input string) (*tree.ID3Classifier, error) {
	trainingSet, err := rcc.loadDataset(input)
	if err != nil {
		return nil, errors.Wrap(err, "reading training set")
	}
	return rcc.fit(trainingSet)
}
