package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/YuminosukeSato/id3/metrics"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/mat"
)

type evaluateCmdConfig struct {
	*rootCmdConfig
	dataInput string
	testInput string
}

func evaluateCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &evaluateCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Test the performance of a tree",
		Long:  `Induce a tree from a training set and test its performance against a test set, printing its accuracy and confusion matrix`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			clf, err := config.train(config.dataInput)
			if err != nil {
				return err
			}
			testingSet, err := config.loadDataset(config.testInput)
			if err != nil {
				return errors.Wrap(err, "reading testing set")
			}
			yTrue, err := testingSet.Values(config.target)
			if err != nil {
				return err
			}
			yPred, err := clf.Predict(testingSet)
			if err != nil {
				return err
			}
			accuracy, err := metrics.Accuracy(yTrue, yPred)
			if err != nil {
				return err
			}
			cm, labels, err := metrics.ConfusionMatrix(yTrue, yPred)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%f accuracy over %d examples\n", accuracy, len(testingSet))
			return writeConfusionMatrix(out, cm, labels)
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the training examples (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.testInput), "test", "t", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the testing examples (required)")
	return cmd
}

func (ecc *evaluateCmdConfig) Validate() error {
	if err := ecc.rootCmdConfig.Validate(); err != nil {
		return err
	}
	if ecc.testInput == "" {
		return fmt.Errorf("required test flag was not set")
	}
	return nil
}

// writeConfusionMatrix prints cm with true labels as rows and predicted
// labels as columns.
func writeConfusionMatrix(w io.Writer, cm *mat.Dense, labels []string) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "true\\pred\t%s\t\n", strings.Join(labels, "\t"))
	for i, label := range labels {
		fmt.Fprintf(tw, "%s\t", label)
		for j := range labels {
			fmt.Fprintf(tw, "%v\t", cm.At(i, j))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}
