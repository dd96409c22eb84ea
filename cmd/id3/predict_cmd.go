package main

import (
	"fmt"
	"strings"

	"github.com/YuminosukeSato/id3/dataset"
	"github.com/YuminosukeSato/id3/pkg/errors"
	"github.com/spf13/cobra"
)

type predictCmdConfig struct {
	*rootCmdConfig
	dataInput      string
	instancesInput string
}

func predictCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &predictCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "predict [attribute=value,...]...",
		Short: "Classify examples with a tree induced from a training set",
		Long: `Induce a tree from the training set and use it to classify examples given
as arguments, one per argument as comma-separated attribute=value pairs, or
read from a file of examples. One label is printed per example.`,
		Example: `  id3 predict -i sell.csv -c Sell Outlook=Sunny,Temperature=Mild`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			instances, err := config.instances(args)
			if err != nil {
				return err
			}
			clf, err := config.train(config.dataInput)
			if err != nil {
				return err
			}
			preds, err := clf.Predict(instances)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, p := range preds {
				fmt.Fprintln(out, p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the training examples (defaults to STDIN, interpreted as CSV)")
	cmd.Flags().StringVarP(&(config.instancesInput), "instances", "e", "", "path to a CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with examples to classify")
	return cmd
}

func (pcc *predictCmdConfig) Validate() error {
	if err := pcc.rootCmdConfig.Validate(); err != nil {
		return err
	}
	if pcc.instancesInput == "" && pcc.dataInput == "" {
		return fmt.Errorf("the input flag is required when no instances file is given, STDIN cannot hold both")
	}
	return nil
}

func (pcc *predictCmdConfig) instances(args []string) (dataset.Dataset, error) {
	var instances dataset.Dataset
	if pcc.instancesInput != "" {
		d, err := pcc.loadDataset(pcc.instancesInput)
		if err != nil {
			return nil, errors.Wrap(err, "reading instances")
		}
		instances = append(instances, d...)
	}
	for _, arg := range args {
		instance, err := parseInstance(arg)
		if err != nil {
			return nil, err
		}
		instances = append(instances, instance)
	}
	if len(instances) == 0 {
		return nil, fmt.Errorf("no instances to classify were given")
	}
	return instances, nil
}

// parseInstance parses "a=1,b=2" into an example. Whitespace around names and
// values is trimmed.
func parseInstance(s string) (dataset.Example, error) {
	instance := dataset.Example{}
	for _, pair := range strings.Split(s, ",") {
		if strings.TrimSpace(pair) == "" {
			continue
		}
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, errors.NewValidationError("instance", "expected attribute=value pairs", s)
		}
		instance[name] = strings.TrimSpace(value)
	}
	return instance, nil
}
