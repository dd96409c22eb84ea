package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/YuminosukeSato/id3/tree"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
)

type gainsCmdConfig struct {
	*rootCmdConfig
	dataInput string
}

func gainsCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &gainsCmdConfig{rootCmdConfig: rootConfig}
	cmd := &cobra.Command{
		Use:   "gains",
		Short: "Show the information gain of every feature",
		Long:  `Print the entropy of the target over a set of examples and the information gain of splitting it on each feature. The feature the root of the tree would split on is marked with *`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Validate(); err != nil {
				return err
			}
			d, err := config.loadDataset(config.dataInput)
			if err != nil {
				return err
			}
			features := config.features
			if len(features) == 0 {
				features = d.Features(config.target)
			}
			h, err := tree.Entropy(d, config.target)
			if err != nil {
				return err
			}
			gains, err := tree.Gains(d, features, config.target)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "entropy of %s over %d examples: %.4f\n", config.target, len(d), h)
			if len(features) == 0 {
				return nil
			}
			best := floats.MaxIdx(gains)
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "feature\tgain\t")
			for i, f := range features {
				mark := ""
				if i == best {
					mark = " *"
				}
				fmt.Fprintf(tw, "%s\t%.4f%s\t\n", f, gains[i], mark)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&(config.dataInput), "input", "i", "", "path to an input CSV (.csv) or SQLite3 (.db) file, or a PostgreSQL DB connection URL with the examples (defaults to STDIN, interpreted as CSV)")
	return cmd
}
