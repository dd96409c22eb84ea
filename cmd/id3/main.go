package main

import (
	"context"
	"fmt"
	"os"

	"github.com/YuminosukeSato/id3/pkg/log"
	"github.com/YuminosukeSato/id3/tree"
	"github.com/spf13/cobra"
)

type rootCmdConfig struct {
	configFile string
	logLevel   string
	target     string
	features   []string
	fallback   string
	query      string
	ctx        context.Context
}

func main() {
	if err := cliParser().Execute(); err != nil {
		os.Exit(1)
	}
}

func cliParser() *cobra.Command {
	config := &rootCmdConfig{}
	rootCmd := &cobra.Command{
		Use:   "id3",
		Short: "id3 is a tool to induce categorical decision trees",
		Long:  `A tool to induce decision trees from categorical data with the ID3 algorithm, inspect them, and use them to classify examples`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.applyConfigFile(cmd); err != nil {
				return err
			}
			return log.SetupLogger(cmd.ErrOrStderr(), config.logLevel)
		},
		SilenceUsage: true,
	}
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&(config.configFile), "config", "", "path to a YAML file providing defaults for target, features, fallback_label and log_level")
	flags.StringVar(&(config.logLevel), "log-level", "warn", "minimum level of the JSON log records written to STDERR: debug, info, warn or error")
	flags.StringVarP(&(config.target), "target", "c", "", "name of the attribute the tree should predict (required)")
	flags.StringSliceVarP(&(config.features), "features", "f", nil, "comma-separated attributes to split on, in tie-break order (defaults to every attribute but the target, sorted)")
	flags.StringVar(&(config.fallback), "fallback", tree.DefaultFallback, "label predicted for feature values not seen during training")
	flags.StringVarP(&(config.query), "query", "q", "SELECT * FROM examples", "query selecting the examples when reading from an SQLite3 or PostgreSQL source")
	rootCmd.AddCommand(
		versionCmd(),
		trainCmd(config),
		predictCmd(config),
		evaluateCmd(config),
		gainsCmd(config),
	)
	return rootCmd
}

func (rcc *rootCmdConfig) Validate() error {
	if rcc.target == "" {
		return fmt.Errorf("required target flag was not set")
	}
	return nil
}

func (rcc *rootCmdConfig) Context() context.Context {
	if rcc.ctx == nil {
		rcc.ctx = context.Background()
	}
	return rcc.ctx
}

func (rcc *rootCmdConfig) classifier() *tree.ID3Classifier {
	return tree.NewID3Classifier(
		tree.WithTarget(rcc.target),
		tree.WithFeatures(rcc.features...),
		tree.WithFallbackLabel(rcc.fallback),
		tree.WithLogger(log.GetLoggerWithName("cli")),
	)
}
