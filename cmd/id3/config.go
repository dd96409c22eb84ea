package main

import (
	"os"

	"github.com/YuminosukeSato/id3/pkg/errors"
	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v2"
)

// fileConfig is the layout of the file passed with --config. Flags given on
// the command line take precedence over its values.
type fileConfig struct {
	Target        string   `yaml:"target"`
	Features      []string `yaml:"features"`
	FallbackLabel string   `yaml:"fallback_label"`
	LogLevel      string   `yaml:"log_level"`
}

func readConfigFile(path string) (*fileConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config file %s", path)
	}
	fc := &fileConfig{}
	if err := yaml.UnmarshalStrict(raw, fc); err != nil {
		return nil, errors.Wrapf(err, "parsing config file %s", path)
	}
	return fc, nil
}

func (rcc *rootCmdConfig) applyConfigFile(cmd *cobra.Command) error {
	if rcc.configFile == "" {
		return nil
	}
	fc, err := readConfigFile(rcc.configFile)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if fc.Target != "" && !flags.Changed("target") {
		rcc.target = fc.Target
	}
	if len(fc.Features) > 0 && !flags.Changed("features") {
		rcc.features = fc.Features
	}
	if fc.FallbackLabel != "" && !flags.Changed("fallback") {
		rcc.fallback = fc.FallbackLabel
	}
	if fc.LogLevel != "" && !flags.Changed("log-level") {
		rcc.logLevel = fc.LogLevel
	}
	return nil
}
