// SPDX-License-Identifier: MIT

// Package cli wires the constellation command tree: configuration,
// logging, dataset loading and output formatting around the analytics
// packages.
package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/internal/config"
	"github.com/katalvlaran/constellation/internal/dataset"
	"github.com/katalvlaran/constellation/report"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v   *viper.Viper
	cfg config.Config
	log *zap.Logger
}

// flagKeys maps persistent flag names to config keys.
var flagKeys = map[string]string{
	"data-dir":     "data_dir",
	"format":       "format",
	"current-year": "current_year",
	"start-year":   "start_year",
	"seed":         "seed",
	"sample-size":  "sample_size",
	"damping":      "damping",
	"iterations":   "iterations",
	"verbose":      "verbose",
	"top":          "top",
}

// NewRootCommand builds the command tree.
func NewRootCommand() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "constellation",
		Short:         "Social-graph analytics over a personal-history dataset",
		Long:          "Constellation ranks, clusters and tracks the people of a relationship network: PageRank, betweenness, communities, tie strength, network health and year-by-year evolution.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.log != nil {
				_ = a.log.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.String("config", "", "config file (default .constellation.yaml)")
	pf.String("data-dir", "data", "dataset directory")
	pf.String("format", "table", "output format: json, toml or table")
	pf.Int("current-year", 0, "reference year (default 2026)")
	pf.Int("start-year", 0, "first tracked year (default 2004)")
	pf.Int64("seed", 0, "path-length sampling seed (0 = fixed default)")
	pf.Int("sample-size", 0, "path-length sample sources (default 50)")
	pf.Float64("damping", 0, "PageRank damping (default 0.85)")
	pf.Int("iterations", 0, "PageRank iterations (default 100)")
	pf.BoolP("verbose", "v", false, "debug logging")

	root.AddCommand(
		newAnalyzeCommand(a),
		newPairCommand(a),
		newEvolutionCommand(a),
		newCommunitiesCommand(a),
		newHealthCommand(a),
		newGenerateCommand(a),
	)
	return root
}

// init resolves configuration and the logger before any subcommand runs.
// Only flags the user actually set override file and env values.
func (a *app) init(cmd *cobra.Command) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	a.v = config.New(cfgFile)

	var bindErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok && bindErr == nil {
			bindErr = a.v.BindPFlag(key, f)
		}
	})
	if bindErr != nil {
		return fmt.Errorf("bind flags: %w", bindErr)
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	log, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = log
	return nil
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return zc.Build()
}

func (a *app) load() (*dataset.Dataset, error) {
	ds, err := dataset.Load(a.cfg.DataDir)
	if err != nil {
		return nil, err
	}
	a.log.Debug("dataset loaded",
		zap.String("dir", a.cfg.DataDir),
		zap.Int("nodes", len(ds.Constellation.Nodes)),
		zap.Int("links", len(ds.Constellation.Links)),
		zap.Int("people", len(ds.People)))
	return ds, nil
}

// reportOptions translates the configuration into report.Run options.
func (a *app) reportOptions() []report.Option {
	return []report.Option{
		report.WithLogger(a.log),
		report.WithYears(a.cfg.StartYear, a.cfg.CurrentYear),
		report.WithSeed(a.cfg.Seed),
		report.WithSampleSize(a.cfg.SampleSize),
		report.WithTop(a.cfg.Top),
		report.WithPageRank(a.pageRankOptions()...),
	}
}

// write emits v in the configured machine format, or calls table for the
// table format.
func (a *app) write(w io.Writer, v any, table func(io.Writer) error) error {
	if a.cfg.Format == "table" {
		return table(w)
	}
	return report.Encode(w, v, a.cfg.Format)
}
