// SPDX-License-Identifier: MIT

package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/internal/dataset"
	"github.com/katalvlaran/constellation/report"
)

func newAnalyzeCommand(a *app) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run every engine and print the full report",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.analyze(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return a.watch(cmd.Context(), func() {
				if err := a.analyze(cmd.Context(), cmd.OutOrStdout()); err != nil {
					a.log.Error("re-analysis failed", zap.Error(err))
				}
			})
		},
	}
	cmd.Flags().Int("top", report.DefaultTop, "ranking length (0 = all)")
	cmd.Flags().BoolVar(&watch, "watch", false, "re-run when the dataset changes")
	return cmd
}

func (a *app) analyze(ctx context.Context, w io.Writer) error {
	ds, err := a.load()
	if err != nil {
		return err
	}
	rep, err := report.Run(ctx, input(ds), a.reportOptions()...)
	if err != nil {
		return err
	}
	return a.write(w, rep, func(w io.Writer) error { return renderReport(w, rep) })
}

func input(ds *dataset.Dataset) report.Input {
	return report.Input{
		Graph:         ds.Graph(),
		CoOccurrences: ds.CoOccurrences,
		People:        ds.People,
	}
}

// pageRankOptions passes the configured PageRank settings through as given.
func (a *app) pageRankOptions() []centrality.PageRankOption {
	return []centrality.PageRankOption{
		centrality.WithDamping(a.cfg.Damping),
		centrality.WithIterations(a.cfg.Iterations),
	}
}
