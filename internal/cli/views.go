// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/constellation/community"
	"github.com/katalvlaran/constellation/evolution"
	"github.com/katalvlaran/constellation/health"
	"github.com/katalvlaran/constellation/report"
)

// yearsDoc wraps the evolution so TOML gets a root table.
type yearsDoc struct {
	Years []evolution.Year `json:"years" toml:"years"`
}

func newEvolutionCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "evolution",
		Short: "Print the year-by-year evolution of the network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			years := evolution.Track(ds.Graph(), ds.People,
				evolution.WithStartYear(a.cfg.StartYear),
				evolution.WithCurrentYear(a.cfg.CurrentYear))

			return a.write(cmd.OutOrStdout(), yearsDoc{Years: years}, func(w io.Writer) error {
				return renderEvolution(w, years)
			})
		},
	}
}

// communitiesDoc is the machine-readable community listing.
type communitiesDoc struct {
	Modularity  float64            `json:"modularity" toml:"modularity"`
	Passes      int                `json:"passes" toml:"passes"`
	Communities []report.Community `json:"communities" toml:"communities"`
}

func newCommunitiesCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "communities",
		Short: "Detect communities by greedy modularity optimization",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			res := community.Detect(ds.Graph())

			doc := communitiesDoc{
				Modularity:  res.Modularity,
				Passes:      res.Passes,
				Communities: report.Summarize(res),
			}

			return a.write(cmd.OutOrStdout(), doc, func(w io.Writer) error {
				return renderCommunities(w, doc)
			})
		},
	}
}

func newHealthCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Summarize connectivity and activity of the network",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			snap := health.Analyze(ds.Graph(), ds.People,
				health.WithCurrentYear(a.cfg.CurrentYear),
				health.WithSampleSize(a.cfg.SampleSize),
				health.WithSeed(a.cfg.Seed))

			return a.write(cmd.OutOrStdout(), snap, func(w io.Writer) error {
				return renderKV(w, [][2]string{
					{"Average degree", fmt.Sprintf("%.3f", snap.AvgDegree)},
					{"Density", fmt.Sprintf("%.3f", snap.Density)},
					{"Average clustering", fmt.Sprintf("%.3f", snap.AvgClusteringCoeff)},
					{"Giant component", fmt.Sprint(snap.GiantComponentSize)},
					{"Average path length", fmt.Sprintf("%.3f", snap.AvgPathLength)},
					{"Centralization", fmt.Sprintf("%.3f", snap.NetworkCentralization)},
					{"Active ratio", fmt.Sprintf("%.3f", snap.ActiveRatio)},
					{"Churn rate", fmt.Sprintf("%.3f", snap.ChurnRate)},
				})
			})
		},
	}
}
