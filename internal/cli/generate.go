// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/katalvlaran/constellation/builder"
	"github.com/katalvlaran/constellation/internal/dataset"
)

func newGenerateCommand(a *app) *cobra.Command {
	var (
		shape string
		n     int
		p     float64
	)
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a synthetic constellation into the data directory",
		Long:  "Generate writes relationship_constellation.json for a synthetic shape (path, star, cycle, wheel, complete or random), for trying the other commands without a real dataset.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			con, err := builder.Shape(shape, n, p)
			if err != nil {
				return err
			}
			f, err := builder.Build([]builder.Option{
				builder.WithPrefixIDs("person-"),
				builder.WithSeed(a.cfg.Seed + 1),
			}, con)
			if err != nil {
				return err
			}

			c := dataset.Constellation{Nodes: f.Nodes, Links: f.Links}
			if err := dataset.WriteConstellation(a.cfg.DataDir, c); err != nil {
				return err
			}
			a.log.Info("constellation generated",
				zap.String("shape", shape),
				zap.Int("nodes", len(f.Nodes)),
				zap.Int("links", len(f.Links)))
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "wrote %d nodes and %d links to %s\n",
				len(f.Nodes), len(f.Links), a.cfg.DataDir)
			return err
		},
	}
	cmd.Flags().StringVar(&shape, "shape", "random", "path, star, cycle, wheel, complete or random")
	cmd.Flags().IntVar(&n, "n", 20, "number of people")
	cmd.Flags().Float64Var(&p, "p", 0.15, "link probability for the random shape")
	return cmd
}
