// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/relation"
)

func newPairCommand(a *app) *cobra.Command {
	var maxHops int
	cmd := &cobra.Command{
		Use:   "pair <nameA> <nameB>",
		Short: "Analyze the relationship between two people",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ds, err := a.load()
			if err != nil {
				return err
			}
			g := ds.Graph()
			pr := centrality.PageRank(g, a.pageRankOptions()...)
			p := relation.AnalyzePair(args[0], args[1], g, ds.CoOccurrences, ds.People, pr,
				relation.WithYears(a.cfg.StartYear, a.cfg.CurrentYear),
				relation.WithMaxHops(maxHops))

			return a.write(cmd.OutOrStdout(), p, func(w io.Writer) error {
				return renderKV(w, [][2]string{
					{"Pair", p.A + " / " + p.B},
					{"Relationship", string(p.Relationship)},
					{"Strength", fmt.Sprintf("%.3f", p.StrengthScore)},
					{"Shared years", fmt.Sprint(p.SharedYears)},
					{"Co-occurrences", fmt.Sprint(p.CoOccurrences)},
					{"Mutual friends", strings.Join(p.MutualFriends, ", ")},
					{"Combined PageRank", fmt.Sprintf("%.3f", p.CombinedPageRank)},
					{"Path", strings.Join(p.Path, " → ")},
					{"Hops", hopsText(p.Hops)},
					{"Detour", hopsText(p.Detour)},
				})
			})
		},
	}
	cmd.Flags().IntVar(&maxHops, "max-hops", 0, "bound the path search (0 = whole component)")
	return cmd
}

func hopsText(n int) string {
	if n == relation.Unreachable {
		return "unreachable"
	}
	return fmt.Sprint(n)
}
