// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/constellation/evolution"
	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/report"
	"github.com/katalvlaran/constellation/score"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...)
}

func section(w io.Writer, title string, t fmt.Stringer) error {
	_, err := fmt.Fprintf(w, "%s\n%s\n\n", titleStyle.Render(title), t.String())
	return err
}

func renderKV(w io.Writer, rows [][2]string) error {
	t := newTable("Metric", "Value")
	for _, r := range rows {
		t.Row(r[0], r[1])
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderItems(w io.Writer, title, column string, items []score.Item) error {
	t := newTable("#", "Name", column)
	for i, it := range items {
		t.Row(fmt.Sprint(i+1), it.Name, fmt.Sprintf("%.3f", it.Value))
	}
	return section(w, title, t)
}

// renderTies lists ranked pair keys as two name columns.
func renderTies(w io.Writer, ties []score.Item) error {
	t := newTable("#", "Person", "Person", "Strength")
	for i, it := range ties {
		a, b, ok := network.SplitPairKey(it.Name)
		if !ok {
			a = it.Name
		}
		t.Row(fmt.Sprint(i+1), a, b, fmt.Sprintf("%.3f", it.Value))
	}
	return section(w, "Strongest ties", t)
}

func renderReport(w io.Writer, rep *report.Report) error {
	head := newTable("Report", "Nodes", "Edges", "Communities", "Modularity")
	head.Row(rep.ID, fmt.Sprint(rep.Nodes), fmt.Sprint(rep.Edges),
		fmt.Sprint(len(rep.Communities)), fmt.Sprintf("%.4f", rep.Modularity))
	if err := section(w, "Constellation", head); err != nil {
		return err
	}

	if err := renderItems(w, "Influencers", "PageRank", rep.Rankings.Influencers); err != nil {
		return err
	}
	if err := renderItems(w, "Bridges", "Betweenness", rep.Rankings.Bridges); err != nil {
		return err
	}

	if err := renderTies(w, rep.Rankings.Ties); err != nil {
		return err
	}

	grav := newTable("#", "Name", "Gravity", "Percentile")
	for i, name := range rep.Rankings.Gravity {
		s := rep.Gravity[name]
		grav.Row(fmt.Sprint(i+1), name, fmt.Sprintf("%.3f", s.SocialGravity), fmt.Sprint(s.Percentile))
	}
	if err := section(w, "Social gravity", grav); err != nil {
		return err
	}

	h := rep.Health
	return renderKV(w, [][2]string{
		{"Density", fmt.Sprintf("%.3f", h.Density)},
		{"Giant component", fmt.Sprint(h.GiantComponentSize)},
		{"Average path length", fmt.Sprintf("%.3f", h.AvgPathLength)},
		{"Active ratio", fmt.Sprintf("%.3f", h.ActiveRatio)},
		{"Churn rate", fmt.Sprintf("%.3f", h.ChurnRate)},
	})
}

func renderEvolution(w io.Writer, years []evolution.Year) error {
	t := newTable("Year", "Active", "New", "Lost", "Age", "Diversity")
	for _, y := range years {
		t.Row(fmt.Sprint(y.Year), fmt.Sprint(y.Active), fmt.Sprint(y.New), fmt.Sprint(y.Lost),
			fmt.Sprintf("%.2f", y.NetworkAge), fmt.Sprintf("%.3f", y.DiversityIndex))
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderCommunities(w io.Writer, doc communitiesDoc) error {
	t := newTable("ID", "Color", "Size", "Members")
	for _, c := range doc.Communities {
		swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(c.Color)).Render(c.Color)
		t.Row(fmt.Sprint(c.ID), swatch, fmt.Sprint(len(c.Members)), strings.Join(c.Members, ", "))
	}
	title := fmt.Sprintf("Modularity %.4f after %d passes", doc.Modularity, doc.Passes)
	return section(w, title, t)
}
