// SPDX-License-Identifier: MIT

// Package report runs every analytics engine over one network and gathers
// the results into a single serializable Report.
//
// Engines that only read the graph run concurrently under an errgroup;
// person scores follow once the three centrality maps exist. Cancelling
// the context stops any stage that has not started yet.
package report

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/constellation/centrality"
	"github.com/katalvlaran/constellation/community"
	"github.com/katalvlaran/constellation/evolution"
	"github.com/katalvlaran/constellation/gravity"
	"github.com/katalvlaran/constellation/health"
	"github.com/katalvlaran/constellation/network"
	"github.com/katalvlaran/constellation/relation"
	"github.com/katalvlaran/constellation/score"
)

// Input is the data a Report is computed from.
type Input struct {
	Graph         *network.Graph
	CoOccurrences network.CoOccurrences
	People        network.People
}

// Community is one detected group.
type Community struct {
	ID      int      `json:"id" toml:"id"`
	Color   string   `json:"color" toml:"color"`
	Members []string `json:"members" toml:"members"`
}

// Rankings are the top-N views of the score maps.
type Rankings struct {
	Influencers []score.Item `json:"influencers" toml:"influencers"`
	Bridges     []score.Item `json:"bridges" toml:"bridges"`
	Gravity     []string     `json:"gravity" toml:"gravity"`
	// Ties holds the strongest edges keyed by network.PairKey.
	Ties []score.Item `json:"ties" toml:"ties"`
}

// Report is the full analysis of one network.
type Report struct {
	ID          string                       `json:"id" toml:"id"`
	GeneratedAt time.Time                    `json:"generated_at" toml:"generated_at"`
	Nodes       int                          `json:"nodes" toml:"nodes"`
	Edges       int                          `json:"edges" toml:"edges"`
	PageRank    score.Map                    `json:"pagerank" toml:"pagerank"`
	Betweenness score.Map                    `json:"betweenness" toml:"betweenness"`
	Clustering  score.Map                    `json:"clustering" toml:"clustering"`
	Modularity  float64                      `json:"modularity" toml:"modularity"`
	Communities []Community                  `json:"communities" toml:"communities"`
	Strengths   map[string]relation.Strength `json:"strengths" toml:"strengths"`
	Health      health.Snapshot              `json:"health" toml:"health"`
	Gravity     map[string]gravity.Score     `json:"gravity" toml:"gravity"`
	Evolution   []evolution.Year             `json:"evolution" toml:"evolution"`
	Rankings    Rankings                     `json:"rankings" toml:"rankings"`
}

// Run computes a Report for in.
func Run(ctx context.Context, in Input, opts ...Option) (*Report, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger
	g := in.Graph
	if g == nil {
		g = network.Build(nil, nil)
	}

	started := time.Now()
	rep := &Report{
		ID:          uuid.NewString(),
		GeneratedAt: started.UTC(),
		Nodes:       g.Len(),
		Edges:       g.EdgeCount(),
	}
	log.Info("analysis started",
		zap.String("report_id", rep.ID),
		zap.Int("nodes", rep.Nodes),
		zap.Int("edges", rep.Edges))

	var communities community.Result
	eg, egCtx := errgroup.WithContext(ctx)
	stage := func(name string, fn func()) {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			fn()
			log.Debug("stage finished", zap.String("stage", name), zap.Duration("took", time.Since(t0)))
			return nil
		})
	}

	stage("pagerank", func() { rep.PageRank = centrality.PageRank(g, o.pageRank...) })
	stage("betweenness", func() { rep.Betweenness = centrality.Betweenness(g) })
	stage("clustering", func() { rep.Clustering = centrality.Clustering(g) })
	stage("communities", func() { communities = community.Detect(g) })
	stage("strengths", func() {
		rep.Strengths = relation.Strengths(g, in.CoOccurrences, in.People, o.currentYear)
	})
	stage("health", func() {
		rep.Health = health.Analyze(g, in.People,
			health.WithCurrentYear(o.currentYear),
			health.WithSampleSize(o.sampleSize),
			health.WithSeed(o.seed))
	})
	stage("evolution", func() {
		rep.Evolution = evolution.Track(g, in.People,
			evolution.WithStartYear(o.startYear),
			evolution.WithCurrentYear(o.currentYear))
	})

	if err := eg.Wait(); err != nil {
		log.Warn("analysis aborted", zap.String("report_id", rep.ID), zap.Error(err))
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rep.Gravity = gravity.Compute(g, rep.PageRank, rep.Betweenness, rep.Clustering, in.People,
		gravity.WithYears(o.startYear, o.currentYear))
	rep.Modularity = communities.Modularity
	rep.Communities = Summarize(communities)
	rep.Rankings = Rankings{
		Influencers: rep.PageRank.Top(o.top),
		Bridges:     rep.Betweenness.Top(o.top),
		Gravity:     topNames(gravity.Ranked(rep.Gravity), o.top),
		Ties:        strongest(rep.Strengths).Top(o.top),
	}

	log.Info("analysis finished",
		zap.String("report_id", rep.ID),
		zap.Int("communities", len(rep.Communities)),
		zap.Duration("took", time.Since(started)))
	return rep, nil
}

// Summarize flattens a community.Result into Communities ordered by id.
func Summarize(res community.Result) []Community {
	members := res.Members()
	out := make([]Community, 0, len(members))
	for id, names := range members {
		out = append(out, Community{ID: id, Color: res.Colors[id], Members: names})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// strongest flattens edge strengths into a map ready for ranking.
func strongest(strengths map[string]relation.Strength) score.Map {
	m := make(score.Map, len(strengths))
	for key, s := range strengths {
		m[key] = s.Strength
	}
	return m
}

func topNames(names []string, limit int) []string {
	if limit > 0 && limit < len(names) {
		return names[:limit]
	}
	return names
}
