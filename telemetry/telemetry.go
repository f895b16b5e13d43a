// SPDX-License-Identifier: MIT
// Package: routesim/telemetry
//
// telemetry.go — Engine adapters and the instrumented Runner.
package telemetry

import (
	"errors"
	"io"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"

	"github.com/routelab/routesim/bellmanford"
	"github.com/routelab/routesim/bgp"
	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/dijkstra"
	"github.com/routelab/routesim/routing"
)

// ErrNilEngine indicates Run was called with a nil Engine.
var ErrNilEngine = errors.New("telemetry: nil engine")

// Outcome labels for the query counter.
const (
	outcomeOK    = "ok"
	outcomeError = "error"
)

// Engine is the common query shape every routing engine reduces to.
type Engine func(g *core.Graph, source, destination string) (*routing.Result, error)

// Dijkstra adapts the link-state engine. Extra options (WithoutEarlyExit)
// are forwarded after the endpoints.
func Dijkstra(opts ...dijkstra.Option) Engine {
	return func(g *core.Graph, source, destination string) (*routing.Result, error) {
		all := append([]dijkstra.Option{
			dijkstra.Source(source),
			dijkstra.Destination(destination),
		}, opts...)

		return dijkstra.ShortestPath(g, all...)
	}
}

// BellmanFord adapts the distance-vector engine.
func BellmanFord(opts ...bellmanford.Option) Engine {
	return func(g *core.Graph, source, destination string) (*routing.Result, error) {
		all := append([]bellmanford.Option{
			bellmanford.Source(source),
			bellmanford.Destination(destination),
		}, opts...)

		return bellmanford.ShortestPath(g, all...)
	}
}

// BGP adapts the policy engine. Pass bgp.WithAttributeSource here for
// reproducible elections.
func BGP(opts ...bgp.Option) Engine {
	return func(g *core.Graph, source, destination string) (*routing.Result, error) {
		all := append([]bgp.Option{
			bgp.Source(source),
			bgp.Destination(destination),
		}, opts...)

		return bgp.SelectPath(g, all...)
	}
}

// Runner executes engines with one structured log event and two metric
// samples per query. Safe for concurrent use; the zerolog.Logger and
// prometheus collectors are concurrency-safe by themselves.
type Runner struct {
	log       zerolog.Logger
	queries   *prometheus.CounterVec
	durations *prometheus.HistogramVec
}

// NewRunner builds a Runner writing logs to w and registering metrics on
// reg. Pass io.Discard and prometheus.NewRegistry() to silence both.
func NewRunner(w io.Writer, reg prometheus.Registerer) *Runner {
	return &Runner{
		log: zerolog.New(w).With().Timestamp().Logger(),
		queries: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "routesim_queries_total",
			Help: "Routing queries executed, by engine and outcome.",
		}, []string{"engine", "outcome"}),
		durations: promauto.With(reg).NewHistogramVec(prometheus.HistogramOpts{
			Name:    "routesim_query_duration_seconds",
			Help:    "Routing query latency, by engine.",
			Buckets: prometheus.DefBuckets,
		}, []string{"engine"}),
	}
}

// Run executes one query through eng, recording the outcome under the given
// engine name. The engine's error is returned unchanged.
func (r *Runner) Run(name string, eng Engine, g *core.Graph, source, destination string) (*routing.Result, error) {
	if eng == nil {
		return nil, ErrNilEngine
	}

	res, err := eng(g, source, destination)

	if err != nil {
		r.queries.WithLabelValues(name, outcomeError).Inc()
		r.log.Error().
			Err(err).
			Str("engine", name).
			Str("source", source).
			Str("destination", destination).
			Msg("routing query failed")

		return nil, err
	}

	r.queries.WithLabelValues(name, outcomeOK).Inc()
	r.durations.WithLabelValues(name).Observe(res.Elapsed.Seconds())
	r.log.Info().
		Str("engine", name).
		Str("source", source).
		Str("destination", destination).
		Int64("cost", res.Distances[destination]).
		Int("hops", len(res.Path)-1).
		Int("iterations", res.Iterations).
		Dur("elapsed", res.Elapsed).
		Msg("routing query served")

	return res, nil
}
