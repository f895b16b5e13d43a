// Package bellmanford implements distance-vector shortest paths via
// pass-bounded edge relaxation.
package bellmanford

import (
	"fmt"
	"time"

	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/routing"
)

// ShortestPath computes shortest routes from Options.Source by Bellman–Ford
// relaxation and returns the uniform routing.Result. Negative link weights
// are tolerated; a negative cycle reachable from the source yields
// ErrNegativeCycle.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Destination must be non-empty (ErrEmptyDestination).
//  3. g must be non-nil (ErrNilGraph).
//  4. Source and Destination must differ (ErrSameEndpoints).
//  5. Both endpoints must exist in g (ErrNodeNotFound).
//
// Complexity:
//
//   - Time:  O(V · E) worst case, with early stop on convergence.
//   - Space: O(V)
func ShortestPath(g *core.Graph, opts ...Option) (*routing.Result, error) {
	start := time.Now()

	// 1) Build and validate Options.
	cfg := DefaultOptions("", "")
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate endpoints are provided.
	if cfg.Source == "" {
		return nil, ErrEmptySource
	}
	if cfg.Destination == "" {
		return nil, ErrEmptyDestination
	}

	// 3) Validate graph is non-nil.
	if g == nil {
		return nil, ErrNilGraph
	}

	// 4) Reject the trivial query.
	if cfg.Source == cfg.Destination {
		return nil, fmt.Errorf("%w: %q", ErrSameEndpoints, cfg.Source)
	}

	// 5) Validate both endpoints exist.
	if !g.HasNode(cfg.Source) {
		return nil, fmt.Errorf("%w: source %q", ErrNodeNotFound, cfg.Source)
	}
	if !g.HasNode(cfg.Destination) {
		return nil, fmt.Errorf("%w: destination %q", ErrNodeNotFound, cfg.Destination)
	}

	// 6) Initialize distances and predecessors.
	nodes := g.Nodes()
	dist := make(map[string]int64, len(nodes))
	prev := make(map[string]string, len(nodes))
	for _, id := range nodes {
		dist[id] = routing.Inf
		prev[id] = ""
	}
	dist[cfg.Source] = 0

	// 7) Snapshot the edge list once; Edges() is already deterministic.
	edges := g.Edges()

	// 8) Up to V−1 relaxation passes, stopping early once a full pass makes
	//    no update (converged).
	iterations := 0
	for pass := 0; pass < len(nodes)-1; pass++ {
		iterations++
		if !relaxAll(edges, dist, prev) {
			break
		}
	}

	// 9) Detection pass: any remaining improvable link means a negative
	//    cycle is reachable from the source. Fatal, never clamped.
	if relaxAll(edges, dist, prev) {
		return nil, ErrNegativeCycle
	}

	// 10) Assemble the uniform result.
	res := &routing.Result{
		Distances:    dist,
		Predecessors: prev,
		Path:         routing.ReconstructPath(prev, cfg.Source, cfg.Destination),
		Table:        routing.BuildTable(dist, prev, cfg.Source),
		Iterations:   iterations,
		Elapsed:      time.Since(start),
	}

	return res, nil
}

// relaxAll performs one full pass over every link in both traversable
// directions and reports whether any distance improved.
func relaxAll(edges []core.Edge, dist map[string]int64, prev map[string]string) bool {
	updated := false
	for _, e := range edges {
		if relaxOne(e.From, e.To, e.Weight, dist, prev) {
			updated = true
		}
		// Undirected links relax in the mirror direction too.
		if !e.Directed {
			if relaxOne(e.To, e.From, e.Weight, dist, prev) {
				updated = true
			}
		}
	}

	return updated
}

// relaxOne lowers dist[to] if routing through from is cheaper. Nodes still at
// Inf cannot improve anyone (and the guard avoids Inf+w overflow).
func relaxOne(from, to string, w int64, dist map[string]int64, prev map[string]string) bool {
	if dist[from] == routing.Inf {
		return false
	}
	candidate := dist[from] + w
	if candidate >= dist[to] {
		return false
	}
	dist[to] = candidate
	prev[to] = from

	return true
}
