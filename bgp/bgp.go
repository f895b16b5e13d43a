// Package bgp best-path election and result assembly for the policy routing
// engine.
package bgp

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/routing"
)

// SelectPath enumerates candidate routes from Options.Source to
// Options.Destination, elects the best one by attribute precedence, and
// returns the uniform routing.Result.
//
// The winner seeds Distances/Predecessors for its own nodes only — BGP
// advertises a single best path, so nodes off that path stay at routing.Inf
// even when reachable. The Table is built per destination by re-running the
// enumerate-and-elect cycle toward every other node.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Destination must be non-empty (ErrEmptyDestination).
//  3. g must be non-nil (ErrNilGraph).
//  4. Source and Destination must differ (ErrSameEndpoints).
//  5. Both endpoints must exist in g (ErrNodeNotFound).
func SelectPath(g *core.Graph, opts ...Option) (*routing.Result, error) {
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

	// 6) Resolve the attribute source late so two default-configured calls
	//    draw different policy knobs, mirroring live policy churn.
	attrs := cfg.Attributes
	if attrs == nil {
		attrs = NewSeededSource(time.Now().UnixNano())
	}

	// 7) Elect the best path to the queried destination.
	iterations := 0
	winner, found := electToward(g, cfg.Source, cfg.Destination, cfg.MaxDepth, attrs, &iterations)

	// 8) Seed distances/predecessors from the winning path only.
	dist := make(map[string]int64, g.NodeCount())
	prev := make(map[string]string, g.NodeCount())
	for _, id := range g.Nodes() {
		dist[id] = routing.Inf
		prev[id] = ""
	}
	dist[cfg.Source] = 0
	path := []string{}
	if found {
		path = winner.Path
		var running int64
		for i := 1; i < len(path); i++ {
			if w, ok := g.Weight(path[i-1], path[i]); ok {
				running += w
			}
			dist[path[i]] = running
			prev[path[i]] = path[i-1]
		}
	}

	// 9) Build the table independently: one election per non-source node.
	costs := make(map[string]int64)
	paths := make(map[string][]string)
	for _, id := range g.Nodes() {
		if id == cfg.Source {
			continue
		}
		best, ok := electToward(g, cfg.Source, id, cfg.MaxDepth, attrs, &iterations)
		if !ok {
			continue
		}
		costs[id] = best.Cost
		paths[id] = best.Path
	}

	res := &routing.Result{
		Distances:    dist,
		Predecessors: prev,
		Path:         path,
		Table:        routing.TableFromPaths(costs, paths),
		Iterations:   iterations,
		Elapsed:      time.Since(start),
	}

	return res, nil
}

// electToward runs the full enumerate→attribute→elect cycle for one
// destination. iterations accumulates the number of candidates enumerated.
func electToward(g *core.Graph, source, dest string, maxDepth int, attrs AttributeSource, iterations *int) (Candidate, bool) {
	raw := EnumeratePaths(g, source, dest, maxDepth)
	*iterations += len(raw)
	if len(raw) == 0 {
		return Candidate{}, false
	}

	cands := make([]Candidate, 0, len(raw))
	for _, p := range raw {
		cost := pathCost(g, p)
		lp, med := attrs.Attributes(p, cost)
		cands = append(cands, Candidate{
			Path:      p,
			Cost:      cost,
			LocalPref: lp,
			ASPathLen: len(p) - 1,
			MED:       med,
			IGPCost:   cost,
		})
	}

	return Elect(cands), true
}

// Elect applies the best-path precedence to a non-empty candidate set and
// returns the winner. Each criterion filters the set to its best value and
// the election stops as soon as one candidate remains:
//
//  1. highest LocalPref,
//  2. shortest ASPathLen,
//  3. lowest MED,
//  4. lowest IGPCost,
//  5. lexicographically smallest node sequence (final deterministic rule).
func Elect(cands []Candidate) Candidate {
	remaining := cands

	// Criterion 1: highest local-preference.
	remaining = filterBest(remaining, func(a, b Candidate) bool { return a.LocalPref > b.LocalPref })
	if len(remaining) == 1 {
		return remaining[0]
	}

	// Criterion 2: shortest AS-path.
	remaining = filterBest(remaining, func(a, b Candidate) bool { return a.ASPathLen < b.ASPathLen })
	if len(remaining) == 1 {
		return remaining[0]
	}

	// Criterion 3: lowest MED.
	remaining = filterBest(remaining, func(a, b Candidate) bool { return a.MED < b.MED })
	if len(remaining) == 1 {
		return remaining[0]
	}

	// Criterion 4: lowest IGP cost.
	remaining = filterBest(remaining, func(a, b Candidate) bool { return a.IGPCost < b.IGPCost })
	if len(remaining) == 1 {
		return remaining[0]
	}

	// Final rule: pin the residual tie to the lexicographically smallest
	// node sequence so elections are reproducible.
	sort.Slice(remaining, func(i, j int) bool {
		return strings.Join(remaining[i].Path, "→") < strings.Join(remaining[j].Path, "→")
	})

	return remaining[0]
}

// filterBest keeps every candidate for which no other candidate is strictly
// better under the given ordering.
func filterBest(cands []Candidate, better func(a, b Candidate) bool) []Candidate {
	best := cands[0]
	for _, c := range cands[1:] {
		if better(c, best) {
			best = c
		}
	}

	out := cands[:0:0]
	for _, c := range cands {
		if !better(best, c) && !better(c, best) {
			out = append(out, c)
		}
	}

	return out
}
