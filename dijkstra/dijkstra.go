// Package dijkstra implements the SPF routing engine over weighted
// topologies with non-negative link weights.
package dijkstra

import (
	"container/heap"
	"fmt"
	"time"

	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/routing"
)

// ShortestPath computes shortest routes from Options.Source and returns the
// uniform routing.Result: distances, predecessors, the source→destination
// path, and a routing table covering every finalized node.
//
// Preconditions and validation (in order):
//  1. Source must be non-empty (ErrEmptySource).
//  2. Destination must be non-empty (ErrEmptyDestination).
//  3. g must be non-nil (ErrNilGraph).
//  4. Source and Destination must differ (ErrSameEndpoints).
//  5. Both endpoints must exist in g (ErrNodeNotFound).
//  6. No edge in g may carry a negative weight (ErrNegativeWeight).
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
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

	// 6) Pre-scan all edges to detect negative weights. Fail fast.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	// 7) Initialize runner state and execute the main loop.
	r := newRunner(g, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	// 8) Assemble the uniform result: path to the destination plus the
	//    per-destination table derived from the predecessor tree.
	res := &routing.Result{
		Distances:    r.dist,
		Predecessors: r.prev,
		Path:         routing.ReconstructPath(r.prev, cfg.Source, cfg.Destination),
		Table:        routing.BuildTable(r.dist, r.prev, cfg.Source),
		Iterations:   r.iterations,
		Elapsed:      time.Since(start),
	}

	return res, nil
}

// runner holds the mutable state for a single SPF execution.
type runner struct {
	g          *core.Graph       // The input topology; read-only here.
	options    Options           // Resolved configuration for this query.
	dist       map[string]int64  // Node ID → current best distance from Source.
	prev       map[string]string // Node ID → predecessor on the shortest path.
	visited    map[string]bool   // Whether a node's distance is finalized.
	pq         nodePQ            // Min-heap for lazy decrease-key.
	iterations int               // Finalized extractions (outer-loop passes).
}

// newRunner allocates runner state sized to the graph.
func newRunner(g *core.Graph, cfg Options) *runner {
	v := g.NodeCount()

	return &runner{
		g:       g,
		options: cfg,
		dist:    make(map[string]int64, v),
		prev:    make(map[string]string, v),
		visited: make(map[string]bool, v),
		pq:      make(nodePQ, 0, v),
	}
}

// init sets dist[v]=Inf and prev[v]="" for all nodes, dist[source]=0, and
// pushes the source onto the heap.
func (r *runner) init() {
	// 1) Every node starts unreachable with no predecessor.
	for _, id := range r.g.Nodes() {
		r.dist[id] = routing.Inf
		r.prev[id] = ""
		r.visited[id] = false
	}

	// 2) Distance to the source is zero.
	r.dist[r.options.Source] = 0

	// 3) Seed the priority queue with the source.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{id: r.options.Source, dist: 0})
}

// process repeatedly extracts the closest unfinalized node and relaxes its
// links. Terminates when the heap drains (all reachable nodes finalized) or,
// with EarlyExit, as soon as the destination is finalized.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id

		// 2) Skip stale heap entries (already finalized at a lower cost).
		if r.visited[u] {
			continue
		}

		// 3) Finalize u. One outer-loop pass of real work.
		r.visited[u] = true
		r.iterations++

		// 4) Destination finalized: remaining nodes cannot shorten its path.
		if r.options.EarlyExit && u == r.options.Destination {
			break
		}

		// 5) Relax every link out of u.
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax attempts to improve the distance of every neighbor of u through u.
// Assumes dist[u] is final.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return fmt.Errorf("dijkstra: neighbors of %q: %w", u, err)
	}

	for _, nb := range neighbors {
		// Finalized neighbors can no longer improve.
		if r.visited[nb.ID] {
			continue
		}

		// Defense in depth: the pre-scan already rejected negatives.
		if nb.Weight < 0 {
			return fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, u, nb.ID, nb.Weight)
		}

		// Strictly-better check avoids pushing duplicates on equal cost,
		// which also preserves the first-found tie-break.
		newDist := r.dist[u] + nb.Weight
		if newDist >= r.dist[nb.ID] {
			continue
		}

		r.dist[nb.ID] = newDist
		r.prev[nb.ID] = u

		// Lazy decrease-key: push the improvement, ignore stale twins later.
		heap.Push(&r.pq, &nodeItem{id: nb.ID, dist: newDist})
	}

	return nil
}

// nodeItem is a (node, distance) pair stored in the priority queue.
type nodeItem struct {
	id   string // node ID
	dist int64  // distance from source at push time
}

// nodePQ is a min-heap of *nodeItem ordered by distance, then by node ID so
// that equal-cost extractions are deterministic across runs.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by distance ascending, breaking ties on node ID.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].id < pq[j].id
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap; x must be a *nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element from the heap.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
