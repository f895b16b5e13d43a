// Package dijkstra implements the link-state (SPF) routing engine: Dijkstra's
// shortest-path algorithm from a source node, with an early exit once the
// queried destination is finalized.
//
// Overview:
//
//   - ShortestPath computes minimum-cost routes from a single source over a
//     weighted topology with non-negative link weights, then derives the
//     source→destination path and a per-destination routing table.
//   - Vertices are expanded in increasing distance order via a min-heap with
//     the “lazy decrease-key” strategy: improved distances push duplicate
//     entries, and stale entries are skipped when popped.
//   - By default the search stops as soon as the destination's distance is
//     final — an optimization, not a correctness requirement. Disable it with
//     WithoutEarlyExit to obtain distances for every reachable node (the
//     routing table then covers the whole topology).
//
// Result semantics (uniform across engines, see package routing):
//
//   - Distances: node ID → cost from source, routing.Inf when unreachable.
//   - Predecessors: node ID → previous node on its shortest path, "" if none.
//   - Path: ordered source…destination sequence, empty when unreachable.
//   - Iterations: number of nodes finalized by the main loop.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V) — each node is finalized at most once, each
//     relaxation may push one heap entry, each heap operation costs O(log V).
//   - Space: O(V + E) for the maps and the worst-case heap.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyDestination: a required endpoint ID is empty.
//   - ErrNilGraph: a nil *core.Graph was passed.
//   - ErrNodeNotFound: source or destination is not in the graph.
//   - ErrSameEndpoints: source equals destination (a trivial query; callers
//     are expected to filter it out, and the engine refuses it explicitly).
//   - ErrNegativeWeight: a negative link weight was detected by the O(E)
//     pre-scan. Use the bellmanford engine for such topologies.
//
// Thread safety:
//
//   - ShortestPath only reads the graph. Concurrent queries over the same
//     *core.Graph are safe as long as no goroutine mutates it mid-flight.
package dijkstra
