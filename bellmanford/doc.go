// Package bellmanford implements the distance-vector routing engine:
// Bellman–Ford relaxation with early convergence detection and explicit
// negative-cycle reporting.
//
// Overview:
//
//   - ShortestPath performs up to V−1 relaxation passes; each pass scans
//     every link in both traversable directions (undirected links count
//     twice) and lowers any distance that a cheaper route can improve.
//   - A pass that makes no update means the distances have converged and the
//     loop stops early.
//   - After the bounded passes, one additional full scan runs: if any link
//     can still be relaxed, a negative-weight cycle is reachable from the
//     source. That is fatal for the query and surfaces as ErrNegativeCycle —
//     never a silently truncated distance.
//
// Unlike the SPF engine, this one tolerates negative link weights (build the
// graph with core.WithNegativeWeights()); only negative cycles are an error.
//
// Result semantics match package routing exactly; Iterations counts the
// relaxation passes actually performed.
//
// Performance and complexity:
//
//   - Time:  O(V · E) worst case; convergence usually stops far earlier.
//   - Space: O(V) for the distance and predecessor maps.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyDestination / ErrNilGraph / ErrNodeNotFound /
//     ErrSameEndpoints: same validation ladder as the SPF engine.
//   - ErrNegativeCycle: a negative-weight cycle reachable from the source.
//
// Thread safety:
//
//   - ShortestPath only reads the graph; concurrent queries over an
//     unchanging *core.Graph are safe.
package bellmanford
