// Package routing defines the uniform result shape produced by every engine
// in routesim, and builds per-destination routing tables from distance and
// predecessor maps.
//
// Overview:
//
//   - Result is what dijkstra.ShortestPath, bellmanford.ShortestPath and
//     bgp.SelectPath all return: distances, predecessors, the best path to the
//     queried destination, a routing table, an iteration counter and the
//     measured elapsed time. Because the shape is identical, callers can swap
//     engines freely.
//   - Unreachable nodes carry distance Inf (math.MaxInt64) and an empty
//     predecessor. They are omitted from routing tables entirely — an
//     unreachable destination is not an error.
//   - BuildTable walks predecessor chains backward from every reachable node
//     to emit one TableEntry per destination: next hop, total cost, hop count
//     and the full ordered path.
//
// Determinism:
//
//   - Table rows are sorted by destination ID, so identical inputs always
//     produce byte-identical tables.
//
// Complexity:
//
//   - ReconstructPath: O(path length) per call.
//   - BuildTable: O(V · P) where P is the longest path length.
package routing
