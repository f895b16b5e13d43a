// Package core provides the fundamental in-memory topology model shared by
// every routing engine: Node, Edge, and the Graph container with O(1)
// neighbor-weight lookup.
//
// Overview:
//
//   - A Graph is built once from a node list and an edge list (Build), or
//     incrementally via AddNode/AddEdge, and is then queried read-only by the
//     engines. Engines never mutate a Graph.
//   - Edges are undirected by default: adding A—B(w) makes B reachable from A
//     and A reachable from B at the same weight. A per-edge Directed override
//     exists for one-way links (needed, for example, to construct directed
//     negative-weight cycles for distance-vector testing).
//   - Node positions (X, Y) are carried for display-oriented callers and are
//     never consulted by any algorithm.
//
// Determinism:
//
//   - Nodes() returns IDs in lexicographic order.
//   - Edges() returns edges ordered by (From, To, ID).
//   - Neighbors(id) returns neighbors in lexicographic ID order.
//
// Every engine in this module iterates through these accessors, so identical
// inputs always produce identical distances, predecessors, and tables.
//
// Error handling (sentinel errors):
//
//   - ErrEmptyNodeID    – a node with an empty ID was supplied.
//   - ErrDuplicateNode  – a node ID was registered twice.
//   - ErrDuplicateEdge  – a second edge between the same endpoints.
//   - ErrSelfLoop       – an edge from a node to itself.
//   - ErrNegativeWeight – a negative weight without WithNegativeWeights().
//
// Thread safety:
//
//   - All mutations take a write lock; all queries take a read lock. Building
//     a Graph in one goroutine and querying it from several is safe.
//
// Validation boundary:
//
//   - AddEdge auto-registers unknown endpoints (with zero positions) rather
//     than rejecting them; catching dangling endpoints against an intended
//     node list is the topology package's job, upstream of the engines.
package core
