// Package routesim is an in-memory routing-decision laboratory: it computes
// shortest and policy-preferred paths over weighted network topologies and
// derives per-destination routing tables.
//
// 🚀 What is routesim?
//
//	A small, thread-safe library that brings together three routing strategies:
//		• Link-state (SPF): Dijkstra's shortest-path-first over non-negative weights
//		• Distance-vector: Bellman–Ford relaxation with negative-cycle detection
//		• Policy routing: BGP-style multi-attribute best-path election
//
// ✨ Why choose routesim?
//
//   - Uniform results – every engine returns the same routing.Result shape,
//     so callers are interchangeable
//   - Deterministic – same topology, same source/destination, same answer;
//     policy attributes are injectable for reproducible elections
//   - Pure computation – no packet forwarding, no network I/O, no persistence
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/        — Node, Edge and Graph types with O(1) neighbor-weight lookup
//	routing/     — shared Result shape and the routing-table builder
//	dijkstra/    — SPF engine (heap-based, early exit at the destination)
//	bellmanford/ — distance-vector engine, ErrNegativeCycle on bad topologies
//	bgp/         — bounded all-paths enumeration + best-path election
//	topology/    — JSON/YAML documents, validation, deterministic generators
//	telemetry/   — timing, structured logs and Prometheus counters per query
//
// Quick ASCII example:
//
//	    A───4───B───3───C
//	    │       │       │
//	    2       1       2
//	    │       │       │
//	    D───5───F───3───E
//
//	From A to E the SPF and distance-vector engines agree: cost 8 via A→B→F→E.
//
// Dive into examples/ for runnable scenarios comparing all three engines on
// the same topology.
//
//	go get github.com/routelab/routesim
package routesim
