// SPDX-License-Identifier: MIT
// Package: routesim/telemetry
//
// Package telemetry wraps the routing engines with structured logging and
// Prometheus metrics without the engines knowing about either.
//
// Engine is the common shape all three engines reduce to; Dijkstra,
// BellmanFord and BGP adapt the concrete packages. Runner executes any
// Engine, logs one event per query (zerolog, engine/source/destination/
// cost/elapsed fields) and maintains two metric families:
//
//   - routesim_queries_total{engine,outcome} — counter
//   - routesim_query_duration_seconds{engine} — histogram
//
// Metrics register on the prometheus.Registerer handed to NewRunner, so
// tests and embedders can use private registries.
package telemetry
