// Package bellmanford configuration options and sentinel errors for the
// distance-vector engine.
package bellmanford

import "errors"

// Sentinel errors returned by the distance-vector engine.
var (
	// ErrEmptySource indicates that the source node ID is empty.
	ErrEmptySource = errors.New("bellmanford: source node ID is empty")

	// ErrEmptyDestination indicates that the destination node ID is empty.
	ErrEmptyDestination = errors.New("bellmanford: destination node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("bellmanford: graph is nil")

	// ErrNodeNotFound indicates that the source or destination node does not
	// exist in the provided graph.
	ErrNodeNotFound = errors.New("bellmanford: endpoint node not found in graph")

	// ErrSameEndpoints indicates that source and destination are the same
	// node; callers are expected to filter out the trivial query.
	ErrSameEndpoints = errors.New("bellmanford: source equals destination")

	// ErrNegativeCycle indicates that a negative-weight cycle is reachable
	// from the source. Distances through such a cycle decrease without bound,
	// so the query has no answer. This error always propagates to the caller.
	ErrNegativeCycle = errors.New("bellmanford: negative-weight cycle reachable from source")
)

// Options configures the behavior of a single ShortestPath call.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// Destination – queried node ID (must be non-empty, present, ≠ Source).
type Options struct {
	Source      string // The ID of the source node
	Destination string // The ID of the queried destination node
}

// Option represents a functional option for configuring ShortestPath.
type Option func(*Options)

// Source sets the starting node ID. Required.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// Destination sets the queried destination node ID. Required.
func Destination(id string) Option {
	return func(o *Options) {
		o.Destination = id
	}
}

// DefaultOptions returns an Options struct for the given endpoints.
func DefaultOptions(source, destination string) Options {
	return Options{
		Source:      source,
		Destination: destination,
	}
}
