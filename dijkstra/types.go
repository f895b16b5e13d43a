// Package dijkstra configuration options and sentinel errors for the SPF
// engine.
package dijkstra

import "errors"

// Sentinel errors returned by the SPF engine.
var (
	// ErrEmptySource indicates that the source node ID is empty.
	ErrEmptySource = errors.New("dijkstra: source node ID is empty")

	// ErrEmptyDestination indicates that the destination node ID is empty.
	ErrEmptyDestination = errors.New("dijkstra: destination node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to ShortestPath.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrNodeNotFound indicates that the source or destination node does not
	// exist in the provided graph.
	ErrNodeNotFound = errors.New("dijkstra: endpoint node not found in graph")

	// ErrSameEndpoints indicates that source and destination are the same
	// node. The query is trivial (distance 0, path of length 1) and callers
	// are expected to reject it before invoking the engine.
	ErrSameEndpoints = errors.New("dijkstra: source equals destination")

	// ErrNegativeWeight indicates that a negative link weight was detected.
	// SPF requires non-negative weights; route such topologies through the
	// bellmanford engine instead.
	ErrNegativeWeight = errors.New("dijkstra: negative link weight encountered")
)

// Options configures the behavior of a single ShortestPath call.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// Destination – queried node ID (must be non-empty, present, ≠ Source).
// EarlyExit   – stop as soon as the destination is finalized (default true).
type Options struct {
	Source      string // The ID of the source node
	Destination string // The ID of the queried destination node
	EarlyExit   bool   // Whether to stop once the destination is finalized
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

// WithoutEarlyExit disables the destination-reached shortcut so the engine
// finalizes every reachable node. Use this when the full routing table
// matters more than the single queried path.
func WithoutEarlyExit() Option {
	return func(o *Options) {
		o.EarlyExit = false
	}
}

// DefaultOptions returns an Options struct initialized with defaults for the
// given endpoints. Use as a starting point for functional overrides.
//
// Defaults:
//   - Source, Destination: <as passed> (validated in ShortestPath).
//   - EarlyExit:           true (stop once the destination is finalized).
func DefaultOptions(source, destination string) Options {
	return Options{
		Source:      source,
		Destination: destination,
		EarlyExit:   true,
	}
}
