// Package bgp candidate types, attribute sources, configuration options and
// sentinel errors for the policy routing engine.
package bgp

import (
	"errors"
	"math/rand"
)

// Sentinel errors returned by the policy engine.
var (
	// ErrEmptySource indicates that the source node ID is empty.
	ErrEmptySource = errors.New("bgp: source node ID is empty")

	// ErrEmptyDestination indicates that the destination node ID is empty.
	ErrEmptyDestination = errors.New("bgp: destination node ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to SelectPath.
	ErrNilGraph = errors.New("bgp: graph is nil")

	// ErrNodeNotFound indicates that the source or destination node does not
	// exist in the provided graph.
	ErrNodeNotFound = errors.New("bgp: endpoint node not found in graph")

	// ErrSameEndpoints indicates that source and destination are the same
	// node; callers are expected to filter out the trivial query.
	ErrSameEndpoints = errors.New("bgp: source equals destination")

	// ErrBadMaxDepth indicates a non-positive enumeration depth bound.
	ErrBadMaxDepth = errors.New("bgp: max depth must be positive")
)

// Attribute ranges for the default seeded source.
const (
	// DefaultMaxDepth bounds candidate enumeration at 10 hops.
	DefaultMaxDepth = 10

	localPrefFloor = 100 // lowest simulated local-preference
	localPrefSpan  = 100 // local-preference drawn from [100, 199]
	medSpan        = 50  // MED drawn from [0, 49]
)

// Candidate is one enumerated path with its election attributes. Candidates
// are transient: constructed per query, consumed by the election, discarded.
type Candidate struct {
	// Path is the ordered node sequence from source to destination.
	Path []string

	// Cost is the aggregate link weight along Path (topology-derived).
	Cost int64

	// LocalPref is the simulated local-preference (higher wins).
	LocalPref int

	// ASPathLen is the hop count: len(Path) − 1 (topology-derived).
	ASPathLen int

	// MED is the simulated multi-exit discriminator (lower wins).
	MED int

	// IGPCost is the cost to reach the next-hop AS; in this simplified model
	// it duplicates Cost.
	IGPCost int64
}

// AttributeSource supplies the simulated policy attributes for one candidate
// path. Implementations decide how local-preference and MED are drawn; the
// engine never derives them from topology.
type AttributeSource interface {
	// Attributes returns (localPref, med) for the given path and its
	// aggregate link-weight cost.
	Attributes(path []string, cost int64) (localPref, med int)
}

// AttributeFunc adapts a plain function to the AttributeSource interface.
type AttributeFunc func(path []string, cost int64) (localPref, med int)

// Attributes implements AttributeSource.
func (f AttributeFunc) Attributes(path []string, cost int64) (int, int) {
	return f(path, cost)
}

// seededSource draws attributes from a private PRNG, so runs with equal seeds
// elect identical winners. Not safe for concurrent use.
type seededSource struct {
	rng *rand.Rand
}

// NewSeededSource returns the default AttributeSource: local-preference
// uniform in [100,199], MED uniform in [0,49], driven by the given seed.
func NewSeededSource(seed int64) AttributeSource {
	return &seededSource{rng: rand.New(rand.NewSource(seed))}
}

// Attributes implements AttributeSource.
func (s *seededSource) Attributes(_ []string, _ int64) (int, int) {
	return localPrefFloor + s.rng.Intn(localPrefSpan), s.rng.Intn(medSpan)
}

// Options configures the behavior of a single SelectPath call.
//
// Source      – starting node ID (must be non-empty and present in the graph).
// Destination – queried node ID (must be non-empty, present, ≠ Source).
// MaxDepth    – hop bound for candidate enumeration (default 10).
// Attributes  – source of simulated policy attributes (default: seeded PRNG).
type Options struct {
	Source      string          // The ID of the source node
	Destination string          // The ID of the queried destination node
	MaxDepth    int             // Enumeration hop bound
	Attributes  AttributeSource // Simulated attribute supplier
}

// Option represents a functional option for configuring SelectPath.
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

// WithMaxDepth overrides the enumeration hop bound.
// Must be positive; zero or negative panics with ErrBadMaxDepth.
func WithMaxDepth(depth int) Option {
	if depth <= 0 {
		panic(ErrBadMaxDepth.Error())
	}

	return func(o *Options) {
		o.MaxDepth = depth
	}
}

// WithAttributeSource injects a deterministic (or otherwise customized)
// policy-attribute supplier. Tests use this to pin elections.
func WithAttributeSource(src AttributeSource) Option {
	return func(o *Options) {
		o.Attributes = src
	}
}

// DefaultOptions returns an Options struct with the default depth bound and a
// time-seeded attribute source placeholder (resolved in SelectPath so each
// call without an injected source still varies).
func DefaultOptions(source, destination string) Options {
	return Options{
		Source:      source,
		Destination: destination,
		MaxDepth:    DefaultMaxDepth,
		Attributes:  nil, // resolved to a time-seeded source at call time
	}
}
