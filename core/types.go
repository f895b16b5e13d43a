// Package core defines the central Node, Edge and Graph types used by every
// routing engine in routesim.
//
// This file declares the value types, the Graph container, functional options,
// sentinel errors, and the NewGraph constructor. Query and mutation methods
// live in graph.go.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyNodeID indicates that a node with an empty ID was supplied.
	ErrEmptyNodeID = errors.New("core: node ID is empty")

	// ErrDuplicateNode indicates that a node ID was registered twice.
	ErrDuplicateNode = errors.New("core: duplicate node ID")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	ErrDuplicateEdge = errors.New("core: duplicate edge between endpoints")

	// ErrSelfLoop indicates an edge whose endpoints are the same node.
	ErrSelfLoop = errors.New("core: self-loop not allowed")

	// ErrNegativeWeight indicates a negative edge weight on a graph that was
	// not constructed with WithNegativeWeights().
	ErrNegativeWeight = errors.New("core: negative edge weight not allowed")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")
)

// Node represents a router (or any network element) in the topology.
//
// ID uniquely identifies this Node within its Graph. X and Y are display
// coordinates carried for visual callers; no algorithm reads them.
type Node struct {
	// ID is the unique identifier for this Node.
	ID string

	// X is the horizontal display coordinate (ignored by all engines).
	X float64

	// Y is the vertical display coordinate (ignored by all engines).
	Y float64
}

// Edge represents a weighted link between two nodes.
//
// Each Edge has an ID, endpoints From/To, an integer Weight, and a Directed
// flag. Directed defaults to false: the link is traversable in both directions
// at the same weight, which is the normal mode for this module.
type Edge struct {
	// ID uniquely identifies this edge in the Graph.
	ID string

	// From is one endpoint node ID (the origin for directed edges).
	From string

	// To is the other endpoint node ID.
	To string

	// Weight is the link cost. Non-negative by convention; negatives require
	// WithNegativeWeights() and only the distance-vector engine accepts them.
	Weight int64

	// Directed marks this edge as one-way From→To.
	Directed bool
}

// Neighbor pairs an adjacent node ID with the weight of the connecting link.
type Neighbor struct {
	// ID is the adjacent node's identifier.
	ID string

	// Weight is the cost of the link leading to ID.
	Weight int64
}

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithNegativeWeights permits negative edge weights. Only the distance-vector
// engine tolerates such graphs; the SPF engine rejects them at call time.
func WithNegativeWeights() GraphOption {
	return func(g *Graph) { g.allowNegative = true }
}

// EdgeOption configures properties of individual edges when added.
type EdgeOption func(*Edge)

// WithEdgeID overrides the generated edge ID. Useful when edges arrive from a
// topology document that already names them.
func WithEdgeID(id string) EdgeOption {
	return func(e *Edge) { e.ID = id }
}

// WithEdgeDirected makes the edge one-way From→To.
func WithEdgeDirected(directed bool) EdgeOption {
	return func(e *Edge) { e.Directed = directed }
}

// Graph is the in-memory topology container.
//
// It stores nodes and edges by ID and maintains an adjacency index
// (from → to → weight) so that engines get O(1) weight lookups and O(deg)
// neighbor scans. mu guards all three maps.
type Graph struct {
	mu sync.RWMutex // guards nodes, edges and adjacency

	// Configuration flags
	allowNegative bool // permit negative edge weights

	// Storage
	nextEdgeID uint64                      // edge ID generator for unnamed edges
	nodes      map[string]Node             // node ID → Node
	edges      map[string]Edge             // edge ID → Edge
	adjacency  map[string]map[string]int64 // from → to → weight
}

// NewGraph creates an empty Graph with the given options.
// By default the Graph is undirected-per-edge and rejects negative weights.
// Complexity: O(1)
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes:     make(map[string]Node),
		edges:     make(map[string]Edge),
		adjacency: make(map[string]map[string]int64),
	}
	// Apply options
	for _, opt := range opts {
		opt(g)
	}

	return g
}
