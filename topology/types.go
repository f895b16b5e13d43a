// SPDX-License-Identifier: MIT
// Package: routesim/topology
//
// types.go — Document schema, sentinel errors, and validation.
package topology

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/routelab/routesim/core"
)

// Sentinel errors for topology documents and generators.
var (
	// ErrInvalidDocument indicates the document failed struct-level
	// validation (missing IDs, empty node list, malformed fields).
	ErrInvalidDocument = errors.New("topology: invalid document")

	// ErrDuplicateNodeID indicates two nodes share an ID.
	ErrDuplicateNodeID = errors.New("topology: duplicate node ID")

	// ErrDanglingEdge indicates an edge endpoint that references no declared node.
	ErrDanglingEdge = errors.New("topology: edge references unknown node")

	// ErrSelfLoopEdge indicates an edge whose endpoints are the same node.
	ErrSelfLoopEdge = errors.New("topology: self-loop edge")

	// ErrNegativeWeight indicates a negative edge weight in a document that
	// was not validated with AllowNegative.
	ErrNegativeWeight = errors.New("topology: negative edge weight")

	// ErrTooFewNodes indicates a generator size below its minimum.
	ErrTooFewNodes = errors.New("topology: too few nodes")

	// ErrInvalidProbability indicates a probability outside [0,1].
	ErrInvalidProbability = errors.New("topology: probability out of range")
)

// validate is the package-level validator instance (struct-tag rules).
var validate = validator.New()

// NodeSpec is one node entry in a portable topology document.
type NodeSpec struct {
	ID string  `json:"id" yaml:"id" validate:"required"`
	X  float64 `json:"x" yaml:"x"`
	Y  float64 `json:"y" yaml:"y"`
}

// EdgeSpec is one edge entry in a portable topology document.
type EdgeSpec struct {
	ID       string `json:"id" yaml:"id" validate:"required"`
	From     string `json:"from" yaml:"from" validate:"required"`
	To       string `json:"to" yaml:"to" validate:"required"`
	Weight   int64  `json:"weight" yaml:"weight"`
	Directed bool   `json:"directed,omitempty" yaml:"directed,omitempty"`
}

// Document is the JSON/YAML-portable topology exchanged with editors,
// importers and exporters. It is plain value data: building a core.Graph
// from it copies everything.
type Document struct {
	Nodes []NodeSpec `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
	Edges []EdgeSpec `json:"edges" yaml:"edges" validate:"omitempty,dive"`
}

// ValidateOption tweaks document validation.
type ValidateOption func(*validateConfig)

type validateConfig struct {
	allowNegative bool
}

// AllowNegative permits negative edge weights (distance-vector topologies).
func AllowNegative() ValidateOption {
	return func(c *validateConfig) { c.allowNegative = true }
}

// Validate checks the document for everything the engines assume upstream:
// struct-level shape, unique node IDs, resolvable edge endpoints, no
// self-loops, and (by default) non-negative weights.
//
// Complexity: O(N + E)
func (d *Document) Validate(opts ...ValidateOption) error {
	var cfg validateConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Struct-tag validation: required fields, non-empty node list.
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	// 2) Node IDs must be unique.
	ids := make(map[string]struct{}, len(d.Nodes))
	for _, n := range d.Nodes {
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		ids[n.ID] = struct{}{}
	}

	// 3) Edge endpoints must resolve, differ, and carry legal weights.
	for _, e := range d.Edges {
		if _, ok := ids[e.From]; !ok {
			return fmt.Errorf("%w: edge %q from=%q", ErrDanglingEdge, e.ID, e.From)
		}
		if _, ok := ids[e.To]; !ok {
			return fmt.Errorf("%w: edge %q to=%q", ErrDanglingEdge, e.ID, e.To)
		}
		if e.From == e.To {
			return fmt.Errorf("%w: edge %q at %q", ErrSelfLoopEdge, e.ID, e.From)
		}
		if e.Weight < 0 && !cfg.allowNegative {
			return fmt.Errorf("%w: edge %q weight=%d", ErrNegativeWeight, e.ID, e.Weight)
		}
	}

	return nil
}

// Graph validates the document and builds the core.Graph the engines
// consume. Validation options are forwarded; negative-weight documents need
// both AllowNegative here and core.WithNegativeWeights in gopts.
func (d *Document) Graph(vopts []ValidateOption, gopts ...core.GraphOption) (*core.Graph, error) {
	if err := d.Validate(vopts...); err != nil {
		return nil, err
	}

	nodes := make([]core.Node, 0, len(d.Nodes))
	for _, n := range d.Nodes {
		nodes = append(nodes, core.Node{ID: n.ID, X: n.X, Y: n.Y})
	}
	edges := make([]core.Edge, 0, len(d.Edges))
	for _, e := range d.Edges {
		edges = append(edges, core.Edge{
			ID: e.ID, From: e.From, To: e.To,
			Weight: e.Weight, Directed: e.Directed,
		})
	}

	return core.Build(nodes, edges, gopts...)
}
