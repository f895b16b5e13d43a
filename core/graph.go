// Package core graph mutation and query methods.
//
// Mutations acquire a write lock; queries acquire a read lock. Accessors that
// enumerate (Nodes, Edges, Neighbors) return fresh sorted slices so callers
// never alias internal state.
package core

import (
	"fmt"
	"sort"
)

// Build constructs a Graph in one shot from caller-owned node and edge lists.
// The lists are copied; the caller may reuse or mutate them afterwards.
//
// Nodes are registered first (ErrEmptyNodeID / ErrDuplicateNode on bad input),
// then edges with their document IDs preserved. Edge endpoints that do not
// appear in nodes are auto-registered at position (0,0); rejecting them
// against an intended node list is the topology package's concern.
//
// Complexity: O(N + E·log 1) = O(N + E)
func Build(nodes []Node, edges []Edge, opts ...GraphOption) (*Graph, error) {
	g := NewGraph(opts...)

	// 1) Register every declared node, preserving positions.
	for _, n := range nodes {
		if err := g.AddNode(n); err != nil {
			return nil, fmt.Errorf("core: build node %q: %w", n.ID, err)
		}
	}

	// 2) Register every edge, keeping document IDs and per-edge direction.
	for _, e := range edges {
		if _, err := g.AddEdge(e.From, e.To, e.Weight,
			WithEdgeID(e.ID),
			WithEdgeDirected(e.Directed),
		); err != nil {
			return nil, fmt.Errorf("core: build edge %s→%s: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// AddNode inserts n into the graph.
// Returns ErrEmptyNodeID if n.ID is empty, ErrDuplicateNode if it exists.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (g *Graph) AddNode(n Node) error {
	if n.ID == "" {
		return ErrEmptyNodeID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, exists := g.nodes[n.ID]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, n.ID)
	}
	g.nodes[n.ID] = n
	g.adjacency[n.ID] = make(map[string]int64)

	return nil
}

// AddEdge creates an edge between from and to with the given weight and
// returns its ID. Unknown endpoints are auto-registered at position (0,0).
// For undirected edges (the default) the adjacency index receives both
// directions at the same weight.
//
// Errors: ErrEmptyNodeID, ErrSelfLoop, ErrNegativeWeight (unless the graph
// was built WithNegativeWeights), ErrDuplicateEdge if the pair is already
// linked in the traversable direction.
//
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (g *Graph) AddEdge(from, to string, weight int64, opts ...EdgeOption) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyNodeID
	}
	if from == to {
		return "", fmt.Errorf("%w: %q", ErrSelfLoop, from)
	}
	if weight < 0 && !g.allowNegative {
		return "", fmt.Errorf("%w: %s→%s weight=%d", ErrNegativeWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 1) Auto-register unknown endpoints so incremental construction works.
	g.ensureNode(from)
	g.ensureNode(to)

	// 2) Resolve edge properties from options.
	e := Edge{From: from, To: to, Weight: weight}
	for _, opt := range opts {
		opt(&e)
	}
	if e.ID == "" {
		g.nextEdgeID++
		e.ID = fmt.Sprintf("e%d", g.nextEdgeID)
	}

	// 3) Reject parallel links: one weight per traversable direction.
	if _, dup := g.adjacency[from][to]; dup {
		return "", fmt.Errorf("%w: %s—%s", ErrDuplicateEdge, from, to)
	}
	if !e.Directed {
		if _, dup := g.adjacency[to][from]; dup {
			return "", fmt.Errorf("%w: %s—%s", ErrDuplicateEdge, to, from)
		}
	}

	// 4) Store the edge and index both directions for undirected links.
	g.edges[e.ID] = e
	g.adjacency[from][to] = weight
	if !e.Directed {
		g.adjacency[to][from] = weight
	}

	return e.ID, nil
}

// ensureNode registers id with zero position if absent. Caller holds mu.
func (g *Graph) ensureNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = Node{ID: id}
	g.adjacency[id] = make(map[string]int64)
}

// HasNode reports whether the graph contains a node with the given ID.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) HasNode(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.nodes[id]

	return ok
}

// Node returns the node with the given ID and whether it exists.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) Node(id string) (Node, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	n, ok := g.nodes[id]

	return n, ok
}

// NodeCount returns the number of registered nodes.
// Complexity: O(1)
func (g *Graph) NodeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// EdgeCount returns the number of registered edges.
// Complexity: O(1)
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// Nodes returns all node IDs in lexicographic order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V log V)
func (g *Graph) Nodes() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Edges returns a copy of all edges ordered by (From, To, ID), so that
// edge-scanning engines (distance-vector relaxation) iterate deterministically.
// Thread-safe: acquires a read lock.
//
// Complexity: O(E log E)
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.edges))
	for _, e := range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		if out[i].To != out[j].To {
			return out[i].To < out[j].To
		}

		return out[i].ID < out[j].ID
	})

	return out
}

// Weight returns the cost of the link from → to and whether such a link is
// traversable in that direction. This is the O(1) lookup every engine relaxes
// through.
//
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (g *Graph) Weight(from, to string) (int64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[from]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[to]

	return w, ok
}

// Neighbors returns the nodes adjacent to id (traversable from id) with their
// link weights, in lexicographic ID order. Returns ErrNodeNotFound if id is
// not registered.
//
// Thread-safe: acquires a read lock.
//
// Complexity: O(deg log deg)
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, id)
	}

	out := make([]Neighbor, 0, len(nbrs))
	for to, w := range nbrs {
		out = append(out, Neighbor{ID: to, Weight: w})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })

	return out, nil
}
