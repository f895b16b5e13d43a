// Package bellmanford_test contains unit tests for the distance-vector
// engine: validation, the reference topology, negative weights, and
// negative-cycle detection.
package bellmanford_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelab/routesim/bellmanford"
	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/routing"
)

// referenceGraph builds the six-node reference topology shared with the SPF
// engine tests: shortest A→E cost is 8 via A→B→F→E.
func referenceGraph(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, e := range []struct {
		from, to string
		w        int64
	}{
		{"A", "B", 4}, {"A", "D", 2}, {"B", "C", 3}, {"B", "F", 1},
		{"C", "E", 2}, {"D", "F", 5}, {"D", "E", 7}, {"F", "E", 3},
	} {
		_, err := g.AddEdge(e.from, e.to, e.w)
		require.NoError(t, err)
	}

	return g
}

// ------------------------------------------------------------------------
// 1. Validation ladder.
// ------------------------------------------------------------------------

func TestShortestPath_EmptySource(t *testing.T) {
	g := core.NewGraph()
	_, err := bellmanford.ShortestPath(g, bellmanford.Destination("B"))
	require.ErrorIs(t, err, bellmanford.ErrEmptySource)
}

func TestShortestPath_EmptyDestination(t *testing.T) {
	g := core.NewGraph()
	_, err := bellmanford.ShortestPath(g, bellmanford.Source("A"))
	require.ErrorIs(t, err, bellmanford.ErrEmptyDestination)
}

func TestShortestPath_NilGraph(t *testing.T) {
	_, err := bellmanford.ShortestPath(nil,
		bellmanford.Source("A"), bellmanford.Destination("B"))
	require.ErrorIs(t, err, bellmanford.ErrNilGraph)
}

func TestShortestPath_SameEndpoints(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("A"))
	require.ErrorIs(t, err, bellmanford.ErrSameEndpoints)
}

func TestShortestPath_EndpointNotFound(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	_, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("X"))
	require.ErrorIs(t, err, bellmanford.ErrNodeNotFound)
}

// ------------------------------------------------------------------------
// 2. Reference topology: must match the SPF engine exactly.
// ------------------------------------------------------------------------

func TestShortestPath_ReferenceTopology(t *testing.T) {
	g := referenceGraph(t)

	res, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("E"))
	require.NoError(t, err)

	assert.Equal(t, int64(8), res.Distances["E"])
	assert.Equal(t, []string{"A", "B", "F", "E"}, res.Path)

	wantDist := map[string]int64{"A": 0, "B": 4, "C": 7, "D": 2, "E": 8, "F": 5}
	for id, want := range wantDist {
		assert.Equal(t, want, res.Distances[id], "dist[%s]", id)
	}

	// Full table: five reachable destinations.
	require.Len(t, res.Table, 5)
}

func TestShortestPath_ConvergesBeforePassBound(t *testing.T) {
	g := referenceGraph(t)

	res, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("E"))
	require.NoError(t, err)

	// Six nodes allow up to 5 passes; this topology settles well before.
	assert.LessOrEqual(t, res.Iterations, g.NodeCount()-1)
	assert.Positive(t, res.Iterations)
}

// ------------------------------------------------------------------------
// 3. Negative weights without a cycle: legal, and still correct.
// ------------------------------------------------------------------------

func TestShortestPath_NegativeEdgeNoCycle(t *testing.T) {
	// Directed: A→B(4), A→C(2), C→B(-1). Best route to B is A→C→B = 1.
	g := core.NewGraph(core.WithNegativeWeights())
	_, _ = g.AddEdge("A", "B", 4, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("A", "C", 2, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("C", "B", -1, core.WithEdgeDirected(true))

	res, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("B"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.Distances["B"])
	assert.Equal(t, []string{"A", "C", "B"}, res.Path)
}

// ------------------------------------------------------------------------
// 4. Negative-cycle detection: fatal, distinct error, never clamped.
// ------------------------------------------------------------------------

func TestShortestPath_NegativeCycleDetected(t *testing.T) {
	// Directed 3-cycle B→C→D→B with weights summing to −1, reachable from A.
	g := core.NewGraph(core.WithNegativeWeights())
	_, _ = g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("B", "C", 2, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("C", "D", 2, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("D", "B", -5, core.WithEdgeDirected(true))

	_, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("D"))
	require.ErrorIs(t, err, bellmanford.ErrNegativeCycle)
}

func TestShortestPath_NegativeCycleUnreachableIsIgnored(t *testing.T) {
	// The negative cycle lives on an island the source cannot reach, so the
	// query must succeed: distances through the cycle never materialize.
	g := core.NewGraph(core.WithNegativeWeights())
	_, _ = g.AddEdge("A", "B", 1)
	_, _ = g.AddEdge("X", "Y", 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("Y", "Z", 1, core.WithEdgeDirected(true))
	_, _ = g.AddEdge("Z", "X", -5, core.WithEdgeDirected(true))

	res, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("B"))
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.Distances["B"])
	assert.Equal(t, routing.Inf, res.Distances["X"])
}

// ------------------------------------------------------------------------
// 5. Unreachable destination and idempotence.
// ------------------------------------------------------------------------

func TestShortestPath_UnreachableDestination(t *testing.T) {
	g := core.NewGraph()
	_, _ = g.AddEdge("A", "B", 1)
	require.NoError(t, g.AddNode(core.Node{ID: "Z"}))

	res, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("Z"))
	require.NoError(t, err, "unreachable is not an error")
	assert.Empty(t, res.Path)
	assert.Equal(t, routing.Inf, res.Distances["Z"])
	for _, row := range res.Table {
		assert.NotEqual(t, "Z", row.Destination)
	}
}

func TestShortestPath_Idempotent(t *testing.T) {
	g := referenceGraph(t)

	res1, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("E"))
	require.NoError(t, err)
	res2, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"), bellmanford.Destination("E"))
	require.NoError(t, err)

	assert.Equal(t, res1.Distances, res2.Distances)
	assert.Equal(t, res1.Predecessors, res2.Predecessors)
	assert.Equal(t, res1.Table, res2.Table)
	assert.Equal(t, res1.Iterations, res2.Iterations)
}
