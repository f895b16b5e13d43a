// SPDX-License-Identifier: MIT
// Package: routesim/topology
//
// topology_test.go — document validation, codec round-trips, generators.
package topology_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routelab/routesim/topology"
)

// refDocument returns a small valid document used across tests.
func refDocument() *topology.Document {
	return &topology.Document{
		Nodes: []topology.NodeSpec{
			{ID: "A"}, {ID: "B", X: 120}, {ID: "C", X: 240, Y: 80},
		},
		Edges: []topology.EdgeSpec{
			{ID: "e1", From: "A", To: "B", Weight: 4},
			{ID: "e2", From: "B", To: "C", Weight: 3},
		},
	}
}

// --- Validation -----------------------------------------------------------

func TestValidate_OK(t *testing.T) {
	require.NoError(t, refDocument().Validate())
}

func TestValidate_EmptyNodeList(t *testing.T) {
	d := &topology.Document{}
	assert.ErrorIs(t, d.Validate(), topology.ErrInvalidDocument)
}

func TestValidate_MissingNodeID(t *testing.T) {
	d := refDocument()
	d.Nodes[1].ID = ""
	assert.ErrorIs(t, d.Validate(), topology.ErrInvalidDocument)
}

func TestValidate_DuplicateNodeID(t *testing.T) {
	d := refDocument()
	d.Nodes = append(d.Nodes, topology.NodeSpec{ID: "A"})
	assert.ErrorIs(t, d.Validate(), topology.ErrDuplicateNodeID)
}

func TestValidate_DanglingEdge(t *testing.T) {
	d := refDocument()
	d.Edges = append(d.Edges, topology.EdgeSpec{ID: "e9", From: "A", To: "Z", Weight: 1})
	assert.ErrorIs(t, d.Validate(), topology.ErrDanglingEdge)
}

func TestValidate_SelfLoop(t *testing.T) {
	d := refDocument()
	d.Edges = append(d.Edges, topology.EdgeSpec{ID: "e9", From: "B", To: "B", Weight: 1})
	assert.ErrorIs(t, d.Validate(), topology.ErrSelfLoopEdge)
}

func TestValidate_NegativeWeight(t *testing.T) {
	d := refDocument()
	d.Edges[0].Weight = -4

	assert.ErrorIs(t, d.Validate(), topology.ErrNegativeWeight)
	assert.NoError(t, d.Validate(topology.AllowNegative()))
}

// --- Graph building -------------------------------------------------------

func TestGraph_BuildsValidatedGraph(t *testing.T) {
	g, err := refDocument().Graph(nil)
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())

	w, ok := g.Weight("B", "A") // undirected by default
	require.True(t, ok)
	assert.Equal(t, int64(4), w)
}

func TestGraph_RejectsInvalidDocument(t *testing.T) {
	d := refDocument()
	d.Edges[0].To = "Z"

	_, err := d.Graph(nil)
	assert.ErrorIs(t, err, topology.ErrDanglingEdge)
}

// --- Codecs ---------------------------------------------------------------

func TestJSON_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, topology.EncodeJSON(&buf, refDocument()))

	got, err := topology.DecodeJSON(&buf)
	require.NoError(t, err)
	assert.Equal(t, refDocument(), got)
}

func TestJSON_UnknownFieldRejected(t *testing.T) {
	payload := `{"nodes":[{"id":"A","color":"red"}],"edges":[]}`
	_, err := topology.DecodeJSON(bytes.NewBufferString(payload))
	assert.Error(t, err)
}

func TestYAML_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, topology.EncodeYAML(&buf, refDocument()))

	got, err := topology.DecodeYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, refDocument(), got)
}

func TestYAML_UnknownFieldRejected(t *testing.T) {
	payload := "nodes:\n  - id: A\n    colour: red\nedges: []\n"
	_, err := topology.DecodeYAML(bytes.NewBufferString(payload))
	assert.Error(t, err)
}

// --- Generators -----------------------------------------------------------

func TestLine_ShapeAndDeterminism(t *testing.T) {
	d1, err := topology.Line(5, 42)
	require.NoError(t, err)
	d2, err := topology.Line(5, 42)
	require.NoError(t, err)

	assert.Len(t, d1.Nodes, 5)
	assert.Len(t, d1.Edges, 4)
	assert.Equal(t, d1, d2, "same parameters and seed must reproduce the document")
	require.NoError(t, d1.Validate())

	// Edge IDs are name-derived, so they survive the seed changing.
	d3, err := topology.Line(5, 7)
	require.NoError(t, err)
	assert.Equal(t, d1.Edges[0].ID, d3.Edges[0].ID)
}

func TestLine_TooFew(t *testing.T) {
	_, err := topology.Line(1, 42)
	assert.ErrorIs(t, err, topology.ErrTooFewNodes)
}

func TestRing_ShapeAndDeterminism(t *testing.T) {
	d, err := topology.Ring(6, 42)
	require.NoError(t, err)

	assert.Len(t, d.Nodes, 6)
	assert.Len(t, d.Edges, 6)
	assert.Equal(t, "n05", d.Edges[5].From)
	assert.Equal(t, "n00", d.Edges[5].To)
	require.NoError(t, d.Validate())

	d2, err := topology.Ring(6, 42)
	require.NoError(t, err)
	assert.Equal(t, d, d2)
}

func TestRing_TooFew(t *testing.T) {
	_, err := topology.Ring(2, 42)
	assert.ErrorIs(t, err, topology.ErrTooFewNodes)
}

func TestStar_Shape(t *testing.T) {
	d, err := topology.Star(5, 42)
	require.NoError(t, err)

	assert.Len(t, d.Nodes, 5)
	assert.Len(t, d.Edges, 4)
	for _, e := range d.Edges {
		assert.Equal(t, "n00", e.From, "every link fans out from the hub")
	}
	require.NoError(t, d.Validate())
}

func TestRandomSparse_ConnectedAndDeterministic(t *testing.T) {
	d1, err := topology.RandomSparse(10, 0.3, 42)
	require.NoError(t, err)
	d2, err := topology.RandomSparse(10, 0.3, 42)
	require.NoError(t, err)

	assert.Equal(t, d1, d2)
	assert.GreaterOrEqual(t, len(d1.Edges), 9, "spanning chain always present")
	require.NoError(t, d1.Validate())

	g, err := d1.Graph(nil)
	require.NoError(t, err)
	assert.Equal(t, 10, g.NodeCount())
}

func TestRandomSparse_BadProbability(t *testing.T) {
	_, err := topology.RandomSparse(5, 1.5, 42)
	assert.ErrorIs(t, err, topology.ErrInvalidProbability)

	_, err = topology.RandomSparse(5, -0.1, 42)
	assert.ErrorIs(t, err, topology.ErrInvalidProbability)
}

func TestRandomSparse_ZeroProbabilityIsAChain(t *testing.T) {
	d, err := topology.RandomSparse(6, 0, 42)
	require.NoError(t, err)
	assert.Len(t, d.Edges, 5)
}
