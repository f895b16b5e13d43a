// Package bellmanford_test provides runnable examples for the distance-vector
// engine.
package bellmanford_test

import (
	"errors"
	"fmt"

	"github.com/routelab/routesim/bellmanford"
	"github.com/routelab/routesim/core"
)

// ExampleShortestPath demonstrates that distance-vector relaxation reaches
// the same answer as SPF on the reference topology.
func ExampleShortestPath() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "D", 2)
	g.AddEdge("B", "C", 3)
	g.AddEdge("B", "F", 1)
	g.AddEdge("C", "E", 2)
	g.AddEdge("D", "F", 5)
	g.AddEdge("D", "E", 7)
	g.AddEdge("F", "E", 3)

	res, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"),
		bellmanford.Destination("E"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("cost=%d path=%v passes=%d\n",
		res.Distances["E"], res.Path, res.Iterations)
	// Output: cost=8 path=[A B F E] passes=2
}

// ExampleShortestPath_negativeCycle demonstrates the fatal negative-cycle
// error: the engine reports it instead of returning bogus distances.
func ExampleShortestPath_negativeCycle() {
	// Directed triangle B→C→D→B sums to −1.
	g := core.NewGraph(core.WithNegativeWeights())
	g.AddEdge("A", "B", 1, core.WithEdgeDirected(true))
	g.AddEdge("B", "C", 2, core.WithEdgeDirected(true))
	g.AddEdge("C", "D", 2, core.WithEdgeDirected(true))
	g.AddEdge("D", "B", -5, core.WithEdgeDirected(true))

	_, err := bellmanford.ShortestPath(g,
		bellmanford.Source("A"),
		bellmanford.Destination("D"),
	)
	fmt.Println(errors.Is(err, bellmanford.ErrNegativeCycle))
	// Output: true
}
