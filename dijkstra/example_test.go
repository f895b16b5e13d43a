// Package dijkstra_test provides runnable examples for the SPF engine.
// Each example runs via “go test -run Example”, showing code and expected
// output together.
package dijkstra_test

import (
	"fmt"

	"github.com/routelab/routesim/core"
	"github.com/routelab/routesim/dijkstra"
)

// ExampleShortestPath demonstrates the reference topology from the module
// documentation: six routers, shortest A→E route costs 8 via B and F.
func ExampleShortestPath() {
	// 1) Build the topology. Edges are undirected: declaring A—B also makes
	//    B—A traversable at the same weight.
	g := core.NewGraph()
	g.AddEdge("A", "B", 4)
	g.AddEdge("A", "D", 2)
	g.AddEdge("B", "C", 3)
	g.AddEdge("B", "F", 1)
	g.AddEdge("C", "E", 2)
	g.AddEdge("D", "F", 5)
	g.AddEdge("D", "E", 7)
	g.AddEdge("F", "E", 3)

	// 2) Run SPF from A toward E.
	res, err := dijkstra.ShortestPath(g,
		dijkstra.Source("A"),
		dijkstra.Destination("E"),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// 3) Print the elected route and its cost.
	fmt.Printf("cost=%d path=%v\n", res.Distances["E"], res.Path)
	// Output: cost=8 path=[A B F E]
}

// ExampleShortestPath_routingTable demonstrates deriving a full routing table
// by disabling the destination early exit.
func ExampleShortestPath_routingTable() {
	g := core.NewGraph()
	g.AddEdge("A", "B", 1)
	g.AddEdge("B", "C", 2)
	g.AddEdge("A", "C", 5)

	res, err := dijkstra.ShortestPath(g,
		dijkstra.Source("A"),
		dijkstra.Destination("C"),
		dijkstra.WithoutEarlyExit(),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// One row per reachable destination, sorted by ID.
	for _, row := range res.Table {
		fmt.Printf("to=%s via=%s cost=%d hops=%d\n",
			row.Destination, row.NextHop, row.Cost, row.Hops)
	}
	// Output:
	// to=B via=B cost=1 hops=1
	// to=C via=B cost=3 hops=2
}
