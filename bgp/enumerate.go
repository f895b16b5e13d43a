// Package bgp candidate-path enumeration: bounded depth-first search over all
// simple paths between two nodes.
package bgp

import "github.com/routelab/routesim/core"

// EnumeratePaths returns every simple path from source to dest whose hop
// count does not exceed maxDepth, in deterministic order (neighbors are
// explored in lexicographic ID order).
//
// The visited set is copied on every descent rather than shared and undone on
// backtrack, which keeps each recursive branch self-contained and the
// function safely reentrant.
//
// Complexity: exponential in the worst case, bounded by maxDepth.
func EnumeratePaths(g *core.Graph, source, dest string, maxDepth int) [][]string {
	if g == nil || maxDepth <= 0 {
		return nil
	}

	var out [][]string
	visited := map[string]bool{source: true}
	descend(g, source, dest, maxDepth, []string{source}, visited, &out)

	return out
}

// descend extends path from its last node toward dest, accumulating accepted
// paths into out. path and visited belong to this branch alone.
func descend(g *core.Graph, at, dest string, maxDepth int, path []string, visited map[string]bool, out *[][]string) {
	// 1) Accept: the current node is the destination.
	if at == dest {
		accepted := make([]string, len(path))
		copy(accepted, path)
		*out = append(*out, accepted)

		return
	}

	// 2) Bound: no hops left to spend.
	if len(path)-1 >= maxDepth {
		return
	}

	// 3) Explore neighbors in deterministic order, skipping nodes already on
	//    this path (simple paths only).
	neighbors, err := g.Neighbors(at)
	if err != nil {
		return // node vanished from under us; nothing to enumerate
	}
	for _, nb := range neighbors {
		if visited[nb.ID] {
			continue
		}

		// Copy-on-descend: the child branch owns its own state.
		childVisited := make(map[string]bool, len(visited)+1)
		for id := range visited {
			childVisited[id] = true
		}
		childVisited[nb.ID] = true

		childPath := make([]string, len(path), len(path)+1)
		copy(childPath, path)
		childPath = append(childPath, nb.ID)

		descend(g, nb.ID, dest, maxDepth, childPath, childVisited, out)
	}
}

// pathCost sums the weight of each consecutive link along path. Links are
// resolved through the adjacency index, so either declared orientation of an
// undirected edge matches.
func pathCost(g *core.Graph, path []string) int64 {
	var total int64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			// Enumeration only walks existing links; a miss here means the
			// graph changed mid-query. Treat the hop as free rather than
			// fabricate a cost.
			continue
		}
		total += w
	}

	return total
}
