// Package routing table derivation: predecessor-chain walking and per-
// destination row assembly.
package routing

import "sort"

// ReconstructPath walks predecessor links backward from dest to source and
// returns the ordered node sequence source…dest.
//
// If the walk never reaches source (dest unreachable, or dest untracked), the
// returned slice is empty — unreachability is not an error.
//
// Complexity: O(path length)
func ReconstructPath(prev map[string]string, source, dest string) []string {
	// 1) Collect the chain back-to-front. Capacity 8 covers typical depths.
	chain := make([]string, 0, 8)
	at := dest
	for at != "" {
		chain = append(chain, at)
		if at == source {
			break
		}
		at = prev[at]
	}

	// 2) A chain that never touched source means dest is unreachable.
	if len(chain) == 0 || chain[len(chain)-1] != source {
		return []string{}
	}

	// 3) Reverse in place to get source…dest ordering.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}

	return chain
}

// BuildTable converts a distance map and predecessor map into routing-table
// rows: one entry per node other than source with a finite distance, sorted
// by destination ID. Nodes at distance Inf are omitted entirely.
//
// NextHop is the second element of the reconstructed path; for a destination
// directly adjacent to source that second element is the destination itself.
//
// Complexity: O(V log V + V · P) where P is the longest path length.
func BuildTable(dist map[string]int64, prev map[string]string, source string) []TableEntry {
	// 1) Gather reachable destinations in deterministic order.
	dests := make([]string, 0, len(dist))
	for id, d := range dist {
		if id == source || d == Inf {
			continue
		}
		dests = append(dests, id)
	}
	sort.Strings(dests)

	// 2) Walk each predecessor chain and emit a row.
	table := make([]TableEntry, 0, len(dests))
	for _, id := range dests {
		path := ReconstructPath(prev, source, id)
		if len(path) < 2 {
			// Finite distance but no chain back to source: stale predecessor
			// data from the caller. Skip rather than invent a next hop.
			continue
		}
		table = append(table, TableEntry{
			Destination: id,
			NextHop:     path[1],
			Cost:        dist[id],
			Hops:        len(path) - 1,
			Path:        path,
		})
	}

	return table
}

// TableFromPaths builds routing-table rows directly from per-destination
// paths, for engines (policy election) that produce a best path per
// destination rather than a single predecessor tree. costs maps destination
// ID → total path cost; paths maps destination ID → ordered source…dest
// sequence. Destinations with empty paths are omitted.
//
// Complexity: O(V log V)
func TableFromPaths(costs map[string]int64, paths map[string][]string) []TableEntry {
	dests := make([]string, 0, len(paths))
	for id, p := range paths {
		if len(p) < 2 {
			continue
		}
		dests = append(dests, id)
	}
	sort.Strings(dests)

	table := make([]TableEntry, 0, len(dests))
	for _, id := range dests {
		p := paths[id]
		table = append(table, TableEntry{
			Destination: id,
			NextHop:     p[1],
			Cost:        costs[id],
			Hops:        len(p) - 1,
			Path:        p,
		})
	}

	return table
}
