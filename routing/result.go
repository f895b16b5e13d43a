// Package routing result types shared by all engines.
package routing

import (
	"math"
	"time"
)

// Inf is the distance recorded for unreachable nodes. Engines initialize
// every non-source distance to Inf and only relaxation lowers it.
const Inf = int64(math.MaxInt64)

// Result is the uniform output of every routing engine.
//
// Distances maps node ID → best-known cost from the source (Inf when
// unreachable). Predecessors maps node ID → the node immediately before it on
// its best path ("" for the source and for unreachable nodes). Path is the
// ordered node sequence from source to the queried destination, empty when
// the destination is unreachable. Table holds one row per reachable node
// other than the source. Iterations counts algorithm work in engine-specific
// units (see each engine's doc). Elapsed is wall-clock time for the full call.
type Result struct {
	// Distances maps node ID to the best-known cost from the source.
	Distances map[string]int64

	// Predecessors maps node ID to the previous node on its best path.
	Predecessors map[string]string

	// Path is the elected source→destination node sequence (empty if none).
	Path []string

	// Table lists one entry per reachable destination, sorted by ID.
	Table []TableEntry

	// Iterations counts algorithm work performed (engine-specific unit).
	Iterations int

	// Elapsed is the measured wall-clock duration of the query.
	Elapsed time.Duration
}

// TableEntry is one routing-table row: how to reach Destination from the
// source of the computation.
type TableEntry struct {
	// Destination is the node this row routes toward.
	Destination string

	// NextHop is the second node on the path from the source, or the
	// destination itself when directly adjacent.
	NextHop string

	// Cost is the total path cost (equals Distances[Destination]).
	Cost int64

	// Hops is the number of links on the path (path length − 1).
	Hops int

	// Path is the full ordered node sequence from source to Destination.
	Path []string
}
