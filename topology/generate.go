// SPDX-License-Identifier: MIT
// Package: routesim/topology
//
// generate.go — deterministic topology generators.
//
// Contract:
//   - Same parameters and seed ⇒ byte-identical Document.
//   - Node IDs are zero-padded ("n00", "n01", …) in ascending index order.
//   - Edge IDs are name-derived UUIDs (v5 over "from→to"), not random.
//   - Weights are drawn from the seeded RNG in [1, maxGenWeight].
//   - Positions are laid out for a canvas: lines horizontally, rings and
//     stars on a circle. Engines never read them.
package topology

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// Generator bounds and layout constants.
const (
	minLineNodes = 2
	minRingNodes = 3
	minStarNodes = 2

	maxGenWeight = 10  // weights drawn from [1, maxGenWeight]
	layoutRadius = 200 // circle layout radius, canvas units
	layoutStep   = 120 // horizontal spacing for line layouts
)

// edgeNamespace scopes the name-derived edge UUIDs to this module.
var edgeNamespace = uuid.NewSHA1(uuid.NameSpaceOID, []byte("routesim/topology"))

// nodeID formats the i-th generated node ID.
func nodeID(i int) string { return fmt.Sprintf("n%02d", i) }

// edgeID derives a stable UUID for the link from→to.
func edgeID(from, to string) string {
	return uuid.NewSHA1(edgeNamespace, []byte(from+"→"+to)).String()
}

// genWeight draws one link weight from the seeded RNG.
func genWeight(rng *rand.Rand) int64 { return int64(1 + rng.Intn(maxGenWeight)) }

// Line generates an n-node chain n00—n01—…, laid out horizontally.
// Requires n ≥ 2 (ErrTooFewNodes).
func Line(n int, seed int64) (*Document, error) {
	if n < minLineNodes {
		return nil, fmt.Errorf("Line: n=%d < min=%d: %w", n, minLineNodes, ErrTooFewNodes)
	}
	rng := rand.New(rand.NewSource(seed))

	d := &Document{}
	for i := 0; i < n; i++ {
		d.Nodes = append(d.Nodes, NodeSpec{ID: nodeID(i), X: float64(i * layoutStep)})
	}
	for i := 0; i < n-1; i++ {
		from, to := nodeID(i), nodeID(i+1)
		d.Edges = append(d.Edges, EdgeSpec{
			ID: edgeID(from, to), From: from, To: to, Weight: genWeight(rng),
		})
	}

	return d, nil
}

// Ring generates an n-node cycle laid out on a circle.
// Requires n ≥ 3 (ErrTooFewNodes).
func Ring(n int, seed int64) (*Document, error) {
	if n < minRingNodes {
		return nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingNodes, ErrTooFewNodes)
	}
	rng := rand.New(rand.NewSource(seed))

	d := &Document{}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		d.Nodes = append(d.Nodes, NodeSpec{
			ID: nodeID(i),
			X:  layoutRadius * math.Cos(angle),
			Y:  layoutRadius * math.Sin(angle),
		})
	}
	for i := 0; i < n; i++ {
		from, to := nodeID(i), nodeID((i+1)%n)
		d.Edges = append(d.Edges, EdgeSpec{
			ID: edgeID(from, to), From: from, To: to, Weight: genWeight(rng),
		})
	}

	return d, nil
}

// Star generates a hub ("n00") with n−1 leaves on a circle around it.
// Requires n ≥ 2 (ErrTooFewNodes).
func Star(n int, seed int64) (*Document, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("Star: n=%d < min=%d: %w", n, minStarNodes, ErrTooFewNodes)
	}
	rng := rand.New(rand.NewSource(seed))

	d := &Document{Nodes: []NodeSpec{{ID: nodeID(0)}}}
	for i := 1; i < n; i++ {
		angle := 2 * math.Pi * float64(i-1) / float64(n-1)
		d.Nodes = append(d.Nodes, NodeSpec{
			ID: nodeID(i),
			X:  layoutRadius * math.Cos(angle),
			Y:  layoutRadius * math.Sin(angle),
		})
		d.Edges = append(d.Edges, EdgeSpec{
			ID: edgeID(nodeID(0), nodeID(i)), From: nodeID(0), To: nodeID(i),
			Weight: genWeight(rng),
		})
	}

	return d, nil
}

// RandomSparse generates a connected random topology: a spanning chain
// guarantees reachability, then each remaining node pair gains a link with
// probability p. Requires n ≥ 2 and p ∈ [0,1].
func RandomSparse(n int, p float64, seed int64) (*Document, error) {
	if n < minLineNodes {
		return nil, fmt.Errorf("RandomSparse: n=%d < min=%d: %w", n, minLineNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomSparse: p=%v: %w", p, ErrInvalidProbability)
	}
	rng := rand.New(rand.NewSource(seed))

	d := &Document{}
	for i := 0; i < n; i++ {
		angle := 2 * math.Pi * float64(i) / float64(n)
		d.Nodes = append(d.Nodes, NodeSpec{
			ID: nodeID(i),
			X:  layoutRadius * math.Cos(angle),
			Y:  layoutRadius * math.Sin(angle),
		})
	}

	// Spanning chain first: every node reachable.
	for i := 0; i < n-1; i++ {
		from, to := nodeID(i), nodeID(i+1)
		d.Edges = append(d.Edges, EdgeSpec{
			ID: edgeID(from, to), From: from, To: to, Weight: genWeight(rng),
		})
	}

	// Extra links over the remaining pairs, in deterministic pair order.
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if rng.Float64() >= p {
				continue
			}
			from, to := nodeID(i), nodeID(j)
			d.Edges = append(d.Edges, EdgeSpec{
				ID: edgeID(from, to), From: from, To: to, Weight: genWeight(rng),
			})
		}
	}

	return d, nil
}
