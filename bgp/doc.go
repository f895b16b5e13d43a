// Package bgp implements the policy routing engine: exhaustive candidate-path
// enumeration followed by a BGP-style multi-attribute best-path election.
//
// Overview:
//
//   - SelectPath enumerates every simple path from source to destination via
//     bounded depth-first search (default 10 hops), assigns each candidate a
//     set of policy attributes, and elects the winner by strict precedence:
//
//     1. highest local-preference,
//     2. shortest AS-path length (hop count),
//     3. lowest multi-exit discriminator (MED),
//     4. lowest IGP cost (aggregate link weight),
//     5. lexicographically smallest node sequence (deterministic tie-break).
//
//     Each step filters the candidate set to the best value of its criterion
//     and stops as soon as exactly one candidate remains.
//
//   - Local-preference and MED model policy knobs that cannot be derived from
//     topology alone. The default AttributeSource draws them pseudo-randomly
//     (local-preference in [100,199], MED in [0,49]); tests and reproducible
//     runs inject their own source via WithAttributeSource. Aggregate cost
//     and AS-path length are always topology-derived and deterministic.
//
//   - Mirroring BGP's single-best-path advertisement, the winning path seeds
//     distances and predecessors for its own nodes only; every other node
//     stays at routing.Inf even when topologically reachable. The routing
//     table is built independently: for every non-source node the
//     enumerate-and-elect cycle re-runs with that node as the destination.
//
// Result semantics match package routing; Iterations counts the total number
// of candidate paths enumerated across the whole query, table elections
// included.
//
// Performance and complexity:
//
//   - Enumeration is exponential in the worst case; the depth bound keeps it
//     tractable on the tens-of-nodes topologies this engine targets.
//   - Election is O(C) per criterion over C candidates.
//
// Error handling (sentinel errors):
//
//   - ErrEmptySource / ErrEmptyDestination / ErrNilGraph / ErrNodeNotFound /
//     ErrSameEndpoints: same validation ladder as the other engines.
//   - ErrBadMaxDepth (via panic in the option constructor): a non-positive
//     depth bound would enumerate nothing.
//
// Thread safety:
//
//   - SelectPath only reads the graph. The default seeded AttributeSource is
//     not safe for concurrent use across queries; give each goroutine its
//     own source.
package bgp
