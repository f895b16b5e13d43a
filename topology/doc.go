// SPDX-License-Identifier: MIT
// Package: routesim/topology
//
// Package topology is the collaborator surface in front of the routing
// engines: portable topology documents, upstream validation, and
// deterministic topology generators.
//
// The engines themselves assume a well-formed graph and never re-validate;
// this package is where dangling edge endpoints, duplicate node IDs, negative
// weights and self-loops are caught before a core.Graph is ever built.
//
// Three concerns live here:
//
//   - Documents: Document is the JSON/YAML-portable node+edge list exchanged
//     with editors and exporters. DecodeJSON/DecodeYAML read one,
//     EncodeJSON/EncodeYAML write one, and both formats round-trip.
//   - Validation: Document.Validate combines struct-tag validation
//     (go-playground/validator) with the semantic checks the engines rely
//     on. Document.Graph validates and then builds the core.Graph in one
//     step.
//   - Generators: Line, Ring, Star and RandomSparse produce ready-made
//     documents with display positions laid out for a canvas. Same
//     parameters and seed ⇒ byte-identical document, including edge IDs
//     (name-derived UUIDs, not random ones).
//
// Error policy (strict, sentinel-based):
//   - Callers branch with errors.Is; implementations attach context via %w.
//   - Validation never panics; option-less constructors return errors.
package topology
