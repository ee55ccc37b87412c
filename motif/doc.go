// Package motif implements the motif clustering statistics engine.
//
// A motif is a small connected graph pattern (3 or 4 nodes, built from an
// isomorphism class by package iso) whose directedness matches the host
// graph. The engine answers three questions about a host graph G and a
// motif M:
//
//  1. How many distinct instances of M does G contain? (Count)
//  2. How strongly do those instances cluster — what fraction of the
//     vertex sharing that is theoretically possible between distinct
//     instances is actually realized? (Clustering)
//  3. Is the observed clustering unusual? (Run: the coefficient of G is
//     standardized against null-model graphs with the same node count,
//     directedness, and exact motif count, generated by Sample.)
//
// # Counting and validation
//
// The matcher reports monomorphisms, so every occurrence appears once per
// motif automorphism and, on directed graphs, mappings may land on host
// subgraphs that carry extra arcs. Directed mappings are therefore
// validated by comparing the induced edge count of the mapped node set
// with the motif's edge count; failures are marked invalid and skipped,
// never deleted, so mapping indices stay stable. The check is an
// approximation: a host subgraph with a different directed structure but
// an equal edge count would pass. Dividing the surviving mappings by the
// automorphism count yields the unique instance count, always an integer
// for a correct matcher.
//
// # The coefficient
//
// Shared vertices are accumulated over all unordered pairs of valid
// mappings (pairs covering the same node set are the same instance and
// contribute nothing), corrected by the squared automorphism count, and
// normalized by the theoretical maximum (motifSize−1 shared vertices per
// distinct instance pair). Graphs with fewer than two instances have no
// pairs: the coefficient is undefined, reported as
// ErrUndefinedCoefficient and never coerced to a number.
//
// # The null model
//
// Sample grows a random graph toward an exact target instance count by
// hill climbing: clone the accepted graph, splat a batch of motif
// instances onto uniformly random node tuples (collisions and the
// resulting loops or parallels are not filtered), recount, and accept on
// progress or discard and shrink the batch geometrically on overshoot.
// A run that stops making progress after the batch size bottoms out at
// one eventually exhausts its trial ceiling and reports ErrNoConvergence.
//
// Run aggregates: failed samples are recorded as SentinelInvalid in the
// sample list (preserved verbatim for persistence), excluded from the
// z-score, and the z-score itself is ErrNoValidSamples/ErrZeroVariance
// rather than NaN garbage when the distribution degenerates.
//
// Sampling is deterministic for a given Options.Seed: each sample index
// derives its own RNG stream, so results do not depend on Workers.
//
// Extract and ClassifyPairs round out the toolkit: the former collects
// the union of motif instances into a new graph with a node-ID map, the
// latter tallies every overlapping instance pair against the catalogue
// of topologically distinct overlap shapes (ClusterTypes).
package motif
