// Package core defines the in-memory Graph type used throughout mctools.
//
// A Graph holds a fixed, dense set of integer node IDs (0..N-1) and a
// multiset of edges. Directedness is a graph-level invariant fixed at
// construction; host graphs and motifs must agree on it.
//
// Design points:
//
//   - Multigraph semantics. Parallel edges and self-loops are legal and
//     carry multiplicity. EdgeCount counts every parallel edge and loop
//     individually; the null-model sampler relies on this when it inserts
//     motif instances without collision avoidance, as does the directed
//     validity check, which compares induced edge counts.
//   - Value-style mutation discipline. Graphs are cheap to Clone; callers
//     that need trial-and-discard semantics clone, mutate the clone, and
//     either keep it or drop it. Nothing in this package shares state
//     between graph instances.
//   - No concurrency primitives. A Graph has a single writer at a time by
//     convention; concurrent readers are safe once mutation stops.
//
// Errors:
//
//	ErrNodeOutOfRange — an edge endpoint does not name an existing node.
package core
