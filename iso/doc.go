// Package iso provides subgraph-isomorphism matching and the
// isomorphism-class catalogue for small graphs.
//
// # Matching
//
// Subisomorphisms enumerates every embedding of a pattern graph into a
// host graph: an injective assignment of host nodes to pattern positions
// such that every pattern edge maps onto a host edge (direction respected
// when the graphs are directed). Embeddings are monomorphisms — extra
// host edges between matched nodes do not disqualify a mapping. Callers
// that need vertex-induced exactness on directed graphs post-filter the
// mappings by induced edge count; see the motif package.
//
// Every symmetric duplicate is reported: a pattern with k automorphisms
// yields k mappings per occurrence. AutomorphismCount(g) is simply the
// number of embeddings of g into itself and is >= 1 for any non-empty
// simple graph (the identity).
//
// # Isomorphism classes
//
// FromClass builds the canonical motif graph for an (size, classID,
// directed) triple, replacing an external class table. Classes are
// derived by enumerating all labeled loop-free simple graphs of the given
// size, reducing each to a canonical code (the minimum adjacency bit-code
// over all node permutations), and numbering the distinct codes in
// ascending order. The numbering is stable across runs and platforms but
// is this library's own order, not that of any other tool.
//
// Only sizes 3 and 4 are supported; the catalogue holds 4 undirected and
// 16 directed classes at size 3, 11 and 218 at size 4.
package iso
