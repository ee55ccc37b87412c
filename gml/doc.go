// Package gml reads and writes graphs in the GML (Graph Modelling
// Language) text format, the interchange format used by the command-line
// tools in this module.
//
// The reader is deliberately permissive: it understands the subset of
// GML that describes topology (the graph block, its directed flag, node
// blocks with id keys, edge blocks with source/target keys) and skips
// every other key, value, or nested block it encounters, including node
// labels and graphics attributes. Node IDs may be arbitrary
// non-negative integers; they are densified to 0..n−1 in order of first
// appearance, and Parse reports the mapping so callers can recover the
// original IDs. Edges may reference nodes declared later in the file.
//
// The writer emits the same subset: a Creator line, then the graph block
// with its nodes and edges under dense IDs.
//
// Malformed input yields ErrSyntax wrapped with the offending line
// number; structural problems yield ErrMissingID or ErrUnknownNode.
package gml
