// Package mctools computes motif-based clustering statistics for graphs.
//
// Given a small connected subgraph pattern (a "motif", 3 or 4 nodes,
// identified by its isomorphism class), mctools measures how often
// instances of that motif share vertices with other instances, normalizes
// the result into a clustering coefficient in [0,1], and contextualizes
// the observed value against a null-model distribution via a z-score.
//
// The library is organized into four subpackages plus three command-line
// front ends:
//
//	core/   — the in-memory Graph type: dense integer node IDs, a fixed
//	          directedness flag, multigraph edge multiplicities, cloning,
//	          induced-edge counting and simplification
//	iso/    — subgraph-isomorphism matching, automorphism counting, and
//	          the isomorphism-class catalogue used to build canonical
//	          motifs from (size, class) pairs
//	motif/  — the statistics engine: validated motif counting, the
//	          clustering coefficient, the exact-count null-model sampler,
//	          sample aggregation with z-scores, motif subgraph extraction,
//	          and pairwise clustering-type classification
//	gml/    — reading and writing graphs in the GML text format
//
//	cmd/mcc       — coefficient + z-score for a host graph and motif
//	cmd/mcextract — extract the union of motif instances as a new graph
//	cmd/mcstats   — census of the ways motif instances overlap pairwise
//
// A typical run loads a host graph from GML, resolves a motif from its
// isomorphism class at the host's directedness, and hands both to
// motif.Run:
//
//	g, _ := gml.Parse(file)
//	m, _ := iso.FromClass(3, 3, g.Directed()) // undirected triangle
//	res, err := motif.Run(g, m, motif.DefaultOptions())
//
// Every run is stateless given its inputs and a seed; sampling is
// deterministic per seed regardless of worker count.
package mctools
