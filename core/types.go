package core

import "errors"

// ErrNodeOutOfRange indicates an edge endpoint outside 0..NodeCount()-1.
var ErrNodeOutOfRange = errors.New("core: node ID out of range")

// Edge is one edge of a Graph. For undirected graphs From <= To by
// convention when reported by Edges; loops have From == To.
type Edge struct {
	// From is the source node ID (or the smaller endpoint when undirected).
	From int

	// To is the destination node ID (or the larger endpoint when undirected).
	To int
}

// Option configures a Graph at construction time.
type Option func(g *Graph)

// WithDirected fixes the directedness of the new Graph
// (true = directed, false = undirected). The default is undirected.
func WithDirected(directed bool) Option {
	return func(g *Graph) { g.directed = directed }
}

// Graph is a multigraph over dense integer node IDs 0..n-1.
//
// adj[u][v] holds the multiplicity of the edge u→v. Undirected edges are
// mirrored into both adj[u][v] and adj[v][u] (loops appear once, at
// adj[u][u]). edgeCount tracks the total number of edges including
// parallels and loops.
type Graph struct {
	directed  bool
	adj       []map[int]int
	edgeCount int
}

// New creates a Graph with n isolated nodes and no edges.
// Non-positive n yields an empty graph.
// Complexity: O(n).
func New(n int, opts ...Option) *Graph {
	if n < 0 {
		n = 0
	}
	g := &Graph{adj: make([]map[int]int, n)}
	for i := range g.adj {
		g.adj[i] = make(map[int]int)
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
