package core

import "sort"

// NodeCount returns the number of nodes. Complexity: O(1).
func (g *Graph) NodeCount() int { return len(g.adj) }

// EdgeCount returns the number of edges, counting every parallel edge and
// self-loop individually. Complexity: O(1).
func (g *Graph) EdgeCount() int { return g.edgeCount }

// Directed reports whether the graph is directed. Complexity: O(1).
func (g *Graph) Directed() bool { return g.directed }

// AddNodes appends k isolated nodes with the next dense IDs.
// Non-positive k is a no-op. Complexity: O(k).
func (g *Graph) AddNodes(k int) {
	for i := 0; i < k; i++ {
		g.adj = append(g.adj, make(map[int]int))
	}
}

// AddEdge inserts one edge u→v (u—v when undirected). Parallel edges and
// self-loops accumulate multiplicity. Returns ErrNodeOutOfRange when an
// endpoint does not exist. Complexity: O(1).
func (g *Graph) AddEdge(u, v int) error {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return ErrNodeOutOfRange
	}
	g.adj[u][v]++
	if !g.directed && u != v {
		g.adj[v][u]++
	}
	g.edgeCount++

	return nil
}

// HasEdge reports whether at least one edge u→v exists (u—v in either
// orientation when undirected). Out-of-range endpoints report false.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v int) bool {
	return g.Multiplicity(u, v) > 0
}

// Multiplicity returns the number of parallel edges u→v (u—v when
// undirected). Out-of-range endpoints report 0. Complexity: O(1).
func (g *Graph) Multiplicity(u, v int) int {
	if u < 0 || u >= len(g.adj) || v < 0 || v >= len(g.adj) {
		return 0
	}

	return g.adj[u][v]
}

// Edges returns every edge, parallels repeated per multiplicity, in a
// deterministic order (ascending From, then To). Undirected edges are
// reported once with From <= To. Complexity: O(V + E log E).
func (g *Graph) Edges() []Edge {
	out := make([]Edge, 0, g.edgeCount)
	for u := range g.adj {
		for v, mult := range g.adj[u] {
			if !g.directed && v < u {
				continue // mirrored entry; reported from the smaller endpoint
			}
			for i := 0; i < mult; i++ {
				out = append(out, Edge{From: u, To: v})
			}
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}

		return out[i].To < out[j].To
	})

	return out
}
