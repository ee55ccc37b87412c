package core

// Clone returns a deep copy of the graph. The copy shares no state with
// the original, so trial mutations on a clone never leak back.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		directed:  g.directed,
		adj:       make([]map[int]int, len(g.adj)),
		edgeCount: g.edgeCount,
	}
	for u, row := range g.adj {
		c.adj[u] = make(map[int]int, len(row))
		for v, mult := range row {
			c.adj[u][v] = mult
		}
	}

	return c
}

// InducedEdgeCount returns the number of edges (with multiplicity,
// including self-loops) whose endpoints both lie in nodes. Out-of-range
// IDs are ignored; duplicate IDs in nodes are counted once.
// Complexity: O(k²) for k = len(nodes).
func (g *Graph) InducedEdgeCount(nodes []int) int {
	in := make(map[int]struct{}, len(nodes))
	for _, v := range nodes {
		if v >= 0 && v < len(g.adj) {
			in[v] = struct{}{}
		}
	}
	total := 0
	for u := range in {
		for v, mult := range g.adj[u] {
			if _, ok := in[v]; !ok {
				continue
			}
			if !g.directed && v < u {
				continue // mirrored entry
			}
			total += mult
		}
	}

	return total
}

// Simplify collapses parallel edges to multiplicity one when removeMulti
// is set and drops self-loops when removeLoops is set, in place.
// Complexity: O(V + E).
func (g *Graph) Simplify(removeMulti, removeLoops bool) {
	for u := range g.adj {
		for v, mult := range g.adj[u] {
			if !g.directed && v < u {
				continue // mirrored entry; handled from the smaller endpoint
			}
			switch {
			case removeLoops && u == v:
				delete(g.adj[u], v)
				g.edgeCount -= mult
			case removeMulti && mult > 1:
				g.adj[u][v] = 1
				if !g.directed && u != v {
					g.adj[v][u] = 1
				}
				g.edgeCount -= mult - 1
			}
		}
	}
}
