package motif

import (
	"fmt"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/BiocomputeLab/mctools/core"
	"github.com/BiocomputeLab/mctools/iso"
)

// TypeCensus tallies how the motif instances of one host graph overlap
// pairwise.
type TypeCensus struct {
	// Types are the topologically distinct overlap shapes for the motif,
	// as produced by ClusterTypes.
	Types []*core.Graph

	// Counts[k] is the number of overlapping instance pairs whose realized
	// overlap subgraph is isomorphic to Types[k].
	Counts []int

	// NonOverlapping counts instance pairs that share no vertex.
	NonOverlapping int

	// NodeSets[k] lists the host node IDs participating in at least one
	// pair of type k, in first-appearance order.
	NodeSets [][]int
}

// ClusterTypes enumerates every topologically distinct way two instances
// of motif m can overlap in 1..motifSize−1 vertices: for each overlap
// cardinality, all ordered tuples of distinct motif positions are paired,
// the two copies are merged under that identification, merges that damage
// either copy (extra edges inside one copy's node set) are discarded, and
// the survivors are deduplicated by isomorphism.
//
// Supports 3- and 4-node motifs, matching the class catalogue.
func ClusterTypes(m *core.Graph) ([]*core.Graph, error) {
	size := m.NodeCount()
	if size < 3 || size > 4 {
		return nil, ErrMotifSize
	}

	var types []*core.Graph
	for overlap := 1; overlap < size; overlap++ {
		tuples := combin.Permutations(size, overlap)
		for _, m1 := range tuples {
			for _, m2 := range tuples {
				merged, secondNodes, err := mergeMotifs(m, m1, m2)
				if err != nil {
					return nil, err
				}
				// Either copy losing or gaining edges means the overlap is
				// not realizable without destroying a motif instance.
				if merged.InducedEdgeCount(firstCopyNodes(size)) != m.EdgeCount() ||
					merged.InducedEdgeCount(secondNodes) != m.EdgeCount() {
					continue
				}
				known, err := containsIsomorphic(types, merged)
				if err != nil {
					return nil, err
				}
				if !known {
					types = append(types, merged)
				}
			}
		}
	}

	return types, nil
}

// ClassifyPairs finds all motif instances of m in host, then classifies
// every overlapping pair of instances against the motif's cluster types.
// Pairs whose realized overlap matches no type (the overlap destroyed an
// instance's edge structure) are left uncounted, as are pairs with no
// shared vertex beyond the NonOverlapping tally.
func ClassifyPairs(host, m *core.Graph) (*TypeCensus, error) {
	types, err := ClusterTypes(m)
	if err != nil {
		return nil, err
	}
	set, err := matchValidated(host, m)
	if err != nil {
		return nil, err
	}
	instances := set.dedupByNodeSet()

	census := &TypeCensus{
		Types:    types,
		Counts:   make([]int, len(types)),
		NodeSets: make([][]int, len(types)),
	}
	seen := make([]map[int]struct{}, len(types))
	for k := range seen {
		seen[k] = make(map[int]struct{})
	}

	for i := 0; i < len(instances); i++ {
		for j := i + 1; j < len(instances); j++ {
			sub, overlaps, err := overlapSubgraph(host, m, instances[i], instances[j])
			if err != nil {
				return nil, err
			}
			if !overlaps {
				census.NonOverlapping++

				continue
			}
			for k, tg := range types {
				same, isoErr := iso.Isomorphic(sub, tg)
				if isoErr != nil {
					return nil, isoErr
				}
				if same {
					census.Counts[k]++
					census.recordNodes(k, seen[k], instances[i], instances[j])

					break
				}
			}
		}
	}

	return census, nil
}

// containsIsomorphic reports whether g is isomorphic to any graph in
// types.
func containsIsomorphic(types []*core.Graph, g *core.Graph) (bool, error) {
	for _, tg := range types {
		same, err := iso.Isomorphic(g, tg)
		if err != nil {
			return false, err
		}
		if same {
			return true, nil
		}
	}

	return false, nil
}

// recordNodes folds both instances' host nodes into type k's node set.
func (c *TypeCensus) recordNodes(k int, seen map[int]struct{}, a, b []int) {
	for _, nodes := range [][]int{a, b} {
		for _, v := range nodes {
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				c.NodeSets[k] = append(c.NodeSets[k], v)
			}
		}
	}
}

// firstCopyNodes returns 0..size-1, the merged-graph nodes carrying the
// first copy.
func firstCopyNodes(size int) []int {
	nodes := make([]int, size)
	for i := range nodes {
		nodes[i] = i
	}

	return nodes
}

// mergeMotifs merges two copies of motif m: the first copy keeps
// positions 0..size-1, and the second copy's position m2[i] is identified
// with the first copy's position m1[i] while its remaining positions get
// fresh node IDs. Returns the merged graph (parallel edges collapsed,
// per-copy structure preserved) and the node IDs hosting the second copy.
func mergeMotifs(m *core.Graph, m1, m2 []int) (*core.Graph, []int, error) {
	size := m.NodeCount()
	merged := m.Clone()
	merged.AddNodes(size - len(m1))

	// toMerged[p] is the merged-graph node carrying the second copy's
	// position p.
	toMerged := make([]int, size)
	for i := range toMerged {
		toMerged[i] = -1
	}
	for i := range m1 {
		toMerged[m2[i]] = m1[i]
	}
	next := size
	for i, v := range toMerged {
		if v == -1 {
			toMerged[i] = next
			next++
		}
	}

	for _, e := range m.Edges() {
		if err := merged.AddEdge(toMerged[e.From], toMerged[e.To]); err != nil {
			return nil, nil, fmt.Errorf("motif: merging copies: %w", err)
		}
	}
	merged.Simplify(true, false)

	return merged, toMerged, nil
}

// overlapSubgraph realizes the overlap of two host instances as a graph:
// the first instance contributes the motif's canonical edges on positions
// 0..size-1; the second contributes its host edges, discovered from its
// non-shared nodes. Reports false when the instances share no vertex.
func overlapSubgraph(host, m *core.Graph, a, b []int) (*core.Graph, bool, error) {
	if sharedNodes(a, b) == 0 {
		return nil, false, nil
	}
	size := m.NodeCount()

	sub := m.Clone()
	pos := make(map[int]int, 2*size) // host ID → sub position
	for i, hostID := range a {
		pos[hostID] = i
	}
	inFirst := func(hostID int) bool { _, ok := pos[hostID]; return ok && pos[hostID] < size }
	appendedFrom := size
	for _, hostID := range b {
		if _, ok := pos[hostID]; !ok {
			sub.AddNodes(1)
			pos[hostID] = appendedFrom
			appendedFrom++
		}
	}

	// Second instance's realized edges: host edges within its node set
	// where at least one endpoint lies outside the shared region (edges
	// between two shared nodes already belong to the first copy).
	for bi, u := range b {
		for bj, v := range b {
			if bi == bj || (!host.Directed() && bj < bi) {
				continue
			}
			if !host.HasEdge(u, v) {
				continue
			}
			if inFirst(u) && inFirst(v) {
				continue
			}
			if err := sub.AddEdge(pos[u], pos[v]); err != nil {
				return nil, false, fmt.Errorf("motif: overlap subgraph: %w", err)
			}
		}
	}
	sub.Simplify(true, true)

	return sub, true, nil
}
