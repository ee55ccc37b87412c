package iso

import "github.com/BiocomputeLab/mctools/core"

// constraint records a pattern edge between position pos and an
// earlier-assigned position prior; forward means the edge runs
// prior→pos (only meaningful for directed patterns).
type constraint struct {
	prior   int
	forward bool
}

// matcher holds the immutable state of one enumeration: the host, the
// pattern size, per-position edge constraints against earlier positions,
// and per-position self-loop requirements.
type matcher struct {
	host    *core.Graph
	size    int
	cons    [][]constraint
	loops   []bool
	mapping []int
	used    []bool
}

// Subisomorphisms returns every embedding of pattern into host as a slice
// of mappings; mapping[i] is the host node matched to pattern position i.
// All symmetric duplicates are included. The result is empty (nil error)
// when no embedding exists. Complexity: exponential in pattern size in
// the worst case; patterns here are 3-4 nodes.
func Subisomorphisms(host, pattern *core.Graph) ([][]int, error) {
	var out [][]int
	err := forEachEmbedding(host, pattern, func(m []int) {
		cp := make([]int, len(m))
		copy(cp, m)
		out = append(out, cp)
	})
	if err != nil {
		return nil, err
	}

	return out, nil
}

// CountSubisomorphisms returns the number of embeddings of pattern into
// host without materializing them.
func CountSubisomorphisms(host, pattern *core.Graph) (int, error) {
	n := 0
	err := forEachEmbedding(host, pattern, func([]int) { n++ })
	if err != nil {
		return 0, err
	}

	return n, nil
}

// AutomorphismCount returns the number of self-embeddings of g — the
// motif's rotational symmetry. At least 1 (the identity) for any
// non-empty simple graph.
func AutomorphismCount(g *core.Graph) (int, error) {
	return CountSubisomorphisms(g, g)
}

// Isomorphic reports whether two simple graphs of equal size are
// isomorphic. Defined for simplified graphs: multiplicities are ignored
// by the matcher, so callers simplify first when parallels may exist.
func Isomorphic(a, b *core.Graph) (bool, error) {
	if a.NodeCount() != b.NodeCount() || a.EdgeCount() != b.EdgeCount() {
		return false, nil
	}
	// Equal node and edge counts: any embedding is a bijection on nodes
	// and edges, hence an isomorphism.
	n, err := CountSubisomorphisms(a, b)
	if err != nil {
		return false, err
	}

	return n > 0, nil
}

// forEachEmbedding drives the backtracking search, invoking fn with a
// shared mapping buffer for every embedding found. fn must copy the
// buffer if it retains it.
func forEachEmbedding(host, pattern *core.Graph, fn func([]int)) error {
	if host.Directed() != pattern.Directed() {
		return ErrMixedDirectedness
	}
	size := pattern.NodeCount()
	if size == 0 || size > host.NodeCount() {
		return nil
	}

	m := &matcher{
		host:    host,
		size:    size,
		cons:    make([][]constraint, size),
		loops:   make([]bool, size),
		mapping: make([]int, size),
		used:    make([]bool, host.NodeCount()),
	}
	for pos := 0; pos < size; pos++ {
		m.loops[pos] = pattern.HasEdge(pos, pos)
		for prior := 0; prior < pos; prior++ {
			if pattern.HasEdge(prior, pos) {
				m.cons[pos] = append(m.cons[pos], constraint{prior: prior, forward: true})
			}
			if pattern.Directed() && pattern.HasEdge(pos, prior) {
				m.cons[pos] = append(m.cons[pos], constraint{prior: prior, forward: false})
			}
		}
	}
	m.extend(0, fn)

	return nil
}

// extend tries every host node at pattern position pos, in ascending
// node-ID order for deterministic output.
func (m *matcher) extend(pos int, fn func([]int)) {
	if pos == m.size {
		fn(m.mapping)

		return
	}
	for v := 0; v < m.host.NodeCount(); v++ {
		if m.used[v] || !m.feasible(pos, v) {
			continue
		}
		m.mapping[pos] = v
		m.used[v] = true
		m.extend(pos+1, fn)
		m.used[v] = false
	}
}

// feasible checks host node v against all pattern edges joining pos to
// earlier-assigned positions, plus any self-loop requirement.
func (m *matcher) feasible(pos, v int) bool {
	if m.loops[pos] && !m.host.HasEdge(v, v) {
		return false
	}
	for _, c := range m.cons[pos] {
		u := m.mapping[c.prior]
		if c.forward {
			if !m.host.HasEdge(u, v) {
				return false
			}
		} else if !m.host.HasEdge(v, u) {
			return false
		}
	}

	return true
}
