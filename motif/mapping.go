package motif

import (
	"fmt"

	"github.com/BiocomputeLab/mctools/core"
	"github.com/BiocomputeLab/mctools/iso"
)

// mapping is one matcher embedding: host node IDs indexed by motif
// position, tagged with an explicit validity flag (invalid mappings are
// kept in place so indices stay stable for pairwise loops).
type mapping struct {
	nodes []int
	valid bool
}

// mappingSet is the full matcher output for one (host, motif) pair,
// symmetric duplicates included, plus the motif's structural constants.
type mappingSet struct {
	motifSize  int
	rotSym     int
	maps       []mapping
	validCount int
}

// matchValidated runs the matcher and applies the directed validity rule:
// on directed hosts a mapping survives only if the induced edge count of
// its node set equals the motif's edge count. Undirected mappings are
// always valid. (Edge-count equality is a cheap filter, not a full
// directed-isomorphism re-check; see the package comment.)
func matchValidated(host, m *core.Graph) (*mappingSet, error) {
	rotSym, err := iso.AutomorphismCount(m)
	if err != nil {
		return nil, fmt.Errorf("motif: automorphism count: %w", err)
	}
	raw, err := iso.Subisomorphisms(host, m)
	if err != nil {
		return nil, fmt.Errorf("motif: matching: %w", err)
	}

	set := &mappingSet{
		motifSize: m.NodeCount(),
		rotSym:    rotSym,
		maps:      make([]mapping, 0, len(raw)),
	}
	motifEdges := m.EdgeCount()
	for _, nodes := range raw {
		mp := mapping{nodes: nodes, valid: true}
		if host.Directed() && host.InducedEdgeCount(nodes) != motifEdges {
			mp.valid = false
		} else {
			set.validCount++
		}
		set.maps = append(set.maps, mp)
	}

	return set, nil
}

// uniqueInstances divides the surviving mappings by the automorphism
// count. A fractional result indicates a matcher/validation bug and is
// surfaced, never truncated.
func (s *mappingSet) uniqueInstances() (int, error) {
	if s.rotSym < 1 {
		return 0, ErrCountNotIntegral
	}
	if s.validCount%s.rotSym != 0 {
		return 0, fmt.Errorf("%w: %d mappings, %d automorphisms",
			ErrCountNotIntegral, s.validCount, s.rotSym)
	}

	return s.validCount / s.rotSym, nil
}

// dedupByNodeSet reduces the valid mappings to one representative per
// instance (mappings covering the same node set are the same instance),
// preserving first-appearance order.
func (s *mappingSet) dedupByNodeSet() [][]int {
	uniq := make([][]int, 0, s.validCount/max(s.rotSym, 1))
	for _, mp := range s.maps {
		if !mp.valid {
			continue
		}
		found := false
		for _, seen := range uniq {
			if sharedNodes(mp.nodes, seen) == s.motifSize {
				found = true

				break
			}
		}
		if !found {
			uniq = append(uniq, mp.nodes)
		}
	}

	return uniq
}

// sharedNodes counts how many entries of a appear anywhere in b — the
// full motifSize×motifSize comparison, each shared vertex counted once.
func sharedNodes(a, b []int) int {
	found := 0
	for _, x := range a {
		for _, y := range b {
			if x == y {
				found++

				break
			}
		}
	}

	return found
}
