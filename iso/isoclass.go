package iso

import (
	"sort"
	"sync"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/BiocomputeLab/mctools/core"
)

// pairSlot is one potential edge position of a labeled graph: an
// unordered pair (u < v) for undirected graphs, an ordered pair (u != v)
// for directed ones. A labeled graph of a given size is a bitmask over
// its slots.
type pairSlot struct{ u, v int }

// classTable is the catalogue of isomorphism classes for one
// (size, directed) combination: canonical codes in ascending order plus
// the reverse index.
type classTable struct {
	directed    bool
	slots       []pairSlot
	indexBySlot map[pairSlot]int
	perms       [][]int
	codes       []uint32
	index       map[uint32]int
}

var (
	tablesMu sync.Mutex
	tables   = make(map[struct {
		size     int
		directed bool
	}]*classTable)
)

// ClassCount returns the number of isomorphism classes of labeled
// loop-free simple graphs with the given size and directedness.
// Only sizes 3 and 4 are supported.
func ClassCount(size int, directed bool) (int, error) {
	t, err := table(size, directed)
	if err != nil {
		return 0, err
	}

	return len(t.codes), nil
}

// FromClass builds the canonical representative graph of an isomorphism
// class. Class IDs run 0..ClassCount-1 in ascending canonical-code order.
func FromClass(size, classID int, directed bool) (*core.Graph, error) {
	t, err := table(size, directed)
	if err != nil {
		return nil, err
	}
	if classID < 0 || classID >= len(t.codes) {
		return nil, ErrClassRange
	}

	g := core.New(size, core.WithDirected(directed))
	mask := t.codes[classID]
	for i, s := range t.slots {
		if mask&(1<<uint(i)) != 0 {
			if addErr := g.AddEdge(s.u, s.v); addErr != nil {
				return nil, addErr
			}
		}
	}

	return g, nil
}

// ClassOf returns the isomorphism-class ID of g. Multiplicities and
// self-loops are ignored; g must have 3 or 4 nodes.
func ClassOf(g *core.Graph) (int, error) {
	t, err := table(g.NodeCount(), g.Directed())
	if err != nil {
		return 0, err
	}
	var mask uint32
	for i, s := range t.slots {
		if g.HasEdge(s.u, s.v) {
			mask |= 1 << uint(i)
		}
	}

	return t.index[t.canonical(mask)], nil
}

// table returns (building and caching on first use) the class catalogue
// for one size/directedness combination.
func table(size int, directed bool) (*classTable, error) {
	if size < 3 || size > 4 {
		return nil, ErrUnsupportedSize
	}
	key := struct {
		size     int
		directed bool
	}{size, directed}

	tablesMu.Lock()
	defer tablesMu.Unlock()
	if t, ok := tables[key]; ok {
		return t, nil
	}

	t := &classTable{
		directed: directed,
		slots:    slots(size, directed),
		perms:    combin.Permutations(size, size),
		index:    make(map[uint32]int),
	}
	t.indexBySlot = make(map[pairSlot]int, len(t.slots))
	for i, s := range t.slots {
		t.indexBySlot[s] = i
	}
	seen := make(map[uint32]struct{})
	for mask := uint32(0); mask < 1<<uint(len(t.slots)); mask++ {
		seen[t.canonical(mask)] = struct{}{}
	}
	for code := range seen {
		t.codes = append(t.codes, code)
	}
	sort.Slice(t.codes, func(i, j int) bool { return t.codes[i] < t.codes[j] })
	for id, code := range t.codes {
		t.index[code] = id
	}
	tables[key] = t

	return t, nil
}

// slots enumerates the edge positions of a labeled graph in a fixed
// lexicographic order; bit i of a graph code corresponds to slots[i].
func slots(size int, directed bool) []pairSlot {
	var out []pairSlot
	for u := 0; u < size; u++ {
		for v := 0; v < size; v++ {
			if u == v {
				continue
			}
			if !directed && v < u {
				continue
			}
			out = append(out, pairSlot{u: u, v: v})
		}
	}

	return out
}

// canonical reduces a labeled-graph code to its class canonical form: the
// minimum code over all node permutations.
func (t *classTable) canonical(mask uint32) uint32 {
	best := mask
	for _, p := range t.perms {
		var relabeled uint32
		for i, s := range t.slots {
			if mask&(1<<uint(i)) == 0 {
				continue
			}
			u, v := p[s.u], p[s.v]
			if !t.directed && u > v {
				u, v = v, u
			}
			relabeled |= 1 << uint(t.indexBySlot[pairSlot{u: u, v: v}])
		}
		if relabeled < best {
			best = relabeled
		}
	}

	return best
}
