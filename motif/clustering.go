package motif

import (
	"sync"

	"github.com/BiocomputeLab/mctools/core"
)

// Clustering computes the motif clustering coefficient of host for motif
// m: the fraction of theoretically possible shared-vertex pairings
// between distinct motif instances that is actually realized.
//
// workers > 1 splits the pairwise shared-vertex reduction across that
// many goroutines; the sum is associative, so the result is identical to
// the sequential one. Returns ErrUndefinedCoefficient when host holds
// fewer than two instances — callers must treat that as "no value", not
// zero. Complexity: O(maps² · motifSize²) dominated by the pair loop.
func Clustering(host, m *core.Graph, workers int) (float64, error) {
	set, err := matchValidated(host, m)
	if err != nil {
		return 0, err
	}
	unique, err := set.uniqueInstances()
	if err != nil {
		return 0, err
	}
	if unique < 2 {
		return 0, ErrUndefinedCoefficient
	}

	// The pair loop runs over the unfiltered-by-symmetry mapping set, so
	// every unordered instance pair is counted rotSym² times; dividing the
	// raw total recovers the per-unique-pair count.
	totalShared := set.totalShared(workers)
	actualShared := totalShared / (set.rotSym * set.rotSym)

	// Two distinct instances can share at most motifSize-1 vertices
	// (sharing all of them would make the instances identical).
	possibleShared := (set.motifSize - 1) * unique * (unique - 1) / 2

	return float64(actualShared) / float64(possibleShared), nil
}

// totalShared sums shared-vertex counts over all unordered pairs of valid
// mappings, skipping pairs that cover the same node set (identical
// instances cannot share with themselves).
func (s *mappingSet) totalShared(workers int) int {
	if workers <= 1 {
		return s.sharedRange(0, 1)
	}

	partial := make([]int, workers)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			// Interleaved outer indices balance the shrinking inner loop.
			partial[w] = s.sharedRange(w, workers)
		}(w)
	}
	wg.Wait()

	total := 0
	for _, p := range partial {
		total += p
	}

	return total
}

// sharedRange accumulates pair contributions for outer indices start,
// start+stride, start+2·stride, …
func (s *mappingSet) sharedRange(start, stride int) int {
	total := 0
	for i := start; i < len(s.maps); i += stride {
		if !s.maps[i].valid {
			continue
		}
		for j := i + 1; j < len(s.maps); j++ {
			if !s.maps[j].valid {
				continue
			}
			if found := sharedNodes(s.maps[i].nodes, s.maps[j].nodes); found < s.motifSize {
				total += found
			}
		}
	}

	return total
}
