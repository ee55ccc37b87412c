package motif

import (
	"math/rand"

	"github.com/BiocomputeLab/mctools/core"
)

// initialBatchDivisor and shrinkDivisor control the hill climb: the first
// batch tries a fifth of the target at once, and batches shrink by thirds
// on overshoot or when re-aimed at the remaining gap.
const (
	initialBatchDivisor = 5
	shrinkDivisor       = 3
)

// Sample generates one null-model graph: nodeCount nodes, the motif's
// directedness, and exactly targetCount unique instances of m.
//
// The search keeps a single accepted graph and hill-climbs toward the
// target: each trial clones the accepted graph, inserts a batch of motif
// instances on uniformly random node tuples (coincident nodes and the
// loops/parallel edges they create are deliberately not filtered), and
// recounts. An exact hit terminates; progress below the target is
// accepted with the batch re-aimed at a third of the remaining gap
// (never enlarged); anything else is discarded and the batch shrinks
// geometrically. Once the batch has bottomed out at one instance, every
// further rejection counts against trialCeiling, and exhausting it
// yields ErrNoConvergence. Rejection is a pure discard: candidates are
// fresh clones, never aliases of the accepted graph.
//
// rng may be nil, selecting the deterministic default stream.
func Sample(m *core.Graph, targetCount, nodeCount, trialCeiling int, rng *rand.Rand) (*core.Graph, error) {
	if trialCeiling < 1 {
		return nil, ErrBadTrialCeiling
	}
	if rng == nil {
		rng = rngFromSeed(0)
	}

	accepted := core.New(nodeCount, core.WithDirected(m.Directed()))
	if targetCount <= 0 {
		return accepted, nil // the empty graph holds zero instances
	}

	motifSize := m.NodeCount()
	if nodeCount < motifSize {
		return nil, ErrNoConvergence // too few nodes to hold a single instance
	}
	motifEdges := m.Edges()
	curAdd := targetCount / initialBatchDivisor
	if curAdd < 1 {
		curAdd = 1
	}

	lastCount := 0
	stalled := 0
	nodes := make([]int, motifSize)
	for stalled < trialCeiling {
		candidate := accepted.Clone()
		for j := 0; j < curAdd; j++ {
			for k := range nodes {
				nodes[k] = rng.Intn(nodeCount)
			}
			for _, e := range motifEdges {
				if err := candidate.AddEdge(nodes[e.From], nodes[e.To]); err != nil {
					return nil, err
				}
			}
		}

		count, err := Count(candidate, m)
		if err != nil {
			return nil, err
		}
		switch {
		case count == targetCount:
			return candidate, nil

		case count < targetCount && count != lastCount:
			// Progress: accept and re-aim the batch at the remaining gap.
			accepted = candidate
			lastCount = count
			if next := (targetCount - count) / shrinkDivisor; next < 1 {
				curAdd = 1
			} else if next < curAdd {
				curAdd = next
			}
			stalled = 0

		default:
			// Overshoot or no progress: discard and shrink the batch.
			curAdd /= shrinkDivisor
			if curAdd <= 1 {
				curAdd = 1
				stalled++
			}
		}
	}

	return nil, ErrNoConvergence
}
