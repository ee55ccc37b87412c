package motif_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiocomputeLab/mctools/motif"
)

// TestClustering_SharedVertex: two triangles sharing one vertex realize
// one of the two possible shared vertices — coefficient 0.5.
func TestClustering_SharedVertex(t *testing.T) {
	c, err := motif.Clustering(bowtieHost(t), triangleMotif(t), 1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, c, 1e-12)
}

// TestClustering_SharedEdge: two triangles sharing an edge realize both
// possible shared vertices — coefficient 1.
func TestClustering_SharedEdge(t *testing.T) {
	c, err := motif.Clustering(diamondHost(t), triangleMotif(t), 1)
	require.NoError(t, err)
	require.InDelta(t, 1.0, c, 1e-12)
}

// TestClustering_PossibleSharedFormula: four instances give
// (motifSize−1)·4·3/2 = 12 possible shared vertices; two triangles
// sharing an edge contribute 2 actual, the rest are disjoint — 2/12.
func TestClustering_PossibleSharedFormula(t *testing.T) {
	host := buildGraph(t, 10, false, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}, // diamond: 2 instances
		{4, 5}, {5, 6}, {6, 4}, // disjoint triangle
		{7, 8}, {8, 9}, {9, 7}, // disjoint triangle
	})

	c, err := motif.Clustering(host, triangleMotif(t), 1)
	require.NoError(t, err)
	require.InDelta(t, 2.0/12.0, c, 1e-12)
}

// TestClustering_DisjointInstances: no sharing at all — coefficient 0,
// still defined because pairs exist.
func TestClustering_DisjointInstances(t *testing.T) {
	host := buildGraph(t, 6, false, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{3, 4}, {4, 5}, {5, 3},
	})

	c, err := motif.Clustering(host, triangleMotif(t), 1)
	require.NoError(t, err)
	require.Zero(t, c)
}

// TestClustering_Undefined: fewer than two instances has no pairs; the
// coefficient must be reported undefined, not zero.
func TestClustering_Undefined(t *testing.T) {
	single := buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}, {2, 0}})
	_, err := motif.Clustering(single, triangleMotif(t), 1)
	require.ErrorIs(t, err, motif.ErrUndefinedCoefficient)

	empty := buildGraph(t, 4, false, nil)
	_, err = motif.Clustering(empty, triangleMotif(t), 1)
	require.ErrorIs(t, err, motif.ErrUndefinedCoefficient)
}

// TestClustering_DirectedValidationFeedsAccounting: invalidated mappings
// must enter neither the count nor the shared-vertex accounting. The
// feed-forward loop motif matches structurally on {0,1,2}, but the extra
// arc 2→0 raises that node set's induced edge count to 4, so only the
// two genuine instances sharing node 5 remain.
func TestClustering_DirectedValidationFeedsAccounting(t *testing.T) {
	ffl := buildGraph(t, 3, true, [][2]int{{0, 1}, {0, 2}, {1, 2}})
	host := buildGraph(t, 8, true, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {2, 0}, // FFL shape + extra arc: rejected
		{3, 4}, {3, 5}, {4, 5}, // FFL on {3,4,5}
		{5, 6}, {5, 7}, {6, 7}, // FFL on {5,6,7}
	})

	n, err := motif.Count(host, ffl)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	// One shared vertex of two possible.
	c, err := motif.Clustering(host, ffl, 1)
	require.NoError(t, err)
	require.InDelta(t, 0.5, c, 1e-12)
}

// TestClustering_WorkersAgree: the parallel reduction matches the
// sequential one and relabeling node IDs leaves the coefficient intact.
func TestClustering_WorkersAgree(t *testing.T) {
	host := buildGraph(t, 10, false, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3},
		{4, 5}, {5, 6}, {6, 4},
		{7, 8}, {8, 9}, {9, 7},
	})
	tri := triangleMotif(t)

	seq, err := motif.Clustering(host, tri, 1)
	require.NoError(t, err)
	for _, workers := range []int{2, 3, 8} {
		par, perr := motif.Clustering(host, tri, workers)
		require.NoError(t, perr)
		require.Equal(t, seq, par)
	}

	// Relabel: node v becomes 9-v.
	relabeled := buildGraph(t, 10, false, nil)
	for _, e := range host.Edges() {
		require.NoError(t, relabeled.AddEdge(9-e.From, 9-e.To))
	}
	c, err := motif.Clustering(relabeled, tri, 1)
	require.NoError(t, err)
	require.Equal(t, seq, c)
}
