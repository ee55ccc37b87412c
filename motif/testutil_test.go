package motif_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiocomputeLab/mctools/core"
)

// buildGraph constructs a graph with n nodes and the given edges.
func buildGraph(t *testing.T, n int, directed bool, edges [][2]int) *core.Graph {
	t.Helper()
	g := core.New(n, core.WithDirected(directed))
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	return g
}

// triangleMotif returns the undirected 3-cycle, the workhorse motif for
// these tests.
func triangleMotif(t *testing.T) *core.Graph {
	return buildGraph(t, 3, false, [][2]int{{0, 1}, {1, 2}, {2, 0}})
}

// bowtieHost returns two triangles sharing node 2 on five nodes.
func bowtieHost(t *testing.T) *core.Graph {
	return buildGraph(t, 5, false, [][2]int{
		{0, 1}, {1, 2}, {2, 0},
		{2, 3}, {3, 4}, {4, 2},
	})
}

// diamondHost returns two triangles sharing the edge 1—2 on four nodes.
func diamondHost(t *testing.T) *core.Graph {
	return buildGraph(t, 4, false, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3},
	})
}
