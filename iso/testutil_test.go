package iso_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiocomputeLab/mctools/core"
)

// relabel rebuilds g with node IDs permuted: node v becomes perm[v].
func relabel(t *testing.T, g *core.Graph, perm []int) *core.Graph {
	t.Helper()
	require.Len(t, perm, g.NodeCount())

	h := core.New(g.NodeCount(), core.WithDirected(g.Directed()))
	for _, e := range g.Edges() {
		require.NoError(t, h.AddEdge(perm[e.From], perm[e.To]))
	}

	return h
}
