package motif_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiocomputeLab/mctools/motif"
)

func TestClusterTypes_Triangle(t *testing.T) {
	types, err := motif.ClusterTypes(triangleMotif(t))
	require.NoError(t, err)

	// Two triangles can only overlap in one shared vertex (bowtie) or a
	// shared edge (diamond); all other identifications damage a copy.
	require.Len(t, types, 2)
	require.Equal(t, 5, types[0].NodeCount())
	require.Equal(t, 6, types[0].EdgeCount())
	require.Equal(t, 4, types[1].NodeCount())
	require.Equal(t, 5, types[1].EdgeCount())
}

func TestClusterTypes_RejectsUnsupportedSizes(t *testing.T) {
	edge := buildGraph(t, 2, false, [][2]int{{0, 1}})
	_, err := motif.ClusterTypes(edge)
	require.ErrorIs(t, err, motif.ErrMotifSize)

	big := buildGraph(t, 5, false, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})
	_, err = motif.ClusterTypes(big)
	require.ErrorIs(t, err, motif.ErrMotifSize)
}

func TestClassifyPairs_Bowtie(t *testing.T) {
	census, err := motif.ClassifyPairs(bowtieHost(t), triangleMotif(t))
	require.NoError(t, err)

	require.Len(t, census.Types, 2)
	require.Equal(t, []int{1, 0}, census.Counts)
	require.Equal(t, 0, census.NonOverlapping)
	require.ElementsMatch(t, []int{0, 1, 2, 3, 4}, census.NodeSets[0])
	require.Empty(t, census.NodeSets[1])
}

func TestClassifyPairs_Diamond(t *testing.T) {
	census, err := motif.ClassifyPairs(diamondHost(t), triangleMotif(t))
	require.NoError(t, err)

	require.Equal(t, []int{0, 1}, census.Counts)
	require.Equal(t, 0, census.NonOverlapping)
	require.ElementsMatch(t, []int{0, 1, 2, 3}, census.NodeSets[1])
}

func TestClassifyPairs_DisjointInstances(t *testing.T) {
	host := buildGraph(t, 6, false, [][2]int{
		{0, 1}, {0, 2}, {1, 2},
		{3, 4}, {3, 5}, {4, 5},
	})

	census, err := motif.ClassifyPairs(host, triangleMotif(t))
	require.NoError(t, err)
	require.Equal(t, []int{0, 0}, census.Counts)
	require.Equal(t, 1, census.NonOverlapping)
}

func TestClassifyPairs_MixedOverlaps(t *testing.T) {
	// Diamond {0,1,2,3} plus a vertex-sharing triangle {3,4,5}: the
	// diamond's two instances share an edge, and each of them pairs with
	// the far triangle through vertex 3 only when they contain it.
	host := buildGraph(t, 6, false, [][2]int{
		{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3},
		{3, 4}, {3, 5}, {4, 5},
	})

	census, err := motif.ClassifyPairs(host, triangleMotif(t))
	require.NoError(t, err)

	// Instances: {0,1,2}, {1,2,3}, {3,4,5}. Pairs: diamond pair, one
	// bowtie pair through vertex 3, one disjoint pair.
	require.Equal(t, []int{1, 1}, census.Counts)
	require.Equal(t, 1, census.NonOverlapping)
}
