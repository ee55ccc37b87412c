package gml_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/BiocomputeLab/mctools/core"
	"github.com/BiocomputeLab/mctools/gml"
)

const sampleDoc = `Creator "some tool"
graph
[
  directed 1
  node
  [
    id 10
    label "first"
  ]
  node
  [
    id 20
  ]
  node
  [
    id 5
  ]
  edge
  [
    source 10
    target 20
    weight 1.5
  ]
  edge
  [
    source 20
    target 5
  ]
]
`

func TestParse_Sample(t *testing.T) {
	g, ids, err := gml.Parse(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.True(t, g.Directed())
	require.Equal(t, 3, g.NodeCount())
	require.Equal(t, 2, g.EdgeCount())

	// Dense IDs follow declaration order.
	require.Equal(t, []int{10, 20, 5}, ids)
	require.True(t, g.HasEdge(0, 1))
	require.True(t, g.HasEdge(1, 2))
	require.False(t, g.HasEdge(1, 0))
}

func TestParse_UndirectedByDefault(t *testing.T) {
	doc := `graph [ node [ id 0 ] node [ id 1 ] edge [ source 0 target 1 ] ]`

	g, _, err := gml.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.False(t, g.Directed())
	require.True(t, g.HasEdge(1, 0))
}

func TestParse_EdgeBeforeNodeDeclaration(t *testing.T) {
	doc := `graph [ edge [ source 1 target 2 ] node [ id 1 ] node [ id 2 ] ]`

	g, ids, err := gml.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, ids)
	require.Equal(t, 1, g.EdgeCount())
}

func TestParse_SkipsUnknownKeysAndBlocks(t *testing.T) {
	doc := `Version 1
graph
[
  label "net"
  node
  [
    id 0
    graphics [ x 1.0 y 2.0 fill "#ff0000" ]
  ]
  node [ id 1 ]
  edge [ source 0 target 1 style [ width 2 ] ]
]
`

	g, _, err := gml.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 2, g.NodeCount())
	require.Equal(t, 1, g.EdgeCount())
}

func TestParse_Comments(t *testing.T) {
	doc := "# preamble\ngraph [ # inline\n node [ id 0 ] node [ id 1 ] edge [ source 0 target 1 ] ]"

	g, _, err := gml.Parse(strings.NewReader(doc))
	require.NoError(t, err)
	require.Equal(t, 1, g.EdgeCount())
}

func TestParse_Errors(t *testing.T) {
	t.Run("no graph block", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader(`Creator "x"`))
		require.ErrorIs(t, err, gml.ErrSyntax)
	})

	t.Run("node without id", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader(`graph [ node [ label "a" ] ]`))
		require.ErrorIs(t, err, gml.ErrMissingID)
	})

	t.Run("edge to undeclared node", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader(`graph [ node [ id 0 ] edge [ source 0 target 9 ] ]`))
		require.ErrorIs(t, err, gml.ErrUnknownNode)
	})

	t.Run("edge without endpoints", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader(`graph [ node [ id 0 ] edge [ source 0 ] ]`))
		require.ErrorIs(t, err, gml.ErrSyntax)
	})

	t.Run("non-integer id", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader(`graph [ node [ id banana ] ]`))
		require.ErrorIs(t, err, gml.ErrSyntax)
	})

	t.Run("unterminated block reports line", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader("graph\n[\n  node\n  [\n    id 0\n"))
		require.ErrorIs(t, err, gml.ErrSyntax)
		require.Contains(t, err.Error(), "line")
	})

	t.Run("unterminated string", func(t *testing.T) {
		_, _, err := gml.Parse(strings.NewReader(`graph [ label "oops`))
		require.ErrorIs(t, err, gml.ErrSyntax)
	})
}

func TestWrite_RoundTrip(t *testing.T) {
	g := core.New(4, core.WithDirected(true))
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1]))
	}

	var buf bytes.Buffer
	require.NoError(t, gml.Write(&buf, g, "unit test"))
	require.Contains(t, buf.String(), `Creator "unit test"`)

	back, ids, err := gml.Parse(&buf)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, ids)
	require.True(t, back.Directed())
	require.Equal(t, g.Edges(), back.Edges())
}

func TestWrite_UndirectedOmitsDirectedKey(t *testing.T) {
	g := core.New(2)
	require.NoError(t, g.AddEdge(0, 1))

	var buf bytes.Buffer
	require.NoError(t, gml.Write(&buf, g, ""))
	out := buf.String()
	require.NotContains(t, out, "directed")
	require.Contains(t, out, `Creator "mctools"`)

	back, _, err := gml.Parse(strings.NewReader(out))
	require.NoError(t, err)
	require.False(t, back.Directed())
	require.Equal(t, 1, back.EdgeCount())
}
