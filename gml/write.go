package gml

import (
	"bufio"
	"fmt"
	"io"

	"github.com/BiocomputeLab/mctools/core"
)

// defaultCreator is stamped on output files when the caller gives none.
const defaultCreator = "mctools"

// Write serializes g as a GML document: a Creator line, then the graph
// block with one node block per node (ids 0..n−1) and one edge block per
// edge, parallels and loops included. creator may be empty.
//
// The output round-trips through Parse with an identity node mapping.
func Write(w io.Writer, g *core.Graph, creator string) error {
	if creator == "" {
		creator = defaultCreator
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "Creator %q\n", creator)
	bw.WriteString("graph\n[\n")
	if g.Directed() {
		bw.WriteString("  directed 1\n")
	}
	for id := 0; id < g.NodeCount(); id++ {
		fmt.Fprintf(bw, "  node\n  [\n    id %d\n  ]\n", id)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "  edge\n  [\n    source %d\n    target %d\n  ]\n", e.From, e.To)
	}
	bw.WriteString("]\n")

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("gml: write: %w", err)
	}

	return nil
}
