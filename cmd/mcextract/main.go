// Command mcextract extracts the subgraph induced by every occurrence of
// a motif in a GML graph: instance nodes and instance edges only,
// incidental edges dropped.
//
// Usage:
//
//	mcextract GRAPH_IN MOTIF_SIZE MOTIF_ID GRAPH_OUT [MAP_OUT]
//
// GRAPH_OUT receives the extraction in GML format. MAP_OUT, when given,
// receives one "outID,inID" line per extracted node, where inID is the
// node's id as declared in the input file.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/BiocomputeLab/mctools/gml"
	"github.com/BiocomputeLab/mctools/iso"
	"github.com/BiocomputeLab/mctools/motif"
)

type config struct {
	graphIn   string
	motifSize int
	motifID   int
	graphOut  string
	mapOut    string
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg))
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("mcextract", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mcextract GRAPH_IN MOTIF_SIZE MOTIF_ID GRAPH_OUT [MAP_OUT]\n\n")
		fmt.Fprintf(fs.Output(), "  GRAPH_IN   - GML format file of input graph\n")
		fmt.Fprintf(fs.Output(), "  MOTIF_SIZE - Size of the motif to consider (3 or 4 nodes)\n")
		fmt.Fprintf(fs.Output(), "  MOTIF_ID   - Isomorphism class of the motif to extract\n")
		fmt.Fprintf(fs.Output(), "  GRAPH_OUT  - File to output the subgraph to (GML format)\n")
		fmt.Fprintf(fs.Output(), "  MAP_OUT    - File of out node -> in node mappings (optional)\n")
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	pos := fs.Args()
	if len(pos) < 4 || len(pos) > 5 {
		fs.Usage()

		return config{}, fmt.Errorf("invalid number of arguments")
	}

	var cfg config
	cfg.graphIn, cfg.graphOut = pos[0], pos[3]
	if len(pos) == 5 {
		cfg.mapOut = pos[4]
	}
	var err error
	if cfg.motifSize, err = strconv.Atoi(pos[1]); err != nil {
		return config{}, fmt.Errorf("%q is not an integer", pos[1])
	}
	if cfg.motifID, err = strconv.Atoi(pos[2]); err != nil {
		return config{}, fmt.Errorf("%q is not an integer", pos[2])
	}

	return cfg, nil
}

func run(cfg config) int {
	f, err := os.Open(cfg.graphIn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: %v\n", err)

		return 1
	}
	host, inIDs, err := gml.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: %s: %v\n", cfg.graphIn, err)

		return 1
	}

	m, err := iso.FromClass(cfg.motifSize, cfg.motifID, host.Directed())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: motif %d/%d: %v\n", cfg.motifSize, cfg.motifID, err)

		return 1
	}

	out, nodeMap, err := motif.Extract(host, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: %v\n", err)

		return 1
	}
	fmt.Printf("Found %d motif nodes in graph.\n", out.NodeCount())

	outFile, err := os.Create(cfg.graphOut)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: %v\n", err)

		return 1
	}
	err = gml.Write(outFile, out, "mcextract")
	if cerr := outFile.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcextract: %v\n", err)

		return 1
	}

	if cfg.mapOut != "" {
		if err := writeNodeMap(cfg.mapOut, nodeMap, inIDs); err != nil {
			fmt.Fprintf(os.Stderr, "mcextract: %v\n", err)

			return 1
		}
	}

	return 0
}

// writeNodeMap emits "outID,inID" lines, translating through the input
// file's original node ids.
func writeNodeMap(path string, nodeMap, inIDs []int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for i, hostID := range nodeMap {
		fmt.Fprintf(f, "%d,%d\n", i, inIDs[hostID])
	}

	return f.Close()
}
