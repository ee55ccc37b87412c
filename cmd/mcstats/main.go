// Command mcstats classifies how the motif instances of a GML graph
// overlap pairwise, against the catalogue of topologically distinct
// overlap shapes for that motif.
//
// Usage:
//
//	mcstats GRAPH_IN MOTIF_SIZE MOTIF_ID [OUT_PREFIX]
//
// The census is printed to stdout as comma-separated counts, one per
// overlap type, with the count of non-overlapping instance pairs last.
// With OUT_PREFIX, each type is written to <prefix>TypeN.gml (N from 1)
// and the participating host nodes per type to <prefix>NodeMaps.txt.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BiocomputeLab/mctools/gml"
	"github.com/BiocomputeLab/mctools/iso"
	"github.com/BiocomputeLab/mctools/motif"
)

type config struct {
	graphIn   string
	motifSize int
	motifID   int
	prefix    string
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcstats: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg))
}

func parseFlags(args []string) (config, error) {
	fs := flag.NewFlagSet("mcstats", flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mcstats GRAPH_IN MOTIF_SIZE MOTIF_ID [OUT_PREFIX]\n\n")
		fmt.Fprintf(fs.Output(), "  GRAPH_IN   - GML format file of input graph\n")
		fmt.Fprintf(fs.Output(), "  MOTIF_SIZE - Size of the motif to consider (3 or 4 nodes)\n")
		fmt.Fprintf(fs.Output(), "  MOTIF_ID   - Isomorphism class of the motif\n")
		fmt.Fprintf(fs.Output(), "  OUT_PREFIX - Prefix for per-type GML and node-map files (optional)\n")
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	pos := fs.Args()
	if len(pos) < 3 || len(pos) > 4 {
		fs.Usage()

		return config{}, fmt.Errorf("invalid number of arguments")
	}

	var cfg config
	cfg.graphIn = pos[0]
	if len(pos) == 4 {
		cfg.prefix = pos[3]
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
		fmt.Fprintf(os.Stderr, "mcstats: %v\n", err)

		return 1
	}
	host, inIDs, err := gml.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcstats: %s: %v\n", cfg.graphIn, err)

		return 1
	}

	m, err := iso.FromClass(cfg.motifSize, cfg.motifID, host.Directed())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcstats: motif %d/%d: %v\n", cfg.motifSize, cfg.motifID, err)

		return 1
	}

	census, err := motif.ClassifyPairs(host, m)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcstats: %v\n", err)

		return 1
	}
	fmt.Fprintf(os.Stderr, "Found %d types of motif clustering\n", len(census.Types))

	if cfg.prefix != "" {
		if err := writeTypes(cfg.prefix, census, inIDs); err != nil {
			fmt.Fprintf(os.Stderr, "mcstats: %v\n", err)

			return 1
		}
	}

	fmt.Println(censusLine(census))

	return 0
}

// censusLine renders per-type counts with the non-overlapping tally last.
func censusLine(census *motif.TypeCensus) string {
	parts := make([]string, 0, len(census.Counts)+1)
	for _, n := range census.Counts {
		parts = append(parts, strconv.Itoa(n))
	}
	parts = append(parts, strconv.Itoa(census.NonOverlapping))

	return strings.Join(parts, ",")
}

// writeTypes emits <prefix>TypeN.gml per overlap type plus
// <prefix>NodeMaps.txt holding, per type, the comma-separated ids of the
// participating host nodes as declared in the input file.
func writeTypes(prefix string, census *motif.TypeCensus, inIDs []int) error {
	for i, tg := range census.Types {
		path := fmt.Sprintf("%sType%d.gml", prefix, i+1)
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		err = gml.Write(f, tg, "mcstats")
		if cerr := f.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			return err
		}
	}

	f, err := os.Create(prefix + "NodeMaps.txt")
	if err != nil {
		return err
	}
	for k := range census.Types {
		ids := make([]string, len(census.NodeSets[k]))
		for j, hostID := range census.NodeSets[k] {
			ids[j] = strconv.Itoa(inIDs[hostID])
		}
		fmt.Fprintln(f, strings.Join(ids, ","))
	}

	return f.Close()
}
