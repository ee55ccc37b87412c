// Command mcc computes the motif clustering coefficient of a GML graph
// and its z-score against randomly generated null-model graphs holding
// the same number of motif instances.
//
// Usage:
//
//	mcc [options] FILENAME PREFIX SAMPLE TRIALS MOTIF_SIZE MOTIF_ID
//
// With -config, SAMPLE and TRIALS may come from the YAML file instead:
//
//	mcc -config run.yaml FILENAME PREFIX MOTIF_SIZE MOTIF_ID
//
// Outputs PREFIX_samples.txt (one coefficient per line, failed samples
// as -1.00000000) and PREFIX_stats.txt (node/edge counts, coefficient,
// z-score).
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/BiocomputeLab/mctools/gml"
	"github.com/BiocomputeLab/mctools/iso"
	"github.com/BiocomputeLab/mctools/motif"
)

// config holds all CLI configuration parsed from flags, the optional
// YAML run config, and positional arguments.
type config struct {
	graphFile  string
	prefix     string
	sampleSize int
	trials     int
	motifSize  int
	motifID    int
	seed       int64
	workers    int
}

// runFile is the YAML run-config schema; positional arguments and flags
// override whatever it sets.
type runFile struct {
	Sample  int   `yaml:"sample"`
	Trials  int   `yaml:"trials"`
	Seed    int64 `yaml:"seed"`
	Workers int   `yaml:"workers"`
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcc: %v\n", err)
		os.Exit(2)
	}

	os.Exit(run(cfg))
}

func parseFlags(args []string) (config, error) {
	var (
		cfg        config
		configFile string
	)

	fs := flag.NewFlagSet("mcc", flag.ContinueOnError)
	fs.Int64Var(&cfg.seed, "seed", 0, "RNG seed (0 selects the default stream)")
	fs.IntVar(&cfg.workers, "workers", 1, "parallel sample workers")
	fs.StringVar(&configFile, "config", "", "YAML run config (sample/trials/seed/workers)")
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: mcc [options] FILENAME PREFIX SAMPLE TRIALS MOTIF_SIZE MOTIF_ID\n")
		fmt.Fprintf(fs.Output(), "       mcc -config run.yaml [options] FILENAME PREFIX MOTIF_SIZE MOTIF_ID\n\n")
		fmt.Fprintf(fs.Output(), "  FILENAME   - Graph filename (GML format).\n")
		fmt.Fprintf(fs.Output(), "  PREFIX     - Prefix to use on output files.\n")
		fmt.Fprintf(fs.Output(), "  SAMPLE     - Size of the sample to generate z-score with.\n")
		fmt.Fprintf(fs.Output(), "  TRIALS     - Trial ceiling when placing motifs in a random sample.\n")
		fmt.Fprintf(fs.Output(), "  MOTIF_SIZE - Size of the motif to consider (3 or 4 nodes).\n")
		fmt.Fprintf(fs.Output(), "  MOTIF_ID   - Isomorphism class ID for the motif.\n\nOptions:\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	seedSet, workersSet := false, false
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			seedSet = true
		case "workers":
			workersSet = true
		}
	})
	if configFile != "" {
		rf, err := loadRunFile(configFile)
		if err != nil {
			return config{}, err
		}
		cfg.sampleSize = rf.Sample
		cfg.trials = rf.Trials
		if !seedSet {
			cfg.seed = rf.Seed
		}
		if !workersSet && rf.Workers > 0 {
			cfg.workers = rf.Workers
		}
	}

	pos := fs.Args()
	switch {
	case len(pos) == 6:
		cfg.graphFile, cfg.prefix = pos[0], pos[1]
		vals, err := atoiAll(pos[2:])
		if err != nil {
			return config{}, err
		}
		cfg.sampleSize, cfg.trials, cfg.motifSize, cfg.motifID = vals[0], vals[1], vals[2], vals[3]

	case len(pos) == 4 && configFile != "":
		cfg.graphFile, cfg.prefix = pos[0], pos[1]
		vals, err := atoiAll(pos[2:])
		if err != nil {
			return config{}, err
		}
		cfg.motifSize, cfg.motifID = vals[0], vals[1]

	default:
		fs.Usage()

		return config{}, errors.New("invalid number of arguments")
	}

	return cfg, nil
}

func loadRunFile(path string) (runFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return runFile{}, err
	}
	var rf runFile
	if err := yaml.Unmarshal(data, &rf); err != nil {
		return runFile{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	return rf, nil
}

func atoiAll(args []string) ([]int, error) {
	vals := make([]int, len(args))
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return nil, fmt.Errorf("%q is not an integer", a)
		}
		vals[i] = n
	}

	return vals, nil
}

// run executes one full coefficient/z-score computation. Returns an exit
// code: 0 for success (including a distinctly reported undefined
// z-score), 1 for failure.
func run(cfg config) int {
	f, err := os.Open(cfg.graphFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcc: %v\n", err)

		return 1
	}
	host, _, err := gml.Parse(f)
	f.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcc: %s: %v\n", cfg.graphFile, err)

		return 1
	}

	m, err := iso.FromClass(cfg.motifSize, cfg.motifID, host.Directed())
	if err != nil {
		fmt.Fprintf(os.Stderr, "mcc: motif %d/%d: %v\n", cfg.motifSize, cfg.motifID, err)

		return 1
	}

	res, err := motif.Run(host, m, motif.Options{
		SampleSize:   cfg.sampleSize,
		TrialCeiling: cfg.trials,
		Seed:         cfg.seed,
		Workers:      cfg.workers,
	})
	switch {
	case errors.Is(err, motif.ErrNoValidSamples):
		fmt.Fprintln(os.Stderr, "mcc: z-score undefined: no sample converged")
	case errors.Is(err, motif.ErrZeroVariance):
		fmt.Fprintln(os.Stderr, "mcc: z-score undefined: sample distribution has zero variance")
	case err != nil:
		fmt.Fprintf(os.Stderr, "mcc: %v\n", err)

		return 1
	}

	fmt.Printf("Motif clustering coefficient = %.8f, z-score = %.8f\n", res.Coefficient, res.ZScore)

	if err := writeSamples(cfg.prefix+"_samples.txt", res.Samples); err != nil {
		fmt.Fprintf(os.Stderr, "mcc: %v\n", err)

		return 1
	}
	if err := writeStats(cfg.prefix+"_stats.txt", res); err != nil {
		fmt.Fprintf(os.Stderr, "mcc: %v\n", err)

		return 1
	}

	return 0
}

// writeSamples emits one coefficient per line, sentinels included, so
// downstream analysis can distinguish failed samples.
func writeSamples(path string, samples []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	for _, v := range samples {
		fmt.Fprintf(f, "%.8f\n", v)
	}

	return f.Close()
}

func writeStats(path string, res *motif.Result) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	fmt.Fprintln(f, "Nodes, Edges, MCC, Z-Score")
	fmt.Fprintf(f, "%d, %d, %.8f, %.8f\n", res.Nodes, res.Edges, res.Coefficient, res.ZScore)

	return f.Close()
}
