package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseFlags_Positional(t *testing.T) {
	cfg, err := parseFlags([]string{"net.gml", "out", "100", "200", "3", "3"})
	require.NoError(t, err)
	require.Equal(t, "net.gml", cfg.graphFile)
	require.Equal(t, "out", cfg.prefix)
	require.Equal(t, 100, cfg.sampleSize)
	require.Equal(t, 200, cfg.trials)
	require.Equal(t, 3, cfg.motifSize)
	require.Equal(t, 3, cfg.motifID)
	require.Equal(t, int64(0), cfg.seed)
	require.Equal(t, 1, cfg.workers)
}

func TestParseFlags_SeedAndWorkers(t *testing.T) {
	cfg, err := parseFlags([]string{"-seed", "42", "-workers", "4", "net.gml", "out", "10", "50", "3", "3"})
	require.NoError(t, err)
	require.Equal(t, int64(42), cfg.seed)
	require.Equal(t, 4, cfg.workers)
}

func TestParseFlags_YAMLConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample: 25\ntrials: 500\nseed: 7\nworkers: 2\n"), 0o644))

	cfg, err := parseFlags([]string{"-config", path, "net.gml", "out", "4", "11"})
	require.NoError(t, err)
	require.Equal(t, 25, cfg.sampleSize)
	require.Equal(t, 500, cfg.trials)
	require.Equal(t, int64(7), cfg.seed)
	require.Equal(t, 2, cfg.workers)
	require.Equal(t, 4, cfg.motifSize)
	require.Equal(t, 11, cfg.motifID)
}

func TestParseFlags_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	require.NoError(t, os.WriteFile(path, []byte("sample: 25\ntrials: 500\nseed: 7\nworkers: 2\n"), 0o644))

	// Explicit flags win over the config file; positional SAMPLE/TRIALS
	// win over its sample/trials.
	cfg, err := parseFlags([]string{"-config", path, "-seed", "99", "net.gml", "out", "10", "50", "3", "3"})
	require.NoError(t, err)
	require.Equal(t, 10, cfg.sampleSize)
	require.Equal(t, 50, cfg.trials)
	require.Equal(t, int64(99), cfg.seed)
	require.Equal(t, 2, cfg.workers)
}

func TestParseFlags_ArgumentErrors(t *testing.T) {
	_, err := parseFlags([]string{"net.gml", "out"})
	require.Error(t, err)

	_, err = parseFlags([]string{"net.gml", "out", "ten", "200", "3", "3"})
	require.Error(t, err)

	// Four positionals require a config file.
	_, err = parseFlags([]string{"net.gml", "out", "3", "3"})
	require.Error(t, err)
}
