package motif

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/BiocomputeLab/mctools/core"
)

// Run computes the full statistic pair for one host/motif invocation:
// the observed clustering coefficient, opts.SampleSize null-model sample
// coefficients, and the z-score of the observation against them.
//
// Samples are independent; each is generated from its own derived RNG
// stream, so the output depends only on opts.Seed, never on opts.Workers.
// A sample that fails to converge, or whose coefficient is undefined, is
// recorded as SentinelInvalid and excluded from the z-score (never
// retried, never coerced to zero).
//
// When every sample fails, or all valid samples are identical, Run
// returns the partial Result (Samples filled, ZScore NaN) together with
// ErrNoValidSamples or ErrZeroVariance so callers can surface the
// distinction. An undefined coefficient on the host itself is a run-level
// failure.
func Run(host, m *core.Graph, opts Options) (*Result, error) {
	if opts.SampleSize < 0 {
		return nil, ErrBadSampleSize
	}
	if opts.TrialCeiling < 1 {
		return nil, ErrBadTrialCeiling
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	observed, err := Clustering(host, m, workers)
	if err != nil {
		return nil, fmt.Errorf("motif: host coefficient: %w", err)
	}
	target, err := Count(host, m)
	if err != nil {
		return nil, err
	}

	samples, err := sampleCoefficients(m, target, host.NodeCount(), opts, workers)
	if err != nil {
		return nil, err
	}

	res := &Result{
		Coefficient: observed,
		Samples:     samples,
		Nodes:       host.NodeCount(),
		Edges:       host.EdgeCount(),
	}
	for _, v := range samples {
		if v >= 0 {
			res.ValidSamples++
		}
	}

	z, zerr := ZScore(observed, samples)
	res.ZScore = z
	if zerr != nil {
		return res, zerr
	}

	return res, nil
}

// sampleCoefficients generates the per-sample coefficient list, fanning
// sample indices out to a worker pool. Each worker derives a fresh RNG
// per sample from (seed, index) and writes by index, keeping the result
// seed-stable for any worker count.
func sampleCoefficients(m *core.Graph, target, nodeCount int, opts Options, workers int) ([]float64, error) {
	samples := make([]float64, opts.SampleSize)
	errs := make([]error, opts.SampleSize)

	idx := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for s := range idx {
				samples[s], errs[s] = oneSample(m, target, nodeCount, opts, s)
			}
		}()
	}
	for s := 0; s < opts.SampleSize; s++ {
		idx <- s
	}
	close(idx)
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return samples, nil
}

// oneSample produces the coefficient of sample s, absorbing the two
// per-sample edge cases (non-convergence, undefined coefficient) into
// the sentinel and propagating anything else.
func oneSample(m *core.Graph, target, nodeCount int, opts Options, s int) (float64, error) {
	rng := rand.New(rand.NewSource(deriveSeed(opts.Seed, uint64(s))))
	g, err := Sample(m, target, nodeCount, opts.TrialCeiling, rng)
	if errors.Is(err, ErrNoConvergence) {
		return SentinelInvalid, nil
	}
	if err != nil {
		return SentinelInvalid, err
	}

	// Generated graphs are transient: computed, summarized, discarded.
	c, err := Clustering(g, m, 1)
	if errors.Is(err, ErrUndefinedCoefficient) {
		return SentinelInvalid, nil
	}
	if err != nil {
		return SentinelInvalid, err
	}

	return c, nil
}

// ZScore standardizes observed against the sample distribution:
// (observed − mean) / sqrt(meanOfSquares − mean²), using the population
// form of the variance. Sentinel
// and NaN entries are excluded. Returns ErrNoValidSamples when nothing
// remains and ErrZeroVariance when the variance term is not positive.
func ZScore(observed float64, samples []float64) (float64, error) {
	valid := make([]float64, 0, len(samples))
	for _, v := range samples {
		if v >= 0 && !math.IsNaN(v) {
			valid = append(valid, v)
		}
	}
	if len(valid) == 0 {
		return math.NaN(), ErrNoValidSamples
	}

	mean := stat.Mean(valid, nil)
	variance := stat.MomentAbout(2, valid, mean, nil) // Σ(x−μ)²/n == E[x²]−μ²
	if variance <= 0 {
		return math.NaN(), ErrZeroVariance
	}

	return (observed - mean) / math.Sqrt(variance), nil
}
