package motif

import "errors"

// SentinelInvalid marks a sample whose generation or coefficient failed.
// Kept in Result.Samples for external persistence; excluded from the
// z-score. Valid coefficients are never negative, so -1 is unambiguous.
const SentinelInvalid = -1.0

// Sentinel errors for the statistics engine.
var (
	// ErrUndefinedCoefficient indicates fewer than two motif instances:
	// no instance pairs exist, so the coefficient has no value.
	ErrUndefinedCoefficient = errors.New("motif: clustering coefficient undefined (fewer than two instances)")

	// ErrCountNotIntegral indicates valid mappings not divisible by the
	// automorphism count — a matcher or validation bug, never truncated over.
	ErrCountNotIntegral = errors.New("motif: valid mapping count not divisible by automorphism count")

	// ErrNoConvergence indicates the sampler exhausted its trial ceiling
	// without hitting the target instance count exactly.
	ErrNoConvergence = errors.New("motif: sampler did not reach target motif count")

	// ErrNoValidSamples indicates every null-model sample failed; mean and
	// variance are undefined and no z-score exists.
	ErrNoValidSamples = errors.New("motif: no valid samples for z-score")

	// ErrZeroVariance indicates all valid samples are identical; the
	// z-score denominator vanishes.
	ErrZeroVariance = errors.New("motif: sample variance is zero")

	// ErrBadSampleSize indicates a negative Options.SampleSize.
	ErrBadSampleSize = errors.New("motif: sample size must be >= 0")

	// ErrBadTrialCeiling indicates Options.TrialCeiling < 1.
	ErrBadTrialCeiling = errors.New("motif: trial ceiling must be >= 1")

	// ErrMotifSize indicates a motif outside the supported 3..4 node range
	// for clustering-type enumeration.
	ErrMotifSize = errors.New("motif: clustering types support 3- and 4-node motifs only")
)

// Options configures Run. The zero value is not valid; start from
// DefaultOptions.
type Options struct {
	// SampleSize is the number of null-model samples to generate (>= 0).
	SampleSize int

	// TrialCeiling bounds the sampler's stalled trials per sample (>= 1).
	TrialCeiling int

	// Seed makes the run reproducible. Seed 0 selects a fixed default
	// stream; there are no hidden time-based sources.
	Seed int64

	// Workers sets the parallelism for sample generation and for the
	// pairwise shared-vertex reduction. Values < 1 mean sequential.
	// Results are identical for any worker count given the same Seed.
	Workers int
}

// DefaultOptions returns production-safe defaults: 100 samples, the
// customary trial ceiling of 200, deterministic seed, sequential.
func DefaultOptions() Options {
	return Options{
		SampleSize:   100,
		TrialCeiling: 200,
		Seed:         0,
		Workers:      1,
	}
}

// Result is the outcome of one Run: the observed statistic pair plus the
// raw per-sample coefficients.
type Result struct {
	// Coefficient is the observed motif clustering coefficient of the host.
	Coefficient float64

	// ZScore standardizes Coefficient against the sample distribution.
	// NaN when Run also returned ErrNoValidSamples or ErrZeroVariance.
	ZScore float64

	// Samples holds one coefficient per requested sample, in sample order,
	// with SentinelInvalid for samples that failed to converge or whose
	// coefficient was undefined.
	Samples []float64

	// ValidSamples is the number of Samples entries that entered the z-score.
	ValidSamples int

	// Nodes and Edges echo the host graph's size for reporting.
	Nodes int
	Edges int
}
