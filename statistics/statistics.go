package statistics

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/calder-lab/uncert/core"
)

// Sentinel errors for sample statistics.
var (
	// ErrSampleTooSmall indicates the sample has too few observations
	// for the requested statistic (variance needs n > ddof).
	ErrSampleTooSmall = errors.New("statistics: sample too small")

	// ErrInvalidDoF indicates a negative degrees-of-freedom reduction.
	ErrInvalidDoF = errors.New("statistics: degrees-of-freedom reduction must be >= 0")
)

// Mean returns the arithmetic mean of the sample.
func Mean(sample []float64) (float64, error) {
	if len(sample) == 0 {
		return 0, fmt.Errorf("Mean: %w", ErrSampleTooSmall)
	}
	m, err := stats.Mean(sample)
	if err != nil {
		return 0, fmt.Errorf("Mean: %w", err)
	}

	return m, nil
}

// Variance returns the sample variance with the given reduction in the
// number of degrees of freedom: ddof=1 (the usual choice) yields the
// unbiased estimate Σ(x-μ)²/(n-1), ddof=0 the biased (population)
// estimate Σ(x-μ)²/n.
func Variance(sample []float64, ddof int) (float64, error) {
	if ddof < 0 {
		return 0, fmt.Errorf("Variance: ddof=%d: %w", ddof, ErrInvalidDoF)
	}
	n := len(sample)
	if n <= ddof {
		return 0, fmt.Errorf("Variance: n=%d, ddof=%d: %w", n, ddof, ErrSampleTooSmall)
	}
	// Population variance divides by n; rescale to n-ddof so any
	// reduction is supported with one library call.
	pv, err := stats.PopulationVariance(sample)
	if err != nil {
		return 0, fmt.Errorf("Variance: %w", err)
	}

	return pv * float64(n) / float64(n-ddof), nil
}

// StdDev returns the square root of Variance(sample, ddof).
func StdDev(sample []float64, ddof int) (float64, error) {
	v, err := Variance(sample, ddof)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// StandardError returns the standard error of the mean: the unbiased
// standard deviation divided by √n.
func StandardError(sample []float64) (float64, error) {
	sd, err := StdDev(sample, 1)
	if err != nil {
		return 0, err
	}

	return sd / math.Sqrt(float64(len(sample))), nil
}

// ZScore measures the compatibility of two uncertain quantities:
// |n₁ - n₂| / √(u₁² + u₂²). Either argument may be exact (zero
// uncertainty) via the polymorphic accessors.
func ZScore(a, b core.Value) float64 {
	ua := core.UncertaintyOf(a)
	ub := core.UncertaintyOf(b)

	return math.Abs(core.NominalOf(a)-core.NominalOf(b)) / math.Sqrt(ua*ua+ub*ub)
}

// FromSample condenses a measured sample into an uncertain value:
// mean ± standard error of the mean.
func FromSample(sample []float64) (core.Uncertain, error) {
	m, err := Mean(sample)
	if err != nil {
		return core.Uncertain{}, err
	}
	se, err := StandardError(sample)
	if err != nil {
		return core.Uncertain{}, err
	}

	return core.New(m, se), nil
}

// FromSampleStdev condenses a sample into mean ± standard deviation,
// with the given degrees-of-freedom reduction (1 for the unbiased
// estimate).
func FromSampleStdev(sample []float64, ddof int) (core.Uncertain, error) {
	m, err := Mean(sample)
	if err != nil {
		return core.Uncertain{}, err
	}
	sd, err := StdDev(sample, ddof)
	if err != nil {
		return core.Uncertain{}, err
	}

	return core.New(m, sd), nil
}
