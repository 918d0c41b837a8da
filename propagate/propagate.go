package propagate

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/calder-lab/uncert/core"
	"github.com/calder-lab/uncert/correlation"
)

// Linear propagates error through f with dynamic arity.
//
// Algorithm:
//  1. Evaluate n = f at all-nominal arguments.
//  2. For each uncertain argument i, re-evaluate with only that argument
//     at its upper bound: dᵢ = f(..., upper(aᵢ), ...) - n. Exact
//     arguments keep dᵢ = 0 and are never perturbed.
//  3. Combine: unc² = Σ dᵢ² plus, when a coefficient source is present,
//     2·c(i,j)·dᵢ·dⱼ over unordered pairs i<j. Store-based coefficients
//     are looked up by tracking identity; a pair with an untracked side
//     contributes nothing.
//  4. When coefficients are requested or a store is in play, compute the
//     result's correlation with each input:
//     corrᵢ = (dᵢ + Σ_{j≠i} c(i,j)·dⱼ) / unc
//     (the covariance-normalized sensitivity; with unc = 0 the division
//     follows IEEE semantics, matching the combination formula's domain).
//  5. With a store: mint a fresh identity for the result and record
//     corrᵢ against every input's identity so later calls can chain.
//
// f is evaluated 1 + (number of uncertain arguments) times. The engine
// never mutates args; the only side effect is store write-back.
//
// Complexity: O(k) evaluations of f plus O(k²) coefficient lookups when
// a source is present.
func Linear(f Func, args []core.Value, opts *Options) (Result, error) {
	if f == nil {
		return Result{}, ErrNilFunc
	}
	k := len(args)
	if k == 0 {
		return Result{}, ErrNoArguments
	}
	var o Options
	if opts != nil {
		o = *opts
	}
	if o.Matrix != nil && o.Store != nil {
		return Result{}, ErrConflictingSources
	}

	// Stage 1: nominal evaluation. buf is reused for every perturbed call.
	buf := make([]float64, k)
	for i, a := range args {
		buf[i] = a.Nominal()
	}
	nom := f(buf...)

	// Stage 2: one-sided deviations.
	dev := make([]float64, k)
	for i, a := range args {
		if !a.IsUncertain() {
			continue // exact argument: zero deviation
		}
		buf[i] = a.Upper()
		dev[i] = f(buf...) - nom
		buf[i] = a.Nominal()
	}

	// Identity resolution happens once; store lookups reuse it.
	var ids []uint64
	if o.Store != nil {
		ids = make([]uint64, k)
		for i, a := range args {
			ids[i] = core.IDOf(a)
		}
	}

	// coeff returns the pairwise coefficient for (i, j) from whichever
	// source the call carries; the independent default is 0.
	coeff := func(i, j int) (float64, error) {
		switch {
		case o.Matrix != nil:
			c, err := o.Matrix.At(i, j)
			if err != nil {
				return 0, fmt.Errorf("propagate: coefficient source: %w", err)
			}

			return c, nil
		case o.Store != nil:
			if ids[i] == 0 || ids[j] == 0 {
				return 0, nil // untracked side: treated as uncorrelated
			}

			return o.Store.GetIDs(ids[i], ids[j]), nil
		default:
			return 0, nil
		}
	}

	// Stage 3: combination.
	variance := floats.Dot(dev, dev)
	if o.Matrix != nil || o.Store != nil {
		for i := 0; i < k; i++ {
			for j := i + 1; j < k; j++ {
				c, err := coeff(i, j)
				if err != nil {
					return Result{}, err
				}
				variance += 2 * c * dev[i] * dev[j]
			}
		}
	}
	unc := math.Sqrt(variance)

	// Stage 4: result correlation coefficients.
	var corr []float64
	if o.Coefficients || o.Store != nil {
		corr = make([]float64, k)
		for i := 0; i < k; i++ {
			sum := dev[i]
			for j := 0; j < k; j++ {
				if j == i {
					continue
				}
				c, err := coeff(i, j)
				if err != nil {
					return Result{}, err
				}
				sum += c * dev[j]
			}
			corr[i] = sum / unc
		}
	}

	// Stage 5: result construction and store write-back.
	value := core.Untracked(core.New(nom, unc))
	if o.Store != nil {
		value = core.Tag(core.New(nom, unc))
		for i := 0; i < k; i++ {
			o.Store.SetIDs(value.ID(), ids[i], corr[i])
		}
	}

	res := Result{Value: value}
	if o.Coefficients {
		res.Coefficients = corr
	}

	return res, nil
}

// Independent propagates error through f assuming uncorrelated inputs
// and returns the bare uncertain result.
func Independent(f Func, args ...core.Value) (core.Uncertain, error) {
	res, err := Linear(f, args, nil)
	if err != nil {
		return core.Uncertain{}, err
	}

	return res.Value.Uncertain, nil
}

// WithMatrix propagates error through f honoring the pairwise
// coefficients in src, indexed by argument position.
func WithMatrix(f Func, src correlation.Source, args ...core.Value) (core.Uncertain, error) {
	res, err := Linear(f, args, &Options{Matrix: src})
	if err != nil {
		return core.Uncertain{}, err
	}

	return res.Value.Uncertain, nil
}

// WithStore propagates error through f honoring coefficients recorded in
// store for the arguments' tracking identities. The result is tagged
// with a fresh identity and its correlation with every input is recorded
// back into store, keyed by that identity.
func WithStore(f Func, store *correlation.Store, args ...core.Value) (Result, error) {
	return Linear(f, args, &Options{Store: store})
}

// WithCoefficients propagates error through f assuming uncorrelated
// inputs and annotates the result with its correlation coefficient to
// each input (dᵢ/unc in the independent case).
func WithCoefficients(f Func, args ...core.Value) (Result, error) {
	return Linear(f, args, &Options{Coefficients: true})
}
