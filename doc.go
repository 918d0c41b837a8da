// Package uncert propagates measurement uncertainty through ordinary
// numerical computations using linearized (finite-difference) error
// propagation, with optional correlation tracking between inputs.
//
// What uncert gives you:
//
//   - Core primitives: uncertain values (nominal ± uncertainty), exact
//     values, identity tagging for cross-call tracking
//   - Correlation containers: per-call symmetric coefficient matrices and
//     a persistent, identity-keyed correlation store (plus a shared
//     process-wide store for automatic chaining)
//   - The propagation engine: evaluate any function of 1..k uncertain or
//     exact arguments and obtain a correctly propagated uncertainty,
//     honoring pairwise correlations when supplied
//   - Sample statistics: mean, variance, standard error, z-score, and
//     constructors that turn a measured sample into an uncertain value
//
// Everything is organized under four subpackages:
//
//	core/        — Uncertain, Tagged and Const value types, identity counter,
//	               polymorphic accessors, significant-figure rounding
//	correlation/ — Matrix (per-call), Store (persistent), Global() store
//	propagate/   — the finite-difference engine and its entry points
//	statistics/  — sample statistics and sample-based constructors
//
// Quick example:
//
//	x := core.New(1, 0.1)
//	y := core.New(2, 0.2)
//	z, err := propagate.Independent(func(a ...float64) float64 {
//		return a[0] + a[1]
//	}, x, y)
//	// z.Nominal() == 3, z.Uncertainty() == sqrt(0.1² + 0.2²)
//
// Derivatives are estimated by a one-sided finite difference at each
// input's upper bound; this is deliberately not an automatic
// differentiation system, and no higher-order (nonlinear) propagation is
// performed.
package uncert
