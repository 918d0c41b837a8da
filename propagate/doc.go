// Package propagate implements the linearized error-propagation engine.
//
// Given a function f and an ordered list of arguments — each either
// uncertain or exact — the engine evaluates f once at all-nominal inputs
// and once per argument with that argument moved to its upper bound. The
// per-argument output change ("deviation") is a one-sided
// finite-difference proxy for the partial derivative times the
// uncertainty; deviations are combined in quadrature, with pairwise
// correlation cross terms when a coefficient source is supplied:
//
//	unc² = Σ dᵢ² + Σ_{i<j} 2·c(i,j)·dᵢ·dⱼ
//
// Coefficients come either from a per-call correlation.Source (indexed by
// argument position) or from a correlation.Store (keyed by the arguments'
// tracking identities; pairs with an untracked side are treated as
// uncorrelated). When a store is used, the result is minted a fresh
// identity and its correlation with every input,
//
//	corrᵢ = (dᵢ + Σ_{j≠i} c(i,j)·dⱼ) / unc,
//
// is recorded back into the store, so downstream calls chain correlation
// tracking automatically.
//
// Arity is dynamic: any argument count from 1 up, mixed exact/uncertain,
// one algorithm. Exact arguments contribute a zero deviation and are
// never perturbed.
//
// Entry points:
//
//	Linear           — full engine, configured via Options
//	Independent      — no correlation, plain Uncertain result
//	WithMatrix       — per-call coefficient source
//	WithStore        — identity-keyed store, result tagged and recorded
//	WithCoefficients — independent, result annotated with its
//	                   correlation coefficient to each input
//
// The engine is synchronous and side-effect free except for store
// write-back; it never mutates caller-owned arguments.
package propagate
