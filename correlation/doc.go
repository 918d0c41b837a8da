// SPDX-License-Identifier: MIT

// Package correlation provides the two containers the propagation engine
// reads pairwise correlation coefficients from:
//
//   - Matrix — a per-call N×N symmetric coefficient table indexed by the
//     positional argument order of a single propagation call. Symmetry is
//     structural: one physical cell backs each unordered (i, j) pair, so
//     setting (i, j) and reading (j, i) cannot disagree. The diagonal is
//     fixed at 1 and off-diagonal entries default to 0.
//
//   - Store — a persistent map from an unordered pair of tracking
//     identities to a coefficient, used to carry correlation across
//     multiple propagation calls. Add is strict (duplicate pairs are
//     rejected), Set overwrites, and Get returns 0 for unknown pairs:
//     absence means "no known correlation", not an error.
//
// Global returns the lazily created process-wide Store that
// independently written code can accumulate correlations into without
// threading a store through every call. It is the only process-wide
// mutable state in the library; the Store type is safe for concurrent
// use, so the shared instance is too.
//
// The engine is written against the Source interface, so any container
// with an At(i, j) accessor — including a gonum mat.SymDense via
// FromSym — can serve as a per-call coefficient table.
package correlation
