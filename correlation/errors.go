// SPDX-License-Identifier: MIT
// Package correlation: sentinel error set.
// Every message is prefixed with "correlation: ..." for consistency and
// grepping. Callers match with errors.Is; context wrapping happens at the
// failure site via fmt.Errorf("...: %w", ErrX).

package correlation

import "errors"

var (
	// ErrInvalidSize is returned when a Matrix is requested with a
	// non-positive dimension.
	ErrInvalidSize = errors.New("correlation: size must be > 0")

	// ErrOutOfRange indicates that a row or column index is outside
	// [0, N). Public indexers return this instead of panicking.
	ErrOutOfRange = errors.New("correlation: index out of range")

	// ErrDiagonalFixed is returned by Matrix.Set on a diagonal cell: a
	// variable is always perfectly correlated with itself and the
	// diagonal cannot be overwritten.
	ErrDiagonalFixed = errors.New("correlation: diagonal is fixed at 1")

	// ErrDuplicateEntry is returned by Store.Add when the unordered id
	// pair already has a coefficient. Use Set to overwrite intentionally.
	ErrDuplicateEntry = errors.New("correlation: entry already exists")

	// ErrNilMatrix indicates a nil *mat.SymDense was passed to FromSym.
	ErrNilMatrix = errors.New("correlation: nil matrix")
)
