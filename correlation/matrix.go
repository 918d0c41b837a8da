// SPDX-License-Identifier: MIT

// Package correlation - symmetric coefficient matrix for one call site.
//
// Storage layout: only the strict upper triangle is kept, packed row by
// row in a flat slice (cell (i,j), i<j, lives at offset
// i*(2n-i-1)/2 + (j-i-1)). One physical cell per unordered pair makes
// the symmetry invariant structural rather than a caller contract, and
// keeps memory at n(n-1)/2 instead of n².

package correlation

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Source is the read surface the propagation engine consumes: a pairwise
// coefficient lookup by the positional indices of one call's arguments.
//
// Implementations must be symmetric (At(i,j) == At(j,i)) and return a
// diagonal of 1; Matrix guarantees both by construction.
type Source interface {
	// At returns the correlation coefficient between arguments i and j,
	// or ErrOutOfRange when an index is outside the container's bounds.
	At(i, j int) (float64, error)
}

// Matrix is an N×N symmetric correlation-coefficient table with a fixed
// unit diagonal. The zero value is not usable; construct with NewMatrix.
//
// A Matrix is caller-owned, per-call state: size it to the number of
// arguments of the upcoming propagation call, fill in the off-diagonal
// coefficients, pass it, discard it. It is not safe for concurrent
// mutation.
type Matrix struct {
	n   int       // dimension (number of call arguments)
	off []float64 // packed strict upper triangle, len == n*(n-1)/2
}

// Compile-time conformance check.
var _ Source = (*Matrix)(nil)

// NewMatrix creates an n×n correlation matrix with all off-diagonal
// coefficients 0 and the diagonal fixed at 1.
// Complexity: O(n²) memory for the packed triangle.
func NewMatrix(n int) (*Matrix, error) {
	if n <= 0 {
		return nil, fmt.Errorf("NewMatrix(%d): %w", n, ErrInvalidSize)
	}

	return &Matrix{n: n, off: make([]float64, n*(n-1)/2)}, nil
}

// Size returns the dimension N.
func (m *Matrix) Size() int { return m.n }

// index maps an off-diagonal (i, j) pair onto its packed offset. Callers
// must have validated bounds and i != j.
func (m *Matrix) index(i, j int) int {
	if i > j {
		i, j = j, i
	}

	return i*(2*m.n-i-1)/2 + (j - i - 1)
}

// check validates that (i, j) lies inside the matrix.
func (m *Matrix) check(method string, i, j int) error {
	if i < 0 || i >= m.n || j < 0 || j >= m.n {
		return fmt.Errorf("Matrix.%s(%d,%d): %w", method, i, j, ErrOutOfRange)
	}

	return nil
}

// At returns the coefficient for the unordered pair (i, j). The diagonal
// always reads 1. Complexity: O(1).
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.check("At", i, j); err != nil {
		return 0, err
	}
	if i == j {
		return 1, nil
	}

	return m.off[m.index(i, j)], nil
}

// Set assigns the coefficient for the unordered pair (i, j); both logical
// directions are updated because only one physical cell exists. Setting a
// diagonal cell returns ErrDiagonalFixed. Complexity: O(1).
func (m *Matrix) Set(i, j int, coeff float64) error {
	if err := m.check("Set", i, j); err != nil {
		return err
	}
	if i == j {
		return fmt.Errorf("Matrix.Set(%d,%d): %w", i, j, ErrDiagonalFixed)
	}
	m.off[m.index(i, j)] = coeff

	return nil
}

// symSource adapts a gonum symmetric matrix to the Source interface so
// coefficient tables produced by linear-algebra code can feed the engine
// directly.
type symSource struct {
	m *mat.SymDense
}

// FromSym wraps s as a correlation Source. The wrapper only reads; it
// never mutates s.
func FromSym(s *mat.SymDense) (Source, error) {
	if s == nil {
		return nil, fmt.Errorf("FromSym: %w", ErrNilMatrix)
	}

	return symSource{m: s}, nil
}

// At returns s[i,j] with explicit bounds checking, converting gonum's
// panic contract into the package's checked-error contract.
func (s symSource) At(i, j int) (float64, error) {
	n, _ := s.m.Dims()
	if i < 0 || i >= n || j < 0 || j >= n {
		return 0, fmt.Errorf("symSource.At(%d,%d): %w", i, j, ErrOutOfRange)
	}

	return s.m.At(i, j), nil
}
