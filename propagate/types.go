// Package propagate defines the engine's function type, options, result
// container, and sentinel errors.
package propagate

import (
	"errors"

	"github.com/calder-lab/uncert/core"
	"github.com/calder-lab/uncert/correlation"
)

// Sentinel errors for propagation calls.
var (
	// ErrNilFunc indicates a nil function was passed to the engine.
	ErrNilFunc = errors.New("propagate: nil function")

	// ErrNoArguments indicates an empty argument list; the engine needs
	// at least one argument to perturb.
	ErrNoArguments = errors.New("propagate: no arguments")

	// ErrConflictingSources indicates both a Matrix and a Store were
	// supplied; a call reads coefficients from exactly one source.
	ErrConflictingSources = errors.New("propagate: both matrix and store supplied")
)

// Func is the computation error is propagated through. It receives the
// argument values positionally — all nominal, or all nominal except one
// moved to its upper bound — and must be deterministic across those
// evaluations.
type Func func(args ...float64) float64

// Options configures a propagation call.
//
// Fields:
//   - Matrix       — per-call coefficient source indexed by argument
//     position. Symmetry is the source's contract; the engine reads each
//     unordered pair once and does not verify it.
//   - Store        — identity-keyed coefficient store. Arguments with id 0
//     (untracked) are treated as uncorrelated. Implies result tagging and
//     coefficient write-back. Mutually exclusive with Matrix.
//   - Coefficients — attach the result's correlation coefficient to each
//     input (ordered like the arguments) on the returned Result.
//
// The zero value (or a nil *Options) means: independent inputs, no
// coefficient annotation.
type Options struct {
	Matrix       correlation.Source
	Store        *correlation.Store
	Coefficients bool
}

// DefaultOptions returns the default propagation configuration:
// independent inputs, no annotation, no store.
func DefaultOptions() Options {
	return Options{}
}

// Result is a propagation outcome: the uncertain value, optionally
// identity-tagged (store calls mint a fresh id; otherwise the id is 0),
// and optionally the result's correlation coefficients to each input.
//
// Composition over inheritance: the coefficients ride alongside the
// value rather than decorating its type.
type Result struct {
	// Value is the propagated uncertain value. Value.ID() is nonzero
	// exactly when the call used a Store.
	Value core.Tagged

	// Coefficients is the result's correlation coefficient with each
	// input, aligned with argument order. Nil unless requested via
	// Options.Coefficients.
	Coefficients []float64
}
