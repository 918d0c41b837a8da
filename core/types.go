// This file declares the Uncertain value type, its constructors and
// accessors, and the Value interface consumed by the propagation engine.
package core

import "fmt"

// Value is the minimal surface the propagation engine reads from an
// argument: its best estimate, its one-sided perturbation point, and
// whether perturbing it is meaningful at all.
//
// Uncertain, Tagged, and Const all satisfy Value. Any caller-defined type
// may too.
type Value interface {
	// Nominal returns the best-estimate (central) value.
	Nominal() float64

	// Upper returns the perturbed-upper value. For exact values it equals
	// Nominal.
	Upper() float64

	// IsUncertain reports whether the value carries a nonzero-capable
	// uncertainty (i.e., whether perturbing it contributes a deviation).
	IsUncertain() bool
}

// Identified is satisfied by values that carry a tracking identity.
// IDOf uses it to treat tracked and untracked arguments uniformly.
type Identified interface {
	// ID returns the tracking identity; 0 means untracked.
	ID() uint64
}

// Uncertain is a nominal value paired with its uncertainty.
//
// The uncertainty is expected to be non-negative but this is not
// enforced; the engine never validates the sign. The zero value is a
// valid exact zero (0 ± 0).
type Uncertain struct {
	nominal     float64
	uncertainty float64
}

// New returns an Uncertain with the given nominal value and uncertainty.
func New(nominal, uncertainty float64) Uncertain {
	return Uncertain{nominal: nominal, uncertainty: uncertainty}
}

// Exact returns an Uncertain with zero uncertainty.
func Exact(nominal float64) Uncertain {
	return Uncertain{nominal: nominal}
}

// Nominal returns the best-estimate value.
func (u Uncertain) Nominal() float64 { return u.nominal }

// Uncertainty returns the spread paired with the nominal value.
func (u Uncertain) Uncertainty() float64 { return u.uncertainty }

// SetNominal replaces the nominal value.
func (u *Uncertain) SetNominal(v float64) { u.nominal = v }

// SetUncertainty replaces the uncertainty.
func (u *Uncertain) SetUncertainty(v float64) { u.uncertainty = v }

// Upper returns nominal + uncertainty, the one-sided finite-difference
// perturbation point.
func (u Uncertain) Upper() float64 { return u.nominal + u.uncertainty }

// Lower returns nominal - uncertainty.
func (u Uncertain) Lower() float64 { return u.nominal - u.uncertainty }

// IsUncertain always reports true for an Uncertain, even when the stored
// uncertainty happens to be zero: the value is still of the uncertain
// kind and the engine will perturb it (contributing a zero deviation).
func (u Uncertain) IsUncertain() bool { return true }

// Relative returns uncertainty / nominal. Division by a zero nominal
// follows IEEE semantics (±Inf or NaN).
func (u Uncertain) Relative() float64 { return u.uncertainty / u.nominal }

// String renders the value as "<nominal> +/- <uncertainty>".
func (u Uncertain) String() string {
	return fmt.Sprintf("%g +/- %g", u.nominal, u.uncertainty)
}

// Const adapts a plain float64 into the Value interface: an exact value
// that is its own nominal and upper bound.
type Const float64

// Nominal returns the constant itself.
func (c Const) Nominal() float64 { return float64(c) }

// Upper returns the constant itself; an exact value has no spread.
func (c Const) Upper() float64 { return float64(c) }

// IsUncertain reports false: a Const never contributes a deviation.
func (c Const) IsUncertain() bool { return false }

// Compile-time interface conformance checks.
var (
	_ Value        = Uncertain{}
	_ Value        = Const(0)
	_ Value        = Tagged{}
	_ Identified   = Tagged{}
	_ fmt.Stringer = Uncertain{}
)
