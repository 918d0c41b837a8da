// This file provides the free accessor functions that work uniformly on
// any Value, tracked or not, uncertain or exact. They let the engine
// treat all argument kinds identically without branching on type.
package core

// NominalOf returns the best-estimate value of v.
func NominalOf(v Value) float64 { return v.Nominal() }

// UpperOf returns the perturbed-upper value of v. For exact values this
// equals the nominal.
func UpperOf(v Value) float64 { return v.Upper() }

// LowerOf returns the perturbed-lower value of v when it exposes one,
// and the nominal otherwise.
func LowerOf(v Value) float64 {
	if l, ok := v.(interface{ Lower() float64 }); ok {
		return l.Lower()
	}

	return v.Nominal()
}

// UncertaintyOf returns the uncertainty of v, or 0 for exact values.
func UncertaintyOf(v Value) float64 {
	if u, ok := v.(interface{ Uncertainty() float64 }); ok {
		return u.Uncertainty()
	}

	return 0
}

// IsUncertain reports whether v is of the uncertain kind.
func IsUncertain(v Value) bool { return v.IsUncertain() }

// IDOf returns the tracking identity of v, or 0 when v carries none.
// Plain values and untagged Uncertains are always untracked.
func IDOf(v Value) uint64 {
	if t, ok := v.(Identified); ok {
		return t.ID()
	}

	return 0
}
