// This file implements significant-figure rounding and the Round
// normalization used to present an uncertain value with a conventional
// number of significant figures.
package core

import (
	"math"
	"strconv"
)

// SigfigRound rounds x to n significant figures (n >= 1).
//
// The value is formatted in scientific notation with n-1 digits after
// the decimal point and parsed back, which delegates the half-even
// rounding rules to strconv. NaN and ±Inf are returned unchanged.
// Complexity: O(1), dominated by the format/parse round trip.
func SigfigRound(x float64, n int) float64 {
	if n < 1 || math.IsNaN(x) || math.IsInf(x, 0) {
		return x
	}
	s := strconv.FormatFloat(x, 'e', n-1, 64)
	r, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// FormatFloat output always parses; unreachable.
		return x
	}

	return r
}

// decimalExponent returns the power of ten of x written in scientific
// notation (floor(log10(|x|))), or 0 for zero/NaN/Inf.
func decimalExponent(x float64) int {
	if x == 0 || math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}

	return int(math.Floor(math.Log10(math.Abs(x))))
}

// Round normalizes u to n significant figures of uncertainty.
//
// The uncertainty is rounded to n significant figures and the nominal
// value is rounded to the same decimal position as the uncertainty's
// last significant figure. The two can end up with a different number
// of significant figures; the difference equals the difference of their
// scientific-notation exponents.
//
// When the nominal's exponent is so far below the uncertainty's that no
// significant figure of the nominal survives, the nominal is returned
// unrounded.
func (u Uncertain) Round(n int) Uncertain {
	if n < 1 {
		n = 1
	}
	unc := SigfigRound(u.uncertainty, n)
	digits := n + decimalExponent(u.nominal) - decimalExponent(unc)
	nom := u.nominal
	if digits >= 1 {
		nom = SigfigRound(nom, digits)
	}

	return Uncertain{nominal: nom, uncertainty: unc}
}
