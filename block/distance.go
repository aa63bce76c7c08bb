package block

import "golang.org/x/exp/constraints"

// Distance is the numeric type of the gaps between consecutive elements.
//
// Distances must be non-negative for positions to grow monotonically with
// the element index; all descent algorithms rely on this.
type Distance interface {
	constraints.Integer | constraints.Float
}

// IsValid reports whether d may be stored as a distance: d must be
// non-negative and finite. NaN is rejected.
func IsValid[D Distance](d D) bool {
	var zero D
	return d >= zero && isFinite(d)
}

// CheckedAdd returns a+b and false if the addition overflowed.
//
// For integer types overflow means wrap-around, for floating point types a
// finite pair of operands producing an infinite sum.
func CheckedAdd[D Distance](a, b D) (D, bool) {
	var zero D
	s := a + b
	if (b > zero && s < a) || (b < zero && s > a) {
		return s, false
	}
	if isFinite(a) && isFinite(b) && !isFinite(s) {
		return s, false
	}
	return s, true
}

// CheckedSub returns a-b and false if the subtraction overflowed.
// For unsigned types this includes every b > a.
func CheckedSub[D Distance](a, b D) (D, bool) {
	var zero D
	s := a - b
	if (b > zero && s > a) || (b < zero && s < a) {
		return s, false
	}
	if isFinite(a) && isFinite(b) && !isFinite(s) {
		return s, false
	}
	return s, true
}

// isFinite is false for ±Inf and NaN; integers are always finite.
func isFinite[D Distance](d D) bool {
	return d-d == 0
}
