package gm

import "math"

// Tolerance describes how close two floating point values need to be
// to be considered equal. A zero field disables the respective check.
type Tolerance struct {
	// Epsilon is the maximum absolute difference.
	Epsilon float64

	// MaxRelative is the maximum difference relative to the larger of both magnitudes.
	MaxRelative float64

	// MaxUlps is the maximum number of representable values between both values.
	// Distances are measured in the precision of the compared type.
	MaxUlps uint32
}

// DefaultTolerance returns a tolerance of one machine epsilon
// and four units in the last place.
func DefaultTolerance[S Float]() Tolerance {
	eps := float64(Epsilon[S]())
	return Tolerance{Epsilon: eps, MaxRelative: eps, MaxUlps: 4}
}

// RelativeTolerance returns a tolerance that accepts values that differ
// by at most maxRelative of their magnitude, or by machine epsilon near zero.
func RelativeTolerance[S Float](maxRelative float64) Tolerance {
	return Tolerance{Epsilon: float64(Epsilon[S]()), MaxRelative: maxRelative}
}

// ApproxEqual reports whether a and b are equal within the given tolerance.
// NaN is never equal to anything, infinities only to themselves.
func ApproxEqual[S Float](a, b S, tol Tolerance) bool {
	if a == b {
		return true
	}

	x, y := float64(a), float64(b)
	if !isFinite(x) || !isFinite(y) {
		return false
	}

	diff := math.Abs(x - y)
	if diff <= tol.Epsilon {
		return true
	}

	if tol.MaxRelative > 0 && diff <= max(math.Abs(x), math.Abs(y))*tol.MaxRelative {
		return true
	}

	if tol.MaxUlps > 0 && math.Signbit(x) == math.Signbit(y) {
		return ulpsBetween(a, b) <= uint64(tol.MaxUlps)
	}

	return false
}

// ulpsBetween counts the representable values between a and b.
// Both values must have the same sign.
func ulpsBetween[S Float](a, b S) uint64 {
	var ia, ib uint64
	if is32[S]() {
		ia = uint64(math.Float32bits(float32(a)))
		ib = uint64(math.Float32bits(float32(b)))
	} else {
		ia = math.Float64bits(float64(a))
		ib = math.Float64bits(float64(b))
	}

	if ia > ib {
		return ia - ib
	}

	return ib - ia
}
