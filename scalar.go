package gm

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Float is the set of scalar types every type in this package is generic over.
type Float interface {
	constraints.Float
}

func is32[S Float]() bool {
	var s S
	return unsafe.Sizeof(s) == 4
}

// Epsilon returns the machine epsilon for the precision of S.
func Epsilon[S Float]() S {
	if is32[S]() {
		return S(0x1p-23)
	}

	return S(0x1p-52)
}

func sqrt[S Float](value S) S {
	return S(math.Sqrt(float64(value)))
}

func abs[S Float](value S) S {
	if value < 0 {
		return -value
	}

	return value
}

func isFinite[S Float](value S) bool {
	f := float64(value)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// nearZero reports whether the value is zero within machine epsilon.
func nearZero[S Float](value S) bool {
	return abs(value) <= Epsilon[S]()
}

func cbrt[S Float](value S) S {
	return S(math.Cbrt(float64(value)))
}
