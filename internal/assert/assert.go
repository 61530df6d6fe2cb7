// Package assert provides test assertions for the approximate comparison
// of gm values on top of testify.
package assert

import (
	"fmt"
	"testing"

	"github.com/oliverbestmann/gm"
	"github.com/stretchr/testify/require"
)

// Approx is implemented by every value type in gm.
type Approx[T any] interface {
	ApproxEqual(other T, tol gm.Tolerance) bool
}

// ApproxEqual fails the test immediately if expected and actual
// are not equal within the given tolerance.
func ApproxEqual[T Approx[T]](t testing.TB, expected, actual T, tol gm.Tolerance, msgAndArgs ...any) {
	t.Helper()

	if !expected.ApproxEqual(actual, tol) {
		require.Fail(t, fmt.Sprintf("Not equal within %+v:\nexpected: %v\nactual  : %v", tol, expected, actual), msgAndArgs...)
	}
}

// UlpsEqual compares with a tolerance of four units in the last place of S.
func UlpsEqual[S gm.Float, T Approx[T]](t testing.TB, expected, actual T, msgAndArgs ...any) {
	t.Helper()
	ApproxEqual(t, expected, actual, gm.DefaultTolerance[S](), msgAndArgs...)
}

// RelativeEqual compares with the given maximum relative error.
func RelativeEqual[S gm.Float, T Approx[T]](t testing.TB, expected, actual T, maxRelative float64, msgAndArgs ...any) {
	t.Helper()
	ApproxEqual(t, expected, actual, gm.RelativeTolerance[S](maxRelative), msgAndArgs...)
}

// NotApproxEqual fails the test if expected and actual are equal
// within the given tolerance.
func NotApproxEqual[T Approx[T]](t testing.TB, expected, actual T, tol gm.Tolerance, msgAndArgs ...any) {
	t.Helper()

	if expected.ApproxEqual(actual, tol) {
		require.Fail(t, fmt.Sprintf("Should not be equal within %+v:\nexpected: %v\nactual  : %v", tol, expected, actual), msgAndArgs...)
	}
}
