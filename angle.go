package gm

import (
	"encoding/json"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Angle is implemented by Rad and Deg. Functions that need an angle accept
// an Angle and convert it to Rad before doing any trigonometry.
type Angle[S Float] interface {
	Radians() Rad[S]
	Degrees() Deg[S]
}

// Rad is an angle in radians.
//
// Rad and Deg are distinct types: an angle in degrees must be converted
// before it can be combined with an angle in radians.
type Rad[S Float] struct {
	value S
}

// Deg is an angle in degrees. Trigonometric functions are only available
// on Rad, call Radians first.
type Deg[S Float] struct {
	value S
}

var (
	_ Angle[float64] = Rad[float64]{}
	_ Angle[float64] = Deg[float64]{}
)

// RadOf returns an angle of the given number of radians.
func RadOf[S Float](value S) Rad[S] {
	return Rad[S]{value: value}
}

// DegOf returns an angle of the given number of degrees.
func DegOf[S Float](value S) Deg[S] {
	return Deg[S]{value: value}
}

func DegToRad[S Float](deg S) Rad[S] {
	return DegOf(deg).Radians()
}

func RadToDeg[S Float](rad S) Deg[S] {
	return RadOf(rad).Degrees()
}

// FullTurn returns the angle of a full circle.
func FullTurn[S Float]() Rad[S] {
	return Rad[S]{value: 2 * math.Pi}
}

// HalfTurn returns π radians.
func HalfTurn[S Float]() Rad[S] {
	return Rad[S]{value: math.Pi}
}

// QuarterTurn returns π/2 radians.
func QuarterTurn[S Float]() Rad[S] {
	return Rad[S]{value: math.Pi / 2}
}

// Value returns the angle in radians as a plain number.
func (r Rad[S]) Value() S {
	return r.value
}

func (r Rad[S]) Radians() Rad[S] {
	return r
}

func (r Rad[S]) Degrees() Deg[S] {
	return Deg[S]{value: r.value * (180 / math.Pi)}
}

func (r Rad[S]) Add(other Rad[S]) Rad[S] {
	return Rad[S]{value: r.value + other.value}
}

func (r Rad[S]) Sub(other Rad[S]) Rad[S] {
	return Rad[S]{value: r.value - other.value}
}

func (r Rad[S]) Mul(factor S) Rad[S] {
	return Rad[S]{value: r.value * factor}
}

func (r Rad[S]) Div(divisor S) Rad[S] {
	return Rad[S]{value: r.value / divisor}
}

func (r Rad[S]) Neg() Rad[S] {
	return Rad[S]{value: -r.value}
}

// Ratio returns how many times other fits into r.
func (r Rad[S]) Ratio(other Rad[S]) S {
	return r.value / other.value
}

func (r Rad[S]) Less(other Rad[S]) bool {
	return r.value < other.value
}

// Compare returns -1, 0 or +1 depending on whether r is less than,
// equal to or greater than other.
func (r Rad[S]) Compare(other Rad[S]) int {
	return compare(r.value, other.value)
}

// Normalized returns the angle normalized to the range [-π, π)
func (r Rad[S]) Normalized() Rad[S] {
	return Rad[S]{value: S(normalize(float64(r.value), math.Pi))}
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-π, π)
func (r Rad[S]) DifferenceTo(other Rad[S]) Rad[S] {
	return r.Sub(other).Normalized()
}

// Cos returns the cosine of the angle.
func (r Rad[S]) Cos() S {
	return S(math.Cos(float64(r.value)))
}

// Sin returns the sine of the angle.
func (r Rad[S]) Sin() S {
	return S(math.Sin(float64(r.value)))
}

func (r Rad[S]) Tan() S {
	return S(math.Tan(float64(r.value)))
}

func (r Rad[S]) SinCos() (sin, cos S) {
	s, c := math.Sincos(float64(r.value))
	return S(s), S(c)
}

func (r Rad[S]) ApproxEqual(other Rad[S], tol Tolerance) bool {
	return ApproxEqual(r.value, other.value, tol)
}

func (r Rad[S]) String() string {
	return fmt.Sprintf("%v rad", r.value)
}

func Asin[S Float](value S) Rad[S] {
	return Rad[S]{value: S(math.Asin(float64(value)))}
}

func Acos[S Float](value S) Rad[S] {
	return Rad[S]{value: S(math.Acos(float64(value)))}
}

func Atan[S Float](value S) Rad[S] {
	return Rad[S]{value: S(math.Atan(float64(value)))}
}

func Atan2[S Float](y, x S) Rad[S] {
	return Rad[S]{value: S(math.Atan2(float64(y), float64(x)))}
}

// Value returns the angle in degrees as a plain number.
func (d Deg[S]) Value() S {
	return d.value
}

func (d Deg[S]) Radians() Rad[S] {
	return Rad[S]{value: d.value * (math.Pi / 180)}
}

func (d Deg[S]) Degrees() Deg[S] {
	return d
}

func (d Deg[S]) Add(other Deg[S]) Deg[S] {
	return Deg[S]{value: d.value + other.value}
}

func (d Deg[S]) Sub(other Deg[S]) Deg[S] {
	return Deg[S]{value: d.value - other.value}
}

func (d Deg[S]) Mul(factor S) Deg[S] {
	return Deg[S]{value: d.value * factor}
}

func (d Deg[S]) Div(divisor S) Deg[S] {
	return Deg[S]{value: d.value / divisor}
}

func (d Deg[S]) Neg() Deg[S] {
	return Deg[S]{value: -d.value}
}

// Ratio returns how many times other fits into d.
func (d Deg[S]) Ratio(other Deg[S]) S {
	return d.value / other.value
}

func (d Deg[S]) Less(other Deg[S]) bool {
	return d.value < other.value
}

func (d Deg[S]) Compare(other Deg[S]) int {
	return compare(d.value, other.value)
}

// Normalized returns the angle normalized to the range [-180, 180)
func (d Deg[S]) Normalized() Deg[S] {
	return Deg[S]{value: S(normalize(float64(d.value), 180))}
}

// DifferenceTo returns the smallest difference between to angles
// normalized to the range [-180, 180)
func (d Deg[S]) DifferenceTo(other Deg[S]) Deg[S] {
	return d.Sub(other).Normalized()
}

func (d Deg[S]) ApproxEqual(other Deg[S], tol Tolerance) bool {
	return ApproxEqual(d.value, other.value, tol)
}

func (d Deg[S]) String() string {
	return fmt.Sprintf("%v°", d.value)
}

func (r Rad[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.value)
}

func (r *Rad[S]) UnmarshalJSON(buf []byte) error {
	return json.Unmarshal(buf, &r.value)
}

func (r Rad[S]) MarshalYAML() (any, error) {
	return r.value, nil
}

func (r *Rad[S]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&r.value)
}

func (d Deg[S]) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.value)
}

func (d *Deg[S]) UnmarshalJSON(buf []byte) error {
	return json.Unmarshal(buf, &d.value)
}

func (d Deg[S]) MarshalYAML() (any, error) {
	return d.value, nil
}

func (d *Deg[S]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&d.value)
}

// normalize maps angle into the range [-half, half)
func normalize(angle, half float64) float64 {
	angle = math.Mod(angle+half, 2*half)
	if angle < 0 {
		angle += 2 * half
	}

	return angle - half
}

func compare[S Float](a, b S) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
