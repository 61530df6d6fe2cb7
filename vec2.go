package gm

import (
	"fmt"
)

// Vec2 is a two dimensional vector. It is used for points as well as for
// directions, the transform methods decide how it is interpreted.
type Vec2[S Float] struct {
	X S `json:"x" yaml:"x"`
	Y S `json:"y" yaml:"y"`
}

func Vec2Of[S Float](x, y S) Vec2[S] {
	return Vec2[S]{X: x, Y: y}
}

// Vec2Splat returns a vector with all components set to value.
func Vec2Splat[S Float](value S) Vec2[S] {
	return Vec2[S]{X: value, Y: value}
}

func UnitX2[S Float]() Vec2[S] {
	return Vec2[S]{X: 1}
}

func UnitY2[S Float]() Vec2[S] {
	return Vec2[S]{Y: 1}
}

func (v Vec2[S]) Add(other Vec2[S]) Vec2[S] {
	v.X += other.X
	v.Y += other.Y
	return v
}

func (v Vec2[S]) Sub(other Vec2[S]) Vec2[S] {
	v.X -= other.X
	v.Y -= other.Y
	return v
}

func (v Vec2[S]) Mul(scalar S) Vec2[S] {
	v.X *= scalar
	v.Y *= scalar
	return v
}

func (v Vec2[S]) Div(scalar S) Vec2[S] {
	v.X /= scalar
	v.Y /= scalar
	return v
}

func (v Vec2[S]) MulEach(other Vec2[S]) Vec2[S] {
	v.X *= other.X
	v.Y *= other.Y
	return v
}

func (v Vec2[S]) DivEach(other Vec2[S]) Vec2[S] {
	v.X /= other.X
	v.Y /= other.Y
	return v
}

func (v Vec2[S]) Neg() Vec2[S] {
	return Vec2[S]{X: -v.X, Y: -v.Y}
}

func (v Vec2[S]) Dot(other Vec2[S]) S {
	return v.X*other.X + v.Y*other.Y
}

// PerpDot returns the z component of the three dimensional cross product.
func (v Vec2[S]) PerpDot(other Vec2[S]) S {
	return v.X*other.Y - v.Y*other.X
}

func (v Vec2[S]) Normalized() Vec2[S] {
	length := v.Length()
	v.X /= length
	v.Y /= length
	return v
}

func (v Vec2[S]) Length() S {
	return sqrt(v.LengthSqr())
}

func (v Vec2[S]) LengthSqr() S {
	return v.X*v.X + v.Y*v.Y
}

// Extend returns a three dimensional vector with the given z component.
func (v Vec2[S]) Extend(z S) Vec3[S] {
	return Vec3[S]{X: v.X, Y: v.Y, Z: z}
}

func (v Vec2[S]) ApproxEqual(other Vec2[S], tol Tolerance) bool {
	return ApproxEqual(v.X, other.X, tol) &&
		ApproxEqual(v.Y, other.Y, tol)
}

func (v Vec2[S]) String() string {
	return fmt.Sprintf("vec2(x=%v, y=%v)", v.X, v.Y)
}
