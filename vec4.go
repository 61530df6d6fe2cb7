package gm

import "fmt"

// Vec4 is a homogeneous vector.
type Vec4[S Float] struct {
	X S `json:"x" yaml:"x"`
	Y S `json:"y" yaml:"y"`
	Z S `json:"z" yaml:"z"`
	W S `json:"w" yaml:"w"`
}

func Vec4Of[S Float](x, y, z, w S) Vec4[S] {
	return Vec4[S]{X: x, Y: y, Z: z, W: w}
}

func (v Vec4[S]) Add(other Vec4[S]) Vec4[S] {
	return Vec4[S]{X: v.X + other.X, Y: v.Y + other.Y, Z: v.Z + other.Z, W: v.W + other.W}
}

func (v Vec4[S]) Mul(scalar S) Vec4[S] {
	return Vec4[S]{X: v.X * scalar, Y: v.Y * scalar, Z: v.Z * scalar, W: v.W * scalar}
}

func (v Vec4[S]) Dot(other Vec4[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z + v.W*other.W
}

func (v Vec4[S]) Truncate() Vec3[S] {
	return Vec3[S]{X: v.X, Y: v.Y, Z: v.Z}
}

func (v Vec4[S]) ApproxEqual(other Vec4[S], tol Tolerance) bool {
	return ApproxEqual(v.X, other.X, tol) &&
		ApproxEqual(v.Y, other.Y, tol) &&
		ApproxEqual(v.Z, other.Z, tol) &&
		ApproxEqual(v.W, other.W, tol)
}

func (v Vec4[S]) String() string {
	return fmt.Sprintf("vec4(x=%v, y=%v, z=%v, w=%v)", v.X, v.Y, v.Z, v.W)
}
