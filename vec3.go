package gm

import "fmt"

type Vec3[S Float] struct {
	X S `json:"x" yaml:"x"`
	Y S `json:"y" yaml:"y"`
	Z S `json:"z" yaml:"z"`
}

func Vec3Of[S Float](x, y, z S) Vec3[S] {
	return Vec3[S]{X: x, Y: y, Z: z}
}

func Vec3Splat[S Float](value S) Vec3[S] {
	return Vec3[S]{X: value, Y: value, Z: value}
}

func UnitX[S Float]() Vec3[S] {
	return Vec3[S]{X: 1}
}

func UnitY[S Float]() Vec3[S] {
	return Vec3[S]{Y: 1}
}

func UnitZ[S Float]() Vec3[S] {
	return Vec3[S]{Z: 1}
}

func (v Vec3[S]) Add(other Vec3[S]) Vec3[S] {
	v.X += other.X
	v.Y += other.Y
	v.Z += other.Z
	return v
}

func (v Vec3[S]) Sub(other Vec3[S]) Vec3[S] {
	v.X -= other.X
	v.Y -= other.Y
	v.Z -= other.Z
	return v
}

func (v Vec3[S]) Mul(scalar S) Vec3[S] {
	v.X *= scalar
	v.Y *= scalar
	v.Z *= scalar
	return v
}

func (v Vec3[S]) Div(scalar S) Vec3[S] {
	v.X /= scalar
	v.Y /= scalar
	v.Z /= scalar
	return v
}

func (v Vec3[S]) MulEach(other Vec3[S]) Vec3[S] {
	v.X *= other.X
	v.Y *= other.Y
	v.Z *= other.Z
	return v
}

func (v Vec3[S]) DivEach(other Vec3[S]) Vec3[S] {
	v.X /= other.X
	v.Y /= other.Y
	v.Z /= other.Z
	return v
}

func (v Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{X: -v.X, Y: -v.Y, Z: -v.Z}
}

func (v Vec3[S]) Dot(other Vec3[S]) S {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3[S]) Cross(other Vec3[S]) Vec3[S] {
	return Vec3[S]{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3[S]) Length() S {
	return sqrt(v.LengthSqr())
}

func (v Vec3[S]) LengthSqr() S {
	return v.Dot(v)
}

// Normalized returns the vector scaled to unit length. The zero vector
// has no direction, the result will contain NaN values.
func (v Vec3[S]) Normalized() Vec3[S] {
	return v.Div(v.Length())
}

func (v Vec3[S]) Extend(w S) Vec4[S] {
	return Vec4[S]{X: v.X, Y: v.Y, Z: v.Z, W: w}
}

// Truncate drops the z component.
func (v Vec3[S]) Truncate() Vec2[S] {
	return Vec2[S]{X: v.X, Y: v.Y}
}

func (v Vec3[S]) ApproxEqual(other Vec3[S], tol Tolerance) bool {
	return ApproxEqual(v.X, other.X, tol) &&
		ApproxEqual(v.Y, other.Y, tol) &&
		ApproxEqual(v.Z, other.Z, tol)
}

func (v Vec3[S]) String() string {
	return fmt.Sprintf("vec3(x=%v, y=%v, z=%v)", v.X, v.Y, v.Z)
}
