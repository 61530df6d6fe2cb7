package gmconv

import (
	"github.com/oliverbestmann/gm"
	"golang.org/x/image/math/f32"
)

func F32Vec2(v gm.Vec2[float32]) f32.Vec2 {
	return f32.Vec2{v.X, v.Y}
}

func Vec2FromF32(v f32.Vec2) gm.Vec2[float32] {
	return gm.Vec2Of(v[0], v[1])
}

func F32Vec3(v gm.Vec3[float32]) f32.Vec3 {
	return f32.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromF32(v f32.Vec3) gm.Vec3[float32] {
	return gm.Vec3Of(v[0], v[1], v[2])
}

func F32Vec4(v gm.Vec4[float32]) f32.Vec4 {
	return f32.Vec4{v.X, v.Y, v.Z, v.W}
}

func Vec4FromF32(v f32.Vec4) gm.Vec4[float32] {
	return gm.Vec4Of(v[0], v[1], v[2], v[3])
}

// F32Mat3 flattens the matrix. Both use row major order.
func F32Mat3(m gm.Mat3[float32]) f32.Mat3 {
	var out f32.Mat3
	for row := range 3 {
		copy(out[row*3:], m[row][:])
	}

	return out
}

func Mat3FromF32(m f32.Mat3) gm.Mat3[float32] {
	var out gm.Mat3[float32]
	for row := range 3 {
		copy(out[row][:], m[row*3:])
	}

	return out
}

func F32Mat4(m gm.Mat4[float32]) f32.Mat4 {
	var out f32.Mat4
	for row := range 4 {
		copy(out[row*4:], m[row][:])
	}

	return out
}

func Mat4FromF32(m f32.Mat4) gm.Mat4[float32] {
	var out gm.Mat4[float32]
	for row := range 4 {
		copy(out[row][:], m[row*4:])
	}

	return out
}

// F32Aff3 converts an affine transform into the affine matrix type
// used by golang.org/x/image/draw.
func F32Aff3(a gm.Affine2[float32]) f32.Aff3 {
	return f32.Aff3{
		a.Matrix[0][0], a.Matrix[0][1], a.Translation.X,
		a.Matrix[1][0], a.Matrix[1][1], a.Translation.Y,
	}
}

func Affine2FromF32Aff3(m f32.Aff3) gm.Affine2[float32] {
	return gm.Affine2[float32]{
		Matrix: gm.Mat2[float32]{
			{m[0], m[1]},
			{m[3], m[4]},
		},
		Translation: gm.Vec2Of(m[2], m[5]),
	}
}
