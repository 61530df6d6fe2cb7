// Package gmconv converts gm values to and from the types of other
// math libraries.
//
// mathgl stores matrices in column major order, gm in row major order.
// The conversions take care of the transposition.
package gmconv

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/oliverbestmann/gm"
)

func Mgl64Vec3(v gm.Vec3[float64]) mgl64.Vec3 {
	return mgl64.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl64(v mgl64.Vec3) gm.Vec3[float64] {
	return gm.Vec3Of(v[0], v[1], v[2])
}

func Mgl64Mat3(m gm.Mat3[float64]) mgl64.Mat3 {
	var out mgl64.Mat3
	for row := range 3 {
		for col := range 3 {
			out[col*3+row] = m[row][col]
		}
	}

	return out
}

func Mat3FromMgl64(m mgl64.Mat3) gm.Mat3[float64] {
	var out gm.Mat3[float64]
	for row := range 3 {
		for col := range 3 {
			out[row][col] = m.At(row, col)
		}
	}

	return out
}

func Mgl64Mat4(m gm.Mat4[float64]) mgl64.Mat4 {
	var out mgl64.Mat4
	for row := range 4 {
		for col := range 4 {
			out[col*4+row] = m[row][col]
		}
	}

	return out
}

func Mat4FromMgl64(m mgl64.Mat4) gm.Mat4[float64] {
	var out gm.Mat4[float64]
	for row := range 4 {
		for col := range 4 {
			out[row][col] = m.At(row, col)
		}
	}

	return out
}

func Mgl64Quat(q gm.Quat[float64]) mgl64.Quat {
	return mgl64.Quat{W: q.W, V: Mgl64Vec3(q.V)}
}

func QuatFromMgl64(q mgl64.Quat) gm.Quat[float64] {
	return gm.Quat[float64]{W: q.W, V: Vec3FromMgl64(q.V)}
}

func Mgl32Vec3(v gm.Vec3[float32]) mgl32.Vec3 {
	return mgl32.Vec3{v.X, v.Y, v.Z}
}

func Vec3FromMgl32(v mgl32.Vec3) gm.Vec3[float32] {
	return gm.Vec3Of(v[0], v[1], v[2])
}

func Mgl32Mat4(m gm.Mat4[float32]) mgl32.Mat4 {
	var out mgl32.Mat4
	for row := range 4 {
		for col := range 4 {
			out[col*4+row] = m[row][col]
		}
	}

	return out
}

func Mat4FromMgl32(m mgl32.Mat4) gm.Mat4[float32] {
	var out gm.Mat4[float32]
	for row := range 4 {
		for col := range 4 {
			out[row][col] = m.At(row, col)
		}
	}

	return out
}

func Mgl32Quat(q gm.Quat[float32]) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: Mgl32Vec3(q.V)}
}

func QuatFromMgl32(q mgl32.Quat) gm.Quat[float32] {
	return gm.Quat[float32]{W: q.W, V: Vec3FromMgl32(q.V)}
}

// Mgl32Transform returns the model matrix of a transform, ready to be
// uploaded to a shader.
func Mgl32Transform[R gm.Rotation3[float32, R]](d gm.Decomposed3[float32, R]) mgl32.Mat4 {
	return Mgl32Mat4(gm.Mat4FromDecomposed(d))
}
