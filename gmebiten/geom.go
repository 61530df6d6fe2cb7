// Package gmebiten connects gm transforms to the ebiten game engine.
package gmebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/oliverbestmann/gm"
)

// GeoM converts an affine transform into an ebiten.GeoM.
func GeoM(a gm.Affine2[float64]) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, a.Matrix[0][0])
	g.SetElement(0, 1, a.Matrix[0][1])
	g.SetElement(0, 2, a.Translation.X)
	g.SetElement(1, 0, a.Matrix[1][0])
	g.SetElement(1, 1, a.Matrix[1][1])
	g.SetElement(1, 2, a.Translation.Y)
	return g
}

// GeoMFromDecomposed converts a two dimensional transform into an ebiten.GeoM.
func GeoMFromDecomposed[R gm.Rotation2[float64, R]](d gm.Decomposed2[float64, R]) ebiten.GeoM {
	return GeoM(gm.Affine2FromDecomposed(d))
}

// Affine2 reads the transform back from an ebiten.GeoM.
func Affine2(g ebiten.GeoM) gm.Affine2[float64] {
	return gm.Affine2[float64]{
		Matrix: gm.Mat2[float64]{
			{g.Element(0, 0), g.Element(0, 1)},
			{g.Element(1, 0), g.Element(1, 1)},
		},
		Translation: gm.Vec2Of(g.Element(0, 2), g.Element(1, 2)),
	}
}

// Apply transforms a point with the given GeoM.
func Apply(g ebiten.GeoM, point gm.Vec2[float64]) gm.Vec2[float64] {
	x, y := g.Apply(point.X, point.Y)
	return gm.Vec2Of(x, y)
}

// DrawImageOptions returns options that draw an image with the given transform.
func DrawImageOptions(a gm.Affine2[float64]) *ebiten.DrawImageOptions {
	op := &ebiten.DrawImageOptions{}
	op.GeoM = GeoM(a)
	return op
}
