package gm

import (
	"fmt"
)

type Rect[S Float] struct {
	Min, Max Vec2[S]
}

func RectWithPoints[S Float](a, b Vec2[S]) Rect[S] {
	return Rect[S]{
		Min: Vec2[S]{
			X: min(a.X, b.X),
			Y: min(a.Y, b.Y),
		},
		Max: Vec2[S]{
			X: max(a.X, b.X),
			Y: max(a.Y, b.Y),
		},
	}
}

func RectWithSize[S Float](size Vec2[S]) Rect[S] {
	return Rect[S]{
		Max: size,
	}
}

func RectWithOriginAndSize[S Float](origin, size Vec2[S]) Rect[S] {
	return Rect[S]{
		Min: origin,
		Max: origin.Add(size),
	}
}

func RectWithCenterAndSize[S Float](center, size Vec2[S]) Rect[S] {
	half := size.Mul(0.5)
	return Rect[S]{
		Min: center.Sub(half),
		Max: center.Add(half),
	}
}

func (r Rect[S]) Center() Vec2[S] {
	return r.Min.Add(r.Max).Mul(0.5)
}

func (r Rect[S]) Size() Vec2[S] {
	return r.Max.Sub(r.Min)
}

// Corners returns the four corners in counterclockwise order,
// starting at Min.
func (r Rect[S]) Corners() [4]Vec2[S] {
	return [4]Vec2[S]{
		r.Min,
		{X: r.Max.X, Y: r.Min.Y},
		r.Max,
		{X: r.Min.X, Y: r.Max.Y},
	}
}

func (r Rect[S]) Translate(offset Vec2[S]) Rect[S] {
	return Rect[S]{
		Min: r.Min.Add(offset),
		Max: r.Max.Add(offset),
	}
}

// Union returns the smallest rectangle containing both r and other.
func (r Rect[S]) Union(other Rect[S]) Rect[S] {
	return Rect[S]{
		Min: Vec2[S]{X: min(r.Min.X, other.Min.X), Y: min(r.Min.Y, other.Min.Y)},
		Max: Vec2[S]{X: max(r.Max.X, other.Max.X), Y: max(r.Max.Y, other.Max.Y)},
	}
}

func (r Rect[S]) Contains(p Vec2[S]) bool {
	return r.Min.X <= p.X && p.X <= r.Max.X &&
		r.Min.Y <= p.Y && p.Y <= r.Max.Y
}

func (r Rect[S]) String() string {
	return fmt.Sprintf("Rect(min=%s, max=%s)", r.Min, r.Max)
}

// TransformRect returns the axis aligned bounding box of the
// rectangle r after it was transformed by t.
func TransformRect[S Float, T Transform[Vec2[S], T]](t T, r Rect[S]) Rect[S] {
	corners := r.Corners()

	first := t.TransformPoint(corners[0])
	bounds := Rect[S]{Min: first, Max: first}

	for _, corner := range corners[1:] {
		p := t.TransformPoint(corner)
		bounds = bounds.Union(Rect[S]{Min: p, Max: p})
	}

	return bounds
}
