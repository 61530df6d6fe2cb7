package gmcp

import (
	"github.com/jakecoffman/cp/v2"
	"github.com/oliverbestmann/gm"
)

// TransformedDrawer forwards all drawing calls to Drawer after mapping
// every position through Transform. Use it with cp.DrawSpace to render
// a physics space in screen coordinates.
type TransformedDrawer struct {
	cp.Drawer
	Transform gm.Affine2[float64]
}

var _ cp.Drawer = TransformedDrawer{}

func (d TransformedDrawer) point(p cp.Vector) cp.Vector {
	return Vector(d.Transform.TransformPoint(Vec2(p)))
}

// radius scales a length by the horizontal scale of the transform.
func (d TransformedDrawer) radius(r float64) float64 {
	return d.Transform.TransformVector(gm.Vec2[float64]{X: r}).Length()
}

func (d TransformedDrawer) DrawCircle(pos cp.Vector, angle, radius float64, outline, fill cp.FColor, data interface{}) {
	sin, cos := gm.RadOf(angle).SinCos()
	dir := d.Transform.TransformVector(gm.Vec2Of(cos, sin))
	d.Drawer.DrawCircle(d.point(pos), gm.Atan2(dir.Y, dir.X).Value(), d.radius(radius), outline, fill, data)
}

func (d TransformedDrawer) DrawSegment(a, b cp.Vector, fill cp.FColor, data interface{}) {
	d.Drawer.DrawSegment(d.point(a), d.point(b), fill, data)
}

func (d TransformedDrawer) DrawFatSegment(a, b cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	d.Drawer.DrawFatSegment(d.point(a), d.point(b), d.radius(radius), outline, fill, data)
}

func (d TransformedDrawer) DrawPolygon(count int, verts []cp.Vector, radius float64, outline, fill cp.FColor, data interface{}) {
	transformed := make([]cp.Vector, count)
	for idx := range count {
		transformed[idx] = d.point(verts[idx])
	}

	d.Drawer.DrawPolygon(count, transformed, d.radius(radius), outline, fill, data)
}

func (d TransformedDrawer) DrawDot(size float64, pos cp.Vector, fill cp.FColor, data interface{}) {
	d.Drawer.DrawDot(size, d.point(pos), fill, data)
}
