package gmebiten

import (
	"fmt"

	"github.com/oliverbestmann/gm"
)

// Projection describes how the view of an orthographic camera
// is mapped onto the screen.
type Projection struct {
	// ViewportOrigin is the point of the viewport the camera sits on,
	// relative to its size. (0.5, 0.5) is the center.
	ViewportOrigin gm.Vec2[float64]

	ScalingMode ScalingMode

	// Scale multiplies the viewport size of the ScalingMode, values above one zoom out.
	Scale float64
}

// DefaultProjection centers the camera and shows one world unit per pixel.
func DefaultProjection() Projection {
	return Projection{
		ViewportOrigin: gm.Vec2Of(0.5, 0.5),
		ScalingMode:    ScalingModeWindowSize{},
		Scale:          1,
	}
}

// ScalingMode picks the size of the visible area in camera units
// for a screen of the given size in pixels.
type ScalingMode interface {
	ViewportSize(width, height float64) gm.Vec2[float64]
}

// ScalingModeWindowSize shows one unit per pixel.
type ScalingModeWindowSize struct{}

func (s ScalingModeWindowSize) ViewportSize(width, height float64) gm.Vec2[float64] {
	return gm.Vec2Of(width, height)
}

// ScalingModeFixed always shows Viewport, stretching it if the aspect
// ratio of the screen differs.
type ScalingModeFixed struct {
	Viewport gm.Vec2[float64]
}

func (s ScalingModeFixed) ViewportSize(width, height float64) gm.Vec2[float64] {
	return s.Viewport
}

// ScalingModeAutoMin shows at least MinWidth x MinHeight units and
// grows one axis to match the aspect ratio of the screen.
type ScalingModeAutoMin struct {
	MinWidth, MinHeight float64
}

func (s ScalingModeAutoMin) ViewportSize(width, height float64) gm.Vec2[float64] {
	if width/height > s.MinWidth/s.MinHeight {
		return gm.Vec2Of(s.MinHeight*width/height, s.MinHeight)
	}

	return gm.Vec2Of(s.MinWidth, s.MinWidth*height/width)
}

// ScalingModeAutoMax shows at most MaxWidth x MaxHeight units and
// shrinks one axis to match the aspect ratio of the screen.
type ScalingModeAutoMax struct {
	MaxWidth, MaxHeight float64
}

func (s ScalingModeAutoMax) ViewportSize(width, height float64) gm.Vec2[float64] {
	if width/height < s.MaxWidth/s.MaxHeight {
		return gm.Vec2Of(s.MaxHeight*width/height, s.MaxHeight)
	}

	return gm.Vec2Of(s.MaxWidth, s.MaxWidth*height/width)
}

// ScalingModeFixedVertical shows Height units vertically, the
// horizontal extent follows the aspect ratio of the screen.
type ScalingModeFixedVertical struct {
	Height float64
}

func (s ScalingModeFixedVertical) ViewportSize(width, height float64) gm.Vec2[float64] {
	return gm.Vec2Of(s.Height*width/height, s.Height)
}

// ScalingModeFixedHorizontal shows Width units horizontally, the
// vertical extent follows the aspect ratio of the screen.
type ScalingModeFixedHorizontal struct {
	Width float64
}

func (s ScalingModeFixedHorizontal) ViewportSize(width, height float64) gm.Vec2[float64] {
	return gm.Vec2Of(s.Width, s.Width*height/width)
}

// WorldToScreen calculates the transform from world coordinates into screen
// pixels for a camera placed in the world with the given transform.
// The scale of the camera transform zooms out.
func WorldToScreen[R gm.Rotation2[float64, R]](projection Projection, camera gm.Decomposed2[float64, R], screenSize gm.Vec2[float64]) (gm.Affine2[float64], error) {
	toCamera, err := camera.Inverse()
	if err != nil {
		return gm.Affine2[float64]{}, fmt.Errorf("invert camera transform: %w", err)
	}

	// the cameras viewport size in camera local units
	viewportSize := projection.ScalingMode.
		ViewportSize(screenSize.X, screenSize.Y).
		Mul(projection.Scale)

	toScreen := gm.IdentityAffine[float64]().
		Scale(screenSize.DivEach(viewportSize)).
		Translate(projection.ViewportOrigin.MulEach(viewportSize))

	return toScreen.Concat(gm.Affine2FromDecomposed(toCamera)), nil
}

// ScreenToWorld is the inverse of WorldToScreen.
func ScreenToWorld[R gm.Rotation2[float64, R]](projection Projection, camera gm.Decomposed2[float64, R], screenSize gm.Vec2[float64]) (gm.Affine2[float64], error) {
	toScreen, err := WorldToScreen(projection, camera, screenSize)
	if err != nil {
		return gm.Affine2[float64]{}, err
	}

	return toScreen.Inverse()
}
