package common

import "github.com/milk9111/aimstick/control"

const (
	BaseWidth  = 1280
	BaseHeight = 720
)

// Viewport maps between screen pixels (origin top-left, y down) and scene
// units (origin at the centre, y up). Scale is screen pixels per scene unit on
// each axis.
type Viewport struct {
	Width, Height  float64
	ScaleX, ScaleY float64
}

// NewViewport returns a viewport of the given screen size that shows the base
// scene stretched to fit.
func NewViewport(width, height float64) Viewport {
	return Viewport{
		Width:  width,
		Height: height,
		ScaleX: width / BaseWidth,
		ScaleY: height / BaseHeight,
	}
}

func (v Viewport) ToScene(sx, sy float64) control.Vec2 {
	return control.Vec2{
		X: (sx - v.Width/2) / v.scaleX(),
		Y: (v.Height/2 - sy) / v.scaleY(),
	}
}

func (v Viewport) ToScreen(p control.Vec2) (float64, float64) {
	return v.Width/2 + p.X*v.scaleX(), v.Height/2 - p.Y*v.scaleY()
}

func (v Viewport) scaleX() float64 {
	if v.ScaleX == 0 {
		return 1
	}
	return v.ScaleX
}

func (v Viewport) scaleY() float64 {
	if v.ScaleY == 0 {
		return 1
	}
	return v.ScaleY
}
