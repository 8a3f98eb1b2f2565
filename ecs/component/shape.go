package component

import "image/color"

type ShapeKind string

const (
	ShapeRect   ShapeKind = "rect"
	ShapeCircle ShapeKind = "circle"
	ShapeArrow  ShapeKind = "arrow"
	ShapeRing   ShapeKind = "ring"
)

// Shape is a flat vector primitive drawn at the entity transform. Width and
// Height are in scene units before scaling; circles use Width as diameter.
type Shape struct {
	Kind   ShapeKind
	Width  float64
	Height float64
	Color  color.Color
	Glyph  rune
}

var ShapeComponent = NewComponent[Shape]()
