package control

import "math"

// Vec2 is a 2D vector in scene units. Y grows upwards.
type Vec2 struct {
	X float64
	Y float64
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns atan2(y, x). The zero vector yields 0.
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Region is a hit-testable area.
type Region interface {
	Contains(p Vec2) bool
}

// Rect is an axis-aligned rectangle anchored at its bottom-left corner.
type Rect struct {
	X, Y, Width, Height float64
}

// RectAround returns a rectangle of the given size centred on c.
func RectAround(c Vec2, w, h float64) Rect {
	return Rect{X: c.X - w/2, Y: c.Y - h/2, Width: w, Height: h}
}

func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Circle is a circular hit area.
type Circle struct {
	Center Vec2
	Radius float64
}

func (c Circle) Contains(p Vec2) bool {
	d := p.Sub(c.Center)
	return d.X*d.X+d.Y*d.Y <= c.Radius*c.Radius
}

// RightOf matches every point strictly to the right of X.
type RightOf struct {
	X float64
}

func (r RightOf) Contains(p Vec2) bool {
	return p.X > r.X
}
