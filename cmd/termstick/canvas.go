package main

import (
	"fmt"
	"math"
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/milk9111/aimstick/common"
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
	"github.com/milk9111/aimstick/ecs/system"
)

// Canvas rasterises scene shapes into terminal cells.
type Canvas struct {
	screen   tcell.Screen
	viewport common.Viewport
}

func NewCanvas(screen tcell.Screen) *Canvas {
	c := &Canvas{screen: screen}
	c.resize()
	return c
}

func (c *Canvas) Viewport() common.Viewport {
	return c.viewport
}

func (c *Canvas) resize() {
	w, h := c.screen.Size()
	c.viewport = common.NewViewport(float64(w), float64(h))
}

// Begin clears the screen and picks up size changes.
func (c *Canvas) Begin() {
	c.resize()
	c.screen.Clear()
}

type cellShape struct {
	entity ecs.Entity
	pose   system.Pose
	shape  *component.Shape
}

func (c *Canvas) DrawWorld(w *ecs.World) {
	var items []cellShape
	ecs.ForEach(w, component.ShapeComponent.Kind(), func(e ecs.Entity, s *component.Shape) {
		if pose, ok := system.WorldPose(w, e); ok && !pose.Hidden {
			items = append(items, cellShape{entity: e, pose: pose, shape: s})
		}
	})
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].pose.Layer != items[j].pose.Layer {
			return items[i].pose.Layer < items[j].pose.Layer
		}
		return items[i].entity < items[j].entity
	})
	for _, it := range items {
		c.drawShape(it.pose, it.shape)
	}
}

func (c *Canvas) drawShape(pose system.Pose, s *component.Shape) {
	style := tcell.StyleDefault
	if s.Color != nil {
		style = style.Foreground(tcell.FromImageColor(s.Color))
	}

	if s.Kind == component.ShapeArrow {
		c.drawArrow(pose, s, style)
		return
	}

	hw := s.Width * math.Abs(pose.ScaleX) / 2
	hh := s.Height * math.Abs(pose.ScaleY) / 2
	x0, y0 := c.viewport.ToScreen(control.Vec2{X: pose.X - hw, Y: pose.Y + hh})
	x1, y1 := c.viewport.ToScreen(control.Vec2{X: pose.X + hw, Y: pose.Y - hh})

	for cy := int(math.Floor(y0)); cy <= int(math.Ceil(y1))-1; cy++ {
		for cx := int(math.Floor(x0)); cx <= int(math.Ceil(x1))-1; cx++ {
			p := c.viewport.ToScene(float64(cx)+0.5, float64(cy)+0.5)
			if c.covers(pose, s, hw, hh, p) {
				c.screen.SetContent(cx, cy, s.Glyph, nil, style)
			}
		}
	}
}

// covers reports whether scene point p lies on the shape.
func (c *Canvas) covers(pose system.Pose, s *component.Shape, hw, hh float64, p control.Vec2) bool {
	dx, dy := p.X-pose.X, p.Y-pose.Y
	switch s.Kind {
	case component.ShapeCircle, component.ShapeRing:
		if hw == 0 {
			return false
		}
		d := math.Hypot(dx, dy*hw/math.Max(hh, 1e-9))
		if s.Kind == component.ShapeCircle {
			return d <= hw
		}
		// a ring keeps roughly one cell of thickness
		band := 1 / c.viewport.ScaleX
		return d <= hw && d >= hw-band
	default:
		return math.Abs(dx) <= hw && math.Abs(dy) <= hh
	}
}

func (c *Canvas) drawArrow(pose system.Pose, s *component.Shape, style tcell.Style) {
	length := s.Height * math.Abs(pose.ScaleY)
	sin, cos := math.Sincos(pose.Rotation)
	if pose.ScaleY < 0 {
		sin, cos = -sin, -cos
	}
	// local +y rotated into the scene
	dir := control.Vec2{X: -sin, Y: cos}

	step := 1 / math.Max(c.viewport.ScaleY, 1e-9)
	for d := 0.0; d <= length; d += step {
		p := control.Vec2{X: pose.X, Y: pose.Y}.Add(dir.Scale(d))
		x, y := c.viewport.ToScreen(p)
		c.screen.SetContent(int(x), int(y), '.', nil, style)
	}
	tip := control.Vec2{X: pose.X, Y: pose.Y}.Add(dir.Scale(length))
	x, y := c.viewport.ToScreen(tip)
	c.screen.SetContent(int(x), int(y), s.Glyph, nil, style)
}

// DrawStatus writes controller state on the top row.
func (c *Canvas) DrawStatus(ctl *control.Controller) {
	js := ctl.Joystick()
	aim := ctl.Aim()
	ch := ctl.Character()
	line := fmt.Sprintf(" knob (%+.0f, %+.0f)  aim=%v power=%.0f  x=%.0f facing=%s  [q quit, d status]",
		js.Offset.X, js.Offset.Y, aim.Active, aim.Power, ch.Position.X, facing(ch.FacingRight))
	c.text(0, 0, line, tcell.StyleDefault.Reverse(true))
}

func (c *Canvas) text(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		c.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func facing(right bool) string {
	if right {
		return "right"
	}
	return "left"
}
