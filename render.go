package main

import (
	"fmt"
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/aimstick/common"
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
	"github.com/milk9111/aimstick/ecs/system"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

type drawItem struct {
	entity ecs.Entity
	pose   system.Pose
	shape  *component.Shape
}

// Renderer draws scene shapes in render-layer order.
type Renderer struct {
	viewport common.Viewport
	items    []drawItem
}

func NewRenderer(vp common.Viewport) *Renderer {
	return &Renderer{viewport: vp}
}

func (r *Renderer) Draw(screen *ebiten.Image, w *ecs.World) {
	r.items = r.items[:0]
	ecs.ForEach(w, component.ShapeComponent.Kind(), func(e ecs.Entity, s *component.Shape) {
		pose, ok := system.WorldPose(w, e)
		if !ok || pose.Hidden {
			return
		}
		r.items = append(r.items, drawItem{entity: e, pose: pose, shape: s})
	})
	sort.SliceStable(r.items, func(i, j int) bool {
		if r.items[i].pose.Layer != r.items[j].pose.Layer {
			return r.items[i].pose.Layer < r.items[j].pose.Layer
		}
		return r.items[i].entity < r.items[j].entity
	})

	for _, it := range r.items {
		r.drawShape(screen, it.pose, it.shape)
	}
}

func (r *Renderer) drawShape(screen *ebiten.Image, pose system.Pose, s *component.Shape) {
	cx, cy := r.viewport.ToScreen(control.Vec2{X: pose.X, Y: pose.Y})
	w := s.Width * math.Abs(pose.ScaleX) * r.viewport.ScaleX
	h := s.Height * math.Abs(pose.ScaleY) * r.viewport.ScaleY
	clr := s.Color
	if clr == nil {
		clr = color.White
	}

	switch s.Kind {
	case component.ShapeCircle:
		vector.FillCircle(screen, float32(cx), float32(cy), float32(w/2), clr, true)
	case component.ShapeRing:
		vector.StrokeCircle(screen, float32(cx), float32(cy), float32(w/2), 3, clr, true)
	case component.ShapeArrow:
		r.drawArrow(screen, pose, s, clr)
	default:
		if pose.Rotation == 0 {
			vector.FillRect(screen, float32(cx-w/2), float32(cy-h/2), float32(w), float32(h), clr, false)
			return
		}
		r.strokePolygon(screen, pose, []control.Vec2{
			{X: -s.Width / 2, Y: -s.Height / 2},
			{X: s.Width / 2, Y: -s.Height / 2},
			{X: s.Width / 2, Y: s.Height / 2},
			{X: -s.Width / 2, Y: s.Height / 2},
		}, clr)
	}
}

// drawArrow draws an arrow from the entity origin along its local +y axis.
func (r *Renderer) drawArrow(screen *ebiten.Image, pose system.Pose, s *component.Shape, clr color.Color) {
	head := math.Min(s.Width, s.Height/2)
	tip := control.Vec2{Y: s.Height}
	lines := [][2]control.Vec2{
		{{}, tip},
		{tip, {X: -s.Width / 2, Y: s.Height - head}},
		{tip, {X: s.Width / 2, Y: s.Height - head}},
	}
	for _, l := range lines {
		x0, y0 := r.viewport.ToScreen(localToScene(pose, l[0]))
		x1, y1 := r.viewport.ToScreen(localToScene(pose, l[1]))
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 3, clr, true)
	}
}

func (r *Renderer) strokePolygon(screen *ebiten.Image, pose system.Pose, pts []control.Vec2, clr color.Color) {
	for i := range pts {
		a := localToScene(pose, pts[i])
		b := localToScene(pose, pts[(i+1)%len(pts)])
		x0, y0 := r.viewport.ToScreen(a)
		x1, y1 := r.viewport.ToScreen(b)
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 2, clr, true)
	}
}

func localToScene(pose system.Pose, p control.Vec2) control.Vec2 {
	lx, ly := p.X*pose.ScaleX, p.Y*pose.ScaleY
	sin, cos := math.Sincos(pose.Rotation)
	return control.Vec2{
		X: pose.X + lx*cos - ly*sin,
		Y: pose.Y + lx*sin + ly*cos,
	}
}

var debugFace = text.NewGoXFace(basicfont.Face7x13)

// drawDebug prints controller state and marks live pointers.
func drawDebug(screen *ebiten.Image, vp common.Viewport, ctl *control.Controller) {
	js := ctl.Joystick()
	aim := ctl.Aim()
	ch := ctl.Character()

	var b strings.Builder
	fmt.Fprintf(&b, "FPS: %.1f  TPS: %.1f\n", ebiten.ActualFPS(), ebiten.ActualTPS())
	fmt.Fprintf(&b, "joystick active=%v offset=(%.1f, %.1f)\n", js.Active, js.Offset.X, js.Offset.Y)
	fmt.Fprintf(&b, "aim active=%v power=%.0f indicator=%v\n", aim.Active, aim.Power, aim.IndicatorVisible)
	fmt.Fprintf(&b, "character x=%.1f facing_right=%v\n", ch.Position.X, ch.FacingRight)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.LineSpacing = 16
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, b.String(), debugFace, op)

	for _, p := range ctl.Pointers() {
		x, y := vp.ToScreen(p.Position)
		vector.StrokeCircle(screen, float32(x), float32(y), 18, 2, colornames.Orange, true)
		sx, sy := vp.ToScreen(p.Start)
		vector.StrokeLine(screen, float32(sx), float32(sy), float32(x), float32(y), 1, colornames.Orange, true)
	}

	ax, _ := vp.ToScreen(control.Vec2{X: ctl.Config().AimRegionX})
	vector.StrokeLine(screen, float32(ax), 0, float32(ax), float32(vp.Height), 1, colornames.Dimgray, false)
}
