package system

import (
	"github.com/milk9111/aimstick/common"
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
)

// AnimationSink hands controller actions to entity action queues. It
// implements control.Sink.
type AnimationSink struct {
	world *ecs.World
}

func NewAnimationSink(w *ecs.World) *AnimationSink {
	return &AnimationSink{world: w}
}

// Run queues a on target. Actions for dead entities are dropped.
func (s *AnimationSink) Run(target control.Entity, a control.Action) {
	if s == nil || s.world == nil {
		return
	}
	e := ecs.Entity(target)
	if !s.world.IsAlive(e) {
		return
	}

	q, ok := ecs.Get(s.world, e, component.ActionQueueComponent.Kind())
	if !ok {
		q = &component.ActionQueue{}
		if err := ecs.Add(s.world, e, component.ActionQueueComponent.Kind(), q); err != nil {
			panic("animation sink: add action queue: " + err.Error())
		}
	}
	if !ecs.Has(s.world, e, component.TransformComponent.Kind()) {
		if err := ecs.Add(s.world, e, component.TransformComponent.Kind(), &component.Transform{ScaleX: 1, ScaleY: 1}); err != nil {
			panic("animation sink: add transform: " + err.Error())
		}
	}
	if !ecs.Has(s.world, e, component.VisibilityComponent.Kind()) {
		if err := ecs.Add(s.world, e, component.VisibilityComponent.Kind(), &component.Visibility{}); err != nil {
			panic("animation sink: add visibility: " + err.Error())
		}
	}
	q.Pending = append(q.Pending, a)
}

// AnimationSystem runs queued actions as linear tweens over Transform and
// Visibility. Actions start in the order they were queued. A new tween on a
// channel (position, rotation, x-scale, y-scale) replaces one already running
// on that channel; relative moves and sequences run alongside.
type AnimationSystem struct {
	clock Clock
	delta control.FrameDelta
}

func NewAnimationSystem(clock Clock) *AnimationSystem {
	return &AnimationSystem{clock: clock}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil || a.clock == nil {
		return
	}
	dt := a.delta.Next(a.clock())

	ecs.ForEach(w, component.ActionQueueComponent.Kind(), func(e ecs.Entity, q *component.ActionQueue) {
		t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
		if !ok {
			return
		}
		v, ok := ecs.Get(w, e, component.VisibilityComponent.Kind())
		if !ok {
			return
		}

		for _, act := range q.Pending {
			q.Running = startTween(q.Running, act)
		}
		q.Pending = nil

		running := q.Running[:0]
		for _, tw := range q.Running {
			if _, done := advanceTween(tw, dt, t, v); !done {
				running = append(running, tw)
			}
		}
		for i := len(running); i < len(q.Running); i++ {
			q.Running[i] = nil
		}
		q.Running = running
	})
}

type channel uint8

const (
	channelNone channel = iota
	channelPosition
	channelRotation
	channelScaleX
	channelScaleY
)

func channelOf(a control.Action) channel {
	switch a.Kind {
	case control.ActionMoveTo:
		return channelPosition
	case control.ActionRotateTo:
		return channelRotation
	case control.ActionScaleXTo:
		return channelScaleX
	case control.ActionScaleYTo:
		return channelScaleY
	default:
		return channelNone
	}
}

func startTween(running []*component.Tween, a control.Action) []*component.Tween {
	if ch := channelOf(a); ch != channelNone {
		kept := running[:0]
		for _, tw := range running {
			if channelOf(tw.Action) != ch {
				kept = append(kept, tw)
			}
		}
		running = kept
	}
	return append(running, &component.Tween{Action: a})
}

// advanceTween runs tw for dt seconds. It returns the time left over once tw
// completes so sequences can hand it to their next step.
func advanceTween(tw *component.Tween, dt float64, t *component.Transform, v *component.Visibility) (float64, bool) {
	if tw.Action.Kind == control.ActionSequence {
		for tw.Step < len(tw.Action.Steps) {
			if tw.Child == nil {
				tw.Child = &component.Tween{Action: tw.Action.Steps[tw.Step]}
			}
			rest, done := advanceTween(tw.Child, dt, t, v)
			if !done {
				return 0, false
			}
			dt = rest
			tw.Child = nil
			tw.Step++
		}
		return dt, true
	}

	if !tw.Started {
		tw.Started = true
		tw.From = captureFrom(tw.Action, t)
	}

	d := tw.Action.Duration
	if d <= 0 {
		applyTween(tw, 1, t, v)
		return dt, true
	}

	tw.Elapsed += dt
	progress := tw.Elapsed / d
	if progress > 1 {
		progress = 1
	}
	applyTween(tw, progress, t, v)
	if tw.Elapsed >= d {
		return tw.Elapsed - d, true
	}
	return 0, false
}

func captureFrom(a control.Action, t *component.Transform) control.Vec2 {
	switch a.Kind {
	case control.ActionMoveTo:
		return control.Vec2{X: t.X, Y: t.Y}
	case control.ActionRotateTo:
		return control.Vec2{X: t.Rotation}
	case control.ActionScaleXTo:
		return control.Vec2{X: t.ScaleX}
	case control.ActionScaleYTo:
		return control.Vec2{X: t.ScaleY}
	}
	return control.Vec2{}
}

func applyTween(tw *component.Tween, p float64, t *component.Transform, v *component.Visibility) {
	a := tw.Action
	switch a.Kind {
	case control.ActionMoveBy:
		want := a.Vector.Scale(p)
		step := want.Sub(tw.Applied)
		t.X += step.X
		t.Y += step.Y
		tw.Applied = want
	case control.ActionMoveTo:
		t.X = common.Lerp(tw.From.X, a.Vector.X, p)
		t.Y = common.Lerp(tw.From.Y, a.Vector.Y, p)
	case control.ActionRotateTo:
		t.Rotation = common.Lerp(tw.From.X, a.Value, p)
	case control.ActionScaleXTo:
		t.ScaleX = common.Lerp(tw.From.X, a.Value, p)
	case control.ActionScaleYTo:
		t.ScaleY = common.Lerp(tw.From.X, a.Value, p)
	case control.ActionSetHidden:
		v.Hidden = a.Hidden
	}
}
