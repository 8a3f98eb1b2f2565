package system

import (
	"math"

	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
)

// maxParentDepth stops runaway parent chains.
const maxParentDepth = 16

// Pose is an entity transform resolved into scene space.
type Pose struct {
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
	Hidden   bool
	Layer    int
}

// WorldPose composes e's transform with its parents'. A hidden ancestor hides
// e, and e inherits the nearest render layer up the chain.
func WorldPose(w *ecs.World, e ecs.Entity) (Pose, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return Pose{}, false
	}
	pose := Pose{X: t.X, Y: t.Y, ScaleX: t.ScaleX, ScaleY: t.ScaleY, Rotation: t.Rotation}
	layerSet := false
	if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
		pose.Layer = l.Index
		layerSet = true
	}
	if v, ok := ecs.Get(w, e, component.VisibilityComponent.Kind()); ok && v.Hidden {
		pose.Hidden = true
	}

	cur := e
	for depth := 0; depth < maxParentDepth; depth++ {
		p, ok := ecs.Get(w, cur, component.ParentComponent.Kind())
		if !ok {
			break
		}
		parent := ecs.Entity(p.Entity)
		pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
		if !ok {
			break
		}

		// child offset is scaled and rotated into the parent's frame
		lx, ly := pose.X*pt.ScaleX, pose.Y*pt.ScaleY
		sin, cos := math.Sincos(pt.Rotation)
		pose.X = pt.X + lx*cos - ly*sin
		pose.Y = pt.Y + lx*sin + ly*cos
		pose.ScaleX *= pt.ScaleX
		pose.ScaleY *= pt.ScaleY
		if pt.ScaleX < 0 {
			pose.Rotation = -pose.Rotation
		}
		pose.Rotation += pt.Rotation

		if !layerSet {
			if l, ok := ecs.Get(w, parent, component.RenderLayerComponent.Kind()); ok {
				pose.Layer = l.Index
				layerSet = true
			}
		}
		if v, ok := ecs.Get(w, parent, component.VisibilityComponent.Kind()); ok && v.Hidden {
			pose.Hidden = true
		}
		cur = parent
	}
	return pose, true
}
