package entity

import (
	"log"
	"math"

	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
	"github.com/milk9111/aimstick/ecs/component"
	"github.com/milk9111/aimstick/ecs/system"
	"github.com/milk9111/aimstick/prefabs"
)

// Lookup finds a live entity by its Name component.
func Lookup(w *ecs.World, name string) (ecs.Entity, bool) {
	if w == nil || name == "" {
		return 0, false
	}
	var found ecs.Entity
	ecs.ForEach(w, component.NameComponent.Kind(), func(e ecs.Entity, n *component.Name) {
		if !found.Valid() && n.Value == name {
			found = e
		}
	})
	return found, found.Valid()
}

// Bindings resolves the named controller entities. Names that do not resolve
// are logged and left as the zero Entity, which the controller treats as
// missing.
func Bindings(w *ecs.World, spec prefabs.BindingSpec) control.Bindings {
	resolve := func(role, name string) control.Entity {
		if name == "" {
			log.Printf("entity: no %s bound", role)
			return 0
		}
		e, ok := Lookup(w, name)
		if !ok {
			log.Printf("entity: %s %q not found", role, name)
			return 0
		}
		return control.Entity(e)
	}

	b := control.Bindings{
		Player:       resolve("player", spec.Player),
		Joystick:     resolve("joystick", spec.Joystick),
		Knob:         resolve("knob", spec.Knob),
		AimIndicator: resolve("aim indicator", spec.AimIndicator),
		Button:       resolve("button", spec.Button),
	}

	if b.Joystick.Valid() {
		if pose, ok := system.WorldPose(w, ecs.Entity(b.Joystick)); ok {
			b.JoystickOrigin = control.Vec2{X: pose.X, Y: pose.Y}
		}
	}
	if b.Button.Valid() {
		b.ButtonRegion = ButtonRegion(w, ecs.Entity(b.Button))
	}
	return b
}

// ButtonRegion is the scene-space rectangle covered by e's shape, or nil when
// e has no shape or pose.
func ButtonRegion(w *ecs.World, e ecs.Entity) control.Region {
	pose, ok := system.WorldPose(w, e)
	if !ok {
		return nil
	}
	shape, ok := ecs.Get(w, e, component.ShapeComponent.Kind())
	if !ok {
		return nil
	}
	return control.RectAround(
		control.Vec2{X: pose.X, Y: pose.Y},
		shape.Width*math.Abs(pose.ScaleX),
		shape.Height*math.Abs(pose.ScaleY),
	)
}
