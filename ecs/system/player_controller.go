package system

import (
	"github.com/milk9111/aimstick/ecs"
)

// FrameUpdater is the per-frame entry point. *control.Controller implements it.
type FrameUpdater interface {
	Update(now float64)
}

// PlayerControllerSystem runs the controller once per frame with the clock time.
type PlayerControllerSystem struct {
	controller FrameUpdater
	clock      Clock
}

func NewPlayerControllerSystem(controller FrameUpdater, clock Clock) *PlayerControllerSystem {
	return &PlayerControllerSystem{controller: controller, clock: clock}
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p.controller == nil || p.clock == nil {
		return
	}
	p.controller.Update(p.clock())
}
