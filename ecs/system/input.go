package system

import (
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs"
)

// PointerPhase says which part of a press a pointer batch belongs to.
type PointerPhase uint8

const (
	PointerBegan PointerPhase = iota + 1
	PointerMoved
	PointerEnded
)

type pointerBatch struct {
	phase   PointerPhase
	touches []control.Touch
}

// PointerReceiver consumes pointer batches. *control.Controller implements it.
type PointerReceiver interface {
	PointersBegan([]control.Touch)
	PointersMoved([]control.Touch)
	PointersEnded([]control.Touch)
}

// InputSystem buffers pointer events between frames and delivers them in
// arrival order at the start of the next frame, before anything reads the
// controller state.
type InputSystem struct {
	receiver PointerReceiver
	pending  []pointerBatch
}

func NewInputSystem(receiver PointerReceiver) *InputSystem {
	return &InputSystem{receiver: receiver}
}

// Push buffers a batch. Empty batches are dropped.
func (i *InputSystem) Push(phase PointerPhase, touches ...control.Touch) {
	if len(touches) == 0 {
		return
	}
	i.pending = append(i.pending, pointerBatch{
		phase:   phase,
		touches: append([]control.Touch(nil), touches...),
	})
}

// Pending reports how many batches wait for the next frame.
func (i *InputSystem) Pending() int {
	return len(i.pending)
}

func (i *InputSystem) Update(w *ecs.World) {
	if i.receiver == nil {
		i.pending = nil
		return
	}
	batches := i.pending
	i.pending = nil
	for _, b := range batches {
		switch b.phase {
		case PointerBegan:
			i.receiver.PointersBegan(b.touches)
		case PointerMoved:
			i.receiver.PointersMoved(b.touches)
		case PointerEnded:
			i.receiver.PointersEnded(b.touches)
		}
	}
}
