package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/aimstick/common"
	"github.com/milk9111/aimstick/control"
	"github.com/milk9111/aimstick/ecs/system"
)

// mousePointer is the pointer id used for the left mouse button. Touch ids
// from ebiten are non-negative.
const mousePointer control.PointerID = -1

// Input polls ebiten touches and the mouse and forwards them to the input
// system as pointer batches in scene coordinates.
type Input struct {
	sink     *system.InputSystem
	viewport common.Viewport

	touchIDs []ebiten.TouchID
	lastPos  map[ebiten.TouchID]control.Vec2
	mouseOn  bool
	mousePos control.Vec2
}

func NewInput(sink *system.InputSystem, vp common.Viewport) *Input {
	return &Input{
		sink:     sink,
		viewport: vp,
		lastPos:  make(map[ebiten.TouchID]control.Vec2),
	}
}

func (i *Input) Update() {
	var began, moved, ended []control.Touch

	i.touchIDs = inpututil.AppendJustPressedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		p := i.touchPosition(ebiten.TouchPosition(id))
		i.lastPos[id] = p
		began = append(began, control.Touch{ID: control.PointerID(id), Position: p})
	}

	i.touchIDs = ebiten.AppendTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		if inpututil.IsTouchJustReleased(id) {
			continue
		}
		p := i.touchPosition(ebiten.TouchPosition(id))
		if prev, ok := i.lastPos[id]; ok && prev == p {
			continue
		}
		i.lastPos[id] = p
		moved = append(moved, control.Touch{ID: control.PointerID(id), Position: p})
	}

	i.touchIDs = inpututil.AppendJustReleasedTouchIDs(i.touchIDs[:0])
	for _, id := range i.touchIDs {
		p := i.touchPosition(inpututil.TouchPositionInPreviousTick(id))
		delete(i.lastPos, id)
		ended = append(ended, control.Touch{ID: control.PointerID(id), Position: p})
	}

	cx, cy := ebiten.CursorPosition()
	cursor := i.touchPosition(cx, cy)
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		i.mouseOn = true
		i.mousePos = cursor
		began = append(began, control.Touch{ID: mousePointer, Position: cursor})
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && i.mouseOn:
		i.mouseOn = false
		ended = append(ended, control.Touch{ID: mousePointer, Position: cursor})
	case i.mouseOn && cursor != i.mousePos:
		i.mousePos = cursor
		moved = append(moved, control.Touch{ID: mousePointer, Position: cursor})
	}

	i.sink.Push(system.PointerBegan, began...)
	i.sink.Push(system.PointerMoved, moved...)
	i.sink.Push(system.PointerEnded, ended...)
}

func (i *Input) touchPosition(x, y int) control.Vec2 {
	return i.viewport.ToScene(float64(x), float64(y))
}
