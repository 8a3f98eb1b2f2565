package control

import "math"

// JoystickState is a snapshot of the virtual joystick.
type JoystickState struct {
	Offset Vec2
	Radius float64
	Active bool
}

// JoystickController clamps pointer positions onto the knob circle.
type JoystickController struct {
	state JoystickState
	owner PointerID
	owned bool

	knob          Entity
	knobSize      float64
	resetDuration float64

	queue CommandQueue
}

func NewJoystickController(radius, knobSize, resetDuration float64, knob Entity) *JoystickController {
	return &JoystickController{
		state:         JoystickState{Radius: radius},
		knob:          knob,
		knobSize:      knobSize,
		resetDuration: resetDuration,
	}
}

// State returns a copy of the joystick state.
func (j *JoystickController) State() JoystickState {
	return j.state
}

// Offset is the current knob offset from the joystick centre.
func (j *JoystickController) Offset() Vec2 {
	return j.state.Offset
}

func (j *JoystickController) Active() bool {
	return j.state.Active
}

// HitRegion is the knob's current hit area in joystick-local space.
func (j *JoystickController) HitRegion() Region {
	return RectAround(j.state.Offset, j.knobSize, j.knobSize)
}

// Grab marks the knob as held by pointer id.
func (j *JoystickController) Grab(id PointerID) {
	j.state.Active = true
	j.owner = id
	j.owned = true
}

// Owner reports which pointer holds the knob, if any.
func (j *JoystickController) Owner() (PointerID, bool) {
	return j.owner, j.owned
}

// Release drops pointer ownership without recentring the knob.
func (j *JoystickController) Release(id PointerID) {
	if j.owned && j.owner == id {
		j.owned = false
	}
}

// Update moves the knob towards local, clamped to the joystick radius.
func (j *JoystickController) Update(local Vec2) {
	length := local.Len()
	if length <= j.state.Radius {
		j.state.Offset = local
	} else {
		angle := local.Angle()
		j.state.Offset = Vec2{X: math.Cos(angle) * j.state.Radius, Y: math.Sin(angle) * j.state.Radius}
	}
	j.queue.Push(j.knob, MoveTo(j.state.Offset, 0))
}

// Reset recentres the knob and deactivates the joystick.
func (j *JoystickController) Reset() {
	j.state.Offset = Vec2{}
	j.state.Active = false
	j.owned = false
	j.queue.Push(j.knob, MoveTo(Vec2{}, j.resetDuration))
}

// SetRadius changes the clamp radius, pulling the current offset inside it.
func (j *JoystickController) SetRadius(radius float64) {
	j.state.Radius = radius
	if j.state.Offset.Len() > radius {
		j.Update(j.state.Offset)
	}
}

func (j *JoystickController) configure(cfg Config) {
	j.knobSize = cfg.KnobSize
	j.resetDuration = cfg.ResetDuration
	j.SetRadius(cfg.KnobRadius)
}
