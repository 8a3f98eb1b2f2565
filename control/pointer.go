package control

import "sort"

// PointerID identifies a finger or the mouse across press, move and release.
type PointerID int

// Touch is one pointer sample delivered by the host, in screen space.
type Touch struct {
	ID       PointerID
	Position Vec2
}

// Pointer is a tracked pressed pointer.
type Pointer struct {
	ID       PointerID
	Position Vec2
	Start    Vec2
}

// PointerTracker hit-tests pointer events against the on-screen controls and
// routes them to the joystick and aim controllers.
type PointerTracker struct {
	pointers map[PointerID]*Pointer

	joystick *JoystickController
	aim      *AimController

	// joystickOrigin is the joystick centre in screen space.
	joystickOrigin Vec2
	joystickOn     bool
	button         Region
	aimRegion      Region
	deadzone       float64
}

func NewPointerTracker(joystick *JoystickController, aim *AimController) *PointerTracker {
	return &PointerTracker{
		pointers: make(map[PointerID]*Pointer),
		joystick: joystick,
		aim:      aim,
	}
}

// SetJoystick places the joystick centre. A disabled joystick ignores pointers.
func (t *PointerTracker) SetJoystick(origin Vec2, enabled bool) {
	t.joystickOrigin = origin
	t.joystickOn = enabled
}

// SetButton sets the toggle button region. Nil disables toggling.
func (t *PointerTracker) SetButton(r Region) {
	t.button = r
}

func (t *PointerTracker) configure(cfg Config) {
	t.aimRegion = RightOf{X: cfg.AimRegionX}
	t.deadzone = cfg.ResetDeadzone
}

// Local converts a screen position into joystick-local space.
func (t *PointerTracker) Local(p Vec2) Vec2 {
	return p.Sub(t.joystickOrigin)
}

// Pointers returns the tracked pointers ordered by id.
func (t *PointerTracker) Pointers() []Pointer {
	out := make([]Pointer, 0, len(t.pointers))
	for _, p := range t.pointers {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Began handles newly pressed pointers.
func (t *PointerTracker) Began(touches []Touch) {
	for _, touch := range touches {
		t.pointers[touch.ID] = &Pointer{ID: touch.ID, Position: touch.Position, Start: touch.Position}

		if t.joystickOn && t.joystick.HitRegion().Contains(t.Local(touch.Position)) {
			t.joystick.Grab(touch.ID)
		}

		if t.button != nil && t.button.Contains(touch.Position) {
			t.aim.Toggle()
		}

		if t.aim.Active() && t.aimRegion.Contains(touch.Position) {
			t.aim.Capture(touch.Position.Y)
		}
	}
}

// Moved handles pointer motion. Unknown ids are ignored.
func (t *PointerTracker) Moved(touches []Touch) {
	for _, touch := range touches {
		p, ok := t.pointers[touch.ID]
		if !ok {
			continue
		}
		p.Position = touch.Position

		inAimRegion := t.aimRegion.Contains(touch.Position)
		if t.aim.Active() && inAimRegion {
			t.aim.OnDrag(touch.Position.Y)
			continue
		}

		if !t.joystickOn || !t.joystick.Active() {
			continue
		}
		if owner, owned := t.joystick.Owner(); !owned || owner != touch.ID {
			continue
		}
		t.joystick.Update(t.Local(touch.Position))
	}
}

// Ended handles released pointers. Unknown ids are ignored.
func (t *PointerTracker) Ended(touches []Touch) {
	for _, touch := range touches {
		if _, ok := t.pointers[touch.ID]; !ok {
			continue
		}
		delete(t.pointers, touch.ID)

		if !t.joystickOn {
			continue
		}
		t.joystick.Release(touch.ID)

		x := t.Local(touch.Position).X
		if !t.aim.Active() && x > -t.deadzone && x < t.deadzone {
			t.joystick.Reset()
		}
	}
}
