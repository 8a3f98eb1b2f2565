package control

import "log"

// Bindings carries the scene entities and geometry resolved by the host at
// startup. Any zero Entity is treated as missing.
type Bindings struct {
	Player       Entity
	Joystick     Entity
	Knob         Entity
	AimIndicator Entity
	Button       Entity

	// JoystickOrigin is the joystick centre in screen space.
	JoystickOrigin Vec2
	// ButtonRegion is the toggle button's screen-space hit area.
	ButtonRegion Region
}

// Controller wires the pointer tracker, joystick, aim and motion together
// behind the host-facing pointer and frame API.
type Controller struct {
	cfg      Config
	bindings Bindings
	sink     Sink

	tracker    *PointerTracker
	joystick   *JoystickController
	aim        *AimController
	integrator *MotionIntegrator
}

func NewController(cfg Config, b Bindings, sink Sink) *Controller {
	cfg = cfg.withDefaults()

	joystick := NewJoystickController(cfg.KnobRadius, cfg.KnobSize, cfg.ResetDuration, b.Knob)
	aim := NewAimController(cfg, b.AimIndicator)
	tracker := NewPointerTracker(joystick, aim)
	tracker.configure(cfg)
	integrator := NewMotionIntegrator(joystick, aim, b.Player, b.AimIndicator, cfg)

	joystickOn := b.Joystick.Valid() && b.Knob.Valid()
	if !joystickOn {
		log.Printf("control: joystick or knob missing, joystick disabled")
	}
	tracker.SetJoystick(b.JoystickOrigin, joystickOn)

	if b.Button.Valid() && b.ButtonRegion != nil {
		tracker.SetButton(b.ButtonRegion)
	} else {
		log.Printf("control: toggle button missing, aiming disabled")
	}
	if !b.AimIndicator.Valid() {
		log.Printf("control: aim indicator missing, aim feedback disabled")
	}
	if !b.Player.Valid() {
		log.Printf("control: player missing, movement disabled")
	}

	// The indicator starts hidden until aim mode is entered.
	aim.hideIndicator()

	return &Controller{
		cfg:        cfg,
		bindings:   b,
		sink:       sink,
		tracker:    tracker,
		joystick:   joystick,
		aim:        aim,
		integrator: integrator,
	}
}

// PointersBegan delivers newly pressed pointers.
func (c *Controller) PointersBegan(touches []Touch) {
	c.tracker.Began(touches)
}

// PointersMoved delivers pointer motion.
func (c *Controller) PointersMoved(touches []Touch) {
	c.tracker.Moved(touches)
}

// PointersEnded delivers released pointers.
func (c *Controller) PointersEnded(touches []Touch) {
	c.tracker.Ended(touches)
}

// Update runs one frame at the given monotonic time in seconds.
func (c *Controller) Update(now float64) {
	c.integrator.Update(now, c.sink)
}

// Configure applies new tuning without resetting controller state.
func (c *Controller) Configure(cfg Config) {
	cfg = cfg.withDefaults()
	c.cfg = cfg
	c.tracker.configure(cfg)
	c.joystick.configure(cfg)
	c.aim.configure(cfg)
	c.integrator.configure(cfg)
}

func (c *Controller) Config() Config {
	return c.cfg
}

func (c *Controller) Bindings() Bindings {
	return c.bindings
}

func (c *Controller) Joystick() JoystickState {
	return c.joystick.State()
}

func (c *Controller) Aim() AimState {
	return c.aim.State()
}

func (c *Controller) Character() CharacterState {
	return c.integrator.Character()
}

// Pointers returns the currently pressed pointers.
func (c *Controller) Pointers() []Pointer {
	return c.tracker.Pointers()
}
