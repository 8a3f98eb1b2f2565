package control

// Config holds the controller tuning. Durations are in seconds.
type Config struct {
	// KnobRadius bounds the knob offset from the joystick centre.
	KnobRadius float64
	// KnobSize is the side of the square hit area around the knob.
	KnobSize float64
	// Speed multiplies the knob x offset into horizontal velocity.
	Speed float64
	// AimRegionX is the screen x right of which a drag adjusts aim power.
	AimRegionX float64
	// ResetDeadzone is the half-width of the joystick-local x interval in
	// which releasing a pointer recentres the knob.
	ResetDeadzone float64

	ResetDuration     float64
	FlipDuration      float64
	AimRotateDuration float64
	AimScaleDuration  float64

	// PowerStep is the power change per observed drag direction.
	PowerStep float64
	// PowerMin and PowerMax bound aim power when set. Nil leaves that side open.
	PowerMin *float64
	PowerMax *float64
	// PowerCurve maps aim power to the indicator y-scale.
	PowerCurve func(power float64) float64
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		KnobRadius:        50,
		KnobSize:          60,
		Speed:             8,
		AimRegionX:        400,
		ResetDeadzone:     200,
		ResetDuration:     0.1,
		FlipDuration:      0.1,
		AimRotateDuration: 0.1,
		AimScaleDuration:  0.1,
		PowerStep:         1,
		PowerCurve:        LinearPowerCurve,
	}
}

// LinearPowerCurve scales the indicator one unit per unit of power, starting at 1.
func LinearPowerCurve(power float64) float64 {
	return 1 + power
}

// withDefaults fills zero fields from DefaultConfig.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.KnobRadius <= 0 {
		c.KnobRadius = d.KnobRadius
	}
	if c.KnobSize <= 0 {
		c.KnobSize = d.KnobSize
	}
	if c.Speed <= 0 {
		c.Speed = d.Speed
	}
	if c.ResetDeadzone <= 0 {
		c.ResetDeadzone = d.ResetDeadzone
	}
	if c.PowerStep <= 0 {
		c.PowerStep = d.PowerStep
	}
	if c.PowerCurve == nil {
		c.PowerCurve = d.PowerCurve
	}
	if c.ResetDuration < 0 {
		c.ResetDuration = 0
	}
	if c.FlipDuration < 0 {
		c.FlipDuration = 0
	}
	if c.AimRotateDuration < 0 {
		c.AimRotateDuration = 0
	}
	if c.AimScaleDuration < 0 {
		c.AimScaleDuration = 0
	}
	return c
}

// Float64 returns a pointer to v, for the optional power bounds.
func Float64(v float64) *float64 {
	return &v
}
