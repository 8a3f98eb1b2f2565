package control

// AimState is a snapshot of the aim controls.
type AimState struct {
	Active           bool
	Power            float64
	PreviousDragY    float64
	IndicatorVisible bool
}

// AimController owns the move/aim toggle and the aim power value.
type AimController struct {
	state  AimState
	primed bool

	indicator     Entity
	step          float64
	min, max      *float64
	curve         func(float64) float64
	scaleDuration float64

	queue CommandQueue
}

func NewAimController(cfg Config, indicator Entity) *AimController {
	a := &AimController{indicator: indicator}
	a.configure(cfg.withDefaults())
	return a
}

func (a *AimController) State() AimState {
	return a.state
}

func (a *AimController) Active() bool {
	return a.state.Active
}

func (a *AimController) Power() float64 {
	return a.state.Power
}

// Toggle flips aim mode. Leaving aim mode hides the indicator.
func (a *AimController) Toggle() {
	a.state.Active = !a.state.Active
	if !a.state.Active {
		a.hideIndicator()
	}
}

// Capture starts a new drag at y. The next OnDrag sample only primes.
func (a *AimController) Capture(y float64) {
	a.state.PreviousDragY = y
	a.primed = false
}

// OnDrag feeds a drag sample and returns the applied power change.
func (a *AimController) OnDrag(y float64) float64 {
	if !a.primed {
		a.state.PreviousDragY = y
		a.primed = true
		return 0
	}

	var delta float64
	switch {
	case y > a.state.PreviousDragY:
		delta = a.step
	case y < a.state.PreviousDragY:
		delta = -a.step
	}
	a.state.PreviousDragY = y
	if delta == 0 {
		return 0
	}

	next := a.clamp(a.state.Power + delta)
	applied := next - a.state.Power
	if applied == 0 {
		return 0
	}
	a.state.Power = next
	a.queue.Push(a.indicator, ScaleYTo(a.curve(next), a.scaleDuration))
	return applied
}

// showIndicator queues a reveal if the indicator is hidden.
func (a *AimController) showIndicator() {
	if a.state.IndicatorVisible || !a.indicator.Valid() {
		return
	}
	a.state.IndicatorVisible = true
	a.queue.Push(a.indicator, SetHidden(false))
}

func (a *AimController) hideIndicator() {
	if !a.indicator.Valid() {
		return
	}
	a.state.IndicatorVisible = false
	a.queue.Push(a.indicator, SetHidden(true))
}

func (a *AimController) clamp(p float64) float64 {
	if a.min != nil && p < *a.min {
		p = *a.min
	}
	if a.max != nil && p > *a.max {
		p = *a.max
	}
	return p
}

func (a *AimController) configure(cfg Config) {
	a.step = cfg.PowerStep
	a.min = cfg.PowerMin
	a.max = cfg.PowerMax
	a.curve = cfg.PowerCurve
	a.scaleDuration = cfg.AimScaleDuration
	if clamped := a.clamp(a.state.Power); clamped != a.state.Power {
		a.state.Power = clamped
		a.queue.Push(a.indicator, ScaleYTo(a.curve(clamped), a.scaleDuration))
	}
}
