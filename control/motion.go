package control

import "math"

// CharacterState is the integrated character pose.
type CharacterState struct {
	Position    Vec2
	FacingRight bool
	Speed       float64
}

// MotionIntegrator advances the character once per frame from the joystick
// and aim state.
type MotionIntegrator struct {
	character CharacterState

	joystick *JoystickController
	aim      *AimController

	player    Entity
	indicator Entity

	flipDuration   float64
	rotateDuration float64

	delta FrameDelta

	queue CommandQueue
}

func NewMotionIntegrator(joystick *JoystickController, aim *AimController, player, indicator Entity, cfg Config) *MotionIntegrator {
	m := &MotionIntegrator{
		character: CharacterState{FacingRight: true},
		joystick:  joystick,
		aim:       aim,
		player:    player,
		indicator: indicator,
	}
	m.configure(cfg.withDefaults())
	return m
}

func (m *MotionIntegrator) Character() CharacterState {
	return m.character
}

// Step integrates one frame and queues the resulting commands.
func (m *MotionIntegrator) Step(now float64) {
	dt := m.delta.Next(now)
	offset := m.joystick.Offset()

	if m.aim.Active() {
		m.stepAim(offset)
		return
	}
	m.stepMove(offset, dt)
}

func (m *MotionIntegrator) stepAim(offset Vec2) {
	if !m.indicator.Valid() {
		return
	}
	m.aim.showIndicator()
	angle := math.Atan2(offset.Y, offset.X) - math.Pi/2
	m.queue.Push(m.indicator, RotateTo(angle, m.rotateDuration))
}

func (m *MotionIntegrator) stepMove(offset Vec2, dt float64) {
	if !m.player.Valid() {
		return
	}

	dx := dt * offset.X * m.character.Speed
	move := MoveBy(Vec2{X: dx}, 0)
	m.character.Position.X += dx

	movingRight := offset.X >= 0
	if movingRight != m.character.FacingRight {
		m.character.FacingRight = movingRight
		factor := -1.0
		if movingRight {
			factor = 1
		}
		m.queue.Push(m.player, Sequence(ScaleXTo(factor, m.flipDuration), move))
		return
	}
	if dx != 0 {
		m.queue.Push(m.player, move)
	}
}

// Flush hands the frame's commands to sink: joystick first, then aim, then motion.
func (m *MotionIntegrator) Flush(sink Sink) {
	m.joystick.queue.DrainTo(sink)
	m.aim.queue.DrainTo(sink)
	m.queue.DrainTo(sink)
}

// Update integrates one frame and flushes the commands to sink.
func (m *MotionIntegrator) Update(now float64, sink Sink) {
	m.Step(now)
	m.Flush(sink)
}

func (m *MotionIntegrator) configure(cfg Config) {
	m.character.Speed = cfg.Speed
	m.flipDuration = cfg.FlipDuration
	m.rotateDuration = cfg.AimRotateDuration
}
