package controller

import (
	"math"

	"github.com/milk9111/dashshot/common"
)

// MovementState is the vertical/ground state of the character.
type MovementState int

const (
	Idle MovementState = iota
	Walking
	Jumping
	Falling
)

func (s MovementState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Walking:
		return "walking"
	case Jumping:
		return "jumping"
	case Falling:
		return "falling"
	}
	return "unknown"
}

// Airborne reports whether the state blocks grounded-only actions.
func (s MovementState) Airborne() bool {
	return s == Jumping || s == Falling
}

// Sensor reports what the character is standing on.
type Sensor interface {
	OnGround() bool
	OnPlatform() bool
}

// Movement is the movement state machine.
type Movement struct {
	State MovementState
	// DroppingThrough is set while platform collision is off after a drop.
	// Surface sensing is suspended for the same window.
	DroppingThrough bool

	cfg       *Config
	sensor    Sensor
	character Body
	anchor    Transform
	animator  Animator
	timers    *Timers
}

func NewMovement(cfg *Config, sensor Sensor, character Body, anchor Transform, animator Animator, timers *Timers) *Movement {
	return &Movement{
		State:     Idle,
		cfg:       cfg,
		sensor:    sensor,
		character: character,
		anchor:    anchor,
		animator:  animator,
		timers:    timers,
	}
}

// Transition evaluates at most one transition, in priority order.
func (m *Movement) Transition(f *Frame) {
	if m == nil || f == nil || f.Motion == nil {
		return
	}
	from := m.State
	switch {
	case m.State == Idle && f.horizontal() != 0:
		m.State = Walking
	case m.State == Idle || m.State == Walking:
		switch {
		case f.pressed(ActionJump):
			m.State = Jumping
		case f.pressed(ActionDrop) && m.onPlatform():
			m.dropThrough()
			m.State = Falling
		case f.Motion.Velocity.Y < FallVelocity:
			m.State = Falling
		}
	case m.State == Falling && (m.onPlatform() || m.onGround()):
		m.State = Idle
	}
	m.cfg.trace("movement", from, m.State)
}

// Act applies the current state's per-tick effects.
func (m *Movement) Act(f *Frame) {
	if m == nil || f == nil || f.Motion == nil {
		return
	}
	if m.State != Idle {
		m.move(f, f.horizontal())
	}
	if m.State == Jumping {
		f.Motion.Velocity.Y = m.cfg.JumpForce
		m.cfg.trace("movement", Jumping, Falling)
		m.State = Falling
	}
}

func (m *Movement) move(f *Frame, moveX float64) {
	f.Motion.Velocity.X = m.cfg.MoveSpeed * moveX
	m.animator.SetFloat("speed", math.Abs(m.cfg.MoveSpeed*moveX))

	m.followAnchor(f.Dt)

	if (moveX < 0 && f.Motion.FacingRight) || (moveX > 0 && !f.Motion.FacingRight) {
		m.flip(f.Motion)
	}
}

func (m *Movement) followAnchor(dt float64) {
	target := m.character.Position()
	current := m.anchor.Position()
	if common.Distance(current, target) > m.cfg.MaxAnchorDistance {
		m.anchor.SetPosition(common.MoveTowards(current, target, m.cfg.MoveSpeed*dt))
	}
}

func (m *Movement) flip(motion *Motion) {
	motion.FacingRight = !motion.FacingRight
	m.character.FlipX()
	m.anchor.FlipX()
}

func (m *Movement) onGround() bool {
	return !m.DroppingThrough && m.sensor.OnGround()
}

func (m *Movement) onPlatform() bool {
	return !m.DroppingThrough && m.sensor.OnPlatform()
}

// dropThrough turns platform collision off and schedules it back on. A drop
// while a restore is pending pushes the restore out to the new window.
func (m *Movement) dropThrough() {
	m.DroppingThrough = true
	m.character.SetLayerCollision(LayerPlatform, false)
	m.timers.After(TimerPlatformRestore, DropThroughWindow, func() {
		m.DroppingThrough = false
		m.character.SetLayerCollision(LayerPlatform, true)
	})
}
