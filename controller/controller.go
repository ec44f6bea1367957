package controller

import "fmt"

// Controller drives the movement and attack machines once per frame.
type Controller struct {
	cfg      Config
	deps     Deps
	timers   *Timers
	motion   Motion
	movement *Movement
	attack   *Attack
	sensor   *bodySensor
}

// New wires the machines to their collaborators. It fails when any of them
// is missing; nothing is looked up lazily.
func New(cfg Config, deps Deps) (*Controller, error) {
	if err := deps.validate(); err != nil {
		return nil, fmt.Errorf("controller: new: %w", err)
	}
	c := &Controller{
		cfg:    cfg,
		deps:   deps,
		timers: NewTimers(),
		motion: Motion{FacingRight: true},
	}
	c.sensor = &bodySensor{physics: deps.Physics, body: deps.Character}
	c.movement = NewMovement(&c.cfg, c.sensor, deps.Character, deps.Anchor, deps.Animator, c.timers)
	c.attack = NewAttack(&c.cfg, deps.Anchor, deps.Spawner, c.timers)
	return c, nil
}

// Tick runs one frame: due timers, movement transition and action, then
// attack transition and action.
func (c *Controller) Tick(dt float64) {
	if c == nil {
		return
	}
	c.timers.Advance(dt)

	c.motion.Velocity = c.deps.Character.Velocity()
	f := &Frame{Dt: dt, Input: c.deps.Input, Motion: &c.motion}

	c.movement.Transition(f)
	c.movement.Act(f)

	c.attack.Transition(f, CanDash(c.movement.State))
	c.attack.Act(f)

	c.deps.Character.SetVelocity(c.motion.Velocity)
}

func (c *Controller) Movement() MovementState { return c.movement.State }
func (c *Controller) Attack() AttackState     { return c.attack.State }
func (c *Controller) FacingRight() bool       { return c.motion.FacingRight }
func (c *Controller) Now() float64            { return c.timers.Now() }

// Snapshot is a read-only view of the controller for HUDs and logs.
type Snapshot struct {
	Movement        MovementState
	Attack          AttackState
	FacingRight     bool
	DashRemaining   float64
	CooldownLeft    float64
	PlatformRestore float64
	DroppingThrough bool
}

func (c *Controller) Snapshot() Snapshot {
	s := Snapshot{
		Movement:      c.movement.State,
		Attack:        c.attack.State,
		FacingRight:   c.motion.FacingRight,
		DashRemaining: c.attack.DashRemaining,
	}
	if left, ok := c.timers.Pending(TimerAttackCooldown); ok {
		s.CooldownLeft = left
	}
	if left, ok := c.timers.Pending(TimerPlatformRestore); ok {
		s.PlatformRestore = left
	}
	s.DroppingThrough = c.movement.DroppingThrough
	return s
}

type bodySensor struct {
	physics Physics
	body    Body
}

func (s *bodySensor) OnGround() bool {
	return s.physics.BoxCastDown(s.body.Bounds(), ProbeDistance, LayerGround)
}

func (s *bodySensor) OnPlatform() bool {
	return s.physics.BoxCastDown(s.body.Bounds(), ProbeDistance, LayerPlatform)
}
