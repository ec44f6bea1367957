package controller

import "github.com/milk9111/dashshot/common"

// AttackState is the attack mode of the character.
type AttackState int

const (
	AttackNone AttackState = iota
	DashAttack
	ProjectileAttack
	AttackCooldown
)

func (s AttackState) String() string {
	switch s {
	case AttackNone:
		return "none"
	case DashAttack:
		return "dash_attack"
	case ProjectileAttack:
		return "projectile_attack"
	case AttackCooldown:
		return "attack_cooldown"
	}
	return "unknown"
}

// CanDash is the guard the driver applies before the attack machine may
// start a dash.
func CanDash(s MovementState) bool {
	return !s.Airborne()
}

// Attack is the attack state machine.
type Attack struct {
	State AttackState
	// DashRemaining is the time left in the current dash burst.
	DashRemaining float64

	cfg     *Config
	anchor  Anchor
	spawner Spawner
	timers  *Timers
}

func NewAttack(cfg *Config, anchor Anchor, spawner Spawner, timers *Timers) *Attack {
	return &Attack{
		State:         AttackNone,
		DashRemaining: cfg.DashDuration,
		cfg:           cfg,
		anchor:        anchor,
		spawner:       spawner,
		timers:        timers,
	}
}

// Transition starts an attack when the machine is idle. canDash carries the
// movement guard.
func (a *Attack) Transition(f *Frame, canDash bool) {
	if a == nil || f == nil || a.State != AttackNone {
		return
	}
	switch {
	case f.pressed(ActionDash) && canDash:
		a.set(DashAttack)
	case f.pressed(ActionShoot):
		a.set(ProjectileAttack)
	}
}

// Act applies the active attack's effects for this tick.
func (a *Attack) Act(f *Frame) {
	if a == nil || f == nil || f.Motion == nil {
		return
	}
	switch a.State {
	case DashAttack:
		if a.dash(f) {
			a.cooldown(a.cfg.DashCooldown)
		}
	case ProjectileAttack:
		a.shoot(f.Motion.FacingRight)
		a.cooldown(a.cfg.ProjectileCooldown)
	}
}

// dash advances the burst and reports whether it completed this tick.
func (a *Attack) dash(f *Frame) bool {
	a.DashRemaining -= f.Dt
	if a.DashRemaining > timeEpsilon {
		dir := 1.0
		if !f.Motion.FacingRight {
			dir = -1
		}
		f.Motion.Velocity = common.Vec{X: dir * a.cfg.DashSpeed}
		return false
	}
	f.Motion.Velocity = common.Vec{}
	a.DashRemaining = a.cfg.DashDuration
	return true
}

func (a *Attack) shoot(facingRight bool) {
	bullet := a.spawner.SpawnBullet(a.anchor.Position(), a.anchor.Rotation())
	if bullet == nil {
		return
	}
	v := bullet.Velocity()
	v.X = a.cfg.BulletSpeed
	if !facingRight {
		v.X = -a.cfg.BulletSpeed
	}
	bullet.SetVelocity(v)
}

func (a *Attack) cooldown(d float64) {
	a.set(AttackCooldown)
	a.timers.After(TimerAttackCooldown, d, func() {
		a.set(AttackNone)
	})
}

func (a *Attack) set(s AttackState) {
	a.cfg.trace("attack", a.State, s)
	a.State = s
}
