package system

import (
	"fmt"
	"log"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashshot/common"
	"github.com/milk9111/dashshot/controller"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"github.com/milk9111/dashshot/ecs/entity"
)

// PlayerControllerSystem ticks the player's movement and attack machines.
// The player and its projectile anchor are resolved once, when the system is
// built.
type PlayerControllerSystem struct {
	player ecs.Entity
	ctrl   *controller.Controller
	state  *component.PlayerState
}

// NewPlayerControllerSystem wires the controller to the world. trace, when not
// nil, receives every state change.
func NewPlayerControllerSystem(w *ecs.World, physics *PhysicsSystem, trace func(machine, from, to string)) (*PlayerControllerSystem, error) {
	if w == nil {
		return nil, fmt.Errorf("player controller: world is nil")
	}

	var deps controller.Deps
	cfg := controller.DefaultConfig()

	player, ok := w.First(component.PlayerTagComponent.Kind())
	if ok {
		if p, ok := ecs.Get(w, player, component.PlayerComponent); ok {
			cfg = p.Config
		}
		if physics != nil {
			physics.Sync(w)
			if _, ok := physics.EnsureBody(w, player); ok {
				deps.Character = &characterBody{w: w, e: player, physics: physics}
			}
		}
		if input, ok := ecs.Get(w, player, component.InputComponent); ok {
			deps.Input = input
		}
		if ecs.Has(w, player, component.AnimationComponent) {
			deps.Animator = &entityAnimator{w: w, e: player}
		}
	}
	if anchor, ok := w.First(component.ProjectileAnchorTagComponent.Kind(), component.TransformComponent.Kind()); ok {
		deps.Anchor = &entityTransform{w: w, e: anchor}
	}
	if physics != nil {
		deps.Physics = physics
		deps.Spawner = &bulletSpawner{w: w, physics: physics}
	}
	cfg.Trace = trace

	ctrl, err := controller.New(cfg, deps)
	if err != nil {
		return nil, fmt.Errorf("player controller: %w", err)
	}

	state := &component.PlayerState{
		Controller:   ctrl,
		LastMovement: ctrl.Movement(),
		LastAttack:   ctrl.Attack(),
	}
	if err := ecs.Add(w, player, component.PlayerStateComponent, state); err != nil {
		return nil, fmt.Errorf("player controller: add state: %w", err)
	}

	return &PlayerControllerSystem{player: player, ctrl: ctrl, state: state}, nil
}

func (p *PlayerControllerSystem) Controller() *controller.Controller {
	if p == nil {
		return nil
	}
	return p.ctrl
}

func (p *PlayerControllerSystem) Update(w *ecs.World) {
	if p == nil || w == nil || !w.IsAlive(p.player) {
		return
	}

	p.ctrl.Tick(w.TimeStep())

	if m := p.ctrl.Movement(); m != p.state.LastMovement {
		w.Events().Push(ecs.Event{Type: ecs.EventMovementChanged, Data: ecs.StateChange{
			Entity: p.player,
			From:   p.state.LastMovement.String(),
			To:     m.String(),
		}})
		p.state.LastMovement = m
	}
	if a := p.ctrl.Attack(); a != p.state.LastAttack {
		w.Events().Push(ecs.Event{Type: ecs.EventAttackChanged, Data: ecs.StateChange{
			Entity: p.player,
			From:   p.state.LastAttack.String(),
			To:     a.String(),
		}})
		p.state.LastAttack = a
	}
}

// entityTransform exposes an entity's transform to the controller.
type entityTransform struct {
	w *ecs.World
	e ecs.Entity
}

func (t *entityTransform) transform() *component.Transform {
	tr, ok := ecs.Get(t.w, t.e, component.TransformComponent)
	if !ok {
		return &component.Transform{}
	}
	return tr
}

func (t *entityTransform) Position() common.Vec {
	tr := t.transform()
	return common.Vec{X: tr.X, Y: tr.Y}
}

func (t *entityTransform) SetPosition(p common.Vec) {
	tr := t.transform()
	tr.X = p.X
	tr.Y = p.Y
}

func (t *entityTransform) FlipX() {
	tr := t.transform()
	tr.ScaleX = -tr.ScaleX
}

func (t *entityTransform) Rotation() float64 {
	return t.transform().Rotation
}

// characterBody reads and writes the player's cp body.
type characterBody struct {
	w       *ecs.World
	e       ecs.Entity
	physics *PhysicsSystem
}

func (c *characterBody) body() (*component.PhysicsBody, bool) {
	b, ok := ecs.Get(c.w, c.e, component.PhysicsBodyComponent)
	if !ok || b.Body == nil {
		return nil, false
	}
	return b, true
}

func (c *characterBody) Position() common.Vec {
	b, ok := c.body()
	if !ok {
		return common.Vec{}
	}
	pos := b.Body.Position()
	return common.Vec{X: pos.X, Y: pos.Y}
}

func (c *characterBody) SetPosition(p common.Vec) {
	if b, ok := c.body(); ok {
		b.Body.SetPosition(cp.Vector{X: p.X, Y: p.Y})
	}
	if tr, ok := ecs.Get(c.w, c.e, component.TransformComponent); ok {
		tr.X = p.X
		tr.Y = p.Y
	}
}

func (c *characterBody) FlipX() {
	if tr, ok := ecs.Get(c.w, c.e, component.TransformComponent); ok {
		tr.ScaleX = -tr.ScaleX
	}
}

func (c *characterBody) Bounds() common.Rect {
	b, ok := c.body()
	if !ok {
		return common.Rect{}
	}
	return common.Rect{Center: c.Position(), Width: b.Width, Height: b.Height}
}

func (c *characterBody) Velocity() common.Vec {
	b, ok := c.body()
	if !ok {
		return common.Vec{}
	}
	v := b.Body.Velocity()
	return common.Vec{X: v.X, Y: v.Y}
}

func (c *characterBody) SetVelocity(v common.Vec) {
	if b, ok := c.body(); ok {
		b.Body.SetVelocity(v.X, v.Y)
	}
}

func (c *characterBody) SetLayerCollision(layer controller.Layer, enabled bool) {
	c.physics.SetLayerCollision(c.e, layer, enabled)
}

// entityAnimator forwards parameters to the entity's animation.
type entityAnimator struct {
	w *ecs.World
	e ecs.Entity
}

func (a *entityAnimator) SetFloat(name string, value float64) {
	if anim, ok := ecs.Get(a.w, a.e, component.AnimationComponent); ok {
		anim.SetFloat(name, value)
	}
}

// bulletSpawner instantiates the bullet prefab and gives it a body right
// away so the controller can set its velocity on the same tick.
type bulletSpawner struct {
	w       *ecs.World
	physics *PhysicsSystem
}

func (s *bulletSpawner) SpawnBullet(at common.Vec, rotation float64) controller.Projectile {
	e, err := entity.NewBulletAt(s.w, at.X, at.Y, rotation)
	if err != nil {
		log.Printf("player controller: spawn bullet: %v", err)
		return &droppedProjectile{}
	}
	body, ok := s.physics.EnsureBody(s.w, e)
	if !ok {
		log.Printf("player controller: bullet %s has no physics body", e)
		s.w.DestroyEntity(e)
		return &droppedProjectile{}
	}
	s.w.Events().Push(ecs.Event{Type: ecs.EventBulletSpawned, Data: e})
	return &projectileBody{body: body}
}

type projectileBody struct {
	body *cp.Body
}

func (p *projectileBody) Velocity() common.Vec {
	v := p.body.Velocity()
	return common.Vec{X: v.X, Y: v.Y}
}

func (p *projectileBody) SetVelocity(v common.Vec) {
	p.body.SetVelocity(v.X, v.Y)
}

// droppedProjectile stands in for a bullet that could not be built.
type droppedProjectile struct {
	vel common.Vec
}

func (p *droppedProjectile) Velocity() common.Vec     { return p.vel }
func (p *droppedProjectile) SetVelocity(v common.Vec) { p.vel = v }
