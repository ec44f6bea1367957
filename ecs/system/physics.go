package system

import (
	"log"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/dashshot/common"
	"github.com/milk9111/dashshot/controller"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
)

const (
	collisionTypePlayer cp.CollisionType = iota + 1
	collisionTypeGround
	collisionTypePlatform
	collisionTypeBullet
	collisionTypeDynamic
)

// DefaultGravity is used when a level does not set one. World units, Y up.
const DefaultGravity = -50.0

// surfaceSlop is how far a surface top may sit above the feet and still count
// as underfoot. It matches the solver's allowed penetration.
const surfaceSlop = 0.1

type PhysicsSystem struct {
	space         *cp.Space
	handlersReady bool

	bodies map[ecs.Entity]*bodyInfo
	shapes map[*cp.Shape]ecs.Entity
	// spent bullets hit ground during the last step and are destroyed after it.
	spent map[ecs.Entity]struct{}
}

type bodyInfo struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

func NewPhysicsSystem(gravity float64) *PhysicsSystem {
	space := cp.NewSpace()
	space.Iterations = 20
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &PhysicsSystem{
		space:  space,
		bodies: make(map[ecs.Entity]*bodyInfo),
		shapes: make(map[*cp.Shape]ecs.Entity),
		spent:  make(map[ecs.Entity]struct{}),
	}
}

func (ps *PhysicsSystem) Space() *cp.Space {
	if ps == nil {
		return nil
	}
	return ps.space
}

func (ps *PhysicsSystem) SetGravity(gravity float64) {
	if ps == nil || ps.space == nil {
		return
	}
	ps.space.SetGravity(cp.Vector{X: 0, Y: gravity})
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}

	ps.Sync(w)
	ps.space.Step(w.TimeStep())
	ps.destroySpent(w)
	ps.syncTransforms(w)
}

// Sync creates bodies for new entities and drops the ones whose entity is gone.
// Systems that query the space before the first step call it directly.
func (ps *PhysicsSystem) Sync(w *ecs.World) {
	if ps == nil || w == nil {
		return
	}
	ps.ensureHandlers()
	ps.cleanupEntities(w)

	for _, e := range w.Query(component.StaticTileComponent.Kind(), component.TransformComponent.Kind()) {
		if _, ok := ps.bodies[e]; ok {
			continue
		}
		tile, _ := ecs.Get(w, e, component.StaticTileComponent)
		transform, _ := ecs.Get(w, e, component.TransformComponent)
		ps.addStatic(e, transform, tile)
	}

	for _, e := range w.Query(component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		ps.EnsureBody(w, e)
	}
}

// EnsureBody creates the entity's dynamic body if it does not have one yet.
func (ps *PhysicsSystem) EnsureBody(w *ecs.World, e ecs.Entity) (*cp.Body, bool) {
	if ps == nil || w == nil {
		return nil, false
	}
	if info, ok := ps.bodies[e]; ok {
		return info.body, true
	}
	bodyComp, ok := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !ok {
		return nil, false
	}
	transform, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok {
		return nil, false
	}
	ps.ensureHandlers()

	mass := bodyComp.Mass
	if mass <= 0 {
		mass = 1
	}
	width, height := bodyComp.Width, bodyComp.Height
	if width <= 0 || height <= 0 {
		width, height = 1, 1
	}

	// Rotation is locked; the controller only ever moves bodies linearly.
	body := cp.NewBody(mass, math.Inf(1))
	body.SetPosition(cp.Vector{X: transform.X, Y: transform.Y})
	body.SetAngle(transform.Rotation)
	body.SetVelocity(bodyComp.VelocityX, bodyComp.VelocityY)
	if bodyComp.NoGravity {
		body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping float64, dt float64) {
			cp.BodyUpdateVelocity(body, cp.Vector{}, damping, dt)
		})
	}

	shape := cp.NewBox(body, width, height, 0)
	shape.SetFriction(bodyComp.Friction)
	shape.SetSensor(bodyComp.Sensor)

	layer := component.CollisionLayer{Category: component.CategoryGround, Mask: cp.ALL_CATEGORIES}
	if l, ok := ecs.Get(w, e, component.CollisionLayerComponent); ok {
		layer = *l
	}
	shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, layer.Category, layer.Mask))

	switch {
	case ecs.Has(w, e, component.PlayerTagComponent):
		shape.SetCollisionType(collisionTypePlayer)
	case ecs.Has(w, e, component.BulletTagComponent):
		shape.SetCollisionType(collisionTypeBullet)
	default:
		shape.SetCollisionType(collisionTypeDynamic)
	}

	ps.space.AddBody(body)
	ps.space.AddShape(shape)

	ps.bodies[e] = &bodyInfo{body: body, shape: shape}
	ps.shapes[shape] = e
	bodyComp.Body = body
	bodyComp.Shape = shape
	return body, true
}

func (ps *PhysicsSystem) addStatic(e ecs.Entity, transform *component.Transform, tile *component.StaticTile) {
	r := common.Rect{Center: common.Vec{X: transform.X, Y: transform.Y}, Width: tile.Width, Height: tile.Height}
	min, max := r.Min(), r.Max()
	shape := cp.NewBox2(ps.space.StaticBody, cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}, 0)
	shape.SetFriction(1)

	if tile.OneWay {
		shape.SetCollisionType(collisionTypePlatform)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, component.CategoryPlatform, component.CategoryPlayer))
	} else {
		shape.SetCollisionType(collisionTypeGround)
		shape.SetFilter(cp.NewShapeFilter(cp.NO_GROUP, component.CategoryGround, cp.ALL_CATEGORIES))
	}
	ps.space.AddShape(shape)

	ps.bodies[e] = &bodyInfo{body: ps.space.StaticBody, shape: shape, static: true}
	ps.shapes[shape] = e
}

func (ps *PhysicsSystem) ensureHandlers() {
	if ps.handlersReady || ps.space == nil {
		return
	}

	// One-way platforms only hold a player that lands on them from above.
	oneWay := ps.space.NewCollisionHandler(collisionTypePlayer, collisionTypePlatform)
	oneWay.PreSolveFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		// The normal points from the player toward the platform.
		if arb.Normal().Y < -0.5 {
			return true
		}
		return arb.Ignore()
	}

	bulletHit := ps.space.NewCollisionHandler(collisionTypeBullet, collisionTypeGround)
	bulletHit.UserData = ps
	bulletHit.BeginFunc = func(arb *cp.Arbiter, space *cp.Space, userData interface{}) bool {
		sys, ok := userData.(*PhysicsSystem)
		if !ok || sys == nil {
			return false
		}
		bullet, _ := arb.Shapes()
		if e, ok := sys.shapes[bullet]; ok {
			sys.spent[e] = struct{}{}
		}
		return false
	}

	ps.handlersReady = true
}

func (ps *PhysicsSystem) destroySpent(w *ecs.World) {
	for e := range ps.spent {
		ps.removeBody(e)
		w.DestroyEntity(e)
		delete(ps.spent, e)
	}
}

func (ps *PhysicsSystem) syncTransforms(w *ecs.World) {
	for e, info := range ps.bodies {
		if info.static {
			continue
		}
		transform, ok := ecs.Get(w, e, component.TransformComponent)
		if !ok {
			continue
		}
		pos := info.body.Position()
		transform.X = pos.X
		transform.Y = pos.Y
		transform.Rotation = info.body.Angle()
	}
}

func (ps *PhysicsSystem) cleanupEntities(w *ecs.World) {
	for e, info := range ps.bodies {
		keep := w.IsAlive(e)
		if keep && info.static {
			keep = ecs.Has(w, e, component.StaticTileComponent)
		} else if keep {
			keep = ecs.Has(w, e, component.PhysicsBodyComponent)
		}
		if !keep {
			ps.removeBody(e)
		}
	}
}

func (ps *PhysicsSystem) removeBody(e ecs.Entity) {
	info, ok := ps.bodies[e]
	if !ok {
		return
	}
	if info.shape != nil {
		ps.space.RemoveShape(info.shape)
		delete(ps.shapes, info.shape)
	}
	if !info.static && info.body != nil {
		ps.space.RemoveBody(info.body)
	}
	delete(ps.bodies, e)
}

// BoxCastDown reports whether a surface on the given layer lies within
// distance below bounds. Surfaces the box is currently passing through from
// below do not count.
func (ps *PhysicsSystem) BoxCastDown(bounds common.Rect, distance float64, layer controller.Layer) bool {
	if ps == nil || ps.space == nil {
		return false
	}
	swept := bounds.SweepDown(distance)
	min, max := swept.Min(), swept.Max()
	feet := bounds.Min().Y

	hit := false
	filter := cp.NewShapeFilter(cp.NO_GROUP, cp.ALL_CATEGORIES, layerCategory(layer))
	ps.space.BBQuery(cp.BB{L: min.X, B: min.Y, R: max.X, T: max.Y}, filter, func(shape *cp.Shape, data interface{}) {
		if shape.BB().T <= feet+surfaceSlop {
			hit = true
		}
	}, nil)
	return hit
}

// SetLayerCollision turns collisions between e and a layer on or off.
func (ps *PhysicsSystem) SetLayerCollision(e ecs.Entity, layer controller.Layer, enabled bool) {
	if ps == nil {
		return
	}
	info, ok := ps.bodies[e]
	if !ok || info.shape == nil {
		log.Printf("physics: layer %s toggle for %s without a body", layer, e)
		return
	}
	filter := info.shape.Filter
	if enabled {
		filter.Mask |= layerCategory(layer)
	} else {
		filter.Mask &^= layerCategory(layer)
	}
	info.shape.SetFilter(filter)
}

func layerCategory(layer controller.Layer) uint {
	if layer == controller.LayerPlatform {
		return component.CategoryPlatform
	}
	return component.CategoryGround
}
