package controller

import (
	"errors"

	"github.com/milk9111/dashshot/common"
)

var (
	ErrMissingCharacter = errors.New("controller: character not found")
	ErrMissingAnchor    = errors.New("controller: projectile anchor not found")
	ErrMissingInput     = errors.New("controller: input source is nil")
	ErrMissingPhysics   = errors.New("controller: physics query service is nil")
	ErrMissingSpawner   = errors.New("controller: bullet spawner is nil")
	ErrMissingAnimator  = errors.New("controller: animator is nil")
)

// Action names an edge-triggered button.
type Action int

const (
	ActionJump Action = iota
	ActionDrop
	ActionDash
	ActionShoot
)

func (a Action) String() string {
	switch a {
	case ActionJump:
		return "jump"
	case ActionDrop:
		return "drop"
	case ActionDash:
		return "dash"
	case ActionShoot:
		return "shoot"
	}
	return "unknown"
}

// Input reports the current horizontal axis and which buttons went down this tick.
type Input interface {
	Horizontal() float64
	Pressed(a Action) bool
}

// Layer is a collision layer the character can sense or pass through.
type Layer int

const (
	LayerGround Layer = iota
	LayerPlatform
)

func (l Layer) String() string {
	if l == LayerPlatform {
		return "platform"
	}
	return "ground"
}

// Physics answers spatial queries against the level geometry.
type Physics interface {
	BoxCastDown(bounds common.Rect, distance float64, layer Layer) bool
}

// Transform is a positioned, horizontally mirrorable entity.
type Transform interface {
	Position() common.Vec
	SetPosition(p common.Vec)
	// FlipX negates the horizontal scale.
	FlipX()
}

// Body is the character's rigid body.
type Body interface {
	Transform
	Bounds() common.Rect
	Velocity() common.Vec
	SetVelocity(v common.Vec)
	SetLayerCollision(layer Layer, enabled bool)
}

// Projectile is a freshly spawned bullet.
type Projectile interface {
	Velocity() common.Vec
	SetVelocity(v common.Vec)
}

// Spawner instantiates bullets from the bullet prototype.
type Spawner interface {
	SpawnBullet(at common.Vec, rotation float64) Projectile
}

// Anchor is the projectile anchor trailing the character.
type Anchor interface {
	Transform
	Rotation() float64
}

// Animator accepts named float parameters.
type Animator interface {
	SetFloat(name string, value float64)
}

// Deps bundles the collaborators resolved at session start.
type Deps struct {
	Input     Input
	Physics   Physics
	Character Body
	Anchor    Anchor
	Spawner   Spawner
	Animator  Animator
}

func (d Deps) validate() error {
	switch {
	case d.Character == nil:
		return ErrMissingCharacter
	case d.Anchor == nil:
		return ErrMissingAnchor
	case d.Input == nil:
		return ErrMissingInput
	case d.Physics == nil:
		return ErrMissingPhysics
	case d.Spawner == nil:
		return ErrMissingSpawner
	case d.Animator == nil:
		return ErrMissingAnimator
	}
	return nil
}
