package controller

import "github.com/milk9111/dashshot/common"

type fakeInput struct {
	x       float64
	pressed map[Action]bool
}

func (i *fakeInput) Horizontal() float64 { return i.x }
func (i *fakeInput) Pressed(a Action) bool {
	return i.pressed[a]
}

// set replaces the input for the next tick.
func (i *fakeInput) set(x float64, actions ...Action) {
	i.x = x
	i.pressed = make(map[Action]bool, len(actions))
	for _, a := range actions {
		i.pressed[a] = true
	}
}

type fakePhysics struct {
	ground   bool
	platform bool
	casts    int
}

func (p *fakePhysics) BoxCastDown(bounds common.Rect, distance float64, layer Layer) bool {
	p.casts++
	if distance != ProbeDistance {
		return false
	}
	if layer == LayerPlatform {
		return p.platform
	}
	return p.ground
}

type fakeTransform struct {
	pos    common.Vec
	scaleX float64
	rot    float64
}

func (t *fakeTransform) Position() common.Vec     { return t.pos }
func (t *fakeTransform) SetPosition(p common.Vec) { t.pos = p }
func (t *fakeTransform) FlipX()                   { t.scaleX = -t.scaleX }
func (t *fakeTransform) Rotation() float64        { return t.rot }

type fakeBody struct {
	fakeTransform
	vel             common.Vec
	platformEnabled bool
	enableCalls     int
	disableCalls    int
}

func (b *fakeBody) Bounds() common.Rect {
	return common.Rect{Center: b.pos, Width: 1, Height: 2}
}
func (b *fakeBody) Velocity() common.Vec     { return b.vel }
func (b *fakeBody) SetVelocity(v common.Vec) { b.vel = v }
func (b *fakeBody) SetLayerCollision(layer Layer, enabled bool) {
	if layer != LayerPlatform {
		return
	}
	b.platformEnabled = enabled
	if enabled {
		b.enableCalls++
	} else {
		b.disableCalls++
	}
}

type fakeProjectile struct {
	at  common.Vec
	rot float64
	vel common.Vec
}

func (p *fakeProjectile) Velocity() common.Vec     { return p.vel }
func (p *fakeProjectile) SetVelocity(v common.Vec) { p.vel = v }

type fakeSpawner struct {
	defaultVY float64
	bullets   []*fakeProjectile
}

func (s *fakeSpawner) SpawnBullet(at common.Vec, rotation float64) Projectile {
	p := &fakeProjectile{at: at, rot: rotation, vel: common.Vec{Y: s.defaultVY}}
	s.bullets = append(s.bullets, p)
	return p
}

type fakeAnimator struct {
	params map[string]float64
}

func (a *fakeAnimator) SetFloat(name string, value float64) {
	if a.params == nil {
		a.params = map[string]float64{}
	}
	a.params[name] = value
}

type rig struct {
	cfg      Config
	input    *fakeInput
	physics  *fakePhysics
	body     *fakeBody
	anchor   *fakeTransform
	spawner  *fakeSpawner
	animator *fakeAnimator
	ctrl     *Controller
}

// newRig builds a controller standing on solid ground, facing right, with the
// anchor one unit behind the character.
func newRig(t interface{ Fatalf(string, ...any) }, mutate ...func(*Config)) *rig {
	cfg := DefaultConfig()
	for _, m := range mutate {
		m(&cfg)
	}
	r := &rig{
		cfg:      cfg,
		input:    &fakeInput{},
		physics:  &fakePhysics{ground: true},
		body:     &fakeBody{fakeTransform: fakeTransform{scaleX: 1}, platformEnabled: true},
		anchor:   &fakeTransform{pos: common.Vec{X: -1}, scaleX: 1},
		spawner:  &fakeSpawner{},
		animator: &fakeAnimator{},
	}
	ctrl, err := New(cfg, Deps{
		Input:     r.input,
		Physics:   r.physics,
		Character: r.body,
		Anchor:    r.anchor,
		Spawner:   r.spawner,
		Animator:  r.animator,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	r.ctrl = ctrl
	return r
}

func (r *rig) tick(dt float64, x float64, actions ...Action) {
	r.input.set(x, actions...)
	r.ctrl.Tick(dt)
}
