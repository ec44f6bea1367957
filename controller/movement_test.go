package controller

import (
	"math"
	"testing"

	"github.com/milk9111/dashshot/common"
)

const frame = 1.0 / 60.0

func TestIdleStaysIdleWithoutInput(t *testing.T) {
	cases := []struct {
		name string
		vy   float64
	}{
		{"at_rest", 0},
		{"rising", 3},
		{"threshold", FallVelocity},
		{"barely_sinking", -0.05},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r := newRig(t)
			for i := 0; i < 30; i++ {
				r.body.vel = common.Vec{Y: c.vy}
				r.tick(frame, 0)
				if got := r.ctrl.Movement(); got != Idle {
					t.Fatalf("tick %d: state = %v, want idle", i, got)
				}
			}
		})
	}
}

func TestWalkFromIdle(t *testing.T) {
	r := newRig(t, func(c *Config) { c.MoveSpeed = 10 })
	r.tick(frame, 1)

	if got := r.ctrl.Movement(); got != Walking {
		t.Fatalf("state = %v, want walking", got)
	}
	if r.body.vel.X != 10 {
		t.Fatalf("velocity.x = %v, want 10", r.body.vel.X)
	}
	if got := r.animator.params["speed"]; got != 10 {
		t.Fatalf("speed param = %v, want 10", got)
	}
	if !r.ctrl.FacingRight() || r.body.scaleX != 1 {
		t.Fatalf("facing should stay right, scaleX=%v", r.body.scaleX)
	}
}

func TestWalkingReverseFlipsFacing(t *testing.T) {
	r := newRig(t, func(c *Config) { c.MoveSpeed = 10 })
	r.tick(frame, 1)
	r.tick(frame, -1)

	if r.ctrl.FacingRight() {
		t.Fatalf("expected facing left")
	}
	if r.body.vel.X != -10 {
		t.Fatalf("velocity.x = %v, want -10", r.body.vel.X)
	}
	if r.body.scaleX != -1 || r.anchor.scaleX != -1 {
		t.Fatalf("character and anchor should mirror, got %v and %v", r.body.scaleX, r.anchor.scaleX)
	}
	if got := r.animator.params["speed"]; got != 10 {
		t.Fatalf("speed param = %v, want 10", got)
	}
}

func TestFlipTwiceRestoresFacing(t *testing.T) {
	r := newRig(t)
	r.tick(frame, 1)
	r.tick(frame, -1)
	r.tick(frame, 1)

	if !r.ctrl.FacingRight() {
		t.Fatalf("expected facing right after two flips")
	}
	if r.body.scaleX != 1 || r.anchor.scaleX != 1 {
		t.Fatalf("scale signs not restored: %v %v", r.body.scaleX, r.anchor.scaleX)
	}
}

func TestWalkingWithoutInputKeepsWalking(t *testing.T) {
	r := newRig(t)
	r.tick(frame, 1)
	r.tick(frame, 0)

	if got := r.ctrl.Movement(); got != Walking {
		t.Fatalf("state = %v, want walking", got)
	}
	if r.body.vel.X != 0 || r.animator.params["speed"] != 0 {
		t.Fatalf("expected zero velocity and speed, got %v / %v", r.body.vel.X, r.animator.params["speed"])
	}
}

func TestJumpIsEdgeTriggeredImpulse(t *testing.T) {
	r := newRig(t, func(c *Config) { c.JumpForce = 25 })
	r.tick(frame, 0, ActionJump)

	if r.body.vel.Y != 25 {
		t.Fatalf("velocity.y = %v, want 25", r.body.vel.Y)
	}
	if got := r.ctrl.Movement(); got != Falling {
		t.Fatalf("state = %v, want falling at tick end", got)
	}
}

func TestJumpFromWalking(t *testing.T) {
	r := newRig(t)
	r.tick(frame, 1)
	r.tick(frame, 1, ActionJump)

	if r.body.vel.Y != r.cfg.JumpForce || r.body.vel.X != r.cfg.MoveSpeed {
		t.Fatalf("velocity = %+v", r.body.vel)
	}
	if got := r.ctrl.Movement(); got != Falling {
		t.Fatalf("state = %v, want falling", got)
	}
}

func TestWalkWinsOverJumpFromIdle(t *testing.T) {
	r := newRig(t)
	r.tick(frame, 1, ActionJump)

	if got := r.ctrl.Movement(); got != Walking {
		t.Fatalf("state = %v, want walking", got)
	}
	if r.body.vel.Y != 0 {
		t.Fatalf("jump should be skipped this tick, vy=%v", r.body.vel.Y)
	}
}

func TestFallAndLand(t *testing.T) {
	r := newRig(t)
	r.tick(frame, 1)
	r.physics.ground = false
	r.body.vel.Y = -0.5
	r.tick(frame, 1)
	if got := r.ctrl.Movement(); got != Falling {
		t.Fatalf("state = %v, want falling", got)
	}

	r.tick(frame, 1)
	if got := r.ctrl.Movement(); got != Falling {
		t.Fatalf("state = %v, want falling while airborne", got)
	}

	r.physics.ground = true
	r.tick(frame, 1)
	if got := r.ctrl.Movement(); got != Idle {
		t.Fatalf("state = %v, want idle after landing", got)
	}
}

func TestLandOnPlatform(t *testing.T) {
	r := newRig(t)
	r.physics.ground = false
	r.body.vel.Y = -2
	r.tick(frame, 0)
	r.physics.platform = true
	r.tick(frame, 0)
	if got := r.ctrl.Movement(); got != Idle {
		t.Fatalf("state = %v, want idle", got)
	}
}

func TestDropThroughPlatform(t *testing.T) {
	r := newRig(t)
	r.physics.ground = false
	r.physics.platform = true

	r.tick(frame, 0, ActionDrop)
	if got := r.ctrl.Movement(); got != Falling {
		t.Fatalf("state = %v, want falling", got)
	}
	if r.body.platformEnabled || r.body.disableCalls != 1 {
		t.Fatalf("platform collision should be off")
	}

	r.physics.platform = false
	elapsed := 0.0
	for elapsed+frame < DropThroughWindow-1e-6 {
		r.tick(frame, 0)
		elapsed += frame
		if r.body.platformEnabled {
			t.Fatalf("re-enabled early at %.3fs", elapsed)
		}
	}
	for i := 0; i < 3; i++ {
		r.tick(frame, 0)
	}
	if !r.body.platformEnabled || r.body.enableCalls != 1 {
		t.Fatalf("expected exactly one re-enable, got %d", r.body.enableCalls)
	}
	for i := 0; i < 60; i++ {
		r.tick(frame, 0)
	}
	if r.body.enableCalls != 1 {
		t.Fatalf("re-enable fired %d times", r.body.enableCalls)
	}
}

func TestDropRequiresPlatform(t *testing.T) {
	r := newRig(t)
	r.tick(frame, 0, ActionDrop)
	if got := r.ctrl.Movement(); got != Idle {
		t.Fatalf("state = %v, want idle on solid ground", got)
	}
	if r.body.disableCalls != 0 {
		t.Fatalf("collider should not be touched")
	}
}

func TestDropSuspendsSensingUntilRestore(t *testing.T) {
	r := newRig(t)
	r.physics.ground = false
	r.physics.platform = true

	r.tick(0.1, 0, ActionDrop) // t=0.1, restore due at 0.4
	r.tick(0.1, 0)             // t=0.2, still overlapping the platform
	if got := r.ctrl.Movement(); got != Falling {
		t.Fatalf("state = %v, want falling while passing through", got)
	}
	r.tick(0.1, 0, ActionDrop) // t=0.3
	if r.body.disableCalls != 1 {
		t.Fatalf("a second drop must not start mid-window, disable calls = %d", r.body.disableCalls)
	}
	if !r.ctrl.Snapshot().DroppingThrough {
		t.Fatalf("snapshot should report the drop window")
	}

	r.tick(0.1, 0) // t=0.4: restore fires, then the platform is sensed again
	if r.body.enableCalls != 1 || !r.body.platformEnabled {
		t.Fatalf("expected one restore at 0.4s, got %d", r.body.enableCalls)
	}
	if got := r.ctrl.Movement(); got != Idle {
		t.Fatalf("state = %v, want idle once sensing resumes", got)
	}
}

func TestAnchorHysteresis(t *testing.T) {
	t.Run("within_range_unchanged", func(t *testing.T) {
		r := newRig(t)
		r.anchor.pos = common.Vec{X: -1.5, Y: 0.5}
		before := r.anchor.pos
		r.tick(frame, 1)
		if r.anchor.pos != before {
			t.Fatalf("anchor moved from %+v to %+v", before, r.anchor.pos)
		}
	})
	t.Run("beyond_range_follows", func(t *testing.T) {
		r := newRig(t)
		r.anchor.pos = common.Vec{X: -6, Y: 2}
		before := r.anchor.pos
		r.tick(frame, 1)
		moved := common.Distance(before, r.anchor.pos)
		if moved <= 0 || moved > r.cfg.MoveSpeed*frame+1e-9 {
			t.Fatalf("anchor moved %v, want (0, %v]", moved, r.cfg.MoveSpeed*frame)
		}
		if common.Distance(r.anchor.pos, r.body.pos) >= common.Distance(before, r.body.pos) {
			t.Fatalf("anchor did not move toward the character")
		}
	})
	t.Run("idle_does_not_follow", func(t *testing.T) {
		r := newRig(t)
		r.anchor.pos = common.Vec{X: -6}
		r.tick(frame, 0)
		if r.anchor.pos.X != -6 {
			t.Fatalf("idle character should not drag the anchor")
		}
	})
}

func TestSpeedParamIsAbsolute(t *testing.T) {
	r := newRig(t)
	r.tick(frame, -0.5)
	want := math.Abs(r.cfg.MoveSpeed * -0.5)
	if got := r.animator.params["speed"]; got != want {
		t.Fatalf("speed = %v, want %v", got, want)
	}
}
