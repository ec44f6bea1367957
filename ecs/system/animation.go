package system

import (
	"github.com/milk9111/dashshot/controller"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
)

// AnimationSystem picks the clip for each animated entity and advances its
// frame. Players choose from their controller state and the "speed"
// parameter; other entities just play their current clip.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	dt := w.TimeStep()

	ecs.ForEach(w, component.AnimationComponent, func(e ecs.Entity, anim *component.Animation) {
		if state, ok := ecs.Get(w, e, component.PlayerStateComponent); ok && state.Controller != nil {
			if clip := playerClip(state.Controller, anim); clip != "" {
				anim.Play(clip)
			}
		}
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || def.FrameCount <= 0 || def.FPS <= 0 {
			return
		}

		anim.FrameTimer += dt
		frameTime := 1 / def.FPS
		for anim.FrameTimer >= frameTime {
			anim.FrameTimer -= frameTime
			anim.Frame++
			if anim.Frame < def.FrameCount {
				continue
			}
			if def.Loop {
				anim.Frame = 0
				continue
			}
			anim.Frame = def.FrameCount - 1
			anim.Playing = false
			anim.FrameTimer = 0
			break
		}
	})
}

// playerClip returns the clip for the controller's state, or "" when the
// animation does not define it.
func playerClip(c *controller.Controller, anim *component.Animation) string {
	var clip string
	switch {
	case c.Attack() == controller.DashAttack:
		clip = "dash"
	case c.Movement().Airborne():
		clip = "fall"
	case anim.Float("speed") > 0:
		clip = "walk"
	default:
		clip = "idle"
	}
	if _, ok := anim.Defs[clip]; !ok {
		return ""
	}
	return clip
}
