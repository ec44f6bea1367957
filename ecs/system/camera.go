package system

import (
	"github.com/milk9111/dashshot/common"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
)

type CameraSystem struct {
	camEntity    ecs.Entity
	targetEntity ecs.Entity
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{}
}

// Update eases the camera's transform toward the player.
func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	if !w.IsAlive(cs.camEntity) {
		cs.camEntity, _ = w.First(component.CameraComponent.Kind(), component.TransformComponent.Kind())
	}
	if !w.IsAlive(cs.targetEntity) {
		cs.targetEntity, _ = w.First(component.PlayerTagComponent.Kind(), component.TransformComponent.Kind())
	}

	cam, ok := ecs.Get(w, cs.camEntity, component.CameraComponent)
	if !ok {
		return
	}
	camTransform, ok := ecs.Get(w, cs.camEntity, component.TransformComponent)
	if !ok {
		return
	}
	target, ok := ecs.Get(w, cs.targetEntity, component.TransformComponent)
	if !ok {
		return
	}

	t := 1.0
	if cam.Smoothness > 0 && cam.Smoothness < 1 {
		t = cam.Smoothness
	}
	camTransform.X = common.Lerp(camTransform.X, target.X, t)
	camTransform.Y = common.Lerp(camTransform.Y, target.Y, t)
}
