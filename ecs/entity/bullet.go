package entity

import (
	"fmt"

	"github.com/milk9111/dashshot/ecs"
)

// NewBulletAt instantiates the bullet prefab at a position and rotation. The
// prefab's velocity is left for the caller to adjust.
func NewBulletAt(w *ecs.World, x, y, rotation float64) (ecs.Entity, error) {
	bullet, err := BuildEntity(w, "bullet.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, bullet, x, y, rotation); err != nil {
		w.DestroyEntity(bullet)
		return 0, fmt.Errorf("bullet: override transform: %w", err)
	}
	return bullet, nil
}
