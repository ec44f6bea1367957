package entity

import (
	"fmt"

	"github.com/milk9111/dashshot/ecs"
)

// NewProjectileAnchorAt builds the companion that bullets are fired from.
func NewProjectileAnchorAt(w *ecs.World, x, y float64) (ecs.Entity, error) {
	anchor, err := BuildEntity(w, "anchor.yaml")
	if err != nil {
		return 0, err
	}
	if err := SetEntityTransform(w, anchor, x, y, 0); err != nil {
		return 0, fmt.Errorf("anchor: override transform: %w", err)
	}
	return anchor, nil
}
