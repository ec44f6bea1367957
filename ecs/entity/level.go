package entity

import (
	"fmt"

	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"github.com/milk9111/dashshot/levels"
	"golang.org/x/image/colornames"
)

// LoadLevelToWorld creates one static tile entity per level block.
func LoadLevelToWorld(w *ecs.World, lvl *levels.Level) (int, error) {
	if w == nil || lvl == nil {
		return 0, fmt.Errorf("load level: world or level is nil")
	}
	for i, b := range lvl.Blocks {
		e := w.CreateEntity()
		sprite := &component.Sprite{Width: b.Width, Height: b.Height, Color: colornames.Darkslategray}
		if b.OneWay() {
			sprite.Color = colornames.Peru
		}
		err := ecs.Add(w, e, component.TransformComponent, &component.Transform{X: b.X, Y: b.Y, ScaleX: 1, ScaleY: 1})
		if err == nil {
			err = ecs.Add(w, e, component.StaticTileComponent, &component.StaticTile{Width: b.Width, Height: b.Height, OneWay: b.OneWay()})
		}
		if err == nil {
			err = ecs.Add(w, e, component.SpriteComponent, sprite)
		}
		if err != nil {
			w.DestroyEntity(e)
			return i, fmt.Errorf("load level: block %d: %w", i, err)
		}
	}
	return len(lvl.Blocks), nil
}

// ClearLevel destroys every static tile and reports how many were removed.
func ClearLevel(w *ecs.World) int {
	tiles := w.Query(component.StaticTileComponent.Kind())
	for _, e := range tiles {
		w.DestroyEntity(e)
	}
	return len(tiles)
}

// Session holds the entities a level spawns besides its geometry.
type Session struct {
	Player ecs.Entity
	Anchor ecs.Entity
	Camera ecs.Entity
}

// SpawnLevel loads geometry and then the player, its anchor and the camera.
func SpawnLevel(w *ecs.World, lvl *levels.Level) (Session, error) {
	var s Session
	if _, err := LoadLevelToWorld(w, lvl); err != nil {
		return s, err
	}
	var err error
	s.Player, err = NewPlayerAt(w, lvl.PlayerSpawn.X, lvl.PlayerSpawn.Y)
	if err != nil {
		return s, fmt.Errorf("spawn level: %w", err)
	}
	s.Anchor, err = NewProjectileAnchorAt(w, lvl.PlayerSpawn.X+lvl.AnchorOffset.X, lvl.PlayerSpawn.Y+lvl.AnchorOffset.Y)
	if err != nil {
		return s, fmt.Errorf("spawn level: %w", err)
	}
	s.Camera, err = NewCamera(w)
	if err != nil {
		return s, fmt.Errorf("spawn level: %w", err)
	}
	return s, nil
}
