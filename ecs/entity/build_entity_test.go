package entity

import (
	"testing"

	"github.com/milk9111/dashshot/controller"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"github.com/milk9111/dashshot/levels"
	"github.com/milk9111/dashshot/prefabs"
)

func TestBuildPlayerFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewPlayerAt(w, 3, 4)
	if err != nil {
		t.Fatalf("build player: %v", err)
	}

	for name, has := range map[string]bool{
		"player_tag":      ecs.Has(w, e, component.PlayerTagComponent),
		"player":          ecs.Has(w, e, component.PlayerComponent),
		"input":           ecs.Has(w, e, component.InputComponent),
		"physics_body":    ecs.Has(w, e, component.PhysicsBodyComponent),
		"collision_layer": ecs.Has(w, e, component.CollisionLayerComponent),
		"animation":       ecs.Has(w, e, component.AnimationComponent),
	} {
		if !has {
			t.Fatalf("expected player to have %s", name)
		}
	}

	transform, _ := ecs.Get(w, e, component.TransformComponent)
	if transform.X != 3 || transform.Y != 4 || transform.ScaleX != 1 {
		t.Fatalf("unexpected transform %+v", *transform)
	}

	player, _ := ecs.Get(w, e, component.PlayerComponent)
	if player.Config.JumpForce != 25 || player.Config.DashDuration != 0.15 || player.Config.ProjectileCooldown != 1.5 {
		t.Fatalf("unexpected tuning %+v", player.Config)
	}

	layer, _ := ecs.Get(w, e, component.CollisionLayerComponent)
	if layer.Category != component.CategoryPlayer {
		t.Fatalf("expected player category, got %b", layer.Category)
	}
	if layer.Mask != component.CategoryGround|component.CategoryPlatform {
		t.Fatalf("expected ground|platform mask, got %b", layer.Mask)
	}
}

func TestBuildBulletFromPrefab(t *testing.T) {
	w := ecs.NewWorld()
	e, err := NewBulletAt(w, 1, 2, 0.5)
	if err != nil {
		t.Fatalf("build bullet: %v", err)
	}
	if !ecs.Has(w, e, component.BulletTagComponent) {
		t.Fatal("expected bullet tag")
	}
	ttl, ok := ecs.Get(w, e, component.TTLComponent)
	if !ok || ttl.Seconds <= 0 {
		t.Fatalf("expected a positive ttl, got %+v", ttl)
	}
	body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
	if !body.Sensor || !body.NoGravity {
		t.Fatalf("expected a gravity-free sensor body, got %+v", *body)
	}
	transform, _ := ecs.Get(w, e, component.TransformComponent)
	if transform.Rotation != 0.5 {
		t.Fatalf("expected rotation 0.5, got %v", transform.Rotation)
	}
}

func TestPlayerConfigKeepsDefaultsForZeroFields(t *testing.T) {
	cfg := PlayerConfig(prefabs.PlayerComponentSpec{MoveSpeed: 4})
	want := controller.DefaultConfig()
	want.MoveSpeed = 4
	if cfg.JumpForce != want.JumpForce || cfg.MoveSpeed != want.MoveSpeed || cfg.DashCooldown != want.DashCooldown {
		t.Fatalf("expected %+v, got %+v", want, cfg)
	}
}

func TestNamedColorRejectsUnknown(t *testing.T) {
	if _, err := namedColor("not-a-color"); err == nil {
		t.Fatal("expected an error for an unknown color")
	}
	if _, err := namedColor("tomato"); err != nil {
		t.Fatalf("expected tomato to resolve: %v", err)
	}
}

func TestSpawnAndClearLevel(t *testing.T) {
	lvl, err := levels.LoadLevelFromFS("training.json")
	if err != nil {
		t.Fatalf("load level: %v", err)
	}
	w := ecs.NewWorld()
	s, err := SpawnLevel(w, lvl)
	if err != nil {
		t.Fatalf("spawn level: %v", err)
	}
	if !w.IsAlive(s.Player) || !w.IsAlive(s.Anchor) || !w.IsAlive(s.Camera) {
		t.Fatal("expected player, anchor and camera to be alive")
	}

	anchor, _ := ecs.Get(w, s.Anchor, component.TransformComponent)
	wantX := lvl.PlayerSpawn.X + lvl.AnchorOffset.X
	if anchor.X != wantX {
		t.Fatalf("expected anchor x %v, got %v", wantX, anchor.X)
	}

	if got := len(w.Query(component.StaticTileComponent.Kind())); got != len(lvl.Blocks) {
		t.Fatalf("expected %d tiles, got %d", len(lvl.Blocks), got)
	}
	if removed := ClearLevel(w); removed != len(lvl.Blocks) {
		t.Fatalf("expected %d tiles removed, got %d", len(lvl.Blocks), removed)
	}
	if !w.IsAlive(s.Player) {
		t.Fatal("clearing the level must not touch the player")
	}
}
