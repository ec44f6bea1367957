package entity

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/milk9111/dashshot/controller"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"github.com/milk9111/dashshot/prefabs"
	"golang.org/x/image/colornames"
)

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any) error

var componentRegistry = map[string]componentBuildFn{
	"player_tag":            addPlayerTag,
	"camera_tag":            addCameraTag,
	"projectile_anchor_tag": addProjectileAnchorTag,
	"bullet_tag":            addBulletTag,
	"player":                addPlayer,
	"input":                 addInput,
	"transform":             addTransform,
	"sprite":                addSprite,
	"camera":                addCamera,
	"animation":             addAnimation,
	"collision_layer":       addCollisionLayer,
	"physics_body":          addPhysicsBody,
	"ttl":                   addTTL,
}

// componentBuildOrder lists components that others read while being built.
// Tags come first so later builders can check them.
var componentBuildOrder = []string{
	"player_tag",
	"camera_tag",
	"projectile_anchor_tag",
	"bullet_tag",
	"transform",
	"collision_layer",
}

// BuildEntity creates an entity from a prefab file. On error nothing is left
// in the world.
func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := w.CreateEntity()

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	build := func(name string) error {
		builder, ok := componentRegistry[name]
		if !ok {
			return fmt.Errorf("build entity: %q: no builder for component %q", prefabPath, name)
		}
		if err := builder(w, e, remaining[name]); err != nil {
			return fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
		return nil
	}

	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; !ok {
			continue
		}
		if err := build(name); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}

	names := make([]string, 0, len(remaining))
	for name := range remaining {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := build(name); err != nil {
			w.DestroyEntity(e)
			return 0, err
		}
	}

	return e, nil
}

// SetEntityTransform moves an entity, creating its transform if needed.
func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y, rotation float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent)
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
		if err := ecs.Add(w, e, component.TransformComponent, t); err != nil {
			return err
		}
	}
	t.X = x
	t.Y = y
	t.Rotation = rotation
	return nil
}

func addPlayerTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.PlayerTagComponent, &component.PlayerTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.CameraTagComponent, &component.CameraTag{})
}

func addProjectileAnchorTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.ProjectileAnchorTagComponent, &component.ProjectileAnchorTag{})
}

func addBulletTag(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.BulletTagComponent, &component.BulletTag{})
}

type playerSpec = prefabs.PlayerComponentSpec

func addPlayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[playerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode player spec: %w", err)
	}
	return ecs.Add(w, e, component.PlayerComponent, &component.Player{Config: PlayerConfig(spec)})
}

// PlayerConfig turns a player spec into controller tuning. Fields left at
// zero keep their default.
func PlayerConfig(spec prefabs.PlayerComponentSpec) controller.Config {
	cfg := controller.DefaultConfig()
	override := func(dst *float64, v float64) {
		if v != 0 {
			*dst = v
		}
	}
	override(&cfg.JumpForce, spec.JumpForce)
	override(&cfg.MoveSpeed, spec.MoveSpeed)
	override(&cfg.DashSpeed, spec.DashSpeed)
	override(&cfg.DashDuration, spec.DashDuration)
	override(&cfg.DashCooldown, spec.DashCooldown)
	override(&cfg.MaxAnchorDistance, spec.MaxAnchorDistance)
	override(&cfg.BulletSpeed, spec.BulletSpeed)
	override(&cfg.ProjectileCooldown, spec.ProjectileCooldown)
	return cfg
}

func addInput(w *ecs.World, e ecs.Entity, _ any) error {
	return ecs.Add(w, e, component.InputComponent, &component.Input{})
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent, &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	c, err := namedColor(spec.Color)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteComponent, &component.Sprite{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  c,
	})
}

func namedColor(name string) (color.Color, error) {
	if name == "" {
		return colornames.White, nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return nil, fmt.Errorf("unknown color %q", name)
	}
	return c, nil
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom <= 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent, &component.Camera{
		Zoom:       spec.Zoom,
		Smoothness: spec.Smoothness,
	})
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}
	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		defs[name] = component.AnimationDef{
			Name:       name,
			FrameCount: def.FrameCount,
			FPS:        def.FPS,
			Loop:       def.Loop,
		}
	}
	if spec.Current != "" {
		if _, ok := defs[spec.Current]; !ok {
			return fmt.Errorf("animation %q is not defined", spec.Current)
		}
	}
	return ecs.Add(w, e, component.AnimationComponent, &component.Animation{
		Defs:    defs,
		Params:  make(map[string]float64),
		Current: spec.Current,
		Playing: spec.Playing,
	})
}

type collisionLayerSpec = prefabs.CollisionLayerComponentSpec

var categoryNames = map[string]uint{
	"ground":   component.CategoryGround,
	"platform": component.CategoryPlatform,
	"player":   component.CategoryPlayer,
	"bullet":   component.CategoryBullet,
}

func addCollisionLayer(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[collisionLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode collision layer spec: %w", err)
	}
	category, ok := categoryNames[spec.Category]
	if !ok {
		return fmt.Errorf("unknown collision category %q", spec.Category)
	}
	var mask uint
	for _, name := range spec.Mask {
		bit, ok := categoryNames[name]
		if !ok {
			return fmt.Errorf("unknown collision category %q in mask", name)
		}
		mask |= bit
	}
	return ecs.Add(w, e, component.CollisionLayerComponent, &component.CollisionLayer{
		Category: category,
		Mask:     mask,
	})
}

type physicsBodySpec = prefabs.PhysicsBodyComponentSpec

func addPhysicsBody(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[physicsBodySpec](raw)
	if err != nil {
		return fmt.Errorf("decode physics body spec: %w", err)
	}
	return ecs.Add(w, e, component.PhysicsBodyComponent, &component.PhysicsBody{
		Width:     spec.Width,
		Height:    spec.Height,
		Mass:      spec.Mass,
		Friction:  spec.Friction,
		NoGravity: spec.NoGravity,
		Sensor:    spec.Sensor,
		VelocityX: spec.VelocityX,
		VelocityY: spec.VelocityY,
	})
}

type ttlSpec = prefabs.TTLComponentSpec

func addTTL(w *ecs.World, e ecs.Entity, raw any) error {
	spec, err := prefabs.DecodeComponentSpec[ttlSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	if spec.Seconds <= 0 {
		return fmt.Errorf("ttl must be positive, got %v", spec.Seconds)
	}
	return ecs.Add(w, e, component.TTLComponent, &component.TTL{Seconds: spec.Seconds})
}
