package main

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/entity"
	"github.com/milk9111/dashshot/ecs/system"
	"github.com/milk9111/dashshot/levels"
	"github.com/milk9111/dashshot/prefabs"
	"github.com/milk9111/dashshot/settings"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type Game struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	physics   *system.PhysicsSystem
	render    *system.RenderSystem

	levelName string
	watcher   *prefabs.Watcher
}

func NewGame(levelName, scriptName string, debug bool) (*Game, error) {
	lvl, err := levels.Load(levelName)
	if err != nil {
		return nil, fmt.Errorf("game: load level %q: %w", levelName, err)
	}

	w := ecs.NewWorld()
	if _, err := entity.SpawnLevel(w, lvl); err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	var input ecs.System
	if scriptName != "" {
		src, err := prefabs.LoadScript(scriptName)
		if err != nil {
			return nil, fmt.Errorf("game: load script %q: %w", scriptName, err)
		}
		if input, err = system.NewScriptInputSystem(src); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	} else {
		bindings := settings.Open().Bindings()
		if input, err = system.NewInputSystem(bindings); err != nil {
			return nil, fmt.Errorf("game: %w", err)
		}
	}

	physics := system.NewPhysicsSystem(lvl.Gravity)

	var trace func(machine, from, to string)
	if debug {
		trace = func(machine, from, to string) {
			log.Printf("controller: %s %s -> %s", machine, from, to)
		}
	}
	ctrl, err := system.NewPlayerControllerSystem(w, physics, trace)
	if err != nil {
		return nil, fmt.Errorf("game: %w", err)
	}

	g := &Game{
		world:     w,
		physics:   physics,
		render:    system.NewRenderSystem(debug),
		levelName: levelName,
		scheduler: ecs.NewScheduler(
			input,
			ctrl,
			physics,
			system.NewTTLSystem(),
			system.NewAnimationSystem(),
			system.NewCameraSystem(),
			system.NewEventLogSystem(debug),
		),
	}

	if debug {
		watcher, err := prefabs.NewWatcher("levels")
		if err != nil {
			log.Printf("game: level hot reload disabled: %v", err)
		} else {
			g.watcher = watcher
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	g.pollReload()
	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func (g *Game) Close() {
	if g.watcher == nil {
		return
	}
	if err := g.watcher.Close(); err != nil {
		log.Printf("game: close watcher: %v", err)
	}
}

// pollReload drains the watcher without blocking and rebuilds the level's
// geometry when its file changed. The player keeps its state.
func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			if prefabs.IsLevelFile(name) && sameLevel(name, g.levelName) {
				g.reloadLevel(name)
			}
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) reloadLevel(path string) {
	lvl, err := levels.Load(path)
	if err != nil {
		log.Printf("game: reload %s: %v (keeping the current level)", path, err)
		return
	}
	removed := entity.ClearLevel(g.world)
	added, err := entity.LoadLevelToWorld(g.world, lvl)
	if err != nil {
		log.Printf("game: reload %s: %v", path, err)
		return
	}
	g.physics.SetGravity(lvl.Gravity)
	g.physics.Sync(g.world)
	g.world.Events().Push(ecs.Event{Type: ecs.EventLevelReloaded, Data: lvl.Name})
	log.Printf("game: reloaded %s (%d blocks replaced by %d)", lvl.Name, removed, added)
}

func sameLevel(path, levelName string) bool {
	name := filepath.Base(levelName)
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	return filepath.Base(path) == name
}
