// Command simulate runs a level headless with real physics, feeding the
// player from a tengo script, and logs every controller state change with
// its simulated time. Useful for tuning and for reproducible bug reports.
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
	"github.com/milk9111/dashshot/ecs/entity"
	"github.com/milk9111/dashshot/ecs/system"
	"github.com/milk9111/dashshot/levels"
	"github.com/milk9111/dashshot/prefabs"
)

func main() {
	levelName := flag.String("level", "training", "level name in levels/ (basename, .json optional)")
	scriptName := flag.String("script", "patrol.tengo", "input script in prefabs/scripts")
	ticks := flag.Int("ticks", 600, "number of 60 Hz ticks to simulate")
	quiet := flag.Bool("q", false, "only print the summary")
	flag.Parse()

	runID := uuid.NewString()
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("[%s] ", runID[:8]))

	if err := run(*levelName, *scriptName, *ticks, *quiet); err != nil {
		log.Fatal(err)
	}
}

func run(levelName, scriptName string, ticks int, quiet bool) error {
	if ticks <= 0 {
		return fmt.Errorf("simulate: ticks must be positive, got %d", ticks)
	}

	lvl, err := levels.Load(levelName)
	if err != nil {
		return fmt.Errorf("simulate: load level %q: %w", levelName, err)
	}
	src, err := prefabs.LoadScript(scriptName)
	if err != nil {
		return fmt.Errorf("simulate: load script %q: %w", scriptName, err)
	}

	w := ecs.NewWorld()
	session, err := entity.SpawnLevel(w, lvl)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}

	input, err := system.NewScriptInputSystem(src)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	physics := system.NewPhysicsSystem(lvl.Gravity)

	tick := 0
	trace := func(machine, from, to string) {
		if quiet {
			return
		}
		log.Printf("t=%6.3fs tick=%4d %s: %s -> %s", float64(tick)*w.TimeStep(), tick, machine, from, to)
	}
	ctrl, err := system.NewPlayerControllerSystem(w, physics, trace)
	if err != nil {
		return fmt.Errorf("simulate: %w", err)
	}
	events := system.NewEventLogSystem(false)

	scheduler := ecs.NewScheduler(
		input,
		ctrl,
		physics,
		system.NewTTLSystem(),
		system.NewAnimationSystem(),
		events,
	)

	log.Printf("level %s, script %s, %d ticks", lvl.Name, scriptName, ticks)
	for tick = 1; tick <= ticks; tick++ {
		scheduler.Update(w)
	}

	summarize(w, session.Player, ctrl, events)
	return nil
}

func summarize(w *ecs.World, player ecs.Entity, ctrl *system.PlayerControllerSystem, events *system.EventLogSystem) {
	snap := ctrl.Controller().Snapshot()
	if transform, ok := ecs.Get(w, player, component.TransformComponent); ok {
		log.Printf("player at (%.2f, %.2f) facing right=%v", transform.X, transform.Y, snap.FacingRight)
	}
	log.Printf("movement=%s attack=%s", snap.Movement, snap.Attack)

	for _, t := range []string{ecs.EventMovementChanged, ecs.EventAttackChanged, ecs.EventBulletSpawned} {
		fmt.Printf("%-18s %d\n", t, events.Count(t))
	}
	fmt.Printf("%-18s %d\n", "bullets_alive", len(w.Query(component.BulletTagComponent.Kind())))
}
