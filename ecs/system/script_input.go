package system

import (
	"fmt"
	"log"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/dashshot/ecs"
	"github.com/milk9111/dashshot/ecs/component"
)

// ScriptInputSystem drives Input components from a tengo script instead of
// devices. The script runs once per tick.
//
// Globals set before each run: tick (int), time (float, seconds), x, y, vx,
// vy (player body), movement and attack (state names). The script answers
// through move_x (float) and jump, drop, dash, shoot (bool, edge-triggered).
type ScriptInputSystem struct {
	compiled *tengo.Compiled
	tick     int
	failed   bool
}

var scriptOutputs = []string{"move_x", "jump", "drop", "dash", "shoot"}

func NewScriptInputSystem(src []byte) (*ScriptInputSystem, error) {
	script := tengo.NewScript(src)
	for name, v := range map[string]any{
		"tick":     0,
		"time":     0.0,
		"x":        0.0,
		"y":        0.0,
		"vx":       0.0,
		"vy":       0.0,
		"movement": "",
		"attack":   "",
		"move_x":   0.0,
		"jump":     false,
		"drop":     false,
		"dash":     false,
		"shoot":    false,
	} {
		if err := script.Add(name, v); err != nil {
			return nil, fmt.Errorf("script input: add %s: %w", name, err)
		}
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("script input: compile: %w", err)
	}
	return &ScriptInputSystem{compiled: compiled}, nil
}

func (s *ScriptInputSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	s.tick++

	var in component.Input
	if !s.failed {
		var err error
		in, err = s.run(w)
		if err != nil {
			log.Printf("script input: tick %d: %v (input disabled)", s.tick, err)
			s.failed = true
			in = component.Input{}
		}
	}
	writeInput(w, in)
}

func (s *ScriptInputSystem) run(w *ecs.World) (component.Input, error) {
	globals := map[string]any{
		"tick": s.tick,
		"time": float64(s.tick) * w.TimeStep(),
	}
	if player, ok := w.First(component.PlayerTagComponent.Kind()); ok {
		if body, ok := ecs.Get(w, player, component.PhysicsBodyComponent); ok && body.Body != nil {
			pos, vel := body.Body.Position(), body.Body.Velocity()
			globals["x"], globals["y"] = pos.X, pos.Y
			globals["vx"], globals["vy"] = vel.X, vel.Y
		}
		if state, ok := ecs.Get(w, player, component.PlayerStateComponent); ok && state.Controller != nil {
			globals["movement"] = state.Controller.Movement().String()
			globals["attack"] = state.Controller.Attack().String()
		}
	}
	for name, v := range globals {
		if err := s.compiled.Set(name, v); err != nil {
			return component.Input{}, fmt.Errorf("set %s: %w", name, err)
		}
	}
	// Outputs reset every tick so a script that forgets one does not latch it.
	for _, name := range scriptOutputs {
		var zero any = false
		if name == "move_x" {
			zero = 0.0
		}
		if err := s.compiled.Set(name, zero); err != nil {
			return component.Input{}, fmt.Errorf("reset %s: %w", name, err)
		}
	}

	if err := s.compiled.Run(); err != nil {
		return component.Input{}, err
	}

	return component.Input{
		MoveX:        s.compiled.Get("move_x").Float(),
		JumpPressed:  s.compiled.Get("jump").Bool(),
		DropPressed:  s.compiled.Get("drop").Bool(),
		DashPressed:  s.compiled.Get("dash").Bool(),
		ShootPressed: s.compiled.Get("shoot").Bool(),
	}, nil
}
