package prefabs

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadEntityBuildSpecFromEmbed(t *testing.T) {
	spec, err := LoadEntityBuildSpec("prefabs/bullet.yaml")
	if err != nil {
		t.Fatalf("load bullet: %v", err)
	}
	if spec.Name != "bullet" {
		t.Fatalf("expected bullet, got %q", spec.Name)
	}
	body, err := DecodeComponentSpec[PhysicsBodyComponentSpec](spec.Components["physics_body"])
	if err != nil {
		t.Fatalf("decode physics body: %v", err)
	}
	if !body.Sensor || !body.NoGravity {
		t.Fatalf("expected a sensor without gravity, got %+v", body)
	}
}

func TestCleanScriptPath(t *testing.T) {
	for _, in := range []string{"patrol.tengo", "scripts/patrol.tengo", "prefabs/scripts/patrol.tengo"} {
		if got := cleanScriptPath(in); got != "scripts/patrol.tengo" {
			t.Fatalf("%q: expected scripts/patrol.tengo, got %q", in, got)
		}
	}
}

func TestIsWatchedFile(t *testing.T) {
	tests := map[string]bool{
		"levels/training.json": true,
		"prefabs/player.yaml":  true,
		"scripts/patrol.tengo": true,
		"levels/notes.txt":     false,
		"levels/.training.swp": false,
	}
	for path, want := range tests {
		if got := IsWatchedFile(path); got != want {
			t.Fatalf("%s: expected %v, got %v", path, want, got)
		}
	}
	if IsLevelFile("prefabs/player.yaml") || !IsLevelFile("levels/a.JSON") {
		t.Fatal("level file detection is wrong")
	}
}

func TestWatcherReportsWrites(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWatcher(dir)
	if err != nil {
		t.Fatalf("new watcher: %v", err)
	}
	defer w.Close()

	path := filepath.Join(dir, "level.json")
	if err := os.WriteFile(path, []byte("{}"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	select {
	case name := <-w.Events:
		if filepath.Base(name) != "level.json" {
			t.Fatalf("unexpected event for %s", name)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no event for the written file")
	}

	if err := w.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	// Close must close Events so draining it ends.
	for range w.Events {
	}
}
