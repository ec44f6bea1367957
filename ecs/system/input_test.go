package system

import (
	"errors"
	"testing"

	"github.com/milk9111/dashshot/settings"
)

func TestNewInputSystemRejectsUnknownKeys(t *testing.T) {
	b := settings.DefaultBindings()
	b.Shoot = []string{"NotAKey"}
	if _, err := NewInputSystem(b); !errors.Is(err, settings.ErrUnknownKey) {
		t.Fatalf("expected ErrUnknownKey, got %v", err)
	}
}

func TestNewInputSystemDefaults(t *testing.T) {
	i, err := NewInputSystem(nil)
	if err != nil {
		t.Fatalf("new input system: %v", err)
	}
	if len(i.jump) == 0 || len(i.shoot) == 0 {
		t.Fatal("expected default keys to be bound")
	}
}
