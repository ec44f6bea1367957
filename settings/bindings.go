package settings

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

// AppName is the gdata application directory.
const AppName = "dashshot"

const (
	bindingsObject   = "settings"
	bindingsProperty = "bindings"
)

var ErrUnknownKey = errors.New("settings: unknown key name")

// Bindings maps every action to keyboard keys and one standard gamepad
// button. Keys are stored by their ebiten names so the file stays editable.
type Bindings struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`
	Drop  []string `yaml:"drop"`
	Dash  []string `yaml:"dash"`
	Shoot []string `yaml:"shoot"`

	PadJump  int `yaml:"pad_jump"`
	PadDrop  int `yaml:"pad_drop"`
	PadDash  int `yaml:"pad_dash"`
	PadShoot int `yaml:"pad_shoot"`
	// StickDeadzone is the left stick magnitude below which it reads as zero.
	StickDeadzone float64 `yaml:"stick_deadzone"`
}

// DefaultBindings returns the shipped layout: Space jumps, Down drops, Z
// dashes and X shoots.
func DefaultBindings() *Bindings {
	return &Bindings{
		Left:  []string{"ArrowLeft", "A"},
		Right: []string{"ArrowRight", "D"},
		Jump:  []string{"Space"},
		Drop:  []string{"ArrowDown", "S"},
		Dash:  []string{"Z"},
		Shoot: []string{"X"},

		PadJump:       int(ebiten.StandardGamepadButtonRightBottom),
		PadDrop:       int(ebiten.StandardGamepadButtonLeftBottom),
		PadDash:       int(ebiten.StandardGamepadButtonRightLeft),
		PadShoot:      int(ebiten.StandardGamepadButtonFrontBottomRight),
		StickDeadzone: 0.2,
	}
}

// Keys resolves key names. Unknown names are an error so a typo in the
// settings file does not silently unbind an action.
func Keys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		var k ebiten.Key
		if err := k.UnmarshalText([]byte(name)); err != nil {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, name)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Validate checks that every key name resolves.
func (b *Bindings) Validate() error {
	for _, names := range [][]string{b.Left, b.Right, b.Jump, b.Drop, b.Dash, b.Shoot} {
		if _, err := Keys(names); err != nil {
			return err
		}
	}
	return nil
}

// Manager loads and saves bindings through gdata. A nil gdata manager keeps
// bindings in memory only.
type Manager struct {
	gdataManager *gdata.Manager
	bindings     *Bindings
}

// Open creates a gdata-backed manager for AppName. When the storage cannot be
// opened it falls back to memory and logs why.
func Open() *Manager {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		log.Printf("settings: open storage: %v (bindings will not persist)", err)
		m = nil
	}
	return NewManager(m)
}

func NewManager(gdataManager *gdata.Manager) *Manager {
	sm := &Manager{
		gdataManager: gdataManager,
		bindings:     DefaultBindings(),
	}
	if err := sm.Load(); err != nil {
		log.Printf("settings: load bindings: %v (using defaults)", err)
	}
	return sm
}

func (sm *Manager) Load() error {
	if sm.gdataManager == nil {
		sm.bindings = DefaultBindings()
		return nil
	}

	if !sm.gdataManager.ObjectPropExists(bindingsObject, bindingsProperty) {
		sm.bindings = DefaultBindings()
		return nil
	}

	data, err := sm.gdataManager.LoadObjectProp(bindingsObject, bindingsProperty)
	if err != nil {
		sm.bindings = DefaultBindings()
		return fmt.Errorf("settings: load: %w", err)
	}

	loaded := DefaultBindings()
	if err := yaml.Unmarshal(data, loaded); err != nil {
		sm.bindings = DefaultBindings()
		return fmt.Errorf("settings: unmarshal: %w", err)
	}
	if err := loaded.Validate(); err != nil {
		sm.bindings = DefaultBindings()
		return fmt.Errorf("settings: validate: %w", err)
	}

	sm.bindings = loaded
	return nil
}

func (sm *Manager) Save() error {
	if sm.gdataManager == nil {
		return nil
	}

	data, err := yaml.Marshal(sm.bindings)
	if err != nil {
		return fmt.Errorf("settings: marshal: %w", err)
	}

	if err := sm.gdataManager.SaveObjectProp(bindingsObject, bindingsProperty, data); err != nil {
		return fmt.Errorf("settings: save: %w", err)
	}

	log.Printf("settings: bindings saved")
	return nil
}

func (sm *Manager) Bindings() *Bindings {
	return sm.bindings
}

// SetBindings replaces the bindings in memory after validating them. Call
// Save to persist.
func (sm *Manager) SetBindings(b *Bindings) error {
	if b == nil {
		return fmt.Errorf("settings: bindings are nil")
	}
	if err := b.Validate(); err != nil {
		return err
	}
	sm.bindings = b
	return nil
}
