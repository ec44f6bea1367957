package levels

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed *.json
var LevelsFS embed.FS

var (
	ErrUnknownBlockKind = errors.New("levels: unknown block kind")
	ErrEmptyBlock       = errors.New("levels: block has no area")
)

// Block kinds.
const (
	KindGround   = "ground"
	KindPlatform = "platform"
)

// Level describes static geometry and spawn points in world units, Y up.
type Level struct {
	Name        string  `json:"name"`
	Gravity     float64 `json:"gravity"`
	PlayerSpawn Point   `json:"player_spawn"`
	// AnchorOffset places the projectile anchor relative to the player spawn.
	AnchorOffset Point   `json:"anchor_offset"`
	Blocks       []Block `json:"blocks"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Block is an axis-aligned box centered on X, Y. Platform blocks are one-way.
type Block struct {
	Kind   string  `json:"kind"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

func (b Block) OneWay() bool {
	return b.Kind == KindPlatform
}

// Validate checks every block.
func (l *Level) Validate() error {
	for i, b := range l.Blocks {
		if b.Kind != KindGround && b.Kind != KindPlatform {
			return fmt.Errorf("block %d: %q: %w", i, b.Kind, ErrUnknownBlockKind)
		}
		if b.Width <= 0 || b.Height <= 0 {
			return fmt.Errorf("block %d: %w", i, ErrEmptyBlock)
		}
	}
	return nil
}

// Load reads a level from disk when the file exists there and from the
// embedded set otherwise. The .json extension is optional.
func Load(name string) (*Level, error) {
	if filepath.Ext(name) == "" {
		name += ".json"
	}
	data, err := os.ReadFile(name)
	if err != nil {
		data, err = os.ReadFile(filepath.Join("levels", filepath.Base(name)))
	}
	if err != nil {
		return LoadLevelFromFS(filepath.Base(name))
	}
	return Parse(data)
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	if err := lvl.Validate(); err != nil {
		return nil, fmt.Errorf("validate level %q: %w", lvl.Name, err)
	}
	return &lvl, nil
}
