package component

import "image/color"

// Sprite is drawn as a filled box of the given size in world units.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.Color
}

var SpriteComponent = NewComponent[Sprite]()
