package component

// Transform places an entity in world units. The position is the entity's
// center. A negative ScaleX mirrors it horizontally.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

// FacingLeft reports whether the transform is mirrored.
func (t *Transform) FacingLeft() bool {
	return t != nil && t.ScaleX < 0
}

var TransformComponent = NewComponent[Transform]()
