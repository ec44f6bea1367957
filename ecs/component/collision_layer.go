package component

// Collision categories. Shapes collide when each one's category is in the
// other's mask.
const (
	CategoryGround uint = 1 << iota
	CategoryPlatform
	CategoryPlayer
	CategoryBullet
)

// CollisionLayer declares a body's collision category and mask so the
// physics system can selectively enable/disable collisions between groups of
// objects.
type CollisionLayer struct {
	Category uint
	Mask     uint
}

var CollisionLayerComponent = NewComponent[CollisionLayer]()
