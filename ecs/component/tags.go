package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

// ProjectileAnchorTag marks the companion that trails the player and fires
// bullets.
type ProjectileAnchorTag struct{}

var ProjectileAnchorTagComponent = NewComponent[ProjectileAnchorTag]()

type BulletTag struct{}

var BulletTagComponent = NewComponent[BulletTag]()
