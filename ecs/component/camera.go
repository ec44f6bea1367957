package component

// Camera follows the player. Its Transform holds the world point at the
// center of the screen.
type Camera struct {
	Zoom float64
	// Smoothness is the fraction of the remaining distance covered per frame.
	// Zero snaps to the target.
	Smoothness float64
}

var CameraComponent = NewComponent[Camera]()
