package component

import "github.com/jakecoffman/cp"

// PhysicsBody stores Chipmunk2D runtime data and collider configuration.
// Body and Shape are filled in by the physics system.
type PhysicsBody struct {
	Body     *cp.Body
	Shape    *cp.Shape
	Width    float64
	Height   float64
	Mass     float64
	Friction float64
	// NoGravity bodies keep their vertical velocity until something sets it.
	NoGravity bool
	// Sensor shapes report contacts without colliding.
	Sensor bool
	// VelocityX and VelocityY are applied when the body is created.
	VelocityX float64
	VelocityY float64
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
