package controller

const (
	// ProbeDistance is how far below the collider bounds ground sensing reaches.
	ProbeDistance = 0.5
	// DropThroughWindow is how long platform collision stays off after a drop.
	DropThroughWindow = 0.3
	// FallVelocity is the vertical speed below which a grounded character starts falling.
	FallVelocity = -0.1

	timeEpsilon = 1e-9
)

// Config holds the per-session tuning. Values are used as given; nothing is
// clamped or validated.
type Config struct {
	JumpForce          float64
	MoveSpeed          float64
	DashSpeed          float64
	DashDuration       float64
	DashCooldown       float64
	MaxAnchorDistance  float64
	BulletSpeed        float64
	ProjectileCooldown float64

	// Trace, when set, receives every state change.
	Trace func(machine, from, to string)
}

// DefaultConfig returns the tuning the character shipped with.
func DefaultConfig() Config {
	return Config{
		JumpForce:          25,
		MoveSpeed:          10,
		DashSpeed:          30,
		DashDuration:       0.15,
		DashCooldown:       1,
		MaxAnchorDistance:  2,
		BulletSpeed:        5,
		ProjectileCooldown: 1.5,
	}
}

func (c *Config) trace(machine string, from, to interface{ String() string }) {
	if c == nil || c.Trace == nil || from.String() == to.String() {
		return
	}
	c.Trace(machine, from.String(), to.String())
}
