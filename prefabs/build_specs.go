package prefabs

// PlayerComponentSpec carries the controller tuning. Zero fields fall back to
// the shipped defaults.
type PlayerComponentSpec struct {
	JumpForce          float64 `yaml:"jump_force"`
	MoveSpeed          float64 `yaml:"move_speed"`
	DashSpeed          float64 `yaml:"dash_speed"`
	DashDuration       float64 `yaml:"dash_duration"`
	DashCooldown       float64 `yaml:"dash_cooldown"`
	MaxAnchorDistance  float64 `yaml:"max_anchor_distance"`
	BulletSpeed        float64 `yaml:"bullet_speed"`
	ProjectileCooldown float64 `yaml:"projectile_cooldown"`
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// Color is a colornames name such as "tomato".
	Color string `yaml:"color"`
}

type CameraComponentSpec struct {
	Zoom       float64 `yaml:"zoom"`
	Smoothness float64 `yaml:"smoothness"`
}

type AnimationDefComponentSpec struct {
	FrameCount int     `yaml:"frame_count"`
	FPS        float64 `yaml:"fps"`
	Loop       bool    `yaml:"loop"`
}

type AnimationComponentSpec struct {
	Defs    map[string]AnimationDefComponentSpec `yaml:"defs"`
	Current string                               `yaml:"current"`
	Playing bool                                 `yaml:"playing"`
}

type PhysicsBodyComponentSpec struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`
	Mass      float64 `yaml:"mass"`
	Friction  float64 `yaml:"friction"`
	NoGravity bool    `yaml:"no_gravity"`
	Sensor    bool    `yaml:"sensor"`
	VelocityX float64 `yaml:"velocity_x"`
	VelocityY float64 `yaml:"velocity_y"`
}

// CollisionLayerComponentSpec names categories instead of raw bits:
// ground, platform, player, bullet.
type CollisionLayerComponentSpec struct {
	Category string   `yaml:"category"`
	Mask     []string `yaml:"mask"`
}

type TTLComponentSpec struct {
	Seconds float64 `yaml:"seconds"`
}
