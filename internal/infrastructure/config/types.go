package config

// PhysicsConfig is the root config for physics.yaml.
// Velocities are pixels per tick, accelerations pixels per tick squared.
type PhysicsConfig struct {
	Display   DisplayConfig   `yaml:"display"`
	Movement  MovementConfig  `yaml:"movement"`
	Jump      JumpConfig      `yaml:"jump"`
	Collision CollisionConfig `yaml:"collision"`
	Combat    CombatConfig    `yaml:"combat"`
	Feedback  FeedbackConfig  `yaml:"feedback"`
}

type DisplayConfig struct {
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`
	Scale        int `yaml:"scale"`
	TPS          int `yaml:"tps"`
}

type MovementConfig struct {
	Gravity      float64 `yaml:"gravity"`
	Acceleration float64 `yaml:"acceleration"`
	Friction     float64 `yaml:"friction"` // negative velocity-decay factor
	MaxRunSpeed  float64 `yaml:"max_run_speed"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"` // terminal velocity
}

type JumpConfig struct {
	Speed           float64 `yaml:"speed"`             // applied upward as -Speed
	BoostedSpeed    float64 `yaml:"boosted_speed"`     // while a jump boost is active
	AirJumpWindow   float64 `yaml:"air_jump_window"`   // double jump allowed while vy > -window
	MaxJumpHeight   float64 `yaml:"max_jump_height"`   // generator vertical bound
	MaxJumpDistance float64 `yaml:"max_jump_distance"` // generator horizontal bound
}

type CollisionConfig struct {
	SubstepSize float64 `yaml:"substep_size"` // sweep step in pixels
	CellSize    float64 `yaml:"cell_size"`    // broad-phase grid cell in pixels
}

type CombatConfig struct {
	ContactDamage int             `yaml:"contact_damage"`
	IframeTicks   int             `yaml:"iframe_ticks"`
	Knockback     KnockbackConfig `yaml:"knockback"`
	VoidDamage    int             `yaml:"void_damage"` // falling out of bounds
}

type KnockbackConfig struct {
	Force   float64 `yaml:"force"`
	UpForce float64 `yaml:"up_force"`
}

type FeedbackConfig struct {
	Hitstop     HitstopConfig     `yaml:"hitstop"`
	ScreenShake ScreenShakeConfig `yaml:"screen_shake"`
}

type HitstopConfig struct {
	Enabled bool `yaml:"enabled"`
	Ticks   int  `yaml:"ticks"`
}

type ScreenShakeConfig struct {
	Enabled   bool    `yaml:"enabled"`
	Intensity float64 `yaml:"intensity"`
	Decay     float64 `yaml:"decay"`
}
