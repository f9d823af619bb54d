package config

// EntitiesConfig is the root config for entities.yaml.
// Enemy and power-up sections form the spawn tables the generator and
// the in-play spawner draw from.
type EntitiesConfig struct {
	Player     PlayerConfig           `yaml:"player"`
	Enemies    map[string]EnemyConfig `yaml:"enemies"`
	PowerUps   PowerUpsConfig         `yaml:"powerups"`
	Projectile ProjectileConfig       `yaml:"projectile"`
}

type PlayerConfig struct {
	Hitbox    Rect `yaml:"hitbox"`
	Render    Size `yaml:"render"`
	Health    int  `yaml:"health"`
	MaxHealth int  `yaml:"max_health"`
}

// Rect is an offset+size box relative to an entity position
type Rect struct {
	OffsetX float64 `yaml:"offset_x"`
	OffsetY float64 `yaml:"offset_y"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
}

type Size struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig is one spawn-table row; the generator rolls variants by
// weight once the level index passes UnlockLevel.
type EnemyConfig struct {
	Weight        int     `yaml:"weight"`
	UnlockLevel   int     `yaml:"unlock_level"`
	Size          Size    `yaml:"size"`
	ContactDamage int     `yaml:"contact_damage"`
	MoveSpeed     float64 `yaml:"move_speed,omitempty"`

	// Chaser
	DetectRange float64 `yaml:"detect_range,omitempty"`
	HopSpeed    float64 `yaml:"hop_speed,omitempty"`

	// Patrol
	PatrolRange float64 `yaml:"patrol_range,omitempty"`

	// Jumper / shooter action cadence
	MinActionTicks int `yaml:"min_action_ticks,omitempty"`
	MaxActionTicks int `yaml:"max_action_ticks,omitempty"`

	// Jumper
	JumpSpeed float64 `yaml:"jump_speed,omitempty"`

	// Shooter
	AttackRange     float64 `yaml:"attack_range,omitempty"`
	ProjectileSpeed float64 `yaml:"projectile_speed,omitempty"`
}

type PowerUpsConfig struct {
	Size               Size                 `yaml:"size"`
	SpawnIntervalTicks int                  `yaml:"spawn_interval_ticks"`
	OffsetAbove        float64              `yaml:"offset_above"` // above the platform top
	EdgeInset          float64              `yaml:"edge_inset"`   // from platform edges
	Table              []PowerUpSpawnConfig `yaml:"table"`

	SpeedMultiplier float64 `yaml:"speed_multiplier"`
	SpeedBoostTicks int     `yaml:"speed_boost_ticks"`
	JumpBoostTicks  int     `yaml:"jump_boost_ticks"`
	ShieldTicks     int     `yaml:"shield_ticks"`
	DoubleJumpTicks int     `yaml:"double_jump_ticks"`
	HealAmount      int     `yaml:"heal_amount"`

	// Coin tier rolls, one-in-N
	SilverChance int `yaml:"silver_chance"`
	GoldChance   int `yaml:"gold_chance"`
}

type PowerUpSpawnConfig struct {
	Variant string `yaml:"variant"`
	Weight  int    `yaml:"weight"`
}

type ProjectileConfig struct {
	Size      Size `yaml:"size"`
	Damage    int  `yaml:"damage"`
	LifeTicks int  `yaml:"life_ticks"`
}
