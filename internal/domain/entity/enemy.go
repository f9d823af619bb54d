package entity

// EnemyVariant selects an enemy behavior
type EnemyVariant int

const (
	EnemyChaser EnemyVariant = iota
	EnemyPatrol
	EnemyJumper
	EnemyShooter
)

// String returns the variant name
func (v EnemyVariant) String() string {
	switch v {
	case EnemyChaser:
		return "chaser"
	case EnemyPatrol:
		return "patrol"
	case EnemyJumper:
		return "jumper"
	case EnemyShooter:
		return "shooter"
	default:
		return "unknown"
	}
}

// Enemy is a hostile entity. Behavior parameters are resolved from the
// spawn table at placement time; per-variant systems read them from here.
type Enemy struct {
	Body
	Variant EnemyVariant

	ContactDamage int
	MoveSpeed     float64

	// Chaser
	DetectRange float64
	HopSpeed    float64

	// Patrol
	PatrolRange  float64
	PatrolOrigin float64
	PatrolDir    float64

	// Jumper / Shooter
	ActionTicks     int // countdown to the next jump or shot
	MinActionTicks  int
	MaxActionTicks  int
	JumpSpeed       float64
	AttackRange     float64
	ProjectileSpeed float64
}

// NewEnemy creates an enemy of the given variant standing at pos
func NewEnemy(variant EnemyVariant, pos Vec2, hitboxSize Vec2) *Enemy {
	return &Enemy{
		Body: Body{
			Pos:         pos,
			HitboxSize:  hitboxSize,
			RenderSize:  hitboxSize,
			FacingRight: false,
		},
		Variant:      variant,
		PatrolOrigin: pos.X,
		PatrolDir:    -1,
	}
}
