package entity

// Kind tags what an entity is, for collision response dispatch
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
	KindPlatform
	KindPowerUp
	KindGoal
	KindProjectile
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindPlatform:
		return "platform"
	case KindPowerUp:
		return "powerup"
	case KindGoal:
		return "goal"
	case KindProjectile:
		return "projectile"
	default:
		return "unknown"
	}
}
