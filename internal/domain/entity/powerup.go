package entity

// PowerUpVariant selects a power-up effect
type PowerUpVariant int

const (
	PowerSpeedBoost PowerUpVariant = iota
	PowerJumpBoost
	PowerHealthPotion
	PowerCoin
	PowerShield
	PowerDoubleJump
)

// String returns the variant name
func (v PowerUpVariant) String() string {
	switch v {
	case PowerSpeedBoost:
		return "speed_boost"
	case PowerJumpBoost:
		return "jump_boost"
	case PowerHealthPotion:
		return "health_potion"
	case PowerCoin:
		return "coin"
	case PowerShield:
		return "shield"
	case PowerDoubleJump:
		return "double_jump"
	default:
		return "unknown"
	}
}

// PowerUp is a static pickup. Bobbing is a render concern; the
// collision hitbox stays where the generator placed it.
type PowerUp struct {
	Pos     Vec2
	Size    Vec2
	Variant PowerUpVariant

	// Coin payout; zero for non-coin variants
	CoinValue int
}

// Hitbox returns the pickup rect in world space
func (p *PowerUp) Hitbox() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}
