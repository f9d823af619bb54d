package entity

// Player is the player-controlled entity
type Player struct {
	Body

	Health    int
	MaxHealth int
	Coins     int
	Score     int

	SpawnPos Vec2

	// Tick countdowns
	IframeTicks     int
	SpeedBoostTicks int
	JumpBoostTicks  int
	ShieldTicks     int
	DoubleJumpTicks int

	// Set when the mid-air jump has been spent; cleared on landing
	AirJumpUsed bool
}

// NewPlayer creates a player at the given spawn position
func NewPlayer(spawn Vec2, hitboxOffset, hitboxSize, renderSize Vec2, health, maxHealth int) *Player {
	return &Player{
		Body: Body{
			Pos:          spawn,
			HitboxOffset: hitboxOffset,
			HitboxSize:   hitboxSize,
			RenderSize:   renderSize,
			FacingRight:  true,
		},
		Health:    health,
		MaxHealth: maxHealth,
		SpawnPos:  spawn,
	}
}

// IsInvincible returns true while iframes or a shield are active
func (p *Player) IsInvincible() bool {
	return p.IframeTicks > 0 || p.ShieldTicks > 0
}

// Damage reduces health by n and reports whether the player died.
// Callers are expected to check IsInvincible first.
func (p *Player) Damage(n int) bool {
	p.Health -= n
	if p.Health < 0 {
		p.Health = 0
	}
	return p.Health <= 0
}

// Heal restores health up to MaxHealth
func (p *Player) Heal(n int) {
	p.Health += n
	if p.Health > p.MaxHealth {
		p.Health = p.MaxHealth
	}
}

// Respawn moves the player back to the spawn point and stops it
func (p *Player) Respawn() {
	p.Pos = p.SpawnPos
	p.Vel = Vec2{}
	p.Acc = Vec2{}
	p.AirJumpUsed = false
}
