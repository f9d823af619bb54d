package entity

// Projectile is a shooter-fired shot. It flies in a straight line,
// ignores gravity, and despawns on impact or when its lifetime runs out.
type Projectile struct {
	Pos  Vec2
	Vel  Vec2
	Size Vec2

	Damage    int
	LifeTicks int
	Active    bool
}

// NewProjectile creates an active projectile
func NewProjectile(pos, vel, size Vec2, damage, lifeTicks int) *Projectile {
	return &Projectile{
		Pos:       pos,
		Vel:       vel,
		Size:      size,
		Damage:    damage,
		LifeTicks: lifeTicks,
		Active:    true,
	}
}

// Hitbox returns the projectile rect in world space
func (p *Projectile) Hitbox() Rect {
	return Rect{X: p.Pos.X, Y: p.Pos.Y, W: p.Size.X, H: p.Size.Y}
}

// Deactivate marks the projectile as spent
func (p *Projectile) Deactivate() {
	p.Active = false
}
