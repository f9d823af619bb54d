package entity

// Body is the shared physical state for movable entities.
// Pos is the top-left corner of the render bounds in world pixels;
// the hitbox is a smaller rect at HitboxOffset inside those bounds.
// Velocity and acceleration are in pixels per tick.
type Body struct {
	Pos Vec2
	Vel Vec2
	Acc Vec2

	HitboxOffset Vec2
	HitboxSize   Vec2
	RenderSize   Vec2

	OnGround    bool
	OnCeiling   bool
	OnWallLeft  bool
	OnWallRight bool
	WasOnGround bool
	FacingRight bool
}

// Hitbox returns the collision rect at the current position
func (b *Body) Hitbox() Rect {
	return b.HitboxAt(b.Pos)
}

// HitboxAt returns the collision rect as if the body were at pos.
// The resolver uses this to test tentative moves without committing them.
func (b *Body) HitboxAt(pos Vec2) Rect {
	return Rect{
		X: pos.X + b.HitboxOffset.X,
		Y: pos.Y + b.HitboxOffset.Y,
		W: b.HitboxSize.X,
		H: b.HitboxSize.Y,
	}
}

// RenderBounds returns the visual rect at the current position
func (b *Body) RenderBounds() Rect {
	return Rect{X: b.Pos.X, Y: b.Pos.Y, W: b.RenderSize.X, H: b.RenderSize.Y}
}

// ResetContacts clears the per-tick contact flags, keeping the previous
// ground state in WasOnGround.
func (b *Body) ResetContacts() {
	b.WasOnGround = b.OnGround
	b.OnGround = false
	b.OnCeiling = false
	b.OnWallLeft = false
	b.OnWallRight = false
}
