// Package system holds the per-tick simulation systems: integration,
// collision resolution, input, enemy behaviors, power-up effects, and
// combat. Systems are deterministic and silent; anything user-facing
// (rendering, logging, sound cues) happens in the layers above, driven by
// the events the systems return.
package system

import (
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// PhysicsSystem turns accumulated acceleration into a tentative
// displacement, one body per call. It never touches positions: the
// returned delta goes to the resolver, which commits whatever survives
// collision.
type PhysicsSystem struct {
	config *config.PhysicsConfig
}

// NewPhysicsSystem creates a physics system over the movement constants
func NewPhysicsSystem(cfg *config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Integrate advances the body's velocity and returns this tick's tentative
// delta. Drive acceleration is whatever input or AI left in Acc; friction
// decays horizontal velocity toward zero rather than stopping it outright.
// maxRun is passed in because speed effects change it per tick.
func (s *PhysicsSystem) Integrate(b *entity.Body, maxRun float64) entity.Vec2 {
	m := s.config.Movement

	ax := b.Acc.X + b.Vel.X*m.Friction
	ay := b.Acc.Y + m.Gravity

	b.Vel.X += ax
	b.Vel.Y += ay

	if b.Vel.X > maxRun {
		b.Vel.X = maxRun
	} else if b.Vel.X < -maxRun {
		b.Vel.X = -maxRun
	}
	if b.Vel.Y > m.MaxFallSpeed {
		b.Vel.Y = m.MaxFallSpeed
	}

	// Drive is re-asserted every tick
	b.Acc = entity.Vec2{}

	// Midpoint step: average of start and end velocity over the tick
	return entity.Vec2{X: b.Vel.X + 0.5*ax, Y: b.Vel.Y + 0.5*ay}
}

// IntegrateGravity is the reduced step for AI-driven bodies: gravity and
// the fall clamp only. Horizontal velocity is under behavior control and
// must not decay, or configured move speeds would be off by the friction
// factor.
func (s *PhysicsSystem) IntegrateGravity(b *entity.Body) entity.Vec2 {
	m := s.config.Movement

	b.Vel.Y += m.Gravity
	if b.Vel.Y > m.MaxFallSpeed {
		b.Vel.Y = m.MaxFallSpeed
	}

	return entity.Vec2{X: b.Vel.X, Y: b.Vel.Y + 0.5*m.Gravity}
}
