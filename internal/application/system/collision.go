package system

import (
	"math"

	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// Resolver commits tentative movement against the level geometry. The
// integrator proposes a delta; the resolver sweeps it in substeps and the
// position only ever advances through here, so nothing tunnels and nothing
// ends a tick inside a platform.
type Resolver struct {
	config *config.CollisionConfig
	level  *entity.Level
	grid   *Grid
}

// NewResolver builds the broad-phase grid for the level's platforms
func NewResolver(cfg *config.PhysicsConfig, level *entity.Level) *Resolver {
	return &Resolver{
		config: &cfg.Collision,
		level:  level,
		grid:   NewGrid(level.Platforms, level.Bounds, cfg.Collision.CellSize),
	}
}

// Move commits the tentative delta and reports what happened. The
// vertical axis resolves first: a body falling past a corner lands on the
// platform instead of being pushed aside, and landing does not cancel the
// remaining horizontal motion. Contact flags are rebuilt from scratch.
func (r *Resolver) Move(b *entity.Body, delta entity.Vec2) []Event {
	var events []Event

	b.ResetContacts()
	r.pushOut(b)

	landed := r.sweepY(b, delta.Y)
	r.sweepX(b, delta.X)

	if landed >= 0 && !b.WasOnGround {
		events = append(events, PlatformLanding{Platform: landed})
	}
	if b.Hitbox().Y > r.level.Bounds.Bottom() {
		events = append(events, VoidFall{})
	}
	return events
}

// sweepY advances vertically in substeps no larger than the configured
// size, snapping flush against the first platform face met. Returns the
// landed platform index, or -1.
func (r *Resolver) sweepY(b *entity.Body, dy float64) int {
	if dy == 0 {
		return -1
	}
	dir := 1.0
	if dy < 0 {
		dir = -1
	}

	remaining := math.Abs(dy)
	for remaining > 0 {
		step := math.Min(r.substep(), remaining)
		remaining -= step

		next := b.Pos
		next.Y += dir * step
		idx := r.firstHit(b.HitboxAt(next), true, dir > 0)
		if idx < 0 {
			b.Pos = next
			continue
		}

		plat := r.level.Platforms[idx]
		if dir > 0 {
			// Land flush: hitbox bottom exactly on the platform top
			b.Pos.Y = plat.Y - b.HitboxOffset.Y - b.HitboxSize.Y
			b.OnGround = true
			b.Vel.Y = 0
			return idx
		}
		b.Pos.Y = plat.Bottom() - b.HitboxOffset.Y
		b.OnCeiling = true
		b.Vel.Y = 0
		return -1
	}
	return -1
}

// sweepX advances horizontally in substeps, stopping flush at walls
func (r *Resolver) sweepX(b *entity.Body, dx float64) {
	if dx == 0 {
		return
	}
	dir := 1.0
	if dx < 0 {
		dir = -1
	}

	remaining := math.Abs(dx)
	for remaining > 0 {
		step := math.Min(r.substep(), remaining)
		remaining -= step

		next := b.Pos
		next.X += dir * step
		idx := r.firstHit(b.HitboxAt(next), false, dir > 0)
		if idx < 0 {
			b.Pos = next
			continue
		}

		plat := r.level.Platforms[idx]
		if dir > 0 {
			b.Pos.X = plat.X - b.HitboxOffset.X - b.HitboxSize.X
			b.OnWallRight = true
		} else {
			b.Pos.X = plat.Right() - b.HitboxOffset.X
			b.OnWallLeft = true
		}
		b.Vel.X = 0
		return
	}
}

// firstHit returns the overlapped platform whose face is met first along
// the motion direction, or -1. Faces are compared as a min; the negation
// folds the two senses of each axis into one comparison.
func (r *Resolver) firstHit(hb entity.Rect, axisY, positive bool) int {
	best := -1
	var bestFace float64
	for _, i := range r.grid.Query(hb) {
		p := r.level.Platforms[i]
		if !hb.Overlaps(p.Rect) {
			continue
		}
		var face float64
		switch {
		case axisY && positive:
			face = p.Y
		case axisY && !positive:
			face = -p.Bottom()
		case positive:
			face = p.X
		default:
			face = -p.Right()
		}
		if best < 0 || face < bestFace {
			best, bestFace = i, face
		}
	}
	return best
}

const maxPushOutPasses = 3

// pushOut clears a pre-existing overlap before the sweep, one platform per
// pass. The smallest displacement wins, vertical on ties, matching the
// axis order of the sweep itself.
func (r *Resolver) pushOut(b *entity.Body) {
	for pass := 0; pass < maxPushOutPasses; pass++ {
		hb := b.Hitbox()
		idx := -1
		for _, i := range r.grid.Query(hb) {
			if hb.Overlaps(r.level.Platforms[i].Rect) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return
		}

		p := r.level.Platforms[idx]
		up := hb.Bottom() - p.Y
		down := p.Bottom() - hb.Y
		left := hb.Right() - p.X
		right := p.Right() - hb.X

		pushV, dirV := up, -1.0
		if down < up {
			pushV, dirV = down, 1.0
		}
		pushH, dirH := left, -1.0
		if right < left {
			pushH, dirH = right, 1.0
		}

		if pushV <= pushH {
			b.Pos.Y += dirV * pushV
			if dirV < 0 {
				b.OnGround = true
				if b.Vel.Y > 0 {
					b.Vel.Y = 0
				}
			} else {
				b.OnCeiling = true
				if b.Vel.Y < 0 {
					b.Vel.Y = 0
				}
			}
		} else {
			b.Pos.X += dirH * pushH
			if dirH < 0 {
				b.OnWallRight = true
				if b.Vel.X > 0 {
					b.Vel.X = 0
				}
			} else {
				b.OnWallLeft = true
				if b.Vel.X < 0 {
					b.Vel.X = 0
				}
			}
		}
	}
}

// Contacts reports player overlaps with the dynamic entities and the goal
// after movement has been committed. The dynamic sets are a handful of
// entries, so the rect test itself is the broad phase here.
func (r *Resolver) Contacts(player *entity.Player) []Event {
	var events []Event
	hb := player.Hitbox()

	for _, e := range r.level.Enemies {
		if hb.Overlaps(e.Hitbox()) {
			events = append(events, EnemyHit{Enemy: e})
		}
	}
	for _, p := range r.level.PowerUps {
		if hb.Overlaps(p.Hitbox()) {
			events = append(events, PowerUpCollected{PowerUp: p})
		}
	}
	if hb.Overlaps(r.level.Goal) {
		events = append(events, GoalReached{})
	}
	return events
}

// MoveProjectile advances a shot one tick, both axes together since shots
// never slide along surfaces: the first thing hit ends the flight.
func (r *Resolver) MoveProjectile(p *entity.Projectile, player *entity.Player) []Event {
	if !p.Active {
		return nil
	}

	p.LifeTicks--
	if p.LifeTicks <= 0 {
		p.Deactivate()
		return nil
	}

	speed := math.Max(math.Abs(p.Vel.X), math.Abs(p.Vel.Y))
	steps := int(math.Ceil(speed / r.substep()))
	if steps == 0 {
		return nil
	}
	stepX := p.Vel.X / float64(steps)
	stepY := p.Vel.Y / float64(steps)

	for i := 0; i < steps; i++ {
		p.Pos.X += stepX
		p.Pos.Y += stepY
		hb := p.Hitbox()

		for _, idx := range r.grid.Query(hb) {
			if hb.Overlaps(r.level.Platforms[idx].Rect) {
				p.Deactivate()
				return []Event{ProjectileBlocked{Projectile: p}}
			}
		}
		if hb.Overlaps(player.Hitbox()) {
			p.Deactivate()
			return []Event{ProjectileHit{Projectile: p}}
		}
	}
	return nil
}

func (r *Resolver) substep() float64 {
	if r.config.SubstepSize <= 0 {
		return 1
	}
	return r.config.SubstepSize
}
