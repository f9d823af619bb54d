package system

import "github.com/younwookim/skyrunner/internal/domain/entity"

// Event is something the resolver observed while committing movement.
// The resolver only reports; damage, pickups, and state transitions are
// applied by whoever consumes the slice.
type Event interface {
	isEvent()
}

// PlatformLanding fires when a body transitions from airborne to grounded
type PlatformLanding struct {
	Platform int // index into Level.Platforms
}

func (PlatformLanding) isEvent() {}

// EnemyHit fires when the player hitbox overlaps an enemy hitbox
type EnemyHit struct {
	Enemy *entity.Enemy
}

func (EnemyHit) isEvent() {}

// PowerUpCollected fires when the player hitbox overlaps a pickup
type PowerUpCollected struct {
	PowerUp *entity.PowerUp
}

func (PowerUpCollected) isEvent() {}

// GoalReached fires when the player hitbox overlaps the goal
type GoalReached struct{}

func (GoalReached) isEvent() {}

// ProjectileBlocked fires when a shot hits a platform and despawns
type ProjectileBlocked struct {
	Projectile *entity.Projectile
}

func (ProjectileBlocked) isEvent() {}

// ProjectileHit fires when a shot overlaps the player
type ProjectileHit struct {
	Projectile *entity.Projectile
}

func (ProjectileHit) isEvent() {}

// VoidFall fires when a body drops below the level bounds
type VoidFall struct{}

func (VoidFall) isEvent() {}

// PlayerDied fires when damage brings the player to zero health.
// Emitted by the session, not the resolver.
type PlayerDied struct{}

func (PlayerDied) isEvent() {}
