package system

import (
	"math"

	"github.com/younwookim/skyrunner/internal/application/gen"
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// Steering is what a behavior wants its enemy to do this tick. Behaviors
// decide; the behavior system applies, and the shared integrator and
// resolver move the body like any other.
type Steering struct {
	VelX        float64
	SetVelX     bool
	FacingRight bool
	JumpImpulse float64 // upward speed, applied only while grounded
	Fire        bool    // shooter: spawn a shot toward the facing side
}

// Behavior steers one enemy variant
type Behavior interface {
	Decide(e *entity.Enemy, player *entity.Player, r *gen.RNG) Steering
}

// BehaviorSystem runs the per-variant behaviors and applies their
// steering. Shots spawned by shooters are returned for the session to
// track.
type BehaviorSystem struct {
	projectile config.ProjectileConfig
	behaviors  map[entity.EnemyVariant]Behavior
	rng        *gen.RNG
}

// NewBehaviorSystem creates the behavior table. The RNG stream must be
// the session's: behavior jitter is part of what a replay reproduces.
func NewBehaviorSystem(cfg *config.EntitiesConfig, rng *gen.RNG) *BehaviorSystem {
	return &BehaviorSystem{
		projectile: cfg.Projectile,
		behaviors: map[entity.EnemyVariant]Behavior{
			entity.EnemyChaser:  ChaserBehavior{},
			entity.EnemyPatrol:  PatrolBehavior{},
			entity.EnemyJumper:  JumperBehavior{},
			entity.EnemyShooter: ShooterBehavior{},
		},
		rng: rng,
	}
}

// Update steers every enemy and returns any shots fired this tick
func (s *BehaviorSystem) Update(enemies []*entity.Enemy, player *entity.Player) []*entity.Projectile {
	var shots []*entity.Projectile
	for _, e := range enemies {
		behavior, ok := s.behaviors[e.Variant]
		if !ok {
			continue
		}
		st := behavior.Decide(e, player, s.rng)

		if st.SetVelX {
			e.Vel.X = st.VelX
		}
		e.FacingRight = st.FacingRight
		if st.JumpImpulse > 0 && e.OnGround {
			e.Vel.Y = -st.JumpImpulse
		}
		if st.Fire {
			shots = append(shots, s.spawnShot(e))
		}
	}
	return shots
}

// spawnShot fires a level shot from the enemy's center toward its facing
func (s *BehaviorSystem) spawnShot(e *entity.Enemy) *entity.Projectile {
	hb := e.Hitbox()
	dir := -1.0
	if e.FacingRight {
		dir = 1
	}

	size := entity.Vec2{X: s.projectile.Size.Width, Y: s.projectile.Size.Height}
	pos := entity.Vec2{
		X: hb.X + hb.W/2 - size.X/2 + dir*hb.W,
		Y: hb.Y + hb.H/2 - size.Y/2,
	}
	vel := entity.Vec2{X: dir * e.ProjectileSpeed, Y: 0}

	return entity.NewProjectile(pos, vel, size, s.projectile.Damage, s.projectile.LifeTicks)
}

// ChaserBehavior walks toward the player inside its detect range and hops
// when the player stands well above it
type ChaserBehavior struct{}

const chaserHopHeight = 40.0

func (ChaserBehavior) Decide(e *entity.Enemy, player *entity.Player, _ *gen.RNG) Steering {
	dx := player.Pos.X - e.Pos.X
	dy := player.Pos.Y - e.Pos.Y
	if math.Sqrt(dx*dx+dy*dy) > e.DetectRange {
		return Steering{SetVelX: true, FacingRight: e.FacingRight}
	}

	st := Steering{SetVelX: true, FacingRight: dx > 0}
	if dx > 0 {
		st.VelX = e.MoveSpeed
	} else if dx < 0 {
		st.VelX = -e.MoveSpeed
	}
	if dy < -chaserHopHeight {
		st.JumpImpulse = e.HopSpeed
	}
	return st
}

// PatrolBehavior walks back and forth around its spawn point
type PatrolBehavior struct{}

func (PatrolBehavior) Decide(e *entity.Enemy, _ *entity.Player, _ *gen.RNG) Steering {
	if e.PatrolDir > 0 && e.Pos.X-e.PatrolOrigin > e.PatrolRange {
		e.PatrolDir = -1
	} else if e.PatrolDir < 0 && e.PatrolOrigin-e.Pos.X > e.PatrolRange {
		e.PatrolDir = 1
	}
	// Walls also turn patrols around
	if e.OnWallLeft {
		e.PatrolDir = 1
	} else if e.OnWallRight {
		e.PatrolDir = -1
	}

	return Steering{
		VelX:        e.PatrolDir * e.MoveSpeed,
		SetVelX:     true,
		FacingRight: e.PatrolDir > 0,
	}
}

// JumperBehavior sits still and springs upward on a jittered cadence
type JumperBehavior struct{}

func (JumperBehavior) Decide(e *entity.Enemy, _ *entity.Player, r *gen.RNG) Steering {
	st := Steering{SetVelX: true, FacingRight: e.FacingRight}

	e.ActionTicks--
	if e.ActionTicks <= 0 && e.OnGround {
		st.JumpImpulse = e.JumpSpeed
		e.ActionTicks = r.IntRange(e.MinActionTicks, e.MaxActionTicks)
	}
	return st
}

// ShooterBehavior holds position, tracks the player, and fires on a fixed
// cadence while the player is in range
type ShooterBehavior struct{}

func (ShooterBehavior) Decide(e *entity.Enemy, player *entity.Player, _ *gen.RNG) Steering {
	dx := player.Pos.X - e.Pos.X
	st := Steering{SetVelX: true, FacingRight: dx > 0}

	e.ActionTicks--
	if e.ActionTicks <= 0 {
		if math.Abs(dx) <= e.AttackRange {
			st.Fire = true
		}
		e.ActionTicks = e.MaxActionTicks
	}
	return st
}
