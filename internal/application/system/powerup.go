package system

import (
	"github.com/younwookim/skyrunner/internal/application/gen"
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// Score granted per pickup; coins score per value unit
const (
	pickupScore   = 25
	coinUnitScore = 10
)

// PowerUpSystem applies pickups to the player, counts the timed effects
// down, and runs the in-play spawner that keeps dropping items while a
// level is open.
type PowerUpSystem struct {
	cfg        *config.PowerUpsConfig
	rng        *gen.RNG
	spawnTimer int
}

// NewPowerUpSystem creates the system on the session's RNG stream
func NewPowerUpSystem(cfg *config.EntitiesConfig, rng *gen.RNG) *PowerUpSystem {
	return &PowerUpSystem{
		cfg:        &cfg.PowerUps,
		rng:        rng,
		spawnTimer: cfg.PowerUps.SpawnIntervalTicks,
	}
}

// Apply consumes a pickup and returns the score it grants
func (s *PowerUpSystem) Apply(player *entity.Player, p *entity.PowerUp) int {
	switch p.Variant {
	case entity.PowerSpeedBoost:
		player.SpeedBoostTicks = s.cfg.SpeedBoostTicks
	case entity.PowerJumpBoost:
		player.JumpBoostTicks = s.cfg.JumpBoostTicks
	case entity.PowerHealthPotion:
		player.Heal(s.cfg.HealAmount)
	case entity.PowerCoin:
		player.Coins += p.CoinValue
		return p.CoinValue * coinUnitScore
	case entity.PowerShield:
		player.ShieldTicks = s.cfg.ShieldTicks
	case entity.PowerDoubleJump:
		player.DoubleJumpTicks = s.cfg.DoubleJumpTicks
		player.AirJumpUsed = false
	}
	return pickupScore
}

// Tick counts the timed effects down
func (s *PowerUpSystem) Tick(player *entity.Player) {
	if player.SpeedBoostTicks > 0 {
		player.SpeedBoostTicks--
	}
	if player.JumpBoostTicks > 0 {
		player.JumpBoostTicks--
	}
	if player.ShieldTicks > 0 {
		player.ShieldTicks--
	}
	if player.DoubleJumpTicks > 0 {
		player.DoubleJumpTicks--
	}
}

// TickSpawner counts the spawn interval down and, when it fires, drops a
// fresh pickup above a random platform. Returns the new pickup, or nil.
func (s *PowerUpSystem) TickSpawner(lvl *entity.Level) *entity.PowerUp {
	if s.cfg.SpawnIntervalTicks <= 0 || len(lvl.Platforms) == 0 {
		return nil
	}

	s.spawnTimer--
	if s.spawnTimer > 0 {
		return nil
	}
	s.spawnTimer = s.cfg.SpawnIntervalTicks

	plat := lvl.Platforms[s.rng.Intn(len(lvl.Platforms))]
	p := gen.PlacePowerUpOn(s.rng, s.cfg, plat)
	lvl.AddPowerUp(p)
	return p
}
