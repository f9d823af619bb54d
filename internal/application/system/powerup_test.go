package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/skyrunner/internal/application/gen"
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

func createTestPowerUpSystem(table ...config.PowerUpSpawnConfig) *PowerUpSystem {
	return NewPowerUpSystem(&config.EntitiesConfig{
		PowerUps: config.PowerUpsConfig{
			Size:               config.Size{Width: 16, Height: 16},
			SpawnIntervalTicks: 3,
			OffsetAbove:        8,
			EdgeInset:          10,
			Table:              table,
			SpeedMultiplier:    1.5,
			SpeedBoostTicks:    300,
			JumpBoostTicks:     300,
			ShieldTicks:        300,
			DoubleJumpTicks:    600,
			HealAmount:         1,
			SilverChance:       5,
			GoldChance:         20,
		},
	}, gen.NewRNG(7))
}

// ==== Apply ====

func TestApplyGrantsEffect(t *testing.T) {
	tests := []struct {
		name      string
		pickup    *entity.PowerUp
		wantScore int
		check     func(t *testing.T, player *entity.Player)
	}{
		{
			name:      "speed boost",
			pickup:    &entity.PowerUp{Variant: entity.PowerSpeedBoost},
			wantScore: 25,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 300, player.SpeedBoostTicks)
			},
		},
		{
			name:      "jump boost",
			pickup:    &entity.PowerUp{Variant: entity.PowerJumpBoost},
			wantScore: 25,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 300, player.JumpBoostTicks)
			},
		},
		{
			name:      "health potion",
			pickup:    &entity.PowerUp{Variant: entity.PowerHealthPotion},
			wantScore: 25,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 4, player.Health)
			},
		},
		{
			name:      "shield",
			pickup:    &entity.PowerUp{Variant: entity.PowerShield},
			wantScore: 25,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 300, player.ShieldTicks)
				assert.True(t, player.IsInvincible())
			},
		},
		{
			name:      "double jump",
			pickup:    &entity.PowerUp{Variant: entity.PowerDoubleJump},
			wantScore: 25,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 600, player.DoubleJumpTicks)
				assert.False(t, player.AirJumpUsed)
			},
		},
		{
			name:      "silver coin",
			pickup:    &entity.PowerUp{Variant: entity.PowerCoin, CoinValue: 2},
			wantScore: 20,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 2, player.Coins)
			},
		},
		{
			name:      "gold coin",
			pickup:    &entity.PowerUp{Variant: entity.PowerCoin, CoinValue: 3},
			wantScore: 30,
			check: func(t *testing.T, player *entity.Player) {
				assert.Equal(t, 3, player.Coins)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sys := createTestPowerUpSystem()
			player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
			player.AirJumpUsed = true

			score := sys.Apply(player, tt.pickup)

			assert.Equal(t, tt.wantScore, score)
			tt.check(t, player)
		})
	}
}

func TestApplyHealCapsAtMaxHealth(t *testing.T) {
	sys := createTestPowerUpSystem()
	player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
	player.Health = 5

	sys.Apply(player, &entity.PowerUp{Variant: entity.PowerHealthPotion})

	assert.Equal(t, 5, player.Health)
}

func TestTickCountsEffectsDown(t *testing.T) {
	sys := createTestPowerUpSystem()
	player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
	player.SpeedBoostTicks = 2
	player.JumpBoostTicks = 2
	player.ShieldTicks = 2
	player.DoubleJumpTicks = 2

	sys.Tick(player)
	assert.Equal(t, 1, player.SpeedBoostTicks)
	assert.Equal(t, 1, player.JumpBoostTicks)
	assert.Equal(t, 1, player.ShieldTicks)
	assert.Equal(t, 1, player.DoubleJumpTicks)

	sys.Tick(player)
	sys.Tick(player) // expired timers stay at zero
	assert.Equal(t, 0, player.SpeedBoostTicks)
	assert.Equal(t, 0, player.JumpBoostTicks)
	assert.Equal(t, 0, player.ShieldTicks)
	assert.Equal(t, 0, player.DoubleJumpTicks)
}

// ==== Spawner ====

func TestTickSpawnerDropsOnInterval(t *testing.T) {
	sys := createTestPowerUpSystem(config.PowerUpSpawnConfig{Variant: "speed_boost", Weight: 1})
	lvl := createTestLevelWith(
		entity.Platform{Rect: entity.Rect{X: 100, Y: 400, W: 200, H: 20}},
	)

	assert.Nil(t, sys.TickSpawner(lvl))
	assert.Nil(t, sys.TickSpawner(lvl))

	p := sys.TickSpawner(lvl)
	require.NotNil(t, p)
	assert.Equal(t, entity.PowerSpeedBoost, p.Variant)
	assert.Equal(t, 376.0, p.Pos.Y) // platform top minus hover offset and height
	assert.GreaterOrEqual(t, p.Pos.X, 110.0)
	assert.LessOrEqual(t, p.Pos.X, 274.0)
	require.Len(t, lvl.PowerUps, 1)
	assert.Same(t, p, lvl.PowerUps[0])

	// The interval restarts after each drop
	assert.Nil(t, sys.TickSpawner(lvl))
	assert.Nil(t, sys.TickSpawner(lvl))
	assert.NotNil(t, sys.TickSpawner(lvl))
	assert.Len(t, lvl.PowerUps, 2)
}

func TestTickSpawnerDisabled(t *testing.T) {
	t.Run("zero interval", func(t *testing.T) {
		sys := createTestPowerUpSystem(config.PowerUpSpawnConfig{Variant: "coin", Weight: 1})
		sys.cfg.SpawnIntervalTicks = 0
		lvl := createTestLevelWith(
			entity.Platform{Rect: entity.Rect{X: 100, Y: 400, W: 200, H: 20}},
		)

		for i := 0; i < 10; i++ {
			assert.Nil(t, sys.TickSpawner(lvl))
		}
	})

	t.Run("no platforms", func(t *testing.T) {
		sys := createTestPowerUpSystem(config.PowerUpSpawnConfig{Variant: "coin", Weight: 1})
		lvl := &entity.Level{}

		for i := 0; i < 10; i++ {
			assert.Nil(t, sys.TickSpawner(lvl))
		}
	})
}
