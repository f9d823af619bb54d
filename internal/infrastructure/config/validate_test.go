package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Defaults(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	assert.NoError(t, cfg.Validate())
}

func TestValidate_DefaultsUnderEveryPreset(t *testing.T) {
	for _, preset := range []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard} {
		cfg, err := Default()
		require.NoError(t, err)

		ApplyPreset(cfg.Difficulty, preset)
		assert.NoError(t, cfg.Validate(), "preset %s", preset)
	}
}

func TestValidate_RejectsBrokenConfigs(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*GameConfig)
	}{
		{"zero screen width", func(c *GameConfig) { c.Physics.Display.ScreenWidth = 0 }},
		{"zero tps", func(c *GameConfig) { c.Physics.Display.TPS = 0 }},
		{"zero gravity", func(c *GameConfig) { c.Physics.Movement.Gravity = 0 }},
		{"negative run speed", func(c *GameConfig) { c.Physics.Movement.MaxRunSpeed = -1 }},
		{"positive friction", func(c *GameConfig) { c.Physics.Movement.Friction = 0.1 }},
		{"zero jump speed", func(c *GameConfig) { c.Physics.Jump.Speed = 0 }},
		{"zero substep", func(c *GameConfig) { c.Physics.Collision.SubstepSize = 0 }},
		{"zero cell size", func(c *GameConfig) { c.Physics.Collision.CellSize = 0 }},
		{"zero tier span", func(c *GameConfig) { c.Difficulty.TierSpan = 0 }},
		{"no tiers", func(c *GameConfig) { c.Difficulty.Tiers = nil }},
		{"inverted gap bounds", func(c *GameConfig) { c.Difficulty.Tiers[0].GapMin = c.Difficulty.Tiers[0].GapMax + 1 }},
		{"zero player health", func(c *GameConfig) { c.Entities.Player.Health = 0 }},
		{"health above max", func(c *GameConfig) { c.Entities.Player.Health = c.Entities.Player.MaxHealth + 1 }},
		{"flat player hitbox", func(c *GameConfig) { c.Entities.Player.Hitbox.Height = 0 }},
		{"negative spawn weight", func(c *GameConfig) { c.Entities.PowerUps.Table[0].Weight = -1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Default()
			require.NoError(t, err)

			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestValidate_JumpBoundsMustFitTheArc(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)

	// gravity 0.5 and speed 12 peak at 144 pixels
	cfg.Physics.Jump.MaxJumpHeight = 150
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_jump_height")

	cfg.Physics.Jump.MaxJumpHeight = 140
	cfg.Physics.Jump.MaxJumpDistance = 250 // arc covers 216 at full run speed
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "max_jump_distance")
}

func TestValidate_TierTableMustOnlyRatchetUp(t *testing.T) {
	cfg, err := Default()
	require.NoError(t, err)
	require.Greater(t, len(cfg.Difficulty.Tiers), 1)

	cfg.Difficulty.Tiers[1].EnemyDensity = cfg.Difficulty.Tiers[0].EnemyDensity - 0.1
	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), cfg.Difficulty.Tiers[1].Name)
}

func TestValidate_MissingSection(t *testing.T) {
	cfg := &GameConfig{}
	assert.Error(t, cfg.Validate())
}
