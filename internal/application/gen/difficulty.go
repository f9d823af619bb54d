package gen

import (
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// Params are the resolved generation knobs for one level index.
// ScaleForIndex produces them; Generate consumes them.
type Params struct {
	Tier           int
	TierName       string
	GapMin         float64
	GapMax         float64
	EnemyDensity   float64
	PowerUpDensity float64
	MaxEnemies     int
	PlatformCount  int
}

const (
	basePlatformCount   = 4
	platformGrowthEvery = 3
	maxExtraPlatforms   = 4
)

// ScaleForIndex maps a level index to generation parameters. It is a pure
// lookup: same config and index always yield the same Params. Indexes below
// 1 clamp to 1, and indexes past the last tier stay on the last tier, so
// difficulty never decreases and never grows without bound.
func ScaleForIndex(cfg *config.DifficultyConfig, index int) Params {
	if index < 1 {
		index = 1
	}

	tier := 0
	if index >= 2 && cfg.TierSpan > 0 {
		tier = (index - 2) / cfg.TierSpan
	}
	if tier >= len(cfg.Tiers) {
		tier = len(cfg.Tiers) - 1
	}

	t := cfg.Tiers[tier]
	count := basePlatformCount + min(index/platformGrowthEvery, maxExtraPlatforms)

	return Params{
		Tier:           tier,
		TierName:       t.Name,
		GapMin:         t.GapMin,
		GapMax:         t.GapMax,
		EnemyDensity:   t.EnemyDensity,
		PowerUpDensity: t.PowerUpDensity,
		MaxEnemies:     t.MaxEnemies,
		PlatformCount:  count,
	}
}
