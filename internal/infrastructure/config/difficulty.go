package config

// DifficultyPreset names a base difficulty selection
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ValidPreset reports whether s names a known preset
func ValidPreset(s string) bool {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return true
	}
	return false
}

// DifficultyConfig is the root config for difficulty.yaml.
// The tier table must be authored monotonically: gap bounds and enemy
// density never decrease from one tier to the next.
type DifficultyConfig struct {
	TierSpan      int                      `yaml:"tier_span"`      // level indexes per tier
	ReachFraction float64                  `yaml:"reach_fraction"` // of the max jump distance
	Tiers         []DifficultyTier         `yaml:"tiers"`
	Presets       map[string]PresetScaling `yaml:"presets"`
}

// DifficultyTier is one named bucket of generation parameters
type DifficultyTier struct {
	Name           string  `yaml:"name"`
	GapMin         float64 `yaml:"gap_min"`
	GapMax         float64 `yaml:"gap_max"`
	EnemyDensity   float64 `yaml:"enemy_density"`
	PowerUpDensity float64 `yaml:"powerup_density"`
	MaxEnemies     int     `yaml:"max_enemies"`
}

// PresetScaling adjusts tier parameters for a difficulty preset
type PresetScaling struct {
	GapScale     float64 `yaml:"gap_scale"`
	EnemyScale   float64 `yaml:"enemy_scale"`
	PowerUpScale float64 `yaml:"powerup_scale"`
}

// ApplyPreset scales the tier table in place for the given preset.
// Presets without an entry (normal, typically) leave the table as is.
func ApplyPreset(cfg *DifficultyConfig, preset DifficultyPreset) {
	scaling, ok := cfg.Presets[string(preset)]
	if !ok {
		return
	}
	for i := range cfg.Tiers {
		t := &cfg.Tiers[i]
		if scaling.GapScale > 0 {
			t.GapMin *= scaling.GapScale
			t.GapMax *= scaling.GapScale
		}
		if scaling.EnemyScale > 0 {
			t.EnemyDensity *= scaling.EnemyScale
		}
		if scaling.PowerUpScale > 0 {
			t.PowerUpDensity *= scaling.PowerUpScale
		}
	}
}
