package config

// LevelsConfig is the root config for levels.yaml: hand-authored
// layouts keyed by level index. Index 1 is the onboarding level the
// generator returns verbatim instead of running the procedural build.
type LevelsConfig struct {
	Authored map[int]AuthoredLevelConfig `yaml:"authored"`
}

type AuthoredLevelConfig struct {
	Name        string              `yaml:"name"`
	Bounds      RectConfig          `yaml:"bounds"`
	PlayerSpawn PositionConfig      `yaml:"player_spawn"`
	Platforms   []RectConfig        `yaml:"platforms"`
	Goal        RectConfig          `yaml:"goal"`
	Enemies     []EnemySpawnConfig  `yaml:"enemies"`
	PowerUps    []PowerUpSpawnPoint `yaml:"powerups"`
}

type RectConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type EnemySpawnConfig struct {
	Variant     string  `yaml:"variant"`
	X           float64 `yaml:"x"`
	Y           float64 `yaml:"y"`
	FacingRight bool    `yaml:"facing_right"`
}

type PowerUpSpawnPoint struct {
	Variant string  `yaml:"variant"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
}
