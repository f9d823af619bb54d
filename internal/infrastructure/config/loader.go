package config

import (
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// GameConfig holds all loaded configurations
type GameConfig struct {
	Physics    *PhysicsConfig
	Difficulty *DifficultyConfig
	Entities   *EntitiesConfig
	Levels     *LevelsConfig
}

// Loader loads game configuration from YAML files using the fs.FS interface
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a config loader rooted at a filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{fsys: os.DirFS(basePath)}
}

// NewFSLoader creates a config loader from an fs.FS
func NewFSLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// ResolveLoader picks the config source.
// Search order: explicit dir -> ./configs if present -> embedded defaults.
func ResolveLoader(customDir string) *Loader {
	if customDir != "" {
		return NewLoader(customDir)
	}
	if info, err := os.Stat("configs"); err == nil && info.IsDir() {
		return NewLoader("configs")
	}
	return NewFSLoader(defaultsFS())
}

func (l *Loader) load(name string, out any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadPhysics loads physics.yaml
func (l *Loader) LoadPhysics() (*PhysicsConfig, error) {
	var cfg PhysicsConfig
	if err := l.load("physics.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadDifficulty loads difficulty.yaml
func (l *Loader) LoadDifficulty() (*DifficultyConfig, error) {
	var cfg DifficultyConfig
	if err := l.load("difficulty.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadEntities loads entities.yaml
func (l *Loader) LoadEntities() (*EntitiesConfig, error) {
	var cfg EntitiesConfig
	if err := l.load("entities.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadLevels loads levels.yaml
func (l *Loader) LoadLevels() (*LevelsConfig, error) {
	var cfg LevelsConfig
	if err := l.load("levels.yaml", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads every configuration file
func (l *Loader) LoadAll() (*GameConfig, error) {
	physics, err := l.LoadPhysics()
	if err != nil {
		return nil, err
	}

	difficulty, err := l.LoadDifficulty()
	if err != nil {
		return nil, err
	}

	entities, err := l.LoadEntities()
	if err != nil {
		return nil, err
	}

	levels, err := l.LoadLevels()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Physics:    physics,
		Difficulty: difficulty,
		Entities:   entities,
		Levels:     levels,
	}, nil
}
