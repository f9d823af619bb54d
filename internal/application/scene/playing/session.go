package playing

import (
	"github.com/younwookim/skyrunner/internal/application/gen"
	"github.com/younwookim/skyrunner/internal/application/state"
	"github.com/younwookim/skyrunner/internal/application/system"
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

const (
	// Ticks spent on the level-complete splash before the next level loads
	levelTransitionTicks = 60

	// Score granted for touching the goal
	levelClearScore = 100
)

// Snapshot is the persistence view of a finished or in-flight run
type Snapshot struct {
	Score        int
	Coins        int
	LevelReached int
	Seed         int64
}

// Session is one run of the game: the current level, the player, the
// live projectiles, and the state machine that strings levels together.
// It is pure simulation — no rendering, no input devices, no clocks —
// so a recorded input stream drives it to the same result every time.
type Session struct {
	cfg *config.GameConfig

	state      state.GameState
	seed       int64
	startLevel int
	tick       int
	delay      int

	level       *entity.Level
	player      *entity.Player
	projectiles []*entity.Projectile

	generator *gen.Generator
	physics   *system.PhysicsSystem
	input     *system.InputSystem
	behavior  *system.BehaviorSystem
	powerups  *system.PowerUpSystem
	combat    *system.CombatSystem
	resolver  *system.Resolver
	rng       *gen.RNG
}

// NewSession generates the starting level and readies the systems.
// All in-run randomness (enemy jitter, the pickup spawner) derives from
// the seed, never from wall clocks.
func NewSession(cfg *config.GameConfig, seed int64, startLevel int) (*Session, error) {
	s := &Session{
		cfg:        cfg,
		state:      state.StateLoading,
		seed:       seed,
		startLevel: startLevel,
		generator:  gen.New(cfg),
		physics:    system.NewPhysicsSystem(cfg.Physics),
		input:      system.NewInputSystem(cfg),
		combat:     system.NewCombatSystem(cfg.Physics),
		rng:        gen.NewRNG(uint64(seed)),
	}
	s.behavior = system.NewBehaviorSystem(cfg.Entities, s.rng)
	s.powerups = system.NewPowerUpSystem(cfg.Entities, s.rng)

	if err := s.loadLevel(startLevel); err != nil {
		return nil, err
	}
	return s, nil
}

// loadLevel generates the level and rebuilds everything scoped to it.
// The player persists across levels; health, coins, score, and running
// effect timers carry over.
func (s *Session) loadLevel(index int) error {
	params := gen.ScaleForIndex(s.cfg.Difficulty, index)
	lvl, err := s.generator.Generate(index, s.seed, params)
	if err != nil {
		return err
	}

	s.level = lvl
	s.resolver = system.NewResolver(s.cfg.Physics, lvl)
	s.projectiles = s.projectiles[:0]

	if s.player == nil {
		s.player = s.newPlayer(lvl.PlayerSpawn)
	} else {
		s.player.SpawnPos = lvl.PlayerSpawn
		s.player.Respawn()
	}

	s.state = state.StatePlaying
	return nil
}

func (s *Session) newPlayer(spawn entity.Vec2) *entity.Player {
	p := s.cfg.Entities.Player
	return entity.NewPlayer(
		spawn,
		entity.Vec2{X: p.Hitbox.OffsetX, Y: p.Hitbox.OffsetY},
		entity.Vec2{X: p.Hitbox.Width, Y: p.Hitbox.Height},
		entity.Vec2{X: p.Render.Width, Y: p.Render.Height},
		p.Health, p.MaxHealth,
	)
}

// Step advances the session by one tick and returns what happened.
// Only the Playing state simulates; the others wait for their trigger.
func (s *Session) Step(in system.InputState) ([]system.Event, error) {
	switch s.state {
	case state.StatePlaying:
		return s.stepPlaying(in)

	case state.StatePaused:
		if in.PausePressed {
			s.state = state.StatePlaying
		}
		return nil, nil

	case state.StateLevelComplete:
		s.delay--
		if s.delay <= 0 {
			return nil, s.loadLevel(s.level.Index + 1)
		}
		return nil, nil

	case state.StateGameOver:
		if in.RestartPressed {
			return nil, s.restart()
		}
		return nil, nil
	}
	return nil, nil
}

func (s *Session) stepPlaying(in system.InputState) ([]system.Event, error) {
	if in.PausePressed {
		s.state = state.StatePaused
		return nil, nil
	}
	s.tick++

	s.input.Apply(s.player, in)

	// Enemy steering runs before integration so impulses land this tick
	s.projectiles = append(s.projectiles, s.behavior.Update(s.level.Enemies, s.player)...)

	delta := s.physics.Integrate(&s.player.Body, s.input.EffectiveMaxRun(s.player))
	events := s.resolver.Move(&s.player.Body, delta)

	s.moveEnemies()
	events = append(events, s.moveProjectiles()...)

	for _, ev := range events {
		if _, ok := ev.(system.VoidFall); ok {
			if s.combat.ApplyVoidFall(s.player) {
				return s.gameOver(events), nil
			}
		}
		if hit, ok := ev.(system.ProjectileHit); ok {
			if s.combat.ApplyProjectileHit(s.player, hit.Projectile) {
				return s.gameOver(events), nil
			}
		}
	}

	contacts := s.resolver.Contacts(s.player)
	events = append(events, contacts...)
	for _, ev := range contacts {
		switch c := ev.(type) {
		case system.EnemyHit:
			if s.combat.ApplyEnemyContact(s.player, c.Enemy) {
				return s.gameOver(events), nil
			}
		case system.PowerUpCollected:
			s.player.Score += s.powerups.Apply(s.player, c.PowerUp)
			s.level.RemovePowerUp(c.PowerUp)
		case system.GoalReached:
			s.player.Score += levelClearScore
			s.state = state.StateLevelComplete
			s.delay = levelTransitionTicks
			return events, nil
		}
	}

	s.combat.TickTimers(s.player)
	s.powerups.Tick(s.player)
	s.powerups.TickSpawner(s.level)

	return events, nil
}

// moveEnemies advances every enemy body through the shared resolver.
// Enemies that drop out of the level are removed, not respawned.
func (s *Session) moveEnemies() {
	var fallen []*entity.Enemy
	for _, e := range s.level.Enemies {
		delta := s.physics.IntegrateGravity(&e.Body)
		for _, ev := range s.resolver.Move(&e.Body, delta) {
			if _, ok := ev.(system.VoidFall); ok {
				fallen = append(fallen, e)
			}
		}
	}
	for _, e := range fallen {
		s.level.RemoveEnemy(e)
	}
}

// moveProjectiles advances live shots and sweeps out the spent ones
func (s *Session) moveProjectiles() []system.Event {
	var events []system.Event
	kept := s.projectiles[:0]
	for _, p := range s.projectiles {
		events = append(events, s.resolver.MoveProjectile(p, s.player)...)
		if p.Active {
			kept = append(kept, p)
		}
	}
	s.projectiles = kept
	return events
}

func (s *Session) gameOver(events []system.Event) []system.Event {
	s.state = state.StateGameOver
	return append(events, system.PlayerDied{})
}

// restart rebuilds the run from the start level with the same seed, so a
// restarted recording still replays
func (s *Session) restart() error {
	s.player = nil
	s.tick = 0
	s.rng = gen.NewRNG(uint64(s.seed))
	s.behavior = system.NewBehaviorSystem(s.cfg.Entities, s.rng)
	s.powerups = system.NewPowerUpSystem(s.cfg.Entities, s.rng)
	return s.loadLevel(s.startLevel)
}

// State returns the current machine state
func (s *Session) State() state.GameState {
	return s.state
}

// Level returns the level currently in play
func (s *Session) Level() *entity.Level {
	return s.level
}

// Player returns the player entity
func (s *Session) Player() *entity.Player {
	return s.player
}

// Projectiles returns the live shots
func (s *Session) Projectiles() []*entity.Projectile {
	return s.projectiles
}

// Combat exposes the combat system so the shell can hook feedback
func (s *Session) Combat() *system.CombatSystem {
	return s.combat
}

// Seed returns the world seed
func (s *Session) Seed() int64 {
	return s.seed
}

// Tick returns the number of simulated ticks
func (s *Session) Tick() int {
	return s.tick
}

// Snapshot returns the run's persistence view
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Score:        s.player.Score,
		Coins:        s.player.Coins,
		LevelReached: s.level.Index,
		Seed:         s.seed,
	}
}
