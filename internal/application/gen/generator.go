package gen

import (
	"errors"
	"fmt"
	"math"

	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// ErrDegenerateParams means the physics and difficulty parameters admit no
// traversable level. Generation fails instead of emitting a layout the
// player cannot clear.
var ErrDegenerateParams = errors.New("degenerate generation parameters")

const (
	// Procedural layout constants. The vertical band keeps platform tops
	// on screen; everything horizontal is derived from the jump physics.
	startPlatformWidth = 160.0
	platformThickness  = 20.0
	minPlatformWidth   = 60.0
	maxPlatformWidth   = 120.0
	bandTop            = 140.0
	bandBottom         = 520.0

	spawnInsetX = 30.0
	goalWidth   = 20.0
	goalHeight  = 20.0
	goalInset   = 10.0

	enemyEdgeInset = 12.0

	// Stepping stones appear in wide gaps past this level index
	stoneUnlockLevel = 8
	maxStones        = 3
	stoneWidth       = 48.0
	stoneMinGap      = 16.0

	headroom   = 160.0
	voidDepth  = 80.0
	boundsPadX = 40.0

	seedMix = 0x9E3779B97F4A7C15
)

// Generator builds levels from the loaded config. Index 1 (and any other
// index with an authored layout) comes from levels.yaml; the rest are
// procedural: a left-to-right platform chain whose gaps and rises are
// clamped to what the movement constants can clear, so a generated level
// never needs a retry loop to be solvable.
type Generator struct {
	physics    *config.PhysicsConfig
	difficulty *config.DifficultyConfig
	entities   *config.EntitiesConfig
	levels     *config.LevelsConfig
}

// New creates a generator over the loaded config
func New(cfg *config.GameConfig) *Generator {
	return &Generator{
		physics:    cfg.Physics,
		difficulty: cfg.Difficulty,
		entities:   cfg.Entities,
		levels:     cfg.Levels,
	}
}

// Generate builds the level for the given index. The same index, seed, and
// params always produce the same level, down to enemy facing and power-up
// positions. Indexes below 1 clamp to 1.
func (g *Generator) Generate(index int, seed int64, params Params) (*entity.Level, error) {
	if index < 1 {
		index = 1
	}
	if err := g.validate(params); err != nil {
		return nil, err
	}

	r := NewRNG(uint64(seed) ^ uint64(index)*seedMix)

	if layout, ok := g.levels.Authored[index]; ok {
		return g.buildAuthored(index, seed, layout, r)
	}
	return g.buildProcedural(index, seed, params, r), nil
}

func (g *Generator) validate(params Params) error {
	m := g.physics.Movement
	j := g.physics.Jump
	switch {
	case m.Gravity <= 0:
		return fmt.Errorf("%w: gravity %.2f", ErrDegenerateParams, m.Gravity)
	case m.MaxRunSpeed <= 0:
		return fmt.Errorf("%w: max run speed %.2f", ErrDegenerateParams, m.MaxRunSpeed)
	case j.Speed <= 0:
		return fmt.Errorf("%w: jump speed %.2f", ErrDegenerateParams, j.Speed)
	case j.MaxJumpHeight <= 0:
		return fmt.Errorf("%w: max jump height %.2f", ErrDegenerateParams, j.MaxJumpHeight)
	case j.MaxJumpDistance <= 0:
		return fmt.Errorf("%w: max jump distance %.2f", ErrDegenerateParams, j.MaxJumpDistance)
	case g.difficulty.ReachFraction <= 0:
		return fmt.Errorf("%w: reach fraction %.2f", ErrDegenerateParams, g.difficulty.ReachFraction)
	case params.GapMax <= 0:
		return fmt.Errorf("%w: max gap %.2f", ErrDegenerateParams, params.GapMax)
	case params.PlatformCount < 2:
		return fmt.Errorf("%w: platform count %d", ErrDegenerateParams, params.PlatformCount)
	}
	return nil
}

// ==== Jump envelope ====

// MaxRise is the largest upward step the generator will place, in pixels.
// The physical ceiling is speed^2 / 2g; the configured bound and the reach
// fraction shave it down so landings keep a margin.
func (g *Generator) MaxRise() float64 {
	j := g.physics.Jump
	derived := j.Speed * j.Speed / (2 * g.physics.Movement.Gravity)
	return g.difficulty.ReachFraction * math.Min(j.MaxJumpHeight, derived)
}

// maxGapFor bounds the horizontal gap for a step that rises by rise pixels
// (negative rise is a drop). A rising jump spends part of its airtime
// climbing, so the clearable distance shrinks as the rise grows.
func (g *Generator) maxGapFor(rise float64, params Params) float64 {
	m := g.physics.Movement
	j := g.physics.Jump

	disc := j.Speed*j.Speed - 2*m.Gravity*rise
	if disc < 0 {
		disc = 0
	}
	airTicks := (j.Speed + math.Sqrt(disc)) / m.Gravity
	reach := math.Min(m.MaxRunSpeed*airTicks, j.MaxJumpDistance)

	return math.Min(params.GapMax, g.difficulty.ReachFraction*reach)
}

// ==== Procedural build ====

func (g *Generator) buildProcedural(index int, seed int64, params Params, r *RNG) *entity.Level {
	platforms := make([]entity.Platform, 0, params.PlatformCount+maxStones)
	platforms = append(platforms, entity.Platform{
		Rect: entity.Rect{X: 0, Y: bandBottom, W: startPlatformWidth, H: platformThickness},
	})

	maxRise := g.MaxRise()
	for i := 1; i < params.PlatformCount; i++ {
		prev := platforms[len(platforms)-1]

		width := r.FloatRange(minPlatformWidth, maxPlatformWidth)
		top := clamp(prev.Y-r.FloatRange(-maxRise, maxRise), bandTop, bandBottom)
		rise := prev.Y - top

		gapHi := g.maxGapFor(rise, params)
		gapLo := math.Min(params.GapMin, gapHi)
		gap := r.FloatRange(gapLo, gapHi)

		platforms = append(platforms, entity.Platform{
			Rect: entity.Rect{X: prev.Right() + gap, Y: top, W: width, H: platformThickness},
		})
	}

	if index > stoneUnlockLevel {
		platforms = g.insertStones(r, platforms, index, params)
	}

	goalIdx := len(platforms) - 1
	last := platforms[goalIdx]
	goal := entity.Rect{
		X: last.Right() - goalWidth - goalInset,
		Y: last.Y - goalHeight,
		W: goalWidth,
		H: goalHeight,
	}

	enemies, occupied := g.placeEnemies(r, platforms, goalIdx, index, params)

	lvl := &entity.Level{
		Index:        index,
		Seed:         seed,
		PlayerSpawn:  g.spawnOn(platforms[0]),
		Platforms:    platforms,
		Enemies:      enemies,
		PowerUps:     g.placePowerUps(r, platforms, occupied, params),
		Goal:         goal,
		GoalPlatform: goalIdx,
	}
	lvl.Bounds = levelBounds(platforms)
	return lvl
}

// insertStones drops small stepping platforms into the widest gaps. Each
// sub-gap and sub-rise is re-checked against the jump envelope; a stone
// that would break the chain is skipped rather than forced.
func (g *Generator) insertStones(r *RNG, platforms []entity.Platform, index int, params Params) []entity.Platform {
	budget := min(index-stoneUnlockLevel, maxStones)
	maxRise := g.MaxRise()

	out := make([]entity.Platform, 0, len(platforms)+budget)
	out = append(out, platforms[0])

	for i := 1; i < len(platforms); i++ {
		prev := out[len(out)-1]
		next := platforms[i]
		gap := next.X - prev.Right()

		if budget > 0 && gap >= stoneWidth+2*stoneMinGap && r.Float() < 0.5 {
			lo := clamp(math.Max(prev.Y, next.Y)-maxRise, bandTop, bandBottom)
			hi := clamp(math.Min(prev.Y, next.Y)+maxRise, bandTop, bandBottom)
			top := r.FloatRange(lo, hi)
			x := prev.Right() + (gap-stoneWidth)/2

			leftOK := x-prev.Right() <= g.maxGapFor(prev.Y-top, params)
			rightOK := next.X-(x+stoneWidth) <= g.maxGapFor(top-next.Y, params)
			if leftOK && rightOK {
				out = append(out, entity.Platform{
					Rect: entity.Rect{X: x, Y: top, W: stoneWidth, H: platformThickness},
				})
				budget--
			}
		}
		out = append(out, next)
	}
	return out
}

// ==== Placement ====

// placeEnemies rolls the spawn table over the interior platforms. The spawn
// platform and the goal platform always stay clear. Returns the enemies and
// the set of platform indexes they stand on.
func (g *Generator) placeEnemies(r *RNG, platforms []entity.Platform, goalIdx, index int, params Params) ([]*entity.Enemy, map[int]bool) {
	occupied := make(map[int]bool)
	rows := unlockedEnemies(g.entities.Enemies, index)
	if len(rows) == 0 || params.MaxEnemies <= 0 {
		return nil, occupied
	}

	var enemies []*entity.Enemy
	for i, plat := range platforms {
		if i == 0 || i == goalIdx {
			continue
		}
		if len(enemies) >= params.MaxEnemies {
			break
		}
		if r.Float() >= params.EnemyDensity {
			continue
		}

		row := rollEnemy(r, rows)
		if plat.W < row.cfg.Size.Width+2*enemyEdgeInset {
			continue
		}
		x := r.FloatRange(plat.X+enemyEdgeInset, plat.Right()-enemyEdgeInset-row.cfg.Size.Width)
		pos := entity.Vec2{X: x, Y: plat.Y - row.cfg.Size.Height}

		enemies = append(enemies, buildEnemy(r, row, pos))
		occupied[i] = true
	}
	return enemies, occupied
}

// placePowerUps rolls pickups over every platform past the spawn one.
// Platforms holding an enemy still qualify at half density, so items lean
// toward safe ground without guaranteeing it.
func (g *Generator) placePowerUps(r *RNG, platforms []entity.Platform, occupied map[int]bool, params Params) []*entity.PowerUp {
	var out []*entity.PowerUp
	for i, plat := range platforms {
		if i == 0 {
			continue
		}
		density := params.PowerUpDensity
		if occupied[i] {
			density /= 2
		}
		if r.Float() >= density {
			continue
		}
		out = append(out, PlacePowerUpOn(r, &g.entities.PowerUps, plat))
	}
	return out
}

func (g *Generator) spawnOn(plat entity.Platform) entity.Vec2 {
	return entity.Vec2{X: plat.X + spawnInsetX, Y: plat.Y - g.entities.Player.Render.Height}
}

// ==== Authored levels ====

func (g *Generator) buildAuthored(index int, seed int64, layout config.AuthoredLevelConfig, r *RNG) (*entity.Level, error) {
	lvl := &entity.Level{
		Index:       index,
		Seed:        seed,
		Bounds:      toRect(layout.Bounds),
		PlayerSpawn: entity.Vec2{X: layout.PlayerSpawn.X, Y: layout.PlayerSpawn.Y},
		Goal:        toRect(layout.Goal),
	}

	lvl.Platforms = make([]entity.Platform, 0, len(layout.Platforms))
	for _, p := range layout.Platforms {
		lvl.Platforms = append(lvl.Platforms, entity.Platform{Rect: toRect(p)})
	}
	lvl.GoalPlatform = supportingPlatform(lvl.Platforms, lvl.Goal)

	for _, spawn := range layout.Enemies {
		variant, ok := EnemyVariantFromName(spawn.Variant)
		if !ok {
			return nil, fmt.Errorf("level %d: unknown enemy variant %q", index, spawn.Variant)
		}
		cfg, ok := g.entities.Enemies[spawn.Variant]
		if !ok {
			return nil, fmt.Errorf("level %d: enemy variant %q has no spawn-table row", index, spawn.Variant)
		}
		e := buildEnemy(r, enemyRow{variant: variant, name: spawn.Variant, cfg: cfg}, entity.Vec2{X: spawn.X, Y: spawn.Y})
		e.FacingRight = spawn.FacingRight
		lvl.Enemies = append(lvl.Enemies, e)
	}

	for _, point := range layout.PowerUps {
		variant, ok := PowerUpVariantFromName(point.Variant)
		if !ok {
			return nil, fmt.Errorf("level %d: unknown power-up variant %q", index, point.Variant)
		}
		p := &entity.PowerUp{
			Pos:     entity.Vec2{X: point.X, Y: point.Y},
			Size:    entity.Vec2{X: g.entities.PowerUps.Size.Width, Y: g.entities.PowerUps.Size.Height},
			Variant: variant,
		}
		if variant == entity.PowerCoin {
			p.CoinValue = coinBronzeValue
		}
		lvl.PowerUps = append(lvl.PowerUps, p)
	}

	return lvl, nil
}

// supportingPlatform finds the platform directly under the goal. Authored
// layouts are trusted but not required to list the goal platform last.
func supportingPlatform(platforms []entity.Platform, goal entity.Rect) int {
	cx := goal.X + goal.W/2
	bottom := goal.Bottom()
	for i, p := range platforms {
		if cx >= p.X && cx <= p.Right() && math.Abs(p.Y-bottom) < 1.0 {
			return i
		}
	}
	return len(platforms) - 1
}

// ==== Helpers ====

func levelBounds(platforms []entity.Platform) entity.Rect {
	minTop := platforms[0].Y
	maxBottom := platforms[0].Bottom()
	right := platforms[0].Right()
	for _, p := range platforms[1:] {
		minTop = math.Min(minTop, p.Y)
		maxBottom = math.Max(maxBottom, p.Bottom())
		right = math.Max(right, p.Right())
	}
	return entity.Rect{
		X: 0,
		Y: minTop - headroom,
		W: right + boundsPadX,
		H: (maxBottom + voidDepth) - (minTop - headroom),
	}
}

func toRect(r config.RectConfig) entity.Rect {
	return entity.Rect{X: r.X, Y: r.Y, W: r.W, H: r.H}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
