package gen

import (
	"sort"

	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// Coin tier values, from the common roll up
const (
	coinBronzeValue = 1
	coinSilverValue = 2
	coinGoldValue   = 3
)

var enemyVariantNames = map[string]entity.EnemyVariant{
	"chaser":  entity.EnemyChaser,
	"patrol":  entity.EnemyPatrol,
	"jumper":  entity.EnemyJumper,
	"shooter": entity.EnemyShooter,
}

var powerUpVariantNames = map[string]entity.PowerUpVariant{
	"speed_boost":   entity.PowerSpeedBoost,
	"jump_boost":    entity.PowerJumpBoost,
	"health_potion": entity.PowerHealthPotion,
	"coin":          entity.PowerCoin,
	"shield":        entity.PowerShield,
	"double_jump":   entity.PowerDoubleJump,
}

// EnemyVariantFromName resolves a spawn-table key to its variant
func EnemyVariantFromName(name string) (entity.EnemyVariant, bool) {
	v, ok := enemyVariantNames[name]
	return v, ok
}

// PowerUpVariantFromName resolves a spawn-table key to its variant
func PowerUpVariantFromName(name string) (entity.PowerUpVariant, bool) {
	v, ok := powerUpVariantNames[name]
	return v, ok
}

type enemyRow struct {
	variant entity.EnemyVariant
	name    string
	cfg     config.EnemyConfig
}

// unlockedEnemies returns the spawn-table rows available at the given level
// index, sorted by name. The config map has no iteration order, so the sort
// is what keeps generation deterministic.
func unlockedEnemies(enemies map[string]config.EnemyConfig, index int) []enemyRow {
	rows := make([]enemyRow, 0, len(enemies))
	for name, cfg := range enemies {
		variant, ok := EnemyVariantFromName(name)
		if !ok || cfg.Weight <= 0 || cfg.UnlockLevel > index {
			continue
		}
		rows = append(rows, enemyRow{variant: variant, name: name, cfg: cfg})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].name < rows[j].name })
	return rows
}

// rollEnemy picks a row by cumulative weight
func rollEnemy(r *RNG, rows []enemyRow) enemyRow {
	total := 0
	for _, row := range rows {
		total += row.cfg.Weight
	}
	roll := r.Intn(total)
	for _, row := range rows {
		roll -= row.cfg.Weight
		if roll < 0 {
			return row
		}
	}
	return rows[len(rows)-1]
}

// buildEnemy resolves a spawn-table row into a placed enemy. pos is the
// top-left corner of the enemy hitbox.
func buildEnemy(r *RNG, row enemyRow, pos entity.Vec2) *entity.Enemy {
	e := entity.NewEnemy(row.variant, pos, entity.Vec2{X: row.cfg.Size.Width, Y: row.cfg.Size.Height})
	e.ContactDamage = row.cfg.ContactDamage
	e.MoveSpeed = row.cfg.MoveSpeed
	e.DetectRange = row.cfg.DetectRange
	e.HopSpeed = row.cfg.HopSpeed
	e.PatrolRange = row.cfg.PatrolRange
	e.MinActionTicks = row.cfg.MinActionTicks
	e.MaxActionTicks = row.cfg.MaxActionTicks
	e.JumpSpeed = row.cfg.JumpSpeed
	e.AttackRange = row.cfg.AttackRange
	e.ProjectileSpeed = row.cfg.ProjectileSpeed
	if e.MaxActionTicks > 0 {
		e.ActionTicks = r.IntRange(e.MinActionTicks, e.MaxActionTicks)
	}
	return e
}

// RollPowerUp picks a power-up variant by spawn-table weight and, for coins,
// rolls the tier. The in-play spawner and the generator share this so a
// given RNG stream always drops the same items.
func RollPowerUp(r *RNG, cfg *config.PowerUpsConfig) (entity.PowerUpVariant, int) {
	total := 0
	for _, row := range cfg.Table {
		if row.Weight > 0 {
			total += row.Weight
		}
	}
	if total == 0 {
		return entity.PowerCoin, coinBronzeValue
	}

	variant := entity.PowerCoin
	roll := r.Intn(total)
	for _, row := range cfg.Table {
		if row.Weight <= 0 {
			continue
		}
		roll -= row.Weight
		if roll < 0 {
			if v, ok := PowerUpVariantFromName(row.Variant); ok {
				variant = v
			}
			break
		}
	}

	value := 0
	if variant == entity.PowerCoin {
		value = rollCoinValue(r, cfg)
	}
	return variant, value
}

// rollCoinValue upgrades a coin to silver or gold on a one-in-N roll.
// Gold is checked first so it is not masked by the more common silver.
func rollCoinValue(r *RNG, cfg *config.PowerUpsConfig) int {
	if cfg.GoldChance > 0 && r.Intn(cfg.GoldChance) == 0 {
		return coinGoldValue
	}
	if cfg.SilverChance > 0 && r.Intn(cfg.SilverChance) == 0 {
		return coinSilverValue
	}
	return coinBronzeValue
}

// PlacePowerUpOn drops a rolled power-up above a platform at a random
// horizontal position, respecting the configured edge inset.
func PlacePowerUpOn(r *RNG, cfg *config.PowerUpsConfig, plat entity.Platform) *entity.PowerUp {
	variant, value := RollPowerUp(r, cfg)

	minX := plat.X + cfg.EdgeInset
	maxX := plat.Right() - cfg.EdgeInset - cfg.Size.Width
	if maxX < minX {
		minX = plat.X + (plat.W-cfg.Size.Width)/2
		maxX = minX
	}

	return &entity.PowerUp{
		Pos:       entity.Vec2{X: r.FloatRange(minX, maxX), Y: plat.Y - cfg.OffsetAbove - cfg.Size.Height},
		Size:      entity.Vec2{X: cfg.Size.Width, Y: cfg.Size.Height},
		Variant:   variant,
		CoinValue: value,
	}
}
