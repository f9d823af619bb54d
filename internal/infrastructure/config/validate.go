package config

import "fmt"

// Validate checks a loaded configuration for contradictions the
// generator and resolver rely on. It runs once at startup; a config
// that passes here can still produce degenerate levels if the tier
// table asks for gaps no jump can cross, which Generate reports.
func (c *GameConfig) Validate() error {
	if c.Physics == nil || c.Difficulty == nil || c.Entities == nil || c.Levels == nil {
		return fmt.Errorf("config: incomplete, a section failed to load")
	}
	if err := validatePhysics(c.Physics); err != nil {
		return err
	}
	if err := validateDifficulty(c.Difficulty); err != nil {
		return err
	}
	return validateEntities(c.Entities)
}

func validatePhysics(p *PhysicsConfig) error {
	d := p.Display
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("config: screen size %dx%d is not drawable", d.ScreenWidth, d.ScreenHeight)
	}
	if d.TPS <= 0 {
		return fmt.Errorf("config: tps must be positive, got %d", d.TPS)
	}

	m := p.Movement
	if m.Gravity <= 0 {
		return fmt.Errorf("config: gravity must be positive, got %g", m.Gravity)
	}
	if m.MaxRunSpeed <= 0 || m.MaxFallSpeed <= 0 {
		return fmt.Errorf("config: speed caps must be positive, got run %g fall %g", m.MaxRunSpeed, m.MaxFallSpeed)
	}
	if m.Friction >= 0 {
		return fmt.Errorf("config: friction must be negative, got %g", m.Friction)
	}

	j := p.Jump
	if j.Speed <= 0 {
		return fmt.Errorf("config: jump speed must be positive, got %g", j.Speed)
	}

	// The generator trusts these bounds when it places platforms; bounds
	// beyond what the ballistics allow would break the reachability
	// guarantee.
	peak := j.Speed * j.Speed / (2 * m.Gravity)
	if j.MaxJumpHeight > peak {
		return fmt.Errorf("config: max_jump_height %g exceeds the %g the jump arc reaches", j.MaxJumpHeight, peak)
	}
	airtime := 2 * j.Speed / m.Gravity
	reach := m.MaxRunSpeed * airtime
	if j.MaxJumpDistance > reach {
		return fmt.Errorf("config: max_jump_distance %g exceeds the %g covered in one arc", j.MaxJumpDistance, reach)
	}

	if p.Collision.SubstepSize <= 0 {
		return fmt.Errorf("config: substep_size must be positive, got %g", p.Collision.SubstepSize)
	}
	if p.Collision.CellSize <= 0 {
		return fmt.Errorf("config: cell_size must be positive, got %g", p.Collision.CellSize)
	}

	return nil
}

func validateDifficulty(d *DifficultyConfig) error {
	if d.TierSpan <= 0 {
		return fmt.Errorf("config: tier_span must be positive, got %d", d.TierSpan)
	}
	if len(d.Tiers) == 0 {
		return fmt.Errorf("config: difficulty needs at least one tier")
	}

	// Scaling must only ratchet up; an easier later tier would make the
	// difficulty curve non-monotonic.
	for i := 1; i < len(d.Tiers); i++ {
		prev, cur := d.Tiers[i-1], d.Tiers[i]
		if cur.GapMin < prev.GapMin || cur.GapMax < prev.GapMax {
			return fmt.Errorf("config: tier %q eases gaps off from %q", cur.Name, prev.Name)
		}
		if cur.EnemyDensity < prev.EnemyDensity {
			return fmt.Errorf("config: tier %q eases enemy density off from %q", cur.Name, prev.Name)
		}
	}

	for _, t := range d.Tiers {
		if t.GapMin > t.GapMax {
			return fmt.Errorf("config: tier %q has gap_min %g above gap_max %g", t.Name, t.GapMin, t.GapMax)
		}
	}

	return nil
}

func validateEntities(e *EntitiesConfig) error {
	p := e.Player
	if p.Health <= 0 || p.MaxHealth < p.Health {
		return fmt.Errorf("config: player health %d/%d is not playable", p.Health, p.MaxHealth)
	}
	if p.Hitbox.Width <= 0 || p.Hitbox.Height <= 0 {
		return fmt.Errorf("config: player hitbox %gx%g is degenerate", p.Hitbox.Width, p.Hitbox.Height)
	}

	totalWeight := 0
	for _, row := range e.PowerUps.Table {
		if row.Weight < 0 {
			return fmt.Errorf("config: power-up %q has negative weight", row.Variant)
		}
		totalWeight += row.Weight
	}
	if e.PowerUps.SpawnIntervalTicks > 0 && totalWeight == 0 {
		return fmt.Errorf("config: power-up spawner enabled with an empty table")
	}

	return nil
}
