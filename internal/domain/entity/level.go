package entity

// Platform is a static solid surface
type Platform struct {
	Rect
}

// Level is a single stage: platform geometry plus initial enemy and
// power-up placements. Geometry is fixed once built; enemies and
// power-ups may be removed during play (death, pickup) and the in-play
// spawner may add power-ups. Discarded on level transition or restart.
type Level struct {
	Index int
	Seed  int64

	Bounds      Rect
	PlayerSpawn Vec2

	// Ordered left to right by construction
	Platforms []Platform

	Enemies  []*Enemy
	PowerUps []*PowerUp

	Goal         Rect
	GoalPlatform int
}

// RemovePowerUp deletes the pickup from the level, preserving order
func (l *Level) RemovePowerUp(target *PowerUp) {
	kept := l.PowerUps[:0]
	for _, p := range l.PowerUps {
		if p != target {
			kept = append(kept, p)
		}
	}
	l.PowerUps = kept
}

// RemoveEnemy deletes the enemy from the level, preserving order
func (l *Level) RemoveEnemy(target *Enemy) {
	kept := l.Enemies[:0]
	for _, e := range l.Enemies {
		if e != target {
			kept = append(kept, e)
		}
	}
	l.Enemies = kept
}

// AddPowerUp appends a pickup spawned during play
func (l *Level) AddPowerUp(p *PowerUp) {
	l.PowerUps = append(l.PowerUps, p)
}
