package system

import (
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// CombatSystem turns contact events into damage, knockback, and
// invincibility windows. It decides nothing about game state: lethal hits
// are reported back so the session can transition.
type CombatSystem struct {
	combat   *config.CombatConfig
	feedback *config.FeedbackConfig

	// Presentation feedback hooks; nil outside the game shell
	OnHitstop     func(ticks int)
	OnScreenShake func(intensity float64)
}

// NewCombatSystem creates a combat system over the combat constants
func NewCombatSystem(cfg *config.PhysicsConfig) *CombatSystem {
	return &CombatSystem{
		combat:   &cfg.Combat,
		feedback: &cfg.Feedback,
	}
}

// TickTimers counts the invincibility window down
func (s *CombatSystem) TickTimers(player *entity.Player) {
	if player.IframeTicks > 0 {
		player.IframeTicks--
	}
}

// ApplyEnemyContact damages and knocks the player away from the enemy.
// Iframes and shields make contact harmless. Returns true on a lethal hit.
func (s *CombatSystem) ApplyEnemyContact(player *entity.Player, enemy *entity.Enemy) bool {
	if player.IsInvincible() {
		return false
	}

	damage := enemy.ContactDamage
	if damage <= 0 {
		damage = s.combat.ContactDamage
	}
	return s.damagePlayer(player, damage, enemy.Hitbox())
}

// ApplyProjectileHit damages the player from a shot that already despawned
// on contact. Returns true on a lethal hit.
func (s *CombatSystem) ApplyProjectileHit(player *entity.Player, proj *entity.Projectile) bool {
	if player.IsInvincible() {
		return false
	}
	return s.damagePlayer(player, proj.Damage, proj.Hitbox())
}

// ApplyVoidFall charges the void toll and puts the player back on the
// spawn platform with fresh iframes. The void ignores shields. Returns
// true when the fall was lethal.
func (s *CombatSystem) ApplyVoidFall(player *entity.Player) bool {
	died := player.Damage(s.combat.VoidDamage)
	player.Respawn()
	player.IframeTicks = s.combat.IframeTicks

	s.shake(1.0)
	return died
}

func (s *CombatSystem) damagePlayer(player *entity.Player, damage int, from entity.Rect) bool {
	died := player.Damage(damage)
	player.IframeTicks = s.combat.IframeTicks

	// Knock away from the hit
	dir := 1.0
	if from.X+from.W/2 > player.Hitbox().X+player.HitboxSize.X/2 {
		dir = -1
	}
	player.Vel.X = dir * s.combat.Knockback.Force
	player.Vel.Y = -s.combat.Knockback.UpForce

	if s.OnHitstop != nil && s.feedback.Hitstop.Enabled {
		s.OnHitstop(s.feedback.Hitstop.Ticks)
	}
	s.shake(1.5)
	return died
}

func (s *CombatSystem) shake(scale float64) {
	if s.OnScreenShake != nil && s.feedback.ScreenShake.Enabled {
		s.OnScreenShake(s.feedback.ScreenShake.Intensity * scale)
	}
}
