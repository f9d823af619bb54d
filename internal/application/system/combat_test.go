package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/skyrunner/internal/domain/entity"
)

func createTestCombatSystem() *CombatSystem {
	return NewCombatSystem(createTestPhysics())
}

func TestApplyEnemyContactDamagesPlayer(t *testing.T) {
	sys := createTestCombatSystem()
	player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
	enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
	enemy.ContactDamage = 1

	died := sys.ApplyEnemyContact(player, enemy)

	assert.False(t, died)
	assert.Equal(t, 2, player.Health)
	assert.Equal(t, 120, player.IframeTicks)
}

func TestApplyEnemyContactKnockbackDirection(t *testing.T) {
	sys := createTestCombatSystem()

	t.Run("enemy on the left knocks right", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
		enemy.ContactDamage = 1

		sys.ApplyEnemyContact(player, enemy)

		assert.Equal(t, 8.0, player.Vel.X)
		assert.Equal(t, -3.0, player.Vel.Y)
	})

	t.Run("enemy on the right knocks left", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 130, Y: 390}, entity.Vec2{X: 28, Y: 28})
		enemy.ContactDamage = 1

		sys.ApplyEnemyContact(player, enemy)

		assert.Equal(t, -8.0, player.Vel.X)
		assert.Equal(t, -3.0, player.Vel.Y)
	})
}

func TestApplyEnemyContactDamageFallback(t *testing.T) {
	sys := createTestCombatSystem()
	player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
	enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
	// No per-enemy damage configured; the combat default applies

	sys.ApplyEnemyContact(player, enemy)

	assert.Equal(t, 2, player.Health)
}

func TestApplyEnemyContactWhileInvincible(t *testing.T) {
	sys := createTestCombatSystem()
	enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
	enemy.ContactDamage = 1

	t.Run("iframes", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		player.IframeTicks = 30

		died := sys.ApplyEnemyContact(player, enemy)

		assert.False(t, died)
		assert.Equal(t, 3, player.Health)
		assert.Equal(t, 0.0, player.Vel.X)
	})

	t.Run("shield", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		player.ShieldTicks = 300

		died := sys.ApplyEnemyContact(player, enemy)

		assert.False(t, died)
		assert.Equal(t, 3, player.Health)
	})
}

func TestApplyEnemyContactLethal(t *testing.T) {
	sys := createTestCombatSystem()
	player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
	player.Health = 1
	enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
	enemy.ContactDamage = 1

	died := sys.ApplyEnemyContact(player, enemy)

	assert.True(t, died)
	assert.Equal(t, 0, player.Health)
}

func TestApplyProjectileHit(t *testing.T) {
	sys := createTestCombatSystem()

	t.Run("damages and knocks back", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		proj := entity.NewProjectile(entity.Vec2{X: 130, Y: 395}, entity.Vec2{X: -6, Y: 0}, entity.Vec2{X: 8, Y: 8}, 1, 90)

		died := sys.ApplyProjectileHit(player, proj)

		assert.False(t, died)
		assert.Equal(t, 2, player.Health)
		assert.Equal(t, -8.0, player.Vel.X)
		assert.Equal(t, 120, player.IframeTicks)
	})

	t.Run("shield blocks the shot", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		player.ShieldTicks = 300
		proj := entity.NewProjectile(entity.Vec2{X: 130, Y: 395}, entity.Vec2{X: -6, Y: 0}, entity.Vec2{X: 8, Y: 8}, 1, 90)

		died := sys.ApplyProjectileHit(player, proj)

		assert.False(t, died)
		assert.Equal(t, 3, player.Health)
	})
}

func TestApplyVoidFall(t *testing.T) {
	sys := createTestCombatSystem()

	t.Run("respawns with fresh iframes", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 30, Y: 480})
		player.Pos = entity.Vec2{X: 700, Y: 900}
		player.Vel = entity.Vec2{X: 2, Y: 14}

		died := sys.ApplyVoidFall(player)

		assert.False(t, died)
		assert.Equal(t, 2, player.Health)
		assert.Equal(t, entity.Vec2{X: 30, Y: 480}, player.Pos)
		assert.Equal(t, entity.Vec2{}, player.Vel)
		assert.Equal(t, 120, player.IframeTicks)
	})

	t.Run("shield does not help", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 30, Y: 480})
		player.ShieldTicks = 300

		sys.ApplyVoidFall(player)

		assert.Equal(t, 2, player.Health)
	})

	t.Run("lethal on last health", func(t *testing.T) {
		player := createTestPlayerAt(entity.Vec2{X: 30, Y: 480})
		player.Health = 1

		died := sys.ApplyVoidFall(player)

		assert.True(t, died)
	})
}

func TestTickTimersCountsIframesDown(t *testing.T) {
	sys := createTestCombatSystem()
	player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
	player.IframeTicks = 2

	sys.TickTimers(player)
	assert.Equal(t, 1, player.IframeTicks)

	sys.TickTimers(player)
	sys.TickTimers(player) // stays at zero
	assert.Equal(t, 0, player.IframeTicks)
}

func TestFeedbackHooks(t *testing.T) {
	t.Run("contact hit fires hitstop and shake", func(t *testing.T) {
		sys := createTestCombatSystem()
		var hitstop int
		var shake float64
		sys.OnHitstop = func(ticks int) { hitstop = ticks }
		sys.OnScreenShake = func(intensity float64) { shake = intensity }

		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
		enemy.ContactDamage = 1
		sys.ApplyEnemyContact(player, enemy)

		assert.Equal(t, 6, hitstop)
		assert.Equal(t, 6.0, shake) // hits shake harder than falls
	})

	t.Run("void fall shakes without hitstop", func(t *testing.T) {
		sys := createTestCombatSystem()
		var hitstop int
		var shake float64
		sys.OnHitstop = func(ticks int) { hitstop = ticks }
		sys.OnScreenShake = func(intensity float64) { shake = intensity }

		player := createTestPlayerAt(entity.Vec2{X: 30, Y: 480})
		sys.ApplyVoidFall(player)

		assert.Equal(t, 0, hitstop)
		assert.Equal(t, 4.0, shake)
	})

	t.Run("disabled feedback stays silent", func(t *testing.T) {
		cfg := createTestPhysics()
		cfg.Feedback.Hitstop.Enabled = false
		cfg.Feedback.ScreenShake.Enabled = false
		sys := NewCombatSystem(cfg)
		called := false
		sys.OnHitstop = func(int) { called = true }
		sys.OnScreenShake = func(float64) { called = true }

		player := createTestPlayerAt(entity.Vec2{X: 100, Y: 380})
		enemy := entity.NewEnemy(entity.EnemyChaser, entity.Vec2{X: 60, Y: 390}, entity.Vec2{X: 28, Y: 28})
		enemy.ContactDamage = 1
		sys.ApplyEnemyContact(player, enemy)

		assert.False(t, called)
	})
}
