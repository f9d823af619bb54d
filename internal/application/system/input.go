package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// InputState is one tick of player input: holds for movement, just-pressed
// edges for everything else
type InputState struct {
	Left           bool
	Right          bool
	JumpPressed    bool
	PausePressed   bool
	RestartPressed bool
}

// Source produces the input for each tick. The keyboard reads the real
// devices; the replayer plays a recording back through the same interface.
type Source interface {
	Poll() InputState
}

// KeyboardSource polls ebiten once per tick
type KeyboardSource struct{}

// Poll reads the current keyboard state
func (KeyboardSource) Poll() InputState {
	return InputState{
		Left:           ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:          ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed:    inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeyArrowUp),
		PausePressed:   inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP),
		RestartPressed: inpututil.IsKeyJustPressed(ebiten.KeyR),
	}
}

// InputSystem turns input into player drive and jump impulses. Only
// velocity and acceleration change here; positions move when the resolver
// commits them.
type InputSystem struct {
	physics  *config.PhysicsConfig
	powerups *config.PowerUpsConfig
}

// NewInputSystem creates an input system over the loaded config
func NewInputSystem(cfg *config.GameConfig) *InputSystem {
	return &InputSystem{
		physics:  cfg.Physics,
		powerups: &cfg.Entities.PowerUps,
	}
}

// Apply writes this tick's drive and handles jump edges
func (s *InputSystem) Apply(player *entity.Player, in InputState) {
	m := s.physics.Movement

	switch {
	case in.Left && !in.Right:
		player.Acc.X = -m.Acceleration
		player.FacingRight = false
	case in.Right && !in.Left:
		player.Acc.X = m.Acceleration
		player.FacingRight = true
	default:
		player.Acc.X = 0
	}

	if player.OnGround {
		player.AirJumpUsed = false
	}

	if in.JumpPressed {
		s.tryJump(player)
	}
}

// tryJump starts a ground jump, or spends the air jump while the double
// jump window is open: falling, or rising slower than the window speed
func (s *InputSystem) tryJump(player *entity.Player) {
	j := s.physics.Jump

	speed := j.Speed
	if player.JumpBoostTicks > 0 {
		speed = j.BoostedSpeed
	}

	if player.OnGround {
		player.Vel.Y = -speed
		player.OnGround = false
		return
	}

	if player.DoubleJumpTicks > 0 && !player.AirJumpUsed && player.Vel.Y > -j.AirJumpWindow {
		player.Vel.Y = -speed
		player.AirJumpUsed = true
	}
}

// EffectiveMaxRun is this tick's run-speed clamp, stretched while a speed
// boost is active
func (s *InputSystem) EffectiveMaxRun(player *entity.Player) float64 {
	limit := s.physics.Movement.MaxRunSpeed
	if player.SpeedBoostTicks > 0 && s.powerups.SpeedMultiplier > 0 {
		limit *= s.powerups.SpeedMultiplier
	}
	return limit
}
