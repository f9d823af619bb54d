// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"math"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/skyrunner/internal/application/scene"
	"github.com/younwookim/skyrunner/internal/application/state"
	"github.com/younwookim/skyrunner/internal/application/system"
	"github.com/younwookim/skyrunner/internal/domain/entity"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorGoal     = color.RGBA{80, 200, 120, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorFlash    = color.RGBA{255, 255, 255, 200}
	colorShieldFX = color.RGBA{90, 130, 230, 110}
	colorShot     = color.RGBA{255, 240, 130, 255}
	colorHealthBG = color.RGBA{60, 60, 60, 255}
	colorHealthFG = color.RGBA{100, 200, 100, 255}

	enemyColors = map[entity.EnemyVariant]color.RGBA{
		entity.EnemyChaser:  {200, 80, 80, 255},
		entity.EnemyPatrol:  {200, 140, 60, 255},
		entity.EnemyJumper:  {170, 90, 200, 255},
		entity.EnemyShooter: {90, 140, 220, 255},
	}

	powerUpColors = map[entity.PowerUpVariant]color.RGBA{
		entity.PowerSpeedBoost:   {80, 220, 220, 255},
		entity.PowerJumpBoost:    {120, 230, 120, 255},
		entity.PowerHealthPotion: {230, 90, 120, 255},
		entity.PowerShield:       {90, 130, 230, 255},
		entity.PowerDoubleJump:   {190, 120, 230, 255},
	}

	coinColors = map[int]color.RGBA{
		1: {205, 127, 50, 255},
		2: {192, 192, 192, 255},
		3: {255, 215, 0, 255},
	}
)

// Playing is the main gameplay scene: a Session plus everything the
// session deliberately does not know about — the input device, the
// camera, screen shake, hitstop, and input recording.
type Playing struct {
	config  *config.GameConfig
	session *Session
	source  system.Source

	screenW int
	screenH int

	// Feedback
	hitstopTicks int
	shakeX       float64
	shakeY       float64
	shakeDecay   float64

	// Input recording
	recorder       *Recorder
	recordFilename string

	// OnRunEnded, when set, receives the final snapshot of every run
	// that reaches game over. The command layer hooks persistence here.
	OnRunEnded func(Snapshot)
}

// New creates a Playing scene over a fresh session. The source decides
// where input comes from: the keyboard for normal play, a replayer for
// playback. If recordPath is not empty, gameplay is recorded.
func New(cfg *config.GameConfig, seed int64, startLevel int, source system.Source, recordPath string) (*Playing, error) {
	sess, err := NewSession(cfg, seed, startLevel)
	if err != nil {
		return nil, err
	}

	p := &Playing{
		config:         cfg,
		session:        sess,
		source:         source,
		screenW:        cfg.Physics.Display.ScreenWidth,
		screenH:        cfg.Physics.Display.ScreenHeight,
		shakeDecay:     cfg.Physics.Feedback.ScreenShake.Decay,
		recordFilename: recordPath,
	}

	if recordPath != "" {
		p.recorder = NewRecorder(seed, startLevel)
		log.Info("recording enabled", "file", recordPath, "seed", seed)
	}

	sess.Combat().OnHitstop = func(ticks int) {
		p.hitstopTicks = ticks
	}
	sess.Combat().OnScreenShake = func(intensity float64) {
		p.shakeX = intensity
		p.shakeY = intensity
	}

	return p, nil
}

// Session exposes the simulation, for saving run results on exit
func (p *Playing) Session() *Session {
	return p.session
}

// Update advances the scene by one tick (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	// Hitstop freezes the whole simulation, input included. The freeze
	// length comes from deterministic events, so recordings stay aligned.
	if p.hitstopTicks > 0 {
		p.hitstopTicks--
		return nil, nil
	}

	if p.recorder != nil && inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording()
	}

	in := p.source.Poll()
	if p.recorder != nil && p.recorder.IsRecording() {
		p.recorder.RecordFrame(in)
	}

	prev := p.session.State()
	events, err := p.session.Step(in)
	if err != nil {
		return nil, err
	}

	for _, ev := range events {
		if _, ok := ev.(system.PlayerDied); ok {
			if p.recorder != nil {
				p.saveRecording()
			}
			if p.OnRunEnded != nil {
				p.OnRunEnded(p.session.Snapshot())
			}
		}
	}
	if prev == state.StateGameOver && p.session.State() == state.StatePlaying && p.recordFilename != "" {
		// Restarted run: the old recording is saved, start a fresh one
		p.recorder = NewRecorder(p.session.Seed(), p.session.Level().Index)
		log.Info("recording restarted", "seed", p.session.Seed())
	}

	p.shakeX *= p.shakeDecay
	p.shakeY *= p.shakeDecay

	return nil, nil
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Error("failed to save recording", "err", err)
	} else {
		log.Info("recording saved", "file", filename, "frames", p.recorder.FrameCount())
	}
}

// camera returns the top-left world coordinate of the view, following
// the player, shaken by feedback, clamped to the level bounds.
func (p *Playing) camera() (float64, float64) {
	lvl := p.session.Level()
	player := p.session.Player()

	camX := player.Pos.X + player.RenderSize.X/2 - float64(p.screenW)/2
	camY := player.Pos.Y + player.RenderSize.Y/2 - float64(p.screenH)/2

	camX += p.shakeX * (2*randFloat() - 1)
	camY += p.shakeY * (2*randFloat() - 1)

	maxCamX := lvl.Bounds.X + lvl.Bounds.W - float64(p.screenW)
	maxCamY := lvl.Bounds.Y + lvl.Bounds.H - float64(p.screenH)
	if camX > maxCamX {
		camX = maxCamX
	}
	if camY > maxCamY {
		camY = maxCamY
	}
	if camX < lvl.Bounds.X {
		camX = lvl.Bounds.X
	}
	if camY < lvl.Bounds.Y {
		camY = lvl.Bounds.Y
	}
	return camX, camY
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.camera()

	p.drawPlatforms(screen, camX, camY)
	p.drawGoal(screen, camX, camY)
	p.drawPowerUps(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawProjectiles(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)

	p.drawHUD(screen)

	switch p.session.State() {
	case state.StatePaused:
		p.drawPauseOverlay(screen)
	case state.StateLevelComplete:
		p.drawLevelCompleteOverlay(screen)
	case state.StateGameOver:
		p.drawGameOverOverlay(screen)
	}
}

func (p *Playing) drawPlatforms(screen *ebiten.Image, camX, camY float64) {
	for _, plat := range p.session.Level().Platforms {
		x := plat.X - camX
		y := plat.Y - camY
		if x+plat.W < 0 || x > float64(p.screenW) || y+plat.H < 0 || y > float64(p.screenH) {
			continue
		}
		ebitenutil.DrawRect(screen, x, y, plat.W, plat.H, colorPlatform)
	}
}

func (p *Playing) drawGoal(screen *ebiten.Image, camX, camY float64) {
	g := p.session.Level().Goal
	// Flag pole with a banner on top
	ebitenutil.DrawRect(screen, g.X+g.W/2-1-camX, g.Y-40-camY, 2, 40+g.H, colorGoal)
	ebitenutil.DrawRect(screen, g.X+g.W/2-camX, g.Y-40-camY, 14, 10, colorGoal)
	ebitenutil.DrawRect(screen, g.X-camX, g.Y-camY, g.W, g.H, colorGoal)
}

func (p *Playing) drawPowerUps(screen *ebiten.Image, camX, camY float64) {
	// Bobbing is render-only; hitboxes stay where the generator put them
	bob := math.Sin(float64(p.session.Tick())/12) * 3
	for _, pu := range p.session.Level().PowerUps {
		c, ok := powerUpColors[pu.Variant]
		if pu.Variant == entity.PowerCoin {
			c, ok = coinColors[pu.CoinValue]
		}
		if !ok {
			c = colorShot
		}
		ebitenutil.DrawRect(screen, pu.Pos.X-camX, pu.Pos.Y+bob-camY, pu.Size.X, pu.Size.Y, c)
	}
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.session.Level().Enemies {
		c := enemyColors[e.Variant]
		b := e.RenderBounds()
		ebitenutil.DrawRect(screen, b.X-camX, b.Y-camY, b.W, b.H, c)

		// Eye marks the facing side
		eyeX := b.X + 3
		if e.FacingRight {
			eyeX = b.X + b.W - 7
		}
		ebitenutil.DrawRect(screen, eyeX-camX, b.Y+5-camY, 4, 4, colorFlash)
	}
}

func (p *Playing) drawProjectiles(screen *ebiten.Image, camX, camY float64) {
	for _, proj := range p.session.Projectiles() {
		if !proj.Active {
			continue
		}
		ebitenutil.DrawRect(screen, proj.Pos.X-camX, proj.Pos.Y-camY, proj.Size.X, proj.Size.Y, colorShot)
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	player := p.session.Player()
	b := player.RenderBounds()

	if player.ShieldTicks > 0 {
		ebitenutil.DrawRect(screen, b.X-4-camX, b.Y-4-camY, b.W+8, b.H+8, colorShieldFX)
	}

	c := colorPlayer
	if player.IframeTicks > 0 && (player.IframeTicks/6)%2 == 0 {
		c = colorFlash
	}
	ebitenutil.DrawRect(screen, b.X-camX, b.Y-camY, b.W, b.H, c)

	// Hitbox debug
	if ebiten.IsKeyPressed(ebiten.KeyTab) {
		hb := player.Hitbox()
		ebitenutil.DrawRect(screen, hb.X-camX, hb.Y-camY, hb.W, hb.H, color.RGBA{200, 200, 100, 128})
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.session.Player()

	// Health bar
	barX := 10.0
	barY := float64(p.screenH - 20)
	barW := 100.0
	barH := 10.0

	ebitenutil.DrawRect(screen, barX, barY, barW, barH, colorHealthBG)

	healthRatio := float64(player.Health) / float64(player.MaxHealth)
	if healthRatio < 0 {
		healthRatio = 0
	}
	ebitenutil.DrawRect(screen, barX, barY, barW*healthRatio, barH, colorHealthFG)

	// Active effect pips above the bar
	effects := []struct {
		variant entity.PowerUpVariant
		ticks   int
	}{
		{entity.PowerSpeedBoost, player.SpeedBoostTicks},
		{entity.PowerJumpBoost, player.JumpBoostTicks},
		{entity.PowerShield, player.ShieldTicks},
		{entity.PowerDoubleJump, player.DoubleJumpTicks},
	}
	pipX := barX
	for _, fx := range effects {
		if fx.ticks <= 0 {
			continue
		}
		ebitenutil.DrawRect(screen, pipX, barY-12, 8, 8, powerUpColors[fx.variant])
		pipX += 12
	}

	statsText := fmt.Sprintf("Score: %d  Coins: %d  Level: %d", player.Score, player.Coins, p.session.Level().Index)
	ebitenutil.DebugPrintAt(screen, statsText, 10, p.screenH-40)

	if p.recorder != nil && p.recorder.IsRecording() {
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("REC %d", p.recorder.FrameCount()), p.screenW-70, 2)
	}

	ebitenutil.DebugPrint(screen, "A/D: Move | Space: Jump | ESC: Pause | R: Restart")
}

func (p *Playing) drawPauseOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 0, 0, 128})

	text := "PAUSED\n\nPress ESC to resume"
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-50, p.screenH/2-20)
}

func (p *Playing) drawLevelCompleteOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{0, 60, 40, 140})

	text := fmt.Sprintf("LEVEL %d CLEAR", p.session.Level().Index)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-45, p.screenH/2-10)
}

func (p *Playing) drawGameOverOverlay(screen *ebiten.Image) {
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), color.RGBA{100, 0, 0, 180})

	snap := p.session.Snapshot()
	text := fmt.Sprintf("GAME OVER\n\nScore: %d  Coins: %d\nReached level %d\n\nPress R to restart", snap.Score, snap.Coins, snap.LevelReached)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-70, p.screenH/2-30)
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	// Scene is already initialized in New
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Layout returns the game's screen dimensions (used by game.Game)
func (p *Playing) Layout(outsideWidth, outsideHeight int) (int, int) {
	return p.screenW, p.screenH
}

var randState uint32 = 1

func randFloat() float64 {
	randState = randState*1103515245 + 12345
	return float64(randState&0x7fffffff) / float64(0x7fffffff)
}
