package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/younwookim/skyrunner/internal/application/game"
	"github.com/younwookim/skyrunner/internal/application/scene/playing"
	"github.com/younwookim/skyrunner/internal/application/state"
	"github.com/younwookim/skyrunner/internal/application/system"
	"github.com/younwookim/skyrunner/internal/infrastructure/config"
	"github.com/younwookim/skyrunner/internal/infrastructure/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagRecord     string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a run",
	Long: `Start a new run from the chosen level.

Controls:
  A/D, Arrows - Move
  Space/W/Up  - Jump (again in the air with a double-jump pickup)
  Esc/P       - Pause
  R           - Restart (after game over)
  F5          - Save the recording so far (with --record)

Examples:
  skyrunner play
  skyrunner play --seed 42 --level 3
  skyrunner play --difficulty hard
  skyrunner play --record run.json
  skyrunner play --config ./configs`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Directory with config YAML overrides")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().StringVar(&flagRecord, "record", "", "Record inputs to this file")
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	sc, err := playing.New(cfg, seed, flagLevel, system.KeyboardSource{}, flagRecord)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Persist finished runs. The game works fine without the store.
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		store = nil
	}
	if store != nil {
		sc.OnRunEnded = func(snap playing.Snapshot) {
			if _, saveErr := store.SaveRun(snap.Score, snap.Coins, snap.LevelReached, snap.Seed); saveErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", saveErr)
			}
		}
	}

	runErr := runWindow(game.New(sc, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight), cfg, "Skyrunner")

	if store != nil {
		// Closing the window mid-run still banks the progress. Runs that
		// ended in game over were already saved through OnRunEnded.
		if sc.Session().State() != state.StateGameOver {
			snap := sc.Session().Snapshot()
			if _, saveErr := store.SaveRun(snap.Score, snap.Coins, snap.LevelReached, snap.Seed); saveErr != nil {
				fmt.Fprintf(os.Stderr, "Warning: could not save run: %v\n", saveErr)
			}
		}
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

// loadConfig resolves the config directory, applies the difficulty
// preset and validates the result.
func loadConfig() (*config.GameConfig, error) {
	cfg, err := config.ResolveLoader(flagConfig).LoadAll()
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		if !config.ValidPreset(flagDifficulty) {
			return nil, fmt.Errorf("unknown difficulty %q (easy, normal, hard)", flagDifficulty)
		}
		config.ApplyPreset(cfg.Difficulty, config.DifficultyPreset(flagDifficulty))
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// runWindow sizes the ebiten window from the display config and runs
// the game until the window closes.
func runWindow(g *game.Game, cfg *config.GameConfig, title string) error {
	d := cfg.Physics.Display
	ebiten.SetWindowSize(d.ScreenWidth*d.Scale, d.ScreenHeight*d.Scale)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(d.TPS)
	return ebiten.RunGame(g)
}
