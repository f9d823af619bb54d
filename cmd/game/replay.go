package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/younwookim/skyrunner/internal/application/game"
	"github.com/younwookim/skyrunner/internal/application/replay"
	"github.com/younwookim/skyrunner/internal/application/scene/playing"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Play back a recorded run",
	Long: `Play back a run recorded with 'skyrunner play --record'.

The file pins the seed and start level, so the same world regenerates
and the recorded inputs steer it. Pass the same --config and
--difficulty the run was recorded with, or the playback diverges.

Examples:
  skyrunner replay run.json
  skyrunner replay run.json --difficulty hard`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func init() {
	replayCmd.Flags().StringVar(&flagConfig, "config", "", "Directory with config YAML overrides")
	replayCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

func runReplay(cmd *cobra.Command, args []string) {
	data, err := replay.LoadReplay(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rp := replay.NewReplayer(*data)
	sc, err := playing.New(cfg, rp.Seed(), rp.StartLevel(), rp, "")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replaying %s: seed %d, level %d, %d frames\n", args[0], rp.Seed(), rp.StartLevel(), rp.TotalFrames())

	g := game.New(sc, cfg.Physics.Display.ScreenWidth, cfg.Physics.Display.ScreenHeight)
	if err := runWindow(g, cfg, "Skyrunner (replay)"); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
