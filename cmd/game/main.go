// skyrunner is a side-scrolling platformer with procedurally generated,
// always-beatable levels.
//
// Usage:
//
//	skyrunner play             - Start a run
//	skyrunner replay <file>    - Play back a recorded run
//	skyrunner scores           - Show the best finished runs
//
// Global flags:
//
//	--seed <value>  - World seed (0 = random based on time)
//	--level <n>     - Starting level index (default: 1)
//	--db <path>     - Runs database path (default: ~/.skyrunner/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed   int64
	flagLevel  int
	flagDBPath string
)

func main() {
	log.SetDefault(log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "skyrunner",
	}))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "skyrunner",
	Short: "Skyrunner - outrun the fall, level after level",
	Long: `Skyrunner is a side-scrolling platformer. Every level past the first
is generated from the world seed, always beatable, and a little harder
than the one before.

Available commands:
  play     - Start a run
  replay   - Play back a recorded run
  scores   - View the best finished runs

Examples:
  skyrunner play
  skyrunner play --seed 42 --difficulty hard
  skyrunner replay run.json
  skyrunner scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "World seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagLevel, "level", 1, "Starting level index")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.skyrunner/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(scoresCmd)
}
