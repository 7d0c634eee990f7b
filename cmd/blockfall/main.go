// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play            - Play a game
//	blockfall scores          - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for a reproducible piece sequence
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: false,
})

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockfall",
	Short: "blockfall - falling-block puzzle in your terminal",
	Long: `blockfall is a terminal falling-block puzzle game. Clear full rows
to score; the more rows a single drop clears, the more points it earns.

Available commands:
  play     - Start a game
  scores   - View high scores

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml
  blockfall scores
  blockfall scores --interactive`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
}
