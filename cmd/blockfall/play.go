package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/platform/tui"
	"github.com/vovakirdan/blockfall/internal/storage"
	"github.com/vovakirdan/blockfall/internal/tetris"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a new game.

Controls:
  Left/Right or A/D  - Move piece
  Up or W            - Rotate
  Down or S          - Soft drop
  Space/Enter        - Hard drop
  Esc/P              - Pause menu
  Q/Ctrl+C           - Quit

Examples:
  blockfall play
  blockfall play --seed 42
  blockfall play --config ./my-blockfall.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameCfg, err := config.Load(flagConfig)
	if err != nil {
		logger.Error("could not load config", "err", err)
		os.Exit(1)
	}

	// Terminal size, with sane defaults when not a tty
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	engineCfg := tetris.Config{
		Cols:       gameCfg.Field.Cols,
		Rows:       gameCfg.Field.Rows,
		FallDelay:  gameCfg.FallDelay(),
		BagBatches: gameCfg.Bag.Batches,
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "err", err)
		store = nil
	}

	runErr := tui.Run(engineCfg, store, runtime)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game loop failed", "err", runErr)
		os.Exit(1)
	}
}
