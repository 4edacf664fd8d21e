package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/core"
	"github.com/vovakirdan/tui-klondike/internal/platform/tui"
	"github.com/vovakirdan/tui-klondike/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  Mouse      - Drag cards; click the stock to draw
  D/Space    - Draw from the stock
  N          - New game
  S          - Settings
  Esc/B      - Back
  Ctrl+S     - Screenshot to ~/.klondike/screenshots
  Q/Ctrl+C   - Quit

Examples:
  klondike play
  klondike play --seed 42
  klondike play --config ./big-cards.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	rc := core.DefaultConfig()
	rc.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("running without persistence", "error", err)
		// Continue without storage - game still works
		store = nil
	}

	var sound tui.Sound
	if cfg.Audio.Bell {
		sound = tui.NewBell(os.Stdout, cfg.Audio.Volume)
	}

	runErr := tui.Run(tui.Options{
		Store:   store,
		Config:  cfg,
		Runtime: rc,
		Logger:  logger,
		Sound:   sound,
	})

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
