package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/find-the-mouse/internal/config"
	"github.com/vovakirdan/find-the-mouse/internal/core"
	"github.com/vovakirdan/find-the-mouse/internal/platform/tui"
	"github.com/vovakirdan/find-the-mouse/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Deal the cards and start playing.

Controls:
  1-5 / click  - Pick a card
  Enter/Space  - Close the result dialog
  M or /       - Start a new session once the game is over
  N            - Start a new session now (score and streak back to 0)
  Tab          - High scores
  Ctrl+S       - Save a screenshot
  Esc/B, Q     - Quit

Scoring:
  Finding the mouse with 3 guesses left scores 3, with 2 left 2, with 1 left 1.

Examples:
  mouse play
  mouse play --seed 42
  mouse play --config ./my-mouse.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs only go to a file.
	logger, closeLog, err := newLogger("mouse", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open history database: %v\n", err)
		logger.Warn("playing without history", "error", err)
		store = nil // Continue without storage - game still works
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW: width,
			ScreenH: height,
			Seed:    flagSeed,
		},
		Store:     store,
		Logger:    logger,
		SessionID: fmt.Sprintf("local-%d", time.Now().UnixNano()),
	})

	if store != nil {
		store.Close()
	}
	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}
