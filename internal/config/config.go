// Package config provides YAML-based game configuration loading for Find The Mouse.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/find-the-mouse/internal/game"
)

// CardCount is the number of cards on the table. It is fixed by the game rules.
const CardCount = game.CardCount

// Config contains all configuration for the game.
type Config struct {
	Game GameConfig `yaml:"game"`
	UI   UIConfig   `yaml:"ui"`
}

// GameConfig defines the rules of a single game.
type GameConfig struct {
	Guesses      int  `yaml:"guesses"`
	ResetDelayMS int  `yaml:"reset_delay_ms"`
	ReplayDialog bool `yaml:"replay_dialog"`
}

// UIConfig defines how the board is drawn.
type UIConfig struct {
	CardWidth  int  `yaml:"card_width"`
	CardHeight int  `yaml:"card_height"`
	ShowHints  bool `yaml:"show_hints"`
}

// ResetDelay returns the delay between a win and the next deal.
func (g GameConfig) ResetDelay() time.Duration {
	return time.Duration(g.ResetDelayMS) * time.Millisecond
}

// Options converts the game section into controller options.
func (g GameConfig) Options() game.Options {
	opts := game.DefaultOptions()
	opts.Guesses = g.Guesses
	opts.ResetDelay = g.ResetDelay()
	opts.ReplayDialog = g.ReplayDialog
	return opts
}

// Validate checks that all values are playable.
func (c Config) Validate() error {
	if c.Game.Guesses < 1 || c.Game.Guesses >= CardCount {
		return fmt.Errorf("config: invalid game.guesses %d (must be 1..%d)", c.Game.Guesses, CardCount-1)
	}
	if c.Game.ResetDelayMS < 0 {
		return fmt.Errorf("config: invalid game.reset_delay_ms %d (must be >= 0)", c.Game.ResetDelayMS)
	}
	if c.UI.CardWidth < 5 {
		return fmt.Errorf("config: invalid ui.card_width %d (must be >= 5)", c.UI.CardWidth)
	}
	if c.UI.CardHeight < 3 {
		return fmt.Errorf("config: invalid ui.card_height %d (must be >= 3)", c.UI.CardHeight)
	}
	return nil
}
