package config

import (
	_ "embed"
)

//go:embed defaults/mouse.yaml
var defaultYAML []byte

// Default returns the hardcoded default configuration.
// It matches defaults/mouse.yaml and is used if the embedded file cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			Guesses:      3,
			ResetDelayMS: 1000,
			ReplayDialog: true,
		},
		UI: UIConfig{
			CardWidth:  9,
			CardHeight: 7,
			ShowHints:  true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultYAML
}
