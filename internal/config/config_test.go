package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("embedded defaults = %+v, hardcoded = %+v", cfg, Default())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("game:\n  reset_delay_ms: 250\n"))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if cfg.Game.ResetDelay() != 250*time.Millisecond {
		t.Errorf("ResetDelay() = %v, expected 250ms", cfg.Game.ResetDelay())
	}
	if cfg.Game.Guesses != 3 {
		t.Errorf("unset fields should keep defaults, guesses = %d", cfg.Game.Guesses)
	}
	if !cfg.Game.ReplayDialog {
		t.Error("replay_dialog should default to true")
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero guesses", "game:\n  guesses: 0\n"},
		{"guesses equal to cards", "game:\n  guesses: 5\n"},
		{"negative delay", "game:\n  reset_delay_ms: -1\n"},
		{"narrow card", "ui:\n  card_width: 2\n"},
		{"short card", "ui:\n  card_height: 1\n"},
		{"not yaml", "game: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := os.WriteFile(path, []byte("game:\n  guesses: 2\n  replay_dialog: false\n"), 0o600); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Game.Guesses != 2 {
		t.Errorf("guesses = %d, expected 2", cfg.Game.Guesses)
	}
	if cfg.Game.ReplayDialog {
		t.Error("replay_dialog should be false")
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() with a missing custom path should fail")
	}
}

func TestGameOptions(t *testing.T) {
	opts := Default().Game.Options()
	if opts.Guesses != 3 || opts.ResetDelay != time.Second || !opts.ReplayDialog {
		t.Errorf("Options() = %+v", opts)
	}
}
