package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/find-the-mouse/internal/core"
	"github.com/vovakirdan/find-the-mouse/internal/game"
)

var ansiSeq = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(80, 24)
	b := NewBoard()
	game.Apply(b, game.UpdateGuessCounter(2), game.HideCard(1), game.RevealMouse(3), game.ShowWinDialog())
	Layout{ScreenW: 80, ScreenH: 24, CardW: 9, CardH: 7}.Draw(s, b)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != s.Height() {
		t.Fatalf("rendered %d lines, want %d", len(lines), s.Height())
	}
	for y, line := range lines {
		if got := ansiSeq.ReplaceAllString(line, ""); got != s.Row(y) {
			t.Errorf("line %d = %q, want %q", y, got, s.Row(y))
		}
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("RenderScreen(0x0) = %q, want empty", out)
	}

	s := core.NewScreen(3, 2)
	if out := RenderScreen(s); out != "   \n   " {
		t.Errorf("RenderScreen(blank 3x2) = %q", out)
	}
}
