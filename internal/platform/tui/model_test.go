package tui

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/find-the-mouse/internal/config"
	"github.com/vovakirdan/find-the-mouse/internal/core"
	"github.com/vovakirdan/find-the-mouse/internal/game"
	"github.com/vovakirdan/find-the-mouse/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store) Model {
	t.Helper()
	m, err := NewModel(Options{
		Config:    config.Default(),
		Runtime:   core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 7},
		Store:     store,
		SessionID: "test",
	})
	if err != nil {
		t.Fatalf("NewModel() error: %v", err)
	}
	m.Init()
	return m
}

func send(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func pickKey(card int) tea.KeyMsg {
	return runeKey(rune('1' + card))
}

// wrongCards returns every card that does not hide the mouse.
func wrongCards(mouse int) []int {
	var out []int
	for i := range game.CardCount {
		if i != mouse {
			out = append(out, i)
		}
	}
	return out
}

func TestModelInitDeals(t *testing.T) {
	m := newTestModel(t, nil)

	st := m.Controller().State()
	if st.Status != game.StatusInProgress || st.Guesses != game.DefaultGuesses {
		t.Fatalf("state after Init = %+v", st)
	}
	if m.board.Guesses != game.DefaultGuesses {
		t.Errorf("board guesses = %d, want %d", m.board.Guesses, game.DefaultGuesses)
	}
	if !strings.Contains(m.View(), "FIND THE MOUSE") {
		t.Error("view should show the title")
	}
}

func TestModelWinThenDelayedDeal(t *testing.T) {
	m := newTestModel(t, nil)
	mouse := m.Controller().State().Mouse

	m = send(m, pickKey(mouse))

	if m.board.Faces[mouse] != FaceMouse {
		t.Errorf("card %d = %v, want FaceMouse", mouse, m.board.Faces[mouse])
	}
	if d := m.board.Dialog(); d == nil || !d.Won {
		t.Fatalf("expected win dialog, got %+v", d)
	}
	if m.board.Score != 3 || m.board.Streak != 1 {
		t.Errorf("score/streak = %d/%d, want 3/1", m.board.Score, m.board.Streak)
	}
	if !m.Controller().PendingReset() || m.scheduler.pending() != 1 {
		t.Fatal("next deal should be scheduled")
	}

	m = send(m, DealMsg{ID: m.scheduler.next})

	st := m.Controller().State()
	if st.Status != game.StatusInProgress || st.Score != 3 || st.Streak != 1 {
		t.Errorf("state after deal = %+v", st)
	}
	if m.board.Faces != [game.CardCount]Face{} {
		t.Errorf("faces after deal = %v, want all face down", m.board.Faces)
	}
}

func TestModelLoseReplayAndMenu(t *testing.T) {
	m := newTestModel(t, nil)
	mouse := m.Controller().State().Mouse
	wrong := wrongCards(mouse)

	m = send(m, pickKey(wrong[0]))
	if m.board.Faces[wrong[0]] != FaceGone || m.board.Guesses != 2 {
		t.Fatalf("after first miss: face=%v guesses=%d", m.board.Faces[wrong[0]], m.board.Guesses)
	}
	m = send(m, pickKey(wrong[1]))
	m = send(m, pickKey(wrong[2]))

	if m.Controller().State().Status != game.StatusLost {
		t.Fatalf("status = %v, want Lost", m.Controller().State().Status)
	}
	d := m.board.Dialog()
	if d == nil || d.Won {
		t.Fatalf("expected lose dialog, got %+v", d)
	}
	if !strings.Contains(d.Message, string(rune('1'+mouse))) {
		t.Errorf("lose message %q should name card %d", d.Message, mouse+1)
	}

	// Picks are ignored while the dialog is open.
	before := m.Controller().State()
	m = send(m, pickKey(mouse))
	if m.Controller().State() != before {
		t.Error("pick under open dialog changed the state")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.board.DialogOpen() {
		t.Fatal("enter should dismiss the dialog")
	}

	// A late pick brings the dialog back.
	m = send(m, pickKey(mouse))
	if !m.board.DialogOpen() {
		t.Error("late pick should replay the dialog")
	}
	if m.Controller().State() != before {
		t.Error("late pick changed the state")
	}

	m = send(m, runeKey('m'))
	st := m.Controller().State()
	if st.Status != game.StatusInProgress || st.Guesses != game.DefaultGuesses || st.Score != 0 || st.Streak != 0 {
		t.Errorf("state after menu key = %+v", st)
	}
	if m.board.DialogOpen() {
		t.Error("menu key should close the dialog")
	}
}

func TestModelMenuKeyMidGame(t *testing.T) {
	m := newTestModel(t, nil)
	mouse := m.Controller().State().Mouse

	m = send(m, pickKey(wrongCards(mouse)[0]))
	before := m.Controller().State()

	m = send(m, runeKey('/'))
	if m.Controller().State() != before {
		t.Error("menu key mid-game must not reset")
	}

	m = send(m, runeKey('n'))
	if st := m.Controller().State(); st.Guesses != game.DefaultGuesses || st.RevealedCount() != 0 {
		t.Errorf("n should deal a fresh game, got %+v", st)
	}
}

func TestModelMouseClick(t *testing.T) {
	m := newTestModel(t, nil)
	mouse := m.Controller().State().Mouse

	x, y := m.layout.Cards()[mouse].Center()
	m = send(m, tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.Controller().State().Status != game.StatusWon {
		t.Fatalf("click on the mouse card should win, status = %v", m.Controller().State().Status)
	}

	// Any click closes the dialog.
	m = send(m, tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if m.board.DialogOpen() {
		t.Error("click should dismiss the dialog")
	}
}

func TestModelMouseIgnored(t *testing.T) {
	m := newTestModel(t, nil)
	mouse := m.Controller().State().Mouse
	x, y := m.layout.Cards()[mouse].Center()

	tests := []struct {
		name string
		msg  tea.MouseMsg
	}{
		{"release", tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}},
		{"right button", tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonRight}},
		{"outside cards", tea.MouseMsg{X: 0, Y: 0, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := send(m, tt.msg)
			if got.Controller().State().Guesses != game.DefaultGuesses {
				t.Errorf("%s should not pick", tt.name)
			}
		})
	}
}

func TestModelResize(t *testing.T) {
	m := newTestModel(t, nil)
	m = send(m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39 (one line for help)", m.screen.Width(), m.screen.Height())
	}
	if m.layout.ScreenW != 120 {
		t.Errorf("layout width = %d, want 120", m.layout.ScreenW)
	}
}

func TestModelScoresScreen(t *testing.T) {
	m := newTestModel(t, nil)
	mouse := m.Controller().State().Mouse
	m = send(m, pickKey(mouse))

	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.showScores {
		t.Fatal("tab should open the scores")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scores view expected")
	}

	// The delayed deal still lands while the scores are shown.
	m = send(m, DealMsg{ID: m.scheduler.next})
	if m.Controller().State().Status != game.StatusInProgress {
		t.Error("deal did not run behind the scores screen")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.showScores {
		t.Error("esc should return to the table")
	}
	if m.quitting {
		t.Error("esc on the scores must not quit the game")
	}
}

func TestModelQuitClosesController(t *testing.T) {
	m := newTestModel(t, nil)

	next, cmd := m.Update(runeKey('q'))
	m = next.(Model)
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.quitting || m.View() != "" {
		t.Error("model should be quitting with an empty view")
	}
	if err := m.Controller().HandleCardClick(0); !errors.Is(err, game.ErrClosed) {
		t.Errorf("click after quit = %v, want ErrClosed", err)
	}
}

func TestModelRecordsSession(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store)
	mouse := m.Controller().State().Mouse
	m = send(m, pickKey(mouse))
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	sessions, err := store.TopSessions(10)
	if err != nil {
		t.Fatalf("TopSessions() error: %v", err)
	}
	if len(sessions) != 1 || sessions[0].Score != 3 || sessions[0].Games != 1 {
		t.Errorf("sessions = %+v, want one session with score 3", sessions)
	}

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() error: %v", err)
	}
	if stats.GamesPlayed != 1 || stats.GamesWon != 1 || stats.MouseAt[mouse] != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestNewModelRejectsBadRules(t *testing.T) {
	cfg := config.Default()
	cfg.Game.Guesses = 7

	if _, err := NewModel(Options{Config: cfg, Runtime: core.DefaultConfig()}); err == nil {
		t.Fatal("NewModel() should reject 7 guesses")
	}
}
