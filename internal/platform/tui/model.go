package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/find-the-mouse/internal/config"
	"github.com/vovakirdan/find-the-mouse/internal/core"
	"github.com/vovakirdan/find-the-mouse/internal/game"
	"github.com/vovakirdan/find-the-mouse/internal/storage"
)

// Options configures a game screen.
type Options struct {
	Config    config.Config
	Runtime   core.RuntimeConfig
	Store     *storage.Store // optional, results are not saved without it
	Logger    *log.Logger    // optional
	SessionID string         // prefix for recorded session IDs
}

// Model is the Bubble Tea model for one player's table.
type Model struct {
	controller *game.Controller
	board      *Board
	screen     *core.Screen
	scheduler  *teaScheduler
	store      *storage.Store
	logger     *log.Logger
	cfg        config.Config
	layout     Layout
	keys       KeyMap
	help       help.Model

	scores     ScoreboardModel
	showScores bool
	width      int
	height     int
	quitting   bool
}

// NewModel creates the game screen. The first game is dealt by Init.
func NewModel(opts Options) (Model, error) {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	board := NewBoard()
	sched := newTeaScheduler()

	gameOpts := opts.Config.Game.Options()
	gameOpts.SessionID = opts.SessionID
	gameOpts.Scheduler = sched
	gameOpts.Logger = logger
	if opts.Store != nil {
		gameOpts.Recorder = opts.Store
	}

	controller, err := game.NewController(board, rand.New(rand.NewSource(rt.Seed)), gameOpts)
	if err != nil {
		return Model{}, err
	}

	m := Model{
		controller: controller,
		board:      board,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH),
		scheduler:  sched,
		store:      opts.Store,
		logger:     logger,
		cfg:        opts.Config,
		keys:       DefaultKeyMap(),
		help:       help.New(),
	}
	m.resize(rt.ScreenW, rt.ScreenH)
	return m, nil
}

// Init deals the first game.
func (m Model) Init() tea.Cmd {
	if err := m.controller.StartGame(); err != nil {
		m.logger.Error("first deal failed", "error", err)
	}
	return m.scheduler.drain()
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case DealMsg:
		// Deals keep running while the scoreboard is open.
		m.scheduler.fire(msg.ID)

	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		if m.showScores {
			m, cmd = m.updateScores(msg)
		}

	case tea.KeyMsg:
		if m.showScores {
			m, cmd = m.updateScores(msg)
			break
		}
		if msg.String() == "ctrl+s" {
			m.saveScreenshot()
			break
		}
		m, cmd = m.handleInput(m.keys.MapKey(msg))

	case tea.MouseMsg:
		if m.showScores {
			break
		}
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			break
		}
		if m.board.DialogOpen() {
			m, cmd = m.handleInput(core.Input{Action: core.ActionDismiss})
			break
		}
		if card := m.layout.CardAt(msg.X, msg.Y); card >= 0 {
			m, cmd = m.handleInput(core.Pick(card))
		}
	}

	return m, tea.Batch(cmd, m.scheduler.drain())
}

// handleInput applies one decoded input to the table.
func (m Model) handleInput(in core.Input) (Model, tea.Cmd) {
	switch in.Action {
	case core.ActionQuit, core.ActionBack:
		m.controller.Close()
		m.quitting = true
		return m, tea.Quit

	case core.ActionDismiss:
		m.board.DismissDialog()

	case core.ActionPick:
		// The dialog is modal: it has to be dismissed before the next pick.
		if m.board.DialogOpen() {
			return m, nil
		}
		if err := m.controller.HandleCardClick(in.Card); err != nil {
			m.logger.Warn("pick rejected", "card", in.Card, "error", err)
		}

	case core.ActionMenu:
		m.board.DismissDialog()
		m.controller.MenuOrSearchKey()

	case core.ActionNewSession:
		m.board.DismissDialog()
		m.controller.ResetGame(true)

	case core.ActionScores:
		m.scores = NewScoreboardModel(m.store, m.width, m.height)
		m.showScores = true
	}
	return m, nil
}

// updateScores forwards a message to the embedded scoreboard.
func (m Model) updateScores(msg tea.Msg) (Model, tea.Cmd) {
	next, cmd := m.scores.Update(msg)
	m.scores = next.(ScoreboardModel)

	switch {
	case m.scores.IsQuitting():
		m.controller.Close()
		m.quitting = true
		return m, tea.Quit
	case m.scores.IsGoingBack():
		m.showScores = false
		return m, nil
	}
	return m, cmd
}

// resize updates the screen buffer and card layout for a new terminal size.
func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	boardH := h
	if m.cfg.UI.ShowHints {
		boardH-- // Help line
	}
	boardH = max(boardH, 1)
	m.screen.Resize(w, boardH)
	m.layout = Layout{
		ScreenW: w,
		ScreenH: boardH,
		CardW:   m.cfg.UI.CardWidth,
		CardH:   m.cfg.UI.CardHeight,
	}
	m.help.Width = w
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.layout.Draw(m.screen, m.board)

	dir := filepath.Join(os.Getenv("HOME"), ".mouse", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot dir", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("mouse_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.showScores {
		return m.scores.View()
	}

	m.layout.Draw(m.screen, m.board)
	out := RenderScreen(m.screen)
	if m.cfg.UI.ShowHints {
		out += "\n" + m.help.View(m.keys)
	}
	return out
}

// Controller exposes the game controller, mainly for tests and the SSH server.
func (m Model) Controller() *game.Controller {
	return m.controller
}

// Run starts the Bubble Tea program on the local terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Cards can be clicked
	)

	final, err := p.Run()
	// Make sure the session is recorded even if the program was killed.
	if fm, ok := final.(Model); ok {
		fm.controller.Close()
	}
	return err
}
