package game

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultResetDelay is the pause after a win before the next deal.
const DefaultResetDelay = time.Second

// ErrClosed is returned when a click reaches a controller that was torn down.
var ErrClosed = errors.New("game: controller closed")

// Rand picks the mouse card. *rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Scheduler runs fn once after d on the goroutine that drives the controller.
// The returned function cancels the call if it has not run yet.
type Scheduler interface {
	Schedule(d time.Duration, fn func()) (cancel func())
}

// GameResult describes one finished game.
type GameResult struct {
	SessionID   string
	Won         bool
	Mouse       int
	GuessesUsed int
	Points      int
}

// SessionResult describes one finished session (the span between session resets).
type SessionResult struct {
	SessionID  string
	Score      int
	BestStreak int
	Games      int
}

// Recorder persists finished games and sessions.
type Recorder interface {
	RecordGame(GameResult) error
	RecordSession(SessionResult) error
}

// Options configures a Controller. Zero values fall back to defaults.
type Options struct {
	Guesses      int
	ResetDelay   time.Duration
	ReplayDialog bool
	SessionID    string // Prefix for session IDs handed to the Recorder

	Scheduler Scheduler   // nil means the next deal after a win happens immediately
	Recorder  Recorder    // optional
	Logger    *log.Logger // optional
}

// DefaultOptions returns the standard rules: three guesses, one second pause
// after a win, and the result dialog replayed on late clicks.
func DefaultOptions() Options {
	return Options{
		Guesses:      DefaultGuesses,
		ResetDelay:   DefaultResetDelay,
		ReplayDialog: true,
	}
}

// Controller drives one player's games. It is not safe for concurrent use;
// every method must be called from the same event loop.
type Controller struct {
	view   View
	rng    Rand
	opts   Options
	logger *log.Logger

	state State

	pending    func() // cancels the scheduled deal, nil if none
	generation uint64 // bumped whenever a scheduled deal becomes stale
	closed     bool

	sessionSeq   int
	sessionID    string
	sessionGames int
	bestStreak   int
}

// Validate checks that the options describe a playable game. A zero Guesses
// is allowed and means DefaultGuesses.
func (o Options) Validate() error {
	if o.Guesses != 0 && (o.Guesses < 1 || o.Guesses >= CardCount) {
		return fmt.Errorf("game: invalid guesses %d (must be 1..%d)", o.Guesses, CardCount-1)
	}
	if o.ResetDelay < 0 {
		return fmt.Errorf("game: invalid reset delay %v", o.ResetDelay)
	}
	return nil
}

// NewController creates a controller. It does not deal; call StartGame.
// Picks before the first successful deal fail with ErrNotDealt.
func NewController(view View, rng Rand, opts Options) (*Controller, error) {
	if view == nil || rng == nil {
		return nil, errors.New("game: controller needs a view and a random source")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if opts.Guesses == 0 {
		opts.Guesses = DefaultGuesses
	}
	if opts.SessionID == "" {
		opts.SessionID = fmt.Sprintf("local-%d", time.Now().UnixNano())
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	c := &Controller{
		view:   view,
		rng:    rng,
		opts:   opts,
		logger: logger,
	}
	c.beginSession()
	return c, nil
}

// State returns a copy of the current state.
func (c *Controller) State() State {
	return c.state
}

// SessionID returns the identifier of the running session.
func (c *Controller) SessionID() string {
	return c.sessionID
}

// PendingReset reports whether a delayed deal is scheduled.
func (c *Controller) PendingReset() bool {
	return c.pending != nil
}

// StartGame deals a new game, keeping the session score and streak.
// If the deal fails the table is left undealt, so picks fail with ErrNotDealt
// instead of playing on in a stale game.
func (c *Controller) StartGame() error {
	if c.closed {
		return ErrClosed
	}
	c.cancelPending()

	mouse := c.rng.Intn(CardCount)
	next, cmds, err := NewGame(c.state, mouse, c.opts.Guesses)
	if err != nil {
		// Only reachable with a broken Rand.
		c.logger.Error("cannot start game", "error", err)
		c.state = State{Score: c.state.Score, Streak: c.state.Streak}
		return fmt.Errorf("game: cannot deal: %w", err)
	}
	c.state = next
	c.logger.Info("starting game", "session", c.sessionID, "guesses", next.Guesses)
	c.logger.Debug("shh... the mouse is under card", "card", mouse+1)
	Apply(c.view, cmds...)
	return nil
}

// HandleCardClick processes a pick of the given card.
// An index outside [0, CardCount) is a contract violation and returns ErrCardOutOfRange.
func (c *Controller) HandleCardClick(card int) error {
	if c.closed {
		return ErrClosed
	}

	prev := c.state
	if prev.Status.Terminal() {
		if err := checkCard(card); err != nil {
			return err
		}
		if cmd, ok := prev.Dialog(); ok && c.opts.ReplayDialog {
			Apply(c.view, cmd)
		}
		return nil
	}

	next, cmds, err := prev.Click(card)
	if err != nil {
		return err
	}
	c.state = next
	Apply(c.view, cmds...)

	c.logger.Debug("card picked", "card", card+1, "guesses", next.Guesses, "status", next.Status)

	if next.Status.Terminal() {
		c.finishGame(prev, next)
	}
	if next.Status == StatusWon {
		c.ResetGame(false)
	}
	return nil
}

// ResetGame starts over. With resetSession the score and streak are zeroed and
// the new game is dealt at once. Otherwise the deal happens after the reset
// delay, so the player can see where the mouse was.
func (c *Controller) ResetGame(resetSession bool) {
	if c.closed {
		return
	}
	if resetSession {
		c.endSession()
		c.state = c.state.ResetSession()
		c.beginSession()
		c.StartGame() //nolint:errcheck // logged by StartGame
		return
	}

	c.cancelPending()
	if c.opts.Scheduler == nil || c.opts.ResetDelay <= 0 {
		c.StartGame() //nolint:errcheck // logged by StartGame
		return
	}
	gen := c.generation
	c.pending = c.opts.Scheduler.Schedule(c.opts.ResetDelay, func() {
		if c.closed || gen != c.generation {
			return
		}
		c.pending = nil
		c.StartGame() //nolint:errcheck // logged by StartGame
	})
}

// MenuOrSearchKey resets the session, but only once the game has ended so a
// stray key press mid-game cannot wipe the score.
func (c *Controller) MenuOrSearchKey() {
	if !c.state.Status.Terminal() {
		return
	}
	c.ResetGame(true)
}

// Close tears the controller down: a pending deal is discarded and the
// session is recorded. Further calls are ignored.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.cancelPending()
	c.endSession()
	c.closed = true
}

func (c *Controller) cancelPending() {
	c.generation++
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}

func (c *Controller) finishGame(prev, next State) {
	if next.Streak > c.bestStreak {
		c.bestStreak = next.Streak
	}
	c.sessionGames++

	result := GameResult{
		SessionID:   c.sessionID,
		Won:         next.Status == StatusWon,
		Mouse:       next.Mouse,
		GuessesUsed: c.opts.Guesses - next.Guesses,
		Points:      next.Score - prev.Score,
	}
	c.logger.Info("game over",
		"session", c.sessionID,
		"status", next.Status,
		"mouse", next.Mouse+1,
		"score", next.Score,
		"streak", next.Streak,
	)

	if c.opts.Recorder == nil {
		return
	}
	if err := c.opts.Recorder.RecordGame(result); err != nil {
		c.logger.Warn("could not record game", "error", err)
	}
}

func (c *Controller) beginSession() {
	c.sessionSeq++
	c.sessionID = fmt.Sprintf("%s-%d", c.opts.SessionID, c.sessionSeq)
	c.sessionGames = 0
	c.bestStreak = 0
}

func (c *Controller) endSession() {
	if c.opts.Recorder == nil || c.sessionGames == 0 || c.state.Score == 0 {
		return
	}
	result := SessionResult{
		SessionID:  c.sessionID,
		Score:      c.state.Score,
		BestStreak: c.bestStreak,
		Games:      c.sessionGames,
	}
	if err := c.opts.Recorder.RecordSession(result); err != nil {
		c.logger.Warn("could not record session", "error", err)
	}
}
