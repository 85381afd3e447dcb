// Package game implements the Find The Mouse rules: five face-down cards, one
// of them hides a mouse, and the player has a few guesses to find it.
//
// The rules live in pure transition functions over the State value. They return
// the new state together with the view commands the transition produced. The
// Controller owns the only mutable State and forwards commands to a View.
package game

import (
	"errors"
	"fmt"
)

// CardCount is the number of cards on the table.
const CardCount = 5

// DefaultGuesses is the number of guesses a game starts with.
const DefaultGuesses = 3

// ErrCardOutOfRange is returned when a card index is not in [0, CardCount).
var ErrCardOutOfRange = errors.New("game: card index out of range")

// ErrNotDealt is returned when a card is picked before a game was dealt.
var ErrNotDealt = errors.New("game: no game dealt")

// Status is the lifecycle of a single game.
type Status int

const (
	StatusInProgress Status = iota
	StatusWon
	StatusLost
)

// String returns a human-readable name for the status.
func (s Status) String() string {
	switch s {
	case StatusInProgress:
		return "in progress"
	case StatusWon:
		return "won"
	case StatusLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether the game has ended.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost
}

// State is the complete state of one game plus the running session totals.
// It is a plain value: copying it copies everything, including the revealed set.
type State struct {
	Mouse    int             // Index of the card hiding the mouse
	Guesses  int             // Guesses remaining
	Revealed [CardCount]bool // Cards already picked and turned away
	Status   Status
	Score    int // Session score, carried across games
	Streak   int // Consecutive wins, carried across won games; a loss ends it
}

// NewGame deals a fresh game with the mouse under the given card.
// Score and streak are carried over from prev; everything else is replaced.
func NewGame(prev State, mouse, guesses int) (State, []Command, error) {
	if err := checkCard(mouse); err != nil {
		return prev, nil, err
	}
	if guesses < 1 || guesses >= CardCount {
		return prev, nil, fmt.Errorf("game: invalid guess count %d", guesses)
	}

	next := State{
		Mouse:   mouse,
		Guesses: guesses,
		Status:  StatusInProgress,
		Score:   prev.Score,
		Streak:  prev.Streak,
	}

	cmds := make([]Command, 0, CardCount+3)
	for i := range CardCount {
		cmds = append(cmds, ShowCard(i))
	}
	cmds = append(cmds,
		UpdateGuessCounter(next.Guesses),
		UpdateScore(next.Score),
		UpdateStreak(next.Streak),
	)
	return next, cmds, nil
}

// Click applies one pick of the given card.
//
// Picking an already revealed card, or any card after the game ended, leaves
// the state unchanged and produces no commands. Replaying the result dialog
// for late clicks is the controller's decision. A state that was never dealt
// (no guesses left but still in progress) rejects every pick with ErrNotDealt.
func (s State) Click(card int) (State, []Command, error) {
	if err := checkCard(card); err != nil {
		return s, nil, err
	}
	if s.Status.Terminal() {
		return s, nil, nil
	}
	if s.Guesses <= 0 {
		return s, nil, ErrNotDealt
	}
	if s.Revealed[card] {
		return s, nil, nil
	}

	next := s
	next.Guesses--

	if card == s.Mouse {
		next.Status = StatusWon
		next.Score += s.Guesses
		next.Streak++
		return next, []Command{
			RevealMouse(card),
			UpdateGuessCounter(next.Guesses),
			UpdateScore(next.Score),
			UpdateStreak(next.Streak),
			ShowWinDialog(),
		}, nil
	}

	next.Revealed[card] = true
	cmds := []Command{
		HideCard(card),
		UpdateGuessCounter(next.Guesses),
	}
	if next.Guesses == 0 {
		next.Status = StatusLost
		next.Streak = 0
		cmds = append(cmds, UpdateStreak(0), ShowLoseDialog(next.Mouse))
	}
	return next, cmds, nil
}

// ResetSession zeroes the session totals. The current game is left as is;
// callers deal a new game right after.
func (s State) ResetSession() State {
	s.Score = 0
	s.Streak = 0
	return s
}

// Dialog returns the end-of-game dialog command for a finished game.
// The second result is false while the game is still in progress.
func (s State) Dialog() (Command, bool) {
	switch s.Status {
	case StatusWon:
		return ShowWinDialog(), true
	case StatusLost:
		return ShowLoseDialog(s.Mouse), true
	default:
		return Command{}, false
	}
}

// RevealedCount returns how many wrong cards have been turned away.
func (s State) RevealedCount() int {
	n := 0
	for _, r := range s.Revealed {
		if r {
			n++
		}
	}
	return n
}

func checkCard(card int) error {
	if card < 0 || card >= CardCount {
		return fmt.Errorf("%w: %d", ErrCardOutOfRange, card)
	}
	return nil
}
