package tui

import (
	"fmt"

	"github.com/vovakirdan/find-the-mouse/internal/game"
)

// Face is what a card slot currently shows.
type Face int

const (
	FaceDown  Face = iota // Unrevealed card
	FaceGone              // Wrong guess, card removed from the table
	FaceMouse             // The mouse, found
)

// Dialog is the result box shown at the end of a game.
type Dialog struct {
	Title   string
	Message string
	Won     bool
}

// Board holds everything the screen displays. It implements game.View and
// is only touched from the Bubble Tea update loop.
type Board struct {
	Faces   [game.CardCount]Face
	Guesses int
	Score   int
	Streak  int
	dialog  *Dialog
}

// NewBoard creates a board with all cards face down.
func NewBoard() *Board {
	return &Board{}
}

// ShowCard, HideCard and RevealMouse set the face of one slot; indices
// outside the table are ignored.
func (b *Board) ShowCard(card int)    { b.setFace(card, FaceDown) }
func (b *Board) HideCard(card int)    { b.setFace(card, FaceGone) }
func (b *Board) RevealMouse(card int) { b.setFace(card, FaceMouse) }

// UpdateGuessCounter, UpdateScore and UpdateStreak set the HUD counters.
func (b *Board) UpdateGuessCounter(n int) { b.Guesses = n }
func (b *Board) UpdateScore(n int)        { b.Score = n }
func (b *Board) UpdateStreak(n int)       { b.Streak = n }

// ShowWinDialog opens the win dialog.
func (b *Board) ShowWinDialog() {
	b.dialog = &Dialog{
		Title:   "You Win!",
		Message: "You found the mouse!",
		Won:     true,
	}
}

// ShowLoseDialog opens the lose dialog. Cards are numbered from 1 on screen.
func (b *Board) ShowLoseDialog(mouse int) {
	b.dialog = &Dialog{
		Title:   "You Lose",
		Message: fmt.Sprintf("You're out of guesses. The mouse was under card %d.", mouse+1),
	}
}

// Dialog returns the open dialog, or nil.
func (b *Board) Dialog() *Dialog {
	return b.dialog
}

// DialogOpen reports whether a dialog is covering the board.
func (b *Board) DialogOpen() bool {
	return b.dialog != nil
}

// DismissDialog closes the dialog if one is open.
func (b *Board) DismissDialog() {
	b.dialog = nil
}

func (b *Board) setFace(card int, f Face) {
	if card < 0 || card >= game.CardCount {
		return
	}
	b.Faces[card] = f
}

var _ game.View = (*Board)(nil)
