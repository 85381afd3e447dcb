package game

import "fmt"

// View is everything the game needs from the screen. All calls happen on the
// goroutine that drives the Controller.
type View interface {
	ShowCard(card int)
	HideCard(card int)
	RevealMouse(card int)
	UpdateGuessCounter(n int)
	UpdateScore(n int)
	UpdateStreak(n int)
	ShowWinDialog()
	ShowLoseDialog(mouse int)
}

// CommandKind identifies a view update.
type CommandKind int

const (
	CmdShowCard CommandKind = iota + 1
	CmdHideCard
	CmdRevealMouse
	CmdUpdateGuessCounter
	CmdUpdateScore
	CmdUpdateStreak
	CmdShowWinDialog
	CmdShowLoseDialog
)

// Command is a view update produced by a transition.
// Value is the card index or counter value, depending on Kind.
type Command struct {
	Kind  CommandKind
	Value int
}

// ShowCard turns a card face down and puts it back on the table.
func ShowCard(card int) Command { return Command{Kind: CmdShowCard, Value: card} }

// HideCard removes a wrongly picked card from the table.
func HideCard(card int) Command { return Command{Kind: CmdHideCard, Value: card} }

// RevealMouse turns the card hiding the mouse face up.
func RevealMouse(card int) Command { return Command{Kind: CmdRevealMouse, Value: card} }

// UpdateGuessCounter shows the guesses left.
func UpdateGuessCounter(n int) Command { return Command{Kind: CmdUpdateGuessCounter, Value: n} }

// UpdateScore shows the session score.
func UpdateScore(n int) Command { return Command{Kind: CmdUpdateScore, Value: n} }

// UpdateStreak shows the current winning streak.
func UpdateStreak(n int) Command { return Command{Kind: CmdUpdateStreak, Value: n} }

// ShowWinDialog opens the win dialog.
func ShowWinDialog() Command { return Command{Kind: CmdShowWinDialog} }

// ShowLoseDialog opens the lose dialog naming the card that hid the mouse.
func ShowLoseDialog(mouse int) Command { return Command{Kind: CmdShowLoseDialog, Value: mouse} }

// String returns the command in call form, e.g. "HideCard(2)".
func (c Command) String() string {
	switch c.Kind {
	case CmdShowCard:
		return fmt.Sprintf("ShowCard(%d)", c.Value)
	case CmdHideCard:
		return fmt.Sprintf("HideCard(%d)", c.Value)
	case CmdRevealMouse:
		return fmt.Sprintf("RevealMouse(%d)", c.Value)
	case CmdUpdateGuessCounter:
		return fmt.Sprintf("UpdateGuessCounter(%d)", c.Value)
	case CmdUpdateScore:
		return fmt.Sprintf("UpdateScore(%d)", c.Value)
	case CmdUpdateStreak:
		return fmt.Sprintf("UpdateStreak(%d)", c.Value)
	case CmdShowWinDialog:
		return "ShowWinDialog()"
	case CmdShowLoseDialog:
		return fmt.Sprintf("ShowLoseDialog(%d)", c.Value)
	default:
		return fmt.Sprintf("Command(%d, %d)", c.Kind, c.Value)
	}
}

// Apply forwards commands to the view in order.
func Apply(v View, cmds ...Command) {
	for _, c := range cmds {
		switch c.Kind {
		case CmdShowCard:
			v.ShowCard(c.Value)
		case CmdHideCard:
			v.HideCard(c.Value)
		case CmdRevealMouse:
			v.RevealMouse(c.Value)
		case CmdUpdateGuessCounter:
			v.UpdateGuessCounter(c.Value)
		case CmdUpdateScore:
			v.UpdateScore(c.Value)
		case CmdUpdateStreak:
			v.UpdateStreak(c.Value)
		case CmdShowWinDialog:
			v.ShowWinDialog()
		case CmdShowLoseDialog:
			v.ShowLoseDialog(c.Value)
		}
	}
}
