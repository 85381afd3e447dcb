package core

// Action is a semantic input event, abstracted from physical keys and mouse clicks.
type Action int

const (
	ActionNone       Action = iota
	ActionPick              // 1-5 or a mouse click on a card
	ActionMenu              // M or / - the old menu/search key, resets the session after a game ends
	ActionNewSession        // N - explicit session reset at any time
	ActionDismiss           // Enter, Space, O - close the result dialog
	ActionBack              // Esc, B - leave the game
	ActionQuit              // Q, Ctrl+C - exit
	ActionScores            // Tab - open the scoreboard
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPick:
		return "Pick"
	case ActionMenu:
		return "Menu"
	case ActionNewSession:
		return "NewSession"
	case ActionDismiss:
		return "Dismiss"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	case ActionScores:
		return "Scores"
	default:
		return "Unknown"
	}
}

// Input is one decoded input event. Card is only meaningful for ActionPick
// and holds the zero-based card index.
type Input struct {
	Action Action
	Card   int
}

// Pick returns the input for choosing the given card.
func Pick(card int) Input {
	return Input{Action: ActionPick, Card: card}
}
