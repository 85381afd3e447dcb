package tui

import (
	"fmt"

	"github.com/vovakirdan/find-the-mouse/internal/core"
	"github.com/vovakirdan/find-the-mouse/internal/game"
)

const (
	cardGap   = 2
	hudHeight = 4 // Title, blank, counters, blank
	mouseArt  = "<:3 )~"
)

// Layout positions the cards on a screen of the given size.
type Layout struct {
	ScreenW, ScreenH int
	CardW, CardH     int
}

// Cards returns the rectangle of every card slot, centered horizontally below the HUD.
func (l Layout) Cards() [game.CardCount]core.Rect {
	var rects [game.CardCount]core.Rect
	total := game.CardCount*l.CardW + (game.CardCount-1)*cardGap
	x := (l.ScreenW - total) / 2
	for i := range rects {
		rects[i] = core.NewRect(x+i*(l.CardW+cardGap), hudHeight, l.CardW, l.CardH)
	}
	return rects
}

// TooSmall reports whether the board cannot fit on screen.
func (l Layout) TooSmall() bool {
	minW := game.CardCount*l.CardW + (game.CardCount-1)*cardGap
	minH := hudHeight + l.CardH + 2
	return l.ScreenW < minW || l.ScreenH < minH
}

// CardAt returns the card under the screen position, or -1.
func (l Layout) CardAt(x, y int) int {
	for i, r := range l.Cards() {
		if r.Contains(x, y) {
			return i
		}
	}
	return -1
}

// Draw renders the board into dst.
func (l Layout) Draw(dst *core.Screen, b *Board) {
	dst.Clear()

	if l.TooSmall() {
		y := dst.Height() / 2
		dst.DrawTextCentered(y, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
		return
	}

	dst.DrawTextCentered(0, "FIND THE MOUSE", core.ColorBrightYellow)
	hud := fmt.Sprintf("Guesses left: %d   Score: %d   Streak: %d", b.Guesses, b.Score, b.Streak)
	dst.DrawTextCentered(2, hud, core.ColorWhite)

	for i, r := range l.Cards() {
		drawCard(dst, r, i, b.Faces[i])
	}

	if d := b.Dialog(); d != nil {
		drawDialog(dst, d)
	}
}

func drawCard(dst *core.Screen, r core.Rect, index int, face Face) {
	label := fmt.Sprintf("%d", index+1)
	cx, cy := r.Center()

	switch face {
	case FaceGone:
		// Removed cards leave an empty slot, only the number stays.
		dst.DrawTextColored(cx, r.Bottom()-1, label, core.ColorGray)
	case FaceMouse:
		dst.DrawBox(r, core.ColorGreen)
		dst.DrawTextColored(r.X+(r.W-len(mouseArt))/2, cy, mouseArt, core.ColorBrightWhite)
		dst.DrawTextColored(cx, r.Bottom()-1, label, core.ColorGreen)
	default:
		dst.DrawBox(r, core.ColorBlue)
		inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
		dst.DrawRect(inner, '░', core.ColorBlue)
		dst.DrawTextColored(cx, cy, "?", core.ColorBrightYellow)
		dst.DrawTextColored(cx, r.Bottom()-1, label, core.ColorCyan)
	}
}

func drawDialog(dst *core.Screen, d *Dialog) {
	const button = "[ OK ]"
	w := core.Clamp(len(d.Message)+4, 30, max(dst.Width(), 30))
	h := 7
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)

	color := core.ColorRed
	if d.Won {
		color = core.ColorGreen
	}
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	dst.DrawTextColored(box.X+(w-len(d.Title))/2, box.Y+1, d.Title, color)
	dst.DrawTextColored(box.X+(w-len(d.Message))/2, box.Y+3, d.Message, core.ColorWhite)
	dst.DrawTextColored(box.X+(w-len(button))/2, box.Y+5, button, core.ColorBrightWhite)
}
