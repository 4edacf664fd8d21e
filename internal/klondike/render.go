package klondike

import (
	"fmt"
	"unicode/utf8"

	"github.com/vovakirdan/tui-klondike/internal/cards"
	"github.com/vovakirdan/tui-klondike/internal/core"
)

// Render draws the board, the dragged cards and the win banner.
// The toolbar rows above the board are left to the platform.
func (g *Game) Render(dst *core.Screen) {
	l := g.layout
	if !l.Fits() {
		renderTooSmall(dst, l)
		return
	}

	b := g.board
	for i, f := range b.Foundations {
		drawTopOrSlot(dst, l.FoundationRect(i), f, "A")
	}
	drawTopOrSlot(dst, l.WasteRect(), b.Waste, "")

	if len(b.Stock) > 0 {
		drawBack(dst, l.StockRect())
	} else {
		hint := ""
		if len(b.Waste) > 0 {
			hint = "↻"
		}
		drawSlot(dst, l.StockRect(), hint)
	}

	for i, p := range b.Tableau {
		if len(p) == 0 {
			drawSlot(dst, l.CardRect(p, i, 0), "K")
			continue
		}
		for j, c := range p {
			drawCard(dst, l.CardRect(p, i, j), c)
		}
	}

	if d := g.drag; d != nil {
		x, y := d.X-d.OffsetX, d.Y-d.OffsetY
		for k, c := range d.Cards {
			drawCard(dst, core.NewRect(x, y+k*l.FanUp, l.CardW, l.CardH), c)
		}
	}

	if g.won {
		renderWin(dst, l)
	}
}

func renderTooSmall(dst *core.Screen, l Layout) {
	w, h := l.MinSize()
	y := dst.Height() / 2
	dst.DrawTextCentered(y, "Window too small")
	dst.DrawTextCentered(y+1, fmt.Sprintf("Please resize terminal to at least %dx%d", w, h))
}

func renderWin(dst *core.Screen, l Layout) {
	msg := "  You win!  "
	w := utf8.RuneCountInString(msg) + 2
	r := core.NewRect((dst.Width()-w)/2, l.TableauY+2, w, 3)
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorBrightYellow)
	dst.DrawTextColored(r.X+1, r.Y+1, msg, core.ColorBrightYellow)
}

// drawTopOrSlot draws the top card of a pile, or an empty slot with a hint.
func drawTopOrSlot(dst *core.Screen, r core.Rect, p Pile, hint string) {
	if top, ok := p.Top(); ok {
		drawCard(dst, r, top)
		return
	}
	drawSlot(dst, r, hint)
}

func drawSlot(dst *core.Screen, r core.Rect, hint string) {
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorGray)
	if hint != "" {
		cx, cy := r.Center()
		dst.DrawTextColored(cx-utf8.RuneCountInString(hint)/2, cy, hint, core.ColorGray)
	}
}

func drawBack(dst *core.Screen, r core.Rect) {
	dst.DrawBox(r, core.ColorBlue)
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)
	dst.DrawRect(inner, '░', core.ColorBlue)
}

func drawCard(dst *core.Screen, r core.Rect, c cards.Card) {
	if !c.FaceUp {
		drawBack(dst, r)
		return
	}

	color := core.ColorBrightWhite
	if c.Color() == cards.Red {
		color = core.ColorBrightRed
	}

	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, color)

	label := c.String()
	dst.DrawTextColored(r.X+1, r.Y+1, label, color)
	if r.H >= 4 {
		x := r.Right() - 1 - utf8.RuneCountInString(label)
		dst.DrawTextColored(x, r.Bottom()-2, label, color)
	}
	if r.H >= 5 {
		cx, cy := r.Center()
		dst.SetColored(cx, cy, c.Suit.Symbol(), color)
	}
}
