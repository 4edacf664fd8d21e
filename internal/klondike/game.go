package klondike

import (
	"math/rand"

	"github.com/vovakirdan/tui-klondike/internal/cards"
	"github.com/vovakirdan/tui-klondike/internal/core"
)

// Game owns one deal: the board, its on-screen layout, and the active drag.
// It turns pointer events into board changes. All methods run on the
// caller's goroutine; the platform serialises events.
type Game struct {
	params LayoutParams
	layout Layout
	board  *Board
	drag   *Drag
	seed   int64

	won     bool
	touched bool // A card has moved since the deal
}

// NewGame creates a game with the given board geometry.
// Call Reset before use.
func NewGame(p LayoutParams) *Game {
	return &Game{
		params: p,
		layout: NewLayout(p, 0, 0),
		board:  &Board{},
	}
}

// Reset shuffles a fresh deck with cfg.Seed and deals it.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	deck := cards.NewDeck()
	cards.Shuffle(deck, rand.New(rand.NewSource(cfg.Seed)))

	g.board = Deal(deck)
	g.drag = nil
	g.seed = cfg.Seed
	g.won = false
	g.touched = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize recomputes the layout. Board contents are unaffected.
func (g *Game) Resize(w, h int) {
	g.layout = NewLayout(g.params, w, h)
}

// Board returns the current board.
func (g *Game) Board() *Board {
	return g.board
}

// Layout returns the current layout.
func (g *Game) Layout() Layout {
	return g.layout
}

// Drag returns the active drag, or nil when idle.
func (g *Game) Drag() *Drag {
	return g.drag
}

// Dragging reports whether cards are currently lifted.
func (g *Game) Dragging() bool {
	return g.drag != nil
}

// Seed returns the seed of the current deal.
func (g *Game) Seed() int64 {
	return g.seed
}

// Won reports whether every card has reached the foundations.
func (g *Game) Won() bool {
	return g.won
}

// Touched reports whether any card has moved since the deal.
func (g *Game) Touched() bool {
	return g.touched
}

// PointerDown handles a press at (x, y). A press on the stock draws a card;
// a press on a liftable card starts a drag. Returns true if the board changed.
func (g *Game) PointerDown(x, y int) bool {
	if g.won || g.drag != nil || !g.layout.Fits() {
		return false
	}

	hit, ok := HitTest(g.board, g.layout, x, y)
	if !ok {
		return false
	}

	if hit.Pile.Kind == KindStock {
		return g.Draw()
	}

	origin := g.cardOrigin(hit)
	d, ok := PickUp(g.board, hit.Pile, hit.Card)
	if !ok {
		return false
	}
	d.OffsetX = x - origin.X
	d.OffsetY = y - origin.Y
	d.X, d.Y = x, y
	g.drag = d
	return true
}

// cardOrigin returns the on-screen rectangle of the hit card.
func (g *Game) cardOrigin(hit Hit) core.Rect {
	switch hit.Pile.Kind {
	case KindFoundation:
		return g.layout.FoundationRect(hit.Pile.Index)
	case KindWaste:
		return g.layout.WasteRect()
	case KindStock:
		return g.layout.StockRect()
	default:
		p := g.board.Tableau[hit.Pile.Index]
		return g.layout.CardRect(p, hit.Pile.Index, hit.Card)
	}
}

// PointerMove tracks the pointer while dragging. No-op when idle.
func (g *Game) PointerMove(x, y int) {
	if g.drag == nil {
		return
	}
	g.drag.X, g.drag.Y = x, y
}

// PointerUp releases the active drag over (x, y) and returns to idle.
func (g *Game) PointerUp(x, y int) Outcome {
	if g.drag == nil {
		return OutcomeNone
	}

	d := g.drag
	g.drag = nil

	hit, over := HitTest(g.board, g.layout, x, y)
	outcome := Drop(g.board, d, hit.Pile, over)
	if outcome == OutcomeCommitted {
		g.touched = true
		g.won = Won(g.board.Foundations)
	}
	return outcome
}

// Draw turns the next stock card, recycling the waste when the stock is
// empty. Ignored while dragging or after the game is won.
func (g *Game) Draw() bool {
	if g.won || g.drag != nil {
		return false
	}
	if !g.board.Draw() {
		return false
	}
	g.touched = true
	return true
}

// Cards returns every card in play, including any being dragged.
func (g *Game) Cards() []cards.Card {
	all := g.board.Cards()
	if g.drag != nil {
		all = append(all, g.drag.Cards...)
	}
	return all
}
