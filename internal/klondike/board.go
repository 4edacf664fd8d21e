// Package klondike implements the Klondike solitaire board, its move rules,
// and the drag-and-drop interaction used to play it with a pointer.
package klondike

import (
	"fmt"

	"github.com/vovakirdan/tui-klondike/internal/cards"
)

// Board dimensions.
const (
	TableauPiles    = 7
	FoundationPiles = 4
	StockAfterDeal  = cards.DeckSize - TableauPiles*(TableauPiles+1)/2 // 24
)

// PileKind identifies one of the four board areas.
type PileKind int

const (
	KindTableau PileKind = iota
	KindFoundation
	KindStock
	KindWaste
)

// String returns the area name.
func (k PileKind) String() string {
	switch k {
	case KindTableau:
		return "tableau"
	case KindFoundation:
		return "foundation"
	case KindStock:
		return "stock"
	case KindWaste:
		return "waste"
	default:
		return "unknown"
	}
}

// PileRef addresses a single pile on the board.
// Index is ignored for the stock and the waste.
type PileRef struct {
	Kind  PileKind
	Index int
}

// Tableau returns a reference to tableau pile i.
func Tableau(i int) PileRef { return PileRef{Kind: KindTableau, Index: i} }

// Foundation returns a reference to foundation pile i.
func Foundation(i int) PileRef { return PileRef{Kind: KindFoundation, Index: i} }

// Stock returns a reference to the stock.
func Stock() PileRef { return PileRef{Kind: KindStock} }

// Waste returns a reference to the waste.
func Waste() PileRef { return PileRef{Kind: KindWaste} }

// String returns e.g. "tableau[3]" or "waste".
func (r PileRef) String() string {
	switch r.Kind {
	case KindTableau, KindFoundation:
		return fmt.Sprintf("%s[%d]", r.Kind, r.Index)
	default:
		return r.Kind.String()
	}
}

// Pile is an ordered stack of cards; the last element is the top.
type Pile []cards.Card

// Top returns the top card, or false if the pile is empty.
func (p Pile) Top() (cards.Card, bool) {
	if len(p) == 0 {
		return cards.Card{}, false
	}
	return p[len(p)-1], true
}

// revealTop turns the top card face up if there is one.
func (p Pile) revealTop() {
	if len(p) > 0 {
		p[len(p)-1].FaceUp = true
	}
}

// Board is the full Klondike layout.
type Board struct {
	Tableau     [TableauPiles]Pile
	Foundations [FoundationPiles]Pile
	Stock       Pile
	Waste       Pile
}

// Deal lays out a fresh game from a shuffled 52-card deck.
// Tableau pile i receives i+1 cards popped from the end of the deck with
// only the last one face up; the remaining 24 cards become the stock.
// Panics if the deck does not hold exactly 52 cards.
func Deal(deck cards.Deck) *Board {
	if len(deck) != cards.DeckSize {
		panic(fmt.Sprintf("klondike: deal needs %d cards, got %d", cards.DeckSize, len(deck)))
	}

	remaining := append(cards.Deck(nil), deck...)
	b := &Board{}
	for i := range TableauPiles {
		pile := make(Pile, 0, i+1)
		for range i + 1 {
			c := remaining.Pop()
			c.FaceUp = false
			pile = append(pile, c)
		}
		pile.revealTop()
		b.Tableau[i] = pile
	}

	b.Stock = make(Pile, 0, len(remaining))
	for _, c := range remaining {
		c.FaceUp = false
		b.Stock = append(b.Stock, c)
	}
	return b
}

// Pile returns a pointer to the referenced pile, or nil for an invalid ref.
func (b *Board) Pile(ref PileRef) *Pile {
	switch ref.Kind {
	case KindTableau:
		if ref.Index >= 0 && ref.Index < TableauPiles {
			return &b.Tableau[ref.Index]
		}
	case KindFoundation:
		if ref.Index >= 0 && ref.Index < FoundationPiles {
			return &b.Foundations[ref.Index]
		}
	case KindStock:
		return &b.Stock
	case KindWaste:
		return &b.Waste
	}
	return nil
}

// Draw turns the top stock card face up onto the waste. When the stock is
// empty the waste is turned back over to form a new stock, so the first card
// drawn is on top again. Returns false if both piles are empty.
func (b *Board) Draw() bool {
	if len(b.Stock) == 0 {
		if len(b.Waste) == 0 {
			return false
		}
		stock := make(Pile, 0, len(b.Waste))
		for i := len(b.Waste) - 1; i >= 0; i-- {
			c := b.Waste[i]
			c.FaceUp = false
			stock = append(stock, c)
		}
		b.Stock = stock
		b.Waste = nil
		return true
	}

	c := b.Stock[len(b.Stock)-1]
	b.Stock = b.Stock[:len(b.Stock)-1]
	c.FaceUp = true
	b.Waste = append(b.Waste, c)
	return true
}

// Cards returns every card on the board, tableau first.
func (b *Board) Cards() []cards.Card {
	out := make([]cards.Card, 0, cards.DeckSize)
	for _, p := range b.Tableau {
		out = append(out, p...)
	}
	for _, p := range b.Foundations {
		out = append(out, p...)
	}
	out = append(out, b.Stock...)
	out = append(out, b.Waste...)
	return out
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	c := &Board{}
	for i, p := range b.Tableau {
		c.Tableau[i] = append(Pile(nil), p...)
	}
	for i, p := range b.Foundations {
		c.Foundations[i] = append(Pile(nil), p...)
	}
	c.Stock = append(Pile(nil), b.Stock...)
	c.Waste = append(Pile(nil), b.Waste...)
	return c
}
