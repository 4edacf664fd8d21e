package klondike

import (
	"testing"

	"github.com/vovakirdan/tui-klondike/internal/cards"
)

func TestDealShape(t *testing.T) {
	b := Deal(shuffledDeck(1))

	for i, p := range b.Tableau {
		if len(p) != i+1 {
			t.Errorf("tableau[%d] has %d cards, want %d", i, len(p), i+1)
		}
		for j, c := range p {
			wantUp := j == len(p)-1
			if c.FaceUp != wantUp {
				t.Errorf("tableau[%d][%d] FaceUp = %v, want %v", i, j, c.FaceUp, wantUp)
			}
		}
	}

	if len(b.Stock) != StockAfterDeal {
		t.Errorf("stock has %d cards, want %d", len(b.Stock), StockAfterDeal)
	}
	for i, f := range b.Foundations {
		if len(f) != 0 {
			t.Errorf("foundation[%d] should be empty, has %d", i, len(f))
		}
	}
	if len(b.Waste) != 0 {
		t.Errorf("waste should be empty, has %d", len(b.Waste))
	}

	faceUp := 0
	for _, c := range b.Cards() {
		if c.FaceUp {
			faceUp++
		}
	}
	if faceUp != TableauPiles {
		t.Errorf("%d cards face up after deal, want %d", faceUp, TableauPiles)
	}

	if !cards.Complete(b.Cards()) {
		t.Error("dealt board should hold every card exactly once")
	}
}

func TestDealTakesCardsFromTheEnd(t *testing.T) {
	deck := cards.NewDeck() // unshuffled for predictable positions
	b := Deal(deck)

	// Pile 0 gets the last card, pile 1 the next two in pop order
	if !b.Tableau[0][0].Same(deck[51]) {
		t.Errorf("tableau[0][0] = %v, want %v", b.Tableau[0][0], deck[51])
	}
	if !b.Tableau[1][0].Same(deck[50]) || !b.Tableau[1][1].Same(deck[49]) {
		t.Errorf("tableau[1] = %v, want [%v %v]", b.Tableau[1], deck[50], deck[49])
	}

	// The stock keeps the untouched prefix in order
	for i, c := range b.Stock {
		if !c.Same(deck[i]) {
			t.Fatalf("stock[%d] = %v, want %v", i, c, deck[i])
		}
	}

	// The caller's deck is left intact
	if len(deck) != cards.DeckSize {
		t.Errorf("Deal modified the input deck length: %d", len(deck))
	}
}

func TestDealPanicsOnShortDeck(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Deal with 51 cards should panic")
		}
	}()
	Deal(cards.NewDeck()[:51])
}

func TestDrawMovesStockToWaste(t *testing.T) {
	b := &Board{Stock: Pile{down(cards.Two, cards.Clubs), down(cards.Nine, cards.Hearts)}}

	if !b.Draw() {
		t.Fatal("Draw should succeed with a non-empty stock")
	}
	samePile(t, "stock", b.Stock, Pile{down(cards.Two, cards.Clubs)})
	samePile(t, "waste", b.Waste, Pile{up(cards.Nine, cards.Hearts)})

	b.Draw()
	samePile(t, "waste", b.Waste, Pile{up(cards.Nine, cards.Hearts), up(cards.Two, cards.Clubs)})
	if len(b.Stock) != 0 {
		t.Fatalf("stock should be empty, has %d", len(b.Stock))
	}

	// Empty stock: the waste turns over, first drawn card on top again
	if !b.Draw() {
		t.Fatal("Draw should recycle the waste")
	}
	samePile(t, "stock", b.Stock, Pile{down(cards.Two, cards.Clubs), down(cards.Nine, cards.Hearts)})
	if len(b.Waste) != 0 {
		t.Errorf("waste should be empty after recycling, has %d", len(b.Waste))
	}

	empty := &Board{}
	if empty.Draw() {
		t.Error("Draw with empty stock and waste should report no change")
	}
}

func TestDrawThroughWholeStockKeepsDeck(t *testing.T) {
	b := Deal(shuffledDeck(9))
	for i := 0; i < 3*(StockAfterDeal+1); i++ {
		b.Draw()
		if !cards.Complete(b.Cards()) {
			t.Fatalf("after %d draws the board lost or duplicated a card", i+1)
		}
	}
}

func TestPileRefs(t *testing.T) {
	b := Deal(shuffledDeck(3))

	if b.Pile(Tableau(7)) != nil || b.Pile(Tableau(-1)) != nil {
		t.Error("out of range tableau refs should be nil")
	}
	if b.Pile(Foundation(4)) != nil {
		t.Error("out of range foundation ref should be nil")
	}
	if b.Pile(PileRef{Kind: PileKind(99)}) != nil {
		t.Error("unknown kind should be nil")
	}
	if p := b.Pile(Tableau(3)); p == nil || len(*p) != 4 {
		t.Error("Pile(Tableau(3)) should address the 4-card pile")
	}
	if got := Foundation(2).String(); got != "foundation[2]" {
		t.Errorf("Foundation(2).String() = %q", got)
	}
	if got := Waste().String(); got != "waste" {
		t.Errorf("Waste().String() = %q", got)
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := Deal(shuffledDeck(4))
	c := b.Clone()

	c.Tableau[0][0].FaceUp = false
	c.Stock = c.Stock[:0]

	if !b.Tableau[0][0].FaceUp {
		t.Error("modifying the clone changed the original tableau")
	}
	if len(b.Stock) != StockAfterDeal {
		t.Error("modifying the clone changed the original stock")
	}
}
