package klondike

import (
	"testing"

	"github.com/vovakirdan/tui-klondike/internal/cards"
)

// dragBoard builds a small hand-made position:
//
//	tableau[0]: 4♣(down) 9♥ 8♣
//	tableau[1]: 10♠
//	tableau[2]: (empty)
//	tableau[3]: 3♦(down) K♥
//	foundation[0]: A♠
//	waste: 5♥ 2♠
func dragBoard() *Board {
	b := &Board{}
	b.Tableau[0] = Pile{down(cards.Four, cards.Clubs), up(cards.Nine, cards.Hearts), up(cards.Eight, cards.Clubs)}
	b.Tableau[1] = Pile{up(cards.Ten, cards.Spades)}
	b.Tableau[3] = Pile{down(cards.Three, cards.Diamonds), up(cards.King, cards.Hearts)}
	b.Foundations[0] = Pile{up(cards.Ace, cards.Spades)}
	b.Waste = Pile{up(cards.Five, cards.Hearts), up(cards.Two, cards.Spades)}
	return b
}

func TestPickUpTableauRun(t *testing.T) {
	b := dragBoard()

	d, ok := PickUp(b, Tableau(0), 1)
	if !ok {
		t.Fatal("PickUp of a face-up card should succeed")
	}
	samePile(t, "payload", d.Cards, Pile{up(cards.Nine, cards.Hearts), up(cards.Eight, cards.Clubs)})
	samePile(t, "source", b.Tableau[0], Pile{down(cards.Four, cards.Clubs)})
	if d.Source != Tableau(0) || d.Index != 1 {
		t.Errorf("drag source = %v/%d, want tableau[0]/1", d.Source, d.Index)
	}
}

func TestPickUpRejects(t *testing.T) {
	tests := []struct {
		name  string
		src   PileRef
		index int
	}{
		{"face-down tableau card", Tableau(0), 0},
		{"index past end", Tableau(0), 3},
		{"negative index", Tableau(1), -1},
		{"empty tableau pile", Tableau(2), 0},
		{"waste below top", Waste(), 0},
		{"stock", Stock(), 0},
		{"bad pile", Tableau(9), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := dragBoard()
			before := b.Clone()
			if _, ok := PickUp(b, tc.src, tc.index); ok {
				t.Fatalf("PickUp(%v, %d) should fail", tc.src, tc.index)
			}
			for i := range b.Tableau {
				samePile(t, "tableau", b.Tableau[i], before.Tableau[i])
			}
			samePile(t, "waste", b.Waste, before.Waste)
		})
	}
}

func TestDropCommitsValidTableauMove(t *testing.T) {
	b := dragBoard()

	// 9♥ 8♣ onto 10♠
	d, _ := PickUp(b, Tableau(0), 1)
	if got := Drop(b, d, Tableau(1), true); got != OutcomeCommitted {
		t.Fatalf("Drop = %v, want committed", got)
	}

	samePile(t, "destination", b.Tableau[1], Pile{
		up(cards.Ten, cards.Spades), up(cards.Nine, cards.Hearts), up(cards.Eight, cards.Clubs),
	})
	// The card left behind is revealed
	samePile(t, "source", b.Tableau[0], Pile{up(cards.Four, cards.Clubs)})
}

func TestDropKingOnEmptyPileEmptiesSource(t *testing.T) {
	b := dragBoard()
	b.Tableau[3] = Pile{up(cards.King, cards.Hearts)}

	d, _ := PickUp(b, Tableau(3), 0)
	if got := Drop(b, d, Tableau(2), true); got != OutcomeCommitted {
		t.Fatalf("Drop = %v, want committed", got)
	}
	if len(b.Tableau[3]) != 0 {
		t.Errorf("source should be empty, has %v", b.Tableau[3])
	}
	samePile(t, "destination", b.Tableau[2], Pile{up(cards.King, cards.Hearts)})
}

func TestDropRollbackRestoresSource(t *testing.T) {
	tests := []struct {
		name string
		dest PileRef
		over bool
	}{
		{"invalid tableau target", Tableau(3), true},
		{"empty pile needs a king", Tableau(2), true},
		{"not over any pile", PileRef{}, false},
		{"back onto the source", Tableau(0), true},
		{"run onto a foundation", Foundation(1), true},
		{"onto the waste", Waste(), true},
		{"onto the stock", Stock(), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := dragBoard()
			before := b.Clone()

			d, ok := PickUp(b, Tableau(0), 1)
			if !ok {
				t.Fatal("PickUp failed")
			}
			if got := Drop(b, d, tc.dest, tc.over); got != OutcomeRolledBack {
				t.Fatalf("Drop = %v, want rolled back", got)
			}

			for i := range b.Tableau {
				samePile(t, "tableau", b.Tableau[i], before.Tableau[i])
			}
			for i := range b.Foundations {
				samePile(t, "foundation", b.Foundations[i], before.Foundations[i])
			}
			samePile(t, "waste", b.Waste, before.Waste)
			// The face-down card under the run stays hidden
			if b.Tableau[0][0].FaceUp {
				t.Error("rollback must not reveal cards")
			}
		})
	}
}

func TestDropOnFoundation(t *testing.T) {
	b := dragBoard()

	// 2♠ from the waste onto A♠
	d, ok := PickUp(b, Waste(), 1)
	if !ok {
		t.Fatal("the top waste card should be liftable")
	}
	if got := Drop(b, d, Foundation(0), true); got != OutcomeCommitted {
		t.Fatalf("Drop = %v, want committed", got)
	}
	samePile(t, "foundation", b.Foundations[0], Pile{up(cards.Ace, cards.Spades), up(cards.Two, cards.Spades)})
	samePile(t, "waste", b.Waste, Pile{up(cards.Five, cards.Hearts)})

	// 8♣ cannot start an empty foundation
	d, _ = PickUp(b, Tableau(0), 2)
	if got := Drop(b, d, Foundation(1), true); got != OutcomeRolledBack {
		t.Fatalf("Drop = %v, want rolled back", got)
	}
	if len(b.Tableau[0]) != 3 {
		t.Errorf("source should be restored, has %v", b.Tableau[0])
	}
}

func TestPickUpFromFoundation(t *testing.T) {
	b := dragBoard()
	b.Foundations[1] = Pile{up(cards.Ace, cards.Hearts), up(cards.Two, cards.Hearts), up(cards.Three, cards.Hearts),
		up(cards.Four, cards.Hearts), up(cards.Five, cards.Hearts), up(cards.Six, cards.Hearts),
		up(cards.Seven, cards.Hearts), up(cards.Eight, cards.Hearts), up(cards.Nine, cards.Hearts)}

	// 9♥ back down onto 10♠
	d, ok := PickUp(b, Foundation(1), 8)
	if !ok {
		t.Fatal("the top foundation card should be liftable")
	}
	if got := Drop(b, d, Tableau(1), true); got != OutcomeCommitted {
		t.Fatalf("Drop = %v, want committed", got)
	}
	if len(b.Foundations[1]) != 8 {
		t.Errorf("foundation should have 8 cards, has %d", len(b.Foundations[1]))
	}
}

func TestDropWithoutDrag(t *testing.T) {
	b := dragBoard()
	if got := Drop(b, nil, Tableau(0), true); got != OutcomeNone {
		t.Errorf("Drop(nil) = %v, want none", got)
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeCommitted.String() != "committed" || OutcomeRolledBack.String() != "rolled back" || OutcomeNone.String() != "none" {
		t.Error("unexpected outcome names")
	}
}
