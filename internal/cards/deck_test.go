package cards

import (
	"math/rand"
	"testing"
)

func TestNewDeckCanonicalOrder(t *testing.T) {
	deck := NewDeck()

	if len(deck) != DeckSize {
		t.Fatalf("len(NewDeck()) = %d, expected %d", len(deck), DeckSize)
	}
	if !Complete(deck) {
		t.Fatal("NewDeck() should contain every card exactly once")
	}

	// Suit-major, rank-minor with Ace last
	if first := deck[0]; !first.Same(New(Two, Hearts)) {
		t.Errorf("first card = %v, expected 2♥", first)
	}
	if c := deck[12]; !c.Same(New(Ace, Hearts)) {
		t.Errorf("card 12 = %v, expected A♥", c)
	}
	if c := deck[13]; !c.Same(New(Two, Diamonds)) {
		t.Errorf("card 13 = %v, expected 2♦", c)
	}
	if last := deck[51]; !last.Same(New(Ace, Spades)) {
		t.Errorf("last card = %v, expected A♠", last)
	}

	for i, c := range deck {
		if c.FaceUp {
			t.Errorf("card %d (%v) should be face down", i, c)
		}
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 50; trial++ {
		deck := NewDeck()
		Shuffle(deck, rng)
		if !Complete(deck) {
			t.Fatalf("trial %d: shuffled deck is not a permutation of the full deck", trial)
		}
	}
}

func TestShuffleDeterministicWithSeed(t *testing.T) {
	a := NewDeck()
	b := NewDeck()
	Shuffle(a, rand.New(rand.NewSource(42)))
	Shuffle(b, rand.New(rand.NewSource(42)))

	for i := range a {
		if !a[i].Same(b[i]) {
			t.Fatalf("same seed produced different orders at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestShuffleProducesDifferentOrders(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[string]bool)
	const trials = 100

	for i := 0; i < trials; i++ {
		deck := NewDeck()
		Shuffle(deck, rng)
		key := ""
		for _, c := range deck {
			key += c.Key() + ","
		}
		seen[key] = true
	}

	if len(seen) != trials {
		t.Errorf("expected %d distinct orderings, got %d", trials, len(seen))
	}

	unshuffled := NewDeck()
	moved := NewDeck()
	Shuffle(moved, rng)
	same := 0
	for i := range unshuffled {
		if unshuffled[i].Same(moved[i]) {
			same++
		}
	}
	if same == DeckSize {
		t.Error("shuffle left the deck in canonical order")
	}
}

func TestDeckPop(t *testing.T) {
	deck := NewDeck()
	top := deck[len(deck)-1]

	got := deck.Pop()
	if !got.Same(top) {
		t.Errorf("Pop() = %v, expected %v", got, top)
	}
	if len(deck) != DeckSize-1 {
		t.Errorf("len after Pop = %d, expected %d", len(deck), DeckSize-1)
	}

	t.Run("empty deck panics", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Error("Pop on an empty deck should panic")
			}
		}()
		var empty Deck
		empty.Pop()
	})
}

func TestComplete(t *testing.T) {
	deck := NewDeck()

	dup := append(Deck{}, deck...)
	dup[0] = dup[1]
	if Complete(dup) {
		t.Error("deck with a duplicate should not be complete")
	}

	if Complete(deck[:51]) {
		t.Error("51 cards should not be complete")
	}

	bad := append(Deck{}, deck...)
	bad[5].Rank = 0
	if Complete(bad) {
		t.Error("deck with an invalid rank should not be complete")
	}
}
