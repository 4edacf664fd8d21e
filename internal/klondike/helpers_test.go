package klondike

import (
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-klondike/internal/cards"
)

// up returns a face-up card.
func up(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Rank: r, Suit: s, FaceUp: true}
}

// down returns a face-down card.
func down(r cards.Rank, s cards.Suit) cards.Card {
	return cards.Card{Rank: r, Suit: s}
}

// shuffledDeck returns a deck shuffled with the given seed.
func shuffledDeck(seed int64) cards.Deck {
	deck := cards.NewDeck()
	cards.Shuffle(deck, rand.New(rand.NewSource(seed)))
	return deck
}

// samePile compares piles card for card, including FaceUp.
func samePile(t *testing.T, name string, got, want Pile) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("%s: len = %d, want %d (%v vs %v)", name, len(got), len(want), got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("%s[%d] = %+v, want %+v", name, i, got[i], want[i])
		}
	}
}
