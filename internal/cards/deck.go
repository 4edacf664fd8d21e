package cards

import "math/rand"

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is an ordered sequence of cards.
type Deck []Card

// NewDeck returns all 52 cards face down, suit-major in canonical order.
func NewDeck() Deck {
	deck := make(Deck, 0, DeckSize)
	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck = append(deck, New(rank, suit))
		}
	}
	return deck
}

// Shuffle permutes the deck in place using Fisher-Yates.
// The same rng seed always produces the same order.
func Shuffle(deck Deck, rng *rand.Rand) {
	for i := len(deck) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		deck[i], deck[j] = deck[j], deck[i]
	}
}

// Pop removes and returns the last card of the deck.
// Panics on an empty deck.
func (d *Deck) Pop() Card {
	n := len(*d)
	if n == 0 {
		panic("cards: pop from empty deck")
	}
	c := (*d)[n-1]
	*d = (*d)[:n-1]
	return c
}

// Complete reports whether the cards are exactly one of each suit and rank.
func Complete(cs []Card) bool {
	if len(cs) != DeckSize {
		return false
	}
	seen := make(map[[2]int]bool, DeckSize)
	for _, c := range cs {
		if c.Rank < Ace || c.Rank > King || c.Suit < Hearts || c.Suit > Spades {
			return false
		}
		k := [2]int{int(c.Suit), int(c.Rank)}
		if seen[k] {
			return false
		}
		seen[k] = true
	}
	return true
}
