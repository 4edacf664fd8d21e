// Package cards models the standard 52-card deck used by Klondike.
package cards

import "fmt"

// Suit is one of the four card suits.
type Suit int

const (
	Hearts Suit = iota
	Diamonds
	Clubs
	Spades
)

// Suits lists the suits in canonical deck order.
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

var suitNames = []string{"hearts", "diamonds", "clubs", "spades"}
var suitSymbols = []rune{'♥', '♦', '♣', '♠'}

// String returns the lower-case suit name (e.g. "spades").
func (s Suit) String() string {
	if s < Hearts || s > Spades {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Symbol returns the suit glyph.
func (s Suit) Symbol() rune {
	if s < Hearts || s > Spades {
		return '?'
	}
	return suitSymbols[s]
}

// Color is the red/black color class of a suit.
type Color int

const (
	Red Color = iota
	Black
)

// Color returns red for hearts and diamonds, black for clubs and spades.
func (s Suit) Color() Color {
	if s == Hearts || s == Diamonds {
		return Red
	}
	return Black
}

// Rank is a card rank. Ace is low for every comparison.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists the ranks in canonical deck order (Ace last).
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

// String returns the short rank label (e.g. "10", "Q").
func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Card is a suit and rank plus the visibility flag.
// Suit and rank never change; FaceUp flips when the card is revealed.
type Card struct {
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// New returns a face-down card.
func New(rank Rank, suit Suit) Card {
	return Card{Suit: suit, Rank: rank}
}

// Same reports whether two cards are the same suit and rank,
// ignoring visibility.
func (c Card) Same(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Color returns the color class of the card's suit.
func (c Card) Color() Color {
	return c.Suit.Color()
}

// String returns the card as rank and suit glyph (e.g. "K♠").
func (c Card) String() string {
	return c.Rank.String() + string(c.Suit.Symbol())
}

// Key returns the asset key for the card face, e.g. "K_spades".
func (c Card) Key() string {
	return c.Rank.String() + "_" + c.Suit.String()
}
