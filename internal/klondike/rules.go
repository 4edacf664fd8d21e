package klondike

import "github.com/vovakirdan/tui-klondike/internal/cards"

// CanPlaceOnTableau reports whether card may start a run on the given
// tableau pile. An empty pile takes only a King; otherwise the top card must
// be face up, of the opposite color and exactly one rank higher.
func CanPlaceOnTableau(card cards.Card, pile Pile) bool {
	top, ok := pile.Top()
	if !ok {
		return card.Rank == cards.King
	}
	return top.FaceUp &&
		card.Color() != top.Color() &&
		card.Rank == top.Rank-1
}

// CanPlaceOnFoundation reports whether card may go on the foundation pile.
// An empty foundation takes only an Ace; otherwise the card must follow the
// top card in the same suit.
func CanPlaceOnFoundation(card cards.Card, pile Pile) bool {
	top, ok := pile.Top()
	if !ok {
		return card.Rank == cards.Ace
	}
	return card.Suit == top.Suit && card.Rank == top.Rank+1
}

// Won reports whether every foundation holds a complete suit.
func Won(foundations [FoundationPiles]Pile) bool {
	for _, f := range foundations {
		if len(f) != len(cards.Ranks) {
			return false
		}
	}
	return true
}
