package klondike

import "github.com/vovakirdan/tui-klondike/internal/cards"

// Outcome is the result of releasing the pointer.
type Outcome int

const (
	OutcomeNone       Outcome = iota // Nothing was being dragged
	OutcomeCommitted                 // Cards moved to the destination
	OutcomeRolledBack                // Cards returned to their source pile
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeCommitted:
		return "committed"
	case OutcomeRolledBack:
		return "rolled back"
	default:
		return "none"
	}
}

// Drag is the payload held between pointer-down and pointer-up.
// The lifted cards are removed from the board while the drag is active.
type Drag struct {
	Source PileRef      // Pile the cards were lifted from
	Index  int          // Position of the first lifted card in Source
	Cards  []cards.Card // Lifted run, bottom card first

	// Pointer position relative to the first card's top-left corner,
	// and the current pointer position. Used only for drawing.
	OffsetX, OffsetY int
	X, Y             int
}

// Lead returns the first (bottom-most) lifted card.
func (d *Drag) Lead() cards.Card {
	return d.Cards[0]
}

// PickUp lifts cards starting at index from the source pile.
// From the tableau any face-up card may be lifted together with every card
// above it; the run itself is not checked. From the waste and foundations
// only the top card may be lifted. The stock is never a drag source.
// Returns false, leaving the board untouched, if nothing can be lifted.
func PickUp(b *Board, src PileRef, index int) (*Drag, bool) {
	pile := b.Pile(src)
	if pile == nil || index < 0 || index >= len(*pile) {
		return nil, false
	}

	switch src.Kind {
	case KindTableau:
		if !(*pile)[index].FaceUp {
			return nil, false
		}
	case KindWaste, KindFoundation:
		if index != len(*pile)-1 {
			return nil, false
		}
	default:
		return nil, false
	}

	lifted := append([]cards.Card(nil), (*pile)[index:]...)
	*pile = (*pile)[:index]

	return &Drag{
		Source: src,
		Index:  index,
		Cards:  lifted,
	}, true
}

// Drop resolves a drag released over dest. When over is false the pointer
// was not over any pile. Valid tableau and foundation drops are committed
// and reveal the new top of a tableau source; everything else puts the
// cards back on the source pile exactly as they were.
func Drop(b *Board, d *Drag, dest PileRef, over bool) Outcome {
	if d == nil || len(d.Cards) == 0 {
		return OutcomeNone
	}

	if over && dest != d.Source && canDrop(b, d, dest) {
		target := b.Pile(dest)
		*target = append(*target, d.Cards...)
		if d.Source.Kind == KindTableau {
			b.Pile(d.Source).revealTop()
		}
		return OutcomeCommitted
	}

	src := b.Pile(d.Source)
	*src = append(*src, d.Cards...)
	return OutcomeRolledBack
}

// canDrop checks the destination against the move rules.
func canDrop(b *Board, d *Drag, dest PileRef) bool {
	target := b.Pile(dest)
	if target == nil {
		return false
	}

	switch dest.Kind {
	case KindTableau:
		return CanPlaceOnTableau(d.Lead(), *target)
	case KindFoundation:
		return len(d.Cards) == 1 && CanPlaceOnFoundation(d.Lead(), *target)
	default:
		return false
	}
}
