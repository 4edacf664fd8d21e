package klondike

import (
	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/core"
)

// Column positions of the top-row piles.
const (
	wasteColumn = 5
	stockColumn = 6
)

// LayoutParams holds the board geometry in terminal cells.
type LayoutParams struct {
	CardW   int // Card width
	CardH   int // Card height
	Gap     int // Horizontal gap between columns
	FanDown int // Rows a face-down card shows below the next one
	FanUp   int // Rows a face-up card shows below the next one
	MarginX int // Minimum left/right margin
	Top     int // Rows reserved above the board (toolbar)
}

// DefaultLayoutParams returns the geometry used when no config is loaded.
func DefaultLayoutParams() LayoutParams {
	return LayoutParams{
		CardW:   7,
		CardH:   5,
		Gap:     2,
		FanDown: 1,
		FanUp:   2,
		MarginX: 1,
		Top:     2,
	}
}

// LayoutParamsFromConfig converts the YAML layout section.
func LayoutParamsFromConfig(c config.LayoutConfig) LayoutParams {
	return LayoutParams{
		CardW:   c.CardWidth,
		CardH:   c.CardHeight,
		Gap:     c.ColumnGap,
		FanDown: c.FanFaceDown,
		FanUp:   c.FanFaceUp,
		MarginX: c.MarginX,
		Top:     c.ToolbarRows,
	}
}

// Layout places the board on a screen of a given size.
type Layout struct {
	LayoutParams
	ScreenW, ScreenH int
	OriginX          int // Left edge of column 0
	OriginY          int // Top edge of the foundation/stock row
	TableauY         int // Top edge of the tableau
}

// NewLayout centres the seven columns horizontally on the screen.
func NewLayout(p LayoutParams, screenW, screenH int) Layout {
	l := Layout{
		LayoutParams: p,
		ScreenW:      screenW,
		ScreenH:      screenH,
		OriginY:      p.Top,
	}
	l.OriginX = core.Max(p.MarginX, (screenW-l.Width())/2)
	l.TableauY = l.OriginY + p.CardH + 1
	return l
}

// Width returns the width of the seven columns.
func (l Layout) Width() int {
	return TableauPiles*l.CardW + (TableauPiles-1)*l.Gap
}

// MinSize returns the smallest screen that shows a freshly dealt board.
func (l Layout) MinSize() (int, int) {
	w := l.Width() + 2*l.MarginX
	h := l.TableauY + (TableauPiles-1)*l.FanDown + l.CardH
	return w, h
}

// Fits reports whether the screen is large enough for the board.
func (l Layout) Fits() bool {
	w, h := l.MinSize()
	return l.ScreenW >= w && l.ScreenH >= h
}

// ColumnX returns the left edge of column i.
func (l Layout) ColumnX(i int) int {
	return l.OriginX + i*(l.CardW+l.Gap)
}

// FoundationRect returns the slot of foundation i.
func (l Layout) FoundationRect(i int) core.Rect {
	return core.NewRect(l.ColumnX(i), l.OriginY, l.CardW, l.CardH)
}

// WasteRect returns the slot of the waste.
func (l Layout) WasteRect() core.Rect {
	return core.NewRect(l.ColumnX(wasteColumn), l.OriginY, l.CardW, l.CardH)
}

// StockRect returns the slot of the stock.
func (l Layout) StockRect() core.Rect {
	return core.NewRect(l.ColumnX(stockColumn), l.OriginY, l.CardW, l.CardH)
}

// fanUp returns the face-up fan for a pile, squeezed to one row when the
// pile would otherwise run off the bottom of the screen.
func (l Layout) fanUp(p Pile) int {
	if l.FanUp <= 1 {
		return l.FanUp
	}
	bottom := l.TableauY + l.CardH
	for i := 0; i < len(p)-1; i++ {
		if p[i].FaceUp {
			bottom += l.FanUp
		} else {
			bottom += l.FanDown
		}
	}
	if bottom > l.ScreenH {
		return 1
	}
	return l.FanUp
}

// CardRect returns the rectangle of card j in tableau pile col.
// Later cards overlap earlier ones.
func (l Layout) CardRect(p Pile, col, j int) core.Rect {
	up := l.fanUp(p)
	y := l.TableauY
	for k := 0; k < j && k < len(p); k++ {
		if p[k].FaceUp {
			y += up
		} else {
			y += l.FanDown
		}
	}
	return core.NewRect(l.ColumnX(col), y, l.CardW, l.CardH)
}

// ColumnRect returns the area of tableau pile col, from the top of the
// tableau to the bottom of its last card. An empty pile covers one card slot.
func (l Layout) ColumnRect(p Pile, col int) core.Rect {
	last := core.Max(len(p)-1, 0)
	r := l.CardRect(p, col, last)
	return core.NewRect(r.X, l.TableauY, l.CardW, r.Bottom()-l.TableauY)
}

// Hit is the result of hit-testing a pointer position against the board.
type Hit struct {
	Pile PileRef
	Card int // Index of the topmost card under the pointer, -1 for an empty pile
}

// HitTest maps a pointer position to the pile and card under it.
// For a tableau pile the whole column is a target; the card reported is
// the topmost one drawn at that position.
func HitTest(b *Board, l Layout, x, y int) (Hit, bool) {
	for i := range FoundationPiles {
		if l.FoundationRect(i).Contains(x, y) {
			return Hit{Pile: Foundation(i), Card: len(b.Foundations[i]) - 1}, true
		}
	}
	if l.WasteRect().Contains(x, y) {
		return Hit{Pile: Waste(), Card: len(b.Waste) - 1}, true
	}
	if l.StockRect().Contains(x, y) {
		return Hit{Pile: Stock(), Card: len(b.Stock) - 1}, true
	}

	for i, p := range b.Tableau {
		if !l.ColumnRect(p, i).Contains(x, y) {
			continue
		}
		for j := len(p) - 1; j >= 0; j-- {
			if l.CardRect(p, i, j).Contains(x, y) {
				return Hit{Pile: Tableau(i), Card: j}, true
			}
		}
		return Hit{Pile: Tableau(i), Card: -1}, true
	}

	return Hit{}, false
}
