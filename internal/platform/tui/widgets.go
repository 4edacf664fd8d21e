package tui

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-klondike/internal/core"
)

// VolumeStep is the change applied by one volume key press.
const VolumeStep = 0.05

// Button is a clickable screen region bound to an action.
type Button struct {
	Label  string
	Action core.Action
	Rect   core.Rect
}

// ButtonAt returns the first button containing (x, y).
func ButtonAt(buttons []Button, x, y int) (Button, bool) {
	for _, b := range buttons {
		if b.Rect.Contains(x, y) {
			return b, true
		}
	}
	return Button{}, false
}

// SliderValue maps a pointer column on a slider track to a value in [0, 1].
func SliderValue(x, left, width int) float64 {
	if width <= 0 {
		return 0
	}
	return core.ClampF(float64(x-left)/float64(width), 0, 1)
}

// drawButton renders a boxed button, or a bracketed label when it is one row tall.
func drawButton(dst *core.Screen, b Button) {
	r := b.Rect
	if r.H < 3 {
		label := "[" + centerText(b.Label, r.W-2)
		label += spaces(r.W - 1 - runeLen(label))
		dst.DrawTextColored(r.X, r.Y, label+"]", core.ColorBrightWhite)
		return
	}
	dst.DrawRect(r, ' ', core.ColorDefault)
	dst.DrawBox(r, core.ColorWhite)
	x := r.X + (r.W-runeLen(b.Label))/2
	_, cy := r.Center()
	dst.DrawTextColored(x, cy, b.Label, core.ColorBrightWhite)
}

// drawSlider renders the volume track and its percentage.
func drawSlider(dst *core.Screen, r core.Rect, value float64) {
	filled := int(value*float64(r.W) + 0.5)
	dst.DrawHLine(r.X, r.Y, filled, '━', core.ColorBrightGreen)
	dst.DrawHLine(r.X+filled, r.Y, r.W-filled, '─', core.ColorGray)
	dst.DrawTextColored(r.Right()+2, r.Y, fmt.Sprintf("%3d%%", int(value*100+0.5)), core.ColorBrightWhite)
}

func runeLen(s string) int {
	return len([]rune(s))
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := runeLen(text)
	if n >= width {
		return text
	}
	return spaces((width-n)/2) + text
}
