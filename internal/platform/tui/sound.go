package tui

import (
	"io"

	"github.com/vovakirdan/tui-klondike/internal/core"
)

// Sound plays interface feedback.
type Sound interface {
	Click()
	SetVolume(v float64)
	Volume() float64
}

// Bell rings the terminal bell on clicks. A terminal bell has no loudness,
// so any volume above zero rings and zero mutes.
type Bell struct {
	w      io.Writer
	volume float64
}

// NewBell creates a bell writing to w at the given volume.
// A nil writer never rings.
func NewBell(w io.Writer, volume float64) *Bell {
	b := &Bell{w: w}
	b.SetVolume(volume)
	return b
}

// Click rings the bell unless muted.
func (b *Bell) Click() {
	if b.w == nil || b.volume <= 0 {
		return
	}
	//nolint:errcheck // Feedback is best-effort
	b.w.Write([]byte{'\a'})
}

// SetVolume sets the volume, clamped to [0, 1].
func (b *Bell) SetVolume(v float64) {
	b.volume = core.ClampF(v, 0, 1)
}

// Volume returns the current volume.
func (b *Bell) Volume() float64 {
	return b.volume
}
