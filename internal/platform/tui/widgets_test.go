package tui

import (
	"testing"

	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/core"
)

func TestSliderValue(t *testing.T) {
	tests := []struct {
		name           string
		x, left, width int
		want           float64
	}{
		{"left edge", 30, 30, 20, 0},
		{"middle", 40, 30, 20, 0.5},
		{"quarter", 35, 30, 20, 0.25},
		{"right edge", 50, 30, 20, 1},
		{"left of track", 10, 30, 20, 0},
		{"right of track", 79, 30, 20, 1},
		{"zero width", 40, 30, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := SliderValue(tc.x, tc.left, tc.width); got != tc.want {
				t.Errorf("SliderValue(%d, %d, %d) = %g, expected %g", tc.x, tc.left, tc.width, got, tc.want)
			}
		})
	}
}

func TestButtonAt(t *testing.T) {
	buttons := []Button{
		{Label: "A", Action: core.ActionNewGame, Rect: core.NewRect(0, 0, 5, 1)},
		{Label: "B", Action: core.ActionQuit, Rect: core.NewRect(6, 0, 5, 1)},
	}

	if b, ok := ButtonAt(buttons, 7, 0); !ok || b.Action != core.ActionQuit {
		t.Errorf("ButtonAt(7, 0) = %v, %v; expected the Quit button", b, ok)
	}
	if _, ok := ButtonAt(buttons, 5, 0); ok {
		t.Error("ButtonAt on the gap should miss")
	}
	if _, ok := ButtonAt(buttons, 0, 1); ok {
		t.Error("ButtonAt below the row should miss")
	}
}

func TestMenuButtons(t *testing.T) {
	cfg := config.DefaultKlondikeConfig().Menu

	buttons := menuButtons(cfg, 80, 24, false)
	if len(buttons) != 3 {
		t.Fatalf("expected 3 buttons, got %d", len(buttons))
	}
	want := core.NewRect(30, 6, 20, 3)
	if buttons[0].Rect != want || buttons[0].Action != core.ActionNewGame {
		t.Errorf("first button = %+v, expected New Game at %+v", buttons[0], want)
	}
	if buttons[1].Rect.Y != 10 || buttons[2].Rect.Y != 14 {
		t.Errorf("buttons should stack with spacing, got y=%d and y=%d", buttons[1].Rect.Y, buttons[2].Rect.Y)
	}

	buttons = menuButtons(cfg, 80, 24, true)
	if len(buttons) != 4 || buttons[0].Action != core.ActionResume {
		t.Errorf("expected Continue first when resumable, got %+v", buttons)
	}
}

func TestToolbarButtons(t *testing.T) {
	buttons := toolbarButtons()
	if len(buttons) != 3 {
		t.Fatalf("expected 3 toolbar buttons, got %d", len(buttons))
	}
	for i, b := range buttons {
		if b.Rect.Y != 0 || b.Rect.H != 1 {
			t.Errorf("button %d should sit on row 0, got %+v", i, b.Rect)
		}
		if i > 0 && b.Rect.X <= buttons[i-1].Rect.Right() {
			t.Errorf("button %d overlaps the previous one", i)
		}
	}
}

func TestDrawButton(t *testing.T) {
	s := core.NewScreen(30, 5)

	drawButton(s, Button{Label: "New Game", Rect: core.NewRect(0, 0, 12, 1)})
	if got := s.Row(0)[:len("[ New Game ]")]; got != "[ New Game ]" {
		t.Errorf("one-row button = %q", got)
	}

	drawButton(s, Button{Label: "Quit", Rect: core.NewRect(0, 1, 10, 3)})
	row := []rune(s.Row(2))
	if string(row[:10]) != "│  Quit  │" {
		t.Errorf("boxed button middle row = %q", string(row[:10]))
	}
}

func TestDrawSlider(t *testing.T) {
	s := core.NewScreen(40, 1)
	drawSlider(s, core.NewRect(0, 0, 10, 1), 0.3)

	row := []rune(s.Row(0))
	if string(row[:10]) != "━━━───────" {
		t.Errorf("slider track = %q", string(row[:10]))
	}
	if string(row[12:16]) != " 30%" {
		t.Errorf("slider label = %q", string(row[12:16]))
	}
}
