package tui

import (
	"github.com/vovakirdan/tui-klondike/internal/config"
	"github.com/vovakirdan/tui-klondike/internal/core"
)

// Scene identifies which screen the application shows.
type Scene int

const (
	SceneMenu Scene = iota
	SceneSettings
	SceneGame
)

// String returns the scene name used in logs.
func (s Scene) String() string {
	switch s {
	case SceneMenu:
		return "menu"
	case SceneSettings:
		return "settings"
	case SceneGame:
		return "game"
	default:
		return "unknown"
	}
}

const title = "K L O N D I K E"

// menuButtons stacks the main menu buttons in the middle of the screen.
// A Continue button leads when a deal is in progress.
func menuButtons(cfg config.MenuConfig, w, h int, resumable bool) []Button {
	items := []Button{
		{Label: "New Game", Action: core.ActionNewGame},
		{Label: "Settings", Action: core.ActionOpenSettings},
		{Label: "Quit", Action: core.ActionQuit},
	}
	if resumable {
		items = append([]Button{{Label: "Continue", Action: core.ActionResume}}, items...)
	}

	total := len(items)*cfg.ButtonHeight + (len(items)-1)*cfg.ButtonSpacing
	x := (w - cfg.ButtonWidth) / 2
	y := core.Max(3, (h-total)/2)
	for i := range items {
		items[i].Rect = core.NewRect(x, y, cfg.ButtonWidth, cfg.ButtonHeight)
		y += cfg.ButtonHeight + cfg.ButtonSpacing
	}
	return items
}

// settingsLayout returns the volume slider track and the settings buttons.
func settingsLayout(cfg config.MenuConfig, w, h int) (core.Rect, []Button) {
	y := core.Max(4, h/2-2)
	slider := core.NewRect((w-cfg.SliderWidth)/2, y, cfg.SliderWidth, 1)
	back := Button{
		Label:  "Back",
		Action: core.ActionBack,
		Rect:   core.NewRect((w-cfg.ButtonWidth)/2, y+3, cfg.ButtonWidth, cfg.ButtonHeight),
	}
	return slider, []Button{back}
}

// toolbarButtons lays out the one-row buttons above the board.
func toolbarButtons() []Button {
	items := []Button{
		{Label: "New Game", Action: core.ActionNewGame},
		{Label: "Settings", Action: core.ActionOpenSettings},
		{Label: "Quit", Action: core.ActionQuit},
	}
	x := 1
	for i := range items {
		w := runeLen(items[i].Label) + 4
		items[i].Rect = core.NewRect(x, 0, w, 1)
		x += w + 1
	}
	return items
}

func renderMenu(dst *core.Screen, buttons []Button) {
	dst.DrawTextCentered(1, title)
	for _, b := range buttons {
		drawButton(dst, b)
	}
}

func renderSettings(dst *core.Screen, slider core.Rect, buttons []Button, volume float64) {
	dst.DrawTextCentered(1, title)
	dst.DrawTextCentered(slider.Y-2, "Volume")
	drawSlider(dst, slider, volume)
	for _, b := range buttons {
		drawButton(dst, b)
	}
}

func renderToolbar(dst *core.Screen, buttons []Button, status string) {
	for _, b := range buttons {
		drawButton(dst, b)
	}
	if status != "" {
		dst.DrawTextColored(dst.Width()-runeLen(status)-1, 0, status, core.ColorGray)
	}
}
