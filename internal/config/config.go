// Package config provides YAML-based configuration loading for the board
// geometry, the menu screens and audio defaults.
package config

import (
	"errors"
	"fmt"
)

// KlondikeConfig contains all configuration for the game.
type KlondikeConfig struct {
	Layout LayoutConfig `yaml:"layout"`
	Menu   MenuConfig   `yaml:"menu"`
	Audio  AudioConfig  `yaml:"audio"`
}

// LayoutConfig defines the board geometry in terminal cells.
type LayoutConfig struct {
	CardWidth   int `yaml:"card_width"`
	CardHeight  int `yaml:"card_height"`
	ColumnGap   int `yaml:"column_gap"`
	FanFaceDown int `yaml:"fan_face_down"` // Rows shown of a covered face-down card
	FanFaceUp   int `yaml:"fan_face_up"`   // Rows shown of a covered face-up card
	MarginX     int `yaml:"margin_x"`
	ToolbarRows int `yaml:"toolbar_rows"` // Rows above the board for the toolbar
}

// MenuConfig defines the menu and settings screen controls.
type MenuConfig struct {
	ButtonWidth   int `yaml:"button_width"`
	ButtonHeight  int `yaml:"button_height"`
	ButtonSpacing int `yaml:"button_spacing"`
	SliderWidth   int `yaml:"slider_width"`
}

// AudioConfig defines sound defaults.
type AudioConfig struct {
	Volume float64 `yaml:"volume"` // Initial volume, 0.0 to 1.0
	Bell   bool    `yaml:"bell"`   // Ring the terminal bell on clicks
}

// Validate checks that the configuration describes a drawable board.
func (c KlondikeConfig) Validate() error {
	var errs []error

	l := c.Layout
	if l.CardWidth < 5 {
		errs = append(errs, fmt.Errorf("layout.card_width must be at least 5, got %d", l.CardWidth))
	}
	if l.CardHeight < 3 {
		errs = append(errs, fmt.Errorf("layout.card_height must be at least 3, got %d", l.CardHeight))
	}
	if l.ColumnGap < 0 || l.MarginX < 0 || l.ToolbarRows < 0 {
		errs = append(errs, errors.New("layout gaps and margins must not be negative"))
	}
	if l.FanFaceDown < 1 || l.FanFaceUp < 1 {
		errs = append(errs, errors.New("layout fans must be at least 1 row"))
	}
	if l.FanFaceUp > l.CardHeight || l.FanFaceDown > l.CardHeight {
		errs = append(errs, errors.New("layout fans must not exceed card_height"))
	}

	m := c.Menu
	if m.ButtonWidth < 4 || m.ButtonHeight < 1 || m.ButtonSpacing < 0 {
		errs = append(errs, errors.New("menu buttons must be at least 4x1 with non-negative spacing"))
	}
	if m.SliderWidth < 1 {
		errs = append(errs, fmt.Errorf("menu.slider_width must be positive, got %d", m.SliderWidth))
	}

	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within [0, 1], got %g", c.Audio.Volume))
	}

	return errors.Join(errs...)
}
