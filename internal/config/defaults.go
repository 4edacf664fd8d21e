package config

import (
	_ "embed"
)

//go:embed defaults/klondike.yaml
var defaultKlondikeYAML []byte

// DefaultKlondikeConfig returns the built-in configuration.
func DefaultKlondikeConfig() KlondikeConfig {
	return KlondikeConfig{
		Layout: LayoutConfig{
			CardWidth:   7,
			CardHeight:  5,
			ColumnGap:   2,
			FanFaceDown: 1,
			FanFaceUp:   2,
			MarginX:     1,
			ToolbarRows: 2,
		},
		Menu: MenuConfig{
			ButtonWidth:   20,
			ButtonHeight:  3,
			ButtonSpacing: 1,
			SliderWidth:   20,
		},
		Audio: AudioConfig{
			Volume: 0.5,
			Bell:   true,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultKlondikeYAML
}
