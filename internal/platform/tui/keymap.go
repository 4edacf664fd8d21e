package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-klondike/internal/core"
)

// KeyMap defines the key bindings of the game application.
type KeyMap struct {
	NewGame    key.Binding
	Settings   key.Binding
	Draw       key.Binding
	Back       key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	VolumeUp   key.Binding
	VolumeDown key.Binding
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NewGame: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new game"),
		),
		Settings: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "settings"),
		),
		Draw: key.NewBinding(
			key.WithKeys("d", " "),
			key.WithHelp("d/space", "draw"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc/b", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		VolumeUp: key.NewBinding(
			key.WithKeys("right", "l", "+"),
			key.WithHelp("→/+", "louder"),
		),
		VolumeDown: key.NewBinding(
			key.WithKeys("left", "h", "-"),
			key.WithHelp("←/-", "quieter"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	Keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{Keys: DefaultKeyMap()}
}

// MapKey translates a key message to an action.
// Whether the action applies depends on the current scene.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) core.Action {
	k := km.Keys
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Screenshot):
		return core.ActionScreenshot
	case key.Matches(msg, k.NewGame):
		return core.ActionNewGame
	case key.Matches(msg, k.Settings):
		return core.ActionOpenSettings
	case key.Matches(msg, k.Draw):
		return core.ActionDraw
	case key.Matches(msg, k.Back):
		return core.ActionBack
	case key.Matches(msg, k.VolumeUp):
		return core.ActionVolumeUp
	case key.Matches(msg, k.VolumeDown):
		return core.ActionVolumeDown
	}
	return core.ActionNone
}

// sceneHelp adapts the key map to help.KeyMap for one scene.
type sceneHelp struct {
	keys  KeyMap
	scene Scene
}

// ShortHelp returns the bindings that apply to the scene.
func (h sceneHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.scene {
	case SceneGame:
		return []key.Binding{k.Draw, k.NewGame, k.Settings, k.Back, k.Quit}
	case SceneSettings:
		return []key.Binding{k.VolumeDown, k.VolumeUp, k.Back, k.Quit}
	default:
		return []key.Binding{k.NewGame, k.Settings, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (h sceneHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp(), {h.keys.Screenshot}}
}
