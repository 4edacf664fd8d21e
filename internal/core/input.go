package core

// Action represents a semantic command, abstracted from physical key presses
// and button clicks. Menu buttons and keys resolve to the same actions.
type Action int

const (
	ActionNone         Action = iota
	ActionNewGame             // N, "New Game" button - shuffle and deal
	ActionOpenSettings        // S, "Settings" button
	ActionQuit                // Q, Ctrl+C, "Quit" button
	ActionBack                // B, Escape, "Back" button
	ActionDraw                // D, Space - turn the next stock card
	ActionVolumeUp            // Right arrow on the settings screen
	ActionVolumeDown          // Left arrow on the settings screen
	ActionScreenshot          // Ctrl+S
	ActionResume              // "Continue" button - return to the deal in progress
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionNewGame:
		return "NewGame"
	case ActionOpenSettings:
		return "OpenSettings"
	case ActionQuit:
		return "Quit"
	case ActionBack:
		return "Back"
	case ActionDraw:
		return "Draw"
	case ActionVolumeUp:
		return "VolumeUp"
	case ActionVolumeDown:
		return "VolumeDown"
	case ActionScreenshot:
		return "Screenshot"
	case ActionResume:
		return "Resume"
	default:
		return "Unknown"
	}
}
