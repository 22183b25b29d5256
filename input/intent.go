package input

import "github.com/lixenwraith/maze-dash/movement"

// IntentType discriminates semantic player actions
type IntentType uint8

const (
	IntentNone IntentType = iota

	IntentQuit   // q, ESC, Ctrl+C
	IntentResize // terminal resize event

	IntentMove // hjkl / arrows, Dir is valid

	IntentSelect   // Enter: confirm menu choice / dismiss victory screen
	IntentRestart  // r: regenerate maze, new session
	IntentHint     // ?: toggle solution-path overlay
	IntentMenuNext // Tab / next menu field
)

// Intent is one parsed player action
type Intent struct {
	Type IntentType
	Dir  movement.Direction // valid when Type == IntentMove
}
