package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/tetris"
)

// KeyMapper translates Bubble Tea key messages to engine actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an engine action. Returns the
// action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action tetris.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return tetris.ActionNone, true
	}

	switch key {
	case "w", "up":
		return tetris.ActionUp, false
	case "s", "down":
		return tetris.ActionDown, false
	case "a", "left":
		return tetris.ActionLeft, false
	case "d", "right":
		return tetris.ActionRight, false
	case " ", "enter":
		return tetris.ActionDrop, false
	case "esc", "p":
		return tetris.ActionEscape, false
	}

	return tetris.ActionNone, false
}
