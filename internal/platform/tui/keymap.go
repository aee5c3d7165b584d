package tui

import (
	"github.com/vovakirdan/tui-snake/internal/core"
)

// KeyMapper translates raw key bytes to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key to an action. Letters are case-insensitive;
// unknown keys map to ActionNone.
func (km *KeyMapper) MapKey(key byte) core.Action {
	switch key {
	case 'q', 'Q', keyCtrlC:
		return core.ActionQuit
	case 'w', 'W':
		return core.ActionUp
	case 's', 'S':
		return core.ActionDown
	case 'a', 'A':
		return core.ActionLeft
	case 'd', 'D':
		return core.ActionRight
	}
	return core.ActionNone
}

// Bindings lists the key bindings in display order.
func (km *KeyMapper) Bindings() []Binding {
	return []Binding{
		{Keys: "W / Up", Action: core.ActionUp},
		{Keys: "A / Left", Action: core.ActionLeft},
		{Keys: "S / Down", Action: core.ActionDown},
		{Keys: "D / Right", Action: core.ActionRight},
		{Keys: "Q / Ctrl+C", Action: core.ActionQuit},
	}
}

// Binding describes the keys bound to one action.
type Binding struct {
	Keys   string
	Action core.Action
}
