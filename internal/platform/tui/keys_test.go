package tui

import (
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected byte
		used     int
	}{
		{"empty", "", 0, 0},
		{"letter", "w", 'w', 1},
		{"letter then more", "qa", 'q', 1},
		{"arrow up", "\x1b[A", 'w', 3},
		{"arrow down", "\x1b[B", 's', 3},
		{"arrow right", "\x1b[C", 'd', 3},
		{"arrow left", "\x1b[D", 'a', 3},
		{"application mode arrow", "\x1bOA", 'w', 3},
		{"arrow then letter", "\x1b[Dq", 'a', 3},
		{"shift+left", "\x1b[1;2D", keyEsc, 6},
		{"ctrl+up", "\x1b[1;5A", keyEsc, 6},
		{"shift+left then letter", "\x1b[1;2Dq", keyEsc, 6},
		{"function key", "\x1b[15~", keyEsc, 5},
		{"ss3 function key", "\x1bOP", keyEsc, 3},
		{"unknown csi final", "\x1b[Z", keyEsc, 3},
		{"alt key", "\x1bx1", keyEsc, 2},
		{"escape before arrow", "\x1b\x1b[A", keyEsc, 1},
		{"escape before ctrl+c", "\x1b\x03", keyEsc, 1},
		{"malformed csi", "\x1b[1\x03", keyEsc, 3},
		{"lone escape waits", "\x1b", 0, 0},
		{"csi intro waits", "\x1b[", 0, 0},
		{"csi params wait", "\x1b[1;", 0, 0},
		{"ss3 intro waits", "\x1bO", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, n := decodeKey([]byte(tt.raw))
			if key != tt.expected || n != tt.used {
				t.Errorf("decodeKey(%q) = (%#02x, %d), expected (%#02x, %d)", tt.raw, key, n, tt.expected, tt.used)
			}
		})
	}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		key      byte
		expected core.Action
	}{
		{'w', core.ActionUp},
		{'W', core.ActionUp},
		{'s', core.ActionDown},
		{'S', core.ActionDown},
		{'a', core.ActionLeft},
		{'A', core.ActionLeft},
		{'d', core.ActionRight},
		{'D', core.ActionRight},
		{'q', core.ActionQuit},
		{'Q', core.ActionQuit},
		{keyCtrlC, core.ActionQuit},
		{keyEsc, core.ActionNone},
		{'x', core.ActionNone},
		{' ', core.ActionNone},
		{0, core.ActionNone},
	}

	for _, tt := range tests {
		if got := km.MapKey(tt.key); got != tt.expected {
			t.Errorf("MapKey(%q) = %s, expected %s", tt.key, got, tt.expected)
		}
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	seen := make(map[core.Action]bool)
	for _, b := range NewKeyMapper().Bindings() {
		if b.Keys == "" {
			t.Errorf("Binding for %s has no keys", b.Action)
		}
		seen[b.Action] = true
	}

	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionQuit} {
		if !seen[a] {
			t.Errorf("No binding listed for %s", a)
		}
	}
}
