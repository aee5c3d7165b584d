package tui

import "time"

const (
	keyCtrlC byte = 0x03
	keyEsc   byte = 0x1b
)

// escapeTimeout is how long an incomplete escape sequence may wait for its
// remaining bytes before it is given up as a lone ESC.
const escapeTimeout = 50 * time.Millisecond

// arrowKeys maps the final byte of an arrow escape sequence to the
// equivalent letter key.
var arrowKeys = map[byte]byte{
	'A': 'w',
	'B': 's',
	'C': 'd',
	'D': 'a',
}

// decodeKey returns the first key in raw and how many bytes it used.
// A consumed count of 0 with non-empty raw means an escape sequence has
// started but not finished; the caller should wait for more input.
//
// Bare arrows (ESC [ X and ESC O X) decode to their letter key. Every other
// CSI or SS3 sequence is consumed through its final byte and returned as
// keyEsc, so modified arrows and function keys never leak letters.
// ESC followed by a printable byte (Alt+key) is consumed as a pair.
func decodeKey(raw []byte) (byte, int) {
	if len(raw) == 0 {
		return 0, 0
	}
	if raw[0] != keyEsc {
		return raw[0], 1
	}
	if len(raw) == 1 {
		return 0, 0
	}

	switch intro := raw[1]; {
	case intro == '[':
		return decodeCSI(raw)
	case intro == 'O':
		if len(raw) < 3 {
			return 0, 0
		}
		if key, ok := arrowKeys[raw[2]]; ok {
			return key, 3
		}
		return keyEsc, 3
	case intro >= 0x20 && intro < 0x7f:
		return keyEsc, 2
	default:
		return keyEsc, 1
	}
}

// decodeCSI handles ESC [ params intermediates final.
func decodeCSI(raw []byte) (byte, int) {
	for i := 2; i < len(raw); i++ {
		b := raw[i]
		switch {
		case b >= 0x40 && b <= 0x7e:
			if i == 2 {
				if key, ok := arrowKeys[b]; ok {
					return key, 3
				}
			}
			return keyEsc, i + 1
		case b >= 0x20 && b <= 0x3f:
			// Parameter or intermediate byte
		default:
			// Malformed: drop what was read so far, keep b
			return keyEsc, i
		}
	}
	return 0, 0
}
