package terminal

import (
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// decodeKeys parses raw terminal input into keys.
// Handles:
//   - printable characters, including multi-byte UTF-8 -> KeyRunes (KeySpace for ' ')
//   - control characters 0x00-0x1F and DEL -> their control key types
//   - CSI sequences (ESC [ ...) -> cursor, editing and paging keys with modifiers
//   - SS3 sequences (ESC O ...) -> cursor keys and F1-F4
//   - ESC followed by a printable character -> that key with Alt set
//
// Unrecognised sequences are dropped.
func decodeKeys(data []byte) []tea.Key {
	var keys []tea.Key
	for i := 0; i < len(data); {
		b := data[i]

		if b == 0x1b {
			if i+1 >= len(data) {
				keys = append(keys, tea.Key{Type: tea.KeyEsc})
				i++
				continue
			}
			switch next := data[i+1]; {
			case next == '[':
				key, consumed := parseCSI(data[i:])
				if consumed == 0 {
					keys = append(keys, tea.Key{Type: tea.KeyEsc})
					i++
					continue
				}
				if key != nil {
					keys = append(keys, *key)
				}
				i += consumed
				continue
			case next == 'O' && i+2 < len(data):
				if t, ok := ss3Keys[data[i+2]]; ok {
					keys = append(keys, tea.Key{Type: t})
					i += 3
					continue
				}
				keys = append(keys, tea.Key{Type: tea.KeyEsc})
				i++
				continue
			case next >= 0x20 && next < 0x7f:
				k := printable(rune(next))
				k.Alt = true
				keys = append(keys, k)
				i += 2
				continue
			default:
				keys = append(keys, tea.Key{Type: tea.KeyEsc})
				i++
				continue
			}
		}

		if b < 0x20 || b == 0x7f {
			// Control bytes map one-to-one onto Bubble Tea's control key types.
			keys = append(keys, tea.Key{Type: tea.KeyType(b)})
			i++
			continue
		}

		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			i++
			continue
		}
		keys = append(keys, printable(r))
		i += size
	}
	return keys
}

func printable(r rune) tea.Key {
	if r == ' ' {
		return tea.Key{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.Key{Type: tea.KeyRunes, Runes: []rune{r}}
}

var ss3Keys = map[byte]tea.KeyType{
	'A': tea.KeyUp,
	'B': tea.KeyDown,
	'C': tea.KeyRight,
	'D': tea.KeyLeft,
	'H': tea.KeyHome,
	'F': tea.KeyEnd,
	'P': tea.KeyF1,
	'Q': tea.KeyF2,
	'R': tea.KeyF3,
	'S': tea.KeyF4,
}

var csiFinal = map[byte]tea.KeyType{
	'A': tea.KeyUp,
	'B': tea.KeyDown,
	'C': tea.KeyRight,
	'D': tea.KeyLeft,
	'H': tea.KeyHome,
	'F': tea.KeyEnd,
	'Z': tea.KeyShiftTab,
}

var csiTilde = map[int]tea.KeyType{
	1: tea.KeyHome,
	2: tea.KeyInsert,
	3: tea.KeyDelete,
	4: tea.KeyEnd,
	5: tea.KeyPgUp,
	6: tea.KeyPgDown,
	7: tea.KeyHome,
	8: tea.KeyEnd,
}

var shiftArrows = map[tea.KeyType]tea.KeyType{
	tea.KeyUp:    tea.KeyShiftUp,
	tea.KeyDown:  tea.KeyShiftDown,
	tea.KeyRight: tea.KeyShiftRight,
	tea.KeyLeft:  tea.KeyShiftLeft,
}

var ctrlArrows = map[tea.KeyType]tea.KeyType{
	tea.KeyUp:    tea.KeyCtrlUp,
	tea.KeyDown:  tea.KeyCtrlDown,
	tea.KeyRight: tea.KeyCtrlRight,
	tea.KeyLeft:  tea.KeyCtrlLeft,
}

// parseCSI parses a CSI sequence at the start of data. It returns the decoded
// key (nil for well-formed but unsupported sequences) and the number of bytes
// consumed, or 0 if data does not hold a complete sequence.
func parseCSI(data []byte) (*tea.Key, int) {
	var params []int
	cur, hasCur := 0, false
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			hasCur = true
		case b == ';':
			params = append(params, cur)
			cur, hasCur = 0, false
		case b >= 0x40 && b <= 0x7e:
			if hasCur {
				params = append(params, cur)
			}
			return csiKey(b, params), i + 1
		default:
			// Private markers and intermediates: unsupported, consume
			// through the final byte.
			return skipCSI(data, i)
		}
	}
	return nil, 0
}

// skipCSI consumes an unsupported CSI sequence through its final byte
func skipCSI(data []byte, from int) (*tea.Key, int) {
	for i := from; i < len(data); i++ {
		if b := data[i]; b >= 0x40 && b <= 0x7e {
			return nil, i + 1
		}
	}
	return nil, 0
}

func csiKey(final byte, params []int) *tea.Key {
	var t tea.KeyType
	if final == '~' {
		if len(params) == 0 {
			return nil
		}
		kt, ok := csiTilde[params[0]]
		if !ok {
			return nil
		}
		t = kt
	} else {
		kt, ok := csiFinal[final]
		if !ok {
			return nil
		}
		t = kt
	}

	key := tea.Key{Type: t}
	if len(params) < 2 {
		return &key
	}
	// xterm modifier parameter: 1 + (shift=1 | alt=2 | ctrl=4).
	mod := params[1] - 1
	if mod&2 != 0 {
		key.Alt = true
	}
	switch {
	case mod&4 != 0:
		if kt, ok := ctrlArrows[t]; ok {
			key.Type = kt
		}
	case mod&1 != 0:
		if kt, ok := shiftArrows[t]; ok {
			key.Type = kt
		}
	}
	return &key
}
