package vtterm

import (
	"strconv"
	"unicode"
)

// Modifiers is a bitmask of active key modifiers (spec §4.8).
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModCtrl
	ModAlt
)

// KeyCode identifies a logical key. Values ≤ 0xFF (and the Cyrillic block
// 0x410..0x44F) are treated as the literal code point typed; named keys
// use the internal-code range starting at 0x01000000, matching the
// numbering spec §4.8 gives for the function-key range.
type KeyCode int

const (
	KeyEscape    KeyCode = 0x01000000
	KeyTab       KeyCode = 0x01000001
	KeyBackspace KeyCode = 0x01000003
	KeyReturn    KeyCode = 0x01000004
	KeyEnter     KeyCode = 0x01000005
	KeyDelete    KeyCode = 0x01000007
	KeyHome      KeyCode = 0x01000010
	KeyEnd       KeyCode = 0x01000011
	KeyLeft      KeyCode = 0x01000012
	KeyUp        KeyCode = 0x01000013
	KeyRight     KeyCode = 0x01000014
	KeyDown      KeyCode = 0x01000015
	KeyPageUp    KeyCode = 0x01000016
	KeyPageDown  KeyCode = 0x01000017
	KeyF1        KeyCode = 0x01000030
	KeyF12       KeyCode = 0x0100003b
)

// KeyPress translates a logical key + modifier event into the byte
// sequence sent to the PTY (spec §4.8). Any key press first resets the
// back-buffer scroll position to 0.
func (t *Terminal) KeyPress(key KeyCode, mods Modifiers) {
	t.mu.Lock()
	t.backScrollPos = 0
	appCursor := t.appCursorKeys
	lnm := t.lnm
	t.mu.Unlock()
	t.renderer.SetShowScrollIndicator(false)

	var out []byte

	switch {
	case key >= KeyF1 && key <= KeyF12:
		n := int(key) - 0x1000025
		out = []byte(csiN(n, '~'))

	case key == KeyUp:
		out = arrowSeq(appCursor, 'A')
	case key == KeyDown:
		out = arrowSeq(appCursor, 'B')
	case key == KeyRight:
		out = arrowSeq(appCursor, 'C')
	case key == KeyLeft:
		out = arrowSeq(appCursor, 'D')

	case key == KeyReturn || key == KeyEnter:
		if lnm {
			out = []byte("\r\n")
		} else {
			out = []byte("\r")
		}
	case key == KeyBackspace:
		out = []byte{0x7F}
	case key == KeyTab:
		out = []byte("\t")
	case key == KeyEscape:
		out = []byte{0x1B}
	case key == KeyDelete:
		out = []byte("\x1b[3~")
	case key == KeyPageUp:
		out = []byte("\x1b[5~")
	case key == KeyPageDown:
		out = []byte("\x1b[6~")
	case key == KeyHome:
		out = []byte("\x1bOH")
	case key == KeyEnd:
		out = []byte("\x1bOF")

	default:
		out = translatePlainKey(key, mods)
	}

	if len(out) > 0 {
		t.sink.WriteToPty(out)
	}
}

// translatePlainKey handles letters and other ≤0xFF / Cyrillic code points
// (spec §4.8): letters are case-folded by shift state; the result (and any
// other in-range code point) gets ALT/CTRL applied.
func translatePlainKey(key KeyCode, mods Modifiers) []byte {
	r := rune(key)
	isCyrillic := r >= 0x410 && r <= 0x44F
	if !unicode.IsLetter(r) && r > 0xFF && !isCyrillic {
		return nil
	}

	ch := r
	if unicode.IsLetter(r) {
		if mods&ModShift != 0 {
			ch = unicode.ToUpper(r)
		} else {
			ch = unicode.ToLower(r)
		}
	}

	var out []byte
	if mods&ModAlt != 0 {
		out = append(out, 0x1B)
	}
	if mods&ModCtrl != 0 && ((ch >= 'A' && ch <= 'Z') || (ch >= 'a' && ch <= 'z')) {
		out = append(out, byte(ch)&0x1F)
	} else {
		out = append(out, []byte(string(ch))...)
	}
	return out
}

func arrowSeq(appCursor bool, final byte) []byte {
	mid := byte('[')
	if appCursor {
		mid = 'O'
	}
	return []byte{0x1B, mid, final}
}

func csiN(n int, final byte) string {
	return "\x1b[" + strconv.Itoa(n) + string(final)
}
