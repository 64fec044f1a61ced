package vtterm

import "log/slog"

// escDispatch applies a single-character ESC sequence (spec §4.3).
func (t *Terminal) escDispatch(b byte) {
	switch b {
	case '7': // DECSC
		t.savedPrimary = t.saveAttribs()
	case '8': // DECRC
		t.restoreAttribs(t.savedPrimary)
	case '>', '=': // keypad mode — accepted, no-op
	case 'H': // HTS
		t.buffer().SetTabStop(t.cursor.Y-1, t.cursor.X-1)
	case 'D': // IND
		t.scrollForward(1, t.marginTop0())
		t.signalRedraw()
	case 'M': // RI
		t.scrollBack(1, t.marginTop0())
		t.signalRedraw()
	case 'E': // NEL
		t.cursor.X = 1
		if t.cursor.Y == t.marginBottom {
			t.scrollForward(1, t.marginTop0())
		} else {
			t.cursor.Y++
		}
		t.signalRedraw()
	case 'c': // RIS
		t.resetTerminal()
	case 'g': // visual bell
		t.host.BellAlert()
	default:
		slog.Debug("unrecognized ESC sequence", "byte", string(b))
	}
}

// multiDispatch applies a 2-character ESC sequence (introducer + final
// byte), spec §4.3.
func (t *Terminal) multiDispatch(intro, final byte) {
	if intro == '#' && final == '8' { // DECALN
		t.clearAll(true)
		t.buffer().FillWithE()
		t.signalRedraw()
		return
	}
	// ESC ( x / ESC ) x and any other MULTI combination: accepted, no-op
	// (spec Non-goals: no alternate character-set translation beyond
	// consuming and discarding the designator).
}

// oscDispatch applies an OSC string of the form "Ps;Pt" (spec §4.4).
func (t *Terminal) oscDispatch(s string) {
	ps, pt, ok := splitOSC(s)
	if !ok {
		return
	}
	if ps == "0" || ps == "2" {
		t.title = pt
		t.host.SetWindowTitle(pt)
		return
	}
	slog.Debug("unrecognized OSC sequence", "body", s)
}

// splitOSC splits an OSC body "Ps;Pt" into its two parts.
func splitOSC(s string) (ps, pt string, ok bool) {
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			return s[:i], s[i+1:], true
		}
	}
	return "", "", false
}
