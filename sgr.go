package vtterm

// applySGR implements spec §4.2 SGR: parameters are scanned left to right,
// all applicable effects applied; a bare `m` (no params) resets to
// defaults.
func (t *Terminal) applySGR(params []int) {
	if len(params) == 0 {
		t.fg, t.bg, t.attr = DefaultForeground, DefaultBackground, 0
		return
	}
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			t.fg, t.bg, t.attr = DefaultForeground, DefaultBackground, 0
		case p == 1:
			t.attr |= AttrBold
		case p == 4:
			t.attr |= AttrUnderline
		case p == 7:
			t.attr |= AttrNegative
		case p == 22:
			t.attr &^= AttrBold
		case p == 24:
			t.attr &^= AttrUnderline
		case p == 27:
			t.attr &^= AttrNegative
		case p == 38 && i+2 < len(params) && params[i+1] == 5:
			t.fg = clamp(params[i+2], 0, 255)
			i += 2
		case p == 38 && i+1 < len(params) && params[i+1] == 2:
			// 38;2;r;g;b — accepted syntactically, ignored (spec §3.1 /
			// Non-goals: no 24-bit color).
			i += 4
		case p == 48 && i+2 < len(params) && params[i+1] == 5:
			t.bg = clamp(params[i+2], 0, 255)
			i += 2
		case p == 48 && i+1 < len(params) && params[i+1] == 2:
			i += 4
		case p == 39:
			t.fg = DefaultForeground
		case p == 49:
			t.bg = DefaultBackground
		case p >= 30 && p <= 37:
			t.fg = p - 30
		case p >= 40 && p <= 47:
			t.bg = p - 40
		case p >= 90 && p <= 97:
			t.fg = p - 90 + 8
		case p >= 100 && p <= 107:
			t.bg = p - 100 + 8
		}
	}
}
