package vtterm

// printable implements spec §4.5: insertion of a single printable code
// point at the cursor, including pending-wrap resolution and insert-mode
// shifting.
func (t *Terminal) printable(r rune) {
	buf := t.buffer()
	if t.cursor.X > t.cols {
		if t.wrapAround {
			prevRow := t.cursor.Y - 1
			if t.cursor.Y == t.marginBottom {
				t.scrollForward(1, t.marginTop0())
				prevRow = t.cursor.Y - 2
			} else {
				t.cursor.Y++
			}
			buf.SetWrapped(prevRow, true)
			t.cursor.X = 1
		} else {
			t.cursor.X = t.cols
		}
	}

	row := t.cursor.Y - 1
	col := t.cursor.X - 1

	if t.insertMode {
		buf.InsertBlanks(row, col, 1, t.fg, t.bg, t.attr)
	}
	buf.SetCell(row, col, Cell{Char: r, Fg: t.fg, Bg: t.bg, Attr: t.attr})
	t.cursor.X++
	t.signalRedraw()
}

// controlLF implements LF/VT/FF: line-feed action (spec §4.1).
func (t *Terminal) controlLF() {
	if t.cursor.Y == t.marginBottom {
		t.scrollForward(1, t.marginTop0())
	} else {
		t.cursor.Y++
	}
	t.signalRedraw()
}

// controlCR moves to column 1.
func (t *Terminal) controlCR() {
	t.cursor.X = 1
	t.signalRedraw()
}

// controlBS moves the cursor left by one, without erasing.
func (t *Terminal) controlBS() {
	if t.cursor.X > 1 {
		t.cursor.X--
	}
	t.signalRedraw()
}

// controlBEL rings the bell via host services.
func (t *Terminal) controlBEL() {
	t.host.BellAlert()
}

// controlHT advances to the next tab stop on the current row.
func (t *Terminal) controlHT() {
	row := t.cursor.Y - 1
	next := t.buffer().NextTabStop(row, t.cursor.X-1)
	t.cursor.X = next + 1
	t.signalRedraw()
}

// eraseLineAt implements spec §4.6 erase-line-at-cursor: cells in
// [from, to] (1-based, inclusive) on the cursor's row become spaces at the
// current attributes.
func (t *Terminal) eraseLineAt(from, to int) {
	if from > to {
		return
	}
	t.buffer().ClearRange(t.cursor.Y-1, from-1, to-1, t.fg, t.bg, t.attr)
	t.signalRedraw()
}

// clearAll implements spec §4.6 clear-all: rows [margin_top, margin_bottom]
// are blanked at current attributes, the cursor goes to (1,1), and
// optionally the scrollback is dropped too. Used by DECALN (esc.go), which
// clears with wholeBuffer=true before filling the screen with 'E'.
func (t *Terminal) clearAll(wholeBuffer bool) {
	t.buffer().ClearRows(t.marginTop0(), t.marginBottom0(), t.fg, t.bg, t.attr)
	t.cursor.X, t.cursor.Y = 1, 1
	if wholeBuffer {
		t.buffer().Scrollback().Clear()
	}
	t.signalRedraw()
}

// deleteAt implements spec §4.6 delete-at(x, y): clear the cell then shift
// the remainder of the row left by one. x, y are 1-based. Used by DCH
// (csi.go), looped n times per spec's per-character framing of the op.
func (t *Terminal) deleteAt(x, y int) {
	t.buffer().DeleteAt(y-1, x-1, t.fg, t.bg, t.attr)
	t.signalRedraw()
}

// unescapeString applies spec §6.3's backslash-escape preprocessing to a
// put_string input: \r \n \e \b \t map to their control codes, \xHH and
// \0OOO become the corresponding code point.
func unescapeString(s string) []rune {
	runes := []rune(s)
	out := make([]rune, 0, len(runes))
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' || i == len(runes)-1 {
			out = append(out, runes[i])
			continue
		}
		next := runes[i+1]
		switch next {
		case 'r':
			out = append(out, '\r')
			i++
		case 'n':
			out = append(out, '\n')
			i++
		case 'e':
			out = append(out, 0x1B)
			i++
		case 'b':
			out = append(out, '\b')
			i++
		case 't':
			out = append(out, '\t')
			i++
		case 'x':
			n, consumed := readHex(runes, i+2, 2)
			if consumed > 0 {
				out = append(out, rune(n))
				i += 1 + consumed
			} else {
				out = append(out, runes[i])
			}
		case '0':
			n, consumed := readOctal(runes, i+2, 3)
			out = append(out, rune(n))
			i += 1 + consumed
		default:
			out = append(out, runes[i])
		}
	}
	return out
}

func readHex(runes []rune, start, max int) (value, consumed int) {
	for consumed < max && start+consumed < len(runes) {
		c := runes[start+consumed]
		d, ok := hexDigit(c)
		if !ok {
			break
		}
		value = value*16 + d
		consumed++
	}
	return value, consumed
}

func hexDigit(c rune) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	}
	return 0, false
}

func readOctal(runes []rune, start, max int) (value, consumed int) {
	for consumed < max && start+consumed < len(runes) {
		c := runes[start+consumed]
		if c < '0' || c > '7' {
			break
		}
		value = value*8 + int(c-'0')
		consumed++
	}
	return value, consumed
}
