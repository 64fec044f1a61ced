package vtterm

// scrollForward implements spec §4.7 scroll_forward: for `lines`
// iterations, a blank row appears past the bottom margin and the row at
// removeAt is removed. On the primary buffer the removed row is appended
// to scrollback; on the alternate buffer it is discarded. Selection Y
// shifts by -lines. removeAt is 0-based; every caller passes marginTop0()
// (ordinary upward scrolling). DL (delete line) does not come through here:
// it calls Buffer.ShiftUp at the cursor row directly, so its removed rows
// never reach scrollback.
func (t *Terminal) scrollForward(lines, removeAt int) {
	if lines <= 0 {
		return
	}
	bottom := t.marginBottom - 1
	for i := 0; i < lines; i++ {
		removed := t.active.ShiftUp(removeAt, bottom, t.fg, t.bg, t.attr)
		if t.active == t.primary && removed != nil {
			t.primary.Scrollback().Push(removed)
		}
	}
	t.shiftSelectionY(-lines)
}

// scrollBack implements spec §4.7 scroll_back: for `lines` iterations, a
// row appears at insertAt (pulled from scrollback's tail when primary,
// insertAt is the default margin top, and scrollback is non-empty;
// otherwise blank) and the row at the bottom margin is removed. Selection Y
// shifts by +lines. insertAt is 0-based.
func (t *Terminal) scrollBack(lines, insertAt int) {
	if lines <= 0 {
		return
	}
	bottom := t.marginBottom - 1
	defaultInsertAt := t.marginTop - 1
	for i := 0; i < lines; i++ {
		var row []Cell
		if t.active == t.primary && insertAt == defaultInsertAt && t.primary.Scrollback().Len() > 0 {
			popped, ok := t.primary.Scrollback().PopBack()
			if ok {
				row = popped
			}
		}
		if row == nil {
			row = make([]Cell, t.cols)
			for c := range row {
				row[c] = Cell{Char: ' ', Fg: t.fg, Bg: t.bg, Attr: t.attr}
			}
		}
		t.active.ShiftDown(insertAt, bottom, row)
	}
	t.shiftSelectionY(lines)
}

// marginTop0 and marginBottom0 convert the 1-based inclusive margins to
// 0-based row indices for Buffer calls.
func (t *Terminal) marginTop0() int    { return t.marginTop - 1 }
func (t *Terminal) marginBottom0() int { return t.marginBottom - 1 }

// scrollIfNeeded brings the cursor back inside the scroll region after a
// move that pushed it out, scrolling the region rather than letting the
// cursor escape its margins.
func (t *Terminal) scrollIfNeeded() {
	if t.cursor.Y > t.marginBottom {
		n := t.cursor.Y - t.marginBottom
		t.scrollForward(n, t.marginTop0())
		t.cursor.Y = t.marginBottom
	} else if t.cursor.Y < t.marginTop {
		n := t.marginTop - t.cursor.Y
		t.scrollBack(n, t.marginTop0())
		t.cursor.Y = t.marginTop
	}
}
