package vtterm

import (
	"fmt"
	"log/slog"
)

// csiDispatch applies a completed CSI sequence (spec §4.2). Unrecognized
// final-byte/extra combinations are logged at debug level and discarded
// (spec §7) — the core has no fatal path here.
func (t *Terminal) csiDispatch(final byte, params []int, extra string) {
	switch final {
	case 'A': // CUU
		t.cursor.Y -= param(params, 0, 1)
		t.clampCursorY(t.marginTop, t.rows)
	case 'B': // CUD
		t.cursor.Y += param(params, 0, 1)
		t.clampCursorY(1, t.marginBottom)
	case 'C': // CUF
		t.cursor.X += param(params, 0, 1)
		if t.cursor.X > t.cols {
			t.cursor.X = t.cols
		}
	case 'D': // CUB
		t.cursor.X -= param(params, 0, 1)
		if t.cursor.X < 1 {
			t.cursor.X = 1
		}
	case 'E': // CNL
		t.cursor.X = 1
		t.cursor.Y += param(params, 0, 1)
		t.clampCursorY(1, t.marginBottom)
	case 'F': // CPL
		t.cursor.X = 1
		t.cursor.Y -= param(params, 0, 1)
		t.clampCursorY(t.marginTop, t.rows)
	case 'G': // CHA
		t.cursor.X = clamp(param(params, 0, 1), 1, t.cols)
	case 'H', 'f': // CUP
		row := param(params, 0, 1)
		col := param(params, 1, 1)
		if t.originMode {
			row += t.marginTop - 1
		}
		t.cursor.Y = clamp(row, 1, t.rows)
		t.cursor.X = clamp(col, 1, t.cols)
	case 'J': // ED
		t.eraseDisplay(rawParam(params, 0, 0))
	case 'K': // EL
		t.eraseInLine(rawParam(params, 0, 0))
	case 'L': // IL
		n := param(params, 0, 1)
		t.scrollUpFromCursor(n)
	case 'M': // DL
		n := param(params, 0, 1)
		t.scrollDownFromCursor(n)
	case 'P': // DCH
		// n single-cell deletes at the cursor (spec §4.6 "Delete-at"),
		// matching terminal.cpp's own loop of deleteAt calls.
		n := param(params, 0, 1)
		for i := 0; i < n; i++ {
			t.deleteAt(t.cursor.X, t.cursor.Y)
		}
	case '@': // ICH
		n := param(params, 0, 1)
		t.buffer().InsertBlanks(t.cursor.Y-1, t.cursor.X-1, n, t.fg, t.bg, t.attr)
		t.signalRedraw()
	case 'S': // SU
		t.scrollForward(param(params, 0, 1), t.marginTop0())
	case 'T': // SD — per spec §9 open question, CSI T never pulls from
		// scrollback even at the default insert_at; treat as plain insert.
		n := param(params, 0, 1)
		bottom := t.marginBottom0()
		for i := 0; i < n; i++ {
			blank := make([]Cell, t.cols)
			for c := range blank {
				blank[c] = Cell{Char: ' ', Fg: t.fg, Bg: t.bg, Attr: t.attr}
			}
			t.buffer().ShiftDown(t.marginTop0(), bottom, blank)
		}
		t.signalRedraw()
	case 'c': // DA
		if rawParam(params, 0, 0) == 0 {
			t.sink.WriteToPty([]byte("\x1b[?1;2c"))
		}
	case 'd': // VPA
		t.cursor.Y = clamp(param(params, 0, 1), 1, t.rows)
	case 'g': // TBC
		switch rawParam(params, 0, 0) {
		case 0:
			t.buffer().ClearTabStop(t.cursor.Y-1, t.cursor.X-1)
		case 3:
			t.buffer().ClearAllTabStops()
		}
	case 'n': // DSR
		if rawParam(params, 0, 0) == 6 {
			reply := fmt.Sprintf("\x1b[%d;%dR", t.cursor.Y, t.cursor.X)
			t.sink.WriteToPty([]byte(reply))
		}
	case 'p':
		if extra == "!" {
			t.resetTerminal()
		}
	case 's': // DECSC (CSI form)
		t.savedPrimary = t.saveAttribs()
	case 'u': // DECRC (CSI form)
		t.restoreAttribs(t.savedPrimary)
	case 'm': // SGR
		t.applySGR(params)
	case 'h':
		t.setMode(extra, params, true)
	case 'l':
		t.setMode(extra, params, false)
	case 'r': // DECSTBM
		top := param(params, 0, 1)
		bottom := param(params, 1, t.rows)
		if top >= bottom {
			bottom = top + 1
			if bottom > t.rows {
				bottom = t.rows
				top = bottom - 1
			}
		}
		t.marginTop = clamp(top, 1, t.rows)
		t.marginBottom = clamp(bottom, t.marginTop+1, t.rows)
		t.cursor.X, t.cursor.Y = 1, t.marginTop
	default:
		slog.Debug("unrecognized CSI sequence", "final", string(final), "params", params, "extra", extra)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (t *Terminal) clampCursorY(lo, hi int) {
	t.cursor.Y = clamp(t.cursor.Y, lo, hi)
}

// scrollUpFromCursor implements IL (spec §4.2 "L"): insert n blank lines at
// the cursor row within margins, scrolling the bottom out. This reuses
// ShiftDown anchored at the cursor row rather than the region top, per
// spec §4.7's note that IL/DL are the scroll primitives anchored
// elsewhere.
func (t *Terminal) scrollUpFromCursor(n int) {
	if t.cursor.Y < t.marginTop || t.cursor.Y > t.marginBottom {
		return
	}
	bottom := t.marginBottom0()
	insertAt := t.cursor.Y - 1
	for i := 0; i < n; i++ {
		blank := make([]Cell, t.cols)
		for c := range blank {
			blank[c] = Cell{Char: ' ', Fg: t.fg, Bg: t.bg, Attr: t.attr}
		}
		t.buffer().ShiftDown(insertAt, bottom, blank)
	}
	t.signalRedraw()
}

// scrollDownFromCursor implements DL (spec §4.2 "M"): delete n lines at
// the cursor row within margins, scrolling from the bottom. Removed rows
// never enter scrollback (DL is a within-screen edit, not a scroll of the
// whole region per spec §4.7).
func (t *Terminal) scrollDownFromCursor(n int) {
	if t.cursor.Y < t.marginTop || t.cursor.Y > t.marginBottom {
		return
	}
	bottom := t.marginBottom0()
	removeAt := t.cursor.Y - 1
	for i := 0; i < n; i++ {
		t.buffer().ShiftUp(removeAt, bottom, t.fg, t.bg, t.attr)
	}
	t.signalRedraw()
}

// eraseDisplay implements ED (spec §4.2 "J" / §4.6 clear-all variants).
func (t *Terminal) eraseDisplay(mode int) {
	switch mode {
	case 0:
		t.buffer().ClearRange(t.cursor.Y-1, t.cursor.X-1, t.cols-1, t.fg, t.bg, t.attr)
		for row := t.cursor.Y; row < t.rows; row++ {
			t.buffer().ClearRange(row, 0, t.cols-1, t.fg, t.bg, t.attr)
		}
	case 1:
		for row := 0; row < t.cursor.Y-1; row++ {
			t.buffer().ClearRange(row, 0, t.cols-1, t.fg, t.bg, t.attr)
		}
		t.buffer().ClearRange(t.cursor.Y-1, 0, t.cursor.X-1, t.fg, t.bg, t.attr)
	case 2:
		// Deliberately not t.clearAll: spec §8 scenario 2 requires the
		// cursor to stay put across ED mode 2, while clearAll always homes
		// it to (1,1) — the two "clear everything" operations diverge here.
		t.buffer().ClearRows(0, t.rows-1, t.fg, t.bg, t.attr)
	}
	t.signalRedraw()
}

// eraseInLine implements EL (spec §4.2 "K").
func (t *Terminal) eraseInLine(mode int) {
	switch mode {
	case 0:
		t.eraseLineAt(t.cursor.X, t.cols)
	case 1:
		t.eraseLineAt(1, t.cursor.X)
	case 2:
		t.eraseLineAt(1, t.cols)
	}
}

// setMode applies SM/RM (spec §4.2 mode table).
func (t *Terminal) setMode(extra string, params []int, set bool) {
	dec := extra == "?"
	for _, p := range params {
		if dec {
			switch p {
			case 1:
				t.appCursorKeys = set
			case 3:
				t.buffer().ClearRows(0, t.rows-1, t.fg, t.bg, t.attr)
				t.buffer().ResetTabs()
				t.marginTop, t.marginBottom = 1, t.rows
				t.cursor.X, t.cursor.Y = 1, 1
			case 6:
				t.originMode = set
				if set {
					t.cursor.X, t.cursor.Y = 1, t.marginTop
				} else {
					t.cursor.X, t.cursor.Y = 1, 1
				}
			case 7:
				t.wrapAround = set
			case 12:
				// blinking cursor: accepted, no-op (spec Non-goals)
			case 25:
				t.cursor.Visible = set
			case 1049:
				t.setAlternateScreen(set)
			}
		} else {
			switch p {
			case 4:
				t.insertMode = set
			case 20:
				t.lnm = set
			}
		}
	}
}

// setAlternateScreen implements mode 1049 (spec §4.2): on entry, save
// attribs to the alt slot, reset margins, clear the screen, reset tabs; on
// exit, restore attribs and reset margins.
func (t *Terminal) setAlternateScreen(enter bool) {
	if enter == t.onAlternate {
		return
	}
	if enter {
		t.savedAlt = t.saveAttribs()
		t.active = t.alternate
		t.onAlternate = true
		t.marginTop, t.marginBottom = 1, t.rows
		t.active.ClearRows(0, t.rows-1, DefaultForeground, DefaultBackground, 0)
		t.active.ResetTabs()
		t.cursor.X, t.cursor.Y = 1, 1
	} else {
		t.active = t.primary
		t.onAlternate = false
		t.restoreAttribs(t.savedAlt)
		t.marginTop, t.marginBottom = 1, t.rows
		t.active.ResetTabs()
	}
	t.signalRedraw()
}
