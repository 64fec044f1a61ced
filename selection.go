package vtterm

import "strings"

// Selection is a normalized rectangle in screen coordinates (spec §3.6,
// §4.9): top ≤ bottom always; left ≤ right is only meaningful (and
// enforced) when top == bottom — a multi-row selection runs from
// (left, top) to the end of its row, through full rows, to (right, bottom).
type Selection struct {
	Top, Bottom int
	Left, Right int
	active      bool
}

// IsNull reports whether the selection is empty.
func (s Selection) IsNull() bool { return !s.active }

// SetSelection establishes a selection between two endpoints, normalizing
// them into top/bottom/left/right order (spec §3.6).
func (t *Terminal) SetSelection(start, end Position) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if end.Before(start) {
		start, end = end, start
	}
	t.selection = Selection{
		Top: start.Y, Bottom: end.Y,
		Left: start.X, Right: end.X,
		active: true,
	}
}

// SelectionRect returns the current selection rectangle.
func (t *Terminal) SelectionRect() Selection {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.selection
}

// ClearSelection empties the selection.
func (t *Terminal) ClearSelection() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.selection = Selection{}
}

// HasSelection reports whether a selection is currently set.
func (t *Terminal) HasSelection() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return !t.selection.IsNull()
}

// shiftSelectionY moves the selection by delta rows (spec §4.9: following
// scroll_forward/scroll_back), clearing it if it falls entirely off-screen.
// Called with mu already held by the scroll path.
func (t *Terminal) shiftSelectionY(delta int) {
	if t.selection.IsNull() {
		return
	}
	t.selection.Top += delta
	t.selection.Bottom += delta
	if t.selection.Bottom < 1 || t.selection.Top > t.rows {
		t.selection = Selection{}
	}
}

// selectedText walks the selection from top to bottom, trimming trailing
// spaces per line, joining with \n, and including scrollback rows when the
// back-buffer is scrolled (spec §4.9). Non-printable cells are omitted.
func (t *Terminal) selectedText() string {
	if t.selection.IsNull() || t.active == nil {
		return ""
	}
	sel := t.selection
	var lines []string
	for row := sel.Top; row <= sel.Bottom; row++ {
		from, to := 1, t.cols
		if sel.Top == sel.Bottom {
			from, to = sel.Left, sel.Right
		} else if row == sel.Top {
			from = sel.Left
		} else if row == sel.Bottom {
			to = sel.Right
		}
		lines = append(lines, t.rowTextRange(row, from, to))
	}
	return strings.Join(lines, "\n")
}

// rowTextRange returns the printable text of columns [from, to] (1-based,
// inclusive) on a logical row that may fall in scrollback (row ≤ 0, when
// the view is scrolled back) or the active screen.
func (t *Terminal) rowTextRange(row, from, to int) string {
	var cells []Cell
	if row >= 1 && row <= t.rows {
		for col := 0; col < t.cols; col++ {
			cells = append(cells, t.active.Cell(row-1, col))
		}
	} else {
		sb := t.active.Scrollback()
		idx := sb.Len() + row - 1
		line := sb.Line(idx)
		if line == nil {
			return ""
		}
		cells = line
	}
	from = clamp(from, 1, len(cells))
	to = clamp(to, 0, len(cells))
	var b strings.Builder
	last := -1
	var buf []rune
	for col := from - 1; col < to && col < len(cells); col++ {
		c := cells[col]
		if !c.Printable() {
			continue
		}
		buf = append(buf, c.Char)
		if c.Char != ' ' {
			last = len(buf) - 1
		}
	}
	for i := 0; i <= last; i++ {
		b.WriteRune(buf[i])
	}
	return b.String()
}

// CopySelectionToClipboard writes the selected text to the clipboard
// provider and notifies host services.
func (t *Terminal) CopySelectionToClipboard() {
	t.mu.Lock()
	text := t.selectedText()
	t.mu.Unlock()
	if text == "" {
		return
	}
	t.clipboard.Write(text)
	t.host.SelectionFinished()
}

// PasteFromClipboard feeds the clipboard's current text into the buffer
// as if typed (no unescape processing — clipboard content is literal).
func (t *Terminal) PasteFromClipboard() {
	text := t.clipboard.Read()
	if text == "" {
		return
	}
	t.Insert([]rune(text))
}
