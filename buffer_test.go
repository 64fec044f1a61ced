package vtterm

import "testing"

func TestBufferSetAndGetCell(t *testing.T) {
	b := NewBuffer(4, 10, NoopScrollback{})
	b.SetCell(0, 0, Cell{Char: 'a'})
	if got := b.Cell(0, 0).Char; got != 'a' {
		t.Errorf("expected 'a', got %q", got)
	}
	if got := b.Cell(100, 100); got != (Cell{}) {
		t.Errorf("expected zero value for out-of-bounds read, got %+v", got)
	}
}

func TestBufferShiftUpAppendsBlankAtBottom(t *testing.T) {
	b := NewBuffer(3, 5, NoopScrollback{})
	b.SetCell(0, 0, Cell{Char: 'A'})
	b.SetCell(1, 0, Cell{Char: 'B'})
	removed := b.ShiftUp(0, 2, DefaultForeground, DefaultBackground, 0)
	if removed[0].Char != 'A' {
		t.Errorf("expected removed row to start with 'A', got %q", removed[0].Char)
	}
	if got := b.Cell(0, 0).Char; got != 'B' {
		t.Errorf("expected row 0 to now hold 'B', got %q", got)
	}
	if got := b.Cell(2, 0).Char; got != ' ' {
		t.Errorf("expected blanked bottom row, got %q", got)
	}
}

func TestBufferShiftDownInsertsAtTop(t *testing.T) {
	b := NewBuffer(3, 5, NoopScrollback{})
	b.SetCell(0, 0, Cell{Char: 'A'})
	newRow := make([]Cell, 5)
	newRow[0] = Cell{Char: 'Z'}
	b.ShiftDown(0, 2, newRow)
	if got := b.Cell(0, 0).Char; got != 'Z' {
		t.Errorf("expected inserted 'Z' at top, got %q", got)
	}
	if got := b.Cell(1, 0).Char; got != 'A' {
		t.Errorf("expected old top row pushed down, got %q", got)
	}
}

func TestBufferInsertAndDeleteChars(t *testing.T) {
	b := NewBuffer(1, 5, NoopScrollback{})
	for i, ch := range "ABCDE" {
		b.SetCell(0, i, Cell{Char: ch})
	}
	b.InsertBlanks(0, 1, 2, DefaultForeground, DefaultBackground, 0)
	if got := b.LineContent(0); got != "A  BC" {
		t.Errorf("expected 'A  BC' after insert, got %q", got)
	}
	b.DeleteChars(0, 1, 2, DefaultForeground, DefaultBackground, 0)
	if got := b.LineContent(0); got != "ABC" {
		t.Errorf("expected 'ABC' after delete, got %q", got)
	}
}

func TestBufferTabStops(t *testing.T) {
	b := NewBuffer(1, 20, NoopScrollback{})
	if got := b.NextTabStop(0, 0); got != 8 {
		t.Errorf("expected default tab stop at column 8, got %d", got)
	}
	b.SetTabStop(0, 3)
	if got := b.NextTabStop(0, 0); got != 3 {
		t.Errorf("expected custom tab stop at column 3, got %d", got)
	}
	b.ClearAllTabStops()
	if got := b.NextTabStop(0, 0); got != b.Cols()-1 {
		t.Errorf("expected last column when no tab stops remain, got %d", got)
	}
	b.ResetTabs()
	if got := b.NextTabStop(0, 0); got != 8 {
		t.Errorf("expected ResetTabs to restore the default every-8th-column stop, got %d", got)
	}
}

func TestBufferResizePreservesTopLeft(t *testing.T) {
	b := NewBuffer(2, 2, NoopScrollback{})
	b.SetCell(0, 0, Cell{Char: 'X'})
	b.Resize(4, 4)
	if got := b.Cell(0, 0).Char; got != 'X' {
		t.Errorf("expected preserved top-left content, got %q", got)
	}
	if b.Rows() != 4 || b.Cols() != 4 {
		t.Errorf("expected 4x4 after resize, got %dx%d", b.Rows(), b.Cols())
	}
}
