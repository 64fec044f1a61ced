package vtterm

import "testing"

func TestNewCellIsBlank(t *testing.T) {
	c := NewCell()
	if c.Char != ' ' || c.Fg != DefaultForeground || c.Bg != DefaultBackground {
		t.Errorf("expected blank default cell, got %+v", c)
	}
}

func TestCellHasAttr(t *testing.T) {
	c := Cell{Attr: AttrBold | AttrUnderline}
	if !c.HasAttr(AttrBold) || !c.HasAttr(AttrUnderline) {
		t.Error("expected both bold and underline set")
	}
	if c.HasAttr(AttrNegative) {
		t.Error("did not expect negative attribute")
	}
}

func TestCellPrintable(t *testing.T) {
	if (Cell{}).Printable() {
		t.Error("zero-value cell should not be printable")
	}
	if !(Cell{Char: ' '}).Printable() {
		t.Error("space cell should be printable")
	}
}
