package vtterm

import "testing"

func TestSelectionNormalizesOrder(t *testing.T) {
	term := newTestTerminal(10, 4)
	term.SetSelection(Position{X: 5, Y: 2}, Position{X: 2, Y: 1})
	sel := term.SelectionRect()
	if sel.Top != 1 || sel.Bottom != 2 {
		t.Errorf("expected normalized top=1 bottom=2, got top=%d bottom=%d", sel.Top, sel.Bottom)
	}
}

func TestSelectionClearYieldsNull(t *testing.T) {
	term := newTestTerminal(10, 4)
	term.SetSelection(Position{X: 1, Y: 1}, Position{X: 2, Y: 1})
	term.ClearSelection()
	if !term.SelectionRect().IsNull() {
		t.Error("expected null selection after Clear")
	}
}

func TestSelectedTextTrimsTrailingSpaces(t *testing.T) {
	term := newTestTerminal(10, 4)
	term.PutString("hi", false)
	term.SetSelection(Position{X: 1, Y: 1}, Position{X: 10, Y: 1})
	if got := term.selectedText(); got != "hi" {
		t.Errorf("expected 'hi' with trailing spaces trimmed, got %q", got)
	}
}

func TestSelectionShiftsWithScroll(t *testing.T) {
	term := newTestTerminal(10, 4)
	term.SetSelection(Position{X: 1, Y: 3}, Position{X: 1, Y: 3})
	term.scrollForward(1, term.marginTop0())
	sel := term.SelectionRect()
	if sel.Top != 2 {
		t.Errorf("expected selection to shift up by 1, got top=%d", sel.Top)
	}
}

func TestSelectionClearedWhenScrolledOffScreen(t *testing.T) {
	term := newTestTerminal(10, 4)
	term.SetSelection(Position{X: 1, Y: 1}, Position{X: 1, Y: 1})
	term.scrollForward(4, term.marginTop0())
	if !term.SelectionRect().IsNull() {
		t.Error("expected selection cleared once entirely off-screen")
	}
}
