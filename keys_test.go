package vtterm

import "testing"

func TestKeyPressEnterRespectsLNM(t *testing.T) {
	var sink capturingSink
	term := NewTerminal(WithByteSink(&sink))
	term.SetTermSize(10, 4)

	term.KeyPress(KeyReturn, 0)
	if string(sink.last) != "\r" {
		t.Errorf("expected CR without LNM, got %q", sink.last)
	}

	term.csiDispatch('h', []int{20}, "")
	term.KeyPress(KeyReturn, 0)
	if string(sink.last) != "\r\n" {
		t.Errorf("expected CRLF with LNM on, got %q", sink.last)
	}
}

func TestKeyPressCtrlLetter(t *testing.T) {
	var sink capturingSink
	term := NewTerminal(WithByteSink(&sink))
	term.SetTermSize(10, 4)

	term.KeyPress(KeyCode('a'), ModCtrl)
	if len(sink.last) != 1 || sink.last[0] != 'a'&0x1F {
		t.Errorf("expected ctrl-a byte 0x01, got %v", sink.last)
	}
}

func TestKeyPressAltPrependsEscape(t *testing.T) {
	var sink capturingSink
	term := NewTerminal(WithByteSink(&sink))
	term.SetTermSize(10, 4)

	term.KeyPress(KeyCode('x'), ModAlt)
	if string(sink.last) != "\x1bx" {
		t.Errorf("expected ESC x, got %q", sink.last)
	}
}

func TestKeyPressResetsBackScroll(t *testing.T) {
	term := newTestTerminal(10, 2)
	term.PutString("a\r\nb\r\nc\r\n", false)
	term.ScrollBackBufferBack(1)
	if term.BackBufferScrollPos() == 0 {
		t.Fatal("expected non-zero scroll position before key press")
	}
	term.KeyPress(KeyEscape, 0)
	if term.BackBufferScrollPos() != 0 {
		t.Error("expected key press to reset back-buffer scroll position")
	}
}
