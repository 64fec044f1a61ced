package vtterm

// Position identifies a cell location in the terminal grid, 1-based per
// spec §3.2 — (1, 1) is the top-left cell.
type Position struct {
	X int
	Y int
}

// Before reports whether this position comes strictly before other in
// reading order (top-to-bottom, left-to-right).
func (p Position) Before(other Position) bool {
	if p.Y != other.Y {
		return p.Y < other.Y
	}
	return p.X < other.X
}

// Cursor tracks the current position. X may reach cols+1, the "pending
// wrap" column (spec §3.6); Visible is a rendering hint the core stores
// but never interprets beyond accepting DECSCUSR-style requests as no-ops
// (spec Non-goals: no blinking cursor implementation).
type Cursor struct {
	X       int
	Y       int
	Visible bool
}

// NewCursor returns a cursor at (1, 1), visible.
func NewCursor() Cursor {
	return Cursor{X: 1, Y: 1, Visible: true}
}

// Attribs is the terminal attribute set saved and restored by DECSC/DECRC
// (ESC 7 / ESC 8, CSI s / CSI u) and on alternate-screen entry/exit
// (spec §3.4).
type Attribs struct {
	CursorX    int
	CursorY    int
	WrapAround bool
	OriginMode bool
	Fg         int
	Bg         int
	Attr       CellAttr
}
