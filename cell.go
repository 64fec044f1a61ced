package vtterm

// CellAttr is a bitmask of the character attributes a cell can carry.
type CellAttr uint8

const (
	AttrBold CellAttr = 1 << iota
	AttrUnderline
	AttrNegative
)

// Sentinel palette indices meaning "use the terminal's default" foreground
// or background color, per the external palette convention.
const (
	DefaultForeground = 256
	DefaultBackground = 257
)

// Cell is a single grid position: one code point plus its rendering
// attributes. Cells are value-typed and cheap to copy.
type Cell struct {
	Char rune
	Fg   int
	Bg   int
	Attr CellAttr
}

// blankCell is the value every buffer position starts, and resets, to.
var blankCell = Cell{Char: ' ', Fg: DefaultForeground, Bg: DefaultBackground}

// NewCell returns a cell holding a space with default colors and no
// attributes set.
func NewCell() Cell {
	return blankCell
}

// HasAttr reports whether the given attribute bit is set.
func (c Cell) HasAttr(a CellAttr) bool {
	return c.Attr&a != 0
}

// Printable reports whether the cell holds a character worth copying out.
// Used by selection and URL extraction to skip positions holding no
// character (the zero Cell); a blank space cell counts as printable.
func (c Cell) Printable() bool {
	return c.Char != 0
}
