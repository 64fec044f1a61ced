package vtterm

import (
	"os"
	"path/filepath"
	"sync"
)

// Option configures a Terminal at construction time. Grounded on the
// teacher's functional-options constructor style.
type Option func(*Terminal)

// WithByteSink sets the outbound byte transport.
func WithByteSink(s ByteSink) Option {
	return func(t *Terminal) { t.sink = s }
}

// WithRenderer sets the redraw/resize notification port.
func WithRenderer(r RendererPort) Option {
	return func(t *Terminal) { t.renderer = r }
}

// WithHostServices sets the bell/title/settings/clipboard-notify port.
func WithHostServices(h HostServices) Option {
	return func(t *Terminal) { t.host = h }
}

// WithClipboard sets the clipboard backing store.
func WithClipboard(c ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = c }
}

// Terminal is the VT100/xterm-compatible emulator core (spec §1). It owns
// two screen buffers, a bounded scrollback FIFO, cursor/margin state, and
// the escape-sequence parser, and exposes the operations of spec §6.2. All
// access is serialized by mu; the core itself is single-threaded and
// cooperative (spec §5) — the mutex exists only to let embedders call in
// from a different goroutine than the one feeding it bytes.
type Terminal struct {
	mu sync.RWMutex

	rows, cols int

	primary     *Buffer
	alternate   *Buffer
	active      *Buffer
	onAlternate bool

	cursor Cursor

	marginTop    int
	marginBottom int

	fg, bg int
	attr   CellAttr

	wrapAround    bool
	originMode    bool
	insertMode    bool
	appCursorKeys bool
	lnm           bool

	savedPrimary Attribs
	savedAlt     Attribs

	title string

	selection       Selection
	backScrollPos   int
	suppressSignal  bool
	pendingRedraw   bool
	pendingCurChange bool

	parser *Parser

	sink      ByteSink
	renderer  RendererPort
	host      HostServices
	clipboard ClipboardProvider
}

// NewTerminal constructs a zero-sized terminal (spec §3.7); call
// SetTermSize before feeding it input.
func NewTerminal(opts ...Option) *Terminal {
	t := &Terminal{
		sink:       NoopByteSink{},
		renderer:   NoopRenderer{},
		host:       NoopHostServices{},
		clipboard:  NoopClipboard{},
		cursor:     NewCursor(),
		fg:         DefaultForeground,
		bg:         DefaultBackground,
		wrapAround: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.parser = NewParser(t)
	return t
}

// SetRenderer rewires the redraw/resize notification port after
// construction — useful when the renderer itself needs a reference to the
// Terminal it is rendering (spec §9 "cyclic wiring": the port is one-way,
// but an embedder may still need to build the renderer after the
// Terminal exists).
func (t *Terminal) SetRenderer(r RendererPort) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer = r
}

// TermSize returns the current (cols, rows).
func (t *Terminal) TermSize() (cols, rows int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cols, t.rows
}

// SetTermSize resizes the terminal, initializing margins to the full
// screen and rebuilding tab stops (spec §3.7). An already-sized terminal
// resizes in place, preserving top-left content (spec §9: Resize semantics
// left to the implementation for the non-initial case).
func (t *Terminal) SetTermSize(cols, rows int) {
	if cols <= 0 || rows <= 0 {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	wasZero := t.primary == nil
	t.cols, t.rows = cols, rows
	if wasZero {
		t.primary = NewBuffer(rows, cols, newRingScrollback())
		t.alternate = NewBuffer(rows, cols, NoopScrollback{})
		t.active = t.primary
	} else {
		t.primary.Resize(rows, cols)
		t.alternate.Resize(rows, cols)
	}
	t.marginTop = 1
	t.marginBottom = rows
	if t.cursor.X > cols+1 {
		t.cursor.X = cols + 1
	}
	if t.cursor.Y > rows {
		t.cursor.Y = rows
	}
	t.renderer.UpdateTermSize()
	t.signalRedraw()
}

// resetTerminal clears all three buffers, restores default attributes, and
// re-initializes margins and tabs, but preserves the current size
// (spec §3.7).
func (t *Terminal) resetTerminal() {
	if t.primary == nil {
		return
	}
	t.primary = NewBuffer(t.rows, t.cols, newRingScrollback())
	t.alternate = NewBuffer(t.rows, t.cols, NoopScrollback{})
	t.active = t.primary
	t.onAlternate = false
	t.cursor = NewCursor()
	t.marginTop = 1
	t.marginBottom = t.rows
	t.fg = DefaultForeground
	t.bg = DefaultBackground
	t.attr = 0
	t.wrapAround = true
	t.originMode = false
	t.insertMode = false
	t.appCursorKeys = false
	t.lnm = false
	t.savedPrimary = Attribs{}
	t.savedAlt = Attribs{}
	t.selection = Selection{}
	t.backScrollPos = 0
	t.signalRedraw()
}

func (t *Terminal) buffer() *Buffer { return t.active }

func (t *Terminal) saveAttribs() Attribs {
	return Attribs{
		CursorX: t.cursor.X, CursorY: t.cursor.Y,
		WrapAround: t.wrapAround, OriginMode: t.originMode,
		Fg: t.fg, Bg: t.bg, Attr: t.attr,
	}
}

func (t *Terminal) restoreAttribs(a Attribs) {
	t.cursor.X, t.cursor.Y = a.CursorX, a.CursorY
	t.wrapAround, t.originMode = a.WrapAround, a.OriginMode
	t.fg, t.bg, t.attr = a.Fg, a.Bg, a.Attr
}

// signalRedraw notifies the renderer, unless signals are currently
// suppressed (spec §5: suppressed during a single Insert call, flushed
// once at the end).
func (t *Terminal) signalRedraw() {
	if t.suppressSignal {
		t.pendingRedraw = true
		return
	}
	t.renderer.Redraw()
}

// Insert feeds a run of code points through the parser (spec §6.2
// insert_in_buffer). Change signals are suppressed until the whole run has
// been consumed, then flushed once (spec §5).
func (t *Terminal) Insert(codepoints []rune) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.primary == nil {
		return
	}
	t.suppressSignal = true
	t.parser.FeedAll(codepoints)
	t.suppressSignal = false
	if t.pendingRedraw {
		t.pendingRedraw = false
		t.renderer.Redraw()
	}
}

// PutString feeds a Go string through Insert, optionally applying the
// backslash-escape preprocessing of spec §6.3.
func (t *Terminal) PutString(s string, unescape bool) {
	var codepoints []rune
	if unescape {
		codepoints = unescapeString(s)
	} else {
		codepoints = []rune(s)
	}
	t.Insert(codepoints)
}

// CursorPos returns the current cursor position (1-based).
func (t *Terminal) CursorPos() Position {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return Position{X: t.cursor.X, Y: t.cursor.Y}
}

// ShowCursor reports whether the cursor is currently visible.
func (t *Terminal) ShowCursor() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.Visible
}

// Buffer returns the active screen buffer.
func (t *Terminal) Buffer() *Buffer {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.active
}

// BackBuffer returns the primary screen's scrollback provider.
func (t *Terminal) BackBuffer() ScrollbackProvider {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.primary == nil {
		return NoopScrollback{}
	}
	return t.primary.Scrollback()
}

// PrintableLinesFromCursor returns up to n lines of text starting at the
// cursor's row, trimmed of trailing spaces. If withEmpty is false, blank
// rows are skipped.
func (t *Terminal) PrintableLinesFromCursor(n int, withEmpty bool) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if t.active == nil {
		return nil
	}
	var lines []string
	for row := t.cursor.Y - 1; row < t.active.Rows() && len(lines) < n; row++ {
		line := t.active.LineContent(row)
		if line == "" && !withEmpty {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// GetUserMenuXML reads "menu.xml" from the host's config directory and
// returns its contents, or "" if it doesn't exist (spec §6.2). The core
// has no concept of a user menu beyond this file lookup; the schema itself
// is entirely the host's concern.
func (t *Terminal) GetUserMenuXML() string {
	t.mu.RLock()
	dir := t.host.ConfigPath()
	t.mu.RUnlock()
	if dir == "" {
		return ""
	}
	data, err := os.ReadFile(filepath.Join(dir, "menu.xml"))
	if err != nil {
		return ""
	}
	return string(data)
}
