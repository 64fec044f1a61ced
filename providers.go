package vtterm

// ByteSink is the outbound byte transport (spec §6.1): key translation and
// certain command replies (DA, DSR) write through it. Grounded on the
// teacher's ResponseProvider/BellProvider port style.
type ByteSink interface {
	WriteToPty(data []byte)
}

// NoopByteSink discards everything written to it.
type NoopByteSink struct{}

func (NoopByteSink) WriteToPty(data []byte) {}

// RendererPort is the one-way notification channel toward the display layer
// (spec §9 "cyclic wiring" note: the core never holds a strong reference
// back to its renderer, only this narrow interface).
type RendererPort interface {
	Redraw()
	SetShowScrollIndicator(show bool)
	UpdateTermSize()
}

// NoopRenderer implements RendererPort with no-ops, for headless use.
type NoopRenderer struct{}

func (NoopRenderer) Redraw()                     {}
func (NoopRenderer) SetShowScrollIndicator(bool)  {}
func (NoopRenderer) UpdateTermSize()              {}

// HostServices is the window/host integration port (spec §6.1): bell,
// title, settings, and selection-finished notification.
type HostServices interface {
	BellAlert()
	SetWindowTitle(title string)
	ConfigPath() string
	SettingsValue(key string) string
	SelectionFinished()
}

// NoopHostServices implements HostServices with no-ops.
type NoopHostServices struct{}

func (NoopHostServices) BellAlert()                  {}
func (NoopHostServices) SetWindowTitle(string)       {}
func (NoopHostServices) ConfigPath() string          { return "" }
func (NoopHostServices) SettingsValue(string) string { return "" }
func (NoopHostServices) SelectionFinished()          {}

// ClipboardProvider backs copy_selection_to_clipboard/paste_from_clipboard
// (spec §6.2). The spec's port list (§6.1) omits a dedicated clipboard
// port; this is grounded on the teacher's ClipboardProvider and treated as
// part of the host-integration surface the core borrows.
type ClipboardProvider interface {
	Read() string
	Write(text string)
}

// NoopClipboard discards writes and returns empty reads.
type NoopClipboard struct{}

func (NoopClipboard) Read() string    { return "" }
func (NoopClipboard) Write(text string) {}

var (
	_ ByteSink          = NoopByteSink{}
	_ RendererPort      = NoopRenderer{}
	_ HostServices      = NoopHostServices{}
	_ ClipboardProvider = NoopClipboard{}
)
