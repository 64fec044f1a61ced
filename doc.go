// Package vtterm is a VT100/xterm-compatible terminal emulator core: a
// code-point stream consumer that drives a two-dimensional character grid,
// a bounded scrollback history, cursor/margin state, selection/URL
// extraction, and key-to-byte translation.
//
// The core has no display of its own; it is driven by feeding it decoded
// code points (typically from a pty) and queried through [Terminal.Buffer],
// [Terminal.BackBuffer], and [Terminal.CursorPos] by a renderer.
//
// # Quick start
//
//	term := vtterm.NewTerminal()
//	term.SetTermSize(80, 24)
//	term.PutString("\x1b[31mHello\x1b[0m", false)
//
// # Architecture
//
//   - [Terminal]: the facade — wires the buffers, cursor, parser and ports.
//   - [Buffer]: the screen grid (primary and alternate).
//   - [Parser]: the escape-sequence state machine.
//   - [Cell]: a single grid position.
//
// Embedders provide [ByteSink], [RendererPort], [HostServices] and
// [ClipboardProvider] implementations via the With* options; the Noop*
// variants are supplied by default for headless use.
package vtterm
