package vtterm

import "image/color"

// DefaultPalette is the standard 256-color palette consumed by SGR 38;5;N /
// 48;5;N and the legacy 30-37/40-47/90-97/100-107 ranges: 16 named colors
// (0-15), a 216-entry color cube (16-231), and 24 grayscale steps (232-255).
// This is external, reference data for an embedder's renderer; the core
// itself only ever stores and compares palette indices (spec §3.1 — no
// 24-bit color support).
var DefaultPalette = [256]color.RGBA{
	{0, 0, 0, 255},
	{205, 49, 49, 255},
	{13, 188, 121, 255},
	{229, 229, 16, 255},
	{36, 114, 200, 255},
	{188, 63, 188, 255},
	{17, 168, 205, 255},
	{229, 229, 229, 255},

	{102, 102, 102, 255},
	{241, 76, 76, 255},
	{35, 209, 139, 255},
	{245, 245, 67, 255},
	{59, 142, 234, 255},
	{214, 112, 214, 255},
	{41, 184, 219, 255},
	{255, 255, 255, 255},
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{R: uint8(r * 51), G: uint8(g * 51), B: uint8(b * 51), A: 255}
				i++
			}
		}
	}
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForegroundColor and DefaultBackgroundColor are the RGBA values the
// sentinel indices DefaultForeground/DefaultBackground resolve to.
var (
	DefaultForegroundColor = color.RGBA{R: 229, G: 229, B: 229, A: 255}
	DefaultBackgroundColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ResolveColor converts a palette index (0-255, or the DefaultForeground /
// DefaultBackground sentinels) to an RGBA value. It is a convenience for
// embedders building a renderer against the RendererPort; the core never
// calls it itself.
func ResolveColor(index int, fg bool) color.RGBA {
	switch {
	case index == DefaultForeground:
		return DefaultForegroundColor
	case index == DefaultBackground:
		return DefaultBackgroundColor
	case index >= 0 && index < 256:
		return DefaultPalette[index]
	default:
		if fg {
			return DefaultForegroundColor
		}
		return DefaultBackgroundColor
	}
}
