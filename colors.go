package vt

import "image/color"

// DefaultPalette holds the 16 standard ANSI colors (indices 0-7 normal,
// 8-15 bright) followed by the 216-color cube and 24-step grayscale ramp
// xterm exposes as the 256-color palette, indices 16-255.
var DefaultPalette [256]color.RGBA

// DefaultForeground and DefaultBackground are the colors ResolveColor
// substitutes at render time for a Cell that carries no explicit SGR color
// (a nil Fg or Bg).
var (
	DefaultForeground = color.RGBA{R: 0xE0, G: 0xE0, B: 0xE0, A: 0xFF}
	DefaultBackground = color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xFF}
	DefaultCursorColor = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

func init() {
	ansi16 := [16]color.RGBA{
		{R: 0x00, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0xCD, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0xCD, B: 0x00, A: 0xFF},
		{R: 0xCD, G: 0xCD, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0x00, B: 0xEE, A: 0xFF},
		{R: 0xCD, G: 0x00, B: 0xCD, A: 0xFF},
		{R: 0x00, G: 0xCD, B: 0xCD, A: 0xFF},
		{R: 0xE5, G: 0xE5, B: 0xE5, A: 0xFF},
		{R: 0x7F, G: 0x7F, B: 0x7F, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0x00, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0x00, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0x00, A: 0xFF},
		{R: 0x5C, G: 0x5C, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0x00, B: 0xFF, A: 0xFF},
		{R: 0x00, G: 0xFF, B: 0xFF, A: 0xFF},
		{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF},
	}
	for i, c := range ansi16 {
		DefaultPalette[i] = c
	}

	steps := [6]uint8{0x00, 0x5F, 0x87, 0xAF, 0xD7, 0xFF}
	idx := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[idx] = color.RGBA{R: steps[r], G: steps[g], B: steps[b], A: 0xFF}
				idx++
			}
		}
	}

	for i := 0; i < 24; i++ {
		v := uint8(8 + i*10)
		DefaultPalette[idx] = color.RGBA{R: v, G: v, B: v, A: 0xFF}
		idx++
	}
}

// ResolveIndexed returns the RGBA color for an SGR indexed-color parameter
// (0-255), as used by the 256-color SGR subsequence `38;5;N`/`48;5;N`.
func ResolveIndexed(idx int) color.Color {
	if idx < 0 || idx > 255 {
		return DefaultForeground
	}
	return DefaultPalette[idx]
}

// ResolveColor maps a Cell's stored color to a concrete RGBA, substituting
// the host's default-fg/default-bg when the cell carries no explicit
// color (nil).
func ResolveColor(c color.Color, isBackground bool) color.Color {
	if c != nil {
		return c
	}
	if isBackground {
		return DefaultBackground
	}
	return DefaultForeground
}

// colorToHex renders c as a "#rrggbb" string, used by snapshot rendering.
func colorToHex(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	const hex = "0123456789abcdef"
	out := make([]byte, 7)
	out[0] = '#'
	vals := [3]uint8{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
	for i, v := range vals {
		out[1+i*2] = hex[v>>4]
		out[2+i*2] = hex[v&0xF]
	}
	return string(out)
}
