package vt

import "github.com/unilibs/uniwidth"

// runeWidth returns the terminal display width of r: 0 for combining
// marks, 1 for normal glyphs, 2 for wide CJK/emoji glyphs.
func runeWidth(r rune) int {
	return uniwidth.RuneWidth(r)
}

// stringWidth returns the total display width of s.
func stringWidth(s string) int {
	return uniwidth.StringWidth(s)
}
