package vt

import "image/color"

// CellFlags is a bitmask of the attribute flags named in §3: bold, faint,
// italic, underline, invert, crossed-out.
type CellFlags uint8

const (
	CellFlagBold CellFlags = 1 << iota
	CellFlagFaint
	CellFlagItalic
	CellFlagUnderline
	CellFlagInvert
	CellFlagCrossedOut
)

// Cell is one grid entry: printable text, fg/bg color, and an attribute
// bitset. Width is 1 for normal glyphs and 2 for wide runes (CJK, emoji);
// a wide glyph's second column is a spacer with an empty Text.
type Cell struct {
	Text  string
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
	Width int
}

// NewCell returns an empty cell: a single space, default colors, no flags.
func NewCell() Cell {
	return Cell{Text: " ", Width: 1}
}

// Reset clears the cell back to its empty state.
func (c *Cell) Reset() {
	c.Text = " "
	c.Fg = nil
	c.Bg = nil
	c.Flags = 0
	c.Width = 1
}

// HasFlag reports whether flag is set.
func (c Cell) HasFlag(flag CellFlags) bool { return c.Flags&flag != 0 }

// SetFlag enables flag without affecting others.
func (c *Cell) SetFlag(flag CellFlags) { c.Flags |= flag }

// ClearFlag disables flag without affecting others.
func (c *Cell) ClearFlag(flag CellFlags) { c.Flags &^= flag }

// IsSpacer reports whether this cell is the trailing half of a wide glyph.
func (c Cell) IsSpacer() bool { return c.Width == 0 }
