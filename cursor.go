package vt

import "image/color"

// CursorStyle names the shape xterm's DECSCUSR selects.
type CursorStyle int

const (
	CursorBlock CursorStyle = iota
	CursorUnderline
	CursorBar
)

func (s CursorStyle) String() string {
	switch s {
	case CursorUnderline:
		return "underline"
	case CursorBar:
		return "bar"
	default:
		return "block"
	}
}

// CellTemplate is the attribute state SGR accumulates between writes; each
// printed cell is stamped with a copy of it.
type CellTemplate struct {
	Fg    color.Color
	Bg    color.Color
	Flags CellFlags
}

// Cursor is the screen's active write position plus the pending-wrap flag
// and the SGR template applied to the next printed cell.
type Cursor struct {
	Row, Col int
	// PendingWrap is set when the cursor sits one column past the last
	// column after a printable write under autowrap; the wrap is deferred
	// until the next printable byte arrives, matching xterm's "last
	// column" behavior. Col itself is kept clamped at cols-1 while
	// PendingWrap is set, since every array-indexed use of Col (erase,
	// tab stops, insert/delete) needs a valid column; DisplayCol is the
	// externally-observed column spec.md's data model describes, which
	// reaches cols in this state.
	PendingWrap bool
	Visible     bool
	Style       CursorStyle
	Blink       bool
	Template    CellTemplate
}

// DisplayCol returns the cursor's column as spec.md's data model and §8's
// testable properties define it: 0 <= col <= max_cols, reaching max_cols
// in the pending-wrap state. Hosts reading the cursor position for
// rendering or for a CPR reply (ESC[6n) should use this instead of Col.
func (c Cursor) DisplayCol() int {
	if c.PendingWrap {
		return c.Col + 1
	}
	return c.Col
}

// NewCursor returns a cursor at the origin, visible, with no attributes.
func NewCursor() Cursor {
	return Cursor{Visible: true}
}

// SavedCursor is the DECSC snapshot restored by DECRC (ESC 7 / ESC 8).
type SavedCursor struct {
	Row, Col    int
	PendingWrap bool
	Template    CellTemplate
	Charset     Charset
}

// Charset names the G0/G1 designation DECSC must restore alongside the
// cursor position; the baseline core only distinguishes ASCII from the
// DEC special graphics ("line drawing") set used by ESC ( 0.
type Charset int

const (
	CharsetASCII Charset = iota
	CharsetDECSpecial
)

// CharsetIndex selects which of G0/G1 is currently invoked by SI/SO.
type CharsetIndex int

const (
	CharsetG0 CharsetIndex = iota
	CharsetG1
)
