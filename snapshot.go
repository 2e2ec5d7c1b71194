package vt

// SnapshotCell is one rendered cell: resolved text, hex colors, and
// attribute flags, ready for a host to draw without touching package vt
// internals.
type SnapshotCell struct {
	Text  string
	Fg    string
	Bg    string
	Flags CellFlags
	Width int
}

// SnapshotCursor describes the active cursor for rendering.
type SnapshotCursor struct {
	Row, Col int
	Visible  bool
	Style    string
	Blink    bool
}

// Snapshot is an immutable, internally consistent view of the active
// screen at the moment Terminal.Snapshot was called.
type Snapshot struct {
	Rows, Cols int
	Cells      [][]SnapshotCell
	Cursor     SnapshotCursor
	Title      string
	Alternate  bool
}

// Snapshot renders the currently active screen into a host-consumable
// view. It never mutates Terminal state.
func (t *Terminal) Snapshot() Snapshot {
	s := t.active
	snap := Snapshot{
		Rows:      s.rows,
		Cols:      s.cols,
		Cells:     make([][]SnapshotCell, s.rows),
		Title:     t.windowTitle,
		Alternate: t.onAlt,
	}
	cur := s.Cursor()
	snap.Cursor = SnapshotCursor{
		Row:     cur.Row,
		Col:     cur.DisplayCol(),
		Visible: cur.Visible,
		Style:   cur.Style.String(),
		Blink:   cur.Blink,
	}
	for r := 0; r < s.rows; r++ {
		row := s.row(r)
		out := make([]SnapshotCell, len(row))
		for c, cell := range row {
			out[c] = cellToSnapshot(cell, s.ReverseVideo())
		}
		snap.Cells[r] = out
	}
	return snap
}

// cellToSnapshot leaves Fg/Bg as "" when the cell carries no explicit
// color, rather than resolving to the host default; ResolveColor is for
// callers that need a concrete color to paint with. fg/bg are swapped
// when the cell's own invert flag disagrees with DECSCNM's screen-wide
// reverse video, so the two cancel out when both are set.
func cellToSnapshot(c Cell, screenReverse bool) SnapshotCell {
	fg, bg := c.Fg, c.Bg
	if c.HasFlag(CellFlagInvert) != screenReverse {
		fg, bg = bg, fg
	}
	return SnapshotCell{
		Text:  c.Text,
		Fg:    colorToHex(fg),
		Bg:    colorToHex(bg),
		Flags: c.Flags,
		Width: c.Width,
	}
}

// String renders the active screen as plain text, one line per row with
// trailing whitespace trimmed, useful for tests and simple logging.
func (t *Terminal) String() string {
	s := t.active
	out := make([]byte, 0, s.rows*(s.cols+1))
	for r := 0; r < s.rows; r++ {
		row := s.row(r)
		end := len(row)
		for end > 0 && row[end-1].Text == " " {
			end--
		}
		for c := 0; c < end; c++ {
			if row[c].Text == "" {
				continue
			}
			out = append(out, row[c].Text...)
		}
		if r < s.rows-1 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
