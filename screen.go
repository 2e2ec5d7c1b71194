package vt

// Screen is one of the terminal's two grids (primary or alternate) per
// §4.3. Rows are stored as an append-only deque: ScrollUp appends a new
// blank row and advances viewportStart instead of copying every row down
// one slot, trading the teacher's wholesale-row-replace Buffer for O(1)
// scroll at the cost of unbounded growth on the primary screen (bounded
// by trimming rows that fall out of the configured scrollback limit).
type Screen struct {
	cols, rows int

	// allRows holds the retained scrollback rows followed by the visible
	// rows, oldest first. The visible viewport is
	// allRows[viewportStart : viewportStart+s.rows].
	allRows       [][]Cell
	viewportStart int
	scrollback    int // max rows kept above the viewport; 0 = no scrollback (alternate screen)

	// overflow receives rows once they are evicted from allRows, so a
	// host can retain history beyond this in-memory budget; defaults to
	// NoopScrollbackProvider.
	overflow ScrollbackProvider

	cursor       Cursor
	saved        SavedCursor
	hasSaved     bool
	charsetIdx   CharsetIndex
	charsets     [2]Charset

	scrollTop, scrollBottom int // 0-based, inclusive; scrollBottom == rows-1 by default

	tabStops []bool

	autowrap    bool
	originMode  bool
	insertMode  bool
	reverseMode bool

	dirty []bool // one flag per visible row
}

// NewScreen returns a Screen sized rows x cols with default modes: autowrap
// on, origin mode off, full-height scroll region, a tab stop every 8
// columns, and scrollback enabled only when scrollback > 0.
func NewScreen(rows, cols, scrollback int) *Screen {
	s := &Screen{
		cols:          cols,
		rows:          rows,
		viewportStart: 0,
		scrollback:    scrollback,
		overflow:      NoopScrollbackProvider{},
		scrollBottom:  rows - 1,
		autowrap:      true,
		cursor:        NewCursor(),
	}
	for i := 0; i < rows; i++ {
		s.allRows = append(s.allRows, s.blankRow())
	}
	s.resetTabStops()
	s.dirty = make([]bool, rows)
	return s
}

func (s *Screen) blankRow() []Cell {
	row := make([]Cell, s.cols)
	for i := range row {
		row[i] = NewCell()
	}
	return row
}

func (s *Screen) resetTabStops() {
	s.tabStops = make([]bool, s.cols)
	for i := 0; i < s.cols; i += 8 {
		s.tabStops[i] = true
	}
}

// Cols and Rows report the visible viewport size.
func (s *Screen) Cols() int { return s.cols }
func (s *Screen) Rows() int { return s.rows }

// row returns the visible row at 0-based index r (r < s.rows).
func (s *Screen) row(r int) []Cell {
	return s.allRows[s.viewportStart+r]
}

// Cell returns a copy of the cell at (row, col); out-of-range coordinates
// return a blank cell rather than panicking.
func (s *Screen) Cell(row, col int) Cell {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return NewCell()
	}
	return s.row(row)[col]
}

// SetCell overwrites the cell at (row, col) and marks the row dirty.
func (s *Screen) SetCell(row, col int, c Cell) {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return
	}
	s.row(row)[col] = c
	s.markDirty(row)
}

func (s *Screen) markDirty(row int) {
	if row >= 0 && row < len(s.dirty) {
		s.dirty[row] = true
	}
}

// ClearAllDirty resets every row's dirty flag, typically after a render.
func (s *Screen) ClearAllDirty() {
	for i := range s.dirty {
		s.dirty[i] = false
	}
}

// Dirty reports whether row has been written to since the last
// ClearAllDirty.
func (s *Screen) Dirty(row int) bool {
	if row < 0 || row >= len(s.dirty) {
		return false
	}
	return s.dirty[row]
}

// Cursor returns the current cursor state by value.
func (s *Screen) Cursor() Cursor { return s.cursor }

// PutChar writes a single-width or double-width glyph at the cursor and
// advances it, honoring autowrap's deferred-wrap rule: a write that lands
// exactly on the last column sets PendingWrap instead of moving past it;
// the wrap only happens when the *next* printable byte arrives.
func (s *Screen) PutChar(text string, width int) {
	if width <= 0 {
		width = 1
	}
	if s.cursor.PendingWrap {
		if s.autowrap {
			s.lineFeedCursorOnly()
			s.cursor.Col = 0
		}
		s.cursor.PendingWrap = false
	}
	if s.cursor.Col+width > s.cols {
		// Not enough room for a wide glyph: pad with a blank and wrap.
		if s.autowrap {
			for c := s.cursor.Col; c < s.cols; c++ {
				s.SetCell(s.cursor.Row, c, NewCell())
			}
			s.lineFeedCursorOnly()
			s.cursor.Col = 0
		} else {
			s.cursor.Col = s.cols - width
			if s.cursor.Col < 0 {
				s.cursor.Col = 0
			}
		}
	}

	if s.insertMode {
		s.InsertBlanks(width)
	}

	cell := s.cellFromTemplate()
	cell.Text = text
	cell.Width = width
	s.SetCell(s.cursor.Row, s.cursor.Col, cell)
	for i := 1; i < width; i++ {
		spacer := s.cellFromTemplate()
		spacer.Text = ""
		spacer.Width = 0
		s.SetCell(s.cursor.Row, s.cursor.Col+i, spacer)
	}

	if s.cursor.Col+width == s.cols {
		s.cursor.Col = s.cols - 1
		s.cursor.PendingWrap = s.autowrap
	} else {
		s.cursor.Col += width
	}
}

func (s *Screen) cellFromTemplate() Cell {
	return Cell{
		Text:  " ",
		Fg:    s.cursor.Template.Fg,
		Bg:    s.cursor.Template.Bg,
		Flags: s.cursor.Template.Flags,
		Width: 1,
	}
}

// lineFeedCursorOnly advances the cursor's row, scrolling the region if
// it was already at the bottom. It does not touch Col.
func (s *Screen) lineFeedCursorOnly() {
	if s.cursor.Row == s.scrollBottom {
		s.ScrollUp(1)
		return
	}
	if s.cursor.Row < s.rows-1 {
		s.cursor.Row++
	}
}

// Newline performs LF: advance one row, scrolling if at the scroll
// region's bottom. Column is unchanged (matching a raw VT's LF, distinct
// from CRLF mode handled by the dispatcher).
func (s *Screen) Newline() {
	s.cursor.PendingWrap = false
	s.lineFeedCursorOnly()
}

// CarriageReturn performs CR: column to 0.
func (s *Screen) CarriageReturn() {
	s.cursor.PendingWrap = false
	s.cursor.Col = 0
}

// Backspace moves the cursor left one column, stopping at column 0.
func (s *Screen) Backspace() {
	s.cursor.PendingWrap = false
	if s.cursor.Col > 0 {
		s.cursor.Col--
	}
}

// Tab moves the cursor to the next tab stop, or the last column if none
// remain.
func (s *Screen) Tab() {
	s.cursor.PendingWrap = false
	for c := s.cursor.Col + 1; c < s.cols; c++ {
		if s.tabStops[c] {
			s.cursor.Col = c
			return
		}
	}
	s.cursor.Col = s.cols - 1
}

// MoveCursor moves the cursor by (dRow, dCol), clamping to the screen
// bounds; the scroll region is not consulted.
func (s *Screen) MoveCursor(dRow, dCol int) {
	s.cursor.PendingWrap = false
	row := s.cursor.Row + dRow
	col := s.cursor.Col + dCol
	if row < 0 {
		row = 0
	}
	if row > s.rows-1 {
		row = s.rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col > s.cols-1 {
		col = s.cols - 1
	}
	s.cursor.Row, s.cursor.Col = row, col
}

// CursorTo moves the cursor to an absolute (row, col), 0-based, clamped
// to the screen. When origin mode is set, row is relative to the scroll
// region's top.
func (s *Screen) CursorTo(row, col int) {
	s.cursor.PendingWrap = false
	if s.originMode {
		row += s.scrollTop
	}
	if row < 0 {
		row = 0
	}
	if row > s.rows-1 {
		row = s.rows - 1
	}
	if col < 0 {
		col = 0
	}
	if col > s.cols-1 {
		col = s.cols - 1
	}
	s.cursor.Row, s.cursor.Col = row, col
}

// CursorToColumn moves the cursor to an absolute column, row unchanged.
func (s *Screen) CursorToColumn(col int) {
	s.cursor.PendingWrap = false
	if col < 0 {
		col = 0
	}
	if col > s.cols-1 {
		col = s.cols - 1
	}
	s.cursor.Col = col
}

// CursorToRow moves the cursor to an absolute row, column unchanged.
func (s *Screen) CursorToRow(row int) {
	s.cursor.PendingWrap = false
	if s.originMode {
		row += s.scrollTop
	}
	if row < 0 {
		row = 0
	}
	if row > s.rows-1 {
		row = s.rows - 1
	}
	s.cursor.Row = row
}

// EraseDisplay implements ED (CSI J). mode 0 erases cursor-to-end, mode 1
// erases start-to-cursor (inclusive), mode 2 erases the entire screen.
func (s *Screen) EraseDisplay(mode int) {
	switch mode {
	case 0:
		s.eraseLineRange(s.cursor.Row, s.cursor.Col, s.cols-1)
		for r := s.cursor.Row + 1; r < s.rows; r++ {
			s.eraseLineRange(r, 0, s.cols-1)
		}
	case 1:
		for r := 0; r < s.cursor.Row; r++ {
			s.eraseLineRange(r, 0, s.cols-1)
		}
		s.eraseLineRange(s.cursor.Row, 0, s.cursor.Col)
	case 2, 3:
		for r := 0; r < s.rows; r++ {
			s.eraseLineRange(r, 0, s.cols-1)
		}
	}
}

// EraseLine implements EL (CSI K) with the same mode semantics as ED but
// confined to the cursor's row.
func (s *Screen) EraseLine(mode int) {
	switch mode {
	case 0:
		s.eraseLineRange(s.cursor.Row, s.cursor.Col, s.cols-1)
	case 1:
		s.eraseLineRange(s.cursor.Row, 0, s.cursor.Col)
	case 2:
		s.eraseLineRange(s.cursor.Row, 0, s.cols-1)
	}
}

func (s *Screen) eraseLineRange(row, from, to int) {
	if row < 0 || row >= s.rows {
		return
	}
	if from < 0 {
		from = 0
	}
	if to > s.cols-1 {
		to = s.cols - 1
	}
	for c := from; c <= to; c++ {
		s.SetCell(row, c, s.cellFromTemplate())
	}
}

// EraseChars implements ECH (CSI X): erase n cells starting at the cursor,
// wrapping to the next row at the last column and stopping at the end of
// the grid, without moving the cursor.
func (s *Screen) EraseChars(n int) {
	if n < 1 {
		n = 1
	}
	row, col := s.cursor.Row, s.cursor.Col
	for i := 0; i < n && row < s.rows; i++ {
		s.SetCell(row, col, s.cellFromTemplate())
		col++
		if col >= s.cols {
			col = 0
			row++
		}
	}
}

// InsertBlanks implements ICH (CSI @): insert n blanks at the cursor,
// shifting the rest of the row right and dropping cells that fall off
// the right edge.
func (s *Screen) InsertBlanks(n int) {
	if n < 1 {
		n = 1
	}
	row := s.row(s.cursor.Row)
	for c := s.cols - 1; c >= s.cursor.Col+n; c-- {
		row[c] = row[c-n]
	}
	for c := s.cursor.Col; c < s.cursor.Col+n && c < s.cols; c++ {
		row[c] = s.cellFromTemplate()
	}
	s.markDirty(s.cursor.Row)
}

// DeleteChars implements DCH (CSI P): delete n cells at the cursor,
// shifting the rest of the row left and filling the vacated tail with
// blanks.
func (s *Screen) DeleteChars(n int) {
	if n < 1 {
		n = 1
	}
	row := s.row(s.cursor.Row)
	src := s.cursor.Col + n
	dst := s.cursor.Col
	for src < s.cols {
		row[dst] = row[src]
		dst++
		src++
	}
	for dst < s.cols {
		row[dst] = s.cellFromTemplate()
		dst++
	}
	s.markDirty(s.cursor.Row)
}

// SetScrollRegion implements DECSTBM (CSI r): top/bottom are 0-based,
// inclusive. Line feeds from PutChar/Newline scroll only the region once
// the cursor reaches scrollBottom; a cursor below the region stops at the
// last screen row without scrolling.
func (s *Screen) SetScrollRegion(top, bottom int) {
	if top < 0 {
		top = 0
	}
	if bottom > s.rows-1 || bottom <= top {
		bottom = s.rows - 1
	}
	s.scrollTop, s.scrollBottom = top, bottom
}

// ScrollUp scrolls the scroll region up by n rows: n new blank rows
// appear at the bottom, and rows that scroll off the top of the region
// (on the full-height region only) are retained in scrollback.
func (s *Screen) ScrollUp(n int) {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		s.scrollUpOne()
	}
}

func (s *Screen) scrollUpOne() {
	if s.scrollTop == 0 && s.scrollBottom == s.rows-1 {
		s.allRows = append(s.allRows, s.blankRow())
		s.viewportStart++
		if s.scrollback > 0 {
			for s.viewportStart > s.scrollback {
				s.overflow.Push(s.allRows[0])
				s.allRows = s.allRows[1:]
				s.viewportStart--
			}
		} else {
			// No scrollback retention: drop the row that just left the
			// viewport immediately so memory stays bounded, handing it to
			// overflow first in case a host opted in anyway.
			s.overflow.Push(s.allRows[0])
			s.allRows = s.allRows[1:]
			s.viewportStart--
		}
		return
	}
	// Region-bounded scroll: shift rows within [scrollTop, scrollBottom]
	// up by one, in place.
	for r := s.scrollTop; r < s.scrollBottom; r++ {
		copy(s.row(r), s.row(r+1))
	}
	blank := s.blankRow()
	copy(s.row(s.scrollBottom), blank)
	for r := s.scrollTop; r <= s.scrollBottom; r++ {
		s.markDirty(r)
	}
}

// ScrollDown scrolls the scroll region down by n rows: n blank rows enter
// at the top of the region, shifting existing rows down.
func (s *Screen) ScrollDown(n int) {
	if n < 1 {
		n = 1
	}
	for i := 0; i < n; i++ {
		for r := s.scrollBottom; r > s.scrollTop; r-- {
			copy(s.row(r), s.row(r-1))
		}
		blank := s.blankRow()
		copy(s.row(s.scrollTop), blank)
	}
	for r := s.scrollTop; r <= s.scrollBottom; r++ {
		s.markDirty(r)
	}
}

// InsertLines implements IL (CSI L): insert n blank lines at the cursor
// row, within the scroll region, pushing lines below down and off the
// region's bottom.
func (s *Screen) InsertLines(n int) {
	if s.cursor.Row < s.scrollTop || s.cursor.Row > s.scrollBottom {
		return
	}
	if n < 1 {
		n = 1
	}
	savedTop := s.scrollTop
	s.scrollTop = s.cursor.Row
	s.ScrollDown(n)
	s.scrollTop = savedTop
}

// DeleteLines implements DL (CSI M): delete n lines at the cursor row,
// within the scroll region, pulling lines below up.
func (s *Screen) DeleteLines(n int) {
	if s.cursor.Row < s.scrollTop || s.cursor.Row > s.scrollBottom {
		return
	}
	if n < 1 {
		n = 1
	}
	savedTop := s.scrollTop
	s.scrollTop = s.cursor.Row
	s.ScrollUp(n)
	s.scrollTop = savedTop
}

// SaveCursor implements DECSC (ESC 7): snapshot position, pending-wrap,
// SGR template, and the invoked charset.
func (s *Screen) SaveCursor() {
	s.saved = SavedCursor{
		Row:         s.cursor.Row,
		Col:         s.cursor.Col,
		PendingWrap: s.cursor.PendingWrap,
		Template:    s.cursor.Template,
		Charset:     s.charsets[s.charsetIdx],
	}
	s.hasSaved = true
}

// RestoreCursor implements DECRC (ESC 8). If nothing was ever saved, it
// resets to the origin, matching xterm's behavior for a bare DECRC.
func (s *Screen) RestoreCursor() {
	if !s.hasSaved {
		s.cursor.Row, s.cursor.Col = 0, 0
		s.cursor.PendingWrap = false
		return
	}
	s.cursor.Row = s.saved.Row
	s.cursor.Col = s.saved.Col
	s.cursor.PendingWrap = s.saved.PendingWrap
	s.cursor.Template = s.saved.Template
	s.charsets[s.charsetIdx] = s.saved.Charset
}

// SetAttrs replaces the SGR template cells inherit going forward.
func (s *Screen) SetAttrs(t CellTemplate) { s.cursor.Template = t }

// Attrs returns the current SGR template.
func (s *Screen) Attrs() CellTemplate { return s.cursor.Template }

// SetMode applies one of the DEC private or ANSI modes named in §4.4's
// mode table that is purely a Screen concern (autowrap, origin mode,
// insert mode); modes with terminal-wide scope (alternate screen,
// bracketed paste) are handled by the dispatcher against Terminal.
func (s *Screen) SetMode(mode int, enabled bool) {
	switch mode {
	case 6: // DECOM origin mode
		s.originMode = enabled
		s.CursorTo(0, 0)
	case 7: // DECAWM autowrap
		s.autowrap = enabled
	case 4: // IRM insert mode (ANSI, no '?' prefix; dispatcher routes it here)
		s.insertMode = enabled
	case 5: // DECSCNM reverse video
		s.reverseMode = enabled
	}
}

// AutowrapEnabled reports DECAWM state; PutChar only sets pending-wrap
// while it is on.
func (s *Screen) AutowrapEnabled() bool { return s.autowrap }

// ReverseVideo reports DECSCNM state: the whole screen's fg/bg swapped.
func (s *Screen) ReverseVideo() bool { return s.reverseMode }

// InsertMode reports IRM state.
func (s *Screen) InsertMode() bool { return s.insertMode }

// Reset restores the screen to its power-on state: full erase, cursor at
// origin, default attributes, full-height scroll region, tab stops every
// 8 columns, autowrap on.
func (s *Screen) Reset() {
	s.cursor = NewCursor()
	for r := 0; r < s.rows; r++ {
		s.eraseLineRange(r, 0, s.cols-1)
	}
	s.scrollTop, s.scrollBottom = 0, s.rows-1
	s.autowrap = true
	s.originMode = false
	s.insertMode = false
	s.reverseMode = false
	s.hasSaved = false
	s.charsetIdx = CharsetG0
	s.charsets = [2]Charset{}
	s.resetTabStops()
}

// Resize changes the viewport dimensions, preserving existing content in
// the top-left and padding new rows/columns with blank cells. The cursor
// is clamped into the new bounds.
func (s *Screen) Resize(rows, cols int) {
	if rows < 1 {
		rows = 1
	}
	if cols < 1 {
		cols = 1
	}
	if cols != s.cols {
		for i := range s.allRows {
			old := s.allRows[i]
			row := make([]Cell, cols)
			for i := range row {
				row[i] = NewCell()
			}
			copy(row, old)
			s.allRows[i] = row
		}
		s.cols = cols
		s.resetTabStops()
	}
	if rows > s.rows {
		for i := 0; i < rows-s.rows; i++ {
			s.allRows = append(s.allRows, s.blankRow())
		}
	} else if rows < s.rows {
		s.allRows = s.allRows[:s.viewportStart+rows]
	}
	s.rows = rows
	s.scrollTop, s.scrollBottom = 0, rows-1
	s.dirty = make([]bool, rows)
	if s.cursor.Row > rows-1 {
		s.cursor.Row = rows - 1
	}
	if s.cursor.Col > cols-1 {
		s.cursor.Col = cols - 1
	}
}

// SetTabStop sets or clears the tab stop at the cursor's column.
func (s *Screen) SetTabStop(set bool) {
	if s.cursor.Col >= 0 && s.cursor.Col < len(s.tabStops) {
		s.tabStops[s.cursor.Col] = set
	}
}

// ClearAllTabStops removes every tab stop (TBC mode 3).
func (s *Screen) ClearAllTabStops() {
	for i := range s.tabStops {
		s.tabStops[i] = false
	}
}

// FillWithE fills the entire viewport with 'E', used by DECALN (ESC#8)
// to test the full screen for stuck pixels/alignment.
func (s *Screen) FillWithE() {
	for r := 0; r < s.rows; r++ {
		for c := 0; c < s.cols; c++ {
			s.SetCell(r, c, Cell{Text: "E", Width: 1})
		}
	}
}

// SetScrollbackProvider installs a host-side store for rows this screen
// evicts once they fall out of its own in-memory budget. Pass nil to go
// back to discarding evicted rows.
func (s *Screen) SetScrollbackProvider(p ScrollbackProvider) {
	if p == nil {
		p = NoopScrollbackProvider{}
	}
	s.overflow = p
}

// ScrollbackLen returns how many rows of history are retained overall:
// rows resident above the viewport plus whatever the configured
// ScrollbackProvider has additionally stored.
func (s *Screen) ScrollbackLen() int { return s.overflow.Len() + s.viewportStart }

// ScrollbackLine returns a copy of a retained row, 0 being the oldest
// line known to the screen: rows the configured ScrollbackProvider holds
// come first, followed by the rows still resident above the viewport.
// Out-of-range indices return nil.
func (s *Screen) ScrollbackLine(i int) []Cell {
	if i < 0 || i >= s.ScrollbackLen() {
		return nil
	}
	n := s.overflow.Len()
	if i < n {
		return s.overflow.Line(i)
	}
	return append([]Cell(nil), s.allRows[i-n]...)
}
