package vt

import "testing"

func TestScreenScrollUpRetainsScrollback(t *testing.T) {
	s := NewScreen(2, 5, 10)
	s.PutChar("a", 1)
	s.Newline()
	s.PutChar("b", 1)
	s.ScrollUp(1)
	if s.ScrollbackLen() != 1 {
		t.Fatalf("scrollback len = %d", s.ScrollbackLen())
	}
	line := s.ScrollbackLine(0)
	if line[0].Text != "a" {
		t.Fatalf("scrollback row 0 = %+v", line)
	}
}

func TestScreenNoScrollbackOnAlternate(t *testing.T) {
	s := NewScreen(2, 5, 0)
	s.ScrollUp(3)
	if s.ScrollbackLen() != 0 {
		t.Fatalf("expected no retained rows, got %d", s.ScrollbackLen())
	}
}

func TestScreenInsertDeleteLines(t *testing.T) {
	s := NewScreen(3, 5, 0)
	s.PutChar("1", 1)
	s.CursorTo(1, 0)
	s.PutChar("2", 1)
	s.CursorTo(2, 0)
	s.PutChar("3", 1)

	s.CursorTo(1, 0)
	s.InsertLines(1)
	if s.Cell(1, 0).Text != " " {
		t.Fatalf("expected blank inserted line, got %+v", s.Cell(1, 0))
	}
	if s.Cell(2, 0).Text != "2" {
		t.Fatalf("expected pushed-down row '2', got %+v", s.Cell(2, 0))
	}

	s.DeleteLines(1)
	if s.Cell(1, 0).Text != "2" {
		t.Fatalf("expected row '2' restored after delete, got %+v", s.Cell(1, 0))
	}
}

func TestScreenAutowrapPendingWrap(t *testing.T) {
	s := NewScreen(2, 3, 0)
	s.PutChar("a", 1)
	s.PutChar("b", 1)
	s.PutChar("c", 1)
	if !s.cursor.PendingWrap {
		t.Fatal("expected pending wrap after filling the last column")
	}
	s.PutChar("d", 1)
	if s.Cell(1, 0).Text != "d" {
		t.Fatalf("expected wrap onto row 1, got %+v", s.Cell(1, 0))
	}
}

func TestScreenWideRuneSpacerCell(t *testing.T) {
	s := NewScreen(1, 5, 0)
	s.PutChar("字", 2)
	if s.Cell(0, 0).Width != 2 {
		t.Fatalf("expected width 2, got %d", s.Cell(0, 0).Width)
	}
	if !s.Cell(0, 1).IsSpacer() {
		t.Fatal("expected spacer cell after a wide glyph")
	}
}

func TestScreenResizePreservesContent(t *testing.T) {
	s := NewScreen(2, 5, 0)
	s.PutChar("x", 1)
	s.Resize(4, 8)
	if s.Cell(0, 0).Text != "x" {
		t.Fatalf("expected preserved content, got %+v", s.Cell(0, 0))
	}
	if s.Rows() != 4 || s.Cols() != 8 {
		t.Fatalf("size = %dx%d", s.Rows(), s.Cols())
	}
}

func TestScreenEraseCharsDoesNotMoveCursor(t *testing.T) {
	s := NewScreen(1, 5, 0)
	s.PutChar("a", 1)
	s.PutChar("b", 1)
	s.CursorTo(0, 0)
	s.EraseChars(2)
	if s.Cursor().Col != 0 {
		t.Fatalf("cursor moved: %+v", s.Cursor())
	}
	if s.Cell(0, 0).Text != " " || s.Cell(0, 1).Text != " " {
		t.Fatalf("expected erased cells, got %+v %+v", s.Cell(0, 0), s.Cell(0, 1))
	}
}

func TestScreenEraseCharsWrapsToNextRow(t *testing.T) {
	s := NewScreen(2, 3, 0)
	s.PutChar("a", 1)
	s.PutChar("b", 1)
	s.PutChar("c", 1)
	s.CursorTo(1, 0)
	s.PutChar("d", 1)
	s.PutChar("e", 1)
	s.PutChar("f", 1)
	s.CursorTo(0, 1)
	s.EraseChars(4)
	if s.Cell(0, 1).Text != " " || s.Cell(0, 2).Text != " " {
		t.Fatalf("expected row 0 cols 1-2 erased, got %+v %+v", s.Cell(0, 1), s.Cell(0, 2))
	}
	if s.Cell(1, 0).Text != " " || s.Cell(1, 1).Text != " " {
		t.Fatalf("expected wrap erasing row 1 cols 0-1, got %+v %+v", s.Cell(1, 0), s.Cell(1, 1))
	}
	if s.Cell(1, 2).Text != "f" {
		t.Fatalf("expected row 1 col 2 untouched, got %+v", s.Cell(1, 2))
	}
	if s.Cursor().Row != 0 || s.Cursor().Col != 1 {
		t.Fatalf("cursor moved: %+v", s.Cursor())
	}
}

// memoryScrollback is a minimal ScrollbackProvider test double: an
// unbounded in-memory store, the shape a host would back with disk.
type memoryScrollback struct {
	lines [][]Cell
}

func (m *memoryScrollback) Push(row []Cell) { m.lines = append(m.lines, row) }
func (m *memoryScrollback) Len() int        { return len(m.lines) }
func (m *memoryScrollback) Line(i int) []Cell {
	if i < 0 || i >= len(m.lines) {
		return nil
	}
	return m.lines[i]
}

func TestScreenScrollbackProviderReceivesEvictedRows(t *testing.T) {
	store := &memoryScrollback{}
	s := NewScreen(2, 5, 1)
	s.SetScrollbackProvider(store)

	s.PutChar("a", 1)
	s.ScrollUp(1) // viewportStart=1, within budget, nothing evicted yet
	s.PutChar("b", 1)
	s.ScrollUp(1) // viewportStart would exceed budget of 1: row "a" evicted

	if store.Len() != 1 {
		t.Fatalf("store len = %d, expected 1 evicted row", store.Len())
	}
	if store.lines[0][0].Text != "a" {
		t.Fatalf("expected evicted row to be the 'a' row, got %+v", store.lines[0])
	}
	if s.ScrollbackLen() != store.Len()+s.viewportStart {
		t.Fatalf("ScrollbackLen = %d, expected store+resident", s.ScrollbackLen())
	}
	if line := s.ScrollbackLine(0); line == nil || line[0].Text != "a" {
		t.Fatalf("ScrollbackLine(0) = %+v, expected the provider's row", line)
	}
}
