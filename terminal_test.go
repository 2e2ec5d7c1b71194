package vt

import (
	"bytes"
	"strings"
	"testing"
)

func TestTerminalHelloWorld(t *testing.T) {
	term := New(WithSize(5, 20))
	term.Feed([]byte("Hello, World!"))
	got := term.String()
	if !strings.HasPrefix(got, "Hello, World!") {
		t.Fatalf("got %q", got)
	}
}

func TestTerminalNewlineWrap(t *testing.T) {
	term := New(WithSize(3, 5))
	term.Feed([]byte("abcdefg"))
	lines := strings.Split(term.String(), "\n")
	if lines[0] != "abcde" {
		t.Fatalf("line 0 = %q", lines[0])
	}
	if lines[1] != "fg" {
		t.Fatalf("line 1 = %q", lines[1])
	}
}

func TestTerminalCUPThenErase(t *testing.T) {
	term := New(WithSize(3, 10))
	term.Feed([]byte("0123456789\x1b[1;1H\x1b[K"))
	lines := strings.Split(term.String(), "\n")
	if lines[0] != "" {
		t.Fatalf("expected erased line, got %q", lines[0])
	}
}

func TestTerminalCUPSingleParamLeavesColumn(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Feed([]byte("\x1b[1;5H\x1b[3H"))
	s := term.Screen()
	if s.Cursor().Row != 2 {
		t.Fatalf("row = %d", s.Cursor().Row)
	}
	if s.Cursor().Col != 4 {
		t.Fatalf("col = %d, expected unchanged at 4", s.Cursor().Col)
	}
}

func TestTerminalCUPNoParamsHomesCursor(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Feed([]byte("\x1b[3;7H\x1b[H"))
	s := term.Screen()
	if s.Cursor().Row != 0 || s.Cursor().Col != 0 {
		t.Fatalf("cursor = %+v, expected homed to (0,0)", s.Cursor())
	}
}

func TestTerminalEraseDisplayModeTwoClearsWholeScreen(t *testing.T) {
	term := New(WithSize(3, 5))
	term.Feed([]byte("abcde\x1b[2;3Hxy\x1b[2J"))
	got := term.String()
	for _, r := range got {
		if r != '\n' {
			t.Fatalf("expected an entirely blank screen, got %q", got)
		}
	}
}

func TestTerminalSGRColor(t *testing.T) {
	term := New(WithSize(1, 10))
	term.Feed([]byte("\x1b[31mred\x1b[0mX"))
	snap := term.Snapshot()
	if snap.Cells[0][0].Fg == "" {
		t.Fatalf("expected a foreground color set on the first cell")
	}
	if snap.Cells[0][3].Fg != "" {
		t.Fatalf("expected SGR reset to clear foreground color, got %q", snap.Cells[0][3].Fg)
	}
}

func TestTerminalPendingWrapCursorColumnExternallyVisible(t *testing.T) {
	var resp bytes.Buffer
	term := New(WithSize(2, 3), WithResponse(&resp))
	term.Feed([]byte("abc"))
	snap := term.Snapshot()
	if snap.Cursor.Col != 3 {
		t.Fatalf("snapshot cursor col = %d, expected max_cols (3) while pending-wrap", snap.Cursor.Col)
	}
	term.Feed([]byte("\x1b[6n"))
	if resp.String() != "\x1b[1;4R" {
		t.Fatalf("DSR reply = %q, expected column 4 (1-based max_cols)", resp.String())
	}
}

func TestTerminalDSRReply(t *testing.T) {
	var resp bytes.Buffer
	term := New(WithSize(10, 10), WithResponse(&resp))
	term.Feed([]byte("\x1b[5;5H\x1b[6n"))
	if resp.String() != "\x1b[5;5R" {
		t.Fatalf("reply = %q", resp.String())
	}
}

func TestTerminalAlternateScreen(t *testing.T) {
	term := New(WithSize(3, 5))
	term.Feed([]byte("main"))
	term.Feed([]byte("\x1b[?1049h"))
	if !term.IsAlternateScreen() {
		t.Fatal("expected alternate screen active")
	}
	term.Feed([]byte("alt"))
	term.Feed([]byte("\x1b[?1049l"))
	if term.IsAlternateScreen() {
		t.Fatal("expected primary screen active again")
	}
	if !strings.HasPrefix(term.String(), "main") {
		t.Fatalf("expected primary screen content preserved, got %q", term.String())
	}
}

func TestTerminalUTF8(t *testing.T) {
	term := New(WithSize(1, 10))
	term.Feed([]byte("caf\xc3\xa9"))
	if !strings.HasPrefix(term.String(), "café") {
		t.Fatalf("got %q", term.String())
	}
}

func TestTerminalSplitCSIAcrossFeeds(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Feed([]byte("\x1b["))
	term.Feed([]byte("3;"))
	term.Feed([]byte("4H"))
	s := term.Screen()
	if s.Cursor().Row != 2 || s.Cursor().Col != 3 {
		t.Fatalf("cursor = %+v", s.Cursor())
	}
}

func TestTerminalResetIdempotent(t *testing.T) {
	term := New(WithSize(3, 5))
	term.Feed([]byte("abc\x1b[31m\x1bc"))
	term.Feed([]byte("\x1bc"))
	if term.Screen().Attrs() != (CellTemplate{}) {
		t.Fatalf("expected attrs cleared after reset")
	}
}

func TestTerminalResizeIdempotent(t *testing.T) {
	term := New(WithSize(5, 10))
	term.Resize(8, 20)
	term.Resize(8, 20)
	if term.Screen().Rows() != 8 || term.Screen().Cols() != 20 {
		t.Fatalf("size = %dx%d", term.Screen().Rows(), term.Screen().Cols())
	}
}

func TestTerminalBell(t *testing.T) {
	rec := &RecordingProvider{}
	term := New(WithBellProvider(rec))
	term.Feed([]byte{0x07, 0x07})
	if rec.Bells != 2 {
		t.Fatalf("bells = %d", rec.Bells)
	}
}

func TestTerminalTitle(t *testing.T) {
	rec := &RecordingProvider{}
	term := New(WithTitleProvider(rec))
	term.Feed([]byte("\x1b]0;hello\x07"))
	if term.Title() != "hello" {
		t.Fatalf("title = %q", term.Title())
	}
	if len(rec.Titles) != 1 || rec.Titles[0] != "hello" {
		t.Fatalf("titles = %v", rec.Titles)
	}
}
