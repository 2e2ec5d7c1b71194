package vt

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"unicode/utf8"
)

// dispatchToken routes one classifier token to the right handler. This
// is C4: the layer between the classifier/parser and screen mutation.
func (t *Terminal) dispatchToken(tok Token) {
	switch tok.Kind {
	case TokenIntermediate:
		// Nothing ready yet.
	case TokenChar:
		t.dispatchChar(tok.Byte)
	case TokenUTF8Rune:
		t.dispatchUTF8(tok.Data)
	case TokenCSI:
		t.dispatchCSI(ParseCSI(tok.Data))
	case TokenEscSeq:
		t.dispatchEscSeq(tok.Data)
	case TokenSTString:
		t.dispatchSTString(tok.Data)
	case TokenUnknown:
		// Malformed input is dropped silently, matching §4's total-handler
		// contract: never panic, never block.
	}
}

func (t *Terminal) dispatchChar(b byte) {
	switch b {
	case 0x07: // BEL
		t.bell.Bell()
	case 0x08: // BS
		t.active.Backspace()
	case 0x09: // HT
		t.active.Tab()
	case 0x0A, 0x0B, 0x0C: // LF, VT, FF
		t.active.Newline()
	case 0x0D: // CR
		t.active.CarriageReturn()
	case 0x0E: // SO: invoke G1
		t.active.charsetIdx = CharsetG1
	case 0x0F: // SI: invoke G0
		t.active.charsetIdx = CharsetG0
	default:
		if b < 0x20 {
			// Other C0 controls carry no screen effect in the baseline core.
			return
		}
		t.putByte(b)
	}
}

func (t *Terminal) putByte(b byte) {
	text := string(rune(b))
	if t.active.charsets[t.active.charsetIdx] == CharsetDECSpecial {
		if r, ok := decSpecialGraphics[b]; ok {
			text = string(r)
		}
	}
	t.active.PutChar(text, 1)
}

func (t *Terminal) dispatchUTF8(data []byte) {
	r, _ := utf8.DecodeRune(data)
	if r == utf8.RuneError {
		return
	}
	w := runeWidth(r)
	if w <= 0 {
		return
	}
	t.active.PutChar(string(r), w)
}

// decSpecialGraphics maps the ASCII bytes xterm's DEC special graphics
// charset (ESC ( 0) redefines to line-drawing glyphs, for the common
// box-drawing subset.
var decSpecialGraphics = map[byte]rune{
	'j': '┘', 'k': '┐', 'l': '┌', 'm': '└', 'n': '┼',
	'q': '─', 't': '├', 'u': '┤', 'v': '┴', 'w': '┬', 'x': '│',
	'a': '▒', '`': '◆', 'f': '°', 'g': '±',
}

func (t *Terminal) dispatchEscSeq(data []byte) {
	if len(data) == 0 {
		return
	}
	switch data[0] {
	case 'D': // IND
		t.active.Newline()
	case 'M': // RI, reverse index
		if t.active.cursor.Row == t.active.scrollTop {
			t.active.ScrollDown(1)
		} else {
			t.active.MoveCursor(-1, 0)
		}
	case 'E': // NEL
		t.active.CarriageReturn()
		t.active.Newline()
	case '7': // DECSC
		t.active.SaveCursor()
	case '8': // DECRC
		t.active.RestoreCursor()
	case 'c': // RIS, full reset
		t.fullReset()
	case 'H': // HTS, set tab stop at cursor
		t.active.SetTabStop(true)
	case '(', ')', '*', '+':
		if len(data) < 2 {
			return
		}
		t.setCharset(data[0], data[1])
	case '#':
		if len(data) < 2 {
			return
		}
		if data[1] == '8' {
			t.active.FillWithE()
		}
	}
}

func (t *Terminal) setCharset(designator, final byte) {
	idx := CharsetG0
	if designator == ')' || designator == '+' {
		idx = CharsetG1
	}
	switch final {
	case '0':
		t.active.charsets[idx] = CharsetDECSpecial
	default:
		t.active.charsets[idx] = CharsetASCII
	}
}

func (t *Terminal) fullReset() {
	t.primary.Reset()
	t.alternate.Reset()
	t.active = t.primary
	t.onAlt = false
	t.bracketedPaste = false
	t.focusTracking = false
	t.cursorKeyMode = false
	t.keypadMode = false
	t.windowTitle = ""
	t.titleStack = nil
}

func (t *Terminal) dispatchCSI(cmd CSICommand) {
	switch cmd.Final {
	case 'A':
		t.active.MoveCursor(-max1(cmd.Get(0, 1)), 0)
	case 'B':
		t.active.MoveCursor(max1(cmd.Get(0, 1)), 0)
	case 'C':
		t.active.MoveCursor(0, max1(cmd.Get(0, 1)))
	case 'D':
		t.active.MoveCursor(0, -max1(cmd.Get(0, 1)))
	case 'E': // CNL
		t.active.CarriageReturn()
		t.active.MoveCursor(max1(cmd.Get(0, 1)), 0)
	case 'F': // CPL
		t.active.CarriageReturn()
		t.active.MoveCursor(-max1(cmd.Get(0, 1)), 0)
	case 'G', '`': // CHA, HPA
		t.active.CursorToColumn(cmd.Get(0, 1) - 1)
	case 'H', 'f': // CUP, HVP
		t.dispatchCUP(cmd)
	case 'I': // CHT, forward tab
		for i := 0; i < max1(cmd.Get(0, 1)); i++ {
			t.active.Tab()
		}
	case 'J':
		t.active.EraseDisplay(cmd.Get(0, 0))
	case 'K':
		t.active.EraseLine(cmd.Get(0, 0))
	case 'L':
		t.active.InsertLines(cmd.Get(0, 1))
	case 'M':
		t.active.DeleteLines(cmd.Get(0, 1))
	case 'P':
		t.active.DeleteChars(cmd.Get(0, 1))
	case 'S':
		t.active.ScrollUp(cmd.Get(0, 1))
	case 'T':
		t.active.ScrollDown(cmd.Get(0, 1))
	case 'X':
		t.active.EraseChars(cmd.Get(0, 1))
	case '@':
		t.active.InsertBlanks(cmd.Get(0, 1))
	case 'd': // VPA
		t.active.CursorToRow(cmd.Get(0, 1) - 1)
	case 'g': // TBC
		switch cmd.Get(0, 0) {
		case 0:
			t.active.SetTabStop(false)
		case 3:
			t.active.ClearAllTabStops()
		}
	case 'c': // DA
		t.dispatchDA(cmd)
	case 'n': // DSR
		t.dispatchDSR(cmd)
	case 'm':
		t.dispatchSGR(cmd)
	case 'h':
		t.dispatchModeSet(cmd, true)
	case 'l':
		t.dispatchModeSet(cmd, false)
	case 'r': // DECSTBM
		top := cmd.Get(0, 1) - 1
		bottom := cmd.Get(1, t.active.rows) - 1
		t.active.SetScrollRegion(top, bottom)
	case 't': // XTWINOPS, title stack subset
		t.dispatchWinOps(cmd)
	case 'p':
		// XTSMPOINTER and DECSTR share final 'p' with different
		// intermediates/prefixes; the baseline core treats both as
		// accepted no-ops since neither has an observable screen effect.
	}
}

func max1(n int) int {
	if n < 1 {
		return 1
	}
	return n
}

func (t *Terminal) dispatchCUP(cmd CSICommand) {
	switch len(cmd.Params) {
	case 0:
		// Bare CSI H: home to the origin, per spec.md's stated "defaults
		// 1;1" and the original source's ints.size()==0 branch.
		t.active.CursorTo(0, 0)
	case 1:
		// When only one parameter is given, column is left unchanged
		// rather than reset to 0; this makes deliberate what a
		// reading-past-the-array bug in some CUP implementations does by
		// accident.
		row := cmd.Get(0, 1) - 1
		t.active.CursorToRow(row)
	default:
		row := cmd.Get(0, 1) - 1
		col := cmd.Get(1, 1) - 1
		t.active.CursorTo(row, col)
	}
}

func (t *Terminal) dispatchDA(cmd CSICommand) {
	if cmd.Prefix == '>' {
		fmt.Fprint(t.response, "\x1b[>0;95;0c")
		return
	}
	fmt.Fprint(t.response, "\x1b[?1;2c")
}

func (t *Terminal) dispatchDSR(cmd CSICommand) {
	if cmd.Get(0, 0) == 6 {
		fmt.Fprintf(t.response, "\x1b[%d;%dR", t.active.cursor.Row+1, t.active.cursor.DisplayCol()+1)
	}
}

func (t *Terminal) dispatchWinOps(cmd CSICommand) {
	op := cmd.Get(0, 0)
	sub := cmd.Get(1, 0)
	switch {
	case op == 22 && (sub == 0 || sub == 2):
		t.pushTitle()
	case op == 23 && (sub == 0 || sub == 2):
		t.popTitle()
	}
}

func (t *Terminal) dispatchModeSet(cmd CSICommand, enabled bool) {
	for i := range cmd.Params {
		mode := cmd.Get(i, 0)
		if cmd.Prefix == '?' {
			t.setDECMode(mode, enabled)
		} else {
			t.setANSIMode(mode, enabled)
		}
	}
}

func (t *Terminal) setDECMode(mode int, enabled bool) {
	switch mode {
	case 1: // DECCKM
		t.cursorKeyMode = enabled
	case 47, 1047:
		t.switchScreen(enabled, false)
	case 1048:
		if enabled {
			t.active.SaveCursor()
		} else {
			t.active.RestoreCursor()
		}
	case 1049:
		t.switchScreen(enabled, true)
	case 1004:
		t.focusTracking = enabled
	case 2004:
		t.bracketedPaste = enabled
	case 25:
		t.active.cursor.Visible = enabled
	case 5: // DECSCNM
		t.active.SetMode(5, enabled)
	case 1000, 1002, 1003, 1006, 1015:
		// Mouse reporting modes are accepted but the baseline core has no
		// mouse input source to report.
	default:
		t.active.SetMode(mode, enabled)
	}
}

func (t *Terminal) setANSIMode(mode int, enabled bool) {
	switch mode {
	case 4: // IRM
		t.active.SetMode(4, enabled)
	case 20: // LNM, handled by the host's newline translation; logged only
	}
}

func (t *Terminal) dispatchSGR(cmd CSICommand) {
	tmpl := t.active.Attrs()
	if len(cmd.Params) == 0 {
		t.active.SetAttrs(CellTemplate{})
		return
	}
	for i := 0; i < len(cmd.Params); i++ {
		code := cmd.Get(i, 0)
		switch {
		case code == 0:
			tmpl = CellTemplate{}
		case code == 1:
			tmpl.Flags |= CellFlagBold
		case code == 2:
			tmpl.Flags |= CellFlagFaint
		case code == 3:
			tmpl.Flags |= CellFlagItalic
		case code == 4:
			tmpl.Flags |= CellFlagUnderline
		case code == 7:
			tmpl.Flags |= CellFlagInvert
		case code == 9:
			tmpl.Flags |= CellFlagCrossedOut
		case code == 22:
			tmpl.Flags &^= CellFlagBold | CellFlagFaint
		case code == 23:
			tmpl.Flags &^= CellFlagItalic
		case code == 24:
			tmpl.Flags &^= CellFlagUnderline
		case code == 27:
			tmpl.Flags &^= CellFlagInvert
		case code == 29:
			tmpl.Flags &^= CellFlagCrossedOut
		case code >= 30 && code <= 37:
			tmpl.Fg = DefaultPalette[code-30]
		case code == 38:
			c, consumed := t.parseExtendedColor(cmd, i)
			tmpl.Fg = c
			i += consumed
		case code == 39:
			tmpl.Fg = nil
		case code >= 40 && code <= 47:
			tmpl.Bg = DefaultPalette[code-40]
		case code == 48:
			c, consumed := t.parseExtendedColor(cmd, i)
			tmpl.Bg = c
			i += consumed
		case code == 49:
			tmpl.Bg = nil
		case code >= 90 && code <= 97:
			tmpl.Fg = DefaultPalette[code-90+8]
		case code >= 100 && code <= 107:
			tmpl.Bg = DefaultPalette[code-100+8]
		}
	}
	t.active.SetAttrs(tmpl)
}

// parseExtendedColor reads the 256-color or 24-bit color subsequence
// that follows an SGR 38/48 code, returning the resolved color and how
// many extra parameter positions it consumed.
func (t *Terminal) parseExtendedColor(cmd CSICommand, at int) (color.Color, int) {
	mode := cmd.Get(at+1, -1)
	switch mode {
	case 5:
		idx := cmd.Get(at+2, 0)
		return ResolveIndexed(idx), 2
	case 2:
		r := cmd.Get(at+2, 0)
		g := cmd.Get(at+3, 0)
		b := cmd.Get(at+4, 0)
		return color.RGBA{R: uint8(r), G: uint8(g), B: uint8(b), A: 0xFF}, 4
	default:
		return nil, 0
	}
}

func (t *Terminal) dispatchSTString(data []byte) {
	if len(data) == 0 {
		return
	}
	switch data[0] {
	case ']': // OSC
		t.dispatchOSC(data[1:])
	case 'P', 'X', '^', '_': // DCS, APC, PM, SOS: no screen effect in the baseline core
	}
}

func (t *Terminal) dispatchOSC(payload []byte) {
	semi := -1
	for i, b := range payload {
		if b == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return
	}
	code := string(payload[:semi])
	arg := string(payload[semi+1:])
	switch code {
	case "0", "1", "2":
		t.setWindowTitle(arg)
	case "52":
		t.dispatchClipboard(arg)
	}
}

func (t *Terminal) dispatchClipboard(arg string) {
	semi := -1
	for i := 0; i < len(arg); i++ {
		if arg[i] == ';' {
			semi = i
			break
		}
	}
	if semi < 0 {
		return
	}
	data := arg[semi+1:]
	if data == "?" {
		if s, err := t.clipboard.ReadClipboard(); err == nil {
			fmt.Fprintf(t.response, "\x1b]52;c;%s\x07", base64.StdEncoding.EncodeToString([]byte(s)))
		}
		return
	}
	if decoded, err := base64.StdEncoding.DecodeString(data); err == nil {
		t.clipboard.WriteClipboard(string(decoded))
	}
}
