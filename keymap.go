package vt

// Key names the non-printable keys InputKey understands; printable keys
// are carried via KeyEvent.Rune instead.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyInsert
	KeyDelete
	KeyBackspace
	KeyEnter
	KeyTab
	KeyEscape
	KeyF1
	KeyF2
	KeyF3
	KeyF4
)

// KeyEvent is a decoded keyboard event, the host-facing input to
// Terminal.InputKey per §6.
type KeyEvent struct {
	Key   Key
	Rune  rune // valid when Key == KeyNone
	Ctrl  bool
	Shift bool
	Alt   bool
}

// translateKey converts a KeyEvent into the byte sequence xterm would
// send, honoring DECCKM (application cursor keys) for the arrow keys.
func translateKey(ev KeyEvent, appCursorKeys bool) []byte {
	if ev.Ctrl && ev.Key == KeyNone {
		return translateCtrlRune(ev.Rune)
	}

	switch ev.Key {
	case KeyUp, KeyDown, KeyRight, KeyLeft:
		letter := byte(0)
		switch ev.Key {
		case KeyUp:
			letter = 'A'
		case KeyDown:
			letter = 'B'
		case KeyRight:
			letter = 'C'
		case KeyLeft:
			letter = 'D'
		}
		if appCursorKeys {
			return []byte{0x1B, 'O', letter}
		}
		return []byte{0x1B, '[', letter}
	case KeyHome:
		return []byte{0x1B, '[', 'H'}
	case KeyEnd:
		return []byte{0x1B, '[', 'F'}
	case KeyPageUp:
		return []byte("\x1b[5~")
	case KeyPageDown:
		return []byte("\x1b[6~")
	case KeyInsert:
		return []byte("\x1b[2~")
	case KeyDelete:
		return []byte("\x1b[3~")
	case KeyBackspace:
		return []byte{0x7F}
	case KeyEnter:
		return []byte{0x0D}
	case KeyTab:
		return []byte{0x09}
	case KeyEscape:
		return []byte{0x1B}
	case KeyF1:
		return []byte("\x1bOP")
	case KeyF2:
		return []byte("\x1bOQ")
	case KeyF3:
		return []byte("\x1bOR")
	case KeyF4:
		return []byte("\x1bOS")
	}

	if ev.Rune == 0 {
		return nil
	}
	if ev.Alt {
		return append([]byte{0x1B}, []byte(string(ev.Rune))...)
	}
	return []byte(string(ev.Rune))
}

// translateCtrlRune maps Ctrl+letter to the corresponding C0 control
// code: Ctrl+a..z -> 0x01-0x1A, Ctrl+[\]^_ -> 0x1B-0x1F.
func translateCtrlRune(r rune) []byte {
	switch {
	case r >= 'a' && r <= 'z':
		return []byte{byte(r-'a') + 1}
	case r >= 'A' && r <= 'Z':
		return []byte{byte(r-'A') + 1}
	case r == '[':
		return []byte{0x1B}
	case r == '\\':
		return []byte{0x1C}
	case r == ']':
		return []byte{0x1D}
	case r == '^':
		return []byte{0x1E}
	case r == '_':
		return []byte{0x1F}
	default:
		return []byte(string(r))
	}
}
