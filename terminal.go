package vt

import "io"

// Option configures a Terminal at construction time.
type Option func(*Terminal)

// WithSize sets the initial viewport dimensions. Default is 24x80.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		t.rows, t.cols = rows, cols
	}
}

// WithScrollback sets how many rows of history the primary screen keeps
// above the viewport. Default is 1000; the alternate screen never keeps
// scrollback regardless of this setting.
func WithScrollback(n int) Option {
	return func(t *Terminal) { t.scrollback = n }
}

// WithResponse sets the sink Terminal writes its own replies to (DA,
// DSR, and so on). Default is io.Discard.
func WithResponse(w ResponseProvider) Option {
	return func(t *Terminal) { t.response = w }
}

// WithBellProvider sets the bell notification sink.
func WithBellProvider(b BellProvider) Option {
	return func(t *Terminal) { t.bell = b }
}

// WithTitleProvider sets the window/icon title notification sink.
func WithTitleProvider(p TitleProvider) Option {
	return func(t *Terminal) { t.title = p }
}

// WithClipboardProvider sets the OSC 52 clipboard backend.
func WithClipboardProvider(c ClipboardProvider) Option {
	return func(t *Terminal) { t.clipboard = c }
}

// WithScrollbackProvider sets a host-side store for primary-screen rows
// that scroll out of its in-memory budget (WithScrollback). The
// alternate screen never uses one, matching its "no scrollback"
// semantics. Default is NoopScrollbackProvider.
func WithScrollbackProvider(p ScrollbackProvider) Option {
	return func(t *Terminal) { t.scrollbackProvider = p }
}

// Terminal is the orchestrator (C5): it owns the incremental classifier,
// the primary and alternate screens, and the terminal-wide mode state
// that isn't scoped to a single screen (title, title stack, bracketed
// paste, focus tracking, cursor-key mode). It is not internally locked;
// see the package doc's Thread Safety section.
type Terminal struct {
	rows, cols int
	scrollback int

	classifier *Classifier

	primary   *Screen
	alternate *Screen
	active    *Screen
	onAlt     bool

	response           ResponseProvider
	bell               BellProvider
	title              TitleProvider
	clipboard          ClipboardProvider
	scrollbackProvider ScrollbackProvider

	windowTitle string
	titleStack  []string

	bracketedPaste bool
	focusTracking  bool
	cursorKeyMode  bool // DECCKM: application vs normal cursor keys
	keypadMode     bool // DECKPAM/DECKPNM: application vs normal keypad
}

// New constructs a Terminal with the given options applied over sensible
// defaults: 24x80, 1000 lines of scrollback, no-op providers.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		rows:       24,
		cols:       80,
		scrollback: 1000,
		classifier: NewClassifier(),
		response:   io.Discard,
		bell:       NoopBellProvider{},
		title:      NoopTitleProvider{},
		clipboard:  NoopClipboardProvider{},
	}
	for _, opt := range opts {
		opt(t)
	}
	t.primary = NewScreen(t.rows, t.cols, t.scrollback)
	t.alternate = NewScreen(t.rows, t.cols, 0)
	if t.scrollbackProvider != nil {
		t.primary.SetScrollbackProvider(t.scrollbackProvider)
	}
	t.active = t.primary
	return t
}

// Screen returns the currently active grid (primary or alternate).
func (t *Terminal) Screen() *Screen { return t.active }

// IsAlternateScreen reports whether the alternate screen is active.
func (t *Terminal) IsAlternateScreen() bool { return t.onAlt }

// Title returns the current window title.
func (t *Terminal) Title() string { return t.windowTitle }

// Feed consumes raw bytes read from the child process, classifying and
// dispatching each one in order. Feed never blocks and never panics: any
// malformed sequence is absorbed and the classifier returns to Idle.
func (t *Terminal) Feed(data []byte) {
	for _, b := range data {
		tok := t.classifier.Classify(b)
		t.dispatchToken(tok)
	}
}

// InputKey translates a decoded key event into bytes written to the
// response sink, per §6's keyboard translation table.
func (t *Terminal) InputKey(ev KeyEvent) {
	data := translateKey(ev, t.cursorKeyMode)
	if len(data) == 0 {
		return
	}
	t.response.Write(data)
}

// Resize changes the viewport dimensions of both screens.
func (t *Terminal) Resize(rows, cols int) {
	if rows < 1 || cols < 1 || (rows == t.rows && cols == t.cols) {
		return
	}
	t.rows, t.cols = rows, cols
	t.primary.Resize(rows, cols)
	t.alternate.Resize(rows, cols)
}

// switchScreen implements the alternate-screen DEC private modes (?47,
// ?1049): enabled switches to the alternate screen, clearing it first;
// disabled switches back to primary.
func (t *Terminal) switchScreen(enabled bool, saveCursor bool) {
	if enabled == t.onAlt {
		return
	}
	if enabled {
		if saveCursor {
			t.primary.SaveCursor()
		}
		t.alternate.Reset()
		t.active = t.alternate
		t.onAlt = true
	} else {
		t.active = t.primary
		t.onAlt = false
		if saveCursor {
			t.primary.RestoreCursor()
		}
	}
}

func (t *Terminal) pushTitle() {
	t.titleStack = append(t.titleStack, t.windowTitle)
}

func (t *Terminal) popTitle() {
	if len(t.titleStack) == 0 {
		return
	}
	n := len(t.titleStack) - 1
	t.setWindowTitle(t.titleStack[n])
	t.titleStack = t.titleStack[:n]
}

func (t *Terminal) setWindowTitle(s string) {
	t.windowTitle = s
	t.title.SetTitle(s)
}
