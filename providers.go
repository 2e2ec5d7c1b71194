package vt

import "io"

// ResponseProvider is the write-sink Terminal uses for every reply it
// generates itself: DA, DSR, and any other host-bound byte sequence.
// Writes must be atomic with respect to other replies; a real
// implementation is typically a pty master file descriptor.
type ResponseProvider = io.Writer

// BellProvider is notified on BEL (0x07).
type BellProvider interface {
	Bell()
}

// TitleProvider is notified when OSC 0/1/2 sets the window or icon title.
type TitleProvider interface {
	SetTitle(title string)
}

// ClipboardProvider backs OSC 52 clipboard read/write requests.
type ClipboardProvider interface {
	ReadClipboard() (string, error)
	WriteClipboard(data string) error
}

// ScrollbackProvider stores rows that scroll permanently off the top of
// the primary screen's own in-memory budget (WithScrollback), e.g. for a
// host-side unlimited scrollback store backed by disk. Screen pushes
// evicted rows to it, oldest first, and consults it for any scrollback
// read that falls below its own resident window.
type ScrollbackProvider interface {
	// Push appends a row that Screen is about to discard.
	Push(row []Cell)
	// Len returns how many rows are stored.
	Len() int
	// Line returns the stored row at index, 0 being the oldest. Returns
	// nil if index is out of range.
	Line(index int) []Cell
}

// NoopBellProvider discards bell notifications.
type NoopBellProvider struct{}

func (NoopBellProvider) Bell() {}

// NoopTitleProvider discards title-change notifications.
type NoopTitleProvider struct{}

func (NoopTitleProvider) SetTitle(string) {}

// NoopClipboardProvider fails every clipboard read with io.EOF and
// silently discards every write.
type NoopClipboardProvider struct{}

func (NoopClipboardProvider) ReadClipboard() (string, error) { return "", io.EOF }
func (NoopClipboardProvider) WriteClipboard(string) error    { return nil }

// NoopScrollbackProvider discards every row scrolled out of Screen's
// resident budget; this is the default for both screens, matching the
// alternate screen's "no scrollback" behavior until a host opts in via
// WithScrollbackProvider.
type NoopScrollbackProvider struct{}

func (NoopScrollbackProvider) Push([]Cell)     {}
func (NoopScrollbackProvider) Len() int        { return 0 }
func (NoopScrollbackProvider) Line(int) []Cell { return nil }

// RecordingProvider is a test/demo helper that records bell rings and
// title changes instead of discarding them.
type RecordingProvider struct {
	Bells  int
	Titles []string
}

func (r *RecordingProvider) Bell() { r.Bells++ }

func (r *RecordingProvider) SetTitle(title string) {
	r.Titles = append(r.Titles, title)
}
