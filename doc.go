// Package vt implements the core of a VT-compatible terminal emulator: an
// incremental byte classifier, a CSI parameter parser, a two-screen grid
// model with cursor and attribute state, and the dispatch layer that turns
// parsed escape sequences into screen mutations and outbound replies.
//
// # Quick Start
//
// Create a terminal and feed it raw bytes from a child process:
//
//	term := vt.New(vt.WithSize(24, 80))
//	term.Feed([]byte("\x1b[31mHello \x1b[32mWorld\x1b[0m!"))
//	fmt.Println(term.String())
//
// # Architecture
//
// The package is organized around the five components of the core:
//
//   - [Classifier]: incremental byte-to-token state machine (C1)
//   - [ParseCSI]: CSI payload parameter parser (C2)
//   - [Screen]: the grid of cells, cursor, scroll region, autowrap (C3)
//   - dispatch.go: interprets tokens against the active [Screen] (C4)
//   - [Terminal]: orchestrator owning the classifier and both screens (C5)
//
// # Terminal
//
// [Terminal] is the main entry point. [Terminal.Feed] accepts raw bytes
// read from a pseudo-terminal master; [Terminal.InputKey] accepts decoded
// key events and forwards translated bytes to the configured write-sink.
//
//	term := vt.New(
//	    vt.WithSize(24, 80),
//	    vt.WithResponse(ptyWriter),
//	)
//
// # Dual Screens
//
// Terminal maintains two Screen instances, primary and alternate. Only
// one is active at a time; full-screen applications (vim, less, htop)
// switch to the alternate screen via CSI ?1049h/?47h.
//
//	if term.IsAlternateScreen() {
//	    // Full-screen app is running
//	}
//
// # Cells and Attributes
//
// Each cell stores a glyph with foreground/background color and an
// attribute bitset: bold, faint, italic, underline, invert, crossed-out.
//
// # Colors
//
// Colors are carried as [image/color.Color]. The package ships a 16-entry
// ANSI palette, a 256-entry xterm palette, and default-fg/default-bg
// sentinels resolved at render time via [ResolveColor].
//
// # Snapshots
//
// [Terminal.Snapshot] returns a read-only, internally consistent view of
// the active screen for rendering: dimensions, cells, cursor position and
// visibility, and title.
//
// # Thread Safety
//
// Per the single-threaded cooperative model, Terminal is not internally
// locked: one goroutine owns it and calls Feed/InputKey/Resize/Snapshot in
// sequence. A host that needs concurrent access must serialize its own
// calls.
package vt
