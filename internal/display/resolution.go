// Package display manages window state for the engine: resolution,
// fullscreen, border, vsync, and mouse visibility. State changes are
// validated against host constraints, pushed to a native window sink,
// persisted to the options store, and resolution changes are broadcast to
// registered listeners.
//
// In a terminal host the "resolution" is the cell grid of the terminal and
// "fullscreen" is the alternate screen buffer; the manager itself is
// host-agnostic behind the WindowSink boundary.
package display

import "fmt"

// Resolution is a window size in cells.
type Resolution struct {
	Width  int
	Height int
}

// IsLandscape reports whether the resolution is at least as wide as tall.
func (r Resolution) IsLandscape() bool {
	return r.Width >= r.Height
}

// IsPortrait reports whether the resolution is taller than wide.
func (r Resolution) IsPortrait() bool {
	return r.Height > r.Width
}

func (r Resolution) String() string {
	return fmt.Sprintf("%dx%d", r.Width, r.Height)
}

// ResolutionListener is a handle registered with the display manager. The
// callback, when set, receives the previous and new resolution and the
// horizontal scale factor between them. A nil callback is skipped.
//
// Listeners may register or remove listeners (including themselves) from
// inside the callback; the change takes effect after the current
// notification pass. Enumeration order within a pass is an implementation
// detail and must not be relied on.
type ResolutionListener struct {
	OnResolutionChanged func(previous, current Resolution, scale float64)
}
