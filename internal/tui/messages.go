package tui

import "github.com/garrettladley/wordclock/internal/display"

// FrameMsg carries a frame presented by the clock loop.
type FrameMsg struct {
	Frame display.Frame
}
