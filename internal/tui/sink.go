package tui

import (
	tea "charm.land/bubbletea/v2"

	"github.com/garrettladley/wordclock/internal/display"
)

// Sink forwards presented frames into a running program.
type Sink struct {
	send func(tea.Msg)
}

// NewSink wires presented frames to p. Present blocks until p takes the
// frame or exits.
func NewSink(p *tea.Program) *Sink {
	return &Sink{send: p.Send}
}

func (s *Sink) Present(f display.Frame) error {
	s.send(FrameMsg{Frame: f})
	return nil
}

func (s *Sink) Close() error {
	return nil
}
