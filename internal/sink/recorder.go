package sink

import (
	"sync"

	"github.com/garrettladley/wordclock/internal/display"
)

var _ Sink = (*Recorder)(nil)

// Recorder keeps every frame presented to it. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	frames []display.Frame
	closed bool
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Present(f display.Frame) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, f)
	return nil
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

func (r *Recorder) Frames() []display.Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]display.Frame, len(r.frames))
	copy(out, r.frames)
	return out
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

// Last returns the most recent frame, or false when nothing was presented.
func (r *Recorder) Last() (display.Frame, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.frames) == 0 {
		return display.Frame{}, false
	}
	return r.frames[len(r.frames)-1], true
}

func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
