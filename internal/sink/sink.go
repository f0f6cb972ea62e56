// Package sink puts composed frames on a panel: the LED matrix over SPI, or a
// terminal when no hardware is attached.
package sink

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/garrettladley/wordclock/internal/display"
)

// Sink shows whole frames. A failed Present is not retried; the panel is
// assumed gone.
type Sink interface {
	display.Presenter
	io.Closer
}

type Kind string

const (
	KindTerminal Kind = "terminal"
	KindBraille  Kind = "braille"
	KindSPI      Kind = "spi"
)

func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTerminal, KindBraille, KindSPI:
		return k, nil
	default:
		return "", fmt.Errorf("invalid sink %q (valid: terminal, braille, spi)", s)
	}
}

// Open builds the sink of the given kind. Terminal kinds draw on stdout.
func Open(kind Kind, opts SPIOpts) (Sink, error) {
	switch kind {
	case KindTerminal:
		return NewTerminal(os.Stdout), nil
	case KindBraille:
		return NewBraille(os.Stdout), nil
	case KindSPI:
		s, err := NewSPI(opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("invalid sink %q", kind)
	}
}

// Clear blanks the panel.
func Clear(s display.Presenter) error {
	return s.Present(display.Frame{})
}

// Guard runs fn and then blanks s on every way out of fn: a normal return, an
// error, or a panic, which is re-raised once the panel is dark.
func Guard(s display.Presenter, fn func() error) (err error) {
	defer func() {
		r := recover()
		if cerr := Clear(s); cerr != nil {
			err = errors.Join(err, fmt.Errorf("sink: clear on exit: %w", cerr))
		}
		if r != nil {
			panic(r)
		}
	}()
	return fn()
}
