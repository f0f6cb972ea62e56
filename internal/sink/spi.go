package sink

import (
	"errors"
	"fmt"
	"io"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/garrettladley/wordclock/internal/display"
)

// FrameBytes is the size of one frame on the wire: row-major RGB.
const FrameBytes = display.Width * display.Height * 3

const maxSPIHz = 50_000_000

// SPIOpts configures the link to the matrix controller.
type SPIOpts struct {
	Bus string // periph bus name, empty for the first bus
	Hz  int64  // clock frequency
}

func (o SPIOpts) validate() error {
	if o.Hz <= 0 || o.Hz > maxSPIHz {
		return fmt.Errorf("sink: spi frequency must be between 1 and %d Hz, got %d", maxSPIHz, o.Hz)
	}
	return nil
}

var _ Sink = (*SPI)(nil)

// SPI streams each frame to an RGB matrix controller in a single transfer.
type SPI struct {
	c      conn.Conn
	closer io.Closer
	buf    []byte
}

// NewSPI initializes the host drivers and opens the SPI port.
func NewSPI(opts SPIOpts) (*SPI, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("sink: failed to initialize periph host: %w", err)
	}
	p, err := spireg.Open(opts.Bus)
	if err != nil {
		return nil, fmt.Errorf("sink: failed to open spi bus %q: %w", opts.Bus, err)
	}
	c, err := p.Connect(physic.Frequency(opts.Hz)*physic.Hertz, spi.Mode0, 8)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("sink: failed to connect spi: %w", err), p.Close())
	}
	return newSPI(c, p), nil
}

func newSPI(c conn.Conn, closer io.Closer) *SPI {
	return &SPI{c: c, closer: closer, buf: make([]byte, FrameBytes)}
}

func (s *SPI) Present(f display.Frame) error {
	Encode(s.buf, f)
	if err := s.c.Tx(s.buf, nil); err != nil {
		return fmt.Errorf("sink: spi write: %w", err)
	}
	return nil
}

func (s *SPI) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// Encode writes f into dst as row-major RGB. dst must hold FrameBytes.
func Encode(dst []byte, f display.Frame) {
	i := 0
	for y := range display.Height {
		for x := range display.Width {
			c := f[y][x]
			dst[i], dst[i+1], dst[i+2] = c.R, c.G, c.B
			i += 3
		}
	}
}
