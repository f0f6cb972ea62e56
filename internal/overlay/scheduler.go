// Package overlay decides, tick by tick, which decorative messages join the time.
package overlay

import (
	"fmt"
	"slices"
	"time"

	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/grid"
)

const (
	// messageWindow is where the birthday, friday and affection messages may
	// show; the signature owns the rest of the secondary cycle.
	messageWindow = 100
	secondaryMax  = 105
	secondaryInit = 90
)

// DefaultPalette is the cycle of colors the decoration fades through.
var DefaultPalette = []display.Color{
	display.RGB(255, 0, 0),
	display.RGB(255, 128, 0),
	display.RGB(255, 255, 0),
	display.RGB(0, 255, 0),
	display.RGB(0, 96, 255),
	display.RGB(160, 0, 255),
}

var (
	birthdayTokens   = []grid.Token{grid.Happy, grid.Birthday}
	fridayTokens     = []grid.Token{grid.Happy, grid.Friday}
	affectionTokens  = []grid.Token{grid.I, grid.Love, grid.You}
	signatureTokens  = []grid.Token{grid.Hi, grid.NameSmall, grid.This, grid.Word, grid.Clock, grid.IsSignature, grid.Built, grid.With, grid.Love, grid.By, grid.Jeremy}
	decorationTokens = []grid.Token{grid.Name, grid.Heart}
)

// State is the scheduler's carried-over counters.
type State struct {
	Fade      Counter
	Secondary Counter
}

// NewState starts the secondary counter late in its cycle so the messages
// and then the signature come round soon after start.
func NewState() State {
	return State{
		Fade:      Counter{Value: 0, Max: len(DefaultPalette) - 1},
		Secondary: Counter{Value: secondaryInit, Max: secondaryMax},
	}
}

func (s State) Advance() State {
	return State{Fade: s.Fade.Advance(), Secondary: s.Secondary.Advance()}
}

type Config struct {
	Enabled        Modifiers
	Birthday       MonthDay
	SecondaryColor display.Color
	Palette        []display.Color
}

// Overlay is the secondary and tertiary layers of one tick.
type Overlay struct {
	Secondary display.Layer
	Tertiary  display.Layer
}

// Tick evaluates every enabled modifier against the counters in st and
// returns the layers to show together with the advanced state.
func Tick(now time.Time, primary []grid.Token, st State, cfg Config) (Overlay, State) {
	var out Overlay
	out.Secondary.Color = cfg.SecondaryColor

	sc := st.Secondary
	inWindow := sc.Value < messageWindow

	if cfg.Enabled.Has(Birthday) && cfg.Birthday.Matches(now) && sc.Every(5, 0) && inWindow {
		out.Secondary.Tokens = append(out.Secondary.Tokens, birthdayTokens...)
	}
	if cfg.Enabled.Has(Friday) && now.Weekday() == time.Friday && sc.Every(5, 2) && inWindow {
		out.Secondary.Tokens = append(out.Secondary.Tokens, fridayTokens...)
	}
	// "i" is cut into "midnight"
	if cfg.Enabled.Has(ILoveYou) && !slices.Contains(primary, grid.Midnight) && sc.Every(20, 3) && inWindow {
		out.Secondary.Tokens = append(out.Secondary.Tokens, affectionTokens...)
	}
	// "clock" is cut into "o'clock"
	if cfg.Enabled.Has(ByJeremy) && !slices.Contains(primary, grid.OClock) && sc.In(messageWindow, secondaryMax) {
		out.Secondary.Tokens = append(out.Secondary.Tokens, signatureTokens...)
	}

	if cfg.Enabled.Has(Decoration) {
		palette := cfg.Palette
		if len(palette) == 0 {
			palette = DefaultPalette
		}
		out.Tertiary = display.Layer{
			Tokens: slices.Clone(decorationTokens),
			Color:  palette[st.Fade.Value%len(palette)],
		}
	}

	return out, st.Advance()
}

// MonthDay is a yearly date such as a birthday.
type MonthDay struct {
	Month time.Month
	Day   int
}

// ParseMonthDay parses "MM-DD".
func ParseMonthDay(s string) (MonthDay, error) {
	t, err := time.Parse("01-02", s)
	if err != nil {
		return MonthDay{}, fmt.Errorf("invalid month-day %q: %w", s, err)
	}
	return MonthDay{Month: t.Month(), Day: t.Day()}, nil
}

func (md MonthDay) Matches(t time.Time) bool {
	return t.Month() == md.Month && t.Day() == md.Day
}

func (md *MonthDay) UnmarshalText(text []byte) error {
	parsed, err := ParseMonthDay(string(text))
	if err != nil {
		return err
	}
	*md = parsed
	return nil
}

func (md MonthDay) String() string {
	return fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
}
