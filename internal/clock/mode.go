package clock

import "fmt"

// Mode selects what the loop shows.
type Mode string

const (
	// ModeClock tells the time until shutdown.
	ModeClock Mode = "clock"
	// ModeTimeTest steps through every minute of a day.
	ModeTimeTest Mode = "time_test"
	// ModeBasicTest lights every word alone, then all at once.
	ModeBasicTest Mode = "basic_test"
)

func Modes() []Mode {
	return []Mode{ModeClock, ModeTimeTest, ModeBasicTest}
}

type InvalidModeError struct {
	Mode string
}

func (e *InvalidModeError) Error() string {
	return fmt.Sprintf("invalid mode %q (valid: clock, time_test, basic_test)", e.Mode)
}

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeClock, ModeTimeTest, ModeBasicTest:
		return m, nil
	default:
		return "", &InvalidModeError{Mode: s}
	}
}

func (m Mode) String() string {
	return string(m)
}

// UnmarshalText lets a Mode come straight from the environment.
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
