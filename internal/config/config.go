package config

import (
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/garrettladley/wordclock/internal/clock"
	"github.com/garrettladley/wordclock/internal/display"
	appenv "github.com/garrettladley/wordclock/internal/env"
	"github.com/garrettladley/wordclock/internal/gate"
	"github.com/garrettladley/wordclock/internal/overlay"
	"github.com/garrettladley/wordclock/internal/xslog"
)

type Config struct {
	Env       appenv.Environment `env:"ENV" envDefault:"production"`
	LogLevel  xslog.Level        `env:"LOG_LEVEL" envDefault:"info"`
	Mode      clock.Mode         `env:"MODE" envDefault:"clock"`
	Modifiers []string           `env:"MODIFIERS"`
	Birthday  overlay.MonthDay   `env:"BIRTHDAY" envDefault:"09-27"`
	Display   Display            `envPrefix:"DISPLAY_"`
	Colors    Colors             `envPrefix:"COLOR_"`
	Gate      gate.Config        `envPrefix:"GATE_"`
}

type Display struct {
	Sink      string        `env:"SINK" envDefault:"terminal"`
	Tick      time.Duration `env:"TICK" envDefault:"5s"`
	FadeSteps int           `env:"FADE_STEPS" envDefault:"20"`
	FadeDelay time.Duration `env:"FADE_DELAY" envDefault:"25ms"`
	ScanDelay time.Duration `env:"SCAN_DELAY" envDefault:"250ms"`
	SPIBus    string        `env:"SPI_BUS"`
	SPIHz     int64         `env:"SPI_HZ" envDefault:"8000000"`
}

type Colors struct {
	Primary   display.Color `env:"PRIMARY" envDefault:"#ffffff"`
	Secondary display.Color `env:"SECONDARY" envDefault:"#ff2040"`
	Dim       display.Color `env:"DIM" envDefault:"#200000"`
}

const modifiersKey = "MODIFIERS"

// DefaultModifiers are enabled when MODIFIERS is unset. Set but empty, or
// "none", enables nothing.
var DefaultModifiers = []string{"birthday", "friday", "iloveyou", "byjeremy", "leah"}

func Read() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, err
	}
	if _, ok := os.LookupEnv(modifiersKey); !ok {
		cfg.Modifiers = slices.Clone(DefaultModifiers)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Display.Tick <= 0 {
		return fmt.Errorf("DISPLAY_TICK must be positive, got %s", c.Display.Tick)
	}
	if c.Display.FadeSteps < 1 {
		return fmt.Errorf("DISPLAY_FADE_STEPS must be at least 1, got %d", c.Display.FadeSteps)
	}
	if c.Display.FadeDelay < 0 || c.Display.ScanDelay < 0 {
		return fmt.Errorf("display delays must not be negative")
	}
	return nil
}

// Fade is the transition used between clock ticks.
func (d Display) Fade() display.Fade {
	return display.Fade{Steps: d.FadeSteps, Delay: d.FadeDelay}
}
