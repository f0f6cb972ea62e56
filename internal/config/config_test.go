package config

import (
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/wordclock/internal/clock"
	"github.com/garrettladley/wordclock/internal/display"
	appenv "github.com/garrettladley/wordclock/internal/env"
	"github.com/garrettladley/wordclock/internal/gate"
	"github.com/garrettladley/wordclock/internal/overlay"
	"github.com/garrettladley/wordclock/internal/xslog"
)

// t.Setenv forbids t.Parallel, so these tests run serially.

func TestReadDefaults(t *testing.T) {
	for _, k := range []string{"ENV", "LOG_LEVEL", "MODE", "BIRTHDAY", "DISPLAY_SINK", "GATE_PROVIDER", "COLOR_PRIMARY"} {
		t.Setenv(k, "")
	}
	unsetenv(t, "MODIFIERS")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}

	want := Config{
		Env:       appenv.Production,
		LogLevel:  xslog.LevelInfo,
		Mode:      clock.ModeClock,
		Modifiers: []string{"birthday", "friday", "iloveyou", "byjeremy", "leah"},
		Birthday:  overlay.MonthDay{Month: time.September, Day: 27},
		Display: Display{
			Sink:      "terminal",
			Tick:      5 * time.Second,
			FadeSteps: 20,
			FadeDelay: 25 * time.Millisecond,
			ScanDelay: 250 * time.Millisecond,
			SPIHz:     8_000_000,
		},
		Colors: Colors{
			Primary:   display.RGB(255, 255, 255),
			Secondary: display.RGB(255, 32, 64),
			Dim:       display.RGB(32, 0, 0),
		},
		Gate: gate.Config{Timeout: 2 * time.Second},
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("Read() mismatch (-want +got):\n%s", diff)
	}
}

// unsetenv removes key for the rest of the test and restores it afterwards.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("Unsetenv(%s): %v", key, err)
	}
}

func TestReadModifiers(t *testing.T) {
	tests := []struct {
		name        string
		set         bool
		value       string
		want        []string
		wantEnabled int
	}{
		{name: "unset", want: DefaultModifiers, wantEnabled: 5},
		{name: "empty", set: true, value: "", want: nil, wantEnabled: 0},
		{name: "none", set: true, value: "none", want: []string{"none"}, wantEnabled: 0},
		{name: "some", set: true, value: "friday", want: []string{"friday"}, wantEnabled: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.set {
				t.Setenv("MODIFIERS", tt.value)
			} else {
				unsetenv(t, "MODIFIERS")
			}

			cfg, err := Read()
			if err != nil {
				t.Fatalf("Read() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, cfg.Modifiers); diff != "" {
				t.Errorf("Modifiers mismatch (-want +got):\n%s", diff)
			}
			set, err := overlay.ParseModifiers(cfg.Modifiers)
			if err != nil {
				t.Fatalf("ParseModifiers() unexpected error: %v", err)
			}
			if len(set) != tt.wantEnabled {
				t.Errorf("enabled %v, want %d modifiers", set.Names(), tt.wantEnabled)
			}
		})
	}
}

func TestReadOverrides(t *testing.T) {
	t.Setenv("ENV", "development")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MODE", "time_test")
	t.Setenv("MODIFIERS", "friday,leah")
	t.Setenv("BIRTHDAY", "02-14")
	t.Setenv("DISPLAY_SINK", "spi")
	t.Setenv("DISPLAY_FADE_STEPS", "5")
	t.Setenv("COLOR_PRIMARY", "#00ff00")
	t.Setenv("GATE_PROVIDER", "hue")
	t.Setenv("GATE_URL", "http://bridge.local")
	t.Setenv("GATE_TOKEN", "user")
	t.Setenv("GATE_GROUP", "1")
	t.Setenv("GATE_TIMEOUT", "500ms")

	cfg, err := Read()
	if err != nil {
		t.Fatalf("Read() unexpected error: %v", err)
	}
	if !cfg.Env.IsDevelopment() {
		t.Errorf("Env = %q, want development", cfg.Env)
	}
	if cfg.LogLevel != xslog.LevelDebug {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.Mode != clock.ModeTimeTest {
		t.Errorf("Mode = %q, want time_test", cfg.Mode)
	}
	if diff := cmp.Diff([]string{"friday", "leah"}, cfg.Modifiers); diff != "" {
		t.Errorf("Modifiers mismatch (-want +got):\n%s", diff)
	}
	if cfg.Birthday != (overlay.MonthDay{Month: time.February, Day: 14}) {
		t.Errorf("Birthday = %v, want 02-14", cfg.Birthday)
	}
	if cfg.Display.Fade() != (display.Fade{Steps: 5, Delay: 25 * time.Millisecond}) {
		t.Errorf("Fade() = %+v", cfg.Display.Fade())
	}
	if cfg.Colors.Primary != display.RGB(0, 255, 0) {
		t.Errorf("Primary = %v, want #00ff00", cfg.Colors.Primary)
	}
	wantGate := gate.Config{
		Provider: gate.ProviderHue,
		URL:      "http://bridge.local",
		Token:    "user",
		Group:    "1",
		Timeout:  500 * time.Millisecond,
	}
	if diff := cmp.Diff(wantGate, cfg.Gate); diff != "" {
		t.Errorf("Gate mismatch (-want +got):\n%s", diff)
	}
}

func TestReadRejects(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "bad mode", key: "MODE", val: "disco"},
		{name: "bad color", key: "COLOR_DIM", val: "#12"},
		{name: "bad birthday", key: "BIRTHDAY", val: "13-40"},
		{name: "bad level", key: "LOG_LEVEL", val: "loud"},
		{name: "zero fade steps", key: "DISPLAY_FADE_STEPS", val: "0"},
		{name: "zero tick", key: "DISPLAY_TICK", val: "0s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Read(); err == nil {
				t.Errorf("Read() with %s=%q expected error", tt.key, tt.val)
			}
		})
	}
}
