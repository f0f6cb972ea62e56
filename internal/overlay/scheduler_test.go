package overlay

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/garrettladley/wordclock/internal/display"
	"github.com/garrettladley/wordclock/internal/grid"
)

var (
	// a Tuesday
	plainDay = time.Date(2024, time.March, 12, 14, 35, 0, 0, time.Local)
	// a Friday
	friday = time.Date(2024, time.March, 15, 14, 35, 0, 0, time.Local)

	birthday = MonthDay{Month: time.March, Day: 12}
	pink     = display.RGB(255, 32, 64)
)

func allEnabled() Modifiers {
	set := make(Modifiers)
	for _, m := range AllModifiers() {
		set[m] = true
	}
	return set
}

func stateAt(secondary, fade int) State {
	st := NewState()
	st.Secondary.Value = secondary
	st.Fade.Value = fade
	return st
}

func TestTickSecondary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		now       time.Time
		primary   []grid.Token
		secondary int
		enabled   Modifiers
		want      []grid.Token
	}{
		{
			name:      "birthday on a multiple of five",
			now:       plainDay,
			secondary: 95,
			enabled:   Modifiers{Birthday: true},
			want:      []grid.Token{grid.Happy, grid.Birthday},
		},
		{
			name:      "birthday off cycle",
			now:       plainDay,
			secondary: 96,
			enabled:   Modifiers{Birthday: true},
			want:      nil,
		},
		{
			name:      "birthday on another day",
			now:       friday,
			secondary: 95,
			enabled:   Modifiers{Birthday: true},
			want:      nil,
		},
		{
			name:      "birthday disabled",
			now:       plainDay,
			secondary: 95,
			enabled:   Modifiers{Friday: true},
			want:      nil,
		},
		{
			name:      "friday two before a multiple of five",
			now:       friday,
			secondary: 93,
			enabled:   Modifiers{Friday: true},
			want:      []grid.Token{grid.Happy, grid.Friday},
		},
		{
			name:      "friday on a tuesday",
			now:       plainDay,
			secondary: 93,
			enabled:   Modifiers{Friday: true},
			want:      nil,
		},
		{
			name:      "affection three before a multiple of twenty",
			now:       plainDay,
			secondary: 97,
			enabled:   Modifiers{ILoveYou: true},
			want:      []grid.Token{grid.I, grid.Love, grid.You},
		},
		{
			name:      "affection yields to midnight",
			now:       plainDay,
			primary:   []grid.Token{grid.It, grid.Is, grid.Midnight},
			secondary: 97,
			enabled:   Modifiers{ILoveYou: true},
			want:      nil,
		},
		{
			name:      "nothing but the signature past one hundred",
			now:       plainDay,
			secondary: 100,
			enabled:   allEnabled(),
			want:      signatureTokens,
		},
		{
			name:      "signature at the end of the cycle",
			now:       plainDay,
			secondary: 105,
			enabled:   Modifiers{ByJeremy: true},
			want:      signatureTokens,
		},
		{
			name:      "signature yields to o'clock",
			now:       plainDay,
			primary:   []grid.Token{grid.It, grid.Is, grid.OClock, grid.Three},
			secondary: 102,
			enabled:   Modifiers{ByJeremy: true},
			want:      nil,
		},
		{
			name:      "signature stays inside its window",
			now:       plainDay,
			secondary: 99,
			enabled:   Modifiers{ByJeremy: true},
			want:      nil,
		},
		{
			name:      "affection at seventeen",
			now:       plainDay,
			secondary: 17,
			enabled:   Modifiers{Birthday: true, ILoveYou: true},
			want:      []grid.Token{grid.I, grid.Love, grid.You},
		},
		{
			name:      "friday at the start of the cycle",
			now:       time.Date(2025, time.September, 26, 12, 0, 0, 0, time.Local),
			secondary: 3,
			enabled:   allEnabled(),
			want:      []grid.Token{grid.Happy, grid.Friday},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Config{Enabled: tt.enabled, Birthday: birthday, SecondaryColor: pink}
			got, _ := Tick(tt.now, tt.primary, stateAt(tt.secondary, 0), cfg)
			if diff := cmp.Diff(tt.want, got.Secondary.Tokens); diff != "" {
				t.Errorf("Tick() secondary mismatch (-want +got):\n%s", diff)
			}
			if got.Secondary.Color != pink {
				t.Errorf("secondary color = %v, want %v", got.Secondary.Color, pink)
			}
		})
	}
}

func TestTickMessagesTakeTurns(t *testing.T) {
	t.Parallel()

	// 2024-03-15 is a Friday; make it the birthday too
	cfg := Config{
		Enabled:  allEnabled(),
		Birthday: MonthDay{Month: time.March, Day: 15},
	}
	counts := make(map[int]int)
	for c := range secondaryMax + 1 {
		got, _ := Tick(friday, nil, stateAt(c, 0), cfg)
		n := len(got.Secondary.Tokens)
		counts[n]++
		if n > 3 && n != len(signatureTokens) {
			t.Errorf("counter %d: messages overlap: %v", c, got.Secondary.Tokens)
		}
	}
	// 20 birthday ticks, 20 friday ticks, 5 affection ticks, 6 signature ticks
	want := map[int]int{0: 55, 2: 40, 3: 5, len(signatureTokens): 6}
	if diff := cmp.Diff(want, counts); diff != "" {
		t.Errorf("token count histogram mismatch (-want +got):\n%s", diff)
	}
}

func TestTickDecoration(t *testing.T) {
	t.Parallel()

	cfg := Config{Enabled: Modifiers{Decoration: true}}
	st := NewState()
	for i := range 13 {
		var got Overlay
		got, st = Tick(plainDay, nil, st, cfg)
		if diff := cmp.Diff([]grid.Token{grid.Name, grid.Heart}, got.Tertiary.Tokens); diff != "" {
			t.Fatalf("tick %d tertiary mismatch (-want +got):\n%s", i, diff)
		}
		if want := DefaultPalette[i%6]; got.Tertiary.Color != want {
			t.Errorf("tick %d color = %v, want %v", i, got.Tertiary.Color, want)
		}
	}

	got, _ := Tick(plainDay, nil, NewState(), Config{})
	if got.Tertiary.Tokens != nil {
		t.Errorf("decoration disabled but tertiary = %v", got.Tertiary.Tokens)
	}
}

func TestTickAdvancesState(t *testing.T) {
	t.Parallel()

	cfg := Config{Enabled: allEnabled(), Birthday: birthday}

	_, next := Tick(plainDay, nil, stateAt(95, 5), cfg)
	if next.Secondary.Value != 96 {
		t.Errorf("secondary = %d, want 96", next.Secondary.Value)
	}
	if next.Fade.Value != 0 {
		t.Errorf("fade = %d, want 0", next.Fade.Value)
	}

	_, next = Tick(plainDay, nil, stateAt(105, 2), cfg)
	if next.Secondary.Value != 0 {
		t.Errorf("secondary after 105 = %d, want 0", next.Secondary.Value)
	}
	if next.Fade.Value != 3 {
		t.Errorf("fade = %d, want 3", next.Fade.Value)
	}
}

func TestNewState(t *testing.T) {
	t.Parallel()

	want := State{
		Fade:      Counter{Value: 0, Max: 5},
		Secondary: Counter{Value: 90, Max: 105},
	}
	if diff := cmp.Diff(want, NewState()); diff != "" {
		t.Errorf("NewState() mismatch (-want +got):\n%s", diff)
	}
}

func TestCounterFullCycle(t *testing.T) {
	t.Parallel()

	c := Counter{Value: 0, Max: 105}
	for i := range 106 {
		if c.Value != i {
			t.Fatalf("step %d: value %d", i, c.Value)
		}
		c = c.Advance()
	}
	if c.Value != 0 {
		t.Errorf("after a full cycle value = %d, want 0", c.Value)
	}
}

func TestParseModifiers(t *testing.T) {
	t.Parallel()

	got, err := ParseModifiers([]string{"Birthday", " leah", "", "byjeremy"})
	if err != nil {
		t.Fatalf("ParseModifiers() unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"birthday", "byjeremy", "leah"}, got.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	_, err = ParseModifiers([]string{"birthday", "halloween"})
	var unknown *UnknownModifierError
	if !errors.As(err, &unknown) || unknown.Name != "halloween" {
		t.Errorf("ParseModifiers() error = %v, want UnknownModifierError for halloween", err)
	}
}

func TestParseModifiersEmptySet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      []string
		wantErr bool
	}{
		{name: "nil", in: nil},
		{name: "blank", in: []string{""}},
		{name: "none", in: []string{"none"}},
		{name: "none any case", in: []string{" None "}},
		{name: "none mixed in", in: []string{"none", "friday"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := ParseModifiers(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseModifiers(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && len(got) != 0 {
				t.Errorf("ParseModifiers(%q) = %v, want the empty set", tt.in, got.Names())
			}
		})
	}
}

func TestParseMonthDay(t *testing.T) {
	t.Parallel()

	got, err := ParseMonthDay("09-27")
	if err != nil {
		t.Fatalf("ParseMonthDay() unexpected error: %v", err)
	}
	if got != (MonthDay{Month: time.September, Day: 27}) {
		t.Errorf("ParseMonthDay() = %v", got)
	}
	if got.String() != "09-27" {
		t.Errorf("String() = %q", got.String())
	}
	for _, bad := range []string{"13-01", "9/27", "", "02-30"} {
		if _, err := ParseMonthDay(bad); err == nil {
			t.Errorf("ParseMonthDay(%q) succeeded", bad)
		}
	}
}
