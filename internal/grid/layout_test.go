package grid

import (
	"errors"
	"image"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

func TestLookup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		token   Token
		want    Span
		wantErr bool
	}{
		{
			name:  "first token",
			token: Good,
			want:  Span{Row: 1, Col: 1, Width: 4, Height: 1},
		},
		{
			name:  "two-row glyph",
			token: Name,
			want:  Span{Row: 1, Col: 9, Width: 6, Height: 2},
		},
		{
			name:  "hour five is not the minute five",
			token: Five,
			want:  Span{Row: 10, Col: 1, Width: 4, Height: 1},
		},
		{
			name:  "indicator",
			token: Indicator,
			want:  Span{Row: 16, Col: 16, Width: 1, Height: 1},
		},
		{
			name:    "zero token",
			token:   Token(0),
			wantErr: true,
		},
		{
			name:    "past the end",
			token:   numTokens,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Lookup(tt.token)
			if tt.wantErr {
				var unknown *UnknownTokenError
				if !errors.As(err, &unknown) {
					t.Fatalf("Lookup() error = %v, want *UnknownTokenError", err)
				}
				if unknown.Token != tt.token {
					t.Errorf("UnknownTokenError.Token = %d, want %d", unknown.Token, tt.token)
				}
				return
			}
			if err != nil {
				t.Fatalf("Lookup() unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Lookup() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMustLookupPanicsOnUnknownToken(t *testing.T) {
	t.Parallel()

	defer func() {
		if recover() == nil {
			t.Error("MustLookup() did not panic")
		}
	}()
	MustLookup(numTokens + 3)
}

func TestLayoutFitsFaceplate(t *testing.T) {
	t.Parallel()

	bounds := image.Rect(0, 0, Cols, Rows)
	for _, tok := range All() {
		span := MustLookup(tok)
		if span.Width < 1 || span.Height < 1 {
			t.Errorf("%v: empty span %+v", tok, span)
		}
		if !span.Cells().In(bounds) {
			t.Errorf("%v: span %+v leaves the faceplate", tok, span)
		}
		face := layout[tok].face
		if n := utf8.RuneCountInString(face); n != span.Width*span.Height {
			t.Errorf("%v: face %q has %d cells, span has %d", tok, face, n, span.Width*span.Height)
		}
	}
}

func TestOverlapsAreDeclared(t *testing.T) {
	t.Parallel()

	if diff := cmp.Diff(Superimposed, Overlapping()); diff != "" {
		t.Errorf("Overlapping() mismatch (-declared +actual):\n%s", diff)
	}
}

func TestSuperimposedTokensShareLetters(t *testing.T) {
	t.Parallel()

	for _, pair := range Superimposed {
		shared := MustLookup(pair.A).Cells().Intersect(MustLookup(pair.B).Cells())
		for y := shared.Min.Y; y < shared.Max.Y; y++ {
			for x := shared.Min.X; x < shared.Max.X; x++ {
				p := image.Pt(x, y)
				a, _ := pair.A.Letter(p)
				b, _ := pair.B.Letter(p)
				if a != b {
					t.Errorf("%v/%v at %v: %q != %q", pair.A, pair.B, p, a, b)
				}
			}
		}
	}
}

func TestSpanPixels(t *testing.T) {
	t.Parallel()

	got := Span{Row: 2, Col: 3, Width: 4, Height: 1}.Pixels()
	want := image.Rect(4, 2, 12, 4)
	if got != want {
		t.Errorf("Pixels() = %v, want %v", got, want)
	}
}

func TestFaceplateRows(t *testing.T) {
	t.Parallel()

	p := Faceplate()
	tests := []struct {
		row  int
		want string
	}{
		{row: 0, want: "goodhiya✿LEAH✿♥♥"},
		{row: 5, want: "hisleahtentwenty"},
		{row: 7, want: "minutesthispasto"},
		{row: 11, want: "twelvewordoclock"},
		{row: 12, want: "midnightinoonthe"},
		{row: 15, want: "byeveningjeremy♥"},
	}
	for _, tt := range tests {
		if got := string(p[tt.row][:]); got != tt.want {
			t.Errorf("row %d = %q, want %q", tt.row, got, tt.want)
		}
	}
}

func TestTokenString(t *testing.T) {
	t.Parallel()

	if got := OClock.String(); got != "o'clock" {
		t.Errorf("OClock.String() = %q", got)
	}
	if got := Token(0).String(); got != "Token(0)" {
		t.Errorf("Token(0).String() = %q", got)
	}
	if got := len(All()); got != int(numTokens)-1 {
		t.Errorf("len(All()) = %d, want %d", got, numTokens-1)
	}
}
