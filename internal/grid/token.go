// Package grid holds the fixed word layout of the clock faceplate.
package grid

import "fmt"

// Token identifies one word slot on the faceplate. The same word can appear in
// more than one slot (two "five"s, two "ten"s), so tokens are slots, not text.
type Token uint8

var _ fmt.Stringer = (*Token)(nil)

const (
	tokenInvalid Token = iota

	Good
	Hiya
	MorningGreeting
	Name
	Heart
	Time
	Carpe
	For
	Diem
	Happy
	Sleep
	Coffee
	It
	Friday
	Birthday
	Hi
	Is
	NameSmall
	TenMinutes
	Twenty
	Half
	A
	FiveMinutes
	Quarter
	Minutes
	This
	Past
	To
	One
	Two
	Three
	Eight
	Five
	IsSignature
	Eleven
	Nine
	Four
	ASpare
	Six
	Seven
	Ten
	Twelve
	Word
	OClock
	Clock
	Midnight
	I
	In
	Noon
	The
	Built
	Morning
	With
	Love
	Afternoon
	You
	By
	Bye
	Evening
	Jeremy
	Indicator

	numTokens
)

// All returns every token of the layout in row order.
func All() []Token {
	tokens := make([]Token, 0, numTokens-1)
	for t := tokenInvalid + 1; t < numTokens; t++ {
		tokens = append(tokens, t)
	}
	return tokens
}

func (t Token) Valid() bool {
	return t > tokenInvalid && t < numTokens
}

// String returns the word as it reads on the faceplate.
func (t Token) String() string {
	if !t.Valid() {
		return fmt.Sprintf("Token(%d)", uint8(t))
	}
	return layout[t].word
}
