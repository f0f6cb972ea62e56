package grid

import (
	"fmt"
	"image"
)

const (
	// Rows and Cols are the size of the faceplate in grid cells.
	Rows = 16
	Cols = 16

	// Density is the number of physical pixels per grid cell along each axis.
	Density = 2
)

// Span is the rectangle a token covers, in 1-based grid cells.
type Span struct {
	Row    int
	Col    int
	Width  int
	Height int
}

// Pixels returns the physical pixel rectangle covered by the span.
func (s Span) Pixels() image.Rectangle {
	x0 := (s.Col - 1) * Density
	y0 := (s.Row - 1) * Density
	return image.Rect(x0, y0, x0+s.Width*Density, y0+s.Height*Density)
}

// Cells returns the grid rectangle covered by the span, 0-based.
func (s Span) Cells() image.Rectangle {
	return image.Rect(s.Col-1, s.Row-1, s.Col-1+s.Width, s.Row-1+s.Height)
}

type UnknownTokenError struct {
	Token Token
}

func (e *UnknownTokenError) Error() string {
	return fmt.Sprintf("grid: unknown token %d", uint8(e.Token))
}

// Lookup returns the span of t. Tokens outside the layout fail with
// *UnknownTokenError.
func Lookup(t Token) (Span, error) {
	if !t.Valid() {
		return Span{}, &UnknownTokenError{Token: t}
	}
	return layout[t].span, nil
}

// MustLookup is Lookup for tokens known at build time.
func MustLookup(t Token) Span {
	span, err := Lookup(t)
	if err != nil {
		panic(err)
	}
	return span
}

type entry struct {
	word string
	// face is the lettering under the span, row-major, one rune per cell.
	face string
	span Span
}

var layout = [numTokens]entry{
	Good:            {word: "good", face: "good", span: Span{Row: 1, Col: 1, Width: 4, Height: 1}},
	Hiya:            {word: "hiya", face: "hiya", span: Span{Row: 1, Col: 5, Width: 4, Height: 1}},
	MorningGreeting: {word: "morning!", face: "morning!", span: Span{Row: 2, Col: 1, Width: 8, Height: 1}},
	Name:            {word: "leah", face: "✿LEAH✿✿LEAH✿", span: Span{Row: 1, Col: 9, Width: 6, Height: 2}},
	Heart:           {word: "♥", face: "♥♥♥♥", span: Span{Row: 1, Col: 15, Width: 2, Height: 2}},
	Time:            {word: "time", face: "time", span: Span{Row: 3, Col: 1, Width: 4, Height: 1}},
	Carpe:           {word: "carpe", face: "carpe", span: Span{Row: 3, Col: 5, Width: 5, Height: 1}},
	For:             {word: "for", face: "for", span: Span{Row: 3, Col: 10, Width: 3, Height: 1}},
	Diem:            {word: "diem", face: "diem", span: Span{Row: 3, Col: 13, Width: 4, Height: 1}},
	Happy:           {word: "happy", face: "happy", span: Span{Row: 4, Col: 1, Width: 5, Height: 1}},
	Sleep:           {word: "sleep", face: "sleep", span: Span{Row: 4, Col: 6, Width: 5, Height: 1}},
	Coffee:          {word: "coffee", face: "coffee", span: Span{Row: 4, Col: 11, Width: 6, Height: 1}},
	It:              {word: "it", face: "it", span: Span{Row: 5, Col: 1, Width: 2, Height: 1}},
	Friday:          {word: "friday", face: "friday", span: Span{Row: 5, Col: 3, Width: 6, Height: 1}},
	Birthday:        {word: "birthday", face: "birthday", span: Span{Row: 5, Col: 9, Width: 8, Height: 1}},
	Hi:              {word: "hi", face: "hi", span: Span{Row: 6, Col: 1, Width: 2, Height: 1}},
	Is:              {word: "is", face: "is", span: Span{Row: 6, Col: 2, Width: 2, Height: 1}},
	NameSmall:       {word: "leah", face: "leah", span: Span{Row: 6, Col: 4, Width: 4, Height: 1}},
	TenMinutes:      {word: "ten", face: "ten", span: Span{Row: 6, Col: 8, Width: 3, Height: 1}},
	Twenty:          {word: "twenty", face: "twenty", span: Span{Row: 6, Col: 11, Width: 6, Height: 1}},
	Half:            {word: "half", face: "half", span: Span{Row: 7, Col: 1, Width: 4, Height: 1}},
	A:               {word: "a", face: "a", span: Span{Row: 7, Col: 5, Width: 1, Height: 1}},
	FiveMinutes:     {word: "five", face: "five", span: Span{Row: 7, Col: 6, Width: 4, Height: 1}},
	Quarter:         {word: "quarter", face: "quarter", span: Span{Row: 7, Col: 10, Width: 7, Height: 1}},
	Minutes:         {word: "minutes", face: "minutes", span: Span{Row: 8, Col: 1, Width: 7, Height: 1}},
	This:            {word: "this", face: "this", span: Span{Row: 8, Col: 8, Width: 4, Height: 1}},
	Past:            {word: "past", face: "past", span: Span{Row: 8, Col: 12, Width: 4, Height: 1}},
	To:              {word: "to", face: "to", span: Span{Row: 8, Col: 15, Width: 2, Height: 1}},
	One:             {word: "one", face: "one", span: Span{Row: 9, Col: 1, Width: 3, Height: 1}},
	Two:             {word: "two", face: "two", span: Span{Row: 9, Col: 4, Width: 3, Height: 1}},
	Three:           {word: "three", face: "three", span: Span{Row: 9, Col: 7, Width: 5, Height: 1}},
	Eight:           {word: "eight", face: "eight", span: Span{Row: 9, Col: 12, Width: 5, Height: 1}},
	Five:            {word: "five", face: "five", span: Span{Row: 10, Col: 1, Width: 4, Height: 1}},
	IsSignature:     {word: "is", face: "is", span: Span{Row: 10, Col: 5, Width: 2, Height: 1}},
	Eleven:          {word: "eleven", face: "eleven", span: Span{Row: 10, Col: 7, Width: 6, Height: 1}},
	Nine:            {word: "nine", face: "nine", span: Span{Row: 10, Col: 13, Width: 4, Height: 1}},
	Four:            {word: "four", face: "four", span: Span{Row: 11, Col: 1, Width: 4, Height: 1}},
	ASpare:          {word: "a", face: "a", span: Span{Row: 11, Col: 5, Width: 1, Height: 1}},
	Six:             {word: "six", face: "six", span: Span{Row: 11, Col: 6, Width: 3, Height: 1}},
	Seven:           {word: "seven", face: "seven", span: Span{Row: 11, Col: 9, Width: 5, Height: 1}},
	Ten:             {word: "ten", face: "ten", span: Span{Row: 11, Col: 14, Width: 3, Height: 1}},
	Twelve:          {word: "twelve", face: "twelve", span: Span{Row: 12, Col: 1, Width: 6, Height: 1}},
	Word:            {word: "word", face: "word", span: Span{Row: 12, Col: 7, Width: 4, Height: 1}},
	OClock:          {word: "o'clock", face: "oclock", span: Span{Row: 12, Col: 11, Width: 6, Height: 1}},
	Clock:           {word: "clock", face: "clock", span: Span{Row: 12, Col: 12, Width: 5, Height: 1}},
	Midnight:        {word: "midnight", face: "midnight", span: Span{Row: 13, Col: 1, Width: 8, Height: 1}},
	I:               {word: "i", face: "i", span: Span{Row: 13, Col: 2, Width: 1, Height: 1}},
	In:              {word: "in", face: "in", span: Span{Row: 13, Col: 9, Width: 2, Height: 1}},
	Noon:            {word: "noon", face: "noon", span: Span{Row: 13, Col: 10, Width: 4, Height: 1}},
	The:             {word: "the", face: "the", span: Span{Row: 13, Col: 14, Width: 3, Height: 1}},
	Built:           {word: "built", face: "built", span: Span{Row: 14, Col: 1, Width: 5, Height: 1}},
	Morning:         {word: "morning", face: "morning", span: Span{Row: 14, Col: 6, Width: 7, Height: 1}},
	With:            {word: "with", face: "with", span: Span{Row: 14, Col: 13, Width: 4, Height: 1}},
	Love:            {word: "love", face: "love", span: Span{Row: 15, Col: 1, Width: 4, Height: 1}},
	Afternoon:       {word: "afternoon", face: "afternoon", span: Span{Row: 15, Col: 5, Width: 9, Height: 1}},
	You:             {word: "you", face: "you", span: Span{Row: 15, Col: 14, Width: 3, Height: 1}},
	By:              {word: "by", face: "by", span: Span{Row: 16, Col: 1, Width: 2, Height: 1}},
	Bye:             {word: "bye", face: "bye", span: Span{Row: 16, Col: 1, Width: 3, Height: 1}},
	Evening:         {word: "evening", face: "evening", span: Span{Row: 16, Col: 3, Width: 7, Height: 1}},
	Jeremy:          {word: "jeremy", face: "jeremy", span: Span{Row: 16, Col: 10, Width: 6, Height: 1}},
	Indicator:       {word: "♥", face: "♥", span: Span{Row: 16, Col: 16, Width: 1, Height: 1}},
}

// Pair is two tokens whose spans share at least one cell.
type Pair struct {
	A Token
	B Token
}

// Superimposed lists the pairs that share cells on the faceplate. Shared cells
// carry the same letter, e.g. "hi" and "is" share the "i".
var Superimposed = []Pair{
	{A: Hi, B: Is},
	{A: Past, B: To},
	{A: OClock, B: Clock},
	{A: Midnight, B: I},
	{A: In, B: Noon},
	{A: By, B: Bye},
	{A: Bye, B: Evening},
}

// Overlapping returns every pair of tokens whose spans intersect, in token order.
func Overlapping() []Pair {
	var pairs []Pair
	tokens := All()
	for i, a := range tokens {
		ra := layout[a].span.Cells()
		for _, b := range tokens[i+1:] {
			if ra.Overlaps(layout[b].span.Cells()) {
				pairs = append(pairs, Pair{A: a, B: b})
			}
		}
	}
	return pairs
}
