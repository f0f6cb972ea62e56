// Package timewords turns a wall-clock time into the words lit on the faceplate.
package timewords

import (
	"strings"
	"time"

	"github.com/garrettladley/wordclock/internal/grid"
)

// Derive returns the tokens that spell t, greeting first and period of day
// last. It is defined for every time and depends only on its hour and minute.
func Derive(t time.Time) []grid.Token {
	hour, minute := t.Hour(), t.Minute()

	tokens := make([]grid.Token, 0, 12)
	tokens = append(tokens, greeting(hour)...)
	tokens = append(tokens, occasion(hour)...)
	tokens = append(tokens, grid.It, grid.Is)
	tokens = append(tokens, minutes(hour, minute)...)
	tokens = append(tokens, hourName(displayedHour(hour, minute)))
	tokens = append(tokens, period(hour, minute)...)
	return tokens
}

// Phrase joins the words of tokens with single spaces.
func Phrase(tokens []grid.Token) string {
	words := make([]string, len(tokens))
	for i, t := range tokens {
		words[i] = t.String()
	}
	return strings.Join(words, " ")
}

func greeting(hour int) []grid.Token {
	if hour > 5 && hour <= 10 {
		return []grid.Token{grid.Good, grid.MorningGreeting}
	}
	return []grid.Token{grid.Hiya}
}

// occasion excludes hour 9 from both the coffee and the carpe diem windows.
func occasion(hour int) []grid.Token {
	switch {
	case hour > 5 && hour < 9:
		return []grid.Token{grid.Time, grid.For, grid.Coffee}
	case hour > 9 && hour <= 12:
		return []grid.Token{grid.Carpe, grid.Diem}
	case hour > 22 || hour < 3:
		return []grid.Token{grid.Time, grid.For, grid.Sleep}
	default:
		return nil
	}
}

type bucket struct {
	last   int
	tokens []grid.Token
}

// buckets are keyed by the last minute they cover; each starts one past the
// previous bucket, the first at minute 3.
var buckets = []bucket{
	{last: 7, tokens: []grid.Token{grid.FiveMinutes, grid.Minutes, grid.Past}},
	{last: 12, tokens: []grid.Token{grid.TenMinutes, grid.Minutes, grid.Past}},
	{last: 17, tokens: []grid.Token{grid.A, grid.Quarter, grid.Past}},
	{last: 22, tokens: []grid.Token{grid.Twenty, grid.Minutes, grid.Past}},
	{last: 27, tokens: []grid.Token{grid.Twenty, grid.FiveMinutes, grid.Minutes, grid.Past}},
	{last: 32, tokens: []grid.Token{grid.Half, grid.Past}},
	{last: 37, tokens: []grid.Token{grid.Twenty, grid.FiveMinutes, grid.Minutes, grid.To}},
	{last: 42, tokens: []grid.Token{grid.Twenty, grid.Minutes, grid.To}},
	{last: 47, tokens: []grid.Token{grid.A, grid.Quarter, grid.To}},
	{last: 52, tokens: []grid.Token{grid.TenMinutes, grid.Minutes, grid.To}},
	{last: 57, tokens: []grid.Token{grid.FiveMinutes, grid.Minutes, grid.To}},
}

// minutes returns nothing near midnight and noon, where the hour word
// ("midnight", "noon") already reads as on the hour.
func minutes(hour, minute int) []grid.Token {
	if (minute <= 2 && hour != 0 && hour != 12) || (minute > 57 && hour != 23 && hour != 11) {
		return []grid.Token{grid.OClock}
	}
	if minute <= 2 || minute > 57 {
		return nil
	}
	for _, b := range buckets {
		if minute <= b.last {
			return b.tokens
		}
	}
	return nil
}

func displayedHour(hour, minute int) int {
	if minute > 32 {
		return hour + 1
	}
	return hour
}

var hourNames = [12]grid.Token{
	grid.Midnight,
	grid.One,
	grid.Two,
	grid.Three,
	grid.Four,
	grid.Five,
	grid.Six,
	grid.Seven,
	grid.Eight,
	grid.Nine,
	grid.Ten,
	grid.Eleven,
}

func hourName(hour int) grid.Token {
	hour %= 24
	if hour == 12 {
		return grid.Noon
	}
	return hourNames[hour%12]
}

func period(hour, minute int) []grid.Token {
	switch {
	case (hour > 0 && hour < 11) || (hour == 0 && minute > 32) || (hour == 11 && minute <= 32):
		return []grid.Token{grid.In, grid.The, grid.Morning}
	case (hour > 12 && hour < 18) || (hour == 12 && minute > 32):
		return []grid.Token{grid.In, grid.The, grid.Afternoon}
	case (hour >= 18 && hour < 23) || (hour == 23 && minute <= 33):
		return []grid.Token{grid.In, grid.The, grid.Evening}
	default:
		return nil
	}
}
