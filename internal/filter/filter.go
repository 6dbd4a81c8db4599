// Package filter reduces a word to the characters that decide which particle
// form follows it: bracketed asides and foreign characters are dropped and
// digit runs are replaced by their Korean reading.
package filter

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"codeberg.org/snonux/tossicat/internal/hangul"
	"codeberg.org/snonux/tossicat/internal/number"
)

// Foreign is what FinalLetter returns for a word without Hangul or digits.
const Foreign = 'N'

// Batchim classifies the last significant syllable of a word.
type Batchim int

const (
	// None means the word has no significant content, e.g. "google".
	None Batchim = iota
	// Blank means the last syllable has no final consonant.
	Blank
	// Rieul means the last syllable ends in ㄹ.
	Rieul
	// Consonant means the last syllable ends in any other consonant.
	Consonant
)

func (b Batchim) String() string {
	switch b {
	case None:
		return "none"
	case Blank:
		return "blank"
	case Rieul:
		return "rieul"
	case Consonant:
		return "consonant"
	default:
		return "unknown"
	}
}

// Significant returns the characters of word that matter for particle
// selection, in order. The input is NFC normalized first.
//
// "(" switches skipping on and ")" switches it off again. There is no nesting
// count, so "a(b(c)d)" keeps "d".
func Significant(word string) []rune {
	var (
		output  []rune
		digits  strings.Builder
		bracket bool
	)

	flush := func() {
		if digits.Len() == 0 {
			return
		}
		output = append(output, []rune(number.ToHangul(digits.String()))...)
		digits.Reset()
	}

	for _, r := range norm.NFC.String(word) {
		switch r {
		case '(':
			bracket = true
		case ')':
			bracket = false
		}
		if bracket {
			continue
		}
		if number.IsDigit(r) {
			digits.WriteRune(r)
			continue
		}
		flush()
		if hangul.IsSyllable(r) {
			output = append(output, r)
		}
	}
	flush()

	return output
}

// LastLetter returns the last significant character of word. ok is false
// when the word has none.
func LastLetter(word string) (letter rune, ok bool) {
	filtered := Significant(word)
	if len(filtered) == 0 {
		return Foreign, false
	}
	return filtered[len(filtered)-1], true
}

// FinalLetter returns the final consonant of the last significant character,
// hangul.Blank when it has none, or Foreign when there is no such character.
func FinalLetter(word string) rune {
	letter, ok := LastLetter(word)
	if !ok {
		return Foreign
	}
	return hangul.Final(letter)
}

// Classify returns the batchim class of word.
func Classify(word string) Batchim {
	switch FinalLetter(word) {
	case Foreign:
		return None
	case hangul.Blank:
		return Blank
	case 'ㄹ':
		return Rieul
	default:
		return Consonant
	}
}
