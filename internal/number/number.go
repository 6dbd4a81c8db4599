// Package number reads strings of ASCII digits aloud in Sino-Korean, the way
// a number is pronounced before a particle ("500" reads "오백").
package number

import "strings"

var digitNames = [10]string{"영", "일", "이", "삼", "사", "오", "육", "칠", "팔", "구"}

// Units inside one group of four digits, indexed by position % 4.
var smallUnits = [4]string{"", "십", "백", "천"}

// One entry per further group of four digits, starting at 10^4. The eighth
// entry (10^32) is spelled like the digit nine but is kept as its own token.
var largeUnits = [12]string{"만", "억", "조", "경", "해", "자", "양", "구", "간", "정", "재", "극"}

// MaxDigits is the longest digit run that can be read with place units.
// Longer runs are read digit by digit.
const MaxDigits = 4 * (len(largeUnits) + 1)

type tokenKind int

const (
	digitToken tokenKind = iota
	smallUnitToken
	largeUnitToken
)

type token struct {
	kind  tokenKind
	value int
	text  string
}

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// ToHangul returns the Korean reading of digits. Runes other than ASCII
// digits are ignored, an empty input reads as the empty string and an input
// made only of zeros reads "영".
func ToHangul(digits string) string {
	values := make([]int, 0, len(digits))
	for _, r := range digits {
		if IsDigit(r) {
			values = append(values, int(r-'0'))
		}
	}

	switch len(values) {
	case 0:
		return ""
	case 1:
		return digitNames[values[0]]
	}

	for len(values) > 1 && values[0] == 0 {
		values = values[1:]
	}
	if len(values) == 1 && values[0] == 0 {
		return digitNames[0]
	}
	if len(values) > MaxDigits {
		return spell(values)
	}

	tokens := assemble(values)
	tokens = dropZeros(tokens)
	tokens = collapseLargeUnits(tokens)
	tokens = elideOne(tokens)

	var b strings.Builder
	for _, t := range tokens {
		b.WriteString(t.text)
	}
	return b.String()
}

// assemble lays out every digit followed by the unit of its position,
// most significant first.
func assemble(values []int) []token {
	tokens := make([]token, 0, len(values)*2)
	for i, v := range values {
		pos := len(values) - 1 - i
		tokens = append(tokens, token{kind: digitToken, value: v, text: digitNames[v]})
		switch {
		case pos%4 != 0:
			tokens = append(tokens, token{kind: smallUnitToken, text: smallUnits[pos%4]})
		case pos > 0:
			tokens = append(tokens, token{kind: largeUnitToken, text: largeUnits[pos/4-1]})
		}
	}
	return tokens
}

// dropZeros removes zero digits together with a 십/백/천 right after them.
// Large units stay; collapseLargeUnits deals with the empty groups.
func dropZeros(tokens []token) []token {
	out := tokens[:0:0]
	for i := 0; i < len(tokens); i++ {
		t := tokens[i]
		if t.kind == digitToken && t.value == 0 {
			if i+1 < len(tokens) && tokens[i+1].kind == smallUnitToken {
				i++
			}
			continue
		}
		out = append(out, t)
	}
	return out
}

// collapseLargeUnits keeps only the first of adjacent large units, so
// "일억만" becomes "일억". A large unit with nothing before it is dropped.
func collapseLargeUnits(tokens []token) []token {
	out := tokens[:0:0]
	for _, t := range tokens {
		if t.kind == largeUnitToken {
			if len(out) == 0 || out[len(out)-1].kind == largeUnitToken {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// elideOne drops the digit one before 십, 백 and 천, and before 만 when the
// reading starts there: 10 is "십", 10000 is "만", but 110000 is "십일만".
func elideOne(tokens []token) []token {
	out := tokens[:0:0]
	for i, t := range tokens {
		if t.kind == digitToken && t.value == 1 && i+1 < len(tokens) {
			next := tokens[i+1]
			if next.kind == smallUnitToken {
				continue
			}
			if next.kind == largeUnitToken && next.text == largeUnits[0] && i == 0 {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

func spell(values []int) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString(digitNames[v])
	}
	return b.String()
}
