// Package tossicat attaches Korean particles (tossi) to words.
//
// Which form of a particle follows a word depends on the last syllable of
// the word: "집" takes "으로", "나무" and "서울" take "로". Postfix and Pick
// accept any spelling of a supported particle, including the bracketed form
// "(으)로", and choose the form that fits:
//
//	tossicat.Postfix("집", "(으)로")  // "집으로"
//	tossicat.Pick("나무", "으로")      // "로"
//
// Text in brackets is ignored, digits are read as Korean numbers and a word
// that ends in neither Hangul nor digits gets the bracketed form:
//
//	tossicat.Postfix("넥슨(코리아)", "을") // "넥슨(코리아)을"
//	tossicat.Postfix("비타500", "이")      // "비타500이"
//	tossicat.Postfix("google", "로")       // "google(으)로"
//
// Particles that have only one form, such as "까지", are returned unchanged.
// Verify checks a word and particle against the accepted particle list and
// the word length limit for callers that want to reject bad input.
package tossicat

import (
	"codeberg.org/snonux/tossicat/internal/filter"
	"codeberg.org/snonux/tossicat/internal/hangul"
	"codeberg.org/snonux/tossicat/internal/number"
	"codeberg.org/snonux/tossicat/internal/sentence"
	"codeberg.org/snonux/tossicat/internal/tossi"
	"codeberg.org/snonux/tossicat/internal/verifier"
)

// Errors returned by Verify. Test for them with errors.Is.
var (
	ErrInvalidParticle = verifier.ErrInvalidParticle
	ErrWordTooLong     = verifier.ErrWordTooLong
)

// ErrMalformedPlaceholder is returned by ModifySentence.
var ErrMalformedPlaceholder = sentence.ErrMalformedPlaceholder

// MaxWordLength is the longest word Verify accepts, in characters.
const MaxWordLength = verifier.MaxWordLength

// Postfix returns word followed by the form of particle that fits it.
func Postfix(word, particle string) string {
	return tossi.Postfix(word, particle)
}

// Pick returns only the form of particle that fits word.
func Pick(word, particle string) string {
	return tossi.Pick(word, particle)
}

// Transform returns word and the fitting form of particle separately.
func Transform(word, particle string) (string, string) {
	return word, tossi.Pick(word, particle)
}

// Verify reports whether particle is an accepted particle and word is not
// longer than MaxWordLength characters.
func Verify(word, particle string) error {
	return verifier.Verify(word, particle)
}

// Particles returns the particles Verify accepts.
func Particles() []string {
	return verifier.Particles()
}

// ModifySentence replaces every "{word, particle}" in template with
// Postfix(word, particle).
func ModifySentence(template string) (string, error) {
	return sentence.Modify(template)
}

// JoinPhonemes composes initial, medial and final jamo into a syllable. Use
// ' ' as final for a syllable without final consonant.
func JoinPhonemes(phonemes [3]rune) rune {
	return hangul.Compose(phonemes)
}

// SplitPhonemes splits a syllable into initial, medial and final jamo.
func SplitPhonemes(r rune) [3]rune {
	return hangul.Decompose(r)
}

// FindLastLetter returns the last character that decides the particle form,
// or 'N' if the word has none.
func FindLastLetter(word string) rune {
	letter, _ := filter.LastLetter(word)
	return letter
}

// GuessFinalLetter returns the final consonant of FindLastLetter(word), ' '
// for none, or 'N' when the word has no Hangul or digits.
func GuessFinalLetter(word string) rune {
	return filter.FinalLetter(word)
}

// NumberToHangul reads a string of digits in Korean: "500" is "오백".
func NumberToHangul(digits string) string {
	return number.ToHangul(digits)
}
