// Package tossi classifies Korean particles (tossi) and picks the form that
// fits the word they follow.
//
// Classify normalizes a raw particle such as "(으)로", "로" or "으로" into a
// Kind. Transform then looks at the last significant syllable of the word and
// returns one of the three forms registered for that kind: the bracketed form
// when the word ends in something other than Hangul or digits, the form for a
// word without final consonant, or the form for a word with one.
package tossi
