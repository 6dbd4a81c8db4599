// Package hangul splits precomposed Hangul syllables into their initial,
// medial and final jamo and joins such triples back into syllables.
package hangul
