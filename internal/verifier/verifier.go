// Package verifier checks a word and a particle before they are combined.
//
// It is a gate for strict callers: the particle has to be one of the listed
// particles, spelled exactly, and the word must not be longer than the limit.
// Conversion itself never needs it.
package verifier

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/samber/lo"
)

// MaxWordLength is the default word length limit in characters. A word of
// exactly MaxWordLength characters is accepted.
const MaxWordLength = 50

var (
	// ErrInvalidParticle is returned for a particle that is not listed.
	ErrInvalidParticle = errors.New("this value is not correct tossi")
	// ErrWordTooLong is returned for a word above the length limit.
	ErrWordTooLong = errors.New("the length has been exceeded")
)

var particles = []string{
	"(가)이",
	"(는)은",
	"(를)을",
	"(으)로",
	"(을)를",
	"(이)가",
	"(이)다",
	"가",
	"같이",
	"까지",
	"께",
	"는",
	"다",
	"도",
	"로",
	"를",
	"마냥",
	"마저",
	"만",
	"밖에",
	"보다",
	"부터",
	"뿐",
	"에",
	"에게",
	"에게로",
	"에게서",
	"에다가",
	"에서",
	"에서부터",
	"으로",
	"은",
	"은(는)",
	"을",
	"의",
	"이",
	"이다",
	"조차",
	"처럼",
	"커녕",
	"하고",
	"한테",
}

// Particles returns a copy of the accepted particles.
func Particles() []string {
	return append([]string(nil), particles...)
}

// Verifier holds the limits used by Verify. The zero value uses
// MaxWordLength.
type Verifier struct {
	MaxWordLength int
}

func (v Verifier) limit() int {
	if v.MaxWordLength <= 0 {
		return MaxWordLength
	}
	return v.MaxWordLength
}

// Verify checks the particle first and the word length second.
func (v Verifier) Verify(word, particle string) error {
	if err := VerifyParticle(particle); err != nil {
		return err
	}
	return v.VerifyWordLength(word)
}

// VerifyWordLength fails with ErrWordTooLong when word has more characters
// than the limit.
func (v Verifier) VerifyWordLength(word string) error {
	n := utf8.RuneCountInString(word)
	if n > v.limit() {
		return fmt.Errorf("%w: %d characters, at most %d allowed", ErrWordTooLong, n, v.limit())
	}
	return nil
}

// VerifyParticle fails with ErrInvalidParticle unless particle is listed.
func VerifyParticle(particle string) error {
	if !lo.Contains(particles, particle) {
		return fmt.Errorf("%w: %q", ErrInvalidParticle, particle)
	}
	return nil
}

// Verify runs the default Verifier.
func Verify(word, particle string) error {
	return Verifier{}.Verify(word, particle)
}

// VerifyWordLength runs the default length check.
func VerifyWordLength(word string) error {
	return Verifier{}.VerifyWordLength(word)
}
