package hangul

// Blank fills the final slot of a syllable without a final consonant and the
// unused slots of a non-Hangul rune.
const Blank = ' '

const (
	firstSyllable = '가'
	lastSyllable  = '힣'

	medialCount = 21
	finalCount  = 28
)

// Triple holds the initial, medial and final jamo of one syllable.
type Triple [3]rune

// Initial returns the initial consonant (choseong).
func (t Triple) Initial() rune { return t[0] }

// Medial returns the medial vowel (jungseong).
func (t Triple) Medial() rune { return t[1] }

// Final returns the final consonant (jongseong) or Blank.
func (t Triple) Final() rune { return t[2] }

var (
	initials = []rune{'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
	medials  = []rune{'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ', 'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ', 'ㅣ'}
	finals   = []rune{Blank, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ', 'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ', 'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ'}
)

var (
	initialIndex = buildIndex(initials)
	medialIndex  = buildIndex(medials)
	finalIndex   = buildIndex(finals)
)

func buildIndex(list []rune) map[rune]int {
	index := make(map[rune]int, len(list))
	for i, r := range list {
		index[r] = i
	}
	return index
}

// IsSyllable reports whether r is a precomposed syllable (U+AC00..U+D7A3).
func IsSyllable(r rune) bool {
	return r >= firstSyllable && r <= lastSyllable
}

// Decompose splits a syllable into its jamo. Any other rune comes back in the
// first slot with the remaining slots set to Blank.
func Decompose(r rune) Triple {
	if !IsSyllable(r) {
		return Triple{r, Blank, Blank}
	}
	offset := int(r - firstSyllable)
	return Triple{
		initials[offset/(medialCount*finalCount)],
		medials[(offset/finalCount)%medialCount],
		finals[offset%finalCount],
	}
}

// Compose joins a triple into a syllable. A triple that does not name a valid
// syllable yields its first slot unchanged, so Compose(Decompose(r)) == r for
// every rune.
func Compose(t Triple) rune {
	i, ok := initialIndex[t[0]]
	if !ok {
		return t[0]
	}
	m, ok := medialIndex[t[1]]
	if !ok {
		return t[0]
	}
	f, ok := finalIndex[t[2]]
	if !ok {
		return t[0]
	}
	return firstSyllable + rune((i*medialCount+m)*finalCount+f)
}

// Final returns the final consonant of r, or Blank when r has none or is not
// a syllable.
func Final(r rune) rune {
	return Decompose(r).Final()
}

// Initials returns a copy of the 19 initial consonants in code point order.
func Initials() []rune { return append([]rune(nil), initials...) }

// Medials returns a copy of the 21 medial vowels in code point order.
func Medials() []rune { return append([]rune(nil), medials...) }

// Finals returns a copy of the 28 final slots, Blank first.
func Finals() []rune { return append([]rune(nil), finals...) }
