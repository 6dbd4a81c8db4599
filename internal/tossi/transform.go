package tossi

import "codeberg.org/snonux/tossicat/internal/filter"

// Forms are the three ways a particle can be written.
type Forms struct {
	// Ambiguous is used when the final consonant cannot be determined.
	Ambiguous string
	// NoBatchim follows a syllable without final consonant.
	NoBatchim string
	// Batchim follows a syllable with a final consonant.
	Batchim string
}

var forms = map[Kind]Forms{
	Deun:    {"(이)든", "든", "이든"},
	Deunka:  {"(이)든가", "든가", "이든가"},
	Deunji:  {"(이)든지", "든지", "이든지"},
	Eul:     {"(을)를", "를", "을"},
	Ida:     {"(이)다", "다", "이다"},
	Ka:      {"(이)가", "가", "이"},
	Ko:      {"(이)고", "고", "이고"},
	Myeo:    {"(이)며", "며", "이며"},
	Na:      {"(이)나", "나", "이나"},
	Nama:    {"(이)나마", "나마", "이나마"},
	Neun:    {"(은)는", "는", "은"},
	Ni:      {"(이)니", "니", "이니"},
	Rado:    {"(이)라도", "라도", "이라도"},
	Ran:     {"(이)란", "란", "이란"},
	Rang:    {"(이)랑", "랑", "이랑"},
	Raya:    {"(이)라야", "라야", "이라야"},
	Yamalro: {"(이)야말로", "야말로", "이야말로"},
	Yeo:     {"(이)여", "여", "이여"},
	Wa:      {"(와)과", "와", "과"},
	Ro:      {"(으)로", "로", "으로"},
	Robuteo: {"(으)로부터", "로부터", "으로부터"},
	Roseo:   {"(으)로서", "로서", "으로서"},
	Rosseo:  {"(으)로써", "로써", "으로써"},
}

// Forms returns the registered forms of k. ok is false for Other.
func (k Kind) Forms() (f Forms, ok bool) {
	f, ok = forms[k]
	return f, ok
}

// Transform returns the form of p that fits word. A particle of kind Other
// comes back as it was given.
func Transform(word string, p Particle) string {
	f, ok := p.Kind.Forms()
	if !ok {
		return p.Raw
	}
	return f.pick(p.Rule, filter.Classify(word))
}

func (f Forms) pick(rule Rule, batchim filter.Batchim) string {
	switch batchim {
	case filter.None:
		return f.Ambiguous
	case filter.Blank:
		return f.NoBatchim
	case filter.Rieul:
		if rule == RieulAndBlankSensitive {
			return f.NoBatchim
		}
		return f.Batchim
	default:
		return f.Batchim
	}
}

// Pick classifies particle and returns the form that fits word.
func Pick(word, particle string) string {
	return Transform(word, Classify(particle))
}

// Postfix returns word followed by the form of particle that fits it.
func Postfix(word, particle string) string {
	return word + Pick(word, particle)
}
