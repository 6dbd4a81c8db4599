package tossi

import "codeberg.org/snonux/tossicat/internal/filter"

// Particle is a raw particle together with what Classify derived from it.
type Particle struct {
	Raw      string
	Modified []rune
	Kind     Kind
	Rule     Rule
}

// Classify filters raw the same way words are filtered and looks the result
// up by length. Anything not listed is Other.
func Classify(raw string) Particle {
	modified := filter.Significant(raw)

	var kind Kind
	switch len(modified) {
	case 1:
		kind = oneLetter[modified[0]]
	case 2:
		kind = twoLetters[[2]rune{modified[0], modified[1]}]
	case 3:
		kind = threeLetters[[3]rune{modified[0], modified[1], modified[2]}]
	case 4:
		kind = fourLetters[[4]rune{modified[0], modified[1], modified[2], modified[3]}]
	default:
		kind = Other
	}

	return Particle{
		Raw:      raw,
		Modified: modified,
		Kind:     kind,
		Rule:     kind.Rule(),
	}
}

// Missing keys yield the zero Kind, which is Other.
var oneLetter = map[rune]Kind{
	'은': Neun, '는': Neun,
	'이': Ka, '가': Ka,
	'을': Eul, '를': Eul,
	'와': Wa, '과': Wa,
	'로': Ro,
	'다': Ida,
	'나': Na,
	'랑': Rang,
	'란': Ran,
	'며': Myeo,
	'고': Ko,
	'니': Ni,
	'든': Deun,
	'여': Yeo,
}

var twoLetters = map[[2]rune]Kind{
	{'으', '로'}: Ro,
	{'로', '서'}: Roseo,
	{'로', '써'}: Rosseo,
	{'이', '다'}: Ida,
	{'이', '나'}: Na,
	{'이', '랑'}: Rang,
	{'이', '란'}: Ran,
	{'나', '마'}: Nama,
	{'이', '며'}: Myeo,
	{'이', '고'}: Ko,
	{'이', '니'}: Ni,
	{'이', '든'}: Deun,
	{'든', '지'}: Deunji,
	{'든', '가'}: Deunka,
	{'이', '여'}: Yeo,
	{'라', '야'}: Raya,
	{'라', '도'}: Rado,
}

var threeLetters = map[[3]rune]Kind{
	{'으', '로', '서'}: Roseo,
	{'으', '로', '써'}: Rosseo,
	{'로', '부', '터'}: Robuteo,
	{'이', '나', '마'}: Nama,
	{'야', '말', '로'}: Yamalro,
	{'이', '든', '지'}: Deunji,
	{'이', '든', '가'}: Deunka,
	{'이', '라', '야'}: Raya,
	{'이', '라', '도'}: Rado,
}

var fourLetters = map[[4]rune]Kind{
	{'으', '로', '부', '터'}: Robuteo,
	{'이', '야', '말', '로'}: Yamalro,
}
