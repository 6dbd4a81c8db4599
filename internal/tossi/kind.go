package tossi

// Kind names a particle family. Every concrete kind has three registered
// surface forms; Other has none and is passed through unchanged.
type Kind int

const (
	Other Kind = iota
	Deun
	Deunji
	Deunka
	Eul
	Ida
	Ka
	Ko
	Myeo
	Na
	Nama
	Neun
	Ni
	Rado
	Ran
	Rang
	Raya
	Yamalro
	Yeo
	Wa
	Ro
	Robuteo
	Roseo
	Rosseo
)

// Rule says which final consonants switch a particle to its batchim form.
type Rule int

const (
	// NoRule belongs to Other.
	NoRule Rule = iota
	// BlankSensitive particles take the short form only after a syllable
	// without final consonant.
	BlankSensitive
	// RieulAndBlankSensitive particles also take the short form after ㄹ.
	RieulAndBlankSensitive
)

var kindNames = map[Kind]string{
	Other:   "Other",
	Deun:    "Deun",
	Deunji:  "Deunji",
	Deunka:  "Deunka",
	Eul:     "Eul",
	Ida:     "Ida",
	Ka:      "Ka",
	Ko:      "Ko",
	Myeo:    "Myeo",
	Na:      "Na",
	Nama:    "Nama",
	Neun:    "Neun",
	Ni:      "Ni",
	Rado:    "Rado",
	Ran:     "Ran",
	Rang:    "Rang",
	Raya:    "Raya",
	Yamalro: "Yamalro",
	Yeo:     "Yeo",
	Wa:      "Wa",
	Ro:      "Ro",
	Robuteo: "Robuteo",
	Roseo:   "Roseo",
	Rosseo:  "Rosseo",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "Other"
}

// Rule returns the conjugation rule of k.
func (k Kind) Rule() Rule {
	switch k {
	case Ro, Roseo, Rosseo, Robuteo:
		return RieulAndBlankSensitive
	case Deun, Deunji, Deunka, Eul, Ida, Ka, Ko, Myeo, Na, Nama, Neun, Ni,
		Rado, Ran, Rang, Raya, Yamalro, Yeo, Wa:
		return BlankSensitive
	default:
		return NoRule
	}
}

func (r Rule) String() string {
	switch r {
	case BlankSensitive:
		return "blank"
	case RieulAndBlankSensitive:
		return "rieul-and-blank"
	default:
		return "none"
	}
}

// Kinds returns every concrete kind, Other excluded.
func Kinds() []Kind {
	kinds := make([]Kind, 0, int(Rosseo))
	for k := Deun; k <= Rosseo; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}
