package readability

import "math"

// Formula identifies one of the six supported readability formulas.
type Formula string

const (
	FleschReadingEase  Formula = "fleschReadingEase"
	FleschKincaidGrade Formula = "fleschKincaidGrade"
	GunningFog         Formula = "gunningFog"
	SMOG               Formula = "smog"
	ColemanLiau        Formula = "colemanLiau"
	ARI                Formula = "automatedReadabilityIndex"
)

// Formulas lists all six in their canonical reporting order.
var Formulas = []Formula{
	FleschReadingEase,
	FleschKincaidGrade,
	GunningFog,
	SMOG,
	ColemanLiau,
	ARI,
}

// Flesch computes the Flesch Reading Ease score on its native scale
// (higher is easier; English texts land roughly in 0-100).
func Flesch(s Stats, lang Language) float64 {
	if s.Sentences == 0 || s.Words == 0 {
		return 0
	}
	return lang.FleschBase -
		lang.SentenceWeight*s.AvgWordsPerSentence -
		lang.SyllableWeight*s.AvgSyllablesPerWord
}

// FleschKincaid computes the Flesch-Kincaid grade level.
func FleschKincaid(s Stats, _ Language) float64 {
	if s.Sentences == 0 || s.Words == 0 {
		return 0
	}
	return 0.39*s.AvgWordsPerSentence + 11.8*s.AvgSyllablesPerWord - 15.59
}

// Fog computes the Gunning Fog index (a grade level).
func Fog(s Stats, _ Language) float64 {
	if s.Sentences == 0 || s.Words == 0 {
		return 0
	}
	return 0.4 * (s.AvgWordsPerSentence + 100*float64(s.ComplexWords)/float64(s.Words))
}

// SMOGIndex computes the SMOG grade. The formula is calibrated for 30+
// sentence samples but degrades acceptably on shorter ones.
func SMOGIndex(s Stats, _ Language) float64 {
	if s.Sentences == 0 {
		return 0
	}
	return 1.0430*math.Sqrt(float64(s.Polysyllables)*30/float64(s.Sentences)) + 3.1291
}

// ColemanLiauIndex computes the Coleman-Liau grade from character counts.
func ColemanLiauIndex(s Stats, _ Language) float64 {
	if s.Words == 0 {
		return 0
	}
	l := float64(s.Characters) / float64(s.Words) * 100
	sPer100 := float64(s.Sentences) / float64(s.Words) * 100
	return 0.0588*l - 0.296*sPer100 - 15.8
}

// ARIIndex computes the Automated Readability Index grade.
func ARIIndex(s Stats, _ Language) float64 {
	if s.Sentences == 0 || s.Words == 0 {
		return 0
	}
	return 4.71*float64(s.Characters)/float64(s.Words) +
		0.5*s.AvgWordsPerSentence - 21.43
}

var formulaFuncs = map[Formula]func(Stats, Language) float64{
	FleschReadingEase:  Flesch,
	FleschKincaidGrade: FleschKincaid,
	GunningFog:         Fog,
	SMOG:               SMOGIndex,
	ColemanLiau:        ColemanLiauIndex,
	ARI:                ARIIndex,
}

// Raw evaluates one formula on its native scale.
func Raw(f Formula, s Stats, lang Language) float64 {
	fn, ok := formulaFuncs[f]
	if !ok {
		return 0
	}
	return fn(s, lang)
}
