// Package readability computes language-aware readability scores for plain
// text: six independent formulas, a composite 0-100 score, and secondary
// SEO-oriented assessments. All functions are pure over aggregate counts.
package readability

import "strings"

// Language holds the per-language constants the tokenizer and formulas need.
// Tables are loaded once at startup and never mutated.
type Language struct {
	Code string
	Name string

	// Vowels drive the syllable heuristic. Diacritics are stripped before
	// lookup, so only base letters appear here.
	Vowels string

	// Flesch Reading Ease constants. The Greek set uses a lower syllable
	// weight because Greek words average more syllables than English ones.
	FleschBase     float64
	SentenceWeight float64
	SyllableWeight float64

	// WordsPerMinute is the average silent reading speed used for reading
	// time estimates.
	WordsPerMinute float64

	// Abbreviations that end with a period but do not terminate a sentence.
	// Stored lowercase without the trailing period.
	Abbreviations []string

	// SilentFinalE marks languages where a trailing 'e' is usually silent.
	SilentFinalE bool

	// QuestionMark is the language's question terminator when it differs
	// from '?'. Greek uses the semicolon.
	QuestionMark rune
}

var English = Language{
	Code:           "en",
	Name:           "English",
	Vowels:         "aeiouy",
	FleschBase:     206.835,
	SentenceWeight: 1.015,
	SyllableWeight: 84.6,
	WordsPerMinute: 238,
	Abbreviations: []string{
		"mr", "mrs", "ms", "dr", "prof", "sr", "jr", "st",
		"vs", "etc", "approx", "dept", "est", "fig", "inc", "no",
	},
	SilentFinalE: true,
}

var Greek = Language{
	Code:           "el",
	Name:           "Greek",
	Vowels:         "αεηιουω",
	FleschBase:     206.835,
	SentenceWeight: 1.015,
	SyllableWeight: 59.0,
	WordsPerMinute: 210,
	Abbreviations: []string{
		"κ", "κα", "δρ", "π.χ", "κλπ", "βλ", "σελ", "αρ",
	},
	SilentFinalE: false,
	QuestionMark: ';',
}

var languages = map[string]Language{
	"en": English,
	"el": Greek,
}

// ForCode returns the language configuration for an ISO code, falling back
// to English for unknown codes.
func ForCode(code string) Language {
	if lang, ok := languages[strings.ToLower(strings.TrimSpace(code))]; ok {
		return lang
	}
	return English
}

func (l Language) isVowel(r rune) bool {
	return strings.ContainsRune(l.Vowels, r)
}

func (l Language) isAbbreviation(word string) bool {
	word = strings.ToLower(strings.TrimSuffix(word, "."))
	for _, abbr := range l.Abbreviations {
		if word == abbr {
			return true
		}
	}
	return false
}
