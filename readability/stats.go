package readability

import (
	"unicode"
)

// Stats holds the aggregate counts every formula is a pure function of.
type Stats struct {
	Sentences     int `json:"sentences"`
	Words         int `json:"words"`
	Syllables     int `json:"syllables"`
	Characters    int `json:"characters"` // letters and digits only
	ComplexWords  int `json:"complexWords"`
	Polysyllables int `json:"polysyllables"`
	Paragraphs    int `json:"paragraphs"`
	LongestWord   int `json:"longestWord"`

	AvgWordsPerSentence   float64 `json:"avgWordsPerSentence"`
	AvgSyllablesPerWord   float64 `json:"avgSyllablesPerWord"`
	AvgWordsPerParagraph  float64 `json:"avgWordsPerParagraph"`
	SentenceLengths       []int   `json:"-"`
}

// Analyze tokenizes text once and returns the aggregate counts shared by all
// formulas, assessments and mini-services.
func Analyze(text string, lang Language) Stats {
	var s Stats

	sentences := Sentences(text, lang)
	s.Sentences = len(sentences)
	s.SentenceLengths = make([]int, 0, len(sentences))
	for _, sentence := range sentences {
		s.SentenceLengths = append(s.SentenceLengths, len(Words(sentence)))
	}

	words := Words(text)
	s.Words = len(words)
	for _, word := range words {
		syl := Syllables(word, lang)
		s.Syllables += syl
		if syl >= 3 {
			s.ComplexWords++
			s.Polysyllables++
		}
		chars := 0
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				chars++
			}
		}
		s.Characters += chars
		if chars > s.LongestWord {
			s.LongestWord = chars
		}
	}

	s.Paragraphs = len(SplitParagraphs(text))

	if s.Sentences > 0 {
		s.AvgWordsPerSentence = float64(s.Words) / float64(s.Sentences)
	}
	if s.Words > 0 {
		s.AvgSyllablesPerWord = float64(s.Syllables) / float64(s.Words)
	}
	if s.Paragraphs > 0 {
		s.AvgWordsPerParagraph = float64(s.Words) / float64(s.Paragraphs)
	}
	return s
}

// ReadingTimeMinutes estimates silent reading time for the counted words.
func (s Stats) ReadingTimeMinutes(lang Language) float64 {
	if lang.WordsPerMinute <= 0 {
		return 0
	}
	return float64(s.Words) / lang.WordsPerMinute
}
