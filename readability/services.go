package readability

import "fmt"

// The six mini-services below are thin compositions over Analyze, Scores and
// Composite. Each produces numbers identical to the equivalent slice of a
// full analysis for the same input.

// Overview summarizes a text in one call: counts, composite and reading time.
type Overview struct {
	Language           string  `json:"language"`
	Stats              Stats   `json:"stats"`
	Composite          float64 `json:"composite"`
	Level              string  `json:"level"`
	ReadingTimeMinutes float64 `json:"readingTimeMinutes"`
}

func GetOverview(text, langCode string) Overview {
	lang := ForCode(langCode)
	s := Analyze(text, lang)
	composite := Composite(s, lang)
	return Overview{
		Language:           lang.Code,
		Stats:              s,
		Composite:          composite,
		Level:              LevelFor(composite),
		ReadingTimeMinutes: round2(s.ReadingTimeMinutes(lang)),
	}
}

// Structure reports the sentence and paragraph shape of a text.
type Structure struct {
	Language          string  `json:"language"`
	Sentences         int     `json:"sentences"`
	Paragraphs        int     `json:"paragraphs"`
	AvgSentenceLength float64 `json:"avgSentenceLength"`
	ShortSentences    int     `json:"shortSentences"`  // < 10 words
	MediumSentences   int     `json:"mediumSentences"` // 10-24 words
	LongSentences     int     `json:"longSentences"`   // >= 25 words
	LongestSentence   int     `json:"longestSentence"`
}

func GetStructure(text, langCode string) Structure {
	lang := ForCode(langCode)
	s := Analyze(text, lang)
	out := Structure{
		Language:          lang.Code,
		Sentences:         s.Sentences,
		Paragraphs:        s.Paragraphs,
		AvgSentenceLength: round2(s.AvgWordsPerSentence),
	}
	for _, n := range s.SentenceLengths {
		switch {
		case n < 10:
			out.ShortSentences++
		case n < 25:
			out.MediumSentences++
		default:
			out.LongSentences++
		}
		if n > out.LongestSentence {
			out.LongestSentence = n
		}
	}
	return out
}

// ReadingLevels exposes all six formulas, raw and normalized.
type ReadingLevels struct {
	Language  string         `json:"language"`
	Scores    []FormulaScore `json:"scores"`
	Composite float64        `json:"composite"`
	Level     string         `json:"level"`
}

func GetReadingLevels(text, langCode string) ReadingLevels {
	lang := ForCode(langCode)
	s := Analyze(text, lang)
	composite := Composite(s, lang)
	return ReadingLevels{
		Language:  lang.Code,
		Scores:    Scores(s, lang),
		Composite: composite,
		Level:     LevelFor(composite),
	}
}

// Improvement is one concrete, ordered suggestion.
type Improvement struct {
	Priority int    `json:"priority"`
	Message  string `json:"message"`
}

// GetImprovements derives ordered suggestions from the same thresholds the
// assessments use. Empty text yields an empty list.
func GetImprovements(text, langCode string) []Improvement {
	lang := ForCode(langCode)
	s := Analyze(text, lang)
	improvements := []Improvement{}
	if s.Words == 0 {
		return improvements
	}

	add := func(msg string) {
		improvements = append(improvements, Improvement{Priority: len(improvements) + 1, Message: msg})
	}

	if s.AvgWordsPerSentence > 25 {
		add(fmt.Sprintf("Average sentence length is %.0f words; aim for under 20 by splitting long sentences.", s.AvgWordsPerSentence))
	}
	if s.Words > 0 {
		ratio := float64(s.ComplexWords) / float64(s.Words) * 100
		if ratio > 15 {
			add(fmt.Sprintf("%.0f%% of words have three or more syllables; prefer simpler alternatives.", ratio))
		}
	}
	if s.AvgWordsPerParagraph > 150 {
		add("Paragraphs average over 150 words; break them up for scannability.")
	}
	if s.Paragraphs <= 1 && s.Words > 200 {
		add("The text is one continuous block; add paragraph breaks and headings.")
	}
	if composite := Composite(s, lang); composite < 50 {
		add(fmt.Sprintf("Overall readability is %.0f/100; shorter sentences and simpler words raise it fastest.", composite))
	}
	return improvements
}

// Guidance is language-specific writing advice, static per language.
type Guidance struct {
	Language       string   `json:"language"`
	WordsPerMinute float64  `json:"wordsPerMinute"`
	Tips           []string `json:"tips"`
}

var guidanceTips = map[string][]string{
	"en": {
		"Aim for a Flesch Reading Ease of 60 or higher for general audiences.",
		"Keep sentences under 20 words and paragraphs under 150.",
		"Prefer short Anglo-Saxon words over Latinate ones where meaning allows.",
	},
	"el": {
		"Τα ελληνικά κείμενα έχουν κατά μέσο όρο περισσότερες συλλαβές ανά λέξη· προτιμήστε μικρές προτάσεις.",
		"Κρατήστε τις προτάσεις κάτω από 20 λέξεις και τις παραγράφους κάτω από 150.",
		"Αποφύγετε μακροσκελείς δευτερεύουσες προτάσεις όπου είναι δυνατόν.",
	},
}

func GetLanguageGuidance(langCode string) Guidance {
	lang := ForCode(langCode)
	tips, ok := guidanceTips[lang.Code]
	if !ok {
		tips = guidanceTips["en"]
	}
	return Guidance{Language: lang.Code, WordsPerMinute: lang.WordsPerMinute, Tips: tips}
}

// LiveScore is the minimal payload for as-you-type scoring.
type LiveScore struct {
	Composite float64 `json:"composite"`
	Level     string  `json:"level"`
	Words     int     `json:"words"`
	Sentences int     `json:"sentences"`
}

func GetLiveScore(text, langCode string) LiveScore {
	lang := ForCode(langCode)
	s := Analyze(text, lang)
	composite := Composite(s, lang)
	return LiveScore{
		Composite: composite,
		Level:     LevelFor(composite),
		Words:     s.Words,
		Sentences: s.Sentences,
	}
}
