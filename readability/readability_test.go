package readability

import (
	"testing"
)

const sample = "The quick brown fox jumps over the lazy dog. " +
	"It was a bright cold day in April, and the clocks were striking thirteen. " +
	"Simple words help people read fast."

func TestAnalyzeCounts(t *testing.T) {
	s := Analyze("One two three. Four five.", English)

	if s.Sentences != 2 {
		t.Errorf("Expected 2 sentences, got %d", s.Sentences)
	}
	if s.Words != 5 {
		t.Errorf("Expected 5 words, got %d", s.Words)
	}
	if s.AvgWordsPerSentence != 2.5 {
		t.Errorf("Expected avg 2.5 words/sentence, got %f", s.AvgWordsPerSentence)
	}
}

func TestSentencesAbbreviationGuard(t *testing.T) {
	sentences := Sentences("Dr. Smith arrived early. He left at noon.", English)
	if len(sentences) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %v", len(sentences), sentences)
	}
}

func TestSentencesGreekQuestionMark(t *testing.T) {
	sentences := Sentences("Τι ώρα είναι; Είναι μεσημέρι.", Greek)
	if len(sentences) != 2 {
		t.Errorf("Expected 2 sentences with Greek question mark, got %d: %v", len(sentences), sentences)
	}
}

func TestSyllables(t *testing.T) {
	cases := []struct {
		word string
		lang Language
		want int
	}{
		{"cat", English, 1},
		{"reading", English, 2},
		{"beautiful", English, 3},
		{"online", English, 2}, // silent final e
		{"table", English, 2},  // -le keeps its syllable
		{"a", English, 1},
		{"καλημέρα", Greek, 4},
		{"νερό", Greek, 2},
	}
	for _, c := range cases {
		if got := Syllables(c.word, c.lang); got != c.want {
			t.Errorf("Syllables(%q, %s) = %d, want %d", c.word, c.lang.Code, got, c.want)
		}
	}
}

func TestFleschRange(t *testing.T) {
	s := Analyze(sample, English)
	raw := Flesch(s, English)
	if raw < 0 || raw > 120 {
		t.Errorf("Flesch score out of plausible range: %f", raw)
	}
	// Simple prose should read as standard or easier.
	if norm := Normalize(FleschReadingEase, raw); norm < 50 {
		t.Errorf("Expected normalized Flesch >= 50 for simple prose, got %f", norm)
	}
}

func TestFormulasZeroOnEmpty(t *testing.T) {
	s := Analyze("", English)
	for _, f := range Formulas {
		if got := Raw(f, s, English); got != 0 {
			t.Errorf("Formula %s should be 0 on empty text, got %f", f, got)
		}
	}
	if got := Composite(s, English); got != 0 {
		t.Errorf("Composite should be 0 on empty text, got %f", got)
	}
}

func TestCompositeBounds(t *testing.T) {
	for _, text := range []string{sample, "Short.", "Incomprehensibilities notwithstanding, multisyllabic terminological constructions overcomplicate comprehension."} {
		got := Composite(Analyze(text, English), English)
		if got < 0 || got > 100 {
			t.Errorf("Composite out of bounds for %q: %f", text, got)
		}
	}
}

func TestCompositeWhitespaceInvariance(t *testing.T) {
	base := Composite(Analyze(sample, English), English)
	spaced := Composite(Analyze("  "+sample+"\n\n", English), English)
	doubled := Composite(Analyze(sampleWithDoubleSpaces(), English), English)

	if base != spaced {
		t.Errorf("Trailing whitespace changed composite: %f vs %f", base, spaced)
	}
	if base != doubled {
		t.Errorf("Double spaces changed composite: %f vs %f", base, doubled)
	}

	// Removing sentences must change the score inputs.
	if s := Analyze("The quick brown fox jumps over the lazy dog.", English); s.Sentences == Analyze(sample, English).Sentences {
		t.Error("Sentence count should differ after removing sentences")
	}
}

func sampleWithDoubleSpaces() string {
	out := ""
	for _, r := range sample {
		out += string(r)
		if r == ' ' {
			out += " "
		}
	}
	return out
}

func TestCompositeWeightsPinned(t *testing.T) {
	if len(CompositeWeights) != 6 {
		t.Fatalf("Expected 6 composite weights, got %d", len(CompositeWeights))
	}
	for f, w := range CompositeWeights {
		if w != 1 {
			t.Errorf("Weight for %s changed from uniform: %f", f, w)
		}
	}
}

func TestMiniServicesMatchFullAnalysis(t *testing.T) {
	lang := English
	s := Analyze(sample, lang)
	composite := Composite(s, lang)

	overview := GetOverview(sample, "en")
	if overview.Composite != composite {
		t.Errorf("Overview composite %f != full analysis %f", overview.Composite, composite)
	}
	if overview.Stats.Words != s.Words || overview.Stats.Sentences != s.Sentences {
		t.Errorf("Overview stats diverge: %+v vs %+v", overview.Stats, s)
	}

	levels := GetReadingLevels(sample, "en")
	if levels.Composite != composite {
		t.Errorf("ReadingLevels composite %f != full analysis %f", levels.Composite, composite)
	}

	live := GetLiveScore(sample, "en")
	if live.Composite != composite || live.Words != s.Words {
		t.Errorf("LiveScore diverges: %+v", live)
	}

	structure := GetStructure(sample, "en")
	if structure.Sentences != s.Sentences {
		t.Errorf("Structure sentence count %d != %d", structure.Sentences, s.Sentences)
	}
	if structure.ShortSentences+structure.MediumSentences+structure.LongSentences != s.Sentences {
		t.Error("Sentence length buckets do not sum to sentence count")
	}
}

func TestLanguageFallback(t *testing.T) {
	if got := ForCode("fr"); got.Code != "en" {
		t.Errorf("Unknown language should fall back to English, got %s", got.Code)
	}
	if got := ForCode("EL"); got.Code != "el" {
		t.Errorf("Language codes should be case-insensitive, got %s", got.Code)
	}
}

func TestImprovementsEmptyText(t *testing.T) {
	if got := GetImprovements("", "en"); len(got) != 0 {
		t.Errorf("Expected no improvements for empty text, got %v", got)
	}
}

func TestImprovementsLongSentences(t *testing.T) {
	long := "This sentence keeps going and going with many additional clauses and extra words that stretch it far beyond any reasonable length for comfortable reading by anyone at all on any device whatsoever."
	improvements := GetImprovements(long, "en")
	if len(improvements) == 0 {
		t.Fatal("Expected at least one improvement for a very long sentence")
	}
	for i, imp := range improvements {
		if imp.Priority != i+1 {
			t.Errorf("Improvement %d has priority %d", i, imp.Priority)
		}
	}
}

func TestAssessmentsBounds(t *testing.T) {
	s := Analyze(sample, English)
	sig := StructureSignals{HeadingCount: 2, ParagraphCount: 3, HasLists: true}
	for _, a := range Assessments(sample, s, sig, English) {
		if a.Score < 0 || a.Score > 100 {
			t.Errorf("Assessment %s out of bounds: %d", a.Name, a.Score)
		}
		if a.Level == "" {
			t.Errorf("Assessment %s missing level", a.Name)
		}
	}
}

func TestGuidanceFallback(t *testing.T) {
	g := GetLanguageGuidance("el")
	if g.Language != "el" || len(g.Tips) == 0 {
		t.Errorf("Greek guidance missing: %+v", g)
	}
	g = GetLanguageGuidance("de")
	if g.Language != "en" {
		t.Errorf("Unknown language guidance should fall back to English, got %s", g.Language)
	}
}
