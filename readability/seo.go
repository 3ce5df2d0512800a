package readability

import "strings"

// StructureSignals carries the structural facts the SEO assessments need
// beyond raw text statistics. Callers fill it from the parsed document.
type StructureSignals struct {
	HeadingCount   int  `json:"headingCount"`
	ParagraphCount int  `json:"paragraphCount"`
	HasLists       bool `json:"hasLists"`
}

// Assessment is one rule-based SEO-oriented scoring. Each assessment is
// independent and additive; none multiplies into another.
type Assessment struct {
	Name  string   `json:"name"`
	Score int      `json:"score"` // 0-100
	Level string   `json:"level"`
	Notes []string `json:"notes,omitempty"`
}

// Crawlability scores how well the text is segmented for crawlers: enough
// headings for the volume of text and digestible paragraphs.
func Crawlability(s Stats, sig StructureSignals) Assessment {
	a := Assessment{Name: "crawlability", Score: 100}

	if s.Words > 300 && sig.HeadingCount == 0 {
		a.Score -= 40
		a.Notes = append(a.Notes, "long content without any headings")
	} else if s.Words > 0 && sig.HeadingCount > 0 {
		wordsPerHeading := float64(s.Words) / float64(sig.HeadingCount)
		if wordsPerHeading > 400 {
			a.Score -= 20
			a.Notes = append(a.Notes, "headings are spaced too far apart")
		}
	}
	if s.AvgWordsPerParagraph > 150 {
		a.Score -= 30
		a.Notes = append(a.Notes, "paragraphs average over 150 words")
	}
	if sig.ParagraphCount <= 1 && s.Words > 200 {
		a.Score -= 20
		a.Notes = append(a.Notes, "content is a single block of text")
	}

	a.Score = clampInt(a.Score)
	a.Level = LevelFor(float64(a.Score))
	return a
}

// Engagement scores sentence variety and overall reading commitment.
func Engagement(s Stats, lang Language) Assessment {
	a := Assessment{Name: "engagement", Score: 100}

	if s.AvgWordsPerSentence > 25 {
		a.Score -= 30
		a.Notes = append(a.Notes, "sentences average over 25 words")
	}
	if sentenceVariety(s.SentenceLengths) < 3 && s.Sentences >= 5 {
		a.Score -= 20
		a.Notes = append(a.Notes, "sentence lengths are monotonous")
	}
	if minutes := s.ReadingTimeMinutes(lang); minutes > 15 {
		a.Score -= 20
		a.Notes = append(a.Notes, "reading time exceeds 15 minutes")
	} else if minutes < 0.5 && s.Words > 0 {
		a.Score -= 10
		a.Notes = append(a.Notes, "content may be too thin to hold attention")
	}

	a.Score = clampInt(a.Score)
	a.Level = LevelFor(float64(a.Score))
	return a
}

// MobileFriendliness scores whether the prose reads well on small screens,
// where long sentences and paragraphs are punishing.
func MobileFriendliness(s Stats) Assessment {
	a := Assessment{Name: "mobileFriendliness", Score: 100}

	if s.AvgWordsPerSentence > 20 {
		a.Score -= 25
		a.Notes = append(a.Notes, "sentences run long for small screens")
	}
	if s.AvgWordsPerParagraph > 100 {
		a.Score -= 25
		a.Notes = append(a.Notes, "paragraphs form walls of text on mobile")
	}
	if s.LongestWord > 20 {
		a.Score -= 10
		a.Notes = append(a.Notes, "very long words may overflow narrow viewports")
	}

	a.Score = clampInt(a.Score)
	a.Level = LevelFor(float64(a.Score))
	return a
}

// VoiceSearchReadiness scores conversational qualities: questions and
// short, answer-shaped sentences.
func VoiceSearchReadiness(text string, s Stats, lang Language) Assessment {
	a := Assessment{Name: "voiceSearchReadiness", Score: 50}

	if countQuestions(text, lang) > 0 {
		a.Score += 25
	} else {
		a.Notes = append(a.Notes, "no question phrasing found")
	}
	if s.AvgWordsPerSentence > 0 && s.AvgWordsPerSentence <= 18 {
		a.Score += 25
	} else if s.AvgWordsPerSentence > 18 {
		a.Notes = append(a.Notes, "answers should fit in short sentences")
	}

	a.Score = clampInt(a.Score)
	a.Level = LevelFor(float64(a.Score))
	return a
}

// SnippetPotential scores the odds of a featured-snippet extraction:
// answer-length paragraphs near 40-60 words and list structure.
func SnippetPotential(s Stats, sig StructureSignals, paragraphs []string) Assessment {
	a := Assessment{Name: "snippetPotential", Score: 40}

	for _, p := range paragraphs {
		n := len(Words(p))
		if n >= 40 && n <= 60 {
			a.Score += 30
			break
		}
	}
	if sig.HasLists {
		a.Score += 20
	} else {
		a.Notes = append(a.Notes, "lists improve snippet extraction odds")
	}
	if sig.HeadingCount >= 2 {
		a.Score += 10
	}

	a.Score = clampInt(a.Score)
	a.Level = LevelFor(float64(a.Score))
	return a
}

// Assessments runs all five secondary scorings.
func Assessments(text string, s Stats, sig StructureSignals, lang Language) []Assessment {
	return []Assessment{
		Crawlability(s, sig),
		Engagement(s, lang),
		MobileFriendliness(s),
		VoiceSearchReadiness(text, s, lang),
		SnippetPotential(s, sig, SplitParagraphs(text)),
	}
}

func sentenceVariety(lengths []int) int {
	if len(lengths) == 0 {
		return 0
	}
	min, max := lengths[0], lengths[0]
	for _, l := range lengths {
		if l < min {
			min = l
		}
		if l > max {
			max = l
		}
	}
	return max - min
}

func countQuestions(text string, lang Language) int {
	n := strings.Count(text, "?")
	if lang.QuestionMark != 0 {
		n += strings.Count(text, string(lang.QuestionMark))
	}
	return n
}

func clampInt(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
