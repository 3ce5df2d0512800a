package readability

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Words returns the word tokens of text: maximal runs of letters, digits and
// apostrophes. Punctuation is discarded.
func Words(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '\'' && r != '’'
	})
}

// Sentences splits text on terminal punctuation (. ! ? … plus the language's
// own question mark), guarding against common abbreviations so "Dr. Smith"
// stays one sentence. Empty segments are dropped.
func Sentences(text string, lang Language) []string {
	var sentences []string
	var current strings.Builder

	runes := []rune(text)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)

		if !isTerminal(r, lang) {
			continue
		}
		if r == '.' && endsWithAbbreviation(current.String(), lang) {
			continue
		}
		// Swallow trailing quote/bracket and any repeated terminators.
		for i+1 < len(runes) && (isTerminal(runes[i+1], lang) || runes[i+1] == '"' || runes[i+1] == ')') {
			i++
			current.WriteRune(runes[i])
		}
		if s := strings.TrimSpace(current.String()); s != "" && len(Words(s)) > 0 {
			sentences = append(sentences, s)
		}
		current.Reset()
	}
	if s := strings.TrimSpace(current.String()); s != "" && len(Words(s)) > 0 {
		sentences = append(sentences, s)
	}
	return sentences
}

func isTerminal(r rune, lang Language) bool {
	if r == '.' || r == '!' || r == '?' || r == '…' {
		return true
	}
	return lang.QuestionMark != 0 && r == lang.QuestionMark
}

func endsWithAbbreviation(segment string, lang Language) bool {
	words := strings.Fields(segment)
	if len(words) == 0 {
		return false
	}
	last := words[len(words)-1]
	// Single letters followed by a period ("J. Smith") are initials.
	if len([]rune(strings.TrimSuffix(last, "."))) == 1 {
		return true
	}
	return lang.isAbbreviation(last)
}

// SplitParagraphs splits text on blank-line boundaries. Consecutive
// non-empty lines belong to the same paragraph.
func SplitParagraphs(text string) []string {
	var paragraphs []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			paragraphs = append(paragraphs, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return paragraphs
}

// Syllables estimates the syllable count of a word by counting vowel groups
// after stripping diacritics. Always at least 1 for a non-empty word.
func Syllables(word string, lang Language) int {
	word = stripDiacritics(strings.ToLower(word))
	if word == "" {
		return 0
	}

	count := 0
	prevVowel := false
	for _, r := range word {
		vowel := lang.isVowel(r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}

	// English final silent 'e' rarely adds a syllable ("make", "online").
	if lang.SilentFinalE && count > 1 && strings.HasSuffix(word, "e") && !strings.HasSuffix(word, "le") {
		count--
	}
	if count < 1 {
		count = 1
	}
	return count
}

// stripDiacritics removes combining marks so accented vowels (Greek tonos,
// French accents) match the base vowel sets.
func stripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	for _, r := range decomposed {
		if unicode.Is(unicode.Mn, r) {
			continue
		}
		// Greek final sigma folds to sigma for consistency.
		if r == 'ς' {
			r = 'σ'
		}
		b.WriteRune(r)
	}
	return b.String()
}
