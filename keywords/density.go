// Package keywords provides keyword analysis services: density, long-tail
// generation, clustering, LSI-style suggestions and a local difficulty
// heuristic. All functions are pure; empty input yields empty structured
// results, never an error.
//
// Two tokenizers are at work and both are deliberate. Density denominators
// split text on runs of non-letter, non-digit characters, keeping the empty
// trailing field produced when text ends in punctuation; this preserves the
// original system's word counting ("SEO is great. SEO rules." counts 6).
// Keyword matching compares case-folded letter-run tokens, so "SEO." still
// matches the keyword "seo" as a whole word.
package keywords

import (
	"math"
	"regexp"
	"strings"
	"unicode"
)

// DensityResult reports whole-word occurrences of one keyword.
type DensityResult struct {
	Keyword   string  `json:"keyword"`
	Count     int     `json:"count"`
	Density   float64 `json:"density"`
	WordCount int     `json:"wordCount"`
	Bucket    string  `json:"bucket"`
}

var nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// densityWordCount counts split fields including boundary empties, matching
// the original counting behavior documented in the package comment.
func densityWordCount(text string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return len(nonWordRe.Split(text, -1))
}

// tokens returns lowercased letter/digit runs.
func tokens(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	for i, f := range fields {
		fields[i] = strings.ToLower(f)
	}
	return fields
}

// Density counts whole-word, case-insensitive occurrences of keyword in
// text. Multi-word keywords match as consecutive token sequences.
// Empty text or keyword yields a zero-valued result.
func Density(text, keyword string) DensityResult {
	result := DensityResult{Keyword: keyword, Bucket: BucketFor(0)}

	keyTokens := tokens(keyword)
	if strings.TrimSpace(text) == "" || len(keyTokens) == 0 {
		return result
	}

	textTokens := tokens(text)
	result.WordCount = densityWordCount(text)

	for i := 0; i+len(keyTokens) <= len(textTokens); i++ {
		match := true
		for j, kt := range keyTokens {
			if textTokens[i+j] != kt {
				match = false
				break
			}
		}
		if match {
			result.Count++
		}
	}

	if result.WordCount > 0 {
		result.Density = math.Round(float64(result.Count)/float64(result.WordCount)*100*100) / 100
	}
	result.Bucket = BucketFor(result.Density)
	return result
}

// AllDensities maps Density over a keyword list. An empty list yields an
// empty slice, not an error.
func AllDensities(text string, keywords []string) []DensityResult {
	results := make([]DensityResult, 0, len(keywords))
	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" {
			continue
		}
		results = append(results, Density(text, k))
	}
	return results
}

// BucketFor assigns the qualitative density bucket: high >= 2%,
// medium 1-2%, low < 1%.
func BucketFor(density float64) string {
	switch {
	case density >= 2:
		return "high"
	case density >= 1:
		return "medium"
	default:
		return "low"
	}
}
