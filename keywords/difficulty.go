package keywords

import "strings"

// DifficultyResult is a local 0-100 ranking-difficulty estimate.
type DifficultyResult struct {
	Keyword    string `json:"keyword"`
	Difficulty int    `json:"difficulty"`
	Level      string `json:"level"`
}

// Difficulty estimates how hard a keyword is to rank for, from 0 (easy) to
// 100 (very hard). This is a LOCAL heuristic built from keyword shape,
// content depth and observed density; it reflects no live SERP or market
// data. An empty keyword yields a zero-valued result.
func Difficulty(keyword, content string) DifficultyResult {
	keyword = strings.TrimSpace(keyword)
	result := DifficultyResult{Keyword: keyword}
	keyToks := tokens(keyword)
	if len(keyToks) == 0 {
		result.Level = difficultyLevel(0)
		return result
	}

	score := 50

	// Head terms are crowded; long-tail phrases are not.
	switch len(keyToks) {
	case 1:
		score += 25
	case 2:
		score += 10
	case 3:
		// neutral
	default:
		score -= 15
	}

	// Very short keywords behave like head terms regardless of word count.
	if len([]rune(strings.Join(keyToks, ""))) < 5 {
		score += 10
	}

	// Thin content competes poorly, whatever the keyword.
	contentWords := len(tokens(content))
	switch {
	case contentWords == 0:
		score += 15
	case contentWords < 300:
		score += 10
	case contentWords > 1500:
		score -= 10
	}

	// Content already saturated with the keyword gains little from it.
	if d := Density(content, keyword); d.Density >= 2 {
		score -= 5
	}

	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	result.Difficulty = score
	result.Level = difficultyLevel(score)
	return result
}

func difficultyLevel(score int) string {
	switch {
	case score >= 75:
		return "very hard"
	case score >= 55:
		return "hard"
	case score >= 35:
		return "moderate"
	default:
		return "easy"
	}
}
