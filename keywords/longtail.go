package keywords

import (
	"sort"
	"strings"
)

// Phrase is one generated long-tail candidate.
type Phrase struct {
	Text      string  `json:"text"`
	Frequency int     `json:"frequency"`
	Score     float64 `json:"score"`
}

// seedWindow is how far (in tokens) a phrase may sit from a seed occurrence
// and still count as co-occurring.
const seedWindow = 5

// LongTail derives 2-4 word phrases that co-occur with the seed keywords,
// filters them against the stop-word list and ranks them by
// frequency x seed-adjacency. Phrases containing a seed token score double
// adjacency. Empty content or seeds yield an empty slice.
func LongTail(content string, seeds []string, limit int) []Phrase {
	toks := tokens(content)
	seedSet := seedTokens(seeds)
	if len(toks) == 0 || len(seedSet) == 0 {
		return []Phrase{}
	}
	if limit <= 0 {
		limit = 10
	}

	seedPositions := []int{}
	for i, t := range toks {
		if seedSet[t] {
			seedPositions = append(seedPositions, i)
		}
	}
	if len(seedPositions) == 0 {
		return []Phrase{}
	}

	type candidate struct {
		freq      int
		adjacency float64
	}
	candidates := map[string]*candidate{}

	for n := 2; n <= 4; n++ {
		for i := 0; i+n <= len(toks); i++ {
			gram := toks[i : i+n]
			if !acceptGram(gram, seedSet) {
				continue
			}
			adjacency := gramAdjacency(i, n, gram, seedSet, seedPositions)
			if adjacency == 0 {
				continue
			}
			key := strings.Join(gram, " ")
			c, ok := candidates[key]
			if !ok {
				c = &candidate{}
				candidates[key] = c
			}
			c.freq++
			if adjacency > c.adjacency {
				c.adjacency = adjacency
			}
		}
	}

	phrases := make([]Phrase, 0, len(candidates))
	for text, c := range candidates {
		phrases = append(phrases, Phrase{
			Text:      text,
			Frequency: c.freq,
			Score:     float64(c.freq) * c.adjacency,
		})
	}
	sort.Slice(phrases, func(i, j int) bool {
		if phrases[i].Score != phrases[j].Score {
			return phrases[i].Score > phrases[j].Score
		}
		return phrases[i].Text < phrases[j].Text
	})
	if len(phrases) > limit {
		phrases = phrases[:limit]
	}
	return phrases
}

// acceptGram drops grams that start or end with a stop word or consist of
// stop words entirely.
func acceptGram(gram []string, seedSet map[string]bool) bool {
	if isStopword(gram[0]) || isStopword(gram[len(gram)-1]) {
		return false
	}
	content := 0
	for _, t := range gram {
		if !isStopword(t) {
			content++
		}
	}
	return content >= 2 || (content == 1 && seedSet[gram[0]])
}

// gramAdjacency is 2 when the gram itself contains a seed token, 1 when it
// lies within seedWindow tokens of a seed occurrence, 0 otherwise.
func gramAdjacency(start, n int, gram []string, seedSet map[string]bool, seedPositions []int) float64 {
	for _, t := range gram {
		if seedSet[t] {
			return 2
		}
	}
	for _, pos := range seedPositions {
		if pos >= start-seedWindow && pos <= start+n+seedWindow {
			return 1
		}
	}
	return 0
}

// seedTokens flattens seed keywords into a token set.
func seedTokens(seeds []string) map[string]bool {
	set := map[string]bool{}
	for _, seed := range seeds {
		for _, t := range tokens(seed) {
			set[t] = true
		}
	}
	return set
}
