package keywords

import (
	"sort"
)

// Term is one suggested related term with its corpus frequency.
type Term struct {
	Term      string `json:"term"`
	Frequency int    `json:"frequency"`
}

// minTermLength filters noise tokens out of LSI candidates.
const minTermLength = 4

// LSI extracts candidate related terms from content: noun-phrase-like
// tokens (single words of 4+ letters and adjacent non-stop-word bigrams),
// stop-word filtered, excluding the seeds themselves, ranked by frequency
// with alphabetical tie-breaks. This is a local heuristic, not true
// latent-semantic-indexing math. Empty content yields an empty slice.
func LSI(content string, seeds []string, limit int) []Term {
	toks := tokens(content)
	if len(toks) == 0 {
		return []Term{}
	}
	if limit <= 0 {
		limit = 10
	}
	seedSet := seedTokens(seeds)

	freq := map[string]int{}
	for i, t := range toks {
		if isStopword(t) || len([]rune(t)) < minTermLength || seedSet[t] {
			continue
		}
		freq[t]++

		// Adjacent non-stop pairs approximate noun phrases.
		if i+1 < len(toks) {
			next := toks[i+1]
			if !isStopword(next) && len([]rune(next)) >= minTermLength && !seedSet[next] {
				freq[t+" "+next]++
			}
		}
	}

	terms := make([]Term, 0, len(freq))
	for t, n := range freq {
		terms = append(terms, Term{Term: t, Frequency: n})
	}
	sort.Slice(terms, func(i, j int) bool {
		if terms[i].Frequency != terms[j].Frequency {
			return terms[i].Frequency > terms[j].Frequency
		}
		return terms[i].Term < terms[j].Term
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}
