package keywords

import (
	"sort"
	"strings"
)

// Cluster groups keywords that share a stem.
type Cluster struct {
	Name     string   `json:"name"`
	Stem     string   `json:"stem"`
	Keywords []string `json:"keywords"`
}

// Clusters groups keywords by the stem of their first non-stop-word token.
// Output is deterministic: clusters sort by name, members alphabetically,
// all ties broken alphabetically. Empty input yields an empty slice.
func Clusters(keywords []string) []Cluster {
	groups := map[string][]string{}

	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		stem := clusterKey(kw)
		if stem == "" {
			continue
		}
		groups[stem] = append(groups[stem], kw)
	}

	clusters := make([]Cluster, 0, len(groups))
	for stem, members := range groups {
		sort.Strings(members)
		// Dedupe while sorted.
		deduped := members[:0]
		for i, m := range members {
			if i == 0 || members[i-1] != m {
				deduped = append(deduped, m)
			}
		}
		clusters = append(clusters, Cluster{
			Name:     clusterName(deduped, stem),
			Stem:     stem,
			Keywords: deduped,
		})
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Name < clusters[j].Name
	})
	return clusters
}

// clusterKey picks the stem of the first non-stop-word token.
func clusterKey(keyword string) string {
	for _, t := range tokens(keyword) {
		if !isStopword(t) {
			return Stem(t)
		}
	}
	toks := tokens(keyword)
	if len(toks) == 0 {
		return ""
	}
	return Stem(toks[0])
}

// clusterName is the representative term: the alphabetically first member's
// leading token, which keeps naming stable across runs.
func clusterName(members []string, stem string) string {
	if len(members) == 0 {
		return stem
	}
	toks := tokens(members[0])
	if len(toks) == 0 {
		return stem
	}
	return toks[0]
}

var stemSuffixes = []string{"ingly", "edly", "fully", "ations", "ation", "ness", "ments", "ment", "ings", "ing", "ies", "ers", "ed", "es", "er", "ly", "s"}

// Stem strips common English suffixes. It is intentionally crude: clustering
// needs stable grouping keys, not linguistic correctness.
func Stem(token string) string {
	if len(token) <= 3 {
		return token
	}
	for _, suffix := range stemSuffixes {
		if strings.HasSuffix(token, suffix) && len(token)-len(suffix) >= 3 {
			return token[:len(token)-len(suffix)]
		}
	}
	return token
}
