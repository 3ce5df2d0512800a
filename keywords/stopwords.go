package keywords

// Stop-word sets for the supported languages. Loaded once, read-only.
var stopwords = map[string]map[string]bool{
	"en": wordSet(
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "could",
		"did", "do", "does", "doing", "down", "during", "each", "few", "for",
		"from", "further", "had", "has", "have", "having", "he", "her", "here",
		"hers", "him", "his", "how", "i", "if", "in", "into", "is", "it",
		"its", "just", "me", "more", "most", "my", "no", "nor", "not", "now",
		"of", "off", "on", "once", "only", "or", "other", "our", "out",
		"over", "own", "same", "she", "should", "so", "some", "such", "than",
		"that", "the", "their", "them", "then", "there", "these", "they",
		"this", "those", "through", "to", "too", "under", "until", "up",
		"very", "was", "we", "were", "what", "when", "where", "which",
		"while", "who", "whom", "why", "will", "with", "would", "you",
		"your", "yours",
	),
	"el": wordSet(
		"ο", "η", "το", "οι", "τα", "του", "της", "των", "τον", "την", "και",
		"κι", "με", "σε", "για", "από", "προς", "κατά", "μετά", "χωρίς",
		"ως", "να", "θα", "δεν", "μην", "είναι", "ήταν", "έχει", "έχουν",
		"που", "πως", "ότι", "αν", "αλλά", "όμως", "ενώ", "στο", "στη",
		"στην", "στον", "στα", "στις", "στους", "μια", "ένα", "ένας", "αυτό",
		"αυτή", "αυτός", "εγώ", "εσύ", "εμείς", "πολύ", "πιο", "κάθε",
	),
}

func wordSet(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// isStopword reports whether token is a stop word in either supported
// language; keyword heuristics should never surface these.
func isStopword(token string) bool {
	return stopwords["en"][token] || stopwords["el"][token]
}
