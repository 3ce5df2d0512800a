package recommend

// Translation tables for generated natural-language fields. Loaded once,
// read-only. Missing keys and unknown languages fall back to English;
// lookups never fail.
var translations = map[string]map[string]string{
	"en": {
		"why.title-exists":        "The title tag is what searchers see first; without one the page is effectively invisible in results.",
		"why.title-length":        "Search engines truncate titles past roughly 60 characters and under-weight very short ones.",
		"why.description-exists":  "Pages without a description get an auto-generated snippet that rarely sells the click.",
		"why.description-length":  "Snippets outside 120-160 characters get cut off or padded with page text.",
		"why.viewport-meta":       "Mobile-first indexing evaluates the mobile rendering; without a viewport tag it is broken.",
		"why.canonical-url":       "Duplicate URLs split ranking signals; the canonical consolidates them.",
		"why.charset-declared":    "An explicit charset avoids encoding misdetection and render-blocking re-parses.",
		"why.html-language":       "The lang attribute routes the page to the right language market.",
		"why.robots-meta":         "A stray noindex removes the page from results entirely.",
		"why.content-length":      "Thin pages lose to deeper coverage of the same topic.",
		"why.single-h1":           "One H1 tells crawlers what the single topic of the page is.",
		"why.heading-structure":   "A clean heading outline is how crawlers and readers skim structure.",
		"why.image-alt":           "Alt text is indexed; missing alt wastes image-search traffic and hurts accessibility.",
		"why.keyword-in-title":    "Title keywords are among the strongest on-page relevance signals.",
		"why.keyword-in-description": "Matched keywords are bolded in the snippet, lifting click-through.",
		"why.keyword-in-headings": "Heading keywords reinforce the topical focus of each section.",
		"why.keyword-density":     "Healthy density signals focus; stuffing triggers spam filters.",
		"why.keyword-in-first-paragraph": "Early keyword placement confirms the page delivers what the title promises.",
		"why.paragraph-length":    "Readers bounce from walls of text, and bounces depress rankings.",
		"why.semantic-structure":  "Landmark elements map the page layout for crawlers and assistive tech.",
		"why.internal-links":      "Internal links pass authority and surface crawl paths.",
		"why.external-links":      "Citing sources is a credibility signal readers and raters notice.",
		"why.descriptive-link-text": "Anchor text describes the target page; generic anchors waste that signal.",
		"why.image-present":       "Pages with imagery engage longer and appear in image results.",
		"why.readability-score":   "Content most visitors cannot comfortably read will not earn engagement signals.",
		"why.sentence-length":     "Long sentences raise cognitive load and push readers away.",
		"why.complex-words":       "Simple wording widens the audience without dumbing content down.",
		"why.paragraph-count":     "Paragraph breaks create the scannability web readers expect.",
		"why.generic":             "Fixing this issue removes a ranking handicap identified by the analysis.",

		"time.quick":       "5-15 minutes",
		"time.moderate":    "30-60 minutes",
		"time.significant": "2-4 hours",
	},
	"el": {
		"why.title-exists":       "Το title tag είναι το πρώτο που βλέπει ο χρήστης στα αποτελέσματα· χωρίς αυτό η σελίδα είναι ουσιαστικά αόρατη.",
		"why.title-length":       "Οι μηχανές αναζήτησης κόβουν τίτλους πάνω από 60 χαρακτήρες και υποβαθμίζουν τους πολύ σύντομους.",
		"why.description-exists": "Χωρίς meta description εμφανίζεται αυτόματο απόσπασμα που σπάνια προσελκύει κλικ.",
		"why.description-length": "Περιγραφές εκτός των 120-160 χαρακτήρων κόβονται ή συμπληρώνονται αυθαίρετα.",
		"why.viewport-meta":      "Η ευρετηρίαση mobile-first αξιολογεί την απόδοση σε κινητά· χωρίς viewport tag είναι προβληματική.",
		"why.content-length":     "Οι φτωχές σε περιεχόμενο σελίδες χάνουν από όσες καλύπτουν το θέμα σε βάθος.",
		"why.single-h1":          "Μία H1 επικεφαλίδα δηλώνει το μοναδικό θέμα της σελίδας.",
		"why.image-alt":          "Το εναλλακτικό κείμενο ευρετηριάζεται· χωρίς αυτό χάνεται η επισκεψιμότητα από την αναζήτηση εικόνων.",
		"why.keyword-in-title":   "Οι λέξεις-κλειδιά στον τίτλο είναι από τα ισχυρότερα σήματα συνάφειας.",
		"why.readability-score":  "Περιεχόμενο που δεν διαβάζεται άνετα δεν κερδίζει σήματα αλληλεπίδρασης.",
		"why.generic":            "Η διόρθωση αφαιρεί ένα μειονέκτημα κατάταξης που εντόπισε η ανάλυση.",

		"time.quick":       "5-15 λεπτά",
		"time.moderate":    "30-60 λεπτά",
		"time.significant": "2-4 ώρες",
	},
}

// tr resolves a translation key, falling back to English and finally to the
// key itself. Never fails.
func tr(lang, key string) string {
	if table, ok := translations[lang]; ok {
		if s, ok := table[key]; ok {
			return s
		}
	}
	if s, ok := translations["en"][key]; ok {
		return s
	}
	return key
}
