package rules

import (
	"fmt"
	"strings"

	"github.com/pagegrade/backend/keywords"
)

// Registry is the immutable rule catalogue, grouped by category with stable
// in-category order. Build it once at startup with NewRegistry.
type Registry struct {
	byCategory map[string][]Rule
	byID       map[string]Rule
}

// NewRegistry builds the full catalogue.
func NewRegistry() *Registry {
	r := &Registry{
		byCategory: make(map[string][]Rule),
		byID:       make(map[string]Rule),
	}
	for _, rule := range catalogue() {
		r.byCategory[rule.Category] = append(r.byCategory[rule.Category], rule)
		r.byID[rule.ID] = rule
	}
	return r
}

// ForCategory returns the rules of one category in registration order.
func (r *Registry) ForCategory(category string) []Rule {
	return r.byCategory[category]
}

// ByID looks up a rule.
func (r *Registry) ByID(id string) (Rule, bool) {
	rule, ok := r.byID[id]
	return rule, ok
}

// All returns every rule in evaluation order.
func (r *Registry) All() []Rule {
	var all []Rule
	for _, category := range Categories {
		all = append(all, r.byCategory[category]...)
	}
	return all
}

// Len reports the catalogue size.
func (r *Registry) Len() int {
	return len(r.byID)
}

func hasKeywordIn(text string, keywordList []string) bool {
	lower := strings.ToLower(text)
	for _, k := range keywordList {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" && strings.Contains(lower, k) {
			return true
		}
	}
	return false
}

// catalogue defines every rule. Order within a category is the evaluation
// and tie-break order, so append new rules at the end of their category.
func catalogue() []Rule {
	return []Rule{
		// --- meta ---
		{
			ID: "title-exists", Category: CategoryMeta, Weight: 3, Severity: SeverityCritical,
			Title:       "Page title is missing",
			Description: "Every page needs a title tag; it is the strongest on-page relevance signal.",
			Check: func(c *Content) CheckResult {
				if strings.TrimSpace(c.Title) == "" {
					return CheckResult{Message: "no title provided"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Add a unique, descriptive title tag to the page"},
		},
		{
			ID: "title-length", Category: CategoryMeta, Weight: 2, Severity: SeverityHigh,
			Title:       "Title length outside 30-60 characters",
			Description: "Titles under 30 characters waste space; over 60 they are truncated in results.",
			Check: func(c *Content) CheckResult {
				n := len(strings.TrimSpace(c.Title))
				if n == 0 {
					return CheckResult{Message: "no title to measure"}
				}
				if n < 30 {
					return CheckResult{Message: fmt.Sprintf("title is %d characters, below 30", n)}
				}
				if n > 60 {
					return CheckResult{Message: fmt.Sprintf("title is %d characters, above 60", n)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Keep the title between 30 and 60 characters"},
		},
		{
			ID: "description-exists", Category: CategoryMeta, Weight: 3, Severity: SeverityCritical,
			Title:       "Meta description is missing",
			Description: "The meta description is the snippet search engines prefer to show.",
			Check: func(c *Content) CheckResult {
				if strings.TrimSpace(c.Description) == "" {
					return CheckResult{Message: "no meta description provided"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Write a meta description summarizing the page"},
		},
		{
			ID: "description-length", Category: CategoryMeta, Weight: 2, Severity: SeverityHigh,
			Title:       "Meta description length outside 120-160 characters",
			Description: "Descriptions between 120 and 160 characters display fully in search results.",
			Check: func(c *Content) CheckResult {
				n := len(strings.TrimSpace(c.Description))
				if n == 0 {
					return CheckResult{Message: "no description to measure"}
				}
				if n < 120 {
					return CheckResult{Message: fmt.Sprintf("description is %d characters, below 120", n)}
				}
				if n > 160 {
					return CheckResult{Message: fmt.Sprintf("description is %d characters, above 160", n)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Keep the meta description between 120 and 160 characters"},
		},
		{
			ID: "viewport-meta", Category: CategoryMeta, Weight: 2, Severity: SeverityHigh,
			Title:       "Viewport meta tag is missing",
			Description: "Without a viewport tag, mobile browsers render the desktop layout.",
			Check: func(c *Content) CheckResult {
				if !strings.Contains(strings.ToLower(c.Doc.MetaTags.Viewport), "width=device-width") {
					return CheckResult{Message: "viewport tag missing or lacks width=device-width"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">"},
		},
		{
			ID: "canonical-url", Category: CategoryMeta, Weight: 1, Severity: SeverityMedium,
			Title:       "Canonical URL is missing",
			Description: "A canonical link prevents duplicate-content dilution.",
			Check: func(c *Content) CheckResult {
				if strings.TrimSpace(c.Doc.MetaTags.Canonical) == "" {
					return CheckResult{Message: "no canonical link found"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Add a <link rel=\"canonical\"> pointing at the preferred URL"},
		},
		{
			ID: "charset-declared", Category: CategoryMeta, Weight: 1, Severity: SeverityMedium,
			Title:       "Character encoding not declared",
			Description: "A missing charset declaration risks mojibake and slower parsing.",
			Check: func(c *Content) CheckResult {
				if strings.TrimSpace(c.Doc.MetaTags.Charset) == "" {
					return CheckResult{Message: "no charset declaration found"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Declare <meta charset=\"utf-8\"> first in <head>"},
		},
		{
			ID: "html-language", Category: CategoryMeta, Weight: 1, Severity: SeverityMedium,
			Title:       "HTML lang attribute is missing",
			Description: "The lang attribute helps search engines and screen readers pick the right language.",
			Check: func(c *Content) CheckResult {
				if strings.TrimSpace(c.Doc.MetaTags.Language) == "" {
					return CheckResult{Message: "html element has no lang attribute"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Set the lang attribute on the <html> element"},
		},
		{
			ID: "robots-meta", Category: CategoryMeta, Weight: 1, Severity: SeverityLow,
			Title:       "Page is blocked from indexing",
			Description: "A noindex robots directive keeps the page out of search results entirely.",
			Check: func(c *Content) CheckResult {
				if strings.Contains(strings.ToLower(c.Doc.MetaTags.Robots), "noindex") {
					return CheckResult{Message: "robots meta tag contains noindex"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Remove noindex from the robots meta tag if the page should rank"},
		},

		// --- content ---
		{
			ID: "content-length", Category: CategoryContent, Weight: 3, Severity: SeverityHigh,
			Title:       "Content is too thin",
			Description: "Pages under 300 words rarely rank for competitive queries.",
			Check: func(c *Content) CheckResult {
				if c.Doc.WordCount < 300 {
					return CheckResult{Message: fmt.Sprintf("only %d words, aim for at least 300", c.Doc.WordCount)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Expand the content to at least 300 words of substance"},
		},
		{
			ID: "single-h1", Category: CategoryContent, Weight: 2, Severity: SeverityHigh,
			Title:       "Page does not have exactly one H1",
			Description: "One H1 gives the page a single clear topic; zero or several muddy it.",
			Check: func(c *Content) CheckResult {
				n := len(c.Doc.Headings["h1"])
				if n == 0 {
					return CheckResult{Message: "no H1 heading found"}
				}
				if n > 1 {
					return CheckResult{Message: fmt.Sprintf("%d H1 headings found, use exactly one", n)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Use exactly one H1 heading that states the page topic"},
		},
		{
			ID: "heading-structure", Category: CategoryContent, Weight: 2, Severity: SeverityMedium,
			Title:       "Heading structure is weak",
			Description: "Longer content needs H2 subheadings, and levels should not be skipped.",
			Check: func(c *Content) CheckResult {
				if c.Doc.WordCount > 300 && c.headingCount() == 0 {
					return CheckResult{Message: "no headings in long content"}
				}
				if c.Doc.WordCount > 600 && len(c.Doc.Headings["h2"]) == 0 {
					return CheckResult{Message: "long content without any H2 subheadings"}
				}
				if len(c.Doc.Headings["h3"]) > 0 && len(c.Doc.Headings["h2"]) == 0 {
					return CheckResult{Message: "H3 headings used without any H2 level"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Break long content into sections with H2 headings, nesting H3 beneath them"},
		},
		{
			ID: "image-alt", Category: CategoryContent, Weight: 2, Severity: SeverityHigh,
			Title:       "Images missing alt text",
			Description: "Alt text is how search engines and screen readers understand images.",
			Check: func(c *Content) CheckResult {
				if len(c.Doc.Images) == 0 {
					return CheckResult{Passed: true}
				}
				missing := 0
				for _, img := range c.Doc.Images {
					if !img.HasAlt {
						missing++
					}
				}
				if missing > 0 {
					return CheckResult{Message: fmt.Sprintf("%d of %d images have no alt text", missing, len(c.Doc.Images))}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Add descriptive alt text to every content image"},
		},
		{
			ID: "keyword-in-title", Category: CategoryContent, Weight: 2, Severity: SeverityHigh,
			Title:       "Target keyword absent from title",
			Description: "The title is the strongest place to state the target keyword.",
			Check: func(c *Content) CheckResult {
				if len(c.Keywords) == 0 {
					return CheckResult{Passed: true, Warning: true, Message: "no target keywords supplied"}
				}
				if !hasKeywordIn(c.Title, c.Keywords) {
					return CheckResult{Message: "none of the target keywords appear in the title"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Include the primary keyword in the page title, ideally near the front"},
		},
		{
			ID: "keyword-in-description", Category: CategoryContent, Weight: 1, Severity: SeverityMedium,
			Title:       "Target keyword absent from meta description",
			Description: "Keywords in the description are bolded in search snippets and lift click-through.",
			Check: func(c *Content) CheckResult {
				if len(c.Keywords) == 0 {
					return CheckResult{Passed: true, Warning: true, Message: "no target keywords supplied"}
				}
				if !hasKeywordIn(c.Description, c.Keywords) {
					return CheckResult{Message: "none of the target keywords appear in the meta description"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Work the primary keyword naturally into the meta description"},
		},
		{
			ID: "keyword-in-headings", Category: CategoryContent, Weight: 1, Severity: SeverityMedium,
			Title:       "Target keyword absent from headings",
			Description: "Headings containing the keyword reinforce topical relevance.",
			Check: func(c *Content) CheckResult {
				if len(c.Keywords) == 0 {
					return CheckResult{Passed: true, Warning: true, Message: "no target keywords supplied"}
				}
				for _, level := range []string{"h1", "h2", "h3"} {
					for _, h := range c.Doc.Headings[level] {
						if hasKeywordIn(h, c.Keywords) {
							return CheckResult{Passed: true}
						}
					}
				}
				return CheckResult{Message: "no H1-H3 heading contains a target keyword"}
			},
			Recommendations: []string{"Use the primary keyword in at least one H1-H3 heading"},
		},
		{
			ID: "keyword-density", Category: CategoryContent, Weight: 2, Severity: SeverityMedium,
			Title:       "Keyword density outside the healthy range",
			Description: "Densities under 0.5% signal weak focus; over 3% looks like stuffing.",
			Check: func(c *Content) CheckResult {
				if len(c.Keywords) == 0 || c.Doc.WordCount == 0 {
					return CheckResult{Passed: true, Warning: true, Message: "no keywords or content to measure"}
				}
				for _, k := range c.Keywords {
					d := keywords.Density(c.Doc.Text, k)
					if d.Density > 3 {
						return CheckResult{Message: fmt.Sprintf("keyword %q density %.2f%% exceeds 3%%", k, d.Density)}
					}
				}
				primary := keywords.Density(c.Doc.Text, c.Keywords[0])
				if primary.Density < 0.5 {
					return CheckResult{Message: fmt.Sprintf("primary keyword %q density %.2f%% is below 0.5%%", c.Keywords[0], primary.Density)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Keep the primary keyword density between 0.5% and 3%"},
		},
		{
			ID: "keyword-in-first-paragraph", Category: CategoryContent, Weight: 1, Severity: SeverityLow,
			Title:       "Target keyword absent from the opening paragraph",
			Description: "Stating the keyword early confirms relevance for readers and crawlers.",
			Check: func(c *Content) CheckResult {
				if len(c.Keywords) == 0 || len(c.Doc.Paragraphs) == 0 {
					return CheckResult{Passed: true, Warning: true, Message: "nothing to measure"}
				}
				if !hasKeywordIn(c.Doc.Paragraphs[0], c.Keywords) {
					return CheckResult{Message: "first paragraph does not mention a target keyword"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Mention the primary keyword within the first paragraph"},
		},
		{
			ID: "paragraph-length", Category: CategoryContent, Weight: 1, Severity: SeverityLow,
			Title:       "Paragraphs run too long",
			Description: "Paragraphs over 150 words on average discourage reading and scanning.",
			Check: func(c *Content) CheckResult {
				if len(c.Doc.Paragraphs) == 0 {
					return CheckResult{Passed: true}
				}
				total := 0
				for _, p := range c.Doc.Paragraphs {
					total += len(strings.Fields(p))
				}
				avg := float64(total) / float64(len(c.Doc.Paragraphs))
				if avg > 150 {
					return CheckResult{Message: fmt.Sprintf("paragraphs average %.0f words, keep them under 150", avg)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Split long paragraphs; aim for under 150 words each"},
		},

		// --- technical ---
		{
			ID: "semantic-structure", Category: CategoryTechnical, Weight: 2, Severity: SeverityMedium,
			Title:       "Weak semantic HTML structure",
			Description: "Landmark elements (nav, header, main, article, footer) help crawlers map the page.",
			Check: func(c *Content) CheckResult {
				if c.Doc.Structural.SemanticScore < 3 {
					return CheckResult{Message: fmt.Sprintf("only %d of 5 landmark elements present", c.Doc.Structural.SemanticScore)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Use semantic landmarks: nav, header, main, article and footer"},
		},
		{
			ID: "internal-links", Category: CategoryTechnical, Weight: 2, Severity: SeverityMedium,
			Title:       "Too few internal links",
			Description: "Internal links spread authority and help crawlers discover related pages.",
			Check: func(c *Content) CheckResult {
				n := c.linkCount("internal")
				if n < 3 {
					return CheckResult{Message: fmt.Sprintf("only %d internal links, aim for at least 3", n)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Add at least 3 internal links to related pages"},
		},
		{
			ID: "external-links", Category: CategoryTechnical, Weight: 1, Severity: SeverityLow,
			Title:       "No external references",
			Description: "Linking to authoritative sources lends the content credibility.",
			Check: func(c *Content) CheckResult {
				if c.linkCount("external") == 0 {
					return CheckResult{Message: "no external links found"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Link to one or two authoritative external sources"},
		},
		{
			ID: "descriptive-link-text", Category: CategoryTechnical, Weight: 1, Severity: SeverityMedium,
			Title:       "Links with generic or missing anchor text",
			Description: "Anchor text like \"click here\" tells crawlers nothing about the target.",
			Check: func(c *Content) CheckResult {
				generic := map[string]bool{"click here": true, "here": true, "read more": true, "link": true, "more": true}
				bad := 0
				for _, l := range c.Doc.Links {
					if !l.HasText || generic[strings.ToLower(l.Text)] {
						bad++
					}
				}
				if bad > 0 {
					return CheckResult{Message: fmt.Sprintf("%d links have missing or generic anchor text", bad)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Replace generic anchors like \"click here\" with descriptive text"},
		},
		{
			ID: "image-present", Category: CategoryTechnical, Weight: 1, Severity: SeverityLow,
			Title:       "Page has no images",
			Description: "Pages with at least one relevant image engage better and earn image-search traffic.",
			Check: func(c *Content) CheckResult {
				if c.Doc.WordCount >= 300 && len(c.Doc.Images) == 0 {
					return CheckResult{Message: "substantial content without a single image"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Add at least one relevant, optimized image"},
		},

		// --- readability ---
		{
			ID: "readability-score", Category: CategoryReadability, Weight: 3, Severity: SeverityHigh,
			Title:       "Content is hard to read",
			Description: "A composite readability score under 50 loses general audiences.",
			Check: func(c *Content) CheckResult {
				if c.Stats.Words == 0 {
					return CheckResult{Passed: true, Warning: true, Message: "no text to score"}
				}
				if c.Composite < 50 {
					return CheckResult{Message: fmt.Sprintf("composite readability %.0f/100, below 50", c.Composite)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Shorten sentences and prefer simpler words to raise readability above 50"},
		},
		{
			ID: "sentence-length", Category: CategoryReadability, Weight: 2, Severity: SeverityMedium,
			Title:       "Sentences are too long",
			Description: "Average sentence length above 20 words strains comprehension.",
			Check: func(c *Content) CheckResult {
				if c.Stats.Sentences == 0 {
					return CheckResult{Passed: true}
				}
				if c.Stats.AvgWordsPerSentence > 20 {
					return CheckResult{Message: fmt.Sprintf("sentences average %.1f words, keep under 20", c.Stats.AvgWordsPerSentence)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Split sentences above 20 words into two"},
		},
		{
			ID: "complex-words", Category: CategoryReadability, Weight: 1, Severity: SeverityMedium,
			Title:       "Too many complex words",
			Description: "When over 15% of words have three or more syllables, the text reads as academic.",
			Check: func(c *Content) CheckResult {
				if c.Stats.Words == 0 {
					return CheckResult{Passed: true}
				}
				ratio := float64(c.Stats.ComplexWords) / float64(c.Stats.Words) * 100
				if ratio > 15 {
					return CheckResult{Message: fmt.Sprintf("%.0f%% of words are complex, keep under 15%%", ratio)}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Swap multi-syllable words for plain alternatives where meaning allows"},
		},
		{
			ID: "paragraph-count", Category: CategoryReadability, Weight: 1, Severity: SeverityLow,
			Title:       "Content lacks paragraph breaks",
			Description: "A single unbroken block of text is hard to scan and skim.",
			Check: func(c *Content) CheckResult {
				if c.Doc.WordCount > 200 && len(c.Doc.Paragraphs) <= 1 && c.Stats.Paragraphs <= 1 {
					return CheckResult{Message: "content is one continuous block"}
				}
				return CheckResult{Passed: true}
			},
			Recommendations: []string{"Break the text into short paragraphs with headings between sections"},
		},
	}
}
