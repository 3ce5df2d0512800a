package recommend

// actionTemplate holds the per-rule action plan and supporting material.
// Action text lives here in English; Greek output localizes the why and
// time strings via the translation table and keeps action steps in English
// when no localized variant exists.
type actionTemplate struct {
	actions   []Action
	example   *Example
	resources []Resource
}

// templates maps rule IDs to their plans. Lookup is total: rules without an
// entry get the generic single-step fallback in fallbackActions.
var templates = map[string]actionTemplate{
	"title-exists": {
		actions: []Action{
			{Step: 1, Action: "Write a title that states the page topic and benefit", Type: "action", Specific: true},
			{Step: 2, Action: "Place it in a <title> element inside <head>", Type: "action", Specific: true},
			{Step: 3, Action: "Verify the title renders in a search-result preview tool", Type: "check", Specific: false},
		},
		example: &Example{
			Before: "<head></head>",
			After:  "<head><title>Dog Training Guide: 10 Commands That Stick</title></head>",
		},
		resources: []Resource{
			{Title: "Google: Influencing your title links", URL: "https://developers.google.com/search/docs/appearance/title-link"},
		},
	},
	"title-length": {
		actions: []Action{
			{Step: 1, Action: "Rewrite the title to 30-60 characters", Type: "action", Specific: true},
			{Step: 2, Action: "Keep the primary keyword near the front", Type: "action", Specific: true},
			{Step: 3, Action: "Check the rendered width in a SERP preview", Type: "check", Specific: false},
		},
		example: &Example{
			Before: "A very very very very very long page title that search engines will cut off",
			After:  "Dog Training Guide: 10 Commands That Stick",
		},
		resources: []Resource{
			{Title: "Google: Influencing your title links", URL: "https://developers.google.com/search/docs/appearance/title-link"},
		},
	},
	"description-exists": {
		actions: []Action{
			{Step: 1, Action: "Summarize the page value in one or two sentences", Type: "action", Specific: true},
			{Step: 2, Action: "Add it as <meta name=\"description\" content=\"...\">", Type: "action", Specific: true},
		},
		resources: []Resource{
			{Title: "Google: Meta descriptions", URL: "https://developers.google.com/search/docs/appearance/snippet"},
		},
	},
	"description-length": {
		actions: []Action{
			{Step: 1, Action: "Adjust the description to 120-160 characters", Type: "action", Specific: true},
			{Step: 2, Action: "End with a reason to click, not a truncated clause", Type: "action", Specific: false},
		},
	},
	"viewport-meta": {
		actions: []Action{
			{Step: 1, Action: "Add <meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"> to <head>", Type: "action", Specific: true},
			{Step: 2, Action: "Re-test the page in a mobile-friendliness checker", Type: "check", Specific: false},
		},
		example: &Example{
			Before: "<head><title>Page</title></head>",
			After:  "<head><title>Page</title><meta name=\"viewport\" content=\"width=device-width, initial-scale=1\"></head>",
		},
	},
	"canonical-url": {
		actions: []Action{
			{Step: 1, Action: "Pick the preferred URL for this content", Type: "action", Specific: true},
			{Step: 2, Action: "Add <link rel=\"canonical\" href=\"...\"> pointing at it", Type: "action", Specific: true},
		},
	},
	"content-length": {
		actions: []Action{
			{Step: 1, Action: "Identify subtopics the page should cover but does not", Type: "action", Specific: false},
			{Step: 2, Action: "Expand the content to at least 300 words of substance", Type: "action", Specific: true},
			{Step: 3, Action: "Note: padding with filler hurts more than thin content", Type: "note", Specific: false},
		},
	},
	"single-h1": {
		actions: []Action{
			{Step: 1, Action: "Keep one H1 that states the page topic", Type: "action", Specific: true},
			{Step: 2, Action: "Demote the remaining H1s to H2", Type: "action", Specific: true},
		},
		example: &Example{
			Before: "<h1>Title</h1><h1>Another</h1>",
			After:  "<h1>Title</h1><h2>Another</h2>",
		},
	},
	"image-alt": {
		actions: []Action{
			{Step: 1, Action: "Write alt text describing what each image shows", Type: "action", Specific: true},
			{Step: 2, Action: "Leave alt empty only for purely decorative images", Type: "note", Specific: false},
		},
		example: &Example{
			Before: "<img src=\"dog.jpg\">",
			After:  "<img src=\"dog.jpg\" alt=\"Border collie holding a sit-stay during training\">",
		},
	},
	"keyword-in-title": {
		actions: []Action{
			{Step: 1, Action: "Rework the title to include the primary keyword naturally", Type: "action", Specific: true},
			{Step: 2, Action: "Do not sacrifice readability for exact-match phrasing", Type: "note", Specific: false},
		},
	},
	"keyword-density": {
		actions: []Action{
			{Step: 1, Action: "Rebalance keyword mentions toward the 0.5%-3% range", Type: "action", Specific: true},
			{Step: 2, Action: "Replace repeated exact matches with synonyms and related terms", Type: "action", Specific: false},
		},
	},
	"internal-links": {
		actions: []Action{
			{Step: 1, Action: "Link to at least 3 related pages on the same site", Type: "action", Specific: true},
			{Step: 2, Action: "Use descriptive anchor text for each link", Type: "action", Specific: false},
		},
	},
	"semantic-structure": {
		actions: []Action{
			{Step: 1, Action: "Wrap page regions in nav, header, main, article and footer", Type: "action", Specific: true},
			{Step: 2, Action: "Replace layout divs with the matching landmark where one exists", Type: "action", Specific: false},
		},
	},
	"readability-score": {
		actions: []Action{
			{Step: 1, Action: "Split sentences above 20 words", Type: "action", Specific: true},
			{Step: 2, Action: "Swap complex words for plain alternatives", Type: "action", Specific: true},
			{Step: 3, Action: "Re-score until the composite clears 50", Type: "check", Specific: false},
		},
	},
	"sentence-length": {
		actions: []Action{
			{Step: 1, Action: "Break sentences above 20 words at their conjunctions", Type: "action", Specific: true},
		},
	},
}

// fallbackActions is the guaranteed template for rules without an entry.
func fallbackActions(description string) []Action {
	return []Action{{Step: 1, Action: description, Type: "action", Specific: false}}
}

// templateFor resolves the action plan for a rule. Total: always returns at
// least the fallback.
func templateFor(ruleID, description string) actionTemplate {
	if t, ok := templates[ruleID]; ok {
		return t
	}
	return actionTemplate{actions: fallbackActions(description)}
}
