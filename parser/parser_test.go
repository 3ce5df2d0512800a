package parser

import (
	"strings"
	"testing"
)

func TestParseHeadings(t *testing.T) {
	doc := Parse("<h1>Title</h1><h1>Another</h1><h2>Section</h2>")

	if got := len(doc.Headings["h1"]); got != 2 {
		t.Errorf("Expected 2 h1 headings, got %d", got)
	}
	if got := len(doc.Headings["h2"]); got != 1 {
		t.Errorf("Expected 1 h2 heading, got %d", got)
	}
	if doc.Headings["h1"][0] != "Title" || doc.Headings["h1"][1] != "Another" {
		t.Errorf("h1 headings out of order: %v", doc.Headings["h1"])
	}
	// Unused levels must be empty slices, never nil.
	for _, level := range headingLevels {
		if doc.Headings[level] == nil {
			t.Errorf("Heading level %s is nil", level)
		}
	}
}

func TestParseWordCount(t *testing.T) {
	doc := Parse("<p>SEO is great. SEO rules.</p>")

	if doc.WordCount != 5 {
		t.Errorf("Expected word count 5, got %d", doc.WordCount)
	}
	if doc.WordCount != len(strings.Fields(doc.Text)) {
		t.Errorf("Word count %d does not match text fields %d", doc.WordCount, len(strings.Fields(doc.Text)))
	}
}

func TestParseLinkClassification(t *testing.T) {
	html := `
		<a href="/about">About</a>
		<a href="#section">Jump</a>
		<a href="mailto:hi@example.com">Mail</a>
		<a href="tel:+123456">Call</a>
		<a href="https://example.com/page">Same host</a>
		<a href="https://other.com">Other</a>`
	doc := ParseWithURL(html, "https://example.com/start")

	want := []string{LinkInternal, LinkAnchor, LinkEmail, LinkPhone, LinkInternal, LinkExternal}
	if len(doc.Links) != len(want) {
		t.Fatalf("Expected %d links, got %d", len(want), len(doc.Links))
	}
	for i, link := range doc.Links {
		if link.Type != want[i] {
			t.Errorf("Link %d (%s): expected type %s, got %s", i, link.Href, want[i], link.Type)
		}
	}
	if !doc.Links[0].HasText {
		t.Error("Link with text should have HasText true")
	}
}

func TestParseImages(t *testing.T) {
	doc := Parse(`<img src="a.png" alt="A picture"><img src="b.png" alt=""><img src="c.png" title="C">`)

	if len(doc.Images) != 3 {
		t.Fatalf("Expected 3 images, got %d", len(doc.Images))
	}
	if !doc.Images[0].HasAlt {
		t.Error("Image with non-empty alt should have HasAlt true")
	}
	if doc.Images[1].HasAlt {
		t.Error("Image with empty alt should have HasAlt false")
	}
	if !doc.Images[2].HasTitle || doc.Images[2].HasAlt {
		t.Errorf("Image 2 flags wrong: %+v", doc.Images[2])
	}
}

func TestParseMetaTags(t *testing.T) {
	html := `<html lang="en"><head>
		<meta charset="utf-8">
		<meta name="viewport" content="width=device-width, initial-scale=1">
		<meta name="robots" content="index, follow">
		<link rel="canonical" href="https://example.com/page">
	</head><body></body></html>`
	doc := Parse(html)

	if doc.MetaTags.Charset != "utf-8" {
		t.Errorf("Expected charset utf-8, got %q", doc.MetaTags.Charset)
	}
	if !strings.Contains(doc.MetaTags.Viewport, "width=device-width") {
		t.Errorf("Viewport not extracted: %q", doc.MetaTags.Viewport)
	}
	if doc.MetaTags.Canonical != "https://example.com/page" {
		t.Errorf("Canonical not extracted: %q", doc.MetaTags.Canonical)
	}
	if doc.MetaTags.Language != "en" {
		t.Errorf("Expected language en, got %q", doc.MetaTags.Language)
	}
}

func TestParseStructuralScore(t *testing.T) {
	doc := Parse("<nav></nav><header></header><main><article></article></main><footer></footer>")

	if doc.Structural.SemanticScore != 5 {
		t.Errorf("Expected semantic score 5, got %d", doc.Structural.SemanticScore)
	}

	doc = Parse("<div>plain divs only</div>")
	if doc.Structural.SemanticScore != 0 {
		t.Errorf("Expected semantic score 0, got %d", doc.Structural.SemanticScore)
	}
}

func TestParsePlainText(t *testing.T) {
	doc := Parse("Just a plain sentence without any markup.")

	if doc.WordCount != 7 {
		t.Errorf("Expected 7 words, got %d (%q)", doc.WordCount, doc.Text)
	}
	if len(doc.Links) != 0 || len(doc.Images) != 0 {
		t.Error("Plain text should produce no links or images")
	}
}

func TestParseScriptsExcluded(t *testing.T) {
	doc := Parse("<p>visible words here</p><script>var hidden = 'code';</script><style>.a{color:red}</style>")

	if strings.Contains(doc.Text, "hidden") || strings.Contains(doc.Text, "color") {
		t.Errorf("Script/style content leaked into text: %q", doc.Text)
	}
	if doc.WordCount != 3 {
		t.Errorf("Expected 3 words, got %d", doc.WordCount)
	}
}

func TestParseParagraphs(t *testing.T) {
	doc := Parse("<p>First paragraph.</p><p>  </p><p>Second one.</p>")

	if len(doc.Paragraphs) != 2 {
		t.Fatalf("Expected 2 paragraphs, got %d: %v", len(doc.Paragraphs), doc.Paragraphs)
	}
	if doc.Paragraphs[0] != "First paragraph." {
		t.Errorf("Unexpected first paragraph: %q", doc.Paragraphs[0])
	}
}

func TestParseListCount(t *testing.T) {
	doc := Parse("<ul><li>one</li><li>two</li></ul><ol><li>first</li></ol><p>prose</p>")

	if doc.ListCount != 2 {
		t.Errorf("Expected 2 lists, got %d", doc.ListCount)
	}

	if doc := Parse("<p>no lists here</p>"); doc.ListCount != 0 {
		t.Errorf("Expected 0 lists, got %d", doc.ListCount)
	}
}

func TestStripTags(t *testing.T) {
	got := stripTags("<div><b>bold</b> and <i>italic</i></div>")
	if got != "bold and italic" {
		t.Errorf("stripTags result: %q", got)
	}
}
