// Package parser turns raw HTML or plain text into a structured Document
// model. Parsing never fails: malformed fragments degrade to a plain-text
// document with all structural fields empty.
package parser

import (
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

var headingLevels = []string{"h1", "h2", "h3", "h4", "h5", "h6"}

// Parse builds a Document from raw HTML without a known page URL.
// Host-relative link classification then only recognizes path, anchor,
// mailto and tel links; everything else is external.
func Parse(rawHTML string) *Document {
	return ParseWithURL(rawHTML, "")
}

// ParseWithURL builds a Document from raw HTML. pageURL, when non-empty, is
// used to classify same-host absolute links as internal.
func ParseWithURL(rawHTML, pageURL string) *Document {
	doc := newDocument(rawHTML)

	gq, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// Unparsable input: treat the whole thing as plain text.
		doc.Text = stripTags(rawHTML)
		doc.WordCount = len(strings.Fields(doc.Text))
		doc.CharacterCount = utf8.RuneCountInString(doc.Text)
		return doc
	}

	extractText(gq, doc)
	extractHeadings(gq, doc)
	extractImages(gq, doc)
	extractLinks(gq, doc, hostOf(pageURL))
	extractParagraphs(gq, doc)
	extractMetaTags(gq, doc)
	extractStructural(gq, doc)

	return doc
}

func newDocument(rawHTML string) *Document {
	headings := make(map[string][]string, len(headingLevels))
	for _, level := range headingLevels {
		headings[level] = []string{}
	}
	return &Document{
		HTML:       rawHTML,
		Headings:   headings,
		Images:     []Image{},
		Links:      []Link{},
		Paragraphs: []string{},
	}
}

func hostOf(pageURL string) string {
	if pageURL == "" {
		return ""
	}
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return u.Host
}

func extractText(gq *goquery.Document, doc *Document) {
	body := gq.Find("body").Clone()
	body.Find("script, style, noscript").Remove()

	text := strings.TrimSpace(body.Text())
	doc.Text = collapseSpaces(text)
	doc.WordCount = len(strings.Fields(doc.Text))
	doc.CharacterCount = utf8.RuneCountInString(doc.Text)
}

// collapseSpaces normalizes runs of horizontal whitespace within lines while
// keeping line boundaries, so paragraph splitting downstream still works.
func collapseSpaces(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.TrimSpace(strings.Join(lines, "\n"))
}

func extractHeadings(gq *goquery.Document, doc *Document) {
	for _, level := range headingLevels {
		gq.Find(level).Each(func(_ int, s *goquery.Selection) {
			doc.Headings[level] = append(doc.Headings[level], strings.TrimSpace(s.Text()))
		})
	}
}

func extractImages(gq *goquery.Document, doc *Document) {
	gq.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		alt, _ := s.Attr("alt")
		title, _ := s.Attr("title")
		doc.Images = append(doc.Images, Image{
			Src:      src,
			Alt:      alt,
			Title:    title,
			HasAlt:   strings.TrimSpace(alt) != "",
			HasTitle: strings.TrimSpace(title) != "",
		})
	})
}

func extractLinks(gq *goquery.Document, doc *Document, host string) {
	gq.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		href = strings.TrimSpace(href)
		if href == "" {
			return
		}
		rel, _ := s.Attr("rel")
		text := strings.TrimSpace(s.Text())
		doc.Links = append(doc.Links, Link{
			Href:    href,
			Text:    text,
			Rel:     rel,
			Type:    ClassifyLink(href, host),
			HasText: text != "",
		})
	})
}

// ClassifyLink categorizes an href as internal, external, email, phone or
// anchor. host is the current page's host ("" when unknown).
func ClassifyLink(href, host string) string {
	switch {
	case strings.HasPrefix(href, "mailto:"):
		return LinkEmail
	case strings.HasPrefix(href, "tel:"):
		return LinkPhone
	case strings.HasPrefix(href, "#"):
		return LinkAnchor
	case strings.HasPrefix(href, "/"):
		return LinkInternal
	}
	if host != "" {
		if u, err := url.Parse(href); err == nil && u.Host == host {
			return LinkInternal
		}
	}
	return LinkExternal
}

func extractParagraphs(gq *goquery.Document, doc *Document) {
	gq.Find("p").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text != "" {
			doc.Paragraphs = append(doc.Paragraphs, collapseSpaces(text))
		}
	})
	doc.ListCount = gq.Find("ul, ol").Length()
}

func extractMetaTags(gq *goquery.Document, doc *Document) {
	doc.MetaTags.Viewport, _ = gq.Find("meta[name='viewport']").Attr("content")
	doc.MetaTags.Canonical, _ = gq.Find("link[rel='canonical']").Attr("href")
	doc.MetaTags.Robots, _ = gq.Find("meta[name='robots']").Attr("content")
	doc.MetaTags.Language, _ = gq.Find("html").Attr("lang")

	if charset, ok := gq.Find("meta[charset]").Attr("charset"); ok {
		doc.MetaTags.Charset = charset
	} else if content, ok := gq.Find("meta[http-equiv='Content-Type']").Attr("content"); ok {
		if idx := strings.Index(strings.ToLower(content), "charset="); idx >= 0 {
			doc.MetaTags.Charset = strings.TrimSpace(content[idx+len("charset="):])
		}
	}
}

func extractStructural(gq *goquery.Document, doc *Document) {
	doc.Structural.HasNav = gq.Find("nav").Length() > 0
	doc.Structural.HasHeader = gq.Find("header").Length() > 0
	doc.Structural.HasFooter = gq.Find("footer").Length() > 0
	doc.Structural.HasMain = gq.Find("main").Length() > 0
	doc.Structural.HasArticle = gq.Find("article").Length() > 0

	score := 0
	for _, present := range []bool{
		doc.Structural.HasNav,
		doc.Structural.HasHeader,
		doc.Structural.HasFooter,
		doc.Structural.HasMain,
		doc.Structural.HasArticle,
	} {
		if present {
			score++
		}
	}
	if score > 5 {
		score = 5
	}
	doc.Structural.SemanticScore = score
}

// stripTags is the best-effort fallback used when goquery cannot build a
// document tree. It walks the token stream and keeps only text content.
func stripTags(rawHTML string) string {
	var b strings.Builder
	tokenizer := html.NewTokenizer(strings.NewReader(rawHTML))
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			b.WriteString(string(tokenizer.Text()))
			b.WriteByte(' ')
		}
	}
	return collapseSpaces(strings.TrimSpace(b.String()))
}
