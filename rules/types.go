package rules

import (
	"github.com/pagegrade/backend/parser"
	"github.com/pagegrade/backend/readability"
)

// Rule categories, evaluated in this order.
const (
	CategoryMeta        = "meta"
	CategoryContent     = "content"
	CategoryTechnical   = "technical"
	CategoryReadability = "readability"
)

// Categories in evaluation order.
var Categories = []string{CategoryMeta, CategoryContent, CategoryTechnical, CategoryReadability}

// Severity levels, ranked for issue ordering.
const (
	SeverityCritical = "critical"
	SeverityHigh     = "high"
	SeverityMedium   = "medium"
	SeverityLow      = "low"
)

// SeverityRank orders severities: critical(0) < high(1) < medium(2) < low(3).
func SeverityRank(severity string) int {
	switch severity {
	case SeverityCritical:
		return 0
	case SeverityHigh:
		return 1
	case SeverityMedium:
		return 2
	case SeverityLow:
		return 3
	default:
		return 4
	}
}

// CheckResult is the outcome of one rule check.
type CheckResult struct {
	Passed  bool
	Message string
	Warning bool
}

// CheckFunc is a pure predicate over the working content. It must not keep
// state between calls; a panicking check is isolated by the engine.
type CheckFunc func(*Content) CheckResult

// Rule is one weighted, categorized SEO check. The catalogue of rules is
// immutable after registry construction.
type Rule struct {
	ID              string   `json:"id"`
	Category        string   `json:"category"`
	Weight          float64  `json:"weight"`
	Severity        string   `json:"severity"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Check           CheckFunc `json:"-"`
	Recommendations []string `json:"recommendations"`
}

// Content is the working object each rule sees: caller metadata merged with
// the parsed document and precomputed readability figures.
type Content struct {
	Title       string
	Description string
	Keywords    []string
	Language    string
	URL         string
	HTML        string

	Doc       *parser.Document
	Stats     readability.Stats
	Composite float64
	Lang      readability.Language
}

// headingCount totals headings across all levels.
func (c *Content) headingCount() int {
	n := 0
	for _, texts := range c.Doc.Headings {
		n += len(texts)
	}
	return n
}

// linkCount counts links of the given classification.
func (c *Content) linkCount(linkType string) int {
	n := 0
	for _, l := range c.Doc.Links {
		if l.Type == linkType {
			n++
		}
	}
	return n
}

// Issue records the failure of one rule.
type Issue struct {
	ID          string  `json:"id"`
	Category    string  `json:"category"`
	Severity    string  `json:"severity"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Impact      float64 `json:"impact"`
}

// Metadata echoes the analyzed input and document facts back to the caller.
type Metadata struct {
	Title          string                     `json:"title"`
	Description    string                     `json:"description"`
	Keywords       []string                   `json:"keywords"`
	Language       string                     `json:"language"`
	URL            string                     `json:"url"`
	WordCount      int                        `json:"wordCount"`
	CharacterCount int                        `json:"characterCount"`
	Headings       map[string][]string        `json:"headings"`
	Images         []parser.Image             `json:"images"`
	Links          []parser.Link              `json:"links"`
	MetaTags       parser.MetaTags            `json:"metaTags"`
	Structural     parser.StructuralElements  `json:"structuralElements"`
}

// AnalysisResult is the outcome of one analyze call, owned by the caller.
type AnalysisResult struct {
	Score       float64 `json:"score"`
	MaxScore    float64 `json:"maxScore"`
	Percentage  int     `json:"percentage"`
	Grade       string  `json:"grade"`
	PassedRules int     `json:"passedRules"`
	FailedRules int     `json:"failedRules"`
	Warnings    int     `json:"warnings"`

	Issues                    []Issue             `json:"issues"`
	Metadata                  Metadata            `json:"metadata"`
	RecommendationsByCategory map[string][]string `json:"recommendationsByCategory"`
}

// GradeFor maps a 0-100 percentage onto the A-F scale with inclusive
// lower bounds.
func GradeFor(percentage int) string {
	switch {
	case percentage >= 90:
		return "A"
	case percentage >= 80:
		return "B"
	case percentage >= 70:
		return "C"
	case percentage >= 60:
		return "D"
	default:
		return "F"
	}
}
