// Package rules holds the weighted SEO rule catalogue and the scoring engine
// that evaluates it against parsed content.
package rules

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/pagegrade/backend/keywords"
	"github.com/pagegrade/backend/parser"
	"github.com/pagegrade/backend/readability"
)

// Input is the caller-supplied analysis request. At least one of HTML,
// Title or Description must be present.
type Input struct {
	HTML        string   `json:"html"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Language    string   `json:"language"`
	URL         string   `json:"url"`
}

// Engine evaluates the rule catalogue. It keeps no per-call state: every
// Analyze call builds its own accumulators, so one Engine may serve
// concurrent analyses.
type Engine struct {
	registry *Registry
}

// NewEngine wraps an immutable registry.
func NewEngine(registry *Registry) *Engine {
	return &Engine{registry: registry}
}

// Registry exposes the catalogue, e.g. for the recommendation engine.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// categoryOutcome accumulates one category's evaluation independently, so
// categories can run in parallel without shared mutable state.
type categoryOutcome struct {
	score           float64
	maxScore        float64
	passed          int
	failed          int
	warnings        int
	issues          []Issue
	recommendations []string
}

// Analyze runs every active rule against the input and returns the scored
// result. The only error it returns is *ValidationError; a rule that
// panics is logged and excluded from both score and maxScore.
func (e *Engine) Analyze(ctx context.Context, in Input) (*AnalysisResult, error) {
	if strings.TrimSpace(in.HTML) == "" &&
		strings.TrimSpace(in.Title) == "" &&
		strings.TrimSpace(in.Description) == "" {
		return nil, &ValidationError{Reason: "provide at least one of html, title or description"}
	}

	content := e.buildContent(in)

	// Categories evaluate concurrently, each into its own accumulator;
	// results merge in fixed category order and issues are re-sorted
	// deterministically below, so the output is order-independent.
	outcomes := make([]categoryOutcome, len(Categories))
	g, _ := errgroup.WithContext(ctx)
	for i, category := range Categories {
		i, category := i, category
		g.Go(func() error {
			outcomes[i] = e.evaluateCategory(category, content)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		// Category evaluators never return errors; panics are handled
		// per-rule. This satisfies errgroup's contract regardless.
		log.Printf("rule evaluation error: %v", err)
	}

	result := &AnalysisResult{
		RecommendationsByCategory: make(map[string][]string),
	}
	for i, category := range Categories {
		o := outcomes[i]
		result.Score += o.score
		result.MaxScore += o.maxScore
		result.PassedRules += o.passed
		result.FailedRules += o.failed
		result.Warnings += o.warnings
		result.Issues = append(result.Issues, o.issues...)
		if len(o.recommendations) > 0 {
			result.RecommendationsByCategory[category] = o.recommendations
		}
	}

	sort.SliceStable(result.Issues, func(i, j int) bool {
		ri, rj := SeverityRank(result.Issues[i].Severity), SeverityRank(result.Issues[j].Severity)
		if ri != rj {
			return ri < rj
		}
		return result.Issues[i].Impact > result.Issues[j].Impact
	})

	if result.MaxScore > 0 {
		result.Percentage = int(math.Round(result.Score / result.MaxScore * 100))
	}
	result.Grade = GradeFor(result.Percentage)
	result.Metadata = buildMetadata(in, content)
	return result, nil
}

func (e *Engine) buildContent(in Input) *Content {
	doc := parser.ParseWithURL(in.HTML, in.URL)
	lang := readability.ForCode(in.Language)
	stats := readability.Analyze(doc.Text, lang)

	kws := make([]string, 0, len(in.Keywords))
	for _, k := range in.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			kws = append(kws, k)
		}
	}

	return &Content{
		Title:       in.Title,
		Description: in.Description,
		Keywords:    kws,
		Language:    lang.Code,
		URL:         in.URL,
		HTML:        in.HTML,
		Doc:         doc,
		Stats:       stats,
		Composite:   readability.Composite(stats, lang),
		Lang:        lang,
	}
}

func (e *Engine) evaluateCategory(category string, content *Content) categoryOutcome {
	var o categoryOutcome
	for _, rule := range e.registry.ForCategory(category) {
		res, ok := e.runCheck(rule, content)
		if !ok {
			// The check panicked: the rule counts toward neither score
			// nor maxScore for this run.
			continue
		}
		o.maxScore += rule.Weight
		if res.Warning {
			o.warnings++
		}
		if res.Passed {
			o.score += rule.Weight
			o.passed++
			continue
		}
		o.failed++
		description := rule.Description
		if res.Message != "" {
			description = res.Message
		}
		o.issues = append(o.issues, Issue{
			ID:          rule.ID,
			Category:    rule.Category,
			Severity:    rule.Severity,
			Title:       rule.Title,
			Description: description,
			Impact:      rule.Weight,
		})
		o.recommendations = append(o.recommendations, rule.Recommendations...)
	}
	return o
}

// runCheck isolates a single rule: a panic is logged and reported as not-ok
// so one broken rule never aborts the run.
func (e *Engine) runCheck(rule Rule, content *Content) (res CheckResult, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("rule %s panicked: %v", rule.ID, r)
			ok = false
		}
	}()
	return rule.Check(content), true
}

func buildMetadata(in Input, content *Content) Metadata {
	return Metadata{
		Title:          in.Title,
		Description:    in.Description,
		Keywords:       content.Keywords,
		Language:       content.Language,
		URL:            in.URL,
		WordCount:      content.Doc.WordCount,
		CharacterCount: content.Doc.CharacterCount,
		Headings:       content.Doc.Headings,
		Images:         content.Doc.Images,
		Links:          content.Doc.Links,
		MetaTags:       content.Doc.MetaTags,
		Structural:     content.Doc.Structural,
	}
}

// CalculateKeywordDensity reports whole-word, case-insensitive occurrences of
// keyword in text. Delegates to the keywords service.
func (e *Engine) CalculateKeywordDensity(text, keyword string) keywords.DensityResult {
	return keywords.Density(text, keyword)
}

// CalculateAllKeywordDensities maps CalculateKeywordDensity over a keyword
// list; an empty list yields an empty result.
func (e *Engine) CalculateAllKeywordDensities(text string, list []string) []keywords.DensityResult {
	return keywords.AllDensities(text, list)
}
