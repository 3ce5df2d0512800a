package recommend

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/pagegrade/backend/rules"
)

func analyzeFixture(t *testing.T, in rules.Input) (*rules.AnalysisResult, *rules.Registry) {
	t.Helper()
	registry := rules.NewRegistry()
	result, err := rules.NewEngine(registry).Analyze(context.Background(), in)
	if err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	return result, registry
}

func TestGenerateOnePerFailedRule(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{HTML: "<p>tiny</p>"})
	set := Generate(result, registry, "en")

	if len(set.Recommendations) != len(result.Issues) {
		t.Errorf("Expected %d recommendations for %d issues, got %d",
			len(result.Issues), len(result.Issues), len(set.Recommendations))
	}
	for i, rec := range set.Recommendations {
		issue := result.Issues[i]
		if rec.RuleID != issue.ID {
			t.Errorf("Recommendation %d order mismatch: %s vs issue %s", i, rec.RuleID, issue.ID)
		}
		if rec.Priority != issue.Severity {
			t.Errorf("Priority must map 1:1 from severity: %s vs %s", rec.Priority, issue.Severity)
		}
		if len(rec.Actions) == 0 {
			t.Errorf("Recommendation %s has no actions; template lookup must be total", rec.RuleID)
		}
		if rec.ImpactEstimate.ScoreIncrease != issue.Impact {
			t.Errorf("Score increase should equal rule weight: %f vs %f",
				rec.ImpactEstimate.ScoreIncrease, issue.Impact)
		}
		if rec.ImpactEstimate.ProjectedScore > result.MaxScore {
			t.Errorf("Projected score exceeds maxScore: %f > %f",
				rec.ImpactEstimate.ProjectedScore, result.MaxScore)
		}
		if rec.Why == "" || rec.EstimatedTime == "" {
			t.Errorf("Recommendation %s missing why/estimatedTime", rec.RuleID)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{HTML: "<h1>One</h1><h1>Two</h1><p>short text</p>", Title: "Tiny"})
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	first := generateAt(result, registry, "en", now)
	second := generateAt(result, registry, "en", now)

	if !reflect.DeepEqual(first, second) {
		t.Error("Generation is not re-entrant: identical inputs produced different output")
	}
}

func TestLongTitleQuickWin(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{
		Title: "A very very very very very very long page title exceeding sixty characters",
	})
	set := Generate(result, registry, "en")

	found := false
	for _, win := range set.QuickWins {
		if win.RuleID == "title-length" {
			found = true
			if win.Effort != EffortQuick {
				t.Errorf("title-length effort should be quick, got %s", win.Effort)
			}
		}
	}
	if !found {
		t.Errorf("Expected title-length in quick wins, got %+v", set.QuickWins)
	}
}

func TestQuickWinsFilteredAndSorted(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{HTML: "<p>tiny</p>"})
	set := Generate(result, registry, "en")

	if len(set.QuickWins) > 5 {
		t.Errorf("Quick wins capped at 5, got %d", len(set.QuickWins))
	}
	for i, win := range set.QuickWins {
		if win.Effort != EffortQuick {
			t.Errorf("Quick win %d has effort %s", i, win.Effort)
		}
		if win.Priority != rules.SeverityCritical && win.Priority != rules.SeverityHigh {
			t.Errorf("Quick win %d has priority %s", i, win.Priority)
		}
		if i > 0 && set.QuickWins[i-1].ImpactEstimate.ScoreIncrease < win.ImpactEstimate.ScoreIncrease {
			t.Error("Quick wins not sorted by score increase descending")
		}
	}
}

func TestEffortMapping(t *testing.T) {
	cases := []struct {
		category string
		weight   float64
		want     string
	}{
		{rules.CategoryMeta, 3, EffortQuick},
		{rules.CategoryMeta, 1, EffortQuick},
		{rules.CategoryContent, 3, EffortModerate},
		{rules.CategoryContent, 1, EffortQuick},
		{rules.CategoryTechnical, 2, EffortSignificant},
		{rules.CategoryTechnical, 1, EffortModerate},
		{rules.CategoryReadability, 3, EffortModerate},
		{rules.CategoryReadability, 1, EffortModerate},
	}
	for _, c := range cases {
		rule := rules.Rule{Category: c.category, Weight: c.weight}
		if got := effortFor(rule); got != c.want {
			t.Errorf("effortFor(%s, %.0f) = %s, want %s", c.category, c.weight, got, c.want)
		}
	}
}

func TestGreekTranslationFallback(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{HTML: "<p>tiny</p>"})
	set := Generate(result, registry, "el")

	for _, rec := range set.Recommendations {
		if rec.Why == "" {
			t.Errorf("Greek recommendation %s missing why text", rec.RuleID)
		}
		if rec.EstimatedTime == "" {
			t.Errorf("Greek recommendation %s missing estimated time", rec.RuleID)
		}
	}

	// Unknown languages must fall back to English without error.
	set = Generate(result, registry, "fr")
	if len(set.Recommendations) == 0 {
		t.Error("Fallback language generation produced nothing")
	}
}

func TestSummary(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{HTML: "<p>tiny</p>"})
	set := Generate(result, registry, "en")

	s := set.Summary
	if s.Total != len(set.Recommendations) {
		t.Errorf("Summary total %d != %d recommendations", s.Total, len(set.Recommendations))
	}
	if s.Critical+s.High+s.Medium+s.Low != s.Total {
		t.Error("Priority counts do not sum to total")
	}
	if s.PotentialScore > result.MaxScore {
		t.Errorf("Potential score %f exceeds maxScore %f", s.PotentialScore, result.MaxScore)
	}
	if s.PotentialScore < s.CurrentScore {
		t.Errorf("Potential score %f below current %f", s.PotentialScore, s.CurrentScore)
	}
	if s.PotentialGrade == "" || s.CurrentGrade == "" {
		t.Error("Summary grades missing")
	}
}

func TestGroupingIndexes(t *testing.T) {
	result, registry := analyzeFixture(t, rules.Input{HTML: "<p>tiny</p>"})
	set := Generate(result, registry, "en")

	grouped := 0
	for _, ids := range set.ByPriority {
		grouped += len(ids)
	}
	if grouped != len(set.Recommendations) {
		t.Errorf("ByPriority groups %d entries for %d recommendations", grouped, len(set.Recommendations))
	}
	byID := map[string]bool{}
	for _, rec := range set.Recommendations {
		byID[rec.ID] = true
	}
	for effort, ids := range set.ByEffort {
		for _, id := range ids {
			if !byID[id] {
				t.Errorf("ByEffort[%s] references unknown recommendation %s", effort, id)
			}
		}
	}
}
