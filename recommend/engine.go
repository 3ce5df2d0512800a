// Package recommend turns failed rules into prioritized, impact-estimated,
// localized recommendations. Generation is re-entrant: the same analysis
// result produces identical output apart from the explicit timestamp.
package recommend

import (
	"fmt"
	"sort"
	"time"

	"github.com/pagegrade/backend/rules"
)

// quickWinLimit caps the quick-wins list.
const quickWinLimit = 5

// Generate builds the recommendation set for an analysis result. lang
// selects the output language ("en" or "el"); anything else falls back to
// English.
func Generate(result *rules.AnalysisResult, registry *rules.Registry, lang string) *RecommendationSet {
	return generateAt(result, registry, lang, time.Now())
}

// generateAt is Generate with an explicit clock, so output is reproducible.
func generateAt(result *rules.AnalysisResult, registry *rules.Registry, lang string, now time.Time) *RecommendationSet {
	set := &RecommendationSet{
		Recommendations: []Recommendation{},
		ByPriority:      map[string][]string{},
		ByCategory:      map[string][]string{},
		ByEffort:        map[string][]string{},
		QuickWins:       []Recommendation{},
	}
	if lang != "el" {
		lang = "en"
	}

	var totalIncrease float64
	for _, issue := range result.Issues {
		rule, ok := registry.ByID(issue.ID)
		if !ok {
			// Issue from an unknown rule (e.g. a trimmed catalogue):
			// synthesize from the issue alone.
			rule = rules.Rule{
				ID: issue.ID, Category: issue.Category, Weight: issue.Impact,
				Severity: issue.Severity, Title: issue.Title, Description: issue.Description,
			}
		}
		rec := buildRecommendation(rule, issue, result, lang, now)
		totalIncrease += rec.ImpactEstimate.ScoreIncrease

		set.Recommendations = append(set.Recommendations, rec)
		set.ByPriority[rec.Priority] = append(set.ByPriority[rec.Priority], rec.ID)
		set.ByCategory[rec.Category] = append(set.ByCategory[rec.Category], rec.ID)
		set.ByEffort[rec.Effort] = append(set.ByEffort[rec.Effort], rec.ID)
	}

	set.QuickWins = quickWins(set.Recommendations)
	set.Summary = buildSummary(set.Recommendations, result, totalIncrease)
	return set
}

func buildRecommendation(rule rules.Rule, issue rules.Issue, result *rules.AnalysisResult, lang string, now time.Time) Recommendation {
	tpl := templateFor(rule.ID, rule.Description)
	effort := effortFor(rule)
	projected := result.Score + rule.Weight
	if projected > result.MaxScore {
		projected = result.MaxScore
	}
	var pctIncrease float64
	if result.MaxScore > 0 {
		pctIncrease = round2(rule.Weight / result.MaxScore * 100)
	}

	return Recommendation{
		ID:          fmt.Sprintf("%s-%d", rule.ID, now.UnixMilli()),
		RuleID:      rule.ID,
		Title:       rule.Title,
		Priority:    rule.Severity,
		Category:    rule.Category,
		Description: issue.Description,
		Actions:     tpl.actions,
		Effort:      effort,
		EstimatedTime: tr(lang, "time."+effort),
		ImpactEstimate: ImpactEstimate{
			ScoreIncrease:      rule.Weight,
			PercentageIncrease: pctIncrease,
			CurrentScore:       result.Score,
			ProjectedScore:     projected,
			RankingImpact:      rankingImpact(rule.Severity),
		},
		Example:   tpl.example,
		Why:       whyFor(lang, rule.ID),
		Resources: resourcesOrEmpty(tpl.resources),
		Weight:    rule.Weight,
		Severity:  rule.Severity,
		Timestamp: now,
	}
}

// effortFor is the documented category/weight mapping:
//
//	technical, weight >= 2        -> significant (structural markup work)
//	technical, weight < 2         -> moderate
//	readability (any weight)      -> moderate    (prose rewriting)
//	content, weight >= 2          -> moderate
//	content, weight < 2           -> quick
//	meta (any weight)             -> quick       (tag edits)
func effortFor(rule rules.Rule) string {
	switch rule.Category {
	case rules.CategoryTechnical:
		if rule.Weight >= 2 {
			return EffortSignificant
		}
		return EffortModerate
	case rules.CategoryReadability:
		return EffortModerate
	case rules.CategoryContent:
		if rule.Weight >= 2 {
			return EffortModerate
		}
		return EffortQuick
	default:
		return EffortQuick
	}
}

func rankingImpact(severity string) string {
	switch severity {
	case rules.SeverityCritical, rules.SeverityHigh:
		return "high"
	case rules.SeverityMedium:
		return "medium"
	default:
		return "low"
	}
}

func whyFor(lang, ruleID string) string {
	key := "why." + ruleID
	if s := tr(lang, key); s != key {
		return s
	}
	return tr(lang, "why.generic")
}

func resourcesOrEmpty(resources []Resource) []Resource {
	if resources == nil {
		return []Resource{}
	}
	return resources
}

// quickWins picks the top recommendations that are both fast and important:
// effort=quick with critical or high priority, ranked by score increase
// descending, ties keeping issue order.
func quickWins(recommendations []Recommendation) []Recommendation {
	wins := []Recommendation{}
	for _, rec := range recommendations {
		if rec.Effort != EffortQuick {
			continue
		}
		if rec.Priority != rules.SeverityCritical && rec.Priority != rules.SeverityHigh {
			continue
		}
		wins = append(wins, rec)
	}
	sort.SliceStable(wins, func(i, j int) bool {
		return wins[i].ImpactEstimate.ScoreIncrease > wins[j].ImpactEstimate.ScoreIncrease
	})
	if len(wins) > quickWinLimit {
		wins = wins[:quickWinLimit]
	}
	return wins
}

func buildSummary(recommendations []Recommendation, result *rules.AnalysisResult, totalIncrease float64) Summary {
	s := Summary{
		Total:                  len(recommendations),
		CurrentScore:           result.Score,
		CurrentGrade:           result.Grade,
		TotalPotentialIncrease: totalIncrease,
	}
	for _, rec := range recommendations {
		switch rec.Priority {
		case rules.SeverityCritical:
			s.Critical++
		case rules.SeverityHigh:
			s.High++
		case rules.SeverityMedium:
			s.Medium++
		case rules.SeverityLow:
			s.Low++
		}
	}
	potential := result.Score + totalIncrease
	if potential > result.MaxScore {
		potential = result.MaxScore
	}
	s.PotentialScore = potential
	if result.MaxScore > 0 {
		s.PotentialGrade = rules.GradeFor(int(potential / result.MaxScore * 100))
	} else {
		s.PotentialGrade = result.Grade
	}
	return s
}

func round2(v float64) float64 {
	return float64(int(v*100+0.5)) / 100
}
