package recommend

import "time"

// Effort levels.
const (
	EffortQuick       = "quick"
	EffortModerate    = "moderate"
	EffortSignificant = "significant"
)

// Action is one step of a recommendation plan.
type Action struct {
	Step     int    `json:"step"`
	Action   string `json:"action"`
	Type     string `json:"type"` // action, check or note
	Specific bool   `json:"specific"`
}

// ImpactEstimate projects the score gain from fixing one rule.
type ImpactEstimate struct {
	ScoreIncrease      float64 `json:"scoreIncrease"`
	PercentageIncrease float64 `json:"percentageIncrease"`
	CurrentScore       float64 `json:"currentScore"`
	ProjectedScore     float64 `json:"projectedScore"`
	RankingImpact      string  `json:"rankingImpact"` // high, medium or low
}

// Example shows a before/after transformation.
type Example struct {
	Before string `json:"before"`
	After  string `json:"after"`
}

// Resource links supporting documentation.
type Resource struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Recommendation is the actionable transformation of one failed rule.
type Recommendation struct {
	ID             string         `json:"id"`
	RuleID         string         `json:"ruleId"`
	Title          string         `json:"title"`
	Priority       string         `json:"priority"` // critical, high, medium, low
	Category       string         `json:"category"`
	Description    string         `json:"description"`
	Actions        []Action       `json:"actions"`
	Effort         string         `json:"effort"`
	EstimatedTime  string         `json:"estimatedTime"`
	ImpactEstimate ImpactEstimate `json:"impactEstimate"`
	Example        *Example       `json:"example,omitempty"`
	Why            string         `json:"why"`
	Resources      []Resource     `json:"resources"`
	Weight         float64        `json:"weight"`
	Severity       string         `json:"severity"`
	Timestamp      time.Time      `json:"timestamp"`
}

// Summary aggregates a recommendation set.
type Summary struct {
	Total                  int     `json:"total"`
	Critical               int     `json:"critical"`
	High                   int     `json:"high"`
	Medium                 int     `json:"medium"`
	Low                    int     `json:"low"`
	CurrentScore           float64 `json:"currentScore"`
	PotentialScore         float64 `json:"potentialScore"`
	CurrentGrade           string  `json:"currentGrade"`
	PotentialGrade         string  `json:"potentialGrade"`
	TotalPotentialIncrease float64 `json:"totalPotentialIncrease"`
}

// RecommendationSet is the complete output of one generation run.
type RecommendationSet struct {
	Recommendations []Recommendation            `json:"recommendations"`
	Summary         Summary                     `json:"summary"`
	ByPriority      map[string][]string         `json:"byPriority"` // priority -> recommendation IDs
	ByCategory      map[string][]string         `json:"byCategory"`
	ByEffort        map[string][]string         `json:"byEffort"`
	QuickWins       []Recommendation            `json:"quickWins"`
}
