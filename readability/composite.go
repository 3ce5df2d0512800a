package readability

import "math"

// CompositeWeights is the pinned weighting of the six normalized formula
// scores in the composite. All weights are equal: the composite is the plain
// mean. Tests pin this table; change it deliberately or not at all.
var CompositeWeights = map[Formula]float64{
	FleschReadingEase:  1,
	FleschKincaidGrade: 1,
	GunningFog:         1,
	SMOG:               1,
	ColemanLiau:        1,
	ARI:                1,
}

// FormulaScore is one formula's raw value, its 0-100 normalization and a
// coarse difficulty label.
type FormulaScore struct {
	Formula    Formula `json:"formula"`
	Raw        float64 `json:"raw"`
	Normalized float64 `json:"normalized"`
	Level      string  `json:"level"`
}

// Normalize maps a formula's native value onto the 0-100 comparable scale.
// Flesch is already 0-100 and is only clamped; grade-level formulas map
// grade 4 (very easy) to 100 and lose 8 points per grade above that.
func Normalize(f Formula, raw float64) float64 {
	if f == FleschReadingEase {
		return clamp(raw, 0, 100)
	}
	return clamp(100-(raw-4)*8, 0, 100)
}

// LevelFor labels a normalized 0-100 score.
func LevelFor(normalized float64) string {
	switch {
	case normalized >= 90:
		return "very easy"
	case normalized >= 70:
		return "easy"
	case normalized >= 50:
		return "standard"
	case normalized >= 30:
		return "difficult"
	default:
		return "very difficult"
	}
}

// Scores evaluates all six formulas for the given counts.
func Scores(s Stats, lang Language) []FormulaScore {
	out := make([]FormulaScore, 0, len(Formulas))
	for _, f := range Formulas {
		raw := Raw(f, s, lang)
		normalized := round2(Normalize(f, raw))
		out = append(out, FormulaScore{
			Formula:    f,
			Raw:        round2(raw),
			Normalized: normalized,
			Level:      LevelFor(normalized),
		})
	}
	return out
}

// Composite aggregates the normalized scores with CompositeWeights.
// Empty text yields 0.
func Composite(s Stats, lang Language) float64 {
	if s.Words == 0 {
		return 0
	}
	var sum, weightSum float64
	for _, f := range Formulas {
		w := CompositeWeights[f]
		sum += w * Normalize(f, Raw(f, s, lang))
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return round2(sum / weightSum)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
