// Package risk buckets fatigue scores into advisory bands and maps each band
// to the safety action shown alongside an assessment.
package risk

// Level is the advisory risk band of a fatigue score.
type Level string

const (
	LevelLow      Level = "low"
	LevelModerate Level = "moderate"
	LevelHigh     Level = "high"
)

// Thresholds hold the band boundaries over the fatigue score. Scores below
// Moderate are low risk, scores at or above High are high risk. High is kept
// aligned with the fatigued classification threshold so a high-risk score and
// a fatigued label agree.
type Thresholds struct {
	Moderate float64 `yaml:"moderate"`
	High     float64 `yaml:"high"`
}

// DefaultThresholds returns the pinned bands for the default 0-100 score
// scale.
func DefaultThresholds() Thresholds {
	return Thresholds{Moderate: 20, High: 35}
}

// Level returns the band a score falls in.
func (t Thresholds) Level(score float64) Level {
	switch {
	case score >= t.High:
		return LevelHigh
	case score >= t.Moderate:
		return LevelModerate
	default:
		return LevelLow
	}
}

// Action returns the safety advisory for a score.
func (t Thresholds) Action(score float64) string {
	switch t.Level(score) {
	case LevelHigh:
		return "High risk: do not drive. Take a sustained rest of 1-2 hours or arrange a replacement before resuming."
	case LevelModerate:
		return "Moderate risk: take a short rest of 15-30 minutes and reassess. Avoid long or monotonous driving until the score improves."
	default:
		return "Driver can continue. Maintain standard vigilance and encourage brief breaks every 2-3 hours."
	}
}
