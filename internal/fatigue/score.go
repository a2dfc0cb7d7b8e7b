package fatigue

// Weights pins the contribution of each behavioral factor to the fatigue
// score. Every contribution is normalized into [0,1] before weighting, so the
// maximum score is the sum of the weights. Changing a weight changes what the
// synthetic generator labels, so weights are configuration, never derived.
type Weights struct {
	SleepDeficit float64 `yaml:"sleep_deficit"`
	Driving      float64 `yaml:"driving"`
	Stress       float64 `yaml:"stress"`
	RestBreaks   float64 `yaml:"rest_breaks"`
	Caffeine     float64 `yaml:"caffeine"`
	TimeOfDay    float64 `yaml:"time_of_day"`
	Age          float64 `yaml:"age"`
}

// DefaultWeights returns the pinned default weight vector. The defaults sum
// to 100, putting the score on a 0-100 scale.
func DefaultWeights() Weights {
	return Weights{
		SleepDeficit: 30,
		Driving:      25,
		Stress:       15,
		RestBreaks:   10,
		Caffeine:     8,
		TimeOfDay:    7,
		Age:          5,
	}
}

// Max returns the score ceiling for this weight vector.
func (w Weights) Max() float64 {
	return w.SleepDeficit + w.Driving + w.Stress + w.RestBreaks + w.Caffeine + w.TimeOfDay + w.Age
}

// Normalization pivots. Each factor's raw value is mapped into [0,1] against
// these before weighting, so no factor dominates purely by scale.
const (
	sleepTarget = 8.0 // hours below which sleep deficit accrues
	sleepSpan   = 5.0 // deficit saturates at 3h of sleep

	drivingOnset = 6.0 // hours past which driving load accrues
	drivingSpan  = 8.0 // load saturates at 14h

	caffeineTarget = 2.0 // cups below which the protective effect tapers off

	restTarget = 4.0 // breaks below which rest deficit accrues

	stressPivot = 5.0 // stress above the midpoint accrues
	stressSpan  = 5.0

	agePivot = 30.0 // years past which age contributes
	ageSpan  = 40.0
)

// FatiguedThreshold is the score at and above which a sample is labeled
// fatigued. The synthetic generator uses the same cut, which keeps the
// classifier's ground truth coupled to this function.
const FatiguedThreshold = 35.0

// Score computes the deterministic fatigue score of a validated sample.
// Pure: no state, no side effects. Monotonic non-decreasing in driving hours,
// stress and age; monotonic non-increasing in sleep hours, caffeine (within
// its modeled range) and rest breaks.
func Score(s BehavioralSample, w Weights) float64 {
	score := w.SleepDeficit * clamp01((sleepTarget-s.SleepHours)/sleepSpan)
	score += w.Driving * clamp01((s.DrivingHours-drivingOnset)/drivingSpan)
	score += w.Stress * clamp01((float64(s.StressLevel)-stressPivot)/stressSpan)
	score += w.RestBreaks * clamp01((restTarget-s.RestBreaks)/restTarget)
	score += w.Caffeine * clamp01((caffeineTarget-s.CaffeineCups)/caffeineTarget)
	if s.TimeOfDay == TimeNight {
		score += w.TimeOfDay
	}
	score += w.Age * clamp01((float64(s.Age)-agePivot)/ageSpan)
	return score
}

// LabelForScore applies the threshold rule shared by the generator and the
// inference path.
func LabelForScore(score float64) Label {
	if score >= FatiguedThreshold {
		return LabelFatigued
	}
	return LabelAlert
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
