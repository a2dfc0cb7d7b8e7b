package fatigue

import (
	"fmt"
	"math"
)

// BehavioralInput is a raw, unvalidated behavioral record as supplied by a
// form, CLI flags or an API request.
type BehavioralInput struct {
	SleepHours   float64
	DrivingHours float64
	CaffeineCups float64
	RestBreaks   float64
	StressLevel  int
	TimeOfDay    TimeOfDay
	Age          int
}

// Validate applies the clamping policy and returns an immutable sample.
// Numeric fields below their domain minimum are clamped to the minimum;
// stress level is clamped into its closed range. Conditions clamping cannot
// repair (unrecognized time of day, non-positive age, non-finite numbers)
// fail with a *ValidationError.
func (in BehavioralInput) Validate() (BehavioralSample, error) {
	for field, v := range map[string]float64{
		"sleep_hours":   in.SleepHours,
		"driving_hours": in.DrivingHours,
		"caffeine_cups": in.CaffeineCups,
		"rest_breaks":   in.RestBreaks,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return BehavioralSample{}, &ValidationError{Field: field, Reason: "value is not finite"}
		}
	}

	if _, ok := in.TimeOfDay.Code(); !ok {
		return BehavioralSample{}, &ValidationError{
			Field:  "time_of_day",
			Reason: fmt.Sprintf("unrecognized value %q", string(in.TimeOfDay)),
		}
	}

	if in.Age <= 0 {
		return BehavioralSample{}, &ValidationError{Field: "age", Reason: "must be positive"}
	}

	return BehavioralSample{
		SleepHours:   math.Max(in.SleepHours, 0),
		DrivingHours: math.Max(in.DrivingHours, 0),
		CaffeineCups: math.Max(in.CaffeineCups, 0),
		RestBreaks:   math.Max(in.RestBreaks, 0),
		StressLevel:  clampInt(in.StressLevel, StressMin, StressMax),
		TimeOfDay:    in.TimeOfDay,
		Age:          in.Age,
	}, nil
}

// BehavioralFeatureNames returns the canonical feature ordering the behavioral
// model is trained and queried with. The order is a contract: FeatureVector
// emits values in exactly this order.
func BehavioralFeatureNames() []string {
	return []string{
		"sleep_hours",
		"driving_hours",
		"caffeine_cups",
		"rest_breaks",
		"age",
		"stress_level",
		"time_of_day",
	}
}

// FeatureVector maps the sample into the canonical numeric feature order.
func (s BehavioralSample) FeatureVector() []float64 {
	code, _ := s.TimeOfDay.Code()
	return []float64{
		s.SleepHours,
		s.DrivingHours,
		s.CaffeineCups,
		s.RestBreaks,
		float64(s.Age),
		float64(s.StressLevel),
		code,
	}
}

// QuestionnaireFeatureNames returns the canonical ordering of the 14 Likert
// features.
func QuestionnaireFeatureNames() []string {
	names := make([]string, QuestionCount)
	for i := range names {
		names[i] = fmt.Sprintf("q%d", i+1)
	}
	return names
}

// ValidateResponses checks a raw Likert response slice against the
// questionnaire schema. A wrong number of responses fails with a
// *SchemaMismatchError; individual responses are clamped into the closed
// Likert range.
func ValidateResponses(responses []int) (QuestionnaireSample, error) {
	if len(responses) != QuestionCount {
		return QuestionnaireSample{}, &SchemaMismatchError{Want: QuestionCount, Got: len(responses)}
	}

	var s QuestionnaireSample
	for i, r := range responses {
		s.Responses[i] = clampInt(r, LikertMin, LikertMax)
	}
	return s, nil
}

// FeatureVector maps the responses into the canonical numeric feature order.
func (s QuestionnaireSample) FeatureVector() []float64 {
	x := make([]float64, QuestionCount)
	for i, r := range s.Responses {
		x[i] = float64(r)
	}
	return x
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
