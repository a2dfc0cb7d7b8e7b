package fatigue

// Label is the binary classification outcome of an assessment.
type Label string

const (
	LabelAlert    Label = "alert"
	LabelFatigued Label = "fatigued"
)

// IsValid checks if the label is a known value.
func (l Label) IsValid() bool {
	return l == LabelAlert || l == LabelFatigued
}

// TimeOfDay is the categorical time-of-day field of a behavioral sample.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeNight     TimeOfDay = "night"
)

// TimesOfDay lists the recognized values in their fixed ordinal encoding order.
var TimesOfDay = []TimeOfDay{TimeMorning, TimeAfternoon, TimeNight}

// Code returns the fixed ordinal encoding used in feature vectors.
// The second return is false for unrecognized values.
func (t TimeOfDay) Code() (float64, bool) {
	switch t {
	case TimeMorning:
		return 0, true
	case TimeAfternoon:
		return 1, true
	case TimeNight:
		return 2, true
	}
	return 0, false
}

// Domain bounds for the closed integer ranges.
const (
	StressMin = 1
	StressMax = 10

	LikertMin = 1
	LikertMax = 5

	// QuestionCount is the number of Likert items in the questionnaire.
	QuestionCount = 14
)

// BehavioralSample is one validated behavioral observation. For training
// samples Label is set by the generator; at inference time it is empty.
// A sample is a value type and is never mutated after construction.
type BehavioralSample struct {
	SleepHours   float64
	DrivingHours float64
	CaffeineCups float64
	RestBreaks   float64
	StressLevel  int
	TimeOfDay    TimeOfDay
	Age          int
	Label        Label
}

// QuestionnaireSample is one validated 14-item Likert response set.
type QuestionnaireSample struct {
	Responses [QuestionCount]int
	Label     Label
}
