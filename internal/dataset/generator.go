// Package dataset produces the synthetic training data both classifier
// pipelines are fit on, rebalances the questionnaire set, and reads
// caller-provided CSV seeds.
package dataset

import (
	"math/rand"

	"github.com/roadguard/roadguard/internal/fatigue"
)

// Marginal ranges for the behavioral generator. Chosen to span realistic
// shifts and to keep the threshold-rule label split roughly balanced.
const (
	sleepMin    = 3.0
	sleepMax    = 9.0
	drivingMax  = 14.0
	caffeineMax = 4.0
	restMax     = 5.0
	ageMin      = 18
	ageMax      = 70
)

// GenerateBehavioral draws n independent behavioral samples and labels each
// one with the threshold rule over the shared weighted score. The coupling is
// deliberate: the classifier is trained to approximate the deterministic
// score's decision boundary. Deterministic for a fixed rng.
func GenerateBehavioral(n int, w fatigue.Weights, rng *rand.Rand) []fatigue.BehavioralSample {
	samples := make([]fatigue.BehavioralSample, n)
	for i := range samples {
		s := fatigue.BehavioralSample{
			SleepHours:   sleepMin + rng.Float64()*(sleepMax-sleepMin),
			DrivingHours: rng.Float64() * drivingMax,
			CaffeineCups: rng.Float64() * caffeineMax,
			RestBreaks:   rng.Float64() * restMax,
			StressLevel:  fatigue.StressMin + rng.Intn(fatigue.StressMax-fatigue.StressMin+1),
			TimeOfDay:    fatigue.TimesOfDay[rng.Intn(len(fatigue.TimesOfDay))],
			Age:          ageMin + rng.Intn(ageMax-ageMin+1),
		}
		s.Label = fatigue.LabelForScore(fatigue.Score(s, w))
		samples[i] = s
	}
	return samples
}

// Questionnaire generation parameters. Most draws come from the alert-leaning
// item distribution, which skews the label split to roughly 80/20 and gives
// the balancer something to do.
const alertDrawProb = 0.80

// Per-item categorical distributions over Likert values 1..5.
var (
	alertItemProbs    = [5]float64{0.35, 0.30, 0.20, 0.10, 0.05}
	fatiguedItemProbs = [5]float64{0.05, 0.10, 0.20, 0.30, 0.35}
)

// questionWeights weight each Likert item in the labeling sum. Items 3, 6, 10
// and 14 (sleepiness during monotony in the source instrument) count extra.
var questionWeights = [fatigue.QuestionCount]float64{
	1, 1, 1.5, 1, 1, 1.5, 1, 1, 1, 1.5, 1, 1, 1, 1.5,
}

// questionnaireThreshold sits at the weighted-sum midpoint: response value 3
// on every item.
const questionnaireThreshold = 48.0

// GenerateQuestionnaire draws n independent 14-item Likert response sets and
// labels each by thresholding the weighted response sum. The skew lives in
// the draw distribution, not in the labeling rule.
func GenerateQuestionnaire(n int, rng *rand.Rand) []fatigue.QuestionnaireSample {
	samples := make([]fatigue.QuestionnaireSample, n)
	for i := range samples {
		probs := &alertItemProbs
		if rng.Float64() >= alertDrawProb {
			probs = &fatiguedItemProbs
		}

		var s fatigue.QuestionnaireSample
		sum := 0.0
		for j := range s.Responses {
			v := drawLikert(probs, rng)
			s.Responses[j] = v
			sum += questionWeights[j] * float64(v)
		}
		s.Label = questionnaireLabel(sum)
		samples[i] = s
	}
	return samples
}

// QuestionnaireLabel applies the labeling rule to a validated response set;
// exported so tests and the CSV loader can verify round-trips.
func QuestionnaireLabel(s fatigue.QuestionnaireSample) fatigue.Label {
	sum := 0.0
	for j, r := range s.Responses {
		sum += questionWeights[j] * float64(r)
	}
	return questionnaireLabel(sum)
}

func questionnaireLabel(sum float64) fatigue.Label {
	if sum >= questionnaireThreshold {
		return fatigue.LabelFatigued
	}
	return fatigue.LabelAlert
}

func drawLikert(probs *[5]float64, rng *rand.Rand) int {
	u := rng.Float64()
	acc := 0.0
	for i, p := range probs {
		acc += p
		if u < acc {
			return i + 1
		}
	}
	return fatigue.LikertMax
}
