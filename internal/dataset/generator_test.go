package dataset

import (
	"math/rand"
	"testing"

	"github.com/roadguard/roadguard/internal/fatigue"
)

func TestGenerateBehavioral_Count(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples := GenerateBehavioral(500, fatigue.DefaultWeights(), rng)
	if len(samples) != 500 {
		t.Fatalf("expected 500 samples, got %d", len(samples))
	}
}

func TestGenerateBehavioral_Deterministic(t *testing.T) {
	w := fatigue.DefaultWeights()
	a := GenerateBehavioral(200, w, rand.New(rand.NewSource(7)))
	b := GenerateBehavioral(200, w, rand.New(rand.NewSource(7)))

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical seeds: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestGenerateBehavioral_Ranges(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for _, s := range GenerateBehavioral(1000, fatigue.DefaultWeights(), rng) {
		if s.SleepHours < sleepMin || s.SleepHours > sleepMax {
			t.Fatalf("sleep hours %f out of range", s.SleepHours)
		}
		if s.DrivingHours < 0 || s.DrivingHours > drivingMax {
			t.Fatalf("driving hours %f out of range", s.DrivingHours)
		}
		if s.StressLevel < fatigue.StressMin || s.StressLevel > fatigue.StressMax {
			t.Fatalf("stress level %d out of range", s.StressLevel)
		}
		if s.Age < ageMin || s.Age > ageMax {
			t.Fatalf("age %d out of range", s.Age)
		}
		if _, ok := s.TimeOfDay.Code(); !ok {
			t.Fatalf("unrecognized time of day %q", s.TimeOfDay)
		}
	}
}

// The generator's ground truth must reproduce through the scorer: feeding a
// generated sample back through the threshold rule yields its label exactly.
func TestGenerateBehavioral_LabelRoundTrip(t *testing.T) {
	w := fatigue.DefaultWeights()
	rng := rand.New(rand.NewSource(99))
	for i, s := range GenerateBehavioral(1000, w, rng) {
		want := fatigue.LabelForScore(fatigue.Score(s, w))
		if s.Label != want {
			t.Fatalf("sample %d: label %s, threshold rule says %s", i, s.Label, want)
		}
	}
}

func TestGenerateBehavioral_RoughlyBalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples := GenerateBehavioral(3000, fatigue.DefaultWeights(), rng)

	fatigued := 0
	for _, s := range samples {
		if s.Label == fatigue.LabelFatigued {
			fatigued++
		}
	}
	ratio := float64(fatigued) / float64(len(samples))
	if ratio < 0.25 || ratio > 0.75 {
		t.Errorf("behavioral label split %f is not roughly balanced", ratio)
	}
}

func TestGenerateQuestionnaire_ResponsesInRange(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for _, s := range GenerateQuestionnaire(500, rng) {
		for j, r := range s.Responses {
			if r < fatigue.LikertMin || r > fatigue.LikertMax {
				t.Fatalf("response q%d = %d out of range", j+1, r)
			}
		}
		if !s.Label.IsValid() {
			t.Fatalf("invalid label %q", s.Label)
		}
	}
}

func TestGenerateQuestionnaire_Imbalanced(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	samples := GenerateQuestionnaire(3000, rng)

	fatigued := 0
	for _, s := range samples {
		if s.Label == fatigue.LabelFatigued {
			fatigued++
		}
	}
	ratio := float64(fatigued) / float64(len(samples))
	// The documented skew is roughly 80/20 toward alert.
	if ratio < 0.08 || ratio > 0.35 {
		t.Errorf("questionnaire fatigued ratio %f, expected a clear minority", ratio)
	}
}

func TestGenerateQuestionnaire_LabelRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i, s := range GenerateQuestionnaire(500, rng) {
		if got := QuestionnaireLabel(s); got != s.Label {
			t.Fatalf("sample %d: label %s, rule says %s", i, s.Label, got)
		}
	}
}

func TestGenerateQuestionnaire_Deterministic(t *testing.T) {
	a := GenerateQuestionnaire(200, rand.New(rand.NewSource(11)))
	b := GenerateQuestionnaire(200, rand.New(rand.NewSource(11)))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs between identical seeds", i)
		}
	}
}
