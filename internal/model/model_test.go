package model

import (
	"errors"
	"testing"

	"github.com/roadguard/roadguard/internal/fatigue"
)

// constClassifier always predicts the same probability.
type constClassifier struct {
	p float64
}

func (c constClassifier) Name() string { return "const" }

func (c constClassifier) Predict(_ []float64) float64 { return c.p }

func TestTrainedModel_Predict(t *testing.T) {
	m := NewTrained(constClassifier{p: 0.8}, []string{"a", "b", "c"})

	label, p, err := m.Predict([]float64{1, 2, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != fatigue.LabelFatigued {
		t.Errorf("label = %s, want fatigued", label)
	}
	if p != 0.8 {
		t.Errorf("probability = %f, want 0.8", p)
	}
}

func TestTrainedModel_AlertBelowHalf(t *testing.T) {
	m := NewTrained(constClassifier{p: 0.3}, []string{"a"})

	label, _, err := m.Predict([]float64{1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != fatigue.LabelAlert {
		t.Errorf("label = %s, want alert", label)
	}
}

func TestTrainedModel_SchemaMismatch(t *testing.T) {
	m := NewTrained(constClassifier{p: 0.5}, []string{"a", "b", "c"})

	_, _, err := m.Predict([]float64{1, 2})
	var serr *fatigue.SchemaMismatchError
	if !errors.As(err, &serr) {
		t.Fatalf("expected SchemaMismatchError, got %v", err)
	}
	if serr.Want != 3 || serr.Got != 2 {
		t.Errorf("mismatch detail want=%d got=%d", serr.Want, serr.Got)
	}
}

func TestTrainedModel_FeatureNamesIsCopy(t *testing.T) {
	features := []string{"a", "b"}
	m := NewTrained(constClassifier{}, features)

	names := m.FeatureNames()
	names[0] = "mutated"
	if m.FeatureNames()[0] != "a" {
		t.Error("FeatureNames leaked internal state")
	}

	features[1] = "mutated"
	if m.FeatureNames()[1] != "b" {
		t.Error("constructor did not copy the feature slice")
	}
}
