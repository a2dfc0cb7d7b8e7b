// Package model implements the tree ensembles behind both classifier
// pipelines and the immutable trained-model handle callers predict against.
package model

import (
	"github.com/roadguard/roadguard/internal/fatigue"
)

// Classifier is a fitted ensemble able to score a numeric feature vector.
// Predict returns the estimated probability of the fatigued class.
type Classifier interface {
	Name() string
	Predict(x []float64) float64
}

// TrainedModel pairs a fitted classifier with the canonical feature ordering
// it was trained on. Immutable once constructed: there is no retrain
// transition, a new training run always produces a new instance, so
// concurrent Predict calls are safe.
type TrainedModel struct {
	classifier Classifier
	features   []string
}

// NewTrained wraps a fitted classifier with its feature ordering contract.
func NewTrained(c Classifier, features []string) *TrainedModel {
	names := make([]string, len(features))
	copy(names, features)
	return &TrainedModel{classifier: c, features: names}
}

// Name returns the underlying classifier name.
func (m *TrainedModel) Name() string {
	return m.classifier.Name()
}

// FeatureNames returns a copy of the canonical feature ordering.
func (m *TrainedModel) FeatureNames() []string {
	names := make([]string, len(m.features))
	copy(names, m.features)
	return names
}

// Predict classifies a feature vector, returning the ensemble label and the
// estimated probability of the fatigued class. A vector whose length does not
// match the canonical ordering fails with a *fatigue.SchemaMismatchError,
// never a silent misprediction.
func (m *TrainedModel) Predict(x []float64) (fatigue.Label, float64, error) {
	if len(x) != len(m.features) {
		return "", 0, &fatigue.SchemaMismatchError{Want: len(m.features), Got: len(x)}
	}

	p := m.classifier.Predict(x)
	label := fatigue.LabelAlert
	if p >= 0.5 {
		label = fatigue.LabelFatigued
	}
	return label, p, nil
}
