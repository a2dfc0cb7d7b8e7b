package engine

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/model"
	"github.com/roadguard/roadguard/internal/risk"
)

func testEngine() *Engine {
	cfg := DefaultConfig()
	// Small ensembles keep the tests fast without changing the contracts.
	cfg.BehavioralSamples = 400
	cfg.QuestionnaireSamples = 300
	cfg.Forest = model.ForestConfig{Trees: 20, MaxDepth: 8, MinSamplesSplit: 2}
	cfg.Boost = model.BoostConfig{Rounds: 30, MaxDepth: 3, MinSamplesSplit: 2, LearningRate: 0.2}
	return New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestBehavioralModelCached(t *testing.T) {
	e := testEngine()

	m1, err := e.BehavioralModel(0, 42)
	if err != nil {
		t.Fatalf("BehavioralModel() error = %v", err)
	}
	m2, err := e.BehavioralModel(0, 42)
	if err != nil {
		t.Fatalf("BehavioralModel() error = %v", err)
	}
	if m1 != m2 {
		t.Error("same (count, seed) should return the cached model instance")
	}

	m3, err := e.BehavioralModel(0, 7)
	if err != nil {
		t.Fatalf("BehavioralModel() error = %v", err)
	}
	if m3 == m1 {
		t.Error("different seed should train a distinct model")
	}
}

func TestQuestionnaireModelCached(t *testing.T) {
	e := testEngine()

	m1, err := e.QuestionnaireModel(0, 42)
	if err != nil {
		t.Fatalf("QuestionnaireModel() error = %v", err)
	}
	if m1.Name() != "gradient_boost" {
		t.Errorf("Name() = %q, want %q", m1.Name(), "gradient_boost")
	}

	m2, err := e.QuestionnaireModel(0, 42)
	if err != nil {
		t.Fatalf("QuestionnaireModel() error = %v", err)
	}
	if m1 != m2 {
		t.Error("same (count, seed) should return the cached model instance")
	}
}

func TestQuestionnaireModelEmptyDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.csv")
	header := strings.Join(append(fatigue.QuestionnaireFeatureNames(), "label"), ",") + "\n"
	if err := os.WriteFile(path, []byte(header), 0644); err != nil {
		t.Fatalf("failed to write dataset: %v", err)
	}

	cfg := DefaultConfig()
	cfg.QuestionnaireDataset = path
	e := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := e.QuestionnaireModel(0, 42)
	if err == nil {
		t.Fatal("expected error for a header-only dataset")
	}
	if !errors.Is(err, fatigue.ErrInsufficientData) {
		t.Errorf("error = %v, want ErrInsufficientData", err)
	}
	var ide *fatigue.InsufficientDataError
	if !errors.As(err, &ide) {
		t.Errorf("error = %v, want *fatigue.InsufficientDataError", err)
	}
}

func TestInvalidateDropsCache(t *testing.T) {
	e := testEngine()

	m1, err := e.BehavioralModel(0, 42)
	if err != nil {
		t.Fatalf("BehavioralModel() error = %v", err)
	}
	if got := len(e.CacheEntries()); got != 1 {
		t.Fatalf("CacheEntries() len = %d, want 1", got)
	}

	e.Invalidate()
	if got := len(e.CacheEntries()); got != 0 {
		t.Fatalf("after Invalidate() cache len = %d, want 0", got)
	}

	m2, err := e.BehavioralModel(0, 42)
	if err != nil {
		t.Fatalf("BehavioralModel() error = %v", err)
	}
	if m1 == m2 {
		t.Error("retraining after Invalidate() should produce a fresh instance")
	}
}

func TestComputeFatigueScore(t *testing.T) {
	e := testEngine()

	high := fatigue.BehavioralInput{
		SleepHours:   3,
		DrivingHours: 10,
		CaffeineCups: 0,
		RestBreaks:   0,
		StressLevel:  9,
		TimeOfDay:    fatigue.TimeNight,
		Age:          45,
	}
	low := fatigue.BehavioralInput{
		SleepHours:   8,
		DrivingHours: 2,
		CaffeineCups: 1,
		RestBreaks:   3,
		StressLevel:  2,
		TimeOfDay:    fatigue.TimeAfternoon,
		Age:          30,
	}

	hs, err := e.ComputeFatigueScore(high)
	if err != nil {
		t.Fatalf("ComputeFatigueScore(high) error = %v", err)
	}
	ls, err := e.ComputeFatigueScore(low)
	if err != nil {
		t.Fatalf("ComputeFatigueScore(low) error = %v", err)
	}
	if hs <= ls {
		t.Errorf("high-risk score %.2f should exceed low-risk score %.2f", hs, ls)
	}

	bad := high
	bad.TimeOfDay = "dusk"
	if _, err := e.ComputeFatigueScore(bad); !errors.Is(err, fatigue.ErrValidation) {
		t.Errorf("invalid time of day error = %v, want ErrValidation", err)
	}
}

func TestAssess(t *testing.T) {
	e := testEngine()
	m, err := e.BehavioralModel(0, 42)
	if err != nil {
		t.Fatalf("BehavioralModel() error = %v", err)
	}

	in := fatigue.BehavioralInput{
		SleepHours:   3,
		DrivingHours: 11,
		CaffeineCups: 0,
		RestBreaks:   0,
		StressLevel:  9,
		TimeOfDay:    fatigue.TimeNight,
		Age:          50,
	}
	a, err := e.Assess(in, m)
	if err != nil {
		t.Fatalf("Assess() error = %v", err)
	}
	if a.ScoreMax != e.Weights().Max() {
		t.Errorf("ScoreMax = %.2f, want %.2f", a.ScoreMax, e.Weights().Max())
	}
	if a.Score < 0 || a.Score > a.ScoreMax {
		t.Errorf("Score = %.2f out of [0, %.2f]", a.Score, a.ScoreMax)
	}
	if a.Probability < 0 || a.Probability > 1 {
		t.Errorf("Probability = %.4f out of [0, 1]", a.Probability)
	}
	if a.Risk != risk.LevelHigh {
		t.Errorf("Risk = %q, want %q for a severe input", a.Risk, risk.LevelHigh)
	}
	if !a.Label.IsValid() {
		t.Errorf("Label = %q is not a valid label", a.Label)
	}
	if a.Action == "" {
		t.Error("Action should not be empty")
	}
}

func TestPredictQuestionnaire(t *testing.T) {
	e := testEngine()
	m, err := e.QuestionnaireModel(0, 42)
	if err != nil {
		t.Fatalf("QuestionnaireModel() error = %v", err)
	}

	severe := make([]int, fatigue.QuestionCount)
	mild := make([]int, fatigue.QuestionCount)
	for i := range severe {
		severe[i] = 5
		mild[i] = 1
	}

	_, pSevere, err := e.PredictQuestionnaire(severe, m)
	if err != nil {
		t.Fatalf("PredictQuestionnaire(severe) error = %v", err)
	}
	_, pMild, err := e.PredictQuestionnaire(mild, m)
	if err != nil {
		t.Fatalf("PredictQuestionnaire(mild) error = %v", err)
	}
	if pSevere <= pMild {
		t.Errorf("all-fives probability %.4f should exceed all-ones probability %.4f", pSevere, pMild)
	}

	var mismatch *fatigue.SchemaMismatchError
	if _, _, err := e.PredictQuestionnaire([]int{1, 2, 3}, m); !errors.As(err, &mismatch) {
		t.Errorf("short response vector error = %v, want SchemaMismatchError", err)
	}
}
