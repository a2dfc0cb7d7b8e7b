// Package engine is the in-process boundary the surrounding dashboard, CLI
// and API consume: it owns training, the model cache and the prediction
// entry points of both pipelines.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/roadguard/roadguard/internal/dataset"
	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/model"
	"github.com/roadguard/roadguard/internal/risk"
)

// Pipeline identifies one of the two independent classification paths.
type Pipeline string

const (
	PipelineBehavioral    Pipeline = "behavioral"
	PipelineQuestionnaire Pipeline = "questionnaire"
)

// Config holds the engine's fixed training configuration.
type Config struct {
	Seed    int64
	Weights fatigue.Weights
	Risk    risk.Thresholds

	BehavioralSamples    int
	QuestionnaireSamples int

	Forest model.ForestConfig
	Boost  model.BoostConfig

	// QuestionnaireDataset optionally seeds the questionnaire pipeline from
	// a read-only CSV instead of the synthetic generator.
	QuestionnaireDataset string
}

// DefaultConfig returns the pinned engine defaults.
func DefaultConfig() Config {
	return Config{
		Seed:                 42,
		Weights:              fatigue.DefaultWeights(),
		Risk:                 risk.DefaultThresholds(),
		BehavioralSamples:    3000,
		QuestionnaireSamples: 2000,
		Forest:               model.DefaultForestConfig(),
		Boost:                model.DefaultBoostConfig(),
	}
}

// cacheKey identifies one trained model. Per the fit-once design, a model is
// fully determined by its pipeline, seed and sample count.
type cacheKey struct {
	pipeline Pipeline
	seed     int64
	count    int
}

// Engine trains and caches the two pipelines' models and scores behavioral
// input. Trained models are immutable; the cache only ever swaps whole
// instances, so readers never observe a partially fitted model.
type Engine struct {
	cfg    Config
	logger *slog.Logger

	mu     sync.RWMutex
	models map[cacheKey]*model.TrainedModel
}

// New creates an engine. Invalid sample counts fall back to defaults.
func New(cfg Config, logger *slog.Logger) *Engine {
	def := DefaultConfig()
	if cfg.BehavioralSamples <= 0 {
		cfg.BehavioralSamples = def.BehavioralSamples
	}
	if cfg.QuestionnaireSamples <= 0 {
		cfg.QuestionnaireSamples = def.QuestionnaireSamples
	}
	if cfg.Weights.Max() <= 0 {
		cfg.Weights = def.Weights
	}
	if cfg.Risk.High <= 0 {
		cfg.Risk = def.Risk
	}
	return &Engine{
		cfg:    cfg,
		logger: logger,
		models: make(map[cacheKey]*model.TrainedModel),
	}
}

// Weights returns the score weight vector the engine was built with.
func (e *Engine) Weights() fatigue.Weights {
	return e.cfg.Weights
}

// Risk returns the configured risk thresholds.
func (e *Engine) Risk() risk.Thresholds {
	return e.cfg.Risk
}

// BehavioralModel returns the cached behavioral model for (count, seed),
// training it on first use.
func (e *Engine) BehavioralModel(count int, seed int64) (*model.TrainedModel, error) {
	if count <= 0 {
		count = e.cfg.BehavioralSamples
	}
	key := cacheKey{PipelineBehavioral, seed, count}
	if m, ok := e.cached(key); ok {
		return m, nil
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))
	samples := dataset.GenerateBehavioral(count, e.cfg.Weights, rng)

	x := make([][]float64, len(samples))
	y := make([]int, len(samples))
	for i, s := range samples {
		x[i] = s.FeatureVector()
		y[i] = classOf(s.Label)
	}

	forest := model.TrainForest(x, y, e.cfg.Forest, rng)
	m := model.NewTrained(forest, fatigue.BehavioralFeatureNames())
	e.store(key, m)

	e.logger.Info("behavioral model trained",
		"samples", count,
		"seed", seed,
		"trees", e.cfg.Forest.Trees,
		"duration", time.Since(start),
	)
	return m, nil
}

// QuestionnaireModel returns the cached questionnaire model for (count,
// seed), training it on first use. The training set is generated (or loaded
// from the configured CSV), then rebalanced before fitting.
func (e *Engine) QuestionnaireModel(count int, seed int64) (*model.TrainedModel, error) {
	if count <= 0 {
		count = e.cfg.QuestionnaireSamples
	}
	key := cacheKey{PipelineQuestionnaire, seed, count}
	if m, ok := e.cached(key); ok {
		return m, nil
	}

	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	var samples []fatigue.QuestionnaireSample
	if e.cfg.QuestionnaireDataset != "" {
		loaded, err := dataset.LoadQuestionnaireCSVFile(e.cfg.QuestionnaireDataset)
		if err != nil {
			return nil, fmt.Errorf("failed to load questionnaire dataset: %w", err)
		}
		if len(loaded) == 0 {
			return nil, &fatigue.InsufficientDataError{Op: "questionnaire dataset", Need: 1, Got: 0}
		}
		samples = loaded
	} else {
		samples = dataset.GenerateQuestionnaire(count, rng)
	}

	balanced, err := dataset.Balance(samples, rng)
	if err != nil {
		return nil, fmt.Errorf("failed to balance questionnaire dataset: %w", err)
	}

	x := make([][]float64, len(balanced))
	y := make([]int, len(balanced))
	for i, s := range balanced {
		x[i] = s.FeatureVector()
		y[i] = classOf(s.Label)
	}

	boost := model.TrainBoost(x, y, e.cfg.Boost)
	m := model.NewTrained(boost, fatigue.QuestionnaireFeatureNames())
	e.store(key, m)

	e.logger.Info("questionnaire model trained",
		"samples", len(samples),
		"balanced", len(balanced),
		"seed", seed,
		"rounds", e.cfg.Boost.Rounds,
		"duration", time.Since(start),
	)
	return m, nil
}

// ComputeFatigueScore validates raw input and computes the deterministic
// score, independent of any learned model.
func (e *Engine) ComputeFatigueScore(in fatigue.BehavioralInput) (float64, error) {
	s, err := in.Validate()
	if err != nil {
		return 0, err
	}
	return fatigue.Score(s, e.cfg.Weights), nil
}

// PredictBehavioral validates raw input and classifies it with m.
func (e *Engine) PredictBehavioral(in fatigue.BehavioralInput, m *model.TrainedModel) (fatigue.Label, float64, error) {
	s, err := in.Validate()
	if err != nil {
		return "", 0, err
	}
	return m.Predict(s.FeatureVector())
}

// PredictQuestionnaire validates raw Likert responses and classifies them
// with m.
func (e *Engine) PredictQuestionnaire(responses []int, m *model.TrainedModel) (fatigue.Label, float64, error) {
	s, err := fatigue.ValidateResponses(responses)
	if err != nil {
		return "", 0, err
	}
	return m.Predict(s.FeatureVector())
}

// Assessment is the combined result shown for one behavioral input: the
// deterministic score with its risk band next to the learned verdict.
type Assessment struct {
	Score       float64       `json:"score"`
	ScoreMax    float64       `json:"score_max"`
	Label       fatigue.Label `json:"label"`
	Probability float64       `json:"probability"`
	Risk        risk.Level    `json:"risk"`
	Action      string        `json:"action"`
}

// Assess runs the full behavioral path: validate once, score, classify and
// bucket the risk.
func (e *Engine) Assess(in fatigue.BehavioralInput, m *model.TrainedModel) (*Assessment, error) {
	s, err := in.Validate()
	if err != nil {
		return nil, err
	}

	score := fatigue.Score(s, e.cfg.Weights)
	label, p, err := m.Predict(s.FeatureVector())
	if err != nil {
		return nil, err
	}

	return &Assessment{
		Score:       score,
		ScoreMax:    e.cfg.Weights.Max(),
		Label:       label,
		Probability: p,
		Risk:        e.cfg.Risk.Level(score),
		Action:      e.cfg.Risk.Action(score),
	}, nil
}

// CacheEntry describes one cached model for the status surface.
type CacheEntry struct {
	Pipeline Pipeline `json:"pipeline"`
	Seed     int64    `json:"seed"`
	Samples  int      `json:"samples"`
	Model    string   `json:"model"`
}

// CacheEntries lists the currently cached models.
func (e *Engine) CacheEntries() []CacheEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	entries := make([]CacheEntry, 0, len(e.models))
	for key, m := range e.models {
		entries = append(entries, CacheEntry{
			Pipeline: key.pipeline,
			Seed:     key.seed,
			Samples:  key.count,
			Model:    m.Name(),
		})
	}
	return entries
}

// Invalidate drops every cached model. Models already handed out stay valid;
// the next training call produces fresh instances.
func (e *Engine) Invalidate() {
	e.mu.Lock()
	e.models = make(map[cacheKey]*model.TrainedModel)
	e.mu.Unlock()
}

func (e *Engine) cached(key cacheKey) (*model.TrainedModel, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	m, ok := e.models[key]
	return m, ok
}

func (e *Engine) store(key cacheKey, m *model.TrainedModel) {
	e.mu.Lock()
	e.models[key] = m
	e.mu.Unlock()
}

func classOf(l fatigue.Label) int {
	if l == fatigue.LabelFatigued {
		return 1
	}
	return 0
}
