package config

import (
	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/risk"
)

type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Auth    AuthConfig    `yaml:"auth"`
	Logging LoggingConfig `yaml:"logging"`
	Engine  EngineConfig  `yaml:"engine"`
	Risk    RiskConfig    `yaml:"risk"`
	Records RecordsConfig `yaml:"records"`
}

type ServerConfig struct {
	Host      string          `yaml:"host"`
	Port      int             `yaml:"port"`
	PIDFile   string          `yaml:"pid_file"`
	MaxBodyKB int             `yaml:"max_body_kb"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
}

type RateLimitConfig struct {
	Enabled           bool    `yaml:"enabled"`
	RequestsPerSecond float64 `yaml:"requests_per_second"`
	Burst             int     `yaml:"burst"`
}

type AuthConfig struct {
	Enabled  bool   `yaml:"enabled"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// EngineConfig holds training configuration for both pipelines.
type EngineConfig struct {
	// Seed drives every pseudo-random step: dataset synthesis, class
	// rebalancing and ensemble training.
	Seed int64 `yaml:"seed"`

	// Weights of the deterministic fatigue score, in score points.
	Weights fatigue.Weights `yaml:"weights"`

	// Synthetic training set sizes.
	BehavioralSamples    int `yaml:"behavioral_samples"`
	QuestionnaireSamples int `yaml:"questionnaire_samples"`

	// QuestionnaireDataset optionally points at a CSV with recorded
	// questionnaire answers; when set it replaces the synthetic set.
	QuestionnaireDataset string `yaml:"questionnaire_dataset"`

	Forest ForestConfig `yaml:"forest"`
	Boost  BoostConfig  `yaml:"boost"`
}

type ForestConfig struct {
	Trees            int `yaml:"trees"`
	MaxDepth         int `yaml:"max_depth"`
	MinSamplesSplit  int `yaml:"min_samples_split"`
	FeaturesPerSplit int `yaml:"features_per_split"`
}

type BoostConfig struct {
	Rounds          int     `yaml:"rounds"`
	MaxDepth        int     `yaml:"max_depth"`
	MinSamplesSplit int     `yaml:"min_samples_split"`
	LearningRate    float64 `yaml:"learning_rate"`
}

type RiskConfig struct {
	Thresholds risk.Thresholds `yaml:"thresholds"`
}

type RecordsConfig struct {
	Capacity int `yaml:"capacity"`
}
