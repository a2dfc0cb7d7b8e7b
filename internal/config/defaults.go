package config

import (
	"github.com/roadguard/roadguard/internal/fatigue"
	"github.com/roadguard/roadguard/internal/risk"
)

func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:      "0.0.0.0",
			Port:      8080,
			PIDFile:   "/var/run/roadguard.pid",
			MaxBodyKB: 64,
			RateLimit: RateLimitConfig{
				Enabled:           false,
				RequestsPerSecond: 100,
				Burst:             200,
			},
		},
		Auth: AuthConfig{
			Enabled:  false,
			User:     "",
			Password: "",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
		},
		Engine: EngineConfig{
			Seed:                 42,
			Weights:              fatigue.DefaultWeights(),
			BehavioralSamples:    3000,
			QuestionnaireSamples: 2000,
			Forest: ForestConfig{
				Trees:           300,
				MaxDepth:        12,
				MinSamplesSplit: 2,
			},
			Boost: BoostConfig{
				Rounds:          150,
				MaxDepth:        3,
				MinSamplesSplit: 2,
				LearningRate:    0.1,
			},
		},
		Risk: RiskConfig{
			Thresholds: risk.DefaultThresholds(),
		},
		Records: RecordsConfig{
			Capacity: 1000,
		},
	}
}
