package config

import (
	"errors"
	"fmt"
)

func (c *Config) Validate() error {
	var errs []error

	if err := c.Server.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("server: %w", err))
	}

	if err := c.Auth.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("auth: %w", err))
	}

	if err := c.Logging.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("logging: %w", err))
	}

	if err := c.Engine.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("engine: %w", err))
	}

	if err := c.Risk.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("risk: %w", err))
	}

	if err := c.Records.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("records: %w", err))
	}

	return errors.Join(errs...)
}

func (s *ServerConfig) Validate() error {
	var errs []error

	if s.Port < 1 || s.Port > 65535 {
		errs = append(errs, fmt.Errorf("port must be between 1 and 65535, got %d", s.Port))
	}
	if s.MaxBodyKB < 1 {
		errs = append(errs, fmt.Errorf("max_body_kb must be at least 1, got %d", s.MaxBodyKB))
	}
	if s.RateLimit.Enabled {
		if s.RateLimit.RequestsPerSecond <= 0 {
			errs = append(errs, fmt.Errorf("rate_limit.requests_per_second must be positive"))
		}
		if s.RateLimit.Burst < 1 {
			errs = append(errs, fmt.Errorf("rate_limit.burst must be at least 1"))
		}
	}

	return errors.Join(errs...)
}

func (a *AuthConfig) Validate() error {
	if a.Enabled {
		if a.User == "" {
			return fmt.Errorf("user cannot be empty when auth is enabled")
		}
		if a.Password == "" {
			return fmt.Errorf("password cannot be empty when auth is enabled")
		}
	}
	return nil
}

func (l *LoggingConfig) Validate() error {
	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[l.Level] {
		return fmt.Errorf("invalid log level: %s (valid: debug, info, warn, error)", l.Level)
	}

	validFormats := map[string]bool{
		"json": true,
		"text": true,
	}
	if !validFormats[l.Format] {
		return fmt.Errorf("invalid log format: %s (valid: json, text)", l.Format)
	}

	return nil
}

func (e *EngineConfig) Validate() error {
	var errs []error

	if e.BehavioralSamples < 10 {
		errs = append(errs, fmt.Errorf("behavioral_samples must be at least 10, got %d", e.BehavioralSamples))
	}
	if e.QuestionnaireSamples < 10 {
		errs = append(errs, fmt.Errorf("questionnaire_samples must be at least 10, got %d", e.QuestionnaireSamples))
	}
	if e.Weights.Max() <= 0 {
		errs = append(errs, fmt.Errorf("weights must sum to a positive maximum"))
	}
	if e.Forest.Trees < 1 {
		errs = append(errs, fmt.Errorf("forest.trees must be at least 1, got %d", e.Forest.Trees))
	}
	if e.Boost.Rounds < 1 {
		errs = append(errs, fmt.Errorf("boost.rounds must be at least 1, got %d", e.Boost.Rounds))
	}
	if e.Boost.LearningRate <= 0 || e.Boost.LearningRate > 1 {
		errs = append(errs, fmt.Errorf("boost.learning_rate must be in (0, 1], got %g", e.Boost.LearningRate))
	}

	return errors.Join(errs...)
}

func (r *RiskConfig) Validate() error {
	if r.Thresholds.Moderate < 0 {
		return fmt.Errorf("thresholds.moderate must be non-negative")
	}
	if r.Thresholds.High <= r.Thresholds.Moderate {
		return fmt.Errorf("thresholds.high (%g) must exceed thresholds.moderate (%g)",
			r.Thresholds.High, r.Thresholds.Moderate)
	}
	return nil
}

func (r *RecordsConfig) Validate() error {
	if r.Capacity < 1 {
		return fmt.Errorf("capacity must be at least 1, got %d", r.Capacity)
	}
	return nil
}
