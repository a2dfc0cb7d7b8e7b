// Package server exposes the assessment engine over HTTP.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/roadguard/roadguard/internal/config"
	"github.com/roadguard/roadguard/internal/engine"
	"github.com/roadguard/roadguard/internal/records"
	"github.com/roadguard/roadguard/internal/server/middleware"
	"github.com/roadguard/roadguard/internal/sysinfo"
)

type Server struct {
	httpServer *http.Server
	engine     *engine.Engine
	store      *records.Store
	collector  *sysinfo.Collector
	logger     *slog.Logger
	version    string
	authConfig *middleware.AuthConfig
	started    time.Time

	// mu guards config, which the SIGHUP reload swaps under live traffic.
	mu     sync.RWMutex
	config *config.Config
}

func New(cfg *config.Config, eng *engine.Engine, store *records.Store, collector *sysinfo.Collector, logger *slog.Logger, version string) *Server {
	authConfig := &middleware.AuthConfig{
		Enabled:  cfg.Auth.Enabled,
		User:     cfg.Auth.User,
		Password: cfg.Auth.Password,
	}

	s := &Server{
		engine:     eng,
		store:      store,
		collector:  collector,
		config:     cfg,
		logger:     logger,
		version:    version,
		authConfig: authConfig,
		started:    time.Now(),
	}

	mux := s.setupRoutes()

	handler := middleware.Chain(
		mux,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.RateLimit(&middleware.RateLimitConfig{
			Enabled:           cfg.Server.RateLimit.Enabled,
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
		}),
		middleware.MaxBody(int64(cfg.Server.MaxBodyKB)*1024),
		middleware.Auth(authConfig, "/health"), // Exclude /health from auth
	)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// ReloadConfig applies configuration that can change at runtime.
// Host/port changes require a restart.
func (s *Server) ReloadConfig(cfg *config.Config) {
	s.authConfig.Update(cfg.Auth.Enabled, cfg.Auth.User, cfg.Auth.Password)

	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()

	s.logger.Info("configuration reloaded",
		"auth_enabled", cfg.Auth.Enabled,
	)
}

func (s *Server) currentConfig() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.config
}

// Warmup trains both pipelines up front so the first request does not pay
// the training cost.
func (s *Server) Warmup() error {
	cfg := s.currentConfig()
	seed := cfg.Engine.Seed

	if _, err := s.engine.BehavioralModel(cfg.Engine.BehavioralSamples, seed); err != nil {
		return fmt.Errorf("behavioral warmup failed: %w", err)
	}
	if _, err := s.engine.QuestionnaireModel(cfg.Engine.QuestionnaireSamples, seed); err != nil {
		return fmt.Errorf("questionnaire warmup failed: %w", err)
	}
	return nil
}

func (s *Server) Start() error {
	s.logger.Info("server starting",
		"addr", s.httpServer.Addr,
	)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}
