package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roadguard/roadguard/internal/config"
	"github.com/roadguard/roadguard/internal/engine"
	"github.com/roadguard/roadguard/internal/logger"
	"github.com/roadguard/roadguard/internal/model"
	"github.com/roadguard/roadguard/internal/records"
	"github.com/roadguard/roadguard/internal/server"
	"github.com/roadguard/roadguard/internal/sysinfo"
)

var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the roadguard server",
	Long:  `Start the roadguard API server in foreground mode.`,
	RunE:  runStart,
}

func init() {
	rootCmd.AddCommand(startCmd)
}

func runStart(cmd *cobra.Command, args []string) error {
	// Load config
	cfg := config.LoadOrDefault(cfgFile)

	// Override host/port if specified via flag
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}

	// Create logger
	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	log.Info("roadguard starting",
		"version", Version,
		"config", cfgFile,
	)

	// Create the assessment engine
	eng := engine.New(engineConfig(cfg), log)

	// Create the assessment record store
	store := records.New(cfg.Records.Capacity)

	// Create the system collector for /status
	collector, err := sysinfo.New()
	if err != nil {
		return fmt.Errorf("failed to create system collector: %w", err)
	}

	// Write PID file if configured
	if cfg.Server.PIDFile != "" {
		if err := writePIDFile(cfg.Server.PIDFile); err != nil {
			log.Warn("failed to write PID file", "error", err)
		} else {
			defer os.Remove(cfg.Server.PIDFile)
		}
	}

	// Create the server and train both models up front
	srv := server.New(cfg, eng, store, collector, log, Version)

	if err := srv.Warmup(); err != nil {
		return fmt.Errorf("model warmup failed: %w", err)
	}

	// Signal channels
	sighupCh := make(chan os.Signal, 1)
	sigCh := make(chan os.Signal, 1)
	shutdownDone := make(chan struct{})

	signal.Notify(sighupCh, syscall.SIGHUP)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Handle SIGHUP for hot-reload
	go func() {
		for {
			select {
			case <-sighupCh:
				log.Info("SIGHUP received, reloading configuration")

				newCfg := config.LoadOrDefault(cfgFile)
				if err := newCfg.Validate(); err != nil {
					log.Error("invalid configuration, reload aborted", "error", err)
					continue
				}

				srv.ReloadConfig(newCfg)
			case <-shutdownDone:
				return
			}
		}
	}()

	// Handle shutdown signals
	go func() {
		<-sigCh

		log.Info("shutdown signal received")

		signal.Stop(sighupCh)
		signal.Stop(sigCh)
		close(shutdownDone)

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown error", "error", err)
		}
	}()

	log.Info("roadguard ready", "addr", srv.Addr())

	if err := srv.Start(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server error: %w", err)
	}

	log.Info("roadguard stopped")
	return nil
}

// engineConfig maps the YAML config onto the engine's training config.
func engineConfig(cfg *config.Config) engine.Config {
	return engine.Config{
		Seed:                 cfg.Engine.Seed,
		Weights:              cfg.Engine.Weights,
		Risk:                 cfg.Risk.Thresholds,
		BehavioralSamples:    cfg.Engine.BehavioralSamples,
		QuestionnaireSamples: cfg.Engine.QuestionnaireSamples,
		QuestionnaireDataset: cfg.Engine.QuestionnaireDataset,
		Forest: model.ForestConfig{
			Trees:            cfg.Engine.Forest.Trees,
			MaxDepth:         cfg.Engine.Forest.MaxDepth,
			MinSamplesSplit:  cfg.Engine.Forest.MinSamplesSplit,
			FeaturesPerSplit: cfg.Engine.Forest.FeaturesPerSplit,
		},
		Boost: model.BoostConfig{
			Rounds:          cfg.Engine.Boost.Rounds,
			MaxDepth:        cfg.Engine.Boost.MaxDepth,
			MinSamplesSplit: cfg.Engine.Boost.MinSamplesSplit,
			LearningRate:    cfg.Engine.Boost.LearningRate,
		},
	}
}

func writePIDFile(path string) error {
	pid := os.Getpid()
	return os.WriteFile(path, []byte(fmt.Sprintf("%d", pid)), 0644)
}
