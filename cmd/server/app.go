package main

import (
	"fmt"
	"log/slog"

	"github.com/assessify/assessment-api/internal/config"
	"github.com/assessify/assessment-api/internal/platform/gemini"
	"github.com/assessify/assessment-api/internal/platform/logger"
	"github.com/assessify/assessment-api/internal/service"
)

// application holds the shared dependencies of the server process.
type application struct {
	config            *config.Config
	logger            *slog.Logger
	assessmentService service.AssessmentService
}

// initializeApp loads configuration, sets up structured logging, and wires
// the application components together. Returns the assembled application or
// the first initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	log.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"model", cfg.LLM.ModelName,
		"provider_timeout_seconds", cfg.LLM.TimeoutSeconds)

	generator, err := gemini.NewGenerator(log, cfg.LLM)
	if err != nil {
		return nil, fmt.Errorf("failed to create generator: %w", err)
	}

	assessmentService, err := service.NewAssessmentService(generator, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create assessment service: %w", err)
	}

	return &application{
		config:            cfg,
		logger:            log,
		assessmentService: assessmentService,
	}, nil
}
