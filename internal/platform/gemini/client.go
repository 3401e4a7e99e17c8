package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/assessify/assessment-api/internal/config"
	"github.com/assessify/assessment-api/internal/generation"
	"github.com/assessify/assessment-api/internal/platform/metrics"
	"github.com/assessify/assessment-api/internal/redact"
)

// Generator implements the generation.Generator interface by calling the
// Gemini generateContent REST endpoint.
type Generator struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// httpClient issues the provider calls. Its timeout bounds one full
	// request/response cycle.
	httpClient *http.Client
}

// Interface compliance check.
var _ generation.Generator = (*Generator)(nil)

// NewGenerator creates a new Generator with the provided dependencies.
//
// Parameters:
//   - logger: A structured logger for operation logging
//   - cfg: LLM configuration containing the API key, base URL, model name,
//     and request timeout
//
// Returns:
//   - A properly initialized Generator or an error if the configuration is
//     incomplete
func NewGenerator(logger *slog.Logger, cfg config.LLMConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	// Validate configuration
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.ModelName == "" {
		return nil, fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if cfg.TimeoutSeconds <= 0 {
		return nil, fmt.Errorf("%w: timeout must be positive", generation.ErrInvalidConfig)
	}

	return &Generator{
		logger: logger,
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}, nil
}

// endpoint assembles the generateContent URL. The API key rides in the query
// string, so the result must never be logged unredacted.
func (g *Generator) endpoint() string {
	return fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimSuffix(g.config.BaseURL, "/"),
		g.config.ModelName,
		url.QueryEscape(g.config.GeminiAPIKey))
}

// GenerateAssessment sends the prompt to the model and returns the generated
// assessment text. The prompt is wrapped with the framing preamble and the
// answer format template before it goes out; the response text is returned
// verbatim, with no reformatting.
func (g *Generator) GenerateAssessment(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", ErrEmptyPrompt
	}

	reqBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: promptText(prompt)}}},
		},
		GenerationConfig: g.config.GenerationConfig,
		SafetySettings:   g.config.SafetySettings,
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal provider request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build provider request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	g.logger.DebugContext(ctx, "calling generation provider",
		"model", g.config.ModelName,
		"prompt_length", len(prompt))

	start := time.Now()
	resp, err := g.httpClient.Do(req)
	metrics.ProviderRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ProviderRequests.WithLabelValues(metrics.StatusTransportError).Inc()
		g.logger.ErrorContext(ctx, "provider call failed",
			"error", redact.Error(err))
		return "", fmt.Errorf("%w: %s", generation.ErrTransportFailure, redact.Error(err))
	}
	defer func() { _ = resp.Body.Close() }()

	metrics.ProviderRequests.WithLabelValues(strconv.Itoa(resp.StatusCode)).Inc()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		g.logger.ErrorContext(ctx, "provider returned non-success status",
			"status", resp.StatusCode,
			"model", g.config.ModelName)
		return "", fmt.Errorf("%w: status %d", generation.ErrProviderResponse, resp.StatusCode)
	}

	var parsed generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("%w: failed to decode body: %v", generation.ErrProviderResponse, err)
	}

	text, ok := extractText(parsed)
	if !ok {
		return "", generation.ErrExtraction
	}

	g.logger.DebugContext(ctx, "provider call succeeded",
		"status", resp.StatusCode,
		"answer_length", len(text))

	return text, nil
}

// extractText pulls candidates[0].content.parts[0].text from the response.
// A decoded response without that path is an extraction failure, not a
// partial success.
func extractText(resp generateContentResponse) (string, bool) {
	if len(resp.Candidates) == 0 {
		return "", false
	}
	parts := resp.Candidates[0].Content.Parts
	if len(parts) == 0 {
		return "", false
	}
	return parts[0].Text, true
}
