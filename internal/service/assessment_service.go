package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/assessify/assessment-api/internal/domain"
	"github.com/assessify/assessment-api/internal/generation"
	"github.com/assessify/assessment-api/internal/prompt"
)

// AssessmentService provides assessment generation operations
type AssessmentService interface {
	// GenerateAssessment validates the request, renders one prompt per
	// card, fulfils them in order through the generation provider, and
	// returns the combined assessment text.
	GenerateAssessment(ctx context.Context, req domain.AssessmentRequest) (string, error)
}

// AssessmentServiceError wraps errors from the assessment service with context.
type AssessmentServiceError struct {
	// Operation is the operation that failed (e.g., "generate_assessment")
	Operation string
	// Message is a human-readable description of the error
	Message string
	// Err is the underlying error that caused the failure
	Err error
}

// Error implements the error interface for AssessmentServiceError.
func (e *AssessmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("assessment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("assessment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *AssessmentServiceError) Unwrap() error {
	return e.Err
}

// NewAssessmentServiceError creates a new AssessmentServiceError.
// Domain validation errors are returned directly without wrapping so their
// messages reach API responses verbatim.
func NewAssessmentServiceError(operation, message string, err error) error {
	if err == nil {
		return nil
	}

	if domain.IsValidationError(err) {
		return err
	}

	return &AssessmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}

// assessmentServiceImpl implements the AssessmentService interface
type assessmentServiceImpl struct {
	generator generation.Generator
	logger    *slog.Logger
}

// NewAssessmentService creates a new AssessmentService.
// It returns an error if the generator dependency is nil.
func NewAssessmentService(
	generator generation.Generator,
	logger *slog.Logger,
) (AssessmentService, error) {
	if generator == nil {
		return nil, &AssessmentServiceError{
			Operation: "create_service",
			Message:   "generator cannot be nil",
			Err:       nil,
		}
	}

	// Use provided logger or create default
	if logger == nil {
		logger = slog.Default()
	}

	return &assessmentServiceImpl{
		generator: generator,
		logger:    logger.With("component", "assessment_service"),
	}, nil
}

// GenerateAssessment fulfils a full assessment request. Cards are processed
// strictly in request order and the per-card answers are joined with a blank
// line. The first failure aborts the whole request; no partial assessment is
// ever returned.
func (s *assessmentServiceImpl) GenerateAssessment(
	ctx context.Context,
	req domain.AssessmentRequest,
) (string, error) {
	if err := req.Validate(); err != nil {
		s.logger.Debug("rejected invalid assessment request",
			"error", err,
			"role", req.Role,
			"card_count", len(req.Cards))
		return "", err
	}

	// All prompts are rendered up front so a bad card fails the request
	// before any provider call is made.
	prompts := make([]string, 0, len(req.Cards))
	for _, card := range req.Cards {
		p, err := prompt.Build(domain.AssessmentSpec{Role: req.Role, Card: card})
		if err != nil {
			return "", err
		}
		prompts = append(prompts, p)
	}

	answers := make([]string, 0, len(prompts))
	for i, p := range prompts {
		answer, err := s.generator.GenerateAssessment(ctx, p)
		if err != nil {
			s.logger.Error("assessment generation failed",
				"error", err,
				"card_index", i,
				"role", req.Role)
			return "", NewAssessmentServiceError(
				"generate_assessment",
				fmt.Sprintf("card %d of %d failed", i+1, len(prompts)),
				err,
			)
		}
		answers = append(answers, answer)
	}

	s.logger.Info("assessment generated",
		"role", req.Role,
		"card_count", len(req.Cards))

	return strings.Join(answers, "\n\n"), nil
}
