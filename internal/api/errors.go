package api

import (
	"errors"
	"net/http"

	"github.com/assessify/assessment-api/internal/domain"
	"github.com/assessify/assessment-api/internal/generation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. Validation failures are client errors; everything
// that goes wrong past validation, including all provider failures, is a
// server error.
func MapErrorToStatusCode(err error) int {
	switch {
	case domain.IsValidationError(err):
		return http.StatusBadRequest

	case errors.Is(err, generation.ErrTransportFailure),
		errors.Is(err, generation.ErrProviderResponse),
		errors.Is(err, generation.ErrExtraction):
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message based
// on the error type. Validation messages are part of the API contract and
// pass through verbatim; provider failures collapse to fixed phrases so no
// upstream detail (URLs, keys, raw bodies) can leak to clients.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, domain.ErrMissingAssessmentData):
		return domain.ErrMissingAssessmentData.Error()

	case errors.Is(err, domain.ErrMissingCardFields):
		return domain.ErrMissingCardFields.Error()

	case errors.Is(err, domain.ErrInvalidQuestionCount):
		return domain.ErrInvalidQuestionCount.Error()

	case errors.Is(err, domain.ErrInvalidLevel):
		return domain.ErrInvalidLevel.Error()

	case errors.Is(err, generation.ErrTransportFailure):
		return "error contacting generation provider"

	case errors.Is(err, generation.ErrProviderResponse):
		return "generation provider returned an unexpected response"

	case errors.Is(err, generation.ErrExtraction):
		return "generation provider returned no assessment text"

	default:
		return "An unexpected error occurred"
	}
}
