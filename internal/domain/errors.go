// Package domain defines the core business entities and errors.
package domain

import "errors"

// Validation errors returned when an assessment request is malformed or
// incomplete. Their messages are part of the API contract: the HTTP layer
// surfaces them verbatim in the response detail.
var (
	// ErrMissingAssessmentData is returned when the role or the card data
	// is absent from an assessment specification.
	ErrMissingAssessmentData = errors.New("missing required assessment data")

	// ErrMissingCardFields is returned when a card is missing any of its
	// required fields (keywords, tools, level, noOfQuestions).
	ErrMissingCardFields = errors.New("missing required fields in one of the cards")

	// ErrInvalidQuestionCount is returned when a card asks for fewer than
	// one question. The boundary value 1 is valid.
	ErrInvalidQuestionCount = errors.New("number of questions must be greater than 1")

	// ErrInvalidLevel is returned when a card's difficulty level is not one
	// of the three allowed values.
	ErrInvalidLevel = errors.New("level must be 'low', 'medium', or 'high'")
)

// IsValidationError reports whether err belongs to the validation error
// class, as opposed to provider or infrastructure failures. The API layer
// uses this to choose a 4xx status instead of a generic 5xx.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrMissingAssessmentData) ||
		errors.Is(err, ErrMissingCardFields) ||
		errors.Is(err, ErrInvalidQuestionCount) ||
		errors.Is(err, ErrInvalidLevel)
}
