package domain

import "strings"

// Difficulty levels accepted for a card. Matching is case-insensitive, but
// the stored value is preserved as received so prompts reflect the caller's
// original casing.
const (
	LevelLow    = "low"
	LevelMedium = "medium"
	LevelHigh   = "high"
)

// Card describes one slice of an assessment: the topics to cover, the
// tooling context, the difficulty level, and how many questions to produce.
type Card struct {
	// Keywords are the topics the questions must cover. At least one is
	// required.
	Keywords []string

	// Tools names the technologies the questions should reference. A nil
	// slice means the field was absent from the request; an empty non-nil
	// slice is an explicit "no tools" and is valid.
	Tools []string

	// Level is the difficulty of the questions: low, medium, or high
	// (case-insensitive).
	Level string

	// NoOfQuestions is how many questions to generate. Must be at least 1.
	// The zero value is treated as a missing field.
	NoOfQuestions int
}

// AssessmentSpec pairs a role with a single card. It is the unit of work
// handed to the prompt builder and, from there, to the generator.
type AssessmentSpec struct {
	// Role is the job role the assessment targets, e.g. "Backend Engineer".
	Role string

	// Card holds the topic, tooling, difficulty, and question count.
	Card Card
}

// AssessmentRequest is a full inbound request: one role and one or more
// cards. Each card becomes its own generation call.
type AssessmentRequest struct {
	Role  string
	Cards []Card
}

// Validate checks the card-level constraints in a fixed order: field
// presence first, then the question count bound, then level membership.
// The first failure wins.
func (c Card) Validate() error {
	if len(c.Keywords) == 0 || c.Tools == nil || c.Level == "" || c.NoOfQuestions == 0 {
		return ErrMissingCardFields
	}
	if c.NoOfQuestions < 1 {
		return ErrInvalidQuestionCount
	}
	if !isValidLevel(c.Level) {
		return ErrInvalidLevel
	}
	return nil
}

// isZero reports whether every field of the card is unset.
func (c Card) isZero() bool {
	return c.Keywords == nil && c.Tools == nil && c.Level == "" && c.NoOfQuestions == 0
}

// Validate checks that the spec carries both a role and card data, then
// delegates to the card's own validation.
func (s AssessmentSpec) Validate() error {
	if s.Role == "" || s.Card.isZero() {
		return ErrMissingAssessmentData
	}
	return s.Card.Validate()
}

// Validate checks that the request carries a role and at least one card.
// Card-level constraints are validated per card, in order, so the error
// reported is always the first one encountered.
func (r AssessmentRequest) Validate() error {
	if r.Role == "" || len(r.Cards) == 0 {
		return ErrMissingAssessmentData
	}
	for _, card := range r.Cards {
		if err := card.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func isValidLevel(level string) bool {
	switch strings.ToLower(level) {
	case LevelLow, LevelMedium, LevelHigh:
		return true
	}
	return false
}
