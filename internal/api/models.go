package api

import "github.com/assessify/assessment-api/internal/domain"

// Common request/response structures

// CardPayload mirrors one card in the inbound JSON. Fields are pointers so
// the handler can tell an absent key from a present-but-empty value; the
// distinction matters for tools, where an empty list is valid but a missing
// key is not.
type CardPayload struct {
	Keywords      *[]string `json:"keywords"`
	Tools         *[]string `json:"tools"`
	Level         *string   `json:"level"`
	NoOfQuestions *int      `json:"noOfQuestions"`
}

// GenerateAssessmentRequest defines the payload for the assessment
// generation endpoint.
type GenerateAssessmentRequest struct {
	Role  *string        `json:"role"`
	Cards *[]CardPayload `json:"cards"`
}

// AssessmentResponse defines the successful response for the assessment
// generation endpoint.
type AssessmentResponse struct {
	// Assessment is the full generated question text, with the answers for
	// consecutive cards separated by blank lines.
	Assessment string `json:"assessment"`
}

// MissingKey returns the name of the first required top-level key absent
// from the request, or "" when both are present. Field-level problems inside
// a card are not reported here; they surface through domain validation with
// their own messages.
func (r GenerateAssessmentRequest) MissingKey() string {
	if r.Role == nil {
		return "role"
	}
	if r.Cards == nil {
		return "cards"
	}
	return ""
}

// ToDomain converts the decoded payload into the domain request. Absent card
// fields map to their zero values so domain validation reports them; a tools
// key that was present but null or empty maps to an empty non-nil slice,
// which the domain treats as an explicit "no tools".
func (r GenerateAssessmentRequest) ToDomain() domain.AssessmentRequest {
	req := domain.AssessmentRequest{}
	if r.Role != nil {
		req.Role = *r.Role
	}
	if r.Cards == nil {
		return req
	}

	req.Cards = make([]domain.Card, 0, len(*r.Cards))
	for _, p := range *r.Cards {
		card := domain.Card{}
		if p.Keywords != nil {
			card.Keywords = *p.Keywords
		}
		if p.Tools != nil {
			card.Tools = *p.Tools
			if card.Tools == nil {
				card.Tools = []string{}
			}
		}
		if p.Level != nil {
			card.Level = *p.Level
		}
		if p.NoOfQuestions != nil {
			card.NoOfQuestions = *p.NoOfQuestions
		}
		req.Cards = append(req.Cards, card)
	}
	return req
}
