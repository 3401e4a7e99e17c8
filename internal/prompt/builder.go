// Package prompt renders assessment specifications into the natural
// language requests sent to the generation provider.
package prompt

import (
	"fmt"
	"strings"

	"github.com/assessify/assessment-api/internal/domain"
)

// Build validates the spec and renders it into a single request sentence,
// for example:
//
//	I want 2 assessment questions of low complexity for Backend Engineer on APIs, REST using Postman.
//
// Keywords and tools are joined with ", ". The tools clause is omitted when
// the card has no tools. The level is rendered exactly as received, so a
// caller sending "HIGH" sees "HIGH" in the prompt.
func Build(spec domain.AssessmentSpec) (string, error) {
	if err := spec.Validate(); err != nil {
		return "", err
	}

	var tools string
	if len(spec.Card.Tools) > 0 {
		tools = fmt.Sprintf(" using %s", strings.Join(spec.Card.Tools, ", "))
	}

	return fmt.Sprintf(
		"I want %d assessment questions of %s complexity for %s on %s%s.",
		spec.Card.NoOfQuestions,
		spec.Card.Level,
		spec.Role,
		strings.Join(spec.Card.Keywords, ", "),
		tools,
	), nil
}
