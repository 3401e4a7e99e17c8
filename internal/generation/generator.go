package generation

import "context"

// Generator defines the interface for producing assessment text from a
// rendered prompt. This interface serves as a boundary between the
// application core and external AI/LLM services, following the hexagonal
// architecture pattern.
type Generator interface {
	// GenerateAssessment sends the prompt to the underlying model and
	// returns the generated assessment text.
	//
	// Parameters:
	//   - ctx: Context for the operation, which can be used for cancellation
	//   - prompt: The rendered natural language request for one card
	//
	// Returns:
	//   - The assessment text extracted from the model response
	//   - An error if the call fails for any reason (see errors.go for specific types)
	GenerateAssessment(ctx context.Context, prompt string) (string, error)
}
