package mocks

import (
	"context"
	"sync"

	"github.com/assessify/assessment-api/internal/generation"
)

// MockGenerator implements generation.Generator for testing
type MockGenerator struct {
	// GenerateAssessmentFn allows test cases to mock the GenerateAssessment behavior
	GenerateAssessmentFn func(ctx context.Context, prompt string) (string, error)

	// Default response values
	Text string
	Err  error

	// Call tracking for verification
	GenerateAssessmentCalls struct {
		// mu protects the call tracking state for concurrent test cases
		mu sync.Mutex

		// Count tracks how many times GenerateAssessment was called
		Count int

		// Prompts contains all prompts passed to GenerateAssessment calls
		Prompts []string
	}
}

// Interface compliance check.
var _ generation.Generator = (*MockGenerator)(nil)

// GenerateAssessment implements the generation.Generator interface
func (m *MockGenerator) GenerateAssessment(ctx context.Context, prompt string) (string, error) {
	// Track call details for verification
	m.GenerateAssessmentCalls.mu.Lock()
	m.GenerateAssessmentCalls.Count++
	m.GenerateAssessmentCalls.Prompts = append(m.GenerateAssessmentCalls.Prompts, prompt)
	m.GenerateAssessmentCalls.mu.Unlock()

	// Use custom function if provided
	if m.GenerateAssessmentFn != nil {
		return m.GenerateAssessmentFn(ctx, prompt)
	}

	// Return default values
	return m.Text, m.Err
}

// NewMockGeneratorWithText creates a MockGenerator that returns the specified text
func NewMockGeneratorWithText(text string) *MockGenerator {
	return &MockGenerator{
		Text: text,
	}
}

// NewMockGeneratorWithError creates a MockGenerator that returns the specified error
func NewMockGeneratorWithError(err error) *MockGenerator {
	return &MockGenerator{
		Err: err,
	}
}

// Reset resets the call tracking state
func (m *MockGenerator) Reset() {
	m.GenerateAssessmentCalls.mu.Lock()
	defer m.GenerateAssessmentCalls.mu.Unlock()

	m.GenerateAssessmentCalls.Count = 0
	m.GenerateAssessmentCalls.Prompts = nil
}
