package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assessify/assessment-api/internal/domain"
	"github.com/assessify/assessment-api/internal/generation"
	"github.com/assessify/assessment-api/internal/mocks"
)

func serviceTestCard() domain.Card {
	return domain.Card{
		Keywords:      []string{"APIs"},
		Tools:         []string{},
		Level:         "low",
		NoOfQuestions: 2,
	}
}

func TestNewAssessmentService(t *testing.T) {
	t.Parallel()

	t.Run("valid dependencies", func(t *testing.T) {
		t.Parallel()

		svc, err := NewAssessmentService(&mocks.MockGenerator{}, nil)

		require.NoError(t, err)
		assert.NotNil(t, svc)
	})

	t.Run("nil generator", func(t *testing.T) {
		t.Parallel()

		svc, err := NewAssessmentService(nil, nil)

		assert.Error(t, err)
		assert.Nil(t, svc)
	})
}

func TestGenerateAssessmentSingleCard(t *testing.T) {
	t.Parallel()

	mockGen := mocks.NewMockGeneratorWithText("**Question 1**\nWhat is an API?")
	svc, err := NewAssessmentService(mockGen, nil)
	require.NoError(t, err)

	got, err := svc.GenerateAssessment(context.Background(), domain.AssessmentRequest{
		Role:  "Backend Engineer",
		Cards: []domain.Card{serviceTestCard()},
	})

	require.NoError(t, err)
	assert.Equal(t, "**Question 1**\nWhat is an API?", got,
		"a single card answer should come back without join separators")

	require.Equal(t, 1, mockGen.GenerateAssessmentCalls.Count)
	assert.Equal(t,
		"I want 2 assessment questions of low complexity for Backend Engineer on APIs.",
		mockGen.GenerateAssessmentCalls.Prompts[0])
}

func TestGenerateAssessmentMultiCard(t *testing.T) {
	t.Parallel()

	calls := 0
	mockGen := &mocks.MockGenerator{
		GenerateAssessmentFn: func(ctx context.Context, prompt string) (string, error) {
			calls++
			return fmt.Sprintf("answer %d", calls), nil
		},
	}
	svc, err := NewAssessmentService(mockGen, nil)
	require.NoError(t, err)

	first := serviceTestCard()
	second := domain.Card{
		Keywords:      []string{"SQL", "indexing"},
		Tools:         []string{"Postgres"},
		Level:         "medium",
		NoOfQuestions: 3,
	}

	got, err := svc.GenerateAssessment(context.Background(), domain.AssessmentRequest{
		Role:  "Backend Engineer",
		Cards: []domain.Card{first, second},
	})

	require.NoError(t, err)
	assert.Equal(t, "answer 1\n\nanswer 2", got,
		"answers should be joined with a blank line in card order")

	require.Equal(t, 2, mockGen.GenerateAssessmentCalls.Count)
	assert.Equal(t,
		"I want 2 assessment questions of low complexity for Backend Engineer on APIs.",
		mockGen.GenerateAssessmentCalls.Prompts[0])
	assert.Equal(t,
		"I want 3 assessment questions of medium complexity for Backend Engineer on SQL, indexing using Postgres.",
		mockGen.GenerateAssessmentCalls.Prompts[1])
}

func TestGenerateAssessmentValidation(t *testing.T) {
	t.Parallel()

	badCard := serviceTestCard()
	badCard.Level = "extreme"

	noToolsCard := serviceTestCard()
	noToolsCard.Tools = nil

	testCases := []struct {
		name    string
		req     domain.AssessmentRequest
		wantErr error
	}{
		{
			name:    "missing role",
			req:     domain.AssessmentRequest{Cards: []domain.Card{serviceTestCard()}},
			wantErr: domain.ErrMissingAssessmentData,
		},
		{
			name:    "no cards",
			req:     domain.AssessmentRequest{Role: "Backend Engineer"},
			wantErr: domain.ErrMissingAssessmentData,
		},
		{
			name: "card missing tools",
			req: domain.AssessmentRequest{
				Role:  "Backend Engineer",
				Cards: []domain.Card{noToolsCard},
			},
			wantErr: domain.ErrMissingCardFields,
		},
		{
			name: "invalid level on second card",
			req: domain.AssessmentRequest{
				Role:  "Backend Engineer",
				Cards: []domain.Card{serviceTestCard(), badCard},
			},
			wantErr: domain.ErrInvalidLevel,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			mockGen := mocks.NewMockGeneratorWithText("unused")
			svc, err := NewAssessmentService(mockGen, nil)
			require.NoError(t, err)

			got, err := svc.GenerateAssessment(context.Background(), tc.req)

			assert.ErrorIs(t, err, tc.wantErr)
			assert.Empty(t, got)
			assert.Equal(t, 0, mockGen.GenerateAssessmentCalls.Count,
				"validation failures must never reach the provider")
		})
	}
}

func TestGenerateAssessmentProviderFailure(t *testing.T) {
	t.Parallel()

	t.Run("first card fails", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithError(generation.ErrTransportFailure)
		svc, err := NewAssessmentService(mockGen, nil)
		require.NoError(t, err)

		got, err := svc.GenerateAssessment(context.Background(), domain.AssessmentRequest{
			Role:  "Backend Engineer",
			Cards: []domain.Card{serviceTestCard(), serviceTestCard()},
		})

		assert.ErrorIs(t, err, generation.ErrTransportFailure)
		assert.Empty(t, got)
		assert.Equal(t, 1, mockGen.GenerateAssessmentCalls.Count,
			"the first failure should abort the remaining cards")
	})

	t.Run("second card fails with no partial result", func(t *testing.T) {
		t.Parallel()

		calls := 0
		mockGen := &mocks.MockGenerator{
			GenerateAssessmentFn: func(ctx context.Context, prompt string) (string, error) {
				calls++
				if calls == 2 {
					return "", generation.ErrProviderResponse
				}
				return "answer 1", nil
			},
		}
		svc, err := NewAssessmentService(mockGen, nil)
		require.NoError(t, err)

		got, err := svc.GenerateAssessment(context.Background(), domain.AssessmentRequest{
			Role:  "Backend Engineer",
			Cards: []domain.Card{serviceTestCard(), serviceTestCard()},
		})

		assert.ErrorIs(t, err, generation.ErrProviderResponse)
		assert.Empty(t, got, "no partial assessment may be returned")
		assert.Equal(t, 2, mockGen.GenerateAssessmentCalls.Count)
	})

	t.Run("wrapped error keeps operation context", func(t *testing.T) {
		t.Parallel()

		mockGen := mocks.NewMockGeneratorWithError(generation.ErrExtraction)
		svc, err := NewAssessmentService(mockGen, nil)
		require.NoError(t, err)

		_, err = svc.GenerateAssessment(context.Background(), domain.AssessmentRequest{
			Role:  "Backend Engineer",
			Cards: []domain.Card{serviceTestCard()},
		})

		var svcErr *AssessmentServiceError
		require.True(t, errors.As(err, &svcErr))
		assert.Equal(t, "generate_assessment", svcErr.Operation)
		assert.ErrorIs(t, err, generation.ErrExtraction)
	})
}
