package api

import (
	"log/slog"
	"net/http"

	"github.com/assessify/assessment-api/internal/api/shared"
	"github.com/assessify/assessment-api/internal/platform/metrics"
	"github.com/assessify/assessment-api/internal/service"
)

// GreetingMessage is the fixed identity string returned by the root
// endpoint. Clients use it as a liveness check.
const GreetingMessage = "Hello From Assessment Creator Back-End"

// AssessmentHandler handles assessment-related HTTP requests
type AssessmentHandler struct {
	assessmentService service.AssessmentService
	logger            *slog.Logger
}

// NewAssessmentHandler creates a new AssessmentHandler
func NewAssessmentHandler(assessmentService service.AssessmentService, logger *slog.Logger) *AssessmentHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AssessmentHandler{
		assessmentService: assessmentService,
		logger:            logger.With("component", "assessment_handler"),
	}
}

// Greeting handles GET /api/v2/ requests
func (h *AssessmentHandler) Greeting(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, GreetingMessage)
}

// GenerateAssessment handles POST /api/v2/generate_assessment requests.
// Request bodies with a missing top-level key get the "Missing key in input
// data" detail; card-level validation failures surface their own messages,
// both as 400s. Provider failures become a 500 with a summarized detail.
func (h *AssessmentHandler) GenerateAssessment(w http.ResponseWriter, r *http.Request) {
	var req GenerateAssessmentRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		metrics.AssessmentRequests.WithLabelValues(metrics.OutcomeValidationError).Inc()
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if key := req.MissingKey(); key != "" {
		metrics.AssessmentRequests.WithLabelValues(metrics.OutcomeValidationError).Inc()
		shared.RespondWithError(w, r, http.StatusBadRequest, "Missing key in input data: "+key)
		return
	}

	assessment, err := h.assessmentService.GenerateAssessment(r.Context(), req.ToDomain())
	if err != nil {
		status := MapErrorToStatusCode(err)
		if status >= http.StatusInternalServerError {
			metrics.AssessmentRequests.WithLabelValues(metrics.OutcomeProviderError).Inc()
			shared.RespondWithErrorAndLog(w, r, status,
				"An error occurred: "+GetSafeErrorMessage(err), err)
			return
		}
		metrics.AssessmentRequests.WithLabelValues(metrics.OutcomeValidationError).Inc()
		shared.RespondWithError(w, r, status, GetSafeErrorMessage(err))
		return
	}

	metrics.AssessmentRequests.WithLabelValues(metrics.OutcomeSuccess).Inc()
	shared.RespondWithJSON(w, r, http.StatusOK, AssessmentResponse{Assessment: assessment})
}
