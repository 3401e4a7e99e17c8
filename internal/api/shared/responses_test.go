package shared

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondWithJSON(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithJSON(rr, req, http.StatusOK, map[string]string{"assessment": "text"})

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"assessment": "text"}`, rr.Body.String())
}

func TestRespondWithError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v2/generate_assessment", nil)
	req = req.WithContext(SetTraceID(req.Context()))

	RespondWithError(rr, req, http.StatusBadRequest, "Missing key in input data: role")

	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "Missing key in input data: role", resp.Detail)
	assert.Equal(t, GetTraceID(req.Context()), resp.TraceID)
}

func TestRespondWithErrorAndLogHidesRawError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v2/generate_assessment", nil)

	internalErr := errors.New("Post https://provider.example/v1beta?key=super-secret: EOF")
	RespondWithErrorAndLog(rr, req, http.StatusInternalServerError,
		"An error occurred: error contacting generation provider", internalErr)

	assert.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "An error occurred: error contacting generation provider", resp.Detail)
	assert.NotContains(t, rr.Body.String(), "super-secret",
		"raw error content must never reach the response body")
}

func TestErrorResponseOmitsEmptyTraceID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	RespondWithError(rr, req, http.StatusBadRequest, "bad input")

	assert.NotContains(t, rr.Body.String(), "trace_id")
}
