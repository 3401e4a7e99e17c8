package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/assessify/assessment-api/internal/api/shared"
)

func TestNewTraceMiddleware(t *testing.T) {
	t.Parallel()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	var seen string
	handler := NewTraceMiddleware(logger)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			seen = shared.GetTraceID(r.Context())
			w.WriteHeader(http.StatusOK)
		}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v2/", nil))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, seen, "handler should see a trace ID in the request context")
}

func TestTraceMiddlewareUniquePerRequest(t *testing.T) {
	t.Parallel()

	var ids []string
	handler := NewTraceMiddleware(nil)(http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			ids = append(ids, shared.GetTraceID(r.Context()))
		}))

	for i := 0; i < 2; i++ {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	}

	assert.Len(t, ids, 2)
	assert.NotEqual(t, ids[0], ids[1])
}
