package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Okafor-Chiagozie/EverKeep-sub000/internal/logger"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestTraceIDMiddleware_GeneratesID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The request-scoped logger is attached before the handler runs.
		assert.NotNil(t, log.Ctx(r.Context()))
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vaults", nil)
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader), "a missing trace id is minted")
}

func TestTraceIDMiddleware_ReusesInboundID(t *testing.T) {
	h := &Handler{logger: logger.Nop()}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/vaults", nil)
	req.Header.Set(traceIDHeader, "trace-from-scheduler")
	rec := httptest.NewRecorder()

	h.withTraceID(next).ServeHTTP(rec, req)

	assert.Equal(t, "trace-from-scheduler", rec.Header().Get(traceIDHeader))
}
