package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader carries the correlation id across the SPA, the scheduler
// hitting the internal scan trigger, and recipient share-link requests.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags the request-scoped logger with a correlation id and
// mirrors it on the response. An inbound header value is reused so a vault
// operation can be traced end to end from a client report; requests without
// one get a fresh id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}
