package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// traceIDHeader names the correlation header shared with the wall
// frontend. A client-supplied value is kept so one id follows the
// request across both sides.
const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id, binds a child logger
// carrying it into the request context, and echoes the id back in the
// response. Downstream handlers pick the logger up via logger.FromRequest,
// so every log line of one request shares the same trace_id field.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = uuid.NewString()
		}

		log := h.logger.GetChildLogger()
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(log.WithContext(r.Context())))
	})
}
