package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// RequestLogger emits one structured log line per request. It replaces the
// chi text logger so request logs share the zerolog stream the rest of the
// service writes to and carry the request id assigned upstream.
type RequestLogger struct {
	logger zerolog.Logger
}

// NewRequestLogger creates a RequestLogger writing to the given logger.
func NewRequestLogger(logger zerolog.Logger) *RequestLogger {
	return &RequestLogger{logger: logger}
}

// Wrap wraps an http.Handler with request logging. It must run after the
// RequestID middleware so the request id field is populated.
func (m *RequestLogger) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		evt := m.logger.Info()
		if wrapped.statusCode >= http.StatusInternalServerError {
			evt = m.logger.Error()
		}
		evt.
			Str("request_id", chimiddleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", wrapped.statusCode).
			Int("bytes", wrapped.bytes).
			Dur("duration", time.Since(start)).
			Str("remote_addr", r.RemoteAddr).
			Msg("request completed")
	})
}

type statusRecorder struct {
	http.ResponseWriter

	statusCode int
	bytes      int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}
