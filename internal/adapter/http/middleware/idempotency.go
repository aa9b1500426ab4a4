package middleware

import (
	"bytes"
	"encoding/json"
	"net/http"
	"time"

	"github.com/clinilab/clinilab/internal/usecase"
)

// IdempotencyKeyHeader is the header name for idempotency keys.
const IdempotencyKeyHeader = "Idempotency-Key"

// IdempotencyMiddleware handles request idempotency using Redis.
type IdempotencyMiddleware struct {
	store usecase.IdempotencyStore
	ttl   time.Duration
}

// NewIdempotencyMiddleware creates a new IdempotencyMiddleware.
func NewIdempotencyMiddleware(store usecase.IdempotencyStore, ttl time.Duration) *IdempotencyMiddleware {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &IdempotencyMiddleware{store: store, ttl: ttl}
}

// Wrap wraps an http.Handler with idempotency checking.
func (m *IdempotencyMiddleware) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Only mutating requests are deduplicated
		if r.Method != http.MethodPost && r.Method != http.MethodPut {
			next.ServeHTTP(w, r)
			return
		}

		key := r.Header.Get(IdempotencyKeyHeader)
		if key == "" {
			next.ServeHTTP(w, r)
			return
		}

		exists, cachedResponse, err := m.store.CheckAndSet(r.Context(), key, nil, m.ttl)
		if err != nil {
			http.Error(w, "idempotency check failed", http.StatusInternalServerError)
			return
		}

		if exists && cachedResponse != nil && string(cachedResponse) != "processing" {
			var cached cachedEntry
			if err := json.Unmarshal(cachedResponse, &cached); err != nil {
				http.Error(w, "idempotency replay failed", http.StatusInternalServerError)
				return
			}
			status := cached.Status
			if status == 0 {
				status = http.StatusOK
			}
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Idempotency-Replay", "true")
			w.WriteHeader(status)
			w.Write(cached.Body)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			body:           &bytes.Buffer{},
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		// Only successful responses are replayed; the status code is
		// stored alongside the body so a replayed 201 stays a 201.
		if recorder.statusCode >= 200 && recorder.statusCode < 300 {
			entry, err := json.Marshal(cachedEntry{
				Status: recorder.statusCode,
				Body:   recorder.body.Bytes(),
			})
			if err != nil {
				return
			}
			m.store.Update(r.Context(), key, entry, m.ttl)
		}
	})
}

// cachedEntry is the stored form of a replayable response.
type cachedEntry struct {
	Status int             `json:"status"`
	Body   json.RawMessage `json:"body"`
}

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       *bytes.Buffer
}

func (r *responseRecorder) Write(b []byte) (int, error) {
	r.body.Write(b)
	return r.ResponseWriter.Write(b)
}

func (r *responseRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}
