package http

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// Timeout bounds each request to d. When the deadline passes before the
// handler has written anything the client gets a 504, any late handler
// writes are swallowed, and the canceled context tells downstream code to
// stop working.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()

			guard := &deadlineWriter{ResponseWriter: w}
			done := make(chan struct{})
			go func() {
				defer close(done)
				next.ServeHTTP(guard, r.WithContext(ctx))
			}()

			select {
			case <-done:
			case <-ctx.Done():
				guard.expire()
			}
		})
	}
}

// deadlineWriter serializes the race between the handler goroutine and the
// timeout path; exactly one of them writes the response.
type deadlineWriter struct {
	http.ResponseWriter
	mu      sync.Mutex
	expired bool
	started bool
}

func (w *deadlineWriter) WriteHeader(status int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired || w.started {
		return
	}
	w.started = true
	w.ResponseWriter.WriteHeader(status)
}

func (w *deadlineWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return 0, http.ErrHandlerTimeout
	}
	if !w.started {
		w.started = true
		w.ResponseWriter.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// expire marks the response as timed out and, if the handler never started
// writing, sends the 504 itself.
func (w *deadlineWriter) expire() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.expired = true
	if w.started {
		return
	}
	w.started = true
	w.ResponseWriter.Header().Set("Content-Type", "application/json")
	w.ResponseWriter.WriteHeader(http.StatusGatewayTimeout)
	_, _ = w.ResponseWriter.Write([]byte(`{"error":"request timeout"}`))
}
