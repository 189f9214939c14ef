package middleware

import (
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/nitij-msarii/rag-api-usertask/pkg/observability"
)

// RequestLogger returns middleware that logs HTTP requests at DEBUG level
// and records request metrics. Pass nil logger to disable logging.
func RequestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap response writer to capture status code
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			// The mux records the matched pattern on the request during
			// routing. Unmatched requests share one label value, keeping
			// raw paths out of the label space.
			route := r.Pattern
			if route == "" {
				route = "unmatched"
			}

			status := strconv.Itoa(wrapped.statusCode)
			observability.HTTPRequestsTotal.WithLabelValues(r.Method, route, status).Inc()
			observability.HTTPRequestDurationSeconds.WithLabelValues(r.Method, route, status).
				Observe(time.Since(start).Seconds())

			if logger == nil {
				return
			}
			logger.Debug("HTTP request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", wrapped.statusCode),
				zap.Duration("duration", time.Since(start)),
				zap.String("remote_addr", r.RemoteAddr),
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
