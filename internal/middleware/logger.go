package middleware

import (
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Logger returns a middleware that logs HTTP requests using zap logger.
// It logs the method, URI, status code, duration, response size and request id.
func Logger(logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			wrapped := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				status := wrapped.Status()
				if status == 0 {
					status = http.StatusOK
				}

				logger.Info("HTTP request",
					zap.String("method", r.Method),
					zap.String("uri", r.RequestURI),
					zap.Int("status", status),
					zap.Duration("duration", time.Since(start)),
					zap.Int("size", wrapped.BytesWritten()),
					zap.String("remote_addr", r.RemoteAddr),
					zap.String("request_id", chimiddleware.GetReqID(r.Context())),
				)
			}()

			next.ServeHTTP(wrapped, r)
		})
	}
}
