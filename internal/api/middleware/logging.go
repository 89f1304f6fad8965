package middleware

import (
	"net/http"
	"time"

	"github.com/Project-Sylos/Mimic/internal/logger"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs one line per request and stores a request-scoped logger
// (tagged with the chi request id) in the request context. It must run after
// chi's RequestID middleware.
func RequestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			reqLog := log.With("request_id", chimiddleware.GetReqID(r.Context()))

			defer func() {
				reqLog.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()

			next.ServeHTTP(ww, r.WithContext(logger.ContextWithLogger(r.Context(), reqLog)))
		})
	}
}
