package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// FingerprintHeader carries the clean-batch fingerprint on generate responses
const FingerprintHeader = "X-Batch-Fingerprint"

// CORS allows browser clients from the given origins ("*" for any)
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-Id"},
		ExposedHeaders: []string{FingerprintHeader, "X-Request-Id"},
		MaxAge:         300,
	})
}
