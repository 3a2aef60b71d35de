package middleware

import (
	"crypto/subtle"
	"net/http"
)

// WorkerSecretHeader carries the shared secret on worker callbacks.
const WorkerSecretHeader = "X-Worker-Secret"

// WorkerSecret guards internal endpoints called by the analysis worker.
// An empty secret disables the endpoints entirely.
func WorkerSecret(secret string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				writeError(w, http.StatusNotImplemented, "worker callbacks are not configured")
				return
			}
			got := r.Header.Get(WorkerSecretHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				writeError(w, http.StatusUnauthorized, "unauthorized")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
