package middleware

import (
	"mime"
	"net/http"
)

// RequireFormEncoded rejects requests whose body is not url-encoded form data
func RequireFormEncoded(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType := r.Header.Get("Content-Type")
		if contentType == "" {
			http.Error(w, "Content-Type is required", http.StatusUnsupportedMediaType)
			return
		}

		mediaType, _, err := mime.ParseMediaType(contentType)
		if err != nil || mediaType != "application/x-www-form-urlencoded" {
			http.Error(w, "Unsupported content type: "+contentType, http.StatusUnsupportedMediaType)
			return
		}

		next.ServeHTTP(w, r)
	})
}
