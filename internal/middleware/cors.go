package middleware

import (
	"net/http"
)

// Cors allows everything: the ingest client is an iOS Shortcuts automation
// and the query side is meant for agent integrations, neither sends a
// browser Origin worth restricting on.
func Cors() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				origin = "*"
			}
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Headers",
				"Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, X-API-Key",
			)
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, DELETE")

			next.ServeHTTP(w, r)
		})
	}
}
