// Package apicors provides CORS middleware for the JSON quote API.
//
// The quote API carries no cookies and no credentials, so origins can be
// "*" and AllowCredentials stays false. Browser-rendered routes keep the
// restrictive CORS configured at the core middleware layer; this package
// only loosens the endpoints that static front-ends post to with fetch().
package apicors

import (
	"net/http"
)

// Middleware returns CORS middleware suitable for the cookieless JSON API.
//
// This middleware:
//   - Allows any origin (Access-Control-Allow-Origin: *)
//   - Does not allow credentials
//   - Allows the methods and headers the quote API uses
//   - Handles preflight OPTIONS requests
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Accept")
			w.Header().Set("Access-Control-Max-Age", "86400") // 24 hours

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
