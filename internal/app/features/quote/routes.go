// internal/app/features/quote/routes.go
package quote

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/safispaces/safispaces/internal/app/system/apicors"
)

// Routes returns a chi.Router with the quote form routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.ShowForm)
	r.Post("/", h.Submit)
	return r
}

// APIRoutes returns a chi.Router with the JSON quote API mounted. The
// API is cookieless, so it carries permissive CORS and is exempt from
// CSRF protection at the bootstrap layer.
func APIRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(apicors.Middleware())
	r.Post("/", h.SubmitAPI)
	return r
}
