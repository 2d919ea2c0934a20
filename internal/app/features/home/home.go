// internal/app/features/home/home.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/safispaces/safispaces/internal/app/system/viewdata"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// Handler provides home page handlers.
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new home Handler.
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// HomeVM is the view model for the landing page.
type HomeVM struct {
	viewdata.BaseVM
	Services        []models.Service
	Differentiators []models.Differentiator
	Testimonials    []models.Testimonial
	Stats           []models.Stat
}

// Routes returns a chi.Router with home routes mounted.
func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.Index)
	return r
}

// Index renders the landing page.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	vm := HomeVM{
		BaseVM:          viewdata.New(r, "Professional Cleaning Services in Nairobi"),
		Services:        models.ServiceCatalog(),
		Differentiators: models.Differentiators(),
		Testimonials:    models.Testimonials(),
		Stats:           models.Stats(),
	}

	templates.Render(w, r, "home/index", vm)
}
