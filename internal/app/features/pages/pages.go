// internal/app/features/pages/pages.go
package pages

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/safispaces/safispaces/internal/app/features/errors"
	pagestore "github.com/safispaces/safispaces/internal/app/store/pages"
	"github.com/safispaces/safispaces/internal/app/system/htmlsanitize"
	"github.com/safispaces/safispaces/internal/app/system/viewdata"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// Handler provides page content handlers.
type Handler struct {
	pageStore *pagestore.Store
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new pages Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		pageStore: pagestore.New(db),
		errLog:    errLog,
		logger:    logger,
	}
}

// PageVM is the view model for page content.
type PageVM struct {
	viewdata.BaseVM
	Slug    string
	Content template.HTML
}

// AboutRouter returns a router for the about page.
func (h *Handler) AboutRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showPage(models.PageSlugAbout, "About Us"))
	return r
}

// TermsRouter returns a router for the terms page.
func (h *Handler) TermsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showPage(models.PageSlugTerms, "Terms of Service"))
	return r
}

// PrivacyRouter returns a router for the privacy page.
func (h *Handler) PrivacyRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/", h.showPage(models.PageSlugPrivacy, "Privacy Policy"))
	return r
}

// showPage returns a handler that displays a page by slug. Page content
// is stored as trusted seed HTML but still passes through the content
// policy before display.
func (h *Handler) showPage(slug, defaultTitle string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		page, err := h.pageStore.GetBySlug(r.Context(), slug)
		if err != nil && err != mongo.ErrNoDocuments {
			h.errLog.Log(r, "failed to get page", err)
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		vm := PageVM{
			BaseVM: viewdata.New(r, defaultTitle),
			Slug:   slug,
		}

		if err == nil {
			vm.Title = page.Title
			vm.Content = htmlsanitize.SanitizeContent(page.Content)
		}

		templates.Render(w, r, "pages/show", vm)
	}
}
