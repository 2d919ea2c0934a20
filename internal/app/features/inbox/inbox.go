// internal/app/features/inbox/inbox.go
package inbox

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	errorsfeature "github.com/safispaces/safispaces/internal/app/features/errors"
	quotestore "github.com/safispaces/safispaces/internal/app/store/quotes"
	"github.com/safispaces/safispaces/internal/app/system/viewdata"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// listLimit caps how many quote requests the inbox shows at once.
const listLimit = 200

// Handler provides the quote request inbox for the site owner.
type Handler struct {
	quotes *quotestore.Store
	errLog *errorsfeature.ErrorLogger
	logger *zap.Logger
}

// NewHandler creates a new inbox Handler.
func NewHandler(db *mongo.Database, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		quotes: quotestore.New(db),
		errLog: errLog,
		logger: logger,
	}
}

// Routes returns a chi.Router with inbox routes mounted. auth is the
// basic-auth middleware; nil disables protection (tests only).
func Routes(h *Handler, auth func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()
	if auth != nil {
		r.Use(auth)
	}
	r.Get("/", h.List)
	r.Post("/{id}/contacted", h.MarkContacted)
	return r
}

// RowVM is one quote request in the inbox table.
type RowVM struct {
	ID           string
	Reference    string
	Name         string
	Email        string
	Phone        string
	ServiceLabel string
	Message      string
	Status       string
	CreatedAt    string
}

// ListVM is the view model for the inbox page.
type ListVM struct {
	viewdata.BaseVM
	Rows     []RowVM
	NewCount int64
}

// List shows the most recent quote requests, newest first.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	reqs, err := h.quotes.List(r.Context(), listLimit)
	if err != nil {
		h.errLog.Log(r, "failed to list quote requests", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	newCount, err := h.quotes.CountByStatus(r.Context(), models.QuoteStatusNew)
	if err != nil {
		h.errLog.Log(r, "failed to count new quote requests", err)
	}

	vm := ListVM{
		BaseVM:   viewdata.New(r, "Quote Inbox"),
		NewCount: newCount,
	}
	for _, q := range reqs {
		vm.Rows = append(vm.Rows, RowVM{
			ID:           q.ID.Hex(),
			Reference:    q.Reference,
			Name:         q.Name,
			Email:        q.Email,
			Phone:        q.Phone,
			ServiceLabel: models.ServiceLabel(q.Service),
			Message:      q.Message,
			Status:       q.Status,
			CreatedAt:    q.CreatedAt.Format("2006-01-02 15:04"),
		})
	}

	templates.Render(w, r, "inbox/list", vm)
}

// MarkContacted flags a quote request as contacted and returns to the list.
func (h *Handler) MarkContacted(w http.ResponseWriter, r *http.Request) {
	id, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	if err := h.quotes.MarkContacted(r.Context(), id); err != nil {
		if err == mongo.ErrNoDocuments {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		h.errLog.Log(r, "failed to mark quote request contacted", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, "/inbox", http.StatusSeeOther)
}
