// internal/app/features/quote/handler.go
package quote

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"

	errorsfeature "github.com/safispaces/safispaces/internal/app/features/errors"
	"github.com/safispaces/safispaces/internal/app/store/ratelimit"
	"github.com/safispaces/safispaces/internal/app/system/network"
	"github.com/safispaces/safispaces/internal/app/system/viewdata"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// Handler provides the quote request form and API handlers.
type Handler struct {
	submitter Submitter
	limiter   *ratelimit.Store
	errLog    *errorsfeature.ErrorLogger
	logger    *zap.Logger
}

// NewHandler creates a new quote Handler. limiter may be nil to disable
// rate limiting.
func NewHandler(submitter Submitter, limiter *ratelimit.Store, errLog *errorsfeature.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		submitter: submitter,
		limiter:   limiter,
		errLog:    errLog,
		logger:    logger,
	}
}

// FormVM is the view model for the quote form page.
type FormVM struct {
	viewdata.BaseVM
	Services []models.Service
	Fields   models.QuoteFields
	Status   Status
}

func (h *Handler) newFormVM(r *http.Request) FormVM {
	vm := FormVM{
		BaseVM:   viewdata.New(r, "Request a Quote"),
		Services: models.ServiceCatalog(),
	}
	return vm
}

// ShowForm renders the quote request form. After a successful
// submission the browser is redirected back here with ?sent=1 so a
// refresh never resubmits.
func (h *Handler) ShowForm(w http.ResponseWriter, r *http.Request) {
	vm := h.newFormVM(r)
	if r.URL.Query().Get("sent") == "1" {
		vm.Status = successStatus()
	}
	templates.Render(w, r, "quote/form", vm)
}

// Submit handles the HTML form POST. Validation errors re-render the
// form with the visitor's input echoed back; success redirects.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.errLog.Log(r, "failed to parse quote form", err)
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	clientIP := network.GetClientIP(r)

	if h.limiter != nil {
		if allowed, _ := h.limiter.CheckAllowed(r.Context(), clientIP); !allowed {
			vm := h.newFormVM(r)
			vm.Status = errorStatus(ReasonTransport, MsgRateLimited)
			templates.Render(w, r, "quote/form", vm)
			return
		}
	}

	form := NewForm()
	for _, name := range []string{FieldName, FieldEmail, FieldPhone, FieldService, FieldMessage} {
		form.SetField(name, r.FormValue(name))
	}

	ctrl := NewController(form, h.submitter, h.logger)
	st := ctrl.Submit(WithClientIP(r.Context(), clientIP))

	if st.IsSuccess() {
		if h.limiter != nil {
			h.limiter.Record(r.Context(), clientIP)
		}
		http.Redirect(w, r, r.URL.Path+"?sent=1", http.StatusSeeOther)
		return
	}

	vm := h.newFormVM(r)
	vm.Fields = form.Fields()
	vm.Status = st
	templates.Render(w, r, "quote/form", vm)
}
