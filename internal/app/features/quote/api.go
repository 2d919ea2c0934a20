// internal/app/features/quote/api.go
package quote

import (
	"net/http"

	"github.com/safispaces/safispaces/internal/app/system/jsonutil"
	"github.com/safispaces/safispaces/internal/app/system/network"
)

// apiRequest is the JSON body accepted by the quote API.
type apiRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Service string `json:"service"`
	Message string `json:"message"`
}

// apiResponse is the JSON body returned by the quote API. Message is
// always one of the user-facing form messages.
type apiResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// SubmitAPI handles JSON quote submissions from static front-ends.
// Validation failures map to 400, downstream failures to 502, and rate
// limiting to 429.
func (h *Handler) SubmitAPI(w http.ResponseWriter, r *http.Request) {
	var in apiRequest
	if err := jsonutil.Decode(r, &in); err != nil {
		jsonutil.BadRequest(w, "invalid JSON body")
		return
	}

	clientIP := network.GetClientIP(r)

	if h.limiter != nil {
		if allowed, _ := h.limiter.CheckAllowed(r.Context(), clientIP); !allowed {
			jsonutil.JSON(w, http.StatusTooManyRequests, apiResponse{Success: false, Message: MsgRateLimited})
			return
		}
	}

	form := NewForm()
	form.SetField(FieldName, in.Name)
	form.SetField(FieldEmail, in.Email)
	form.SetField(FieldPhone, in.Phone)
	form.SetField(FieldService, in.Service)
	form.SetField(FieldMessage, in.Message)

	ctrl := NewController(form, h.submitter, h.logger)
	st := ctrl.Submit(WithClientIP(r.Context(), clientIP))

	switch {
	case st.IsSuccess():
		if h.limiter != nil {
			h.limiter.Record(r.Context(), clientIP)
		}
		jsonutil.OK(w, apiResponse{Success: true, Message: st.Message})
	case st.Reason == ReasonTransport:
		jsonutil.JSON(w, http.StatusBadGateway, apiResponse{Success: false, Message: st.Message})
	default:
		jsonutil.JSON(w, http.StatusBadRequest, apiResponse{Success: false, Message: st.Message})
	}
}
