package quote

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	errorsfeature "github.com/safispaces/safispaces/internal/app/features/errors"
)

func newAPIHandler(sub Submitter) *Handler {
	return NewHandler(sub, nil, errorsfeature.NewErrorLogger(zap.NewNop()), zap.NewNop())
}

func postJSON(t *testing.T, h *Handler, body string) (*httptest.ResponseRecorder, apiResponse) {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.SubmitAPI(w, r)

	var resp apiResponse
	if w.Body.Len() > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
		}
	}
	return w, resp
}

func TestSubmitAPI_Success(t *testing.T) {
	sub := &fakeSubmitter{}
	h := newAPIHandler(sub)

	w, resp := postJSON(t, h, `{
		"name": "Jane Wanjiku",
		"email": "jane@example.com",
		"phone": "+254712345678",
		"service": "office",
		"message": "Weekly cleaning for 20 desks."
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body %s)", w.Code, w.Body.String())
	}
	if !resp.Success || resp.Message != MsgSubmitSuccess {
		t.Errorf("response = %+v", resp)
	}
	if sub.calls.Load() != 1 {
		t.Errorf("submitter calls = %d, want 1", sub.calls.Load())
	}
	if sub.lastFields().Service != "office" {
		t.Errorf("submitter got service %q", sub.lastFields().Service)
	}
}

func TestSubmitAPI_ValidationErrors(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{
			name:    "missing fields",
			body:    `{"email": "jane@example.com"}`,
			message: MsgMissingRequired,
		},
		{
			name:    "bad email",
			body:    `{"name": "Jane", "email": "nope", "message": "Hi"}`,
			message: MsgInvalidEmail,
		},
		{
			name:    "bad phone",
			body:    `{"name": "Jane", "email": "jane@example.com", "phone": "12345", "message": "Hi"}`,
			message: MsgInvalidPhone,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{}
			h := newAPIHandler(sub)

			w, resp := postJSON(t, h, tt.body)

			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", w.Code)
			}
			if resp.Success || resp.Message != tt.message {
				t.Errorf("response = %+v, want message %q", resp, tt.message)
			}
			if sub.calls.Load() != 0 {
				t.Error("submitter must not be called on validation failure")
			}
		})
	}
}

func TestSubmitAPI_TransportFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("db down")}
	h := newAPIHandler(sub)

	w, resp := postJSON(t, h, `{"name": "Jane", "email": "jane@example.com", "message": "Hi"}`)

	if w.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", w.Code)
	}
	if resp.Success || resp.Message != MsgSubmitFailed {
		t.Errorf("response = %+v", resp)
	}
}

func TestSubmitAPI_InvalidJSON(t *testing.T) {
	h := newAPIHandler(&fakeSubmitter{})

	r := httptest.NewRequest(http.MethodPost, "/api/quote", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.SubmitAPI(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", w.Code)
	}
}

func TestSubmitAPI_SanitizesInput(t *testing.T) {
	sub := &fakeSubmitter{}
	h := newAPIHandler(sub)

	_, resp := postJSON(t, h, `{
		"name": "<b>Jane</b>",
		"email": "jane@example.com",
		"message": "<script>alert(1)</script>Please call me"
	}`)

	if !resp.Success {
		t.Fatalf("response = %+v, want success", resp)
	}

	got := sub.lastFields()
	if strings.Contains(got.Name, "<") || strings.Contains(got.Message, "<") {
		t.Errorf("stored fields still contain markup: %+v", got)
	}
	if !strings.Contains(got.Message, "Please call me") {
		t.Errorf("message text lost: %q", got.Message)
	}
}
