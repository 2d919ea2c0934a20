package quote

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"go.uber.org/zap"

	"github.com/safispaces/safispaces/internal/domain/models"
)

// fakeSubmitter records calls and can fail or block on demand.
type fakeSubmitter struct {
	err     error
	calls   atomic.Int32
	lastMu  sync.Mutex
	last    models.QuoteFields
	entered chan struct{}
	release chan struct{}
}

func (s *fakeSubmitter) Submit(ctx context.Context, fields models.QuoteFields) error {
	s.calls.Add(1)
	s.lastMu.Lock()
	s.last = fields
	s.lastMu.Unlock()
	if s.entered != nil {
		close(s.entered)
	}
	if s.release != nil {
		<-s.release
	}
	return s.err
}

func (s *fakeSubmitter) lastFields() models.QuoteFields {
	s.lastMu.Lock()
	defer s.lastMu.Unlock()
	return s.last
}

func filledForm() *Form {
	f := NewForm()
	f.SetField(FieldName, "Jane Wanjiku")
	f.SetField(FieldEmail, "jane@example.com")
	f.SetField(FieldPhone, "0712345678")
	f.SetField(FieldService, "home")
	f.SetField(FieldMessage, "Three bedroom house, deep clean.")
	return f
}

func TestSubmit_Success(t *testing.T) {
	sub := &fakeSubmitter{}
	f := filledForm()
	c := NewController(f, sub, zap.NewNop())

	st := c.Submit(context.Background())

	if !st.IsSuccess() {
		t.Fatalf("Submit() = %+v, want success", st)
	}
	if st.Message != MsgSubmitSuccess {
		t.Errorf("Message = %q, want %q", st.Message, MsgSubmitSuccess)
	}
	if got := sub.calls.Load(); got != 1 {
		t.Errorf("submitter calls = %d, want 1", got)
	}
	if sub.lastFields().Name != "Jane Wanjiku" {
		t.Errorf("submitter got fields %+v", sub.lastFields())
	}

	// Success restores the form defaults for the next request
	if fields := f.Fields(); fields != emptyFields() {
		t.Errorf("fields after success = %+v, want defaults", fields)
	}
	if got := f.Status(); got != st {
		t.Errorf("form status = %+v, want %+v", got, st)
	}
}

func TestSubmit_MissingRequired(t *testing.T) {
	tests := []struct {
		name  string
		strip string
	}{
		{"no name", FieldName},
		{"no email", FieldEmail},
		{"no message", FieldMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := &fakeSubmitter{}
			f := filledForm()
			f.SetField(tt.strip, "")
			c := NewController(f, sub, zap.NewNop())

			st := c.Submit(context.Background())

			if !st.IsError() || st.Reason != ReasonMissingRequired {
				t.Fatalf("Submit() = %+v, want missing-required error", st)
			}
			if st.Message != MsgMissingRequired {
				t.Errorf("Message = %q, want %q", st.Message, MsgMissingRequired)
			}
			if sub.calls.Load() != 0 {
				t.Error("submitter must not be called on validation failure")
			}
		})
	}
}

func TestSubmit_EmptyPhoneIsAllowed(t *testing.T) {
	sub := &fakeSubmitter{}
	f := filledForm()
	f.SetField(FieldPhone, "")
	c := NewController(f, sub, zap.NewNop())

	if st := c.Submit(context.Background()); !st.IsSuccess() {
		t.Errorf("Submit() with empty phone = %+v, want success", st)
	}
}

func TestSubmit_InvalidEmail(t *testing.T) {
	sub := &fakeSubmitter{}
	f := filledForm()
	f.SetField(FieldEmail, "not-an-email")
	c := NewController(f, sub, zap.NewNop())

	st := c.Submit(context.Background())

	if !st.IsError() || st.Reason != ReasonInvalidEmail {
		t.Fatalf("Submit() = %+v, want invalid-email error", st)
	}
	if st.Message != MsgInvalidEmail {
		t.Errorf("Message = %q, want %q", st.Message, MsgInvalidEmail)
	}
	if sub.calls.Load() != 0 {
		t.Error("submitter must not be called on validation failure")
	}
}

func TestSubmit_InvalidPhone(t *testing.T) {
	sub := &fakeSubmitter{}
	f := filledForm()
	f.SetField(FieldPhone, "0812345678")
	c := NewController(f, sub, zap.NewNop())

	st := c.Submit(context.Background())

	if !st.IsError() || st.Reason != ReasonInvalidPhone {
		t.Fatalf("Submit() = %+v, want invalid-phone error", st)
	}
	if st.Message != MsgInvalidPhone {
		t.Errorf("Message = %q, want %q", st.Message, MsgInvalidPhone)
	}
	if sub.calls.Load() != 0 {
		t.Error("submitter must not be called on validation failure")
	}
}

func TestSubmit_CheckOrder(t *testing.T) {
	// Required-field check wins over format checks
	f := NewForm()
	f.SetField(FieldEmail, "bad email")
	f.SetField(FieldPhone, "12345")
	c := NewController(f, &fakeSubmitter{}, zap.NewNop())

	if st := c.Submit(context.Background()); st.Reason != ReasonMissingRequired {
		t.Errorf("Submit() = %+v, want missing-required first", st)
	}

	// Email format check wins over phone format check
	f2 := filledForm()
	f2.SetField(FieldEmail, "bad email")
	f2.SetField(FieldPhone, "12345")
	c2 := NewController(f2, &fakeSubmitter{}, zap.NewNop())

	if st := c2.Submit(context.Background()); st.Reason != ReasonInvalidEmail {
		t.Errorf("Submit() = %+v, want invalid-email before invalid-phone", st)
	}
}

func TestSubmit_TransportFailure(t *testing.T) {
	sub := &fakeSubmitter{err: errors.New("connection refused")}
	f := filledForm()
	c := NewController(f, sub, zap.NewNop())

	st := c.Submit(context.Background())

	if !st.IsError() || st.Reason != ReasonTransport {
		t.Fatalf("Submit() = %+v, want transport error", st)
	}
	if st.Message != MsgSubmitFailed {
		t.Errorf("Message = %q, want %q", st.Message, MsgSubmitFailed)
	}

	// Fields stay so the visitor can retry without retyping
	if f.Fields().Name != "Jane Wanjiku" {
		t.Errorf("fields after failure = %+v, want preserved", f.Fields())
	}
}

func TestSubmit_IgnoresOverlappingCall(t *testing.T) {
	sub := &fakeSubmitter{
		entered: make(chan struct{}),
		release: make(chan struct{}),
	}
	f := filledForm()
	c := NewController(f, sub, zap.NewNop())

	done := make(chan Status, 1)
	go func() {
		done <- c.Submit(context.Background())
	}()

	<-sub.entered

	// Second call while the first is in flight must be a no-op
	st := c.Submit(context.Background())
	if st.Kind != StatusNone {
		t.Errorf("overlapping Submit() = %+v, want untouched status", st)
	}
	if got := sub.calls.Load(); got != 1 {
		t.Errorf("submitter calls = %d, want 1", got)
	}

	close(sub.release)

	if first := <-done; !first.IsSuccess() {
		t.Errorf("first Submit() = %+v, want success", first)
	}

	// Once finished, submitting again works
	f2 := filledForm()
	c2 := NewController(f2, &fakeSubmitter{}, zap.NewNop())
	if st := c2.Submit(context.Background()); !st.IsSuccess() {
		t.Errorf("follow-up Submit() = %+v, want success", st)
	}
}
