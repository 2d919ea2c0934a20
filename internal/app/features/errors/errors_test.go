package errors

import (
	"errors"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func TestNewErrorLogger(t *testing.T) {
	el := NewErrorLogger(zap.NewNop())
	if el == nil {
		t.Fatal("NewErrorLogger() returned nil")
	}

	r := httptest.NewRequest("GET", "/somewhere", nil)
	el.Log(r, "something failed", errors.New("boom"))
	el.LogWithFields(r, "something failed", errors.New("boom"),
		zap.String("extra", "field"))
}

func TestNewHandler(t *testing.T) {
	if NewHandler() == nil {
		t.Fatal("NewHandler() returned nil")
	}
}
