package home

import (
	"testing"

	"go.uber.org/zap"

	"github.com/safispaces/safispaces/internal/domain/models"
)

func TestNewHandler(t *testing.T) {
	h := NewHandler(zap.NewNop())
	if h == nil {
		t.Fatal("NewHandler() returned nil")
	}
}

func TestRoutes(t *testing.T) {
	h := NewHandler(zap.NewNop())
	if Routes(h) == nil {
		t.Fatal("Routes() returned nil")
	}
}

func TestHomeVM(t *testing.T) {
	vm := HomeVM{
		Services:        models.ServiceCatalog(),
		Differentiators: models.Differentiators(),
		Testimonials:    models.Testimonials(),
		Stats:           models.Stats(),
	}

	if len(vm.Services) == 0 {
		t.Error("Services should not be empty")
	}
	for _, s := range vm.Services {
		if s.Key == models.ServiceUnspecified {
			t.Error("catalog should not list the unspecified placeholder")
		}
	}
	if len(vm.Differentiators) == 0 || len(vm.Testimonials) == 0 || len(vm.Stats) == 0 {
		t.Error("landing page sections should not be empty")
	}
}
