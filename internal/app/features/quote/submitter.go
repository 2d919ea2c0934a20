// internal/app/features/quote/submitter.go
package quote

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	quotestore "github.com/safispaces/safispaces/internal/app/store/quotes"
	"github.com/safispaces/safispaces/internal/app/system/crm"
	"github.com/safispaces/safispaces/internal/app/system/mailer"
	"github.com/safispaces/safispaces/internal/domain/models"
)

type ctxKeyClientIP struct{}

// WithClientIP records the requesting client's address on the context
// so the submitter can store it alongside the quote request.
func WithClientIP(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, ctxKeyClientIP{}, ip)
}

// ClientIPFromContext returns the client address recorded by
// WithClientIP, or "" when none was recorded.
func ClientIPFromContext(ctx context.Context) string {
	ip, _ := ctx.Value(ctxKeyClientIP{}).(string)
	return ip
}

// StoreAndForward is the production Submitter. It persists the quote
// request, then emails the site owner and forwards to the CRM. The
// stored document is the source of truth: notification and CRM failures
// are logged but do not fail the submission.
type StoreAndForward struct {
	store    *quotestore.Store
	notifier *mailer.Mailer
	notifyTo string
	crm      *crm.Client
	logger   *zap.Logger
}

// NewStoreAndForward creates the production submitter. notifier and
// crmClient may be nil; notifyTo may be empty. Only the store is
// required.
func NewStoreAndForward(db *mongo.Database, notifier *mailer.Mailer, notifyTo string, crmClient *crm.Client, logger *zap.Logger) *StoreAndForward {
	return &StoreAndForward{
		store:    quotestore.New(db),
		notifier: notifier,
		notifyTo: notifyTo,
		crm:      crmClient,
		logger:   logger,
	}
}

// Submit stores the quote request and fans out notifications.
func (s *StoreAndForward) Submit(ctx context.Context, fields models.QuoteFields) error {
	req, err := s.store.Insert(ctx, fields, ClientIPFromContext(ctx))
	if err != nil {
		return err
	}

	s.logger.Info("quote request stored",
		zap.String("reference", req.Reference),
		zap.String("service", string(req.Service)))

	if s.notifier != nil && s.notifyTo != "" {
		if err := s.notifier.Send(mailer.QuoteNotification(s.notifyTo, req)); err != nil {
			s.logger.Warn("quote notification email failed",
				zap.String("reference", req.Reference),
				zap.Error(err))
		}
	}

	if s.crm != nil {
		if err := s.crm.Submit(ctx, req); err != nil {
			s.logger.Warn("quote CRM forward failed",
				zap.String("reference", req.Reference),
				zap.Error(err))
		}
	}

	return nil
}
