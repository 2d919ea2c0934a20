// internal/app/features/quote/controller.go
package quote

import (
	"context"

	"go.uber.org/zap"

	"github.com/safispaces/safispaces/internal/app/system/inputval"
	"github.com/safispaces/safispaces/internal/app/system/normalize"
	"github.com/safispaces/safispaces/internal/app/system/timeouts"
	"github.com/safispaces/safispaces/internal/domain/models"
)

// Submitter delivers a validated quote request to its destination.
type Submitter interface {
	Submit(ctx context.Context, fields models.QuoteFields) error
}

// Controller drives a quote form through validation and submission.
type Controller struct {
	form      *Form
	submitter Submitter
	logger    *zap.Logger
}

// NewController creates a controller for the given form and submitter.
func NewController(form *Form, submitter Submitter, logger *zap.Logger) *Controller {
	return &Controller{
		form:      form,
		submitter: submitter,
		logger:    logger,
	}
}

// Form returns the controller's form.
func (c *Controller) Form() *Form {
	return c.form
}

// Submit validates the form and, if everything passes, hands the fields
// to the submitter. Checks run in a fixed order and the first failure
// wins: required fields, then email format, then phone format. A call
// that arrives while another submission is in flight is ignored and the
// current status is returned unchanged.
func (c *Controller) Submit(ctx context.Context) Status {
	if !c.form.BeginSubmit() {
		return c.form.Status()
	}
	defer c.form.EndSubmit()

	fields := c.form.Fields()

	if normalize.Field(fields.Name) == "" ||
		normalize.Field(fields.Email) == "" ||
		normalize.Field(fields.Message) == "" {
		st := errorStatus(ReasonMissingRequired, MsgMissingRequired)
		c.form.setStatus(st)
		return st
	}

	if !inputval.IsValidEmail(fields.Email) {
		st := errorStatus(ReasonInvalidEmail, MsgInvalidEmail)
		c.form.setStatus(st)
		return st
	}

	if !inputval.IsValidKenyanPhone(fields.Phone) {
		st := errorStatus(ReasonInvalidPhone, MsgInvalidPhone)
		c.form.setStatus(st)
		return st
	}

	subCtx, cancel := context.WithTimeout(ctx, timeouts.Submit())
	defer cancel()

	if err := c.submitter.Submit(subCtx, fields); err != nil {
		c.logger.Error("quote submission failed", zap.Error(err))
		st := errorStatus(ReasonTransport, MsgSubmitFailed)
		c.form.setStatus(st)
		return st
	}

	st := successStatus()
	c.form.finishSuccess(st)
	return st
}
