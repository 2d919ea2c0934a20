// internal/app/system/mailer/templates.go
package mailer

import (
	"fmt"
	"strings"

	"github.com/safispaces/safispaces/internal/domain/models"
)

// QuoteNotification builds the email sent to the site owner when a new
// quote request is stored. The body is plain text; all field values are
// already sanitized at the form boundary.
func QuoteNotification(to string, req models.QuoteRequest) Email {
	var b strings.Builder
	fmt.Fprintf(&b, "New quote request %s\n\n", req.Reference)
	fmt.Fprintf(&b, "Name:    %s\n", req.Name)
	fmt.Fprintf(&b, "Email:   %s\n", req.Email)
	if req.Phone != "" {
		fmt.Fprintf(&b, "Phone:   %s\n", req.Phone)
	}
	fmt.Fprintf(&b, "Service: %s\n", models.ServiceLabel(req.Service))
	fmt.Fprintf(&b, "Sent:    %s\n\n", req.CreatedAt.Format("2006-01-02 15:04 MST"))
	fmt.Fprintf(&b, "Message:\n%s\n", req.Message)

	return Email{
		To:      to,
		Subject: fmt.Sprintf("Quote request %s from %s", req.Reference, req.Name),
		Body:    b.String(),
	}
}
