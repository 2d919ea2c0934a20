// internal/domain/models/quote.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Field length caps, enforced at the input boundary (SetField), not at
// submit time.
const (
	MaxNameLen    = 100
	MaxEmailLen   = 100
	MaxPhoneLen   = 20
	MaxMessageLen = 1000
)

// QuoteFields is the sanitized payload of a quote request. Every text
// field holds only sanitized content; sanitization happens where values
// enter the form, so this struct never carries raw markup.
type QuoteFields struct {
	Name    string     `bson:"name" json:"name"`
	Email   string     `bson:"email" json:"email"`
	Phone   string     `bson:"phone,omitempty" json:"phone"`
	Service ServiceKey `bson:"service" json:"service"`
	Message string     `bson:"message" json:"message"`
}

// Quote request follow-up statuses.
const (
	QuoteStatusNew       = "new"
	QuoteStatusContacted = "contacted"
)

// QuoteRequest is a stored quote inquiry.
type QuoteRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Reference   string             `bson:"reference" json:"reference"` // short id quoted in follow-up email
	QuoteFields `bson:",inline"`
	ClientIP    string    `bson:"client_ip,omitempty" json:"-"`
	Status      string    `bson:"status" json:"status"` // new, contacted
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}
