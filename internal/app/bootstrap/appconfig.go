// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like:
//   - HTTP/HTTPS ports and TLS configuration
//   - Logging level and format
//   - CORS settings
//   - Request body size limits
//   - Database connection timeouts
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Maximum connections in pool (default: 100)
	MongoMinPoolSize uint64 // Minimum connections to keep warm (default: 10)

	// CSRF protection configuration
	CSRFKey string // Secret key for CSRF token signing (32 bytes, must be strong in production)

	// Base URL of the public site (used in notification emails)
	BaseURL string // e.g., "https://safispaces.co.ke" or "http://localhost:8080"

	// Quote submission configuration
	QuoteSubmitTimeout time.Duration // Upper bound on one quote submission (default: 15s)
	QuoteNotifyEmail   string        // Email address notified of new quote requests (empty disables)

	// Rate limiting for quote submissions, keyed by client IP
	RateLimitEnabled       bool
	RateLimitQuoteAttempts int           // Max submissions per window (default: 5)
	RateLimitQuoteWindow   time.Duration // Counting window (default: 1h)

	// CRM forwarding (empty endpoint disables)
	CRMEndpoint     string // URL quote requests are forwarded to
	CRMTokenURL     string // OAuth2 token URL for client-credentials auth
	CRMClientID     string
	CRMClientSecret string

	// Email/SMTP configuration for owner notifications
	MailSMTPHost string // SMTP server host (e.g., localhost for Mailpit)
	MailSMTPPort int    // SMTP server port (e.g., 1025 for Mailpit, 587 for SES)
	MailSMTPUser string // SMTP username (empty to skip auth)
	MailSMTPPass string // SMTP password
	MailFrom     string // From email address
	MailFromName string // From display name

	// Quote inbox basic auth. The inbox is only mounted when both are set.
	InboxUser         string
	InboxPasswordHash string // bcrypt hash of the inbox password
}
