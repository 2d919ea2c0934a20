// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"

	"github.com/safispaces/safispaces/internal/app/system/inputval"
)

// EnvVarPrefix is the prefix for environment variables.
// For example, mongo_uri becomes SAFISPACES_MONGO_URI.
const EnvVarPrefix = "SAFISPACES"

// appConfigKeys defines the configuration keys for this application.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, csrf_key, etc.
//   - Environment variables: SAFISPACES_MONGO_URI, SAFISPACES_CSRF_KEY, etc.
//   - Command-line flags: --mongo_uri, --csrf_key, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "safispaces", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "csrf_key", Default: "dev-only-csrf-key-please-change-0123456789", Desc: "CSRF token signing key (32+ chars in production)"},

	// Base URL of the public site (used in notification emails)
	{Name: "base_url", Default: "http://localhost:8080", Desc: "Base URL of the public site"},

	// Quote submission configuration
	{Name: "quote_submit_timeout", Default: "15s", Desc: "Upper bound on a single quote submission (e.g., 15s, 30s)"},
	{Name: "quote_notify_email", Default: "", Desc: "Email address notified of new quote requests (empty disables)"},

	// Rate limiting configuration
	{Name: "rate_limit_enabled", Default: true, Desc: "Enable rate limiting for quote submissions"},
	{Name: "rate_limit_quote_attempts", Default: 5, Desc: "Max quote submissions per client IP per window"},
	{Name: "rate_limit_quote_window", Default: "1h", Desc: "Time window for counting quote submissions"},

	// CRM forwarding (leave endpoint empty to disable)
	{Name: "crm_endpoint", Default: "", Desc: "CRM URL quote requests are forwarded to (empty disables)"},
	{Name: "crm_token_url", Default: "", Desc: "OAuth2 token URL for CRM client-credentials auth"},
	{Name: "crm_client_id", Default: "", Desc: "OAuth2 client ID for the CRM"},
	{Name: "crm_client_secret", Default: "", Desc: "OAuth2 client secret for the CRM"},

	// Email/SMTP configuration
	{Name: "mail_smtp_host", Default: "localhost", Desc: "SMTP server host"},
	{Name: "mail_smtp_port", Default: 1025, Desc: "SMTP server port"},
	{Name: "mail_smtp_user", Default: "", Desc: "SMTP username"},
	{Name: "mail_smtp_pass", Default: "", Desc: "SMTP password"},
	{Name: "mail_from", Default: "noreply@safispaces.co.ke", Desc: "From email address"},
	{Name: "mail_from_name", Default: "SafiSpaces", Desc: "From display name"},

	// Quote inbox basic auth (both must be set to mount the inbox)
	{Name: "inbox_user", Default: "", Desc: "Username for the quote inbox (empty disables the inbox)"},
	{Name: "inbox_password_hash", Default: "", Desc: "bcrypt hash of the quote inbox password"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
// CoreConfig comes from the shared WAFFLE layer; AppConfig is specific
// to this app and can be extended as the app grows.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, SAFISPACES_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, EnvVarPrefix, appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		CSRFKey: appValues.String("csrf_key"),
		BaseURL: appValues.String("base_url"),

		// Quote submission
		QuoteSubmitTimeout: appValues.Duration("quote_submit_timeout", 15*time.Second),
		QuoteNotifyEmail:   appValues.String("quote_notify_email"),

		// Rate limiting
		RateLimitEnabled:       appValues.Bool("rate_limit_enabled"),
		RateLimitQuoteAttempts: appValues.Int("rate_limit_quote_attempts"),
		RateLimitQuoteWindow:   appValues.Duration("rate_limit_quote_window", time.Hour),

		// CRM forwarding
		CRMEndpoint:     appValues.String("crm_endpoint"),
		CRMTokenURL:     appValues.String("crm_token_url"),
		CRMClientID:     appValues.String("crm_client_id"),
		CRMClientSecret: appValues.String("crm_client_secret"),

		// Email/SMTP
		MailSMTPHost: appValues.String("mail_smtp_host"),
		MailSMTPPort: appValues.Int("mail_smtp_port"),
		MailSMTPUser: appValues.String("mail_smtp_user"),
		MailSMTPPass: appValues.String("mail_smtp_pass"),
		MailFrom:     appValues.String("mail_from"),
		MailFromName: appValues.String("mail_from_name"),

		// Quote inbox
		InboxUser:         appValues.String("inbox_user"),
		InboxPasswordHash: appValues.String("inbox_password_hash"),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// This is the right place to enforce required fields or invariants that
// involve both the core and app configs.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}

	if appCfg.CRMEndpoint != "" && !inputval.IsValidHTTPURL(appCfg.CRMEndpoint) {
		return fmt.Errorf("invalid CRM endpoint URL: %s", appCfg.CRMEndpoint)
	}
	if appCfg.CRMTokenURL != "" && !inputval.IsValidHTTPURL(appCfg.CRMTokenURL) {
		return fmt.Errorf("invalid CRM token URL: %s", appCfg.CRMTokenURL)
	}

	if appCfg.InboxUser != "" && appCfg.InboxPasswordHash == "" {
		return fmt.Errorf("inbox_user is set but inbox_password_hash is empty")
	}

	if appCfg.QuoteSubmitTimeout <= 0 {
		return fmt.Errorf("quote_submit_timeout must be positive")
	}

	return nil
}
