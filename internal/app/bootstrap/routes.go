// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/middleware"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"

	errorsfeature "github.com/safispaces/safispaces/internal/app/features/errors"
	healthfeature "github.com/safispaces/safispaces/internal/app/features/health"
	homefeature "github.com/safispaces/safispaces/internal/app/features/home"
	inboxfeature "github.com/safispaces/safispaces/internal/app/features/inbox"
	pagesfeature "github.com/safispaces/safispaces/internal/app/features/pages"
	quotefeature "github.com/safispaces/safispaces/internal/app/features/quote"
	appresources "github.com/safispaces/safispaces/internal/app/resources"
	"github.com/safispaces/safispaces/internal/app/store/ratelimit"
	"github.com/safispaces/safispaces/internal/app/system/authutil"
	"github.com/safispaces/safispaces/internal/app/system/crm"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. At this point you have access to:
//   - coreCfg: WAFFLE core configuration (ports, env, timeouts, etc.)
//   - appCfg: app-specific configuration defined in AppConfig
//   - deps: any DB or backend clients bundled in DBDeps
//   - logger: the fully configured zap.Logger for this app
//
// The site splits into three route groups:
//   - Web UI routes: CSRF protected, restrictive CORS
//   - Quote API route (/api/quote): no CSRF, permissive CORS for the
//     static-site frontend
//   - Ops routes: health checks and the basic-auth quote inbox
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	secure := coreCfg.Env == "prod"

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	// Create error logger for handlers.
	errLog := errorsfeature.NewErrorLogger(logger)

	r := chi.NewRouter()

	// ─────────────────────────────────────────────────────────────────────────────
	// Global Middleware (applies to ALL routes)
	// ─────────────────────────────────────────────────────────────────────────────

	// Request timeout middleware: prevents requests from hanging indefinitely.
	r.Use(chimw.Timeout(30 * time.Second))

	// CORS middleware: must be early in the chain to handle preflight requests.
	r.Use(middleware.CORSFromConfig(coreCfg))

	// Security headers middleware: adds X-Frame-Options, X-Content-Type-Options, etc.
	r.Use(middleware.SecurityHeadersFromConfig(coreCfg))

	// CSRF protection middleware with a path-based exemption for the JSON
	// quote API, which is called cross-origin by the static frontend.
	// Cookie name is "safispaces_csrf" to avoid collisions with other
	// services on the same domain.
	csrfOpts := []csrf.Option{
		csrf.Secure(secure),
		csrf.Path("/"),
		csrf.CookieName("safispaces_csrf"),
		csrf.FieldName("csrf_token"),
		csrf.SameSite(csrf.SameSiteLaxMode),
		csrf.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			logger.Warn("CSRF validation failed",
				zap.String("path", req.URL.Path),
				zap.String("method", req.Method),
				zap.String("reason", csrf.FailureReason(req).Error()),
			)
			http.Error(w, "CSRF token invalid or missing", http.StatusForbidden)
		})),
	}
	// In dev mode, trust localhost origins for CSRF validation.
	if !secure {
		csrfOpts = append(csrfOpts, csrf.TrustedOrigins([]string{
			"localhost:8080",
			"localhost:3000",
			"127.0.0.1:8080",
			"127.0.0.1:3000",
		}))
	}
	csrfProtect := csrf.Protect([]byte(appCfg.CSRFKey), csrfOpts...)

	csrfMiddleware := func(next http.Handler) http.Handler {
		csrfHandler := csrfProtect(next)
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			if req.URL.Path == "/api/quote" {
				next.ServeHTTP(w, req)
				return
			}
			csrfHandler.ServeHTTP(w, req)
		})
	}
	r.Use(csrfMiddleware)

	// ─────────────────────────────────────────────────────────────────────────────
	// Routes
	// ─────────────────────────────────────────────────────────────────────────────

	// Health check endpoints for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))
	healthfeature.MountRootEndpoints(r, healthHandler)

	// Static assets with pre-compressed file support (gzip/brotli)
	// /static/* serves files from disk (static directory)
	r.Handle("/static/*", fileserver.Handler("/static", "static"))

	// /assets/* serves embedded assets (bundled into the binary)
	r.Handle("/assets/*", appresources.AssetsHandler("/assets"))

	// Public pages
	homeHandler := homefeature.NewHandler(logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	// Dynamic content pages (about, terms, privacy)
	pagesHandler := pagesfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/about", pagesHandler.AboutRouter())
	r.Mount("/terms", pagesHandler.TermsRouter())
	r.Mount("/privacy", pagesHandler.PrivacyRouter())

	// Rate limiting for quote submissions (nil if disabled)
	var rateLimitStore *ratelimit.Store
	if appCfg.RateLimitEnabled {
		rateLimitStore = ratelimit.New(
			deps.MongoDatabase,
			appCfg.RateLimitQuoteAttempts,
			appCfg.RateLimitQuoteWindow,
		)
	}

	// CRM forwarding client (nil if no endpoint configured)
	crmClient := crm.New(crm.Config{
		Endpoint:     appCfg.CRMEndpoint,
		TokenURL:     appCfg.CRMTokenURL,
		ClientID:     appCfg.CRMClientID,
		ClientSecret: appCfg.CRMClientSecret,
	}, logger)

	// Quote request form and JSON API
	submitter := quotefeature.NewStoreAndForward(
		deps.MongoDatabase,
		deps.Mailer,
		appCfg.QuoteNotifyEmail,
		crmClient,
		logger,
	)
	quoteHandler := quotefeature.NewHandler(submitter, rateLimitStore, errLog, logger)
	r.Mount("/quote", quotefeature.Routes(quoteHandler))
	r.Mount("/api/quote", quotefeature.APIRoutes(quoteHandler))

	// Quote inbox, mounted only when basic-auth credentials are configured
	if appCfg.InboxUser != "" && appCfg.InboxPasswordHash != "" {
		inboxHandler := inboxfeature.NewHandler(deps.MongoDatabase, errLog, logger)
		inboxAuth := authutil.BasicAuth(appCfg.InboxUser, appCfg.InboxPasswordHash, logger)
		r.Mount("/inbox", inboxfeature.Routes(inboxHandler, inboxAuth))
	}

	// Catch-all 404 handler rendering the error page
	errorsHandler := errorsfeature.NewHandler()
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}
