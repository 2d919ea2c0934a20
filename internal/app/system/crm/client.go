// Package crm forwards accepted quote requests to an external CRM
// endpoint. Forwarding is optional: a zero-value endpoint disables the
// client, and callers treat a nil *Client as "no CRM configured".
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/safispaces/safispaces/internal/domain/models"
)

// Config holds the settings for the CRM client.
type Config struct {
	// Endpoint is the URL quote requests are POSTed to. Empty disables
	// forwarding.
	Endpoint string

	// TokenURL, ClientID, and ClientSecret configure OAuth2 client
	// credentials. When all three are set, requests carry a bearer
	// token; otherwise the endpoint is called unauthenticated.
	TokenURL     string
	ClientID     string
	ClientSecret string

	// Timeout bounds each forwarding call. Zero means 10 seconds.
	Timeout time.Duration
}

// Client posts quote requests to the configured CRM endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
	log        *zap.Logger
}

// New creates a CRM client, or nil when cfg.Endpoint is empty.
func New(cfg Config, log *zap.Logger) *Client {
	if cfg.Endpoint == "" {
		return nil
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	httpClient := &http.Client{Timeout: timeout}
	if cfg.TokenURL != "" && cfg.ClientID != "" && cfg.ClientSecret != "" {
		cc := clientcredentials.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			TokenURL:     cfg.TokenURL,
		}
		// Reuse the timeout-bounded client for the token exchange.
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = cc.Client(ctx)
		httpClient.Timeout = timeout
	}

	return &Client{
		endpoint:   cfg.Endpoint,
		httpClient: httpClient,
		log:        log,
	}
}

// payload is the wire shape the CRM endpoint accepts.
type payload struct {
	Reference string `json:"reference"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Service   string `json:"service"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

// Submit forwards a stored quote request to the CRM. Any non-2xx
// response is an error.
func (c *Client) Submit(ctx context.Context, req models.QuoteRequest) error {
	body, err := json.Marshal(payload{
		Reference: req.Reference,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Service:   string(req.Service),
		Message:   req.Message,
		CreatedAt: req.CreatedAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to encode quote request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build CRM request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("CRM forward failed",
			zap.String("reference", req.Reference),
			zap.Error(err))
		return fmt.Errorf("failed to forward quote request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.log.Error("CRM rejected quote request",
			zap.String("reference", req.Reference),
			zap.Int("status", resp.StatusCode))
		return fmt.Errorf("CRM returned status %d", resp.StatusCode)
	}

	c.log.Info("quote request forwarded to CRM",
		zap.String("reference", req.Reference))

	return nil
}
