// Package exotel is a typed client for the Exotel telephony REST API. It
// wraps campaigns, contact lists, SMS and phone-number resources, performing
// one HTTP call per method, with request validation done locally and provider
// failures mapped onto the package's error sentinels.
//
// A Client holds only immutable credentials and configuration, so one
// instance is safe for concurrent use. Concurrent compound operations are not
// coordinated with each other: a duplicate list name between two of them
// surfaces as ErrUniqueViolation for whichever request loses the race at the
// provider.
package exotel

import (
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

const defaultBaseURL = "https://api.exotel.com"

// Client issues authenticated requests against one Exotel account.
type Client struct {
	sid     string
	key     string
	token   string
	baseURL string

	httpClient *http.Client
	logger     *zap.Logger
	tracer     trace.Tracer

	voiceRollback     RollbackPolicy
	messagingRollback RollbackPolicy
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURL points the client at an account subdomain or a test server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = baseURL }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger enables debug logging of requests and parsed responses.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithVoiceRollbackPolicy overrides the failure kinds that trigger rollback
// in CreateCampaignWithList.
func WithVoiceRollbackPolicy(p RollbackPolicy) Option {
	return func(c *Client) { c.voiceRollback = p }
}

// WithMessagingRollbackPolicy overrides the failure kinds that trigger
// rollback in the SMS and message campaign compound operations.
func WithMessagingRollbackPolicy(p RollbackPolicy) Option {
	return func(c *Client) { c.messagingRollback = p }
}

// NewClient builds a client for the given account SID, API key and API token.
func NewClient(sid, key, token string, opts ...Option) *Client {
	c := &Client{
		sid:               sid,
		key:               key,
		token:             token,
		baseURL:           defaultBaseURL,
		httpClient:        newHTTPClient(),
		logger:            zap.NewNop(),
		tracer:            otel.Tracer("github.com/acme/exotel-go/exotel"),
		voiceRollback:     DefaultVoiceRollbackPolicy,
		messagingRollback: DefaultMessagingRollbackPolicy,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// newHTTPClient builds an HTTP client with explicit transport timeouts.
func newHTTPClient() *http.Client {
	return &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 10 * time.Second,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}
}
