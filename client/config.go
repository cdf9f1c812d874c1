package client

import (
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// Config holds configuration for the client. The zero value works for
// read-only use; cache operations additionally need a Store.
type Config struct {
	// HTTPClient is the client used for all requests.
	// If nil, a default client honoring ProxyURL and RequestTimeout is built.
	HTTPClient *http.Client

	// ProxyURL is the optional proxy URL to use for requests.
	// If HTTPClient is provided, this field is ignored.
	ProxyURL string

	// RequestTimeout bounds each HTTP exchange. Zero means 30s.
	// Ignored when HTTPClient is provided.
	RequestTimeout time.Duration

	// Languages is the caption language preference order.
	// Empty means English.
	Languages []string

	// TranscriptAttempts caps transcript acquisition attempts.
	// Zero means 3.
	TranscriptAttempts int

	// TranscriptRetryDelay is the fixed pause between transcript
	// attempts. Zero means 500ms.
	TranscriptRetryDelay time.Duration

	// SaveConcurrency bounds parallel fetches in SaveVideos.
	// Zero means 1.
	SaveConcurrency int

	// RateLimit caps outgoing requests per second. Zero means the
	// transport default.
	RateLimit rate.Limit

	// BaseURL overrides the endpoint host, for tests.
	BaseURL string

	// Store is the optional video cache backing Save/Peek/Videos/Delete.
	Store Store

	// Logger receives non-fatal diagnostics. If nil, logging is off.
	Logger Logger
}

const (
	defaultRequestTimeout       = 30 * time.Second
	defaultTranscriptAttempts   = 3
	defaultTranscriptRetryDelay = 500 * time.Millisecond
	defaultSaveConcurrency      = 1
)

func (c Config) withDefaults() Config {
	if c.RequestTimeout <= 0 {
		c.RequestTimeout = defaultRequestTimeout
	}
	if c.HTTPClient == nil {
		c.HTTPClient = defaultHTTPClient(c.ProxyURL, c.RequestTimeout)
	}
	if len(c.Languages) == 0 {
		c.Languages = []string{"en"}
	}
	if c.TranscriptAttempts <= 0 {
		c.TranscriptAttempts = defaultTranscriptAttempts
	}
	if c.TranscriptRetryDelay <= 0 {
		c.TranscriptRetryDelay = defaultTranscriptRetryDelay
	}
	if c.SaveConcurrency <= 0 {
		c.SaveConcurrency = defaultSaveConcurrency
	}
	if c.Logger == nil {
		c.Logger = nopLogger{}
	}
	return c
}
