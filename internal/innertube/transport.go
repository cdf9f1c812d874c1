package innertube

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"golang.org/x/time/rate"
)

const (
	defaultBaseURL = "https://www.youtube.com"

	// maxBodyBytes bounds response reads; browse pages and caption
	// documents stay well under this.
	maxBodyBytes = 10 << 20
)

// Transport issues the raw Innertube exchanges. It performs no retries and
// no response interpretation beyond decoding; policy lives with the caller.
type Transport struct {
	httpClient *http.Client
	baseURL    string
	limiter    *rate.Limiter
}

// TransportConfig configures a Transport.
type TransportConfig struct {
	// HTTPClient is the client used for all exchanges. Required.
	HTTPClient *http.Client
	// BaseURL overrides the endpoint host, for tests.
	BaseURL string
	// RateLimit caps outgoing requests per second across all endpoints,
	// protecting the upstream from bulk operations. Zero means the
	// package default of 4 req/s.
	RateLimit rate.Limit
}

// NewTransport creates a Transport.
func NewTransport(cfg TransportConfig) *Transport {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	limit := cfg.RateLimit
	if limit <= 0 {
		limit = 4
	}
	return &Transport{
		httpClient: cfg.HTTPClient,
		baseURL:    base,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Search issues a /search exchange.
func (t *Transport) Search(ctx context.Context, profile ClientProfile, query string) (*SearchResponse, error) {
	var out SearchResponse
	if err := t.post(ctx, profile, "search", NewSearchRequest(profile, query), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Browse issues a /browse exchange. Either browseID or continuation must be
// non-empty.
func (t *Transport) Browse(ctx context.Context, profile ClientProfile, browseID, continuation string) (*BrowseResponse, error) {
	if browseID == "" && continuation == "" {
		return nil, ErrNoBrowseTarget
	}
	var out BrowseResponse
	if err := t.post(ctx, profile, "browse", NewBrowseRequest(profile, browseID, continuation), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Player issues a /player exchange.
func (t *Transport) Player(ctx context.Context, profile ClientProfile, videoID string) (*PlayerResponse, error) {
	var out PlayerResponse
	if err := t.post(ctx, profile, "player", NewPlayerRequest(profile, videoID), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Get fetches an auxiliary document (caption track, channel profile page)
// under the same rate limit as the API exchanges.
func (t *Transport) Get(ctx context.Context, url string, headers http.Header) ([]byte, error) {
	if err := t.limiter.Wait(ctx); err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, vals := range headers {
		for _, v := range vals {
			req.Header.Add(k, v)
		}
	}
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Endpoint: "get", Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{Endpoint: "get", StatusCode: resp.StatusCode}
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
}

// errorEnvelope is the structured error payload some non-2xx responses and
// malformed requests carry.
type errorEnvelope struct {
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

func (t *Transport) post(ctx context.Context, profile ClientProfile, endpoint string, payload *Request, out any) error {
	if err := t.limiter.Wait(ctx); err != nil {
		return err
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	url := t.baseURL + "/youtubei/v1/" + endpoint + "?prettyPrint=false"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	httpReq.Header = profile.ClientHeaders()
	httpReq.Header.Set("Referer", "https://"+profile.Host+"/")

	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return &TransportError{Endpoint: endpoint, Client: profile.Name, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return &TransportError{Endpoint: endpoint, Client: profile.Name, Err: err}
	}

	if resp.StatusCode != http.StatusOK {
		var env errorEnvelope
		if jsonErr := json.Unmarshal(respBody, &env); jsonErr == nil && env.Error != nil {
			return &RemoteError{Endpoint: endpoint, Code: env.Error.Code, Message: env.Error.Message}
		}
		return &TransportError{Endpoint: endpoint, Client: profile.Name, StatusCode: resp.StatusCode}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return &DecodeError{Endpoint: endpoint, Err: err}
	}
	return nil
}

// BrowserHeaders returns the header set used for direct document fetches
// (channel pages, caption tracks). The remote serves different markup to
// clients without browser-shaped headers.
func BrowserHeaders() http.Header {
	h := make(http.Header)
	h.Set("User-Agent", WebClient.UserAgent)
	h.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	h.Set("Accept-Language", "en-US,en;q=0.9")
	return h
}
