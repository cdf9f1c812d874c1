package client

import (
	"net/http"
	"net/url"
	"strings"
	"time"
)

func defaultHTTPClient(proxyURL string, timeout time.Duration) *http.Client {
	httpClient := &http.Client{Timeout: timeout}
	if strings.TrimSpace(proxyURL) == "" {
		return httpClient
	}
	parsed, err := url.Parse(proxyURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return httpClient
	}
	baseTransport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return httpClient
	}
	transport := baseTransport.Clone()
	transport.Proxy = http.ProxyURL(parsed)
	httpClient.Transport = transport
	return httpClient
}
