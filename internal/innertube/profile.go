package innertube

import (
	"net/http"
	"strconv"
)

// ClientProfile is one immutable Innertube impersonation profile. Requests
// built from a profile carry its fixed context fields and header set; the
// remote silently alters response shapes when these do not match a known
// official client, so profile values are treated as constants.
type ClientProfile struct {
	// ID is the registry alias used for configuration and diagnostics
	// (e.g. "web"), distinct from the Innertube clientName ("WEB").
	ID                string
	Name              string
	Version           string
	UserAgent         string
	ContextNameID     int
	AndroidSdkVersion int
	Host              string
	Headers           http.Header
}

var (
	// WebClient is the standard desktop web client. Used for search,
	// browse/listing and metadata requests.
	WebClient = ClientProfile{
		ID:            "web",
		Name:          "WEB",
		Version:       "2.20240327.01.00",
		ContextNameID: 1,
		UserAgent:     "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/121.0.0.0 Safari/537.36",
		Host:          "www.youtube.com",
	}

	// AndroidClient mimics the official Android app. Caption track URLs
	// issued to the web client are frequently access-denied when fetched
	// directly, so transcript discovery goes through this profile.
	AndroidClient = ClientProfile{
		ID:                "android",
		Name:              "ANDROID",
		Version:           "19.05.36",
		ContextNameID:     3,
		AndroidSdkVersion: 34,
		UserAgent:         "com.google.android.youtube/19.05.36 (Linux; U; Android 14; en_US) gzip",
		Host:              "www.youtube.com",
	}
)

// ClientHeaders returns the per-request identification header set for the
// profile. A fresh Header is built on every call; callers own the result.
func (p ClientProfile) ClientHeaders() http.Header {
	h := make(http.Header)
	h.Set("Content-Type", "application/json")
	h.Set("User-Agent", p.UserAgent)
	h.Set("Origin", "https://"+p.Host)
	if p.ContextNameID > 0 {
		h.Set("X-Youtube-Client-Name", strconv.Itoa(p.ContextNameID))
		h.Set("X-Youtube-Client-Version", p.Version)
	}
	for k, vals := range p.Headers {
		for _, v := range vals {
			h.Add(k, v)
		}
	}
	return h
}
