// Package channels resolves the identifier zoo: channel ids, handles,
// playlist ids, video ids, and the browse/continuation tokens derived
// from them.
package channels

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
)

// ErrChannelNotFound means every resolution pattern was exhausted
// without producing a channel id.
var ErrChannelNotFound = errors.New("channel not found")

// ErrInvalidInput means the input matched no known id or URL shape.
var ErrInvalidInput = errors.New("invalid input")

var (
	channelIDPattern = regexp.MustCompile(`^UC[0-9A-Za-z_-]{22}$`)
	videoIDPattern   = regexp.MustCompile(`^[0-9A-Za-z_-]{11}$`)
	watchURLPattern  = regexp.MustCompile(`(?:v=|/shorts/|/live/|youtu\.be/)([0-9A-Za-z_-]{11})`)

	channelURLPattern = regexp.MustCompile(`youtube\.com/channel/(UC[0-9A-Za-z_-]{22})`)
	handleURLPattern  = regexp.MustCompile(`youtube\.com/(@[0-9A-Za-z._-]+)`)
	customURLPattern  = regexp.MustCompile(`youtube\.com/(?:c/)?([0-9A-Za-z._-]+)`)

	playlistIDPattern  = regexp.MustCompile(`^(?:VL)?(?:PL|UU)[0-9A-Za-z_-]+$`)
	playlistURLPattern = regexp.MustCompile(`[?&]list=((?:PL|UU)[0-9A-Za-z_-]+)`)

	// Handle-page patterns in fallback order. First match wins.
	pagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`"channelId":"(UC[0-9A-Za-z_-]{22})"`),
		regexp.MustCompile(`<meta property="og:url" content="https://www\.youtube\.com/channel/(UC[0-9A-Za-z_-]{22})"`),
		regexp.MustCompile(`<link rel="canonical" href="https://www\.youtube\.com/channel/(UC[0-9A-Za-z_-]{22})"`),
	}
)

// Fetcher retrieves a page body by URL.
type Fetcher interface {
	Get(ctx context.Context, url string, headers http.Header) ([]byte, error)
}

// Resolver resolves free-form channel queries to canonical "UC" ids.
type Resolver struct {
	fetch   Fetcher
	headers http.Header
	baseURL string
}

// NewResolver creates a Resolver. headers are sent with handle-page
// requests; pass browser-shaped headers so the consent wall stays away.
// baseURL "" means the production host.
func NewResolver(fetch Fetcher, headers http.Header, baseURL string) *Resolver {
	if baseURL == "" {
		baseURL = "https://www.youtube.com"
	}
	return &Resolver{fetch: fetch, headers: headers, baseURL: baseURL}
}

// ResolveChannelID turns a raw query into a "UC" channel id. An explicit
// id short-circuits; URL shapes are pattern-matched; anything left is
// treated as a handle whose profile page is scraped.
func (r *Resolver) ResolveChannelID(ctx context.Context, query string) (string, error) {
	s := strings.TrimSpace(query)
	if s == "" {
		return "", ErrChannelNotFound
	}
	if channelIDPattern.MatchString(s) {
		return s, nil
	}
	if m := channelURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}

	handle := handleFromQuery(s)
	if handle == "" {
		return "", ErrChannelNotFound
	}
	return r.resolveHandle(ctx, handle)
}

// handleFromQuery extracts the @handle a query implies: an explicit
// @handle, a youtube.com/@handle or /c/name URL, or bare text.
func handleFromQuery(s string) string {
	if strings.HasPrefix(s, "@") {
		return s
	}
	if m := handleURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1]
	}
	if strings.Contains(s, "youtube.com/") {
		if m := customURLPattern.FindStringSubmatch(s); len(m) == 2 {
			return "@" + m[1]
		}
		return ""
	}
	return "@" + s
}

func (r *Resolver) resolveHandle(ctx context.Context, handle string) (string, error) {
	url := r.baseURL + "/" + handle
	body, err := r.fetch.Get(ctx, url, r.headers)
	if err != nil {
		return "", fmt.Errorf("fetch handle page %s: %w", handle, err)
	}
	for _, p := range pagePatterns {
		if m := p.FindSubmatch(body); len(m) == 2 {
			return string(m[1]), nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrChannelNotFound, handle)
}

// UploadsPlaylistID maps a channel id to its uploads playlist ("UC" to
// "UU"). Non-channel input passes through unchanged.
func UploadsPlaylistID(channelID string) string {
	if strings.HasPrefix(channelID, "UC") {
		return "UU" + channelID[2:]
	}
	return channelID
}

// BrowseIDForPlaylist prefixes a playlist id with "VL" as the browse
// endpoint expects. Already-prefixed ids are left alone.
func BrowseIDForPlaylist(playlistID string) string {
	if strings.HasPrefix(playlistID, "VL") {
		return playlistID
	}
	return "VL" + playlistID
}

// IsListingSeed reports whether a pagination token restarts a listing
// (it is a playlist or channel id) rather than continuing one.
func IsListingSeed(token string) bool {
	return strings.HasPrefix(token, "PL") ||
		strings.HasPrefix(token, "UU") ||
		strings.HasPrefix(token, "UC")
}

// SeedBrowseID converts a listing seed token to the browse id that
// restarts the listing. Channel ids page their uploads playlist.
func SeedBrowseID(token string) string {
	if strings.HasPrefix(token, "UC") {
		token = UploadsPlaylistID(token)
	}
	return BrowseIDForPlaylist(token)
}

// ExtractVideoID accepts a raw 11-char id or common video URL shapes.
func ExtractVideoID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if videoIDPattern.MatchString(s) {
		return s, nil
	}
	if m := watchURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidInput
}

// ExtractPlaylistID accepts a raw playlist id or a URL with a list=
// parameter. The "VL" browse prefix is stripped if present.
func ExtractPlaylistID(input string) (string, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return "", ErrInvalidInput
	}
	if playlistIDPattern.MatchString(s) {
		return strings.TrimPrefix(s, "VL"), nil
	}
	if m := playlistURLPattern.FindStringSubmatch(s); len(m) == 2 {
		return m[1], nil
	}
	return "", ErrInvalidInput
}
