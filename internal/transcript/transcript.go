// Package transcript turns a player response's caption track list into
// plain text. Resolution is a fixed pipeline: discover tracks, select one,
// fetch the document, detect its delivery format, parse. The package never
// retries; bounded retry with profile fallback is the caller's policy.
package transcript

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/famomatic/ytscribe/internal/innertube"
)

// Format tags the two caption delivery formats the platform serves.
type Format string

const (
	// FormatEventSegments is the json3 body: {"events":[{"segs":[...]}]}.
	FormatEventSegments Format = "events"
	// FormatTimedTextXML is the legacy XML body with <p>/<text> elements.
	FormatTimedTextXML Format = "timedtext"
)

var (
	// ErrNoCaptions means the player response offered no caption tracks.
	ErrNoCaptions = errors.New("no caption tracks")
	// ErrEmptyTranscript means the document parsed to zero usable lines.
	ErrEmptyTranscript = errors.New("empty transcript")
)

// Fetcher retrieves a caption document by URL. *innertube.Transport
// satisfies it.
type Fetcher interface {
	Get(ctx context.Context, url string, headers http.Header) ([]byte, error)
}

// Resolver resolves transcripts from player responses.
type Resolver struct {
	fetch Fetcher
	langs []string
}

// NewResolver creates a Resolver around the given fetcher. langs is the
// language preference order for track selection; empty means English.
func NewResolver(fetch Fetcher, langs ...string) *Resolver {
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	return &Resolver{fetch: fetch, langs: langs}
}

// Resolve runs discover -> select -> fetch -> detect -> parse for one
// player response and returns the transcript text.
func (r *Resolver) Resolve(ctx context.Context, player *innertube.PlayerResponse) (string, error) {
	tracks := player.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	track, ok := SelectTrackPreferred(tracks, r.langs)
	if !ok {
		return "", ErrNoCaptions
	}

	headers := innertube.BrowserHeaders()
	if id := player.VideoDetails.VideoID; id != "" {
		headers.Set("Referer", "https://www.youtube.com/watch?v="+id)
	}
	body, err := r.fetch.Get(ctx, track.BaseURL, headers)
	if err != nil {
		return "", fmt.Errorf("fetch caption track %s: %w", track.LanguageCode, err)
	}

	return Parse(body, DetectFormat(body))
}

// SelectTrack picks the caption track to fetch: exact "en" wins, then any
// language code with an "en" prefix, then the first track. Deterministic
// and total for a non-empty list.
func SelectTrack(tracks []innertube.CaptionTrack) (innertube.CaptionTrack, bool) {
	return SelectTrackPreferred(tracks, []string{"en"})
}

// SelectTrackPreferred generalizes SelectTrack to a caller-supplied
// language preference order: exact matches across all preferences win
// over prefix matches, which win over the first track.
func SelectTrackPreferred(tracks []innertube.CaptionTrack, langs []string) (innertube.CaptionTrack, bool) {
	if len(tracks) == 0 {
		return innertube.CaptionTrack{}, false
	}
	if len(langs) == 0 {
		langs = []string{"en"}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if t.LanguageCode == lang {
				return t, true
			}
		}
	}
	for _, lang := range langs {
		for _, t := range tracks {
			if strings.HasPrefix(t.LanguageCode, lang) {
				return t, true
			}
		}
	}
	return tracks[0], true
}

// DetectFormat sniffs the first non-whitespace byte: '{' means the json3
// event-segment body, anything else the legacy XML.
func DetectFormat(data []byte) Format {
	for _, b := range data {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		}
		if b == '{' {
			return FormatEventSegments
		}
		return FormatTimedTextXML
	}
	return FormatTimedTextXML
}

// Parse extracts plain text from a caption document. Pure in (data,
// format); returns ErrEmptyTranscript when nothing usable was found.
func Parse(data []byte, format Format) (string, error) {
	var text string
	var err error
	switch format {
	case FormatEventSegments:
		text, err = parseEventSegments(data)
	default:
		text, err = parseTimedText(data)
	}
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyTranscript
	}
	return text, nil
}
