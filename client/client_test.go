package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"
)

const testChannelID = "UCdQw4w9WgXcQdQw4w9WgXcQ"

// testServer is a scriptable upstream: handlers keyed by URL path
// prefix, called in order of registration.
type testServer struct {
	mu       sync.Mutex
	requests []capturedRequest
	handlers map[string]http.HandlerFunc
	srv      *httptest.Server
}

type capturedRequest struct {
	Path string
	Body string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	ts := &testServer{handlers: make(map[string]http.HandlerFunc)}
	ts.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		ts.mu.Lock()
		ts.requests = append(ts.requests, capturedRequest{Path: r.URL.Path, Body: string(body)})
		ts.mu.Unlock()
		for prefix, h := range ts.handlers {
			if strings.HasPrefix(r.URL.Path, prefix) {
				h(w, r)
				return
			}
		}
		http.NotFound(w, r)
	}))
	t.Cleanup(ts.srv.Close)
	return ts
}

func (ts *testServer) handle(prefix string, status int, body string) {
	ts.handlers[prefix] = func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(status)
		io.WriteString(w, body)
	}
}

func (ts *testServer) captured(prefix string) []capturedRequest {
	ts.mu.Lock()
	defer ts.mu.Unlock()
	var out []capturedRequest
	for _, r := range ts.requests {
		if strings.HasPrefix(r.Path, prefix) {
			out = append(out, r)
		}
	}
	return out
}

func newTestClient(ts *testServer, extra ...func(*Config)) *Client {
	cfg := Config{
		BaseURL:              ts.srv.URL,
		TranscriptRetryDelay: time.Millisecond,
		RateLimit:            1000,
	}
	for _, f := range extra {
		f(&cfg)
	}
	return New(cfg)
}

const searchBody = `{
  "contents": {"twoColumnSearchResultsRenderer": {"primaryContents": {"sectionListRenderer": {"contents": [
    {"itemSectionRenderer": {"contents": [
      {"videoRenderer": {
        "videoId": "dQw4w9WgXcQ",
        "title": {"runs": [{"text": "Never Gonna Give You Up"}]},
        "ownerText": {"runs": [{"text": "Rick Astley"}]},
        "viewCountText": {"simpleText": "1.5B views"},
        "lengthText": {"simpleText": "3:33"}
      }}
    ]}}
  ]}}}}
}`

func TestSearchVideos(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/search", http.StatusOK, searchBody)
	c := newTestClient(ts)

	videos, err := c.SearchVideos(context.Background(), "rick astley")
	if err != nil {
		t.Fatal(err)
	}
	if len(videos) != 1 {
		t.Fatalf("videos = %d", len(videos))
	}
	v := videos[0]
	if v.ID != "dQw4w9WgXcQ" || v.Author != "Rick Astley" || v.LengthSeconds != 213 {
		t.Fatalf("unexpected record: %+v", v)
	}

	reqs := ts.captured("/youtubei/v1/search")
	if len(reqs) != 1 {
		t.Fatalf("requests = %d", len(reqs))
	}
	var payload struct {
		Context struct {
			Client struct {
				ClientName string `json:"clientName"`
				Hl         string `json:"hl"`
			} `json:"client"`
		} `json:"context"`
		Query string `json:"query"`
	}
	if err := json.Unmarshal([]byte(reqs[0].Body), &payload); err != nil {
		t.Fatal(err)
	}
	if payload.Context.Client.ClientName != "WEB" || payload.Context.Client.Hl != "en" {
		t.Fatalf("unexpected context: %+v", payload.Context.Client)
	}
	if payload.Query != "rick astley" {
		t.Fatalf("query = %q", payload.Query)
	}
}

func TestSearchVideosEmpty(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/search", http.StatusOK, `{"contents":{}}`)
	c := newTestClient(ts)
	_, err := c.SearchVideos(context.Background(), "no hits at all")
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
}

func TestSearchVideosBlankQuery(t *testing.T) {
	c := newTestClient(newTestServer(t))
	if _, err := c.SearchVideos(context.Background(), "  "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

const playerBody = `{
  "playabilityStatus": {"status": "OK"},
  "videoDetails": {
    "videoId": "dQw4w9WgXcQ",
    "title": "Never Gonna Give You Up",
    "lengthSeconds": "213",
    "author": "Rick Astley",
    "viewCount": "1500000000",
    "thumbnail": {"thumbnails": [
      {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/default.jpg", "width": 120},
      {"url": "https://i.ytimg.com/vi/dQw4w9WgXcQ/maxresdefault.jpg", "width": 1280}
    ]}
  },
  "microformat": {"playerMicroformatRenderer": {"publishDate": "2009-10-25"}}
}`

func TestFetchVideoDetail(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/player", http.StatusOK, playerBody)
	c := newTestClient(ts)

	rec, err := c.FetchVideoDetail(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")
	if err != nil {
		t.Fatal(err)
	}
	if rec.ID != "dQw4w9WgXcQ" || rec.Title != "Never Gonna Give You Up" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if rec.LengthSeconds != 213 || rec.PublishedAt != "2009-10-25" {
		t.Fatalf("unexpected record: %+v", rec)
	}
	if !strings.HasSuffix(rec.ThumbnailURL, "maxresdefault.jpg") {
		t.Fatalf("thumbnail = %q, want largest candidate", rec.ThumbnailURL)
	}
}

func TestFetchVideoDetailAs(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/player", http.StatusOK, playerBody)
	c := newTestClient(ts)

	if _, err := c.FetchVideoDetailAs(context.Background(), "dQw4w9WgXcQ", "android"); err != nil {
		t.Fatal(err)
	}
	reqs := ts.captured("/youtubei/v1/player")
	if len(reqs) != 1 || !strings.Contains(reqs[0].Body, `"clientName":"ANDROID"`) {
		t.Fatalf("player request not android: %+v", reqs)
	}

	if _, err := c.FetchVideoDetailAs(context.Background(), "dQw4w9WgXcQ", "ios"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput for unknown profile", err)
	}
}

func TestFetchVideoDetailUnplayable(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/player", http.StatusOK, `{"playabilityStatus":{"status":"LOGIN_REQUIRED"}}`)
	c := newTestClient(ts)
	_, err := c.FetchVideoDetail(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrEmptyResult) {
		t.Fatalf("err = %v, want ErrEmptyResult", err)
	}
}

func TestFetchVideoDetailInvalidInput(t *testing.T) {
	c := newTestClient(newTestServer(t))
	if _, err := c.FetchVideoDetail(context.Background(), "not a video"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func transcriptPlayerBody(captionURL string) string {
	return `{
	  "playabilityStatus": {"status": "OK"},
	  "videoDetails": {"videoId": "dQw4w9WgXcQ"},
	  "captions": {"playerCaptionsTracklistRenderer": {"captionTracks": [
	    {"baseUrl": "` + captionURL + `", "languageCode": "en"}
	  ]}}
	}`
}

func TestFetchTranscript(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/captions", http.StatusOK, `{"events":[{"segs":[{"utf8":"Hello"},{"utf8":" world"}]}]}`)
	ts.handlers["/youtubei/v1/player"] = func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, transcriptPlayerBody(ts.srv.URL+"/captions"))
	}
	c := newTestClient(ts)

	text, err := c.FetchTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatal(err)
	}
	if text != "Hello world" {
		t.Fatalf("transcript = %q", text)
	}

	// Transcript acquisition must go through the android profile.
	reqs := ts.captured("/youtubei/v1/player")
	if len(reqs) != 1 {
		t.Fatalf("player requests = %d", len(reqs))
	}
	if !strings.Contains(reqs[0].Body, `"clientName":"ANDROID"`) {
		t.Fatalf("player request not android: %s", reqs[0].Body)
	}
}

func TestFetchTranscriptRetriesThenSucceeds(t *testing.T) {
	ts := newTestServer(t)
	captionCalls := 0
	ts.handlers["/captions"] = func(w http.ResponseWriter, _ *http.Request) {
		captionCalls++
		if captionCalls < 3 {
			io.WriteString(w, "   ")
			return
		}
		io.WriteString(w, `{"events":[{"segs":[{"utf8":"finally"}]}]}`)
	}
	ts.handlers["/youtubei/v1/player"] = func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, transcriptPlayerBody(ts.srv.URL+"/captions"))
	}
	c := newTestClient(ts)

	text, err := c.FetchTranscript(context.Background(), "dQw4w9WgXcQ")
	if err != nil {
		t.Fatal(err)
	}
	if text != "finally" {
		t.Fatalf("transcript = %q", text)
	}
	// Each attempt re-fetches the player response.
	if got := len(ts.captured("/youtubei/v1/player")); got != 3 {
		t.Fatalf("player requests = %d, want 3", got)
	}
}

func TestFetchTranscriptExhausted(t *testing.T) {
	ts := newTestServer(t)
	ts.handlers["/youtubei/v1/player"] = func(w http.ResponseWriter, _ *http.Request) {
		io.WriteString(w, `{"playabilityStatus":{"status":"OK"},"videoDetails":{"videoId":"dQw4w9WgXcQ"}}`)
	}
	c := newTestClient(ts)

	_, err := c.FetchTranscript(context.Background(), "dQw4w9WgXcQ")
	if !errors.Is(err, ErrNoTranscript) {
		t.Fatalf("err = %v, want ErrNoTranscript", err)
	}
	if got := len(ts.captured("/youtubei/v1/player")); got != 3 {
		t.Fatalf("player requests = %d, want 3 attempts", got)
	}
}

const feedBody = `<?xml version="1.0"?>
<feed xmlns:yt="http://www.youtube.com/xml/schemas/2015" xmlns="http://www.w3.org/2005/Atom">
 <entry><yt:videoId>feedvideo01</yt:videoId><title>From the feed</title></entry>
</feed>`

const browseBody = `{
  "onResponseReceivedActions": [{"appendContinuationItemsAction": {"continuationItems": [
    {"playlistVideoRenderer": {"videoId": "browsevid01", "title": {"runs": [{"text": "From browse"}]}}},
    {"continuationItemRenderer": {"continuationEndpoint": {"continuationCommand": {"token": "tok-page-3"}}}}
  ]}}]
}`

func TestListVideosFirstPageFromFeed(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/feeds/videos.xml", http.StatusOK, feedBody)
	c := newTestClient(ts)

	listing, err := c.ListVideos(context.Background(), "PLxyzABC123", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(listing.Videos) != 1 || listing.Videos[0].ID != "feedvideo01" {
		t.Fatalf("unexpected listing: %+v", listing)
	}
	// The next page restarts through browse with the playlist id.
	if listing.Continuation != "PLxyzABC123" {
		t.Fatalf("continuation = %q", listing.Continuation)
	}
}

func TestListVideosChannelSeedsUploadsPlaylist(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/feeds/videos.xml", http.StatusOK, feedBody)
	c := newTestClient(ts)

	listing, err := c.ListVideos(context.Background(), testChannelID, "")
	if err != nil {
		t.Fatal(err)
	}
	if listing.Continuation != "UU"+testChannelID[2:] {
		t.Fatalf("continuation = %q, want uploads playlist id", listing.Continuation)
	}
}

func TestListVideosFeedFallbackToBrowse(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/feeds/videos.xml", http.StatusInternalServerError, "")
	ts.handle("/youtubei/v1/browse", http.StatusOK, browseBody)
	c := newTestClient(ts)

	listing, err := c.ListVideos(context.Background(), "PLxyzABC123", "")
	if err != nil {
		t.Fatal(err)
	}
	if len(listing.Videos) != 1 || listing.Videos[0].ID != "browsevid01" {
		t.Fatalf("unexpected listing: %+v", listing)
	}
	reqs := ts.captured("/youtubei/v1/browse")
	if len(reqs) != 1 || !strings.Contains(reqs[0].Body, `"browseId":"VLPLxyzABC123"`) {
		t.Fatalf("browse request = %+v", reqs)
	}
}

func TestListVideosSeedContinuationRestartsBrowse(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/browse", http.StatusOK, browseBody)
	c := newTestClient(ts)

	listing, err := c.ListVideos(context.Background(), "ignored", "UU"+testChannelID[2:])
	if err != nil {
		t.Fatal(err)
	}
	if listing.Continuation != "tok-page-3" {
		t.Fatalf("continuation = %q", listing.Continuation)
	}
	reqs := ts.captured("/youtubei/v1/browse")
	if len(reqs) != 1 || !strings.Contains(reqs[0].Body, `"browseId":"VLUU`) {
		t.Fatalf("browse request = %+v", reqs)
	}
}

func TestListVideosOpaqueContinuation(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/youtubei/v1/browse", http.StatusOK, browseBody)
	c := newTestClient(ts)

	if _, err := c.ListVideos(context.Background(), "ignored", "4qmFsgKAAR"); err != nil {
		t.Fatal(err)
	}
	reqs := ts.captured("/youtubei/v1/browse")
	if len(reqs) != 1 || !strings.Contains(reqs[0].Body, `"continuation":"4qmFsgKAAR"`) {
		t.Fatalf("browse request = %+v", reqs)
	}
}

func TestResolveChannelShortCircuit(t *testing.T) {
	ts := newTestServer(t)
	c := newTestClient(ts)
	ref, err := c.ResolveChannel(context.Background(), testChannelID)
	if err != nil {
		t.Fatal(err)
	}
	if ref.ChannelID != testChannelID || ref.UploadsPlaylistID != "UU"+testChannelID[2:] {
		t.Fatalf("unexpected ref: %+v", ref)
	}
	if len(ts.captured("/")) != 0 {
		t.Fatal("explicit id must not hit the network")
	}
}

func TestResolveChannelNotFound(t *testing.T) {
	ts := newTestServer(t)
	ts.handle("/@", http.StatusOK, "<html>no ids here</html>")
	c := newTestClient(ts)
	_, err := c.ResolveChannel(context.Background(), "@ghost")
	if !errors.Is(err, ErrChannelNotFound) {
		t.Fatalf("err = %v, want ErrChannelNotFound", err)
	}
}

func TestParseDurationSeconds(t *testing.T) {
	tests := []struct {
		label string
		want  int
	}{
		{"3:33", 213},
		{"1:02:03", 3723},
		{"45", 45},
		{"", 0},
		{"LIVE", 0},
	}
	for _, tt := range tests {
		if got := parseDurationSeconds(tt.label); got != tt.want {
			t.Fatalf("parseDurationSeconds(%q) = %d, want %d", tt.label, got, tt.want)
		}
	}
}
