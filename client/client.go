// Package client is the public surface: channel resolution, video
// listing and search, per-video detail and transcript acquisition, and
// an optional local cache for save/peek workflows.
package client

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/famomatic/ytscribe/internal/channels"
	"github.com/famomatic/ytscribe/internal/feed"
	"github.com/famomatic/ytscribe/internal/innertube"
	"github.com/famomatic/ytscribe/internal/normalize"
	"github.com/famomatic/ytscribe/internal/retrier"
	"github.com/famomatic/ytscribe/internal/transcript"
)

// Client is the high-level video metadata and transcript client. All
// operations are request/response with sequential internals; safe for
// concurrent use.
type Client struct {
	config      Config
	baseURL     string
	transport   *innertube.Transport
	resolver    *channels.Resolver
	transcripts *transcript.Resolver
	retry       *retrier.Retrier
	logger      Logger
}

// New creates a new Client.
func New(config Config) *Client {
	config = config.withDefaults()
	transport := innertube.NewTransport(innertube.TransportConfig{
		HTTPClient: config.HTTPClient,
		BaseURL:    config.BaseURL,
		RateLimit:  config.RateLimit,
	})
	baseURL := config.BaseURL
	if baseURL == "" {
		baseURL = feed.DefaultBaseURL
	}
	return &Client{
		config:      config,
		baseURL:     baseURL,
		transport:   transport,
		resolver:    channels.NewResolver(transport, innertube.BrowserHeaders(), config.BaseURL),
		transcripts: transcript.NewResolver(transport, config.Languages...),
		retry:       retrier.New(config.TranscriptAttempts, config.TranscriptRetryDelay),
		logger:      config.Logger,
	}
}

// ResolveChannel turns a free-form query (channel id, URL, @handle, or
// bare name) into a resolved reference.
func (c *Client) ResolveChannel(ctx context.Context, query string) (*ChannelReference, error) {
	id, err := c.resolver.ResolveChannelID(ctx, query)
	if err != nil {
		if errors.Is(err, channels.ErrChannelNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrChannelNotFound, query)
		}
		return nil, err
	}
	return &ChannelReference{
		Input:             query,
		ChannelID:         id,
		UploadsPlaylistID: channels.UploadsPlaylistID(id),
	}, nil
}

// ListVideos returns one page of a channel's uploads or a playlist's
// entries. ref may be a channel id/URL/handle or a playlist id/URL;
// continuation "" requests the first page. The returned continuation
// reproduces the next page when passed back in.
func (c *Client) ListVideos(ctx context.Context, ref, continuation string) (*Listing, error) {
	if continuation != "" {
		return c.browsePage(ctx, continuation)
	}

	if playlistID, err := channels.ExtractPlaylistID(ref); err == nil {
		return c.firstPage(ctx, feed.PlaylistFeedURL(c.baseURL, playlistID), playlistID)
	}

	channelRef, err := c.ResolveChannel(ctx, ref)
	if err != nil {
		return nil, err
	}
	// Channel feeds seed the next page with the uploads playlist id so
	// pagination restarts through browse.
	return c.firstPage(ctx, feed.ChannelFeedURL(c.baseURL, channelRef.ChannelID), channelRef.UploadsPlaylistID)
}

// firstPage serves a listing's first page from the Atom feed, falling
// back to a direct browse when the feed path fails.
func (c *Client) firstPage(ctx context.Context, feedURL, seedToken string) (*Listing, error) {
	videos, err := feed.Fetch(ctx, c.transport, feedURL, innertube.BrowserHeaders())
	if err == nil && len(videos) > 0 {
		return &Listing{Videos: fromNormalized(videos), Continuation: seedToken}, nil
	}
	if err != nil {
		c.logger.Warnf("feed fetch failed, falling back to browse: %v", err)
	}
	return c.browsePage(ctx, seedToken)
}

// browsePage fetches one listing page. Seed tokens (playlist/channel
// ids) restart the listing via browseId; anything else continues it.
func (c *Client) browsePage(ctx context.Context, token string) (*Listing, error) {
	var browseID, continuation string
	if channels.IsListingSeed(token) {
		browseID = channels.SeedBrowseID(token)
	} else {
		continuation = token
	}
	resp, err := c.transport.Browse(ctx, innertube.WebClient, browseID, continuation)
	if err != nil {
		return nil, err
	}
	page := normalize.WalkBrowse(resp)
	return &Listing{Videos: fromNormalized(page.Videos), Continuation: page.Continuation}, nil
}

// SearchVideos runs a search and returns the first page of video
// results. Zero usable items yields ErrEmptyResult.
func (c *Client) SearchVideos(ctx context.Context, query string) ([]VideoRecord, error) {
	if strings.TrimSpace(query) == "" {
		return nil, ErrInvalidInput
	}
	resp, err := c.transport.Search(ctx, innertube.WebClient, query)
	if err != nil {
		return nil, err
	}
	videos := normalize.WalkSearch(resp)
	if len(videos) == 0 {
		return nil, fmt.Errorf("%w: search %q", ErrEmptyResult, query)
	}
	return fromNormalized(videos), nil
}

// FetchVideoDetail fetches a single video's metadata from the player
// endpoint under the web profile.
func (c *Client) FetchVideoDetail(ctx context.Context, videoID string) (*VideoRecord, error) {
	return c.FetchVideoDetailAs(ctx, videoID, "")
}

// FetchVideoDetailAs fetches metadata under a named impersonation
// profile ("web" or "android"). An empty name means web.
func (c *Client) FetchVideoDetailAs(ctx context.Context, videoID, profile string) (*VideoRecord, error) {
	id, err := channelsExtract(videoID)
	if err != nil {
		return nil, err
	}
	p := innertube.WebClient
	if profile != "" {
		known, ok := innertube.Lookup(profile)
		if !ok {
			return nil, fmt.Errorf("%w: unknown client profile %q", ErrInvalidInput, profile)
		}
		p = known
	}
	resp, err := c.transport.Player(ctx, p, id)
	if err != nil {
		return nil, err
	}
	if !resp.PlayabilityStatus.IsOK() {
		return nil, fmt.Errorf("%w: video %s: %s", ErrEmptyResult, id, resp.PlayabilityStatus.Status)
	}
	return recordFromPlayer(id, resp), nil
}

// FetchTranscript resolves a video's transcript. Each attempt re-fetches
// the player response under the Android profile: caption URLs are
// session-bound and the web-issued ones frequently deny access.
func (c *Client) FetchTranscript(ctx context.Context, videoID string) (string, error) {
	id, err := channelsExtract(videoID)
	if err != nil {
		return "", err
	}
	var text string
	err = c.retry.Do(ctx, func(ctx context.Context, attempt int) error {
		if attempt > 1 {
			c.logger.Warnf("transcript attempt %d for %s", attempt, id)
		}
		resp, err := c.transport.Player(ctx, innertube.AndroidClient, id)
		if err != nil {
			return err
		}
		text, err = c.transcripts.Resolve(ctx, resp)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return "", err
		}
		return "", fmt.Errorf("%w: video %s: %v", ErrNoTranscript, id, err)
	}
	return text, nil
}

// channelsExtract maps input parsing failures onto this package's
// sentinel.
func channelsExtract(input string) (string, error) {
	id, err := channels.ExtractVideoID(input)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidInput, input)
	}
	return id, nil
}

func recordFromPlayer(id string, resp *innertube.PlayerResponse) *VideoRecord {
	d := resp.VideoDetails
	mf := resp.Microformat.PlayerMicroformatRenderer
	rec := &VideoRecord{
		ID:          id,
		Title:       d.Title,
		Author:      d.Author,
		ViewCount:   d.ViewCount,
		PublishedAt: mf.PublishDate,
	}
	if n := len(d.Thumbnail.Thumbnails); n > 0 {
		rec.ThumbnailURL = d.Thumbnail.Thumbnails[n-1].URL
	} else {
		rec.ThumbnailURL = "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg"
	}
	if secs, err := strconv.Atoi(d.LengthSeconds); err == nil {
		rec.LengthSeconds = secs
	}
	if rec.PublishedAt == "" {
		rec.PublishedAt = mf.UploadDate
	}
	return rec
}

func fromNormalized(videos []normalize.Video) []VideoRecord {
	records := make([]VideoRecord, 0, len(videos))
	for _, v := range videos {
		records = append(records, VideoRecord{
			ID:            v.ID,
			Title:         v.Title,
			ThumbnailURL:  v.ThumbnailURL,
			Author:        v.Author,
			PublishedAt:   v.PublishedAt,
			ViewCount:     v.ViewCount,
			LengthSeconds: parseDurationSeconds(v.Duration),
		})
	}
	return records
}

// parseDurationSeconds converts a "1:02:03" style length label to
// seconds. Unparseable labels yield zero.
func parseDurationSeconds(label string) int {
	if label == "" {
		return 0
	}
	parts := strings.Split(label, ":")
	if len(parts) > 3 {
		return 0
	}
	total := 0
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return 0
		}
		total = total*60 + n
	}
	return total
}
