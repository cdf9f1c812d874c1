// Package feed reads the public Atom video feeds. A feed is capped at
// fifteen entries upstream, which makes it a cheap first page before
// pagination drops down to the browse endpoint.
package feed

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"

	"github.com/famomatic/ytscribe/internal/normalize"
)

// DefaultBaseURL is the feed host; tests point it at a local server.
const DefaultBaseURL = "https://www.youtube.com"

// Fetcher retrieves a feed document by URL.
type Fetcher interface {
	Get(ctx context.Context, url string, headers http.Header) ([]byte, error)
}

type atomFeed struct {
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	VideoID   string    `xml:"videoId"`
	Title     string    `xml:"title"`
	Published string    `xml:"published"`
	Author    atomName  `xml:"author"`
	Media     mediaNode `xml:"group"`
}

type atomName struct {
	Name string `xml:"name"`
}

type mediaNode struct {
	Thumbnail struct {
		URL string `xml:"url,attr"`
	} `xml:"thumbnail"`
}

// ChannelFeedURL builds the feed URL for a channel id.
func ChannelFeedURL(base, channelID string) string {
	return base + "/feeds/videos.xml?channel_id=" + url.QueryEscape(channelID)
}

// PlaylistFeedURL builds the feed URL for a playlist id.
func PlaylistFeedURL(base, playlistID string) string {
	return base + "/feeds/videos.xml?playlist_id=" + url.QueryEscape(playlistID)
}

// Fetch downloads and parses a feed. Entries without a video id are
// dropped.
func Fetch(ctx context.Context, fetch Fetcher, feedURL string, headers http.Header) ([]normalize.Video, error) {
	body, err := fetch.Get(ctx, feedURL, headers)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	return Parse(body)
}

// Parse decodes an Atom feed document into video records.
func Parse(data []byte) ([]normalize.Video, error) {
	var doc atomFeed
	if err := xml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode feed: %w", err)
	}
	videos := make([]normalize.Video, 0, len(doc.Entries))
	for _, e := range doc.Entries {
		if e.VideoID == "" {
			continue
		}
		videos = append(videos, normalize.Video{
			ID:           e.VideoID,
			Title:        e.Title,
			ThumbnailURL: e.Media.Thumbnail.URL,
			Author:       e.Author.Name,
			PublishedAt:  e.Published,
		})
	}
	return videos, nil
}
