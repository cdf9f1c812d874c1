// Package normalize extracts a uniform video record from the structurally
// distinct item shapes the browse and search surfaces use, and walks
// paginated result trees.
package normalize

import "github.com/famomatic/ytscribe/internal/innertube"

// Video is the uniform record extracted from any known item shape. ID is
// always non-empty; every other field may be empty, meaning the shape did
// not carry it ("unknown", not an error).
type Video struct {
	ID           string
	Title        string
	ThumbnailURL string
	Author       string
	PublishedAt  string
	ViewCount    string
	Duration     string
}

// field is one ordered extraction rule: alternatives are tried first to
// last, first non-empty wins, then the fallback applies. Keeping the rules
// in one table prevents the per-shape lookup paths from drifting apart.
type field struct {
	alternatives []func(*innertube.VideoRenderer) string
	fallback     func(id string) string
}

func (f field) extract(r *innertube.VideoRenderer, id string) string {
	for _, alt := range f.alternatives {
		if v := alt(r); v != "" {
			return v
		}
	}
	if f.fallback != nil {
		return f.fallback(id)
	}
	return ""
}

func constant(s string) func(string) string {
	return func(string) string { return s }
}

var fields = struct {
	title       field
	thumbnail   field
	publishedAt field
	viewCount   field
	author      field
	duration    field
}{
	title: field{
		alternatives: []func(*innertube.VideoRenderer) string{
			func(r *innertube.VideoRenderer) string { return r.Title.RunText(0) },
			func(r *innertube.VideoRenderer) string { return r.Title.SimpleText },
		},
		fallback: constant("Unknown"),
	},
	thumbnail: field{
		alternatives: []func(*innertube.VideoRenderer) string{
			func(r *innertube.VideoRenderer) string {
				if n := len(r.Thumbnail.Thumbnails); n > 0 {
					// Candidates are ordered ascending by size.
					return r.Thumbnail.Thumbnails[n-1].URL
				}
				return ""
			},
		},
		fallback: func(id string) string { return "https://i.ytimg.com/vi/" + id + "/hqdefault.jpg" },
	},
	publishedAt: field{
		alternatives: []func(*innertube.VideoRenderer) string{
			func(r *innertube.VideoRenderer) string { return r.PublishedTimeText.SimpleText },
			func(r *innertube.VideoRenderer) string { return r.VideoInfo.RunText(2) },
		},
	},
	viewCount: field{
		alternatives: []func(*innertube.VideoRenderer) string{
			func(r *innertube.VideoRenderer) string { return r.ViewCountText.SimpleText },
			func(r *innertube.VideoRenderer) string { return r.ViewCountText.Text() },
			func(r *innertube.VideoRenderer) string { return r.VideoInfo.RunText(0) },
		},
	},
	author: field{
		alternatives: []func(*innertube.VideoRenderer) string{
			func(r *innertube.VideoRenderer) string { return r.OwnerText.RunText(0) },
			func(r *innertube.VideoRenderer) string { return r.ShortBylineText.RunText(0) },
		},
	},
	duration: field{
		alternatives: []func(*innertube.VideoRenderer) string{
			func(r *innertube.VideoRenderer) string { return r.LengthText.SimpleText },
		},
	},
}

// FromRenderer normalizes one video renderer. A renderer without a videoId
// yields (zero, false) and is dropped by callers; a record without an ID is
// never constructed.
func FromRenderer(r *innertube.VideoRenderer) (Video, bool) {
	if r == nil || r.VideoID == "" {
		return Video{}, false
	}
	id := r.VideoID
	return Video{
		ID:           id,
		Title:        fields.title.extract(r, id),
		ThumbnailURL: fields.thumbnail.extract(r, id),
		Author:       fields.author.extract(r, id),
		PublishedAt:  fields.publishedAt.extract(r, id),
		ViewCount:    fields.viewCount.extract(r, id),
		Duration:     fields.duration.extract(r, id),
	}, true
}

// renderer unwraps the video renderer out of any known item shape.
func renderer(item innertube.Item) *innertube.VideoRenderer {
	switch {
	case item.RichItemRenderer != nil && item.RichItemRenderer.Content != nil:
		return item.RichItemRenderer.Content.VideoRenderer
	case item.VideoRenderer != nil:
		return item.VideoRenderer
	case item.PlaylistVideoRenderer != nil:
		return item.PlaylistVideoRenderer
	}
	return nil
}
