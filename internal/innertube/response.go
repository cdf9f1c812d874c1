package innertube

// Response trees for the three consumed endpoints. Only the paths the
// normalizer and transcript resolver read are modeled; unknown siblings are
// ignored by the JSON decoder.

// PlayerResponse is the top-level response from the /player endpoint.
type PlayerResponse struct {
	PlayabilityStatus PlayabilityStatus `json:"playabilityStatus"`
	VideoDetails      VideoDetails      `json:"videoDetails"`
	Microformat       Microformat       `json:"microformat"`
	Captions          Captions          `json:"captions"`
}

type PlayabilityStatus struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

func (p *PlayabilityStatus) IsOK() bool {
	return p.Status == "" || p.Status == "OK"
}

type VideoDetails struct {
	VideoID          string           `json:"videoId"`
	Title            string           `json:"title"`
	LengthSeconds    string           `json:"lengthSeconds"`
	ChannelID        string           `json:"channelId"`
	ShortDescription string           `json:"shortDescription"`
	Thumbnail        ThumbnailDetails `json:"thumbnail"`
	ViewCount        string           `json:"viewCount"`
	Author           string           `json:"author"`
}

type Microformat struct {
	PlayerMicroformatRenderer PlayerMicroformatRenderer `json:"playerMicroformatRenderer"`
}

type PlayerMicroformatRenderer struct {
	Thumbnail        ThumbnailDetails `json:"thumbnail"`
	Title            LangText         `json:"title"`
	LengthSeconds    string           `json:"lengthSeconds"`
	ViewCount        string           `json:"viewCount"`
	PublishDate      string           `json:"publishDate"`
	OwnerChannelName string           `json:"ownerChannelName"`
	UploadDate       string           `json:"uploadDate"`
}

type Captions struct {
	PlayerCaptionsTracklistRenderer PlayerCaptionsTracklistRenderer `json:"playerCaptionsTracklistRenderer"`
}

type PlayerCaptionsTracklistRenderer struct {
	CaptionTracks []CaptionTrack `json:"captionTracks"`
}

// CaptionTrack is one selectable subtitle stream. Kind "asr" marks an
// auto-generated track.
type CaptionTrack struct {
	BaseURL      string   `json:"baseUrl"`
	Name         LangText `json:"name"`
	VssID        string   `json:"vssId"`
	LanguageCode string   `json:"languageCode"`
	Kind         string   `json:"kind,omitempty"`
}

// BrowseResponse is the top-level response from the /browse endpoint. The
// first page of a listing places items under Contents; subsequent pages
// place them under OnResponseReceivedActions.
type BrowseResponse struct {
	Contents                  *BrowseContents            `json:"contents"`
	OnResponseReceivedActions []OnResponseReceivedAction `json:"onResponseReceivedActions"`
}

type BrowseContents struct {
	TwoColumnBrowseResultsRenderer *TwoColumnBrowseResultsRenderer `json:"twoColumnBrowseResultsRenderer"`
}

type TwoColumnBrowseResultsRenderer struct {
	Tabs []Tab `json:"tabs"`
}

type Tab struct {
	TabRenderer *TabRenderer `json:"tabRenderer"`
}

type TabRenderer struct {
	Content *TabContent `json:"content"`
}

type TabContent struct {
	SectionListRenderer *SectionListRenderer `json:"sectionListRenderer"`
	RichGridRenderer    *RichGridRenderer    `json:"richGridRenderer"`
}

type SectionListRenderer struct {
	Contents []SectionListContent `json:"contents"`
}

type SectionListContent struct {
	ItemSectionRenderer *ItemSectionRenderer `json:"itemSectionRenderer"`
}

type ItemSectionRenderer struct {
	Contents []ItemSectionContent `json:"contents"`
}

type ItemSectionContent struct {
	PlaylistVideoListRenderer *PlaylistVideoListRenderer `json:"playlistVideoListRenderer"`
	VideoRenderer             *VideoRenderer             `json:"videoRenderer"`
}

type PlaylistVideoListRenderer struct {
	Contents []Item `json:"contents"`
}

type RichGridRenderer struct {
	Contents []Item `json:"contents"`
}

type OnResponseReceivedAction struct {
	AppendContinuationItemsAction *AppendContinuationItemsAction `json:"appendContinuationItemsAction"`
}

type AppendContinuationItemsAction struct {
	ContinuationItems []Item `json:"continuationItems"`
}

// SearchResponse is the top-level response from the /search endpoint.
type SearchResponse struct {
	Contents *SearchContents `json:"contents"`
}

type SearchContents struct {
	TwoColumnSearchResultsRenderer *TwoColumnSearchResultsRenderer `json:"twoColumnSearchResultsRenderer"`
}

type TwoColumnSearchResultsRenderer struct {
	PrimaryContents PrimaryContents `json:"primaryContents"`
}

type PrimaryContents struct {
	SectionListRenderer *SectionListRenderer2 `json:"sectionListRenderer"`
}

type SectionListRenderer2 struct {
	Contents []SearchSection `json:"contents"`
}

type SearchSection struct {
	ItemSectionRenderer *SearchItemSection `json:"itemSectionRenderer"`
}

type SearchItemSection struct {
	Contents []Item `json:"contents"`
}

// Item is one entry of a listing: a video in one of the known renderer
// shapes, or a continuation marker. Exactly one field is non-nil in
// well-formed responses.
type Item struct {
	VideoRenderer            *VideoRenderer            `json:"videoRenderer"`
	PlaylistVideoRenderer    *VideoRenderer            `json:"playlistVideoRenderer"`
	RichItemRenderer         *RichItemRenderer         `json:"richItemRenderer"`
	ContinuationItemRenderer *ContinuationItemRenderer `json:"continuationItemRenderer"`
}

type RichItemRenderer struct {
	Content *RichItemContent `json:"content"`
}

type RichItemContent struct {
	VideoRenderer *VideoRenderer `json:"videoRenderer"`
}

// VideoRenderer covers the video item shapes (search result, playlist
// entry, channel feed entry). The shapes disagree about which metadata
// fields they populate; the normalizer applies ordered fallbacks.
type VideoRenderer struct {
	VideoID           string           `json:"videoId"`
	Title             LangText         `json:"title"`
	Thumbnail         ThumbnailDetails `json:"thumbnail"`
	PublishedTimeText LangText         `json:"publishedTimeText"`
	ViewCountText     LangText         `json:"viewCountText"`
	VideoInfo         LangText         `json:"videoInfo"`
	OwnerText         LangText         `json:"ownerText"`
	ShortBylineText   LangText         `json:"shortBylineText"`
	LengthText        LangText         `json:"lengthText"`
}

type ContinuationItemRenderer struct {
	ContinuationEndpoint ContinuationEndpoint `json:"continuationEndpoint"`
}

type ContinuationEndpoint struct {
	ContinuationCommand ContinuationCommand `json:"continuationCommand"`
}

type ContinuationCommand struct {
	Token string `json:"token"`
}

type ThumbnailDetails struct {
	Thumbnails []Thumbnail `json:"thumbnails"`
}

type Thumbnail struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// LangText is YouTube's polymorphic text node: either a simpleText string
// or a list of runs.
type LangText struct {
	SimpleText string    `json:"simpleText"`
	Runs       []TextRun `json:"runs"`
}

type TextRun struct {
	Text string `json:"text"`
}

// Text flattens a LangText, preferring the structured runs.
func (t LangText) Text() string {
	if len(t.Runs) > 0 {
		out := ""
		for _, r := range t.Runs {
			out += r.Text
		}
		return out
	}
	return t.SimpleText
}

// RunText returns the text of run i, or "" when absent.
func (t LangText) RunText(i int) string {
	if i < 0 || i >= len(t.Runs) {
		return ""
	}
	return t.Runs[i].Text
}
