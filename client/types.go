package client

// Status tags a record's relationship to the local cache.
type Status string

const (
	// StatusNone means the record was never checked against the cache.
	StatusNone Status = ""
	// StatusExists means the cache already held the record; no fetch ran.
	StatusExists Status = "exists"
	// StatusSaved means the record was fetched and written this call.
	StatusSaved Status = "saved"
)

// VideoRecord is the normalized video representation the package trades
// in. ID is the only required field; a record without one is never
// constructed. PublishedAt stays in the textual form the platform
// returns ("3 weeks ago" or an RFC 3339 stamp from the feed); empty
// means unknown, not error.
type VideoRecord struct {
	ID            string `json:"id"`
	Title         string `json:"title,omitempty"`
	ThumbnailURL  string `json:"thumbnailUrl,omitempty"`
	Author        string `json:"author,omitempty"`
	PublishedAt   string `json:"publishedAt,omitempty"`
	ViewCount     string `json:"viewCount,omitempty"`
	LengthSeconds int    `json:"lengthSeconds,omitempty"`
	Transcript    string `json:"transcript,omitempty"`
	Status        Status `json:"status,omitempty"`
}

// ChannelReference is a resolved channel identity.
type ChannelReference struct {
	// Input is the raw query the reference was resolved from.
	Input string `json:"input"`
	// ChannelID is the canonical 24-character "UC" id.
	ChannelID string `json:"channelId"`
	// UploadsPlaylistID is the channel's uploads playlist ("UU" form).
	UploadsPlaylistID string `json:"uploadsPlaylistId"`
}

// Listing is one page of a video listing plus the token for the next
// page, if any.
type Listing struct {
	Videos       []VideoRecord `json:"videos"`
	Continuation string        `json:"continuation,omitempty"`
}
