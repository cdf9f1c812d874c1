package innertube

// Request is one Innertube request envelope: the profile's fixed context
// merged with exactly one operation's fields. Envelopes are built fresh per
// request and never shared.
type Request struct {
	Context      Context `json:"context"`
	Query        string  `json:"query,omitempty"`
	BrowseID     string  `json:"browseId,omitempty"`
	Continuation string  `json:"continuation,omitempty"`
	VideoID      string  `json:"videoId,omitempty"`
}

type Context struct {
	Client ClientContext `json:"client"`
}

type ClientContext struct {
	ClientName        string `json:"clientName"`
	ClientVersion     string `json:"clientVersion"`
	Hl                string `json:"hl"`
	Gl                string `json:"gl"`
	UtcOffsetMinutes  int    `json:"utcOffsetMinutes"`
	AndroidSdkVersion int    `json:"androidSdkVersion,omitempty"`
}

// NewRequest builds the base envelope for a profile. Locale fields are
// pinned to en/US; the extraction rules downstream assume English field
// layouts.
func NewRequest(profile ClientProfile) *Request {
	return &Request{
		Context: Context{
			Client: ClientContext{
				ClientName:        profile.Name,
				ClientVersion:     profile.Version,
				Hl:                "en",
				Gl:                "US",
				UtcOffsetMinutes:  0,
				AndroidSdkVersion: profile.AndroidSdkVersion,
			},
		},
	}
}

// NewSearchRequest builds a /search envelope.
func NewSearchRequest(profile ClientProfile, query string) *Request {
	req := NewRequest(profile)
	req.Query = query
	return req
}

// NewBrowseRequest builds a /browse envelope. At least one of browseID and
// continuation must be set; the transport rejects an empty pair before any
// network I/O.
func NewBrowseRequest(profile ClientProfile, browseID, continuation string) *Request {
	req := NewRequest(profile)
	req.BrowseID = browseID
	req.Continuation = continuation
	return req
}

// NewPlayerRequest builds a /player envelope.
func NewPlayerRequest(profile ClientProfile, videoID string) *Request {
	req := NewRequest(profile)
	req.VideoID = videoID
	return req
}
