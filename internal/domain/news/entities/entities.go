package entities

import "time"

// MediaInfo describes a message attachment. It is never populated in
// aggregator output (media is resolved lazily through the proxy); the shape
// exists for potential future inlining.
type MediaInfo struct {
	Kind string `json:"kind"`
	MIME string `json:"mime,omitempty"`
	Size int64  `json:"size,omitempty"`
}

// NewsItem is the normalized, backend-agnostic representation of one
// channel message
type NewsItem struct {
	ID              string     `json:"id"`
	ChannelID       int64      `json:"channel_id"`
	ChannelUsername string     `json:"channel_username,omitempty"`
	ChannelTitle    string     `json:"channel_title"`
	Title           string     `json:"title"`
	Text            string     `json:"text"`
	Source          string     `json:"source"`
	SourceURL       string     `json:"sourceUrl,omitempty"`
	URL             string     `json:"url,omitempty"`
	Summary         string     `json:"summary,omitempty"`
	PublishedAt     time.Time  `json:"publishedAt"`
	Tags            []string   `json:"tags"`
	Media           *MediaInfo `json:"media,omitempty"`
}

// NewsList is one page of merged, sorted news items
type NewsList struct {
	Total      int        `json:"total"`
	Items      []NewsItem `json:"items"`
	NextOffset *int       `json:"next_offset,omitempty"`
}

// ChannelError is one per-channel resolution or fetch failure, surfaced
// out-of-band in the X-TG-Errors response header. Request order of the
// failing channels is preserved.
type ChannelError struct {
	Channel string
	Reason  string
}
