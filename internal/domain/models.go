package domain

import "time"

// Channel is the resolved representation of a Telegram channel
type Channel struct {
	ID         int64
	AccessHash int64
	Title      string
	FirstName  string // set for personal peers, used as a title fallback
	Username   string
	IsUser     bool // personal peer rather than a broadcast channel
}

// AttachmentKind classifies message media supported by the media proxy
type AttachmentKind string

const (
	AttachmentPhoto    AttachmentKind = "photo"
	AttachmentVideo    AttachmentKind = "video"
	AttachmentDocument AttachmentKind = "document"
)

// Attachment is the explicit media variant produced once at the MTProto
// boundary. A nil *Attachment means the message carries no downloadable
// media. MIME and Size are unknown for photos.
type Attachment struct {
	Kind AttachmentKind
	MIME string
	Size int64
}

// Message is a single channel post crossing the MTProto boundary
type Message struct {
	ID         int
	Text       string
	Date       time.Time
	WebPageURL string // canonical URL of the web preview, if any
	Attachment *Attachment
}

// MediaPayload is a fully downloaded message attachment
type MediaPayload struct {
	Data       []byte
	Attachment Attachment
}
