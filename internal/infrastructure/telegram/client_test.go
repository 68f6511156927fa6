package telegram

import (
	"testing"

	"github.com/gotd/td/tg"
	"github.com/rs/zerolog"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

func TestNewClient_Validation(t *testing.T) {
	logger := zerolog.Nop()

	if _, err := NewClient(ClientConfig{APIHash: "hash", Logger: logger}); err == nil {
		t.Error("Expected error for missing APIID, got nil")
	}

	if _, err := NewClient(ClientConfig{APIID: 1, Logger: logger}); err == nil {
		t.Error("Expected error for missing APIHash, got nil")
	}

	client, err := NewClient(ClientConfig{APIID: 1, APIHash: "hash", Logger: logger})
	if err != nil {
		t.Fatalf("NewClient failed: %v", err)
	}

	if client.IsConnected() {
		t.Error("New client should not report connected")
	}
}

func TestNormalizeIdentifier(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"durov", "durov"},
		{"@durov", "durov"},
		{"  @durov  ", "durov"},
		{"https://t.me/durov", "durov"},
		{"https://t.me/@durov", "durov"},
		{"1234567", "1234567"},
		{"", ""},
	}

	for _, tc := range cases {
		if got := normalizeIdentifier(tc.in); got != tc.want {
			t.Errorf("normalizeIdentifier(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestClassifyAttachment_Photo(t *testing.T) {
	media := &tg.MessageMediaPhoto{Photo: &tg.Photo{ID: 1}}

	att := classifyAttachment(media)
	if att == nil {
		t.Fatal("Expected photo attachment, got nil")
	}
	if att.Kind != domain.AttachmentPhoto {
		t.Errorf("Expected photo kind, got %s", att.Kind)
	}
	if att.MIME != "" || att.Size != 0 {
		t.Errorf("Photo attachment should carry no mime/size, got %q/%d", att.MIME, att.Size)
	}
}

func TestClassifyAttachment_Video(t *testing.T) {
	media := &tg.MessageMediaDocument{Document: &tg.Document{
		MimeType: "video/mp4",
		Size:     2048,
		Attributes: []tg.DocumentAttributeClass{
			&tg.DocumentAttributeVideo{Duration: 10},
		},
	}}

	att := classifyAttachment(media)
	if att == nil {
		t.Fatal("Expected video attachment, got nil")
	}
	if att.Kind != domain.AttachmentVideo {
		t.Errorf("Expected video kind, got %s", att.Kind)
	}
	if att.MIME != "video/mp4" {
		t.Errorf("Expected video/mp4, got %q", att.MIME)
	}
	if att.Size != 2048 {
		t.Errorf("Expected size 2048, got %d", att.Size)
	}
}

func TestClassifyAttachment_Document(t *testing.T) {
	media := &tg.MessageMediaDocument{Document: &tg.Document{
		MimeType: "application/pdf",
		Size:     512,
	}}

	att := classifyAttachment(media)
	if att == nil {
		t.Fatal("Expected document attachment, got nil")
	}
	if att.Kind != domain.AttachmentDocument {
		t.Errorf("Expected document kind, got %s", att.Kind)
	}
}

func TestClassifyAttachment_None(t *testing.T) {
	if att := classifyAttachment(nil); att != nil {
		t.Errorf("Expected nil attachment for no media, got %+v", att)
	}

	// A web preview is a link, not downloadable media
	webpage := &tg.MessageMediaWebPage{Webpage: &tg.WebPage{URL: "https://example.com"}}
	if att := classifyAttachment(webpage); att != nil {
		t.Errorf("Expected nil attachment for web preview, got %+v", att)
	}
}

func TestWebPageURL(t *testing.T) {
	webpage := &tg.MessageMediaWebPage{Webpage: &tg.WebPage{URL: "https://example.com/article"}}
	if got := webPageURL(webpage); got != "https://example.com/article" {
		t.Errorf("Expected webpage URL, got %q", got)
	}

	if got := webPageURL(nil); got != "" {
		t.Errorf("Expected empty URL for no media, got %q", got)
	}

	photo := &tg.MessageMediaPhoto{Photo: &tg.Photo{}}
	if got := webPageURL(photo); got != "" {
		t.Errorf("Expected empty URL for photo media, got %q", got)
	}
}

func TestConvertMessage_SkipsNothingAndKeepsText(t *testing.T) {
	msg := &tg.Message{
		ID:      42,
		Message: "Hello\nworld",
		Date:    1700000000,
	}

	converted := convertMessage(msg)
	if converted.ID != 42 {
		t.Errorf("Expected id 42, got %d", converted.ID)
	}
	if converted.Text != "Hello\nworld" {
		t.Errorf("Expected raw body preserved, got %q", converted.Text)
	}
	if converted.Date.Unix() != 1700000000 {
		t.Errorf("Expected unix date preserved, got %d", converted.Date.Unix())
	}
	if converted.Attachment != nil {
		t.Errorf("Expected no attachment, got %+v", converted.Attachment)
	}
}

func TestLargestPhotoSize(t *testing.T) {
	sizes := []tg.PhotoSizeClass{
		&tg.PhotoStrippedSize{Type: "i"},
		&tg.PhotoSize{Type: "m", Size: 100},
		&tg.PhotoSizeProgressive{Type: "y", Sizes: []int{50, 500, 9000}},
		&tg.PhotoSize{Type: "x", Size: 4000},
	}

	if got := largestPhotoSize(sizes); got != "y" {
		t.Errorf("Expected largest size type y, got %q", got)
	}

	if got := largestPhotoSize(nil); got != "" {
		t.Errorf("Expected empty type for no sizes, got %q", got)
	}
}
