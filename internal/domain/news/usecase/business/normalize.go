package business

import (
	"strconv"
	"strings"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/entities"
)

const (
	// maxTitleLen caps the derived title length in characters
	maxTitleLen = 120

	// fallbackTitle is used when a message yields an empty title
	fallbackTitle = "Post"

	// fallbackChannelTitle is used when the entity carries no display name
	fallbackChannelTitle = "Channel"
)

// normalizeMessage converts one raw message into a news item. Returns nil
// when the body is empty after stripping: such messages carry no article
// content and are dropped.
func normalizeMessage(msg domain.Message, ch *domain.Channel) *entities.NewsItem {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	title := deriveTitle(text)
	channelTitle := channelDisplayTitle(ch)

	item := &entities.NewsItem{
		ID:              strconv.Itoa(msg.ID),
		ChannelID:       ch.ID,
		ChannelUsername: ch.Username,
		ChannelTitle:    channelTitle,
		Title:           title,
		Text:            text,
		Source:          channelTitle,
		URL:             msg.WebPageURL,
		PublishedAt:     msg.Date,
		Tags:            []string{},
	}

	if ch.Username != "" {
		item.SourceURL = "https://t.me/" + ch.Username
	}

	return item
}

// deriveTitle takes the substring up to the first newline, truncated to 120
// characters, falling back to "Post" when empty
func deriveTitle(text string) string {
	title := text
	if idx := strings.IndexByte(title, '\n'); idx >= 0 {
		title = title[:idx]
	}

	if runes := []rune(title); len(runes) > maxTitleLen {
		title = string(runes[:maxTitleLen])
	}

	if title == "" {
		return fallbackTitle
	}
	return title
}

// channelDisplayTitle prefers the entity title, then the personal first
// name, then the literal fallback
func channelDisplayTitle(ch *domain.Channel) string {
	if ch.Title != "" {
		return ch.Title
	}
	if ch.FirstName != "" {
		return ch.FirstName
	}
	return fallbackChannelTitle
}
