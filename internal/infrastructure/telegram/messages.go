package telegram

import (
	"context"
	"fmt"
	"time"

	"github.com/gotd/td/tg"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

// GetChannelMessages retrieves up to limit most-recent messages from a
// channel, paging backward from offsetID (0 means most recent). Non-message
// updates such as service events are silently skipped.
func (c *Client) GetChannelMessages(ctx context.Context, ch *domain.Channel, limit, offsetID int) ([]domain.Message, error) {
	api, err := c.apiClient()
	if err != nil {
		return nil, err
	}

	if err := c.waitRate(ctx); err != nil {
		return nil, err
	}

	c.logger.Debug().
		Int64("channel_id", ch.ID).
		Int("limit", limit).
		Int("offset_id", offsetID).
		Msg("fetching channel messages")

	result, err := api.MessagesGetHistory(ctx, &tg.MessagesGetHistoryRequest{
		Peer:     inputPeer(ch),
		OffsetID: offsetID,
		Limit:    limit,
	})
	if err != nil {
		c.logger.Error().Err(err).Int64("channel_id", ch.ID).Msg("failed to get messages")
		return nil, fmt.Errorf("failed to get messages: %w", err)
	}

	raw, err := extractMessages(result)
	if err != nil {
		return nil, err
	}

	messages := make([]domain.Message, 0, len(raw))
	for _, msg := range raw {
		if message, ok := msg.(*tg.Message); ok {
			messages = append(messages, convertMessage(message))
		}
	}

	c.logger.Debug().
		Int64("channel_id", ch.ID).
		Int("messages_count", len(messages)).
		Msg("fetched messages")
	return messages, nil
}

// extractMessages unwraps the message list from a messages.Messages result
func extractMessages(result tg.MessagesMessagesClass) ([]tg.MessageClass, error) {
	switch messages := result.(type) {
	case *tg.MessagesChannelMessages:
		return messages.Messages, nil
	case *tg.MessagesMessages:
		return messages.Messages, nil
	case *tg.MessagesMessagesSlice:
		return messages.Messages, nil
	default:
		return nil, fmt.Errorf("unexpected messages result %T", result)
	}
}

// convertMessage converts a raw Telegram message into the domain shape,
// classifying media into the explicit attachment variant exactly once at
// this boundary.
func convertMessage(msg *tg.Message) domain.Message {
	return domain.Message{
		ID:         msg.ID,
		Text:       msg.Message,
		Date:       time.Unix(int64(msg.Date), 0).UTC(),
		WebPageURL: webPageURL(msg.Media),
		Attachment: classifyAttachment(msg.Media),
	}
}

// webPageURL extracts the canonical URL of a web preview attachment, if any
func webPageURL(media tg.MessageMediaClass) string {
	mediaWebPage, ok := media.(*tg.MessageMediaWebPage)
	if !ok {
		return ""
	}

	if webpage, ok := mediaWebPage.Webpage.(*tg.WebPage); ok {
		return webpage.URL
	}
	return ""
}

// classifyAttachment produces the downloadable-media variant for a message:
// nil (none), photo, video or document. A video is a document carrying a
// video attribute, matching how Telegram models it on the wire.
func classifyAttachment(media tg.MessageMediaClass) *domain.Attachment {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		if _, ok := m.Photo.(*tg.Photo); ok {
			// Photos expose no mime type or byte size
			return &domain.Attachment{Kind: domain.AttachmentPhoto}
		}

	case *tg.MessageMediaDocument:
		doc, ok := m.Document.(*tg.Document)
		if !ok {
			return nil
		}

		kind := domain.AttachmentDocument
		for _, attr := range doc.Attributes {
			if _, ok := attr.(*tg.DocumentAttributeVideo); ok {
				kind = domain.AttachmentVideo
				break
			}
		}

		return &domain.Attachment{
			Kind: kind,
			MIME: doc.MimeType,
			Size: doc.Size,
		}
	}

	return nil
}
