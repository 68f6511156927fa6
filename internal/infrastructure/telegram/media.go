package telegram

import (
	"bytes"
	"context"
	"fmt"

	"github.com/gotd/td/telegram/downloader"
	"github.com/gotd/td/tg"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

// DownloadMedia re-fetches the single message by id and downloads its
// attachment fully into memory. Returns domain.ErrMediaNotFound when the
// message does not exist or carries no photo, video or document.
//
// The whole payload is buffered in process memory for the duration of the
// request; large videos are an accepted scalability limitation.
func (c *Client) DownloadMedia(ctx context.Context, ch *domain.Channel, messageID int) (*domain.MediaPayload, error) {
	api, err := c.apiClient()
	if err != nil {
		return nil, err
	}

	if err := c.waitRate(ctx); err != nil {
		return nil, err
	}

	result, err := api.ChannelsGetMessages(ctx, &tg.ChannelsGetMessagesRequest{
		Channel: &tg.InputChannel{ChannelID: ch.ID, AccessHash: ch.AccessHash},
		ID:      []tg.InputMessageClass{&tg.InputMessageID{ID: messageID}},
	})
	if err != nil {
		c.logger.Error().Err(err).
			Int64("channel_id", ch.ID).
			Int("message_id", messageID).
			Msg("failed to get message")
		return nil, fmt.Errorf("failed to get message: %w", err)
	}

	raw, err := extractMessages(result)
	if err != nil {
		return nil, err
	}

	var msg *tg.Message
	for _, m := range raw {
		if message, ok := m.(*tg.Message); ok && message.ID == messageID {
			msg = message
			break
		}
	}
	if msg == nil {
		return nil, domain.ErrMediaNotFound
	}

	attachment := classifyAttachment(msg.Media)
	if attachment == nil {
		return nil, domain.ErrMediaNotFound
	}

	location, err := fileLocation(msg.Media)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if _, err := downloader.NewDownloader().Download(api, location).Stream(ctx, &buf); err != nil {
		c.logger.Error().Err(err).
			Int64("channel_id", ch.ID).
			Int("message_id", messageID).
			Msg("failed to download media")
		return nil, fmt.Errorf("failed to download media: %w", err)
	}

	c.logger.Debug().
		Int64("channel_id", ch.ID).
		Int("message_id", messageID).
		Str("kind", string(attachment.Kind)).
		Int("bytes", buf.Len()).
		Msg("downloaded media")

	return &domain.MediaPayload{
		Data:       buf.Bytes(),
		Attachment: *attachment,
	}, nil
}

// fileLocation builds the download location for a message's media
func fileLocation(media tg.MessageMediaClass) (tg.InputFileLocationClass, error) {
	switch m := media.(type) {
	case *tg.MessageMediaPhoto:
		photo, ok := m.Photo.(*tg.Photo)
		if !ok {
			return nil, domain.ErrMediaNotFound
		}
		return &tg.InputPhotoFileLocation{
			ID:            photo.ID,
			AccessHash:    photo.AccessHash,
			FileReference: photo.FileReference,
			ThumbSize:     largestPhotoSize(photo.Sizes),
		}, nil

	case *tg.MessageMediaDocument:
		doc, ok := m.Document.(*tg.Document)
		if !ok {
			return nil, domain.ErrMediaNotFound
		}
		return &tg.InputDocumentFileLocation{
			ID:            doc.ID,
			AccessHash:    doc.AccessHash,
			FileReference: doc.FileReference,
		}, nil
	}

	return nil, domain.ErrMediaNotFound
}

// largestPhotoSize picks the thumb type of the biggest available photo size
func largestPhotoSize(sizes []tg.PhotoSizeClass) string {
	bestType := ""
	bestBytes := -1

	for _, size := range sizes {
		var typ string
		var b int

		switch s := size.(type) {
		case *tg.PhotoSize:
			typ, b = s.Type, s.Size
		case *tg.PhotoSizeProgressive:
			typ = s.Type
			if len(s.Sizes) > 0 {
				b = s.Sizes[len(s.Sizes)-1]
			}
		case *tg.PhotoCachedSize:
			typ, b = s.Type, len(s.Bytes)
		default:
			continue
		}

		if b > bestBytes {
			bestType, bestBytes = typ, b
		}
	}

	return bestType
}
