package business

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/media/deps"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/metrics"
)

const (
	photoContentType   = "image/jpeg"
	defaultContentType = "application/octet-stream"
)

// UseCase implements the media proxy business logic
type UseCase struct {
	gateway deps.TelegramGateway
	logger  zerolog.Logger
	metrics *metrics.Metrics
}

// NewUseCase creates a new media use case
func NewUseCase(gateway deps.TelegramGateway, logger zerolog.Logger, m *metrics.Metrics) *UseCase {
	return &UseCase{
		gateway: gateway,
		logger:  logger.With().Str("component", "media_usecase").Logger(),
		metrics: m,
	}
}

// Fetch re-fetches the single message, downloads its attachment into memory
// and infers the content type to stream it back with
func (u *UseCase) Fetch(ctx context.Context, channelID int64, messageID int) (*domain.MediaPayload, string, error) {
	start := time.Now()

	ch, err := u.gateway.ResolveChannelByID(ctx, channelID)
	if err != nil {
		return nil, "", err
	}

	payload, err := u.gateway.DownloadMedia(ctx, ch, messageID)
	if err != nil {
		if errors.Is(err, domain.ErrMediaNotFound) {
			u.metrics.RecordMediaNotFound()
		}
		return nil, "", err
	}

	u.metrics.RecordMediaRequest(len(payload.Data), time.Since(start).Seconds())
	u.logger.Debug().
		Int64("channel_id", channelID).
		Int("message_id", messageID).
		Str("kind", string(payload.Attachment.Kind)).
		Int("bytes", len(payload.Data)).
		Msg("media proxied")

	return payload, ContentType(payload.Attachment), nil
}

// ContentType infers the response content type: the video's declared mime
// if present, else the document's, else the fixed JPEG type for photos,
// else a generic binary fallback.
func ContentType(att domain.Attachment) string {
	switch att.Kind {
	case domain.AttachmentVideo, domain.AttachmentDocument:
		if att.MIME != "" {
			return att.MIME
		}
	case domain.AttachmentPhoto:
		return photoContentType
	}
	return defaultContentType
}
