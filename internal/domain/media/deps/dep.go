package deps

import (
	"context"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

// TelegramGateway is the slice of the Telegram client the media proxy
// depends on
type TelegramGateway interface {
	// ResolveChannelByID resolves a channel purely by numeric id
	ResolveChannelByID(ctx context.Context, channelID int64) (*domain.Channel, error)

	// DownloadMedia fetches the single message and downloads its attachment
	// fully into memory, returning domain.ErrMediaNotFound when the message
	// is missing or carries no downloadable media
	DownloadMedia(ctx context.Context, ch *domain.Channel, messageID int) (*domain.MediaPayload, error)
}
