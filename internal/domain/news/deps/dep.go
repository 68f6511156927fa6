package deps

import (
	"context"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain"
)

// TelegramGateway is the slice of the Telegram client the news aggregator
// depends on
type TelegramGateway interface {
	// ResolveChannel maps a handle, t.me URL fragment or numeric id to a
	// resolved channel, wrapping failures in *domain.ChannelResolutionError
	ResolveChannel(ctx context.Context, identifier string) (*domain.Channel, error)

	// GetChannelMessages fetches up to limit most-recent messages, paging
	// backward from offsetID (0 means most recent)
	GetChannelMessages(ctx context.Context, ch *domain.Channel, limit, offsetID int) ([]domain.Message, error)
}
