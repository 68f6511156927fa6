package telegram

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Aldi0091/thinkone-news-backend/config"
)

// Module provides the Telegram client for fx DI
var Module = fx.Module("telegram",
	fx.Provide(NewClientFx),
)

// NewClientFx creates the shared MTProto client with lifecycle hooks.
// Connection is established exactly once at startup and torn down exactly
// once at shutdown; an unauthorized session aborts startup.
func NewClientFx(
	lc fx.Lifecycle,
	telegramCfg *config.TelegramConfig,
	logger zerolog.Logger,
) (*Client, error) {
	client, err := NewClient(ClientConfig{
		APIID:       telegramCfg.APIID,
		APIHash:     telegramCfg.APIHash,
		SessionFile: telegramCfg.SessionFile,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return client.Connect(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return client.Disconnect(ctx)
		},
	})

	return client, nil
}
