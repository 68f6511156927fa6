package media

import (
	"go.uber.org/fx"

	mediahttp "github.com/Aldi0091/thinkone-news-backend/internal/domain/media/delivery/http"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/media/deps"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/media/usecase/business"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/telegram"
)

// Module provides the media domain for fx DI
var Module = fx.Module("media",
	fx.Provide(
		func(client *telegram.Client) deps.TelegramGateway { return client },
		business.NewUseCase,
		mediahttp.NewHandler,
		mediahttp.NewRouter,
	),
)
