package news

import (
	"go.uber.org/fx"

	newshttp "github.com/Aldi0091/thinkone-news-backend/internal/domain/news/delivery/http"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/deps"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/usecase/business"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/telegram"
)

// Module provides the news domain for fx DI
var Module = fx.Module("news",
	fx.Provide(
		func(client *telegram.Client) deps.TelegramGateway { return client },
		business.NewUseCase,
		newshttp.NewHandler,
		newshttp.NewRouter,
	),
)
