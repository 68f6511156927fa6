package app

import (
	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Aldi0091/thinkone-news-backend/config"
	healthhttp "github.com/Aldi0091/thinkone-news-backend/internal/delivery/http"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/media"
	mediahttp "github.com/Aldi0091/thinkone-news-backend/internal/domain/media/delivery/http"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news"
	newshttp "github.com/Aldi0091/thinkone-news-backend/internal/domain/news/delivery/http"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/http/server"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/telegram"
)

// CreateApp creates the fx application options
func CreateApp() fx.Option {
	return fx.Options(
		fx.Provide(
			config.Out,
		),
		infrastructure.Module,
		// Domain modules
		news.Module,
		media.Module,
		fx.Invoke(registerRoutes),
	)
}

// registerRoutes mounts every HTTP route on the shared server
func registerRoutes(
	srv *server.Server,
	newsRouter *newshttp.Router,
	mediaRouter *mediahttp.Router,
	client *telegram.Client,
	logger zerolog.Logger,
) {
	healthHandler := healthhttp.NewHealthHandler(client, logger)
	srv.Router.GET("/health", healthHandler.HandleHealth)

	newsRouter.RegisterRoutes(srv.Router)
	mediaRouter.RegisterRoutes(srv.Router)
}
