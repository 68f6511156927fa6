package main

import (
	"context"

	"github.com/rs/zerolog"
	"go.uber.org/fx"

	"github.com/Aldi0091/thinkone-news-backend/config"
	"github.com/Aldi0091/thinkone-news-backend/internal/app"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	fx.New(
		app.CreateApp(),
		fx.StopTimeout(cfg.Service.ShutdownTimeout),
		fx.Invoke(run),
	).Run()
}

func run(
	lc fx.Lifecycle,
	serviceCfg *config.ServiceConfig,
	logger zerolog.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info().
				Str("service", serviceCfg.Name).
				Str("port", serviceCfg.Port).
				Msg("Starting news backend")
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("News backend stopped")
			return nil
		},
	})
}
