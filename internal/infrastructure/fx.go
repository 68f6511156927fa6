package infrastructure

import (
	"go.uber.org/fx"

	httpfx "github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/http"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/logger"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/metrics"
	"github.com/Aldi0091/thinkone-news-backend/internal/infrastructure/telegram"
)

// Module aggregates all infrastructure modules
var Module = fx.Module("infrastructure",
	logger.Module,
	metrics.Module,
	telegram.Module,
	httpfx.Module,
)
