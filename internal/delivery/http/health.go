package http

import (
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Aldi0091/thinkone-news-backend/pkg/httputil"
)

// ConnectionChecker reports whether the Telegram session is up
type ConnectionChecker interface {
	IsConnected() bool
}

// HealthResponse represents the JSON response for health check
type HealthResponse struct {
	OK bool `json:"ok"`
}

// HealthHandler handles HTTP health check requests.
// The process refuses to start without an authorized session, so a
// responding server always reports ok; the Telegram connection state is
// only logged for operators.
type HealthHandler struct {
	telegram ConnectionChecker
	logger   zerolog.Logger
}

// NewHealthHandler creates a new health check handler
func NewHealthHandler(telegram ConnectionChecker, logger zerolog.Logger) *HealthHandler {
	return &HealthHandler{
		telegram: telegram,
		logger:   logger.With().Str("component", "health_handler").Logger(),
	}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(ctx *fasthttp.RequestCtx) {
	if !h.telegram.IsConnected() {
		h.logger.Warn().Msg("Health check while Telegram client is disconnected")
	}
	httputil.WriteOK(ctx, HealthResponse{OK: true})
}
