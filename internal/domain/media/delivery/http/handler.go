package http

import (
	"strconv"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Aldi0091/thinkone-news-backend/internal/domain/media/usecase/business"
	apperrors "github.com/Aldi0091/thinkone-news-backend/pkg/errors"
	"github.com/Aldi0091/thinkone-news-backend/pkg/httputil"
)

// Handler handles media proxy HTTP requests
type Handler struct {
	useCase *business.UseCase
	logger  zerolog.Logger
	mapper  *apperrors.Mapper
}

// NewHandler creates a new media handler
func NewHandler(useCase *business.UseCase, logger zerolog.Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger.With().Str("component", "media_handler").Logger(),
		mapper:  apperrors.NewMapper(logger),
	}
}

// HandleMedia handles GET /media/{channel_id}/{message_id}
func (h *Handler) HandleMedia(ctx *fasthttp.RequestCtx) {
	channelID, err := strconv.ParseInt(pathParam(ctx, "channel_id"), 10, 64)
	if err != nil {
		h.writeError(ctx, apperrors.NewValidationError("channel_id must be an integer"))
		return
	}

	messageID, err := strconv.Atoi(pathParam(ctx, "message_id"))
	if err != nil {
		h.writeError(ctx, apperrors.NewValidationError("message_id must be an integer"))
		return
	}

	payload, contentType, err := h.useCase.Fetch(ctx, channelID, messageID)
	if err != nil {
		h.writeError(ctx, err)
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	ctx.SetContentType(contentType)
	ctx.SetBody(payload.Data)
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}

func pathParam(ctx *fasthttp.RequestCtx, name string) string {
	if v, ok := ctx.UserValue(name).(string); ok {
		return v
	}
	return ""
}
