package http

import (
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"

	"github.com/Aldi0091/thinkone-news-backend/config"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/entities"
	"github.com/Aldi0091/thinkone-news-backend/internal/domain/news/usecase/business"
	apperrors "github.com/Aldi0091/thinkone-news-backend/pkg/errors"
	"github.com/Aldi0091/thinkone-news-backend/pkg/httputil"
)

const (
	defaultLimit = 30
	maxLimit     = 200

	// errorsHeader carries per-channel failures out-of-band; the body stays
	// a valid NewsList regardless
	errorsHeader = "X-TG-Errors"
)

// ChannelsResponse is the body of GET /channels
type ChannelsResponse struct {
	Channels []string `json:"channels"`
}

// Handler handles news listing HTTP requests
type Handler struct {
	useCase         *business.UseCase
	defaultChannels []string
	logger          zerolog.Logger
	mapper          *apperrors.Mapper
}

// NewHandler creates a new news handler
func NewHandler(useCase *business.UseCase, newsCfg *config.NewsConfig, logger zerolog.Logger) *Handler {
	return &Handler{
		useCase:         useCase,
		defaultChannels: newsCfg.DefaultChannels,
		logger:          logger.With().Str("component", "news_handler").Logger(),
		mapper:          apperrors.NewMapper(logger),
	}
}

// HandleNews handles GET /news
func (h *Handler) HandleNews(ctx *fasthttp.RequestCtx) {
	args := ctx.QueryArgs()

	channels := h.defaultChannels
	if args.Has("channels") {
		channels = splitCSV(string(args.Peek("channels")))
	}

	limit, err := intArg(args, "limit", defaultLimit)
	if err != nil || limit < 1 || limit > maxLimit {
		h.writeError(ctx, apperrors.NewValidationErrorf("limit must be an integer in 1..%d", maxLimit))
		return
	}

	offsetID, err := intArg(args, "offset_id", 0)
	if err != nil || offsetID < 0 {
		h.writeError(ctx, apperrors.NewValidationError("offset_id must be a non-negative integer"))
		return
	}

	sortMode, ok := business.ParseSort(string(args.Peek("sort")))
	if !ok {
		h.writeError(ctx, apperrors.NewValidationError("sort must be one of newest, oldest, source"))
		return
	}

	list, chErrors := h.useCase.List(ctx, channels, limit, offsetID, sortMode)

	// Partial failures are silent in the body and explicit only here
	if len(chErrors) > 0 {
		ctx.Response.Header.Set(errorsHeader, joinChannelErrors(chErrors))
	}

	httputil.WriteOK(ctx, list)
}

// HandleChannels handles GET /channels
func (h *Handler) HandleChannels(ctx *fasthttp.RequestCtx) {
	channels := h.defaultChannels
	if channels == nil {
		channels = []string{}
	}
	httputil.WriteOK(ctx, ChannelsResponse{Channels: channels})
}

func (h *Handler) writeError(ctx *fasthttp.RequestCtx, err error) {
	status, message := h.mapper.MapErrorToHTTP(err)
	httputil.WriteErrorResponse(ctx, message, status)
}

// joinChannelErrors renders failures as "name:reason; name:reason"
func joinChannelErrors(chErrors []entities.ChannelError) string {
	parts := make([]string, 0, len(chErrors))
	for _, ce := range chErrors {
		parts = append(parts, ce.Channel+":"+ce.Reason)
	}
	return strings.Join(parts, "; ")
}

// splitCSV splits a comma-separated value, dropping empty entries
func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if v := strings.TrimSpace(p); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// intArg parses an optional integer query argument
func intArg(args *fasthttp.Args, key string, defaultValue int) (int, error) {
	if !args.Has(key) {
		return defaultValue, nil
	}
	return strconv.Atoi(string(args.Peek(key)))
}
