package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers news-related HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new news router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers news routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/news", r.handler.HandleNews)
	rt.GET("/channels", r.handler.HandleChannels)
}
