package http

import (
	"github.com/fasthttp/router"
	"github.com/rs/zerolog"
)

// Router registers media proxy HTTP routes
type Router struct {
	handler *Handler
	logger  zerolog.Logger
}

// NewRouter creates a new media router
func NewRouter(handler *Handler, logger zerolog.Logger) *Router {
	return &Router{
		handler: handler,
		logger:  logger,
	}
}

// RegisterRoutes registers media routes on the router
func (r *Router) RegisterRoutes(rt *router.Router) {
	rt.GET("/media/{channel_id}/{message_id}", r.handler.HandleMedia)
}
