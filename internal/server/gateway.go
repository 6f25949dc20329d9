package server

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/spotgate/internal/services"
)

// NewGateway assembles the full gateway router: liveness endpoints stay open,
// everything else sits behind the bearer token middleware.
//
// Middleware snapshots at registration time, so the health handler is wired
// before Auth joins the stack.
func NewGateway(api *services.Spotify, validator Validator, logger *log.Logger, version string) http.Handler {
	registry := NewRegistry()
	RegisterTools(registry, api)

	router := NewBasicRouter()
	router.Use(RequestLogger(logger))
	router.Handler(NewHealthHandler(version))

	router.Use(Auth(validator, logger))
	router.Handler(NewToolsHandler(registry, logger))
	router.Handler(&IdentityHandler{})

	return router
}
